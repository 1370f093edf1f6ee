package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"

	"github.com/Czerw0/JobFinder/internal/domain/cv"
	"github.com/Czerw0/JobFinder/internal/repository"
)

type userKeyedCVRepo struct {
	byUserID map[uuid.UUID]cv.CV
}

func (m *userKeyedCVRepo) GetByID(context.Context, uuid.UUID) (cv.CV, error) {
	return cv.CV{}, repository.ErrNotFound
}

func (m *userKeyedCVRepo) GetByUserID(_ context.Context, userID uuid.UUID) (cv.CV, error) {
	c, ok := m.byUserID[userID]
	if !ok {
		return cv.CV{}, repository.ErrNotFound
	}
	return c, nil
}

func (m *userKeyedCVRepo) Upsert(_ context.Context, c cv.CV) (cv.CV, error) {
	if m.byUserID == nil {
		m.byUserID = map[uuid.UUID]cv.CV{}
	}
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	m.byUserID[c.UserID] = c
	return c, nil
}

func TestGetForUserNotFound(t *testing.T) {
	uc := NewCVUsecase(&userKeyedCVRepo{})

	_, err := uc.GetForUser(context.Background(), uuid.New())
	if !errors.Is(err, ErrCVNotFound) {
		t.Fatalf("err = %v, want ErrCVNotFound", err)
	}
}

func TestUpdateForUserRoundTrip(t *testing.T) {
	uc := NewCVUsecase(&userKeyedCVRepo{})
	userID := uuid.New()

	saved, err := uc.UpdateForUser(context.Background(), userID, UpdateCVInput{
		FullName:          "Ada Dev",
		Email:             "ada@example.com",
		Skills:            "python, sql",
		JobTypePreference: "hybrid",
		ExperienceYears:   intPtr(4),
	})
	if err != nil {
		t.Fatalf("UpdateForUser: %v", err)
	}
	if saved.JobTypePreference != cv.JobTypeHybrid {
		t.Fatalf("job type = %q", saved.JobTypePreference)
	}

	got, err := uc.GetForUser(context.Background(), userID)
	if err != nil {
		t.Fatalf("GetForUser: %v", err)
	}
	if got.FullName != "Ada Dev" || got.Skills != "python, sql" {
		t.Fatalf("unexpected cv: %+v", got)
	}
}

func TestUpdateForUserDefaultsJobType(t *testing.T) {
	uc := NewCVUsecase(&userKeyedCVRepo{})

	saved, err := uc.UpdateForUser(context.Background(), uuid.New(), UpdateCVInput{FullName: "Ada Dev"})
	if err != nil {
		t.Fatalf("UpdateForUser: %v", err)
	}
	if saved.JobTypePreference != cv.JobTypeRemote {
		t.Fatalf("job type = %q, want remote default", saved.JobTypePreference)
	}
}

func TestUpdateForUserRejectsBadInput(t *testing.T) {
	uc := NewCVUsecase(&userKeyedCVRepo{})

	if _, err := uc.UpdateForUser(context.Background(), uuid.New(), UpdateCVInput{JobTypePreference: "nomad"}); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("bad job type: err = %v, want ErrInvalidInput", err)
	}
	if _, err := uc.UpdateForUser(context.Background(), uuid.New(), UpdateCVInput{ExperienceYears: intPtr(-1)}); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("negative years: err = %v, want ErrInvalidInput", err)
	}
	if _, err := uc.UpdateForUser(context.Background(), uuid.Nil, UpdateCVInput{}); !errors.Is(err, ErrUnauthorized) {
		t.Fatalf("nil user: err = %v, want ErrUnauthorized", err)
	}
}
