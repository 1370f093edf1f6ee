package repository

import (
	"context"
	"errors"
	"time"

	"github.com/Czerw0/JobFinder/internal/database"
	"github.com/Czerw0/JobFinder/internal/domain/cv"

	"github.com/jackc/pgx/v5"

	"github.com/google/uuid"
)

type CVRepository interface {
	GetByID(ctx context.Context, id uuid.UUID) (cv.CV, error)
	GetByUserID(ctx context.Context, userID uuid.UUID) (cv.CV, error)
	Upsert(ctx context.Context, in cv.CV) (cv.CV, error)
}

type PostgresCVRepository struct {
	db database.DB
}

func NewPostgresCVRepository(db database.DB) *PostgresCVRepository {
	return &PostgresCVRepository{db: db}
}

const cvColumns = `id, user_id, full_name, email, phone_number, github_profile,
	linkedin_profile, skills, technologies, preferred_roles, preferred_locations,
	job_type_preference, industry_preference, experience_years, experience,
	education, languages, created_at, updated_at`

func (r *PostgresCVRepository) GetByID(ctx context.Context, id uuid.UUID) (cv.CV, error) {
	return r.get(ctx, `SELECT `+cvColumns+` FROM cvs WHERE id = $1`, id)
}

func (r *PostgresCVRepository) GetByUserID(ctx context.Context, userID uuid.UUID) (cv.CV, error) {
	return r.get(ctx, `SELECT `+cvColumns+` FROM cvs WHERE user_id = $1`, userID)
}

func (r *PostgresCVRepository) get(ctx context.Context, query string, arg any) (cv.CV, error) {
	var c cv.CV
	err := r.db.QueryRow(ctx, query, arg).Scan(
		&c.ID, &c.UserID, &c.FullName, &c.Email, &c.PhoneNumber,
		&c.GithubProfile, &c.LinkedinProfile, &c.Skills, &c.Technologies,
		&c.PreferredRoles, &c.PreferredLocations, &c.JobTypePreference,
		&c.IndustryPreference, &c.ExperienceYears, &c.Experience,
		&c.Education, &c.Languages, &c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return cv.CV{}, ErrNotFound
		}
		return cv.CV{}, err
	}
	return c, nil
}

func (r *PostgresCVRepository) Upsert(ctx context.Context, in cv.CV) (cv.CV, error) {
	if in.ID == uuid.Nil {
		in.ID = uuid.New()
	}
	if in.JobTypePreference == "" {
		in.JobTypePreference = cv.JobTypeRemote
	}
	now := time.Now().UTC()

	_, err := r.db.Exec(ctx,
		`INSERT INTO cvs (id, user_id, full_name, email, phone_number, github_profile,
		                  linkedin_profile, skills, technologies, preferred_roles,
		                  preferred_locations, job_type_preference, industry_preference,
		                  experience_years, experience, education, languages,
		                  created_at, updated_at)
		 VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13,$14,$15,$16,$17,$18,$18)
		 ON CONFLICT (user_id) DO UPDATE SET
			full_name = EXCLUDED.full_name,
			email = EXCLUDED.email,
			phone_number = EXCLUDED.phone_number,
			github_profile = EXCLUDED.github_profile,
			linkedin_profile = EXCLUDED.linkedin_profile,
			skills = EXCLUDED.skills,
			technologies = EXCLUDED.technologies,
			preferred_roles = EXCLUDED.preferred_roles,
			preferred_locations = EXCLUDED.preferred_locations,
			job_type_preference = EXCLUDED.job_type_preference,
			industry_preference = EXCLUDED.industry_preference,
			experience_years = EXCLUDED.experience_years,
			experience = EXCLUDED.experience,
			education = EXCLUDED.education,
			languages = EXCLUDED.languages,
			updated_at = EXCLUDED.updated_at`,
		in.ID, in.UserID, in.FullName, in.Email, in.PhoneNumber, in.GithubProfile,
		in.LinkedinProfile, in.Skills, in.Technologies, in.PreferredRoles,
		in.PreferredLocations, in.JobTypePreference, in.IndustryPreference,
		in.ExperienceYears, in.Experience, in.Education, in.Languages, now,
	)
	if err != nil {
		return cv.CV{}, err
	}

	return r.GetByUserID(ctx, in.UserID)
}
