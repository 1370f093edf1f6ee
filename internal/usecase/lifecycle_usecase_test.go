package usecase

import (
	"context"
	"testing"
	"time"
)

type thresholdRecordingRepo struct {
	mockJobRepo
	archiveThreshold time.Time
	purgeThreshold   time.Time
}

func (r *thresholdRecordingRepo) ArchiveStale(_ context.Context, threshold time.Time) (int64, error) {
	r.archiveThreshold = threshold
	return 3, nil
}

func (r *thresholdRecordingRepo) PurgeArchived(_ context.Context, threshold time.Time) (int64, error) {
	r.purgeThreshold = threshold
	return 1, nil
}

func TestLifecycle_Windows(t *testing.T) {
	repo := &thresholdRecordingRepo{}
	l := NewLifecycle(repo, 30*24*time.Hour, 35*24*time.Hour, nil)
	fixed := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)
	l.now = func() time.Time { return fixed }

	n, err := l.ArchiveStale(context.Background())
	if err != nil || n != 3 {
		t.Fatalf("archive: n=%d err=%v", n, err)
	}
	if want := fixed.AddDate(0, 0, -30); !repo.archiveThreshold.Equal(want) {
		t.Fatalf("archive threshold %v, want %v", repo.archiveThreshold, want)
	}

	n, err = l.PurgeArchived(context.Background())
	if err != nil || n != 1 {
		t.Fatalf("purge: n=%d err=%v", n, err)
	}
	if want := fixed.AddDate(0, 0, -35); !repo.purgeThreshold.Equal(want) {
		t.Fatalf("purge threshold %v, want %v", repo.purgeThreshold, want)
	}
}

func TestLifecycle_DefaultWindows(t *testing.T) {
	l := NewLifecycle(&thresholdRecordingRepo{}, 0, 0, nil)
	if l.archiveAfter != 30*24*time.Hour || l.purgeAfter != 35*24*time.Hour {
		t.Fatalf("unexpected defaults: %v / %v", l.archiveAfter, l.purgeAfter)
	}
}
