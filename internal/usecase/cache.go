package usecase

import (
	"context"
	"time"
)

// ListCache is the response cache in front of the job listing. A nil or
// unavailable cache must degrade to direct repository reads.
type ListCache interface {
	GetJSON(ctx context.Context, key string, out any) (bool, error)
	SetJSON(ctx context.Context, key string, value any, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
}
