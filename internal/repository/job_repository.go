package repository

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/Czerw0/JobFinder/internal/database"
	"github.com/Czerw0/JobFinder/internal/domain/job"

	"github.com/google/uuid"
)

var ErrNotFound = errors.New("not found")

// JobUpsert is one scraped listing keyed by its URL. Re-seeing a known URL
// refreshes date_last_seen and reactivates the row instead of duplicating it.
type JobUpsert struct {
	Title       string
	Company     string
	Location    *string
	Salary      *string
	Tags        []job.Tag
	JobURL      string
	DatePosted  *time.Time
	Description *string
}

type JobRepository interface {
	ListActive(ctx context.Context) ([]job.Job, error)
	ListRecent(ctx context.Context, limit, offset int) ([]job.Job, error)
	Upsert(ctx context.Context, in JobUpsert) (created bool, err error)
	UpdateMatchScore(ctx context.Context, id uuid.UUID, score float64) error
	ArchiveStale(ctx context.Context, threshold time.Time) (int64, error)
	PurgeArchived(ctx context.Context, threshold time.Time) (int64, error)
}

type PostgresJobRepository struct {
	db database.DB
}

func NewPostgresJobRepository(db database.DB) *PostgresJobRepository {
	return &PostgresJobRepository{db: db}
}

const jobColumns = `id, title, company, location, salary, attributes, job_url,
	date_posted, description, status, match_score, date_scraped, date_last_seen`

func (r *PostgresJobRepository) ListActive(ctx context.Context) ([]job.Job, error) {
	return r.list(ctx,
		`SELECT `+jobColumns+` FROM jobs WHERE status = $1 ORDER BY date_scraped DESC`,
		job.StatusActive,
	)
}

func (r *PostgresJobRepository) ListRecent(ctx context.Context, limit, offset int) ([]job.Job, error) {
	if limit <= 0 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}
	return r.list(ctx,
		`SELECT `+jobColumns+` FROM jobs WHERE status = $1
		 ORDER BY date_scraped DESC LIMIT $2 OFFSET $3`,
		job.StatusActive, limit, offset,
	)
}

func (r *PostgresJobRepository) list(ctx context.Context, query string, args ...any) ([]job.Job, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []job.Job
	for rows.Next() {
		j, err := scanJob(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, j)
	}
	return out, rows.Err()
}

func scanJob(row database.Rows) (job.Job, error) {
	var (
		j     job.Job
		attrs []byte
	)
	if err := row.Scan(
		&j.ID, &j.Title, &j.Company, &j.Location, &j.Salary, &attrs, &j.JobURL,
		&j.DatePosted, &j.Description, &j.Status, &j.MatchScore,
		&j.DateScraped, &j.DateLastSeen,
	); err != nil {
		return job.Job{}, err
	}
	if len(attrs) > 0 {
		// Unexpected attribute shapes degrade to no tags, never an error.
		_ = json.Unmarshal(attrs, &j.Tags)
	}
	return j, nil
}

func (r *PostgresJobRepository) Upsert(ctx context.Context, in JobUpsert) (bool, error) {
	attrs, err := json.Marshal(in.Tags)
	if err != nil {
		return false, err
	}
	now := time.Now().UTC()

	row := r.db.QueryRow(ctx,
		`INSERT INTO jobs (id, title, company, location, salary, attributes, job_url,
		                   date_posted, description, status, date_scraped, date_last_seen)
		 VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$11)
		 ON CONFLICT (job_url) DO UPDATE SET
			title = EXCLUDED.title,
			company = EXCLUDED.company,
			location = EXCLUDED.location,
			salary = EXCLUDED.salary,
			attributes = EXCLUDED.attributes,
			date_posted = EXCLUDED.date_posted,
			description = EXCLUDED.description,
			status = $10,
			date_last_seen = $11
		 RETURNING (xmax = 0)`,
		uuid.New(), in.Title, in.Company, in.Location, in.Salary, attrs,
		in.JobURL, in.DatePosted, in.Description, job.StatusActive, now,
	)

	var created bool
	if err := row.Scan(&created); err != nil {
		return false, err
	}
	return created, nil
}

func (r *PostgresJobRepository) UpdateMatchScore(ctx context.Context, id uuid.UUID, score float64) error {
	n, err := r.db.Exec(ctx,
		`UPDATE jobs SET match_score = $2 WHERE id = $1`,
		id, score,
	)
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *PostgresJobRepository) ArchiveStale(ctx context.Context, threshold time.Time) (int64, error) {
	return r.db.Exec(ctx,
		`UPDATE jobs SET status = $1
		 WHERE status = $2 AND date_last_seen < $3
		   AND (date_posted IS NULL OR date_posted < $3)`,
		job.StatusArchived, job.StatusActive, threshold,
	)
}

func (r *PostgresJobRepository) PurgeArchived(ctx context.Context, threshold time.Time) (int64, error) {
	return r.db.Exec(ctx,
		`DELETE FROM jobs
		 WHERE status = $1 AND date_last_seen < $2
		   AND (date_posted IS NULL OR date_posted < $2)`,
		job.StatusArchived, threshold,
	)
}
