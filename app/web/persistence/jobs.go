package persistence

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
)

// Job represents a posted task with its poster names joined in
type Job struct {
	ID              int64     `db:"id"`
	Title           string    `db:"title"`
	Description     string    `db:"description"`
	Location        string    `db:"location"`
	PosterID        int64     `db:"poster_id"`
	PosterFirstName string    `db:"poster_first_name"`
	PosterLastName  string    `db:"poster_last_name"`
	CreatedAt       time.Time `db:"created_at"`
	UpdatedAt       time.Time `db:"updated_at"`
}

// PosterName returns the full name of the poster
func (j Job) PosterName() string {
	return j.PosterFirstName + " " + j.PosterLastName
}

// CreateJob stores a new job posted by job.PosterID and returns it with assigned id and timestamps
func (s *Store) CreateJob(ctx context.Context, job Job) (Job, error) {
	now := time.Now().UTC()
	job.CreatedAt, job.UpdatedAt = now, now

	query, args, err := s.builder.Insert("jobs").
		Columns("title", "description", "location", "poster_id", "created_at", "updated_at").
		Values(job.Title, job.Description, job.Location, job.PosterID, job.CreatedAt, job.UpdatedAt).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return Job{}, fmt.Errorf("failed to build create job query: %w", err)
	}

	if err := s.db.QueryRowxContext(ctx, query, args...).Scan(&job.ID); err != nil {
		return Job{}, fmt.Errorf("failed to create job %q: %w", job.Title, err)
	}
	return job, nil
}

// JobByID returns job by id or ErrNotFound
func (s *Store) JobByID(ctx context.Context, id int64) (Job, error) {
	query, args, err := s.jobsQuery().Where(sq.Eq{"j.id": id}).Limit(1).ToSql()
	if err != nil {
		return Job{}, fmt.Errorf("failed to build job query: %w", err)
	}

	var job Job
	if err := s.db.GetContext(ctx, &job, query, args...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Job{}, ErrNotFound
		}
		return Job{}, fmt.Errorf("failed to get job %d: %w", id, err)
	}
	return job, nil
}

// UpdateJob changes title, description and location of an existing job.
// Poster, volunteers and creation time are left untouched.
func (s *Store) UpdateJob(ctx context.Context, job Job) error {
	query, args, err := s.builder.Update("jobs").
		Set("title", job.Title).
		Set("description", job.Description).
		Set("location", job.Location).
		Set("updated_at", time.Now().UTC()).
		Where(sq.Eq{"id": job.ID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build update job query: %w", err)
	}

	res, err := s.db.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("failed to update job %d: %w", job.ID, err)
	}
	return checkAffected(res)
}

// DeleteJob removes the job and its work records in a transaction
func (s *Store) DeleteJob(ctx context.Context, id int64) error {
	tx, err := s.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback() //nolint:errcheck // no-op after commit

	query, args, err := s.builder.Delete("job_workers").Where(sq.Eq{"job_id": id}).ToSql()
	if err != nil {
		return fmt.Errorf("failed to build delete workers query: %w", err)
	}
	if _, err := tx.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("failed to delete workers of job %d: %w", id, err)
	}

	query, args, err = s.builder.Delete("jobs").Where(sq.Eq{"id": id}).ToSql()
	if err != nil {
		return fmt.Errorf("failed to build delete job query: %w", err)
	}
	res, err := tx.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("failed to delete job %d: %w", id, err)
	}
	if err := checkAffected(res); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}

// AllJobs returns every job ordered by id
func (s *Store) AllJobs(ctx context.Context) ([]Job, error) {
	return s.selectJobs(ctx, s.jobsQuery())
}

// JobsByPoster returns jobs posted by the user
func (s *Store) JobsByPoster(ctx context.Context, userID int64) ([]Job, error) {
	return s.selectJobs(ctx, s.jobsQuery().Where(sq.Eq{"j.poster_id": userID}))
}

// JobsNotByPoster returns jobs posted by anyone except the user
func (s *Store) JobsNotByPoster(ctx context.Context, userID int64) ([]Job, error) {
	return s.selectJobs(ctx, s.jobsQuery().Where(sq.NotEq{"j.poster_id": userID}))
}

// JobsByWorker returns jobs the user volunteered for
func (s *Store) JobsByWorker(ctx context.Context, userID int64) ([]Job, error) {
	return s.selectJobs(ctx, s.jobsQuery().
		Join("job_workers w ON w.job_id = j.id").
		Where(sq.Eq{"w.user_id": userID}))
}

// JobWorkers returns users volunteering for the job, in sign-up order
func (s *Store) JobWorkers(ctx context.Context, jobID int64) ([]User, error) {
	query, args, err := s.builder.
		Select("u.id", "u.first_name", "u.last_name", "u.email", "u.password_hash", "u.created_at", "u.updated_at").
		From("users u").
		Join("job_workers w ON w.user_id = u.id").
		Where(sq.Eq{"w.job_id": jobID}).
		OrderBy("w.created_at", "u.id").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build workers query: %w", err)
	}

	users := []User{}
	if err := s.db.SelectContext(ctx, &users, query, args...); err != nil {
		return nil, fmt.Errorf("failed to get workers of job %d: %w", jobID, err)
	}
	return users, nil
}

// AddWorker adds the user to the job volunteers, adding an existing volunteer again is a no-op
func (s *Store) AddWorker(ctx context.Context, jobID, userID int64) error {
	query, args, err := s.builder.Insert("job_workers").
		Columns("job_id", "user_id", "created_at").
		Values(jobID, userID, time.Now().UTC()).
		Suffix("ON CONFLICT (job_id, user_id) DO NOTHING").
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build add worker query: %w", err)
	}
	if _, err := s.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("failed to add worker %d to job %d: %w", userID, jobID, err)
	}
	return nil
}

// RemoveWorker removes the user from the job volunteers, no-op if not there
func (s *Store) RemoveWorker(ctx context.Context, jobID, userID int64) error {
	query, args, err := s.builder.Delete("job_workers").
		Where(sq.Eq{"job_id": jobID, "user_id": userID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build remove worker query: %w", err)
	}
	if _, err := s.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("failed to remove worker %d from job %d: %w", userID, jobID, err)
	}
	return nil
}

func (s *Store) jobsQuery() sq.SelectBuilder {
	return s.builder.
		Select("j.id", "j.title", "j.description", "j.location", "j.poster_id",
			"u.first_name AS poster_first_name", "u.last_name AS poster_last_name",
			"j.created_at", "j.updated_at").
		From("jobs j").
		Join("users u ON u.id = j.poster_id").
		OrderBy("j.id")
}

func (s *Store) selectJobs(ctx context.Context, qb sq.SelectBuilder) ([]Job, error) {
	query, args, err := qb.ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build jobs query: %w", err)
	}

	jobs := []Job{}
	if err := s.db.SelectContext(ctx, &jobs, query, args...); err != nil {
		return nil, fmt.Errorf("failed to query jobs: %w", err)
	}
	return jobs, nil
}
