package web

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	log "github.com/go-pkgz/lgr"
	"github.com/go-pkgz/rest"

	"github.com/umputun/jobboard/app/web/persistence"
)

// APIJobsResponse is the JSON response for /api/v1/jobs
type APIJobsResponse struct {
	Jobs      []APIJob  `json:"jobs"`
	Total     int       `json:"total"`
	Timestamp time.Time `json:"timestamp"`
}

// APIJob represents a job in JSON API response
type APIJob struct {
	ID          int64       `json:"id"`
	Title       string      `json:"title"`
	Description string      `json:"description"`
	Location    string      `json:"location"`
	Poster      APIPerson   `json:"poster"`
	Workers     []APIPerson `json:"workers,omitempty"`
	CreatedAt   time.Time   `json:"created_at,omitzero"`
	UpdatedAt   time.Time   `json:"updated_at,omitzero"`
}

// APIPerson is a user reference without contact details
type APIPerson struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// toAPIJob converts persistence.Job to APIJob
func toAPIJob(j persistence.Job) APIJob {
	return APIJob{
		ID:          j.ID,
		Title:       j.Title,
		Description: j.Description,
		Location:    j.Location,
		Poster:      APIPerson{ID: j.PosterID, Name: j.PosterName()},
		CreatedAt:   j.CreatedAt,
		UpdatedAt:   j.UpdatedAt,
	}
}

// handleAPIJobs returns all jobs as JSON
func (s *Server) handleAPIJobs(w http.ResponseWriter, r *http.Request) {
	jobs, err := s.store.AllJobs(r.Context())
	if err != nil {
		log.Printf("[ERROR] failed to get jobs: %v", err)
		s.writeJSONError(w, http.StatusInternalServerError, "failed to load jobs")
		return
	}

	resp := APIJobsResponse{Jobs: make([]APIJob, 0, len(jobs)), Total: len(jobs), Timestamp: time.Now()}
	for _, j := range jobs {
		resp.Jobs = append(resp.Jobs, toAPIJob(j))
	}
	rest.RenderJSON(w, resp)
}

// handleAPIJob returns a job with its volunteers as JSON
func (s *Server) handleAPIJob(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(r.PathValue("job_id"), 10, 64)
	if err != nil || id <= 0 {
		s.writeJSONError(w, http.StatusBadRequest, "invalid job ID")
		return
	}

	job, err := s.store.JobByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, persistence.ErrNotFound) {
			s.writeJSONError(w, http.StatusNotFound, "job not found")
			return
		}
		log.Printf("[ERROR] failed to get job %d: %v", id, err)
		s.writeJSONError(w, http.StatusInternalServerError, "failed to load job")
		return
	}

	workers, err := s.store.JobWorkers(r.Context(), id)
	if err != nil {
		log.Printf("[ERROR] failed to get workers of job %d: %v", id, err)
		s.writeJSONError(w, http.StatusInternalServerError, "failed to load job workers")
		return
	}

	resp := toAPIJob(job)
	for _, u := range workers {
		resp.Workers = append(resp.Workers, APIPerson{ID: u.ID, Name: u.FullName()})
	}
	rest.RenderJSON(w, resp)
}

// handleAPIHealth reports database and host checks, 503 if any failed
func (s *Server) handleAPIHealth(w http.ResponseWriter, r *http.Request) {
	rep := s.health.Check(r.Context())
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	if !rep.OK {
		w.WriteHeader(http.StatusServiceUnavailable)
	}
	rest.RenderJSON(w, rep)
}

// writeJSONError writes a JSON error response
func (s *Server) writeJSONError(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	rest.RenderJSON(w, rest.JSON{"error": message})
}
