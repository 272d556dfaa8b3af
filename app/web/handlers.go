package web

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	log "github.com/go-pkgz/lgr"
	"github.com/go-pkgz/syncs"

	"github.com/umputun/jobboard/app/web/enums"
	"github.com/umputun/jobboard/app/web/persistence"
)

// handleDashboard renders jobs posted by the user, posted by others and volunteered for
func (s *Server) handleDashboard(w http.ResponseWriter, r *http.Request) {
	user, _ := userFrom(r)

	var posted, others, working []persistence.Job
	var errPosted, errOthers, errWorking error
	gr := syncs.NewSizedGroup(3, syncs.Context(r.Context()))
	gr.Go(func(ctx context.Context) { posted, errPosted = s.store.JobsByPoster(ctx, user.ID) })
	gr.Go(func(ctx context.Context) { others, errOthers = s.store.JobsNotByPoster(ctx, user.ID) })
	gr.Go(func(ctx context.Context) { working, errWorking = s.store.JobsByWorker(ctx, user.ID) })
	gr.Wait()

	if err := errors.Join(errPosted, errOthers, errWorking); err != nil {
		s.renderStoreError(w, r, err, fmt.Sprintf("load dashboard for user %d", user.ID))
		return
	}

	workingIDs := make(map[int64]bool, len(working))
	for _, j := range working {
		workingIDs[j.ID] = true
	}

	s.render(w, r, http.StatusOK, "dashboard.html", TemplateData{
		PostedJobs: posted,
		OtherJobs:  others,
		WorkJobs:   working,
		Working:    workingIDs,
	})
}

// handleCreate renders empty job form
func (s *Server) handleCreate(w http.ResponseWriter, r *http.Request) {
	s.render(w, r, http.StatusOK, "create.html", TemplateData{})
}

// handleCreateProcess validates job form and posts the job as the current user
func (s *Server) handleCreateProcess(w http.ResponseWriter, r *http.Request) {
	user, _ := userFrom(r)
	form := parseJobForm(r)

	if errs := form.validate(); len(errs) > 0 {
		s.render(w, r, http.StatusUnprocessableEntity, "create.html", TemplateData{Errors: errs, Form: form.values()})
		return
	}

	job, err := s.store.CreateJob(r.Context(), persistence.Job{
		Title:       form.Title,
		Description: form.Description,
		Location:    form.Location,
		PosterID:    user.ID,
	})
	if err != nil {
		s.renderStoreError(w, r, err, "create job")
		return
	}

	log.Printf("[INFO] user %d posted job %d", user.ID, job.ID)
	http.Redirect(w, r, "/dashboard", http.StatusSeeOther)
}

// handleView renders a job with its poster and volunteers, public
func (s *Server) handleView(w http.ResponseWriter, r *http.Request) {
	id, ok := s.jobID(w, r)
	if !ok {
		return
	}

	job, err := s.store.JobByID(r.Context(), id)
	if err != nil {
		s.renderStoreError(w, r, err, fmt.Sprintf("get job %d", id))
		return
	}

	workers, err := s.store.JobWorkers(r.Context(), id)
	if err != nil {
		s.renderStoreError(w, r, err, fmt.Sprintf("get workers of job %d", id))
		return
	}

	data := TemplateData{Job: job, Workers: workers}
	if user, ok := userFrom(r); ok {
		for _, wrk := range workers {
			if wrk.ID == user.ID {
				data.IsWorker = true
				break
			}
		}
	}
	s.render(w, r, http.StatusOK, "view.html", data)
}

// handleUpdate renders job form filled with current values, poster only
func (s *Server) handleUpdate(w http.ResponseWriter, r *http.Request) {
	job, ok := s.posterJob(w, r)
	if !ok {
		return
	}
	form := jobForm{Title: job.Title, Description: job.Description, Location: job.Location}
	s.render(w, r, http.StatusOK, "update.html", TemplateData{Job: job, Form: form.values()})
}

// handleUpdateProcess validates job form and changes the job in place, poster only
func (s *Server) handleUpdateProcess(w http.ResponseWriter, r *http.Request) {
	job, ok := s.posterJob(w, r)
	if !ok {
		return
	}

	form := parseJobForm(r)
	if errs := form.validate(); len(errs) > 0 {
		s.render(w, r, http.StatusUnprocessableEntity, "update.html", TemplateData{Job: job, Errors: errs, Form: form.values()})
		return
	}

	job.Title, job.Description, job.Location = form.Title, form.Description, form.Location
	if err := s.store.UpdateJob(r.Context(), job); err != nil {
		s.renderStoreError(w, r, err, fmt.Sprintf("update job %d", job.ID))
		return
	}

	log.Printf("[INFO] job %d updated", job.ID)
	sessionFrom(r).AddFlash(enums.LevelSuccess, msgUpdated)
	http.Redirect(w, r, fmt.Sprintf("/update/%d", job.ID), http.StatusSeeOther)
}

// handleDelete renders delete confirmation, poster only
func (s *Server) handleDelete(w http.ResponseWriter, r *http.Request) {
	job, ok := s.posterJob(w, r)
	if !ok {
		return
	}
	s.render(w, r, http.StatusOK, "delete.html", TemplateData{Job: job})
}

// handleConfirm deletes the job with its volunteer records, poster only
func (s *Server) handleConfirm(w http.ResponseWriter, r *http.Request) {
	job, ok := s.posterJob(w, r)
	if !ok {
		return
	}

	if err := s.store.DeleteJob(r.Context(), job.ID); err != nil {
		s.renderStoreError(w, r, err, fmt.Sprintf("delete job %d", job.ID))
		return
	}

	log.Printf("[INFO] job %d deleted", job.ID)
	http.Redirect(w, r, "/dashboard", http.StatusSeeOther)
}

// handleWork adds the current user to job volunteers and notifies the poster in background
func (s *Server) handleWork(w http.ResponseWriter, r *http.Request) {
	user, _ := userFrom(r)
	id, ok := s.jobID(w, r)
	if !ok {
		return
	}

	job, err := s.store.JobByID(r.Context(), id)
	if err != nil {
		s.renderStoreError(w, r, err, fmt.Sprintf("get job %d", id))
		return
	}

	if err := s.store.AddWorker(r.Context(), job.ID, user.ID); err != nil {
		s.renderStoreError(w, r, err, fmt.Sprintf("add worker %d to job %d", user.ID, job.ID))
		return
	}
	log.Printf("[INFO] user %d volunteered for job %d", user.ID, job.ID)

	ctx := context.WithoutCancel(r.Context())
	s.notifyWG.Go(func() { s.notifyPoster(ctx, job, user) })
	http.Redirect(w, r, "/dashboard", http.StatusSeeOther)
}

// handleDone removes the current user from job volunteers, no-op if not there
func (s *Server) handleDone(w http.ResponseWriter, r *http.Request) {
	user, _ := userFrom(r)
	id, ok := s.jobID(w, r)
	if !ok {
		return
	}

	if err := s.store.RemoveWorker(r.Context(), id, user.ID); err != nil {
		s.renderStoreError(w, r, err, fmt.Sprintf("remove worker %d from job %d", user.ID, id))
		return
	}
	log.Printf("[INFO] user %d withdrew from job %d", user.ID, id)
	http.Redirect(w, r, "/dashboard", http.StatusSeeOther)
}

// notifyPoster sends volunteer notification if enabled, errors are logged only
func (s *Server) notifyPoster(ctx context.Context, job persistence.Job, worker persistence.User) {
	if s.notifier == nil || job.PosterID == worker.ID {
		return
	}
	poster, err := s.store.UserByID(ctx, job.PosterID)
	if err != nil {
		log.Printf("[WARN] can't get poster %d of job %d, %v", job.PosterID, job.ID, err)
		return
	}
	if err := s.notifier.Volunteered(ctx, job, poster, worker); err != nil {
		log.Printf("[WARN] failed to notify poster of job %d, %v", job.ID, err)
	}
}

// posterJob loads job from path and checks the current user posted it.
// Writes the error page and returns false on any failure.
func (s *Server) posterJob(w http.ResponseWriter, r *http.Request) (persistence.Job, bool) {
	user, _ := userFrom(r)
	id, ok := s.jobID(w, r)
	if !ok {
		return persistence.Job{}, false
	}

	job, err := s.store.JobByID(r.Context(), id)
	if err != nil {
		s.renderStoreError(w, r, err, fmt.Sprintf("get job %d", id))
		return persistence.Job{}, false
	}

	if job.PosterID != user.ID {
		log.Printf("[WARN] user %d tried to modify job %d of user %d", user.ID, job.ID, job.PosterID)
		s.renderError(w, r, http.StatusForbidden, "Only the poster can change this job.")
		return persistence.Job{}, false
	}
	return job, true
}

// jobID parses job id from the path, renders 404 if it is not a positive integer
func (s *Server) jobID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(r.PathValue("job_id"), 10, 64)
	if err != nil || id <= 0 {
		s.renderError(w, r, http.StatusNotFound, "Job not found.")
		return 0, false
	}
	return id, true
}
