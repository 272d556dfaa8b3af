package web

import (
	"context"
	"errors"
	"fmt"
	"html"
	"net/http"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/umputun/jobboard/app/web/mocks"
	"github.com/umputun/jobboard/app/web/persistence"
)

func jobValues(title, description, location string) url.Values {
	return url.Values{"title": {title}, "description": {description}, "location": {location}}
}

func TestServer_handleDashboard(t *testing.T) {
	srv, store := prepTestServer(t)
	alice := register(t, store, "Alice", "alice@example.com", "password1")
	bob := register(t, store, "Bob", "bob@example.com", "password1")

	alicesJob := postJob(t, store, alice, "Alice fence job")
	bobsJob := postJob(t, store, bob, "Bob garden job")
	bobsOther := postJob(t, store, bob, "Bob garage job")
	require.NoError(t, store.AddWorker(context.Background(), bobsJob.ID, alice.ID))

	c := login(t, srv, "alice@example.com", "password1")
	rec := c.get("/dashboard")
	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()

	assert.Contains(t, body, alicesJob.Title)
	assert.Contains(t, body, bobsJob.Title)
	assert.Contains(t, body, bobsOther.Title)
	assert.Contains(t, body, fmt.Sprintf(`href="/update/%d"`, alicesJob.ID))
	assert.NotContains(t, body, fmt.Sprintf(`href="/update/%d"`, bobsJob.ID))
	assert.Contains(t, body, fmt.Sprintf(`href="/work/%d"`, bobsOther.ID))
	assert.NotContains(t, body, fmt.Sprintf(`href="/work/%d"`, bobsJob.ID), "already volunteering")
	assert.Contains(t, body, fmt.Sprintf(`href="/done/%d"`, bobsJob.ID))

	t.Run("empty dashboard", func(t *testing.T) {
		require.NoError(t, store.DeleteJob(context.Background(), alicesJob.ID))
		cl := login(t, srv, "alice@example.com", "password1")
		body := html.UnescapeString(cl.get("/dashboard").Body.String())
		assert.Contains(t, body, "You have not posted any jobs yet.")
		assert.Contains(t, body, bobsJob.Title)
	})

	t.Run("store failure", func(t *testing.T) {
		mock := &mocks.PersistenceMock{
			UserByEmailFunc: func(context.Context, string) (persistence.User, error) {
				return persistence.User{ID: 1, FirstName: "A", PasswordHash: "hashed:password1"}, nil
			},
			UserByIDFunc: func(context.Context, int64) (persistence.User, error) {
				return persistence.User{ID: 1, FirstName: "A"}, nil
			},
			JobsByPosterFunc:    func(context.Context, int64) ([]persistence.Job, error) { return nil, nil },
			JobsNotByPosterFunc: func(context.Context, int64) ([]persistence.Job, error) { return nil, errors.New("db is down") },
			JobsByWorkerFunc:    func(context.Context, int64) ([]persistence.Job, error) { return nil, nil },
		}
		s, err := New(Config{Store: mock, Hasher: fastHasher{}})
		require.NoError(t, err)
		rec := login(t, s, "a@example.com", "password1").get("/dashboard")
		assert.Equal(t, http.StatusInternalServerError, rec.Code)
		assert.Len(t, mock.JobsByPosterCalls(), 1)
		assert.Len(t, mock.JobsNotByPosterCalls(), 1)
		assert.Len(t, mock.JobsByWorkerCalls(), 1)
	})
}

func TestServer_handleCreate(t *testing.T) {
	srv, store := prepTestServer(t)
	alice := register(t, store, "Alice", "alice@example.com", "password1")
	c := login(t, srv, "alice@example.com", "password1")

	t.Run("form", func(t *testing.T) {
		rec := c.get("/create")
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), `action="/createProcess"`)
	})

	t.Run("short title rejected", func(t *testing.T) {
		rec := c.post("/createProcess", jobValues("AB", "a long enough description", "Springfield"))
		assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
		body := rec.Body.String()
		assert.Contains(t, body, msgTitleShort)
		assert.Contains(t, body, `value="Springfield"`, "submitted values kept")

		jobs, err := store.AllJobs(context.Background())
		require.NoError(t, err)
		assert.Empty(t, jobs)
	})

	t.Run("too long title and location rejected", func(t *testing.T) {
		rec := c.post("/createProcess", jobValues(strings.Repeat("t", 256), "a long enough description", strings.Repeat("l", 256)))
		assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
		body := rec.Body.String()
		assert.Contains(t, body, msgTitleLong)
		assert.Contains(t, body, msgLocationLong)

		jobs, err := store.AllJobs(context.Background())
		require.NoError(t, err)
		assert.Empty(t, jobs)
	})

	t.Run("all failures reported", func(t *testing.T) {
		rec := c.post("/createProcess", jobValues("AB", "too short", "  "))
		assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
		body := rec.Body.String()
		assert.Contains(t, body, msgTitleShort)
		assert.Contains(t, body, msgDescriptionShort)
		assert.Contains(t, body, msgLocationEmpty)
	})

	t.Run("success", func(t *testing.T) {
		rec := c.post("/createProcess", jobValues("ABCD", "12345678901", "Springfield"))
		assert.Equal(t, http.StatusSeeOther, rec.Code)
		assert.Equal(t, "/dashboard", rec.Header().Get("Location"))

		jobs, err := store.AllJobs(context.Background())
		require.NoError(t, err)
		require.Len(t, jobs, 1)
		assert.Equal(t, "ABCD", jobs[0].Title)
		assert.Equal(t, "12345678901", jobs[0].Description)
		assert.Equal(t, "Springfield", jobs[0].Location)
		assert.Equal(t, alice.ID, jobs[0].PosterID)

		assert.Contains(t, c.follow(rec).Body.String(), "ABCD")
	})
}

func TestServer_handleView(t *testing.T) {
	srv, store := prepTestServer(t)
	alice := register(t, store, "Alice", "alice@example.com", "password1")
	bob := register(t, store, "Bob", "bob@example.com", "password1")
	job := postJob(t, store, alice, "Paint the fence")
	require.NoError(t, store.AddWorker(context.Background(), job.ID, bob.ID))

	t.Run("public view", func(t *testing.T) {
		rec := newTestClient(t, srv).get(fmt.Sprintf("/view/%d", job.ID))
		require.Equal(t, http.StatusOK, rec.Code)
		body := rec.Body.String()
		assert.Contains(t, body, "Paint the fence")
		assert.Contains(t, body, "some long description")
		assert.Contains(t, body, "Alice Tester")
		assert.Contains(t, body, "Bob Tester")
		assert.NotContains(t, body, fmt.Sprintf(`href="/work/%d"`, job.ID), "no actions for anonymous")
	})

	t.Run("poster sees edit and delete", func(t *testing.T) {
		body := login(t, srv, "alice@example.com", "password1").get(fmt.Sprintf("/view/%d", job.ID)).Body.String()
		assert.Contains(t, body, fmt.Sprintf(`href="/update/%d"`, job.ID))
		assert.Contains(t, body, fmt.Sprintf(`href="/delete/%d"`, job.ID))
	})

	t.Run("volunteer sees done", func(t *testing.T) {
		body := login(t, srv, "bob@example.com", "password1").get(fmt.Sprintf("/view/%d", job.ID)).Body.String()
		assert.Contains(t, body, fmt.Sprintf(`href="/done/%d"`, job.ID))
		assert.NotContains(t, body, fmt.Sprintf(`href="/update/%d"`, job.ID))
	})

	for _, path := range []string{"/view/999", "/view/abc", "/view/0", "/view/-1"} {
		t.Run("not found "+path, func(t *testing.T) {
			rec := newTestClient(t, srv).get(path)
			assert.Equal(t, http.StatusNotFound, rec.Code)
			assert.Contains(t, rec.Body.String(), "Job not found.")
		})
	}
}

func TestServer_handleUpdate(t *testing.T) {
	srv, store := prepTestServer(t)
	alice := register(t, store, "Alice", "alice@example.com", "password1")
	bob := register(t, store, "Bob", "bob@example.com", "password1")
	job := postJob(t, store, alice, "Paint the fence")
	require.NoError(t, store.AddWorker(context.Background(), job.ID, bob.ID))

	aliceClient := login(t, srv, "alice@example.com", "password1")
	bobClient := login(t, srv, "bob@example.com", "password1")
	updatePath := fmt.Sprintf("/update/%d", job.ID)
	processPath := fmt.Sprintf("/updateProcess/%d", job.ID)

	t.Run("form prefilled", func(t *testing.T) {
		rec := aliceClient.get(updatePath)
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), `value="Paint the fence"`)
		assert.Contains(t, rec.Body.String(), `value="Springfield"`)
	})

	t.Run("invalid update rejected", func(t *testing.T) {
		rec := aliceClient.post(processPath, jobValues("New", "short", "Shelbyville"))
		assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
		assert.Contains(t, rec.Body.String(), msgTitleShort)
		assert.Contains(t, rec.Body.String(), msgDescriptionShort)
		assert.Contains(t, rec.Body.String(), `value="Shelbyville"`)

		got, err := store.JobByID(context.Background(), job.ID)
		require.NoError(t, err)
		assert.Equal(t, "Paint the fence", got.Title)
	})

	t.Run("other user forbidden", func(t *testing.T) {
		assert.Equal(t, http.StatusForbidden, bobClient.get(updatePath).Code)
		rec := bobClient.post(processPath, jobValues("Bob was here", "changed by someone else", "Nowhere"))
		assert.Equal(t, http.StatusForbidden, rec.Code)

		got, err := store.JobByID(context.Background(), job.ID)
		require.NoError(t, err)
		assert.Equal(t, "Paint the fence", got.Title)
	})

	t.Run("success round trip", func(t *testing.T) {
		rec := aliceClient.post(processPath, jobValues("Paint the big fence", "white paint, two coats", "Shelbyville"))
		assert.Equal(t, http.StatusSeeOther, rec.Code)
		assert.Equal(t, updatePath, rec.Header().Get("Location"))
		assert.Contains(t, aliceClient.follow(rec).Body.String(), msgUpdated)

		got, err := store.JobByID(context.Background(), job.ID)
		require.NoError(t, err)
		assert.Equal(t, job.ID, got.ID)
		assert.Equal(t, "Paint the big fence", got.Title)
		assert.Equal(t, "white paint, two coats", got.Description)
		assert.Equal(t, "Shelbyville", got.Location)
		assert.Equal(t, alice.ID, got.PosterID)
		assert.Equal(t, job.CreatedAt.Unix(), got.CreatedAt.Unix())

		workers, err := store.JobWorkers(context.Background(), job.ID)
		require.NoError(t, err)
		require.Len(t, workers, 1)
		assert.Equal(t, bob.ID, workers[0].ID)

		body := newTestClient(t, srv).get(fmt.Sprintf("/view/%d", job.ID)).Body.String()
		assert.Contains(t, body, "Paint the big fence")
		assert.Contains(t, body, "Shelbyville")
	})

	t.Run("missing job", func(t *testing.T) {
		assert.Equal(t, http.StatusNotFound, aliceClient.get("/update/999").Code)
		assert.Equal(t, http.StatusNotFound, aliceClient.post("/updateProcess/999", jobValues("Title", "a description", "x")).Code)
	})
}

func TestServer_handleDelete(t *testing.T) {
	srv, store := prepTestServer(t)
	alice := register(t, store, "Alice", "alice@example.com", "password1")
	bob := register(t, store, "Bob", "bob@example.com", "password1")
	job := postJob(t, store, alice, "Paint the fence")
	require.NoError(t, store.AddWorker(context.Background(), job.ID, bob.ID))

	aliceClient := login(t, srv, "alice@example.com", "password1")
	bobClient := login(t, srv, "bob@example.com", "password1")
	deletePath := fmt.Sprintf("/delete/%d", job.ID)

	t.Run("confirmation page", func(t *testing.T) {
		rec := aliceClient.get(deletePath)
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), "Paint the fence")
		assert.Contains(t, rec.Body.String(), fmt.Sprintf(`action="/delete/%d/confirm"`, job.ID))
	})

	t.Run("other user forbidden", func(t *testing.T) {
		assert.Equal(t, http.StatusForbidden, bobClient.get(deletePath).Code)
		assert.Equal(t, http.StatusForbidden, bobClient.get(deletePath+"/confirm").Code)
		assert.Equal(t, http.StatusForbidden, bobClient.post(deletePath+"/confirm", url.Values{}).Code)
		_, err := store.JobByID(context.Background(), job.ID)
		require.NoError(t, err)
	})

	t.Run("confirm deletes", func(t *testing.T) {
		rec := aliceClient.post(deletePath+"/confirm", url.Values{})
		assert.Equal(t, http.StatusSeeOther, rec.Code)
		assert.Equal(t, "/dashboard", rec.Header().Get("Location"))

		_, err := store.JobByID(context.Background(), job.ID)
		require.ErrorIs(t, err, persistence.ErrNotFound)
		assert.Equal(t, http.StatusNotFound, newTestClient(t, srv).get(fmt.Sprintf("/view/%d", job.ID)).Code)

		working, err := store.JobsByWorker(context.Background(), bob.ID)
		require.NoError(t, err)
		assert.Empty(t, working)
	})

	t.Run("second delete is not found", func(t *testing.T) {
		assert.Equal(t, http.StatusNotFound, aliceClient.get(deletePath+"/confirm").Code)
		assert.Equal(t, http.StatusNotFound, aliceClient.get(deletePath).Code)
	})

	t.Run("confirm with GET", func(t *testing.T) {
		other := postJob(t, store, alice, "Wash the car")
		rec := aliceClient.get(fmt.Sprintf("/delete/%d/confirm", other.ID))
		assert.Equal(t, http.StatusSeeOther, rec.Code)
		_, err := store.JobByID(context.Background(), other.ID)
		require.ErrorIs(t, err, persistence.ErrNotFound)
	})
}

func TestServer_handleWorkDone(t *testing.T) {
	notifier := &mocks.NotifierMock{
		VolunteeredFunc: func(context.Context, persistence.Job, persistence.User, persistence.User) error { return nil },
	}
	srv, store := prepTestServer(t, func(cfg *Config) { cfg.Notifier = notifier })
	alice := register(t, store, "Alice", "alice@example.com", "password1")
	bob := register(t, store, "Bob", "bob@example.com", "password1")
	job := postJob(t, store, alice, "Paint the fence")
	bobClient := login(t, srv, "bob@example.com", "password1")

	workersOf := func() []persistence.User {
		workers, err := store.JobWorkers(context.Background(), job.ID)
		require.NoError(t, err)
		return workers
	}
	bobsWork := func() []persistence.Job {
		jobs, err := store.JobsByWorker(context.Background(), bob.ID)
		require.NoError(t, err)
		return jobs
	}

	t.Run("work", func(t *testing.T) {
		rec := bobClient.get(fmt.Sprintf("/work/%d", job.ID))
		assert.Equal(t, http.StatusSeeOther, rec.Code)
		assert.Equal(t, "/dashboard", rec.Header().Get("Location"))
		srv.notifyWG.Wait()
		require.Len(t, workersOf(), 1)
		assert.Equal(t, bob.ID, workersOf()[0].ID)
		require.Len(t, bobsWork(), 1)

		require.Len(t, notifier.VolunteeredCalls(), 1)
		call := notifier.VolunteeredCalls()[0]
		assert.Equal(t, job.ID, call.Job.ID)
		assert.Equal(t, alice.ID, call.Poster.ID)
		assert.Equal(t, "alice@example.com", call.Poster.Email)
		assert.Equal(t, bob.ID, call.Worker.ID)
	})

	t.Run("work twice keeps one record", func(t *testing.T) {
		assert.Equal(t, http.StatusSeeOther, bobClient.get(fmt.Sprintf("/work/%d", job.ID)).Code)
		srv.notifyWG.Wait()
		assert.Len(t, workersOf(), 1)
	})

	t.Run("done", func(t *testing.T) {
		rec := bobClient.get(fmt.Sprintf("/done/%d", job.ID))
		assert.Equal(t, http.StatusSeeOther, rec.Code)
		assert.Equal(t, "/dashboard", rec.Header().Get("Location"))
		assert.Empty(t, workersOf())
		assert.Empty(t, bobsWork())
	})

	t.Run("done twice is no-op", func(t *testing.T) {
		assert.Equal(t, http.StatusSeeOther, bobClient.get(fmt.Sprintf("/done/%d", job.ID)).Code)
		assert.Empty(t, workersOf())
	})

	t.Run("poster may volunteer without notification", func(t *testing.T) {
		calls := len(notifier.VolunteeredCalls())
		aliceClient := login(t, srv, "alice@example.com", "password1")
		assert.Equal(t, http.StatusSeeOther, aliceClient.get(fmt.Sprintf("/work/%d", job.ID)).Code)
		srv.notifyWG.Wait()
		require.Len(t, workersOf(), 1)
		assert.Equal(t, alice.ID, workersOf()[0].ID)
		assert.Len(t, notifier.VolunteeredCalls(), calls)
	})

	t.Run("notification failure ignored", func(t *testing.T) {
		notifier.VolunteeredFunc = func(context.Context, persistence.Job, persistence.User, persistence.User) error {
			return errors.New("smtp is down")
		}
		calls := len(notifier.VolunteeredCalls())
		rec := bobClient.get(fmt.Sprintf("/work/%d", job.ID))
		assert.Equal(t, http.StatusSeeOther, rec.Code)
		srv.notifyWG.Wait()
		assert.Len(t, workersOf(), 2)
		assert.Len(t, notifier.VolunteeredCalls(), calls+1)
	})

	t.Run("slow notification does not delay redirect", func(t *testing.T) {
		release := make(chan struct{})
		var gotCtxErr error
		notifier.VolunteeredFunc = func(ctx context.Context, _ persistence.Job, _ persistence.User, _ persistence.User) error {
			<-release
			gotCtxErr = ctx.Err()
			return nil
		}
		_ = bobClient.get(fmt.Sprintf("/done/%d", job.ID))

		st := time.Now()
		rec := bobClient.get(fmt.Sprintf("/work/%d", job.ID))
		assert.Equal(t, http.StatusSeeOther, rec.Code)
		assert.Less(t, time.Since(st), time.Second)

		close(release)
		srv.notifyWG.Wait()
		assert.NoError(t, gotCtxErr, "request end doesn't cancel the notification")
	})

	t.Run("unknown job", func(t *testing.T) {
		assert.Equal(t, http.StatusNotFound, bobClient.get("/work/999").Code)
		assert.Equal(t, http.StatusNotFound, bobClient.get("/work/abc").Code)
		assert.Equal(t, http.StatusNotFound, bobClient.get("/done/abc").Code)
	})
}
