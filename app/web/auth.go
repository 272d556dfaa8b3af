package web

import (
	"context"
	"errors"
	"net/http"

	log "github.com/go-pkgz/lgr"

	"github.com/umputun/jobboard/app/web/enums"
	"github.com/umputun/jobboard/app/web/persistence"
	"github.com/umputun/jobboard/app/web/session"
)

type ctxKey int

const (
	ctxSession ctxKey = iota
	ctxUser
)

// sessionFrom returns session attached by withSession, nil if none
func sessionFrom(r *http.Request) *session.Session {
	sess, _ := r.Context().Value(ctxSession).(*session.Session)
	return sess
}

// userFrom returns authenticated user attached by withSession
func userFrom(r *http.Request) (persistence.User, bool) {
	user, ok := r.Context().Value(ctxUser).(persistence.User)
	return user, ok
}

// withSession loads the browser session and, if it carries a user id, the user record
func (s *Server) withSession(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		sess := s.sessions.Load(w, r)
		ctx := context.WithValue(r.Context(), ctxSession, sess)

		if id, ok := sess.UserID(); ok {
			user, err := s.store.UserByID(ctx, id)
			switch {
			case err == nil:
				ctx = context.WithValue(ctx, ctxUser, user)
			case errors.Is(err, persistence.ErrNotFound):
				log.Printf("[WARN] session refers to missing user %d", id)
				sess.ClearUserID()
			default:
				log.Printf("[ERROR] failed to load session user %d: %v", id, err)
				http.Error(w, "Internal Server Error", http.StatusInternalServerError)
				return
			}
		}
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// requireUser redirects anonymous visitors to the entry page
func (s *Server) requireUser(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if _, ok := userFrom(r); !ok {
			if sess := sessionFrom(r); sess != nil {
				sess.AddFlash(enums.LevelError, msgLoginRequired)
			}
			http.Redirect(w, r, "/", http.StatusSeeOther)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// handleIndex renders the entry page with register and login forms
func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	s.render(w, r, http.StatusOK, "index.html", TemplateData{Form: sessionFrom(r).PopForm()})
}

// handleRegister validates the registration form and creates the user.
// All failed rules are reported at once, submitted values except passwords survive the redirect.
func (s *Server) handleRegister(w http.ResponseWriter, r *http.Request) {
	sess := sessionFrom(r)
	form := parseRegisterForm(r)

	errs := form.validate()
	if form.Email != "" {
		exists, err := s.store.EmailExists(r.Context(), form.Email)
		if err != nil {
			log.Printf("[ERROR] failed to check email %s: %v", form.Email, err)
			s.renderError(w, r, http.StatusInternalServerError, "Something went wrong, please try again later.")
			return
		}
		if exists {
			errs = append(errs, msgEmailExists)
		}
	}

	if len(errs) > 0 {
		s.registerFailed(w, r, sess, form, errs...)
		return
	}

	digest, err := s.hasher.Hash(form.Password)
	if err != nil {
		log.Printf("[ERROR] failed to hash password for %s: %v", form.Email, err)
		s.renderError(w, r, http.StatusInternalServerError, "Something went wrong, please try again later.")
		return
	}

	user, err := s.store.CreateUser(r.Context(), persistence.User{
		FirstName:    form.FirstName,
		LastName:     form.LastName,
		Email:        form.Email,
		PasswordHash: digest,
	})
	if err != nil {
		if errors.Is(err, persistence.ErrEmailExists) { // lost a race with concurrent registration
			s.registerFailed(w, r, sess, form, msgEmailExists)
			return
		}
		log.Printf("[ERROR] failed to create user %s: %v", form.Email, err)
		s.renderError(w, r, http.StatusInternalServerError, "Something went wrong, please try again later.")
		return
	}

	log.Printf("[INFO] registered user %d, %s", user.ID, user.Email)
	sess.AddFlash(enums.LevelSuccess, msgRegistered)
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

func (s *Server) registerFailed(w http.ResponseWriter, r *http.Request, sess *session.Session, form registerForm, errs ...string) {
	for _, e := range errs {
		sess.AddFlash(enums.LevelError, e)
	}
	sess.StashForm(form.stash())
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

// handleLogin checks credentials and binds the user to a fresh session token
func (s *Server) handleLogin(w http.ResponseWriter, r *http.Request) {
	sess := sessionFrom(r)
	email := normalizeEmail(r.PostFormValue("email"))
	password := r.PostFormValue("password")

	user, err := s.store.UserByEmail(r.Context(), email)
	if err != nil {
		if !errors.Is(err, persistence.ErrNotFound) {
			log.Printf("[ERROR] failed to get user %s: %v", email, err)
			s.renderError(w, r, http.StatusInternalServerError, "Something went wrong, please try again later.")
			return
		}
		sess.AddFlash(enums.LevelError, msgEmailUnknown)
		sess.StashForm(map[string]string{"login_email": email})
		http.Redirect(w, r, "/", http.StatusSeeOther)
		return
	}

	if !s.hasher.Verify(password, user.PasswordHash) {
		log.Printf("[INFO] failed login attempt for %s", email)
		sess.AddFlash(enums.LevelError, msgBadPassword)
		sess.StashForm(map[string]string{"login_email": email})
		http.Redirect(w, r, "/", http.StatusSeeOther)
		return
	}

	sess = s.sessions.Renew(w, r, sess)
	sess.SetUserID(user.ID)
	log.Printf("[INFO] user %d logged in", user.ID)
	http.Redirect(w, r, "/dashboard", http.StatusSeeOther)
}

// handleLogout drops the whole session, safe to call without one
func (s *Server) handleLogout(w http.ResponseWriter, r *http.Request) {
	if user, ok := userFrom(r); ok {
		log.Printf("[INFO] user %d logged out", user.ID)
	}
	s.sessions.Destroy(w, r, sessionFrom(r))
	http.Redirect(w, r, "/", http.StatusSeeOther)
}
