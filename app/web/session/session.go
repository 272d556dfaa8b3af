// Package session implements server-side browser sessions. A session is a small key-value bag
// kept in memory and addressed by an opaque random token stored in a cookie. Sessions expire
// after a TTL of inactivity.
package session

import (
	"net/http"
	"sync"
	"time"

	cache "github.com/go-pkgz/expirable-cache/v3"
	log "github.com/go-pkgz/lgr"
	"github.com/google/uuid"

	"github.com/umputun/jobboard/app/web/enums"
)

const (
	keyUserID = "user_id"
	keyFlash  = "_flash"
	keyForm   = "_form"
)

// Flash is a one-time message shown on the next rendered page
type Flash struct {
	Level enums.Level
	Text  string
}

// Session is a key-value bag scoped to one browser session. Safe for concurrent use.
type Session struct {
	token   string
	mu      sync.Mutex
	values  map[string]any
	onWrite func(*Session) // stores not yet saved session on the first write
}

func newSession() *Session {
	return &Session{token: uuid.NewString(), values: map[string]any{}}
}

// Token returns the opaque session token
func (s *Session) Token() string { return s.token }

// Get returns value by key
func (s *Session) Get(key string) (any, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	v, ok := s.values[key]
	return v, ok
}

// Set stores value by key
func (s *Session) Set(key string, value any) {
	s.mu.Lock()
	s.values[key] = value
	s.mu.Unlock()
	s.written()
}

// written calls the pending save hook once
func (s *Session) written() {
	s.mu.Lock()
	fn := s.onWrite
	s.onWrite = nil
	s.mu.Unlock()
	if fn != nil {
		fn(s)
	}
}

// Delete removes value by key
func (s *Session) Delete(key string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.values, key)
}

// Clear removes all values
func (s *Session) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.values = map[string]any{}
}

// Len returns number of stored values
func (s *Session) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.values)
}

// UserID returns id of the authenticated user, false if nobody logged in
func (s *Session) UserID() (int64, bool) {
	v, ok := s.Get(keyUserID)
	if !ok {
		return 0, false
	}
	id, ok := v.(int64)
	return id, ok
}

// SetUserID marks the session as authenticated by the user
func (s *Session) SetUserID(id int64) {
	s.Set(keyUserID, id)
}

// ClearUserID makes the session anonymous
func (s *Session) ClearUserID() {
	s.Delete(keyUserID)
}

// AddFlash queues a message for the next rendered page
func (s *Session) AddFlash(level enums.Level, text string) {
	s.mu.Lock()
	flashes, _ := s.values[keyFlash].([]Flash)
	s.values[keyFlash] = append(flashes, Flash{Level: level, Text: text})
	s.mu.Unlock()
	s.written()
}

// Flashes returns queued messages and removes them from the session
func (s *Session) Flashes() []Flash {
	s.mu.Lock()
	defer s.mu.Unlock()
	flashes, _ := s.values[keyFlash].([]Flash)
	delete(s.values, keyFlash)
	return flashes
}

// StashForm keeps submitted form values to repopulate the form on the next render
func (s *Session) StashForm(values map[string]string) {
	s.Set(keyForm, values)
}

// PopForm returns stashed form values and removes them, never nil
func (s *Session) PopForm() map[string]string {
	s.mu.Lock()
	defer s.mu.Unlock()
	form, _ := s.values[keyForm].(map[string]string)
	delete(s.values, keyForm)
	if form == nil {
		form = map[string]string{}
	}
	return form
}

// copyFrom replaces own values with a copy of other's values
func (s *Session) copyFrom(other *Session) {
	other.mu.Lock()
	values := make(map[string]any, len(other.values))
	for k, v := range other.values {
		values[k] = v
	}
	other.mu.Unlock()

	s.mu.Lock()
	s.values = values
	s.mu.Unlock()
}

// Options configure the Manager
type Options struct {
	CookieName string        // defaults to "jobboard-session"
	CookiePath string        // defaults to "/"
	TTL        time.Duration // inactivity timeout, defaults to 24h
	MaxKeys    int           // max stored sessions, 0 for unlimited
}

// Manager keeps sessions and maps them to cookies
type Manager struct {
	store      cache.Cache[string, *Session]
	cookieName string
	cookiePath string
	ttl        time.Duration
}

// NewManager makes a session manager with in-memory storage
func NewManager(opts Options) *Manager {
	if opts.CookieName == "" {
		opts.CookieName = "jobboard-session"
	}
	if opts.CookiePath == "" {
		opts.CookiePath = "/"
	}
	if opts.TTL <= 0 {
		opts.TTL = 24 * time.Hour
	}

	store := cache.NewCache[string, *Session]().WithTTL(opts.TTL)
	if opts.MaxKeys > 0 {
		store = store.WithMaxKeys(opts.MaxKeys).WithLRU()
	}
	return &Manager{store: store, cookieName: opts.CookieName, cookiePath: opts.CookiePath, ttl: opts.TTL}
}

// Load returns the session referenced by request cookie and slides its expiration together
// with the cookie. If there is none, or it expired, a new empty session is returned. The new
// session is stored and its cookie set only when something is written to it, so read-only
// anonymous requests leave nothing behind.
func (m *Manager) Load(w http.ResponseWriter, r *http.Request) *Session {
	if cookie, err := r.Cookie(m.cookieName); err == nil && cookie.Value != "" {
		if sess, ok := m.store.Get(cookie.Value); ok {
			m.store.Set(sess.token, sess, m.ttl)
			m.setCookie(w, r, sess.token, int(m.ttl.Seconds()))
			return sess
		}
	}

	sess := newSession()
	sess.onWrite = func(s *Session) {
		m.store.Set(s.token, s, m.ttl)
		m.setCookie(w, r, s.token, int(m.ttl.Seconds()))
	}
	return sess
}

// Get returns live session by token
func (m *Manager) Get(token string) (*Session, bool) {
	return m.store.Get(token)
}

// Renew moves the bag to a new token and invalidates the old one. Called on login.
func (m *Manager) Renew(w http.ResponseWriter, r *http.Request, sess *Session) *Session {
	renewed := newSession()
	renewed.copyFrom(sess)
	m.store.Invalidate(sess.token)
	m.store.Set(renewed.token, renewed, m.ttl)
	m.setCookie(w, r, renewed.token, int(m.ttl.Seconds()))
	return renewed
}

// Destroy clears the bag, drops the session and expires its cookie
func (m *Manager) Destroy(w http.ResponseWriter, r *http.Request, sess *Session) {
	sess.mu.Lock()
	sess.onWrite = nil
	sess.mu.Unlock()
	sess.Clear()
	m.store.Invalidate(sess.token)
	m.setCookie(w, r, "", -1)
}

// DeleteExpired purges expired sessions
func (m *Manager) DeleteExpired() {
	before := m.store.Len()
	m.store.DeleteExpired()
	if removed := before - m.store.Len(); removed > 0 {
		log.Printf("[DEBUG] purged %d expired sessions", removed)
	}
}

// Len returns number of stored sessions
func (m *Manager) Len() int {
	return m.store.Len()
}

func (m *Manager) setCookie(w http.ResponseWriter, r *http.Request, value string, maxAge int) {
	http.SetCookie(w, &http.Cookie{
		Name:     m.cookieName,
		Value:    value,
		Path:     m.cookiePath,
		MaxAge:   maxAge,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
		Secure:   r.TLS != nil || r.Header.Get("X-Forwarded-Proto") == "https",
	})
}
