package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gorilla/sessions"

	"github.com/foodgram/storefront/internal/models"
)

const sessionName = "foodgram-session"

// SessionUser is the client-held record of the authenticated identity.
// The role never changes for the lifetime of a session; changing role
// means logging in again.
type SessionUser struct {
	ID    int
	Role  string
	Name  string
	Email string
}

// SessionManager owns the one session slot. Login and Logout are the only
// writer paths; Current never mutates. A missing or malformed cookie reads
// as "not logged in" rather than an error.
type SessionManager struct {
	store *sessions.CookieStore
}

func NewSessionManager(store *sessions.CookieStore) *SessionManager {
	return &SessionManager{store: store}
}

func (m *SessionManager) session(r *http.Request) *sessions.Session {
	// Get never fails fatally: a bad cookie yields a fresh session.
	session, _ := m.store.Get(r, sessionName)
	return session
}

// Current returns the logged-in user hydrated from the cookie, or false
// when there is none.
func (m *SessionManager) Current(r *http.Request) (SessionUser, bool) {
	session := m.session(r)
	user, ok := session.Values["user"].(SessionUser)
	if !ok || user.ID == 0 {
		return SessionUser{}, false
	}
	return user, true
}

// Login replaces whatever session existed before. Last login wins; there
// is no multi-account support.
func (m *SessionManager) Login(w http.ResponseWriter, r *http.Request, user *models.User) error {
	session := m.session(r)
	session.Values["user"] = SessionUser{
		ID:    user.ID,
		Role:  user.Role,
		Name:  user.Name,
		Email: user.Email,
	}
	session.Options.Path = "/"
	return session.Save(r, w)
}

func (m *SessionManager) Logout(w http.ResponseWriter, r *http.Request) error {
	session := m.session(r)
	delete(session.Values, "user")
	session.Options.MaxAge = -1 // Expire immediately
	return session.Save(r, w)
}

// Flash queues a one-time message and saves the session.
func (m *SessionManager) Flash(w http.ResponseWriter, r *http.Request, kind, message string) {
	session := m.session(r)
	session.AddFlash(FlashMessage{Type: kind, Message: message})
	if err := session.Save(r, w); err != nil {
		slog.Error("Failed to save session", "error", err)
	}
}

// PopFlashes drains queued messages and saves the session to clear them.
func (m *SessionManager) PopFlashes(w http.ResponseWriter, r *http.Request) []FlashMessage {
	session := m.session(r)
	messages := GetFlash(session)
	session.Save(r, w)
	return messages
}
