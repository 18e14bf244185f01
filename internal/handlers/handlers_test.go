package handlers

import (
	"bytes"
	"html/template"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/gorilla/sessions"
	"github.com/stretchr/testify/require"

	"github.com/foodgram/storefront/internal/config"
	"github.com/foodgram/storefront/internal/foodapi"
	"github.com/foodgram/storefront/internal/models"
)

// requestLog records every request a handler sends to the fake backend,
// so tests can assert both what was called and what was not.
type requestLog struct {
	mu      sync.Mutex
	entries []loggedRequest
}

type loggedRequest struct {
	Method string
	Path   string
	Body   string
}

func (l *requestLog) add(r *http.Request) {
	body, _ := io.ReadAll(r.Body)
	l.mu.Lock()
	defer l.mu.Unlock()
	l.entries = append(l.entries, loggedRequest{Method: r.Method, Path: r.URL.Path, Body: string(body)})
}

func (l *requestLog) all() []loggedRequest {
	l.mu.Lock()
	defer l.mu.Unlock()
	return append([]loggedRequest(nil), l.entries...)
}

func (l *requestLog) count() int {
	return len(l.all())
}

// newFakeBackend stands in for every remote service at once.
func newFakeBackend(t *testing.T, handler http.HandlerFunc) (*foodapi.Client, *requestLog) {
	t.Helper()
	log := &requestLog{}
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		r.Body = io.NopCloser(bytes.NewReader(body))
		log.add(r)
		r.Body = io.NopCloser(bytes.NewReader(body))
		if handler != nil {
			handler(w, r)
		}
	}))
	t.Cleanup(server.Close)

	client := foodapi.NewClient(config.ServiceURLs{
		User:       server.URL,
		Restaurant: server.URL,
		Category:   server.URL,
		FoodItem:   server.URL,
		Cart:       server.URL,
		Address:    server.URL,
		Order:      server.URL,
	}, 5*time.Second)
	return client, log
}

// postForm builds an urlencoded POST, optionally carrying a session
// cookie from loginAs.
func postForm(target string, cookie *http.Cookie, form url.Values) *http.Request {
	r := httptest.NewRequest(http.MethodPost, target, strings.NewReader(form.Encode()))
	r.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	if cookie != nil {
		r.AddCookie(cookie)
	}
	return r
}

func newTestSessions() *SessionManager {
	store := sessions.NewCookieStore([]byte("0123456789abcdef0123456789abcdef"))
	return NewSessionManager(store)
}

// loginAs runs the real login path and hands back the session cookie.
func loginAs(t *testing.T, m *SessionManager, user *models.User) *http.Cookie {
	t.Helper()
	w := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodGet, "/", nil)
	require.NoError(t, m.Login(w, r, user))
	cookies := w.Result().Cookies()
	require.NotEmpty(t, cookies)
	return cookies[0]
}

// stubTemplates seeds the cache with inline templates, enough for render
// paths without a templates/ dir on disk.
func stubTemplates(t *testing.T, pages map[string]string) *TemplateCache {
	t.Helper()
	tc := NewTemplateCache()
	for name, body := range pages {
		tc.cache[name] = template.Must(template.New(name).Parse(body))
	}
	return tc
}
