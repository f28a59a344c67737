package api

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"net/http/cookiejar"
	"net/url"

	"github.com/mddlabs/mddctl/internal/client/storage"
)

// persistentJar wraps a cookie jar and writes the session cookies for the
// server through to local storage, so the next process run resumes the same
// session instead of starting anonymous. Only name/value pairs are stored;
// the server re-issues attributes on its next Set-Cookie.
type persistentJar struct {
	inner http.CookieJar
	store storage.SessionStorage
	base  *url.URL
}

func newPersistentJar(base *url.URL, store storage.SessionStorage) (*persistentJar, error) {
	inner, err := cookiejar.New(nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create cookie jar: %w", err)
	}

	jar := &persistentJar{
		inner: inner,
		store: store,
		base:  base,
	}

	stored, err := store.GetSession(context.Background())
	switch {
	case err == nil:
		cookies := make([]*http.Cookie, 0, len(stored))
		for _, c := range stored {
			cookies = append(cookies, &http.Cookie{Name: c.Name, Value: c.Value, Path: "/"})
		}
		inner.SetCookies(base, cookies)
	case errors.Is(err, storage.ErrSessionNotFound):
		// first run, nothing to resume
	default:
		return nil, fmt.Errorf("failed to load stored session: %w", err)
	}

	return jar, nil
}

// SetCookies updates the jar and persists the resulting session cookies.
// The CookieJar interface has no error return, so a failed write only logs:
// the in-memory session keeps working for the rest of the process.
func (j *persistentJar) SetCookies(u *url.URL, cookies []*http.Cookie) {
	j.inner.SetCookies(u, cookies)

	current := j.inner.Cookies(j.base)
	stored := make([]storage.Cookie, 0, len(current))
	for _, c := range current {
		stored = append(stored, storage.Cookie{Name: c.Name, Value: c.Value})
	}
	if err := j.store.SaveSession(context.Background(), stored); err != nil {
		slog.Debug("failed to persist session cookies", "error", err)
	}
}

func (j *persistentJar) Cookies(u *url.URL) []*http.Cookie {
	return j.inner.Cookies(u)
}
