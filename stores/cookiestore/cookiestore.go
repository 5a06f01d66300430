// Package cookiestore keeps preferences in HTTP cookies, one cookie per key.
// A Store is bound to a single request and its response writer.
package cookiestore

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"sync"
	"time"

	"github.com/goliatone/go-numfmt"
)

const defaultMaxAge = 365 * 24 * time.Hour

// Store reads cookies from the request and writes Set-Cookie headers to the
// response. Values written during the request are visible to later reads.
type Store struct {
	r *http.Request
	w http.ResponseWriter

	prefix   string
	path     string
	domain   string
	maxAge   time.Duration
	secure   bool
	httpOnly bool
	sameSite http.SameSite

	mu      sync.Mutex
	written map[string]string
}

var _ numfmt.PreferenceStore = &Store{}

// Option configures a Store.
type Option func(*Store)

// WithPrefix prepends prefix to every cookie name.
func WithPrefix(prefix string) Option {
	return func(s *Store) {
		s.prefix = prefix
	}
}

func WithPath(path string) Option {
	return func(s *Store) {
		s.path = path
	}
}

func WithDomain(domain string) Option {
	return func(s *Store) {
		s.domain = domain
	}
}

// WithMaxAge sets cookie lifetime. Zero makes session cookies.
func WithMaxAge(maxAge time.Duration) Option {
	return func(s *Store) {
		s.maxAge = max(maxAge, 0)
	}
}

func WithSecure(secure bool) Option {
	return func(s *Store) {
		s.secure = secure
	}
}

func WithHTTPOnly(httpOnly bool) Option {
	return func(s *Store) {
		s.httpOnly = httpOnly
	}
}

func WithSameSite(sameSite http.SameSite) Option {
	return func(s *Store) {
		s.sameSite = sameSite
	}
}

// New binds a store to one request/response pair. Either may be nil: without
// a request reads only see values written through this store, and without a
// writer Set only records values in memory.
func New(w http.ResponseWriter, r *http.Request, opts ...Option) *Store {
	s := &Store{
		r:        r,
		w:        w,
		path:     "/",
		maxAge:   defaultMaxAge,
		sameSite: http.SameSiteLaxMode,
		written:  make(map[string]string, 2),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *Store) Get(_ context.Context, key string) (string, bool, error) {
	s.mu.Lock()
	value, ok := s.written[key]
	s.mu.Unlock()
	if ok {
		return value, true, nil
	}

	if s.r == nil {
		return "", false, nil
	}

	cookie, err := s.r.Cookie(s.name(key))
	if err == http.ErrNoCookie {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("cookiestore: read %q: %w", key, err)
	}

	decoded, err := url.QueryUnescape(cookie.Value)
	if err != nil {
		return "", false, fmt.Errorf("cookiestore: decode %q: %w", key, err)
	}
	return decoded, true, nil
}

func (s *Store) Set(_ context.Context, key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.written[key] = value
	if s.w == nil {
		return nil
	}

	cookie := &http.Cookie{
		Name:     s.name(key),
		Value:    url.QueryEscape(value),
		Path:     s.path,
		Domain:   s.domain,
		Secure:   s.secure,
		HttpOnly: s.httpOnly,
		SameSite: s.sameSite,
	}
	if s.maxAge > 0 {
		cookie.MaxAge = int(s.maxAge.Seconds())
		cookie.Expires = time.Now().Add(s.maxAge)
	}

	http.SetCookie(s.w, cookie)
	return nil
}

func (s *Store) name(key string) string {
	return s.prefix + key
}
