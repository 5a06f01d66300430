// Package redisstore persists preferences as Redis string keys.
package redisstore

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/goliatone/go-numfmt"
)

const (
	defaultPrefix = "numfmt"
	defaultScope  = "default"
)

// Store maps preference keys to "<prefix>:<scope>:<key>".
type Store struct {
	client redis.UniversalClient
	prefix string
	scope  string
	ttl    time.Duration
}

var _ numfmt.PreferenceStore = &Store{}

// Option configures a Store.
type Option func(*Store)

// WithPrefix sets the key prefix, "numfmt" by default.
func WithPrefix(prefix string) Option {
	return func(s *Store) {
		s.prefix = strings.TrimSuffix(prefix, ":")
	}
}

// WithScope selects the preference namespace, "default" when unset.
func WithScope(scope string) Option {
	return func(s *Store) {
		if scope != "" {
			s.scope = scope
		}
	}
}

// WithTTL expires preferences after ttl. Zero keeps them forever.
func WithTTL(ttl time.Duration) Option {
	return func(s *Store) {
		s.ttl = max(ttl, 0)
	}
}

// New wraps client. The caller keeps ownership of the connection.
func New(client redis.UniversalClient, opts ...Option) *Store {
	s := &Store{
		client: client,
		prefix: defaultPrefix,
		scope:  defaultScope,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Open parses a redis:// or rediss:// URL, connects and pings the server.
func Open(ctx context.Context, url string, opts ...Option) (*Store, error) {
	options, err := redis.ParseURL(url)
	if err != nil {
		return nil, fmt.Errorf("redisstore: parse url: %w", err)
	}

	client := redis.NewClient(options)
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("redisstore: ping: %w", err)
	}

	return New(client, opts...), nil
}

func (s *Store) Get(ctx context.Context, key string) (string, bool, error) {
	value, err := s.client.Get(ctx, s.key(key)).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return "", false, nil
		}
		return "", false, fmt.Errorf("redisstore: get %q: %w", key, err)
	}
	return value, true, nil
}

func (s *Store) Set(ctx context.Context, key, value string) error {
	if err := s.client.Set(ctx, s.key(key), value, s.ttl).Err(); err != nil {
		return fmt.Errorf("redisstore: set %q: %w", key, err)
	}
	return nil
}

// Close closes the underlying client.
func (s *Store) Close() error {
	return s.client.Close()
}

func (s *Store) key(key string) string {
	if s.prefix == "" {
		return s.scope + ":" + key
	}
	return s.prefix + ":" + s.scope + ":" + key
}
