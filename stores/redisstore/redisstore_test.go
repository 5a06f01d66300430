package redisstore

import (
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
)

func TestStoreKeyLayout(t *testing.T) {
	client := redis.NewClient(&redis.Options{Addr: "localhost:0"})
	t.Cleanup(func() {
		_ = client.Close()
	})

	tests := []struct {
		name string
		opts []Option
		want string
	}{
		{name: "defaults", want: "numfmt:default:locale"},
		{name: "custom prefix", opts: []Option{WithPrefix("app:")}, want: "app:default:locale"},
		{name: "scope", opts: []Option{WithScope("user-42")}, want: "numfmt:user-42:locale"},
		{name: "no prefix", opts: []Option{WithPrefix("")}, want: "default:locale"},
		{name: "empty scope ignored", opts: []Option{WithScope("")}, want: "numfmt:default:locale"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := New(client, tt.opts...)
			assert.Equal(t, tt.want, store.key("locale"))
		})
	}
}

func TestWithTTLClampsNegative(t *testing.T) {
	store := New(nil, WithTTL(-time.Minute))
	assert.Zero(t, store.ttl)

	store = New(nil, WithTTL(time.Hour))
	assert.Equal(t, time.Hour, store.ttl)
}
