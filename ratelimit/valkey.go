package ratelimit

import (
	"context"
	"crypto/tls"
	"fmt"
	"net/url"
	"time"

	"github.com/valkey-io/valkey-go"
)

// NewValkeyClient connects to the server at uri (valkey://, redis:// or the
// TLS variants rediss:// and valkeys://).
func NewValkeyClient(uri string) (valkey.Client, error) {
	options, err := clientOptions(uri)
	if err != nil {
		return nil, err
	}
	return valkey.NewClient(options)
}

func clientOptions(uri string) (valkey.ClientOption, error) {
	u, err := url.Parse(uri)
	if err != nil {
		return valkey.ClientOption{}, err
	}
	if u.Host == "" {
		return valkey.ClientOption{}, fmt.Errorf("valkey uri %q has no host", uri)
	}

	username := ""
	password := ""
	if u.User != nil {
		username = u.User.Username()
		password, _ = u.User.Password()
	}

	options := valkey.ClientOption{
		InitAddress: []string{u.Host},
		Username:    username,
		Password:    password,
	}
	switch u.Scheme {
	case "rediss", "valkeys":
		options.TLSConfig = &tls.Config{ServerName: u.Hostname(), MinVersion: tls.VersionTLS12}
	case "redis", "valkey":
	default:
		return valkey.ClientOption{}, fmt.Errorf("unsupported valkey uri scheme %q", u.Scheme)
	}
	return options, nil
}

// ValkeyStore keeps counters in Valkey so every instance shares them.
type ValkeyStore struct {
	client valkey.Client
}

// NewValkeyStore creates a store over client.
func NewValkeyStore(client valkey.Client) *ValkeyStore {
	return &ValkeyStore{client: client}
}

func (s *ValkeyStore) Increment(ctx context.Context, key string, window time.Duration) (int64, time.Duration, error) {
	results := s.client.DoMulti(ctx,
		s.client.B().Incr().Key(key).Build(),
		s.client.B().Pttl().Key(key).Build(),
	)
	count, err := results[0].AsInt64()
	if err != nil {
		return 0, 0, fmt.Errorf("incr %s: %w", key, err)
	}
	ttlMillis, err := results[1].AsInt64()
	if err != nil {
		return 0, 0, fmt.Errorf("pttl %s: %w", key, err)
	}

	// -1 means the key has no expiry yet: this hit opened the window.
	if count == 1 || ttlMillis < 0 {
		err := s.client.Do(ctx, s.client.B().Pexpire().Key(key).Milliseconds(window.Milliseconds()).Build()).Error()
		if err != nil {
			return 0, 0, fmt.Errorf("pexpire %s: %w", key, err)
		}
		ttlMillis = window.Milliseconds()
	}
	return count, time.Duration(ttlMillis) * time.Millisecond, nil
}
