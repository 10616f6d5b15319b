package providers

import "context"

// CacheProvider stores geocodes, place details, taste baselines and cached HTTP responses.
// Get returns an error for absent keys; callers treat any Get error as a miss.
type CacheProvider interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte, expirationSeconds int) error
	Delete(ctx context.Context, key string) error
	Exists(ctx context.Context, key string) (bool, error)
}
