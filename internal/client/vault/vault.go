// Package vault is the opaque secret store for the client. It holds exactly
// one kind of secret today, the bearer token, keyed by TokenKey, in a local
// SQLite database.
package vault

import "context"

// TokenKey is the fixed key under which the bearer token is stored.
const TokenKey = "auth_token"

// Repository is a small key-value secret store. Get returns (nil, nil) for a
// missing key; callers treat any Get failure as "no secret present".
type Repository interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
	Clear(ctx context.Context) error
}
