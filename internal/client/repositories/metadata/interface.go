// Package metadata persists the client's session record as key/value rows
// in the local SQLite database.
package metadata

import (
	"context"
)

// Repository reads single keys and changes several keys at once. Get returns
// (nil, nil) for a missing key. Update either applies all of its writes and
// deletes or none of them.
type Repository interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Update(ctx context.Context, set map[string][]byte, del ...string) error
}
