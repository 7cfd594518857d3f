package application

import "context"

// SettingsStore is the remote key/value lookup backing the PIN check.
// A missing key returns an empty value with a nil error; the caller decides
// what to fall back to.
type SettingsStore interface {
	Get(ctx context.Context, key string) (string, error)
}
