package lexicon

import (
	"context"
)

// Provider supplies per-category trigger phrase lists. Implementations load
// once and stay stable for the process lifetime; there is no reload contract.
// An unknown or empty category returns an empty list, never an error.
type Provider interface {
	Load(ctx context.Context) error
	Get(category string) []string
}
