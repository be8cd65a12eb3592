package violation

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// Repository is the narrow query surface the moderation core needs from the
// violation store. Counting queries exclude violations that were deactivated
// or confirmed as false positives, except where a method says otherwise.
//
//go:generate mockery --name=Repository --dir=. --output=mocks/ --filename=violation_repository_mock.go --case=underscore --with-expecter
type Repository interface {
	// Save persists a new violation and fills in its running ViolationCount
	// for the (user, type) pair.
	Save(ctx context.Context, v *Violation) error

	CountActiveSince(ctx context.Context, userIDHash string, since time.Time) (int64, error)
	CountActiveByTypeSince(ctx context.Context, userIDHash string, violationType Type, since time.Time) (int64, error)
	// CountFalsePositivesSince counts violations a reviewer confirmed as false
	// positives, regardless of their active flag.
	CountFalsePositivesSince(ctx context.Context, userIDHash string, since time.Time) (int64, error)
	CountLowConfidenceSince(ctx context.Context, userIDHash string, maxConfidence float64, since time.Time) (int64, error)

	LatestByType(ctx context.Context, userIDHash string, violationType Type) (*Violation, error)
	ListByUser(ctx context.Context, userIDHash string, offset, limit int) ([]Violation, error)

	// ReportFalsePositive flags a violation as reviewer-confirmed false
	// positive and deactivates it. The audit record itself is kept.
	ReportFalsePositive(ctx context.Context, id uuid.UUID, reason string) error
}
