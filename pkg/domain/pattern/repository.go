package pattern

import (
	"context"

	"github.com/google/uuid"
)

// Repository persists detected patterns. There is no update or upsert
// contract besides MarkReviewed; history is append-only.
//
//go:generate mockery --name=Repository --dir=. --output=mocks/ --filename=pattern_repository_mock.go --case=underscore --with-expecter
type Repository interface {
	Save(ctx context.Context, p *Pattern) error

	// ListRequiringReview returns unreviewed patterns flagged for manual
	// review, newest first.
	ListRequiringReview(ctx context.Context, userIDHash string) ([]Pattern, error)

	// MarkReviewed sets reviewed_at and the reviewer notes exactly once.
	// A second call returns domain.ErrPatternAlreadyReviewed.
	MarkReviewed(ctx context.Context, id uuid.UUID, notes string) error
}
