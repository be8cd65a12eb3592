package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"github.com/wsabol/oracle-moderation/pkg/domain/pattern"
)

type Repository struct {
	mock.Mock
}

func (m *Repository) Save(ctx context.Context, p *pattern.Pattern) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}

func (m *Repository) ListRequiringReview(ctx context.Context, userIDHash string) ([]pattern.Pattern, error) {
	args := m.Called(ctx, userIDHash)
	list, _ := args.Get(0).([]pattern.Pattern)
	return list, args.Error(1)
}

func (m *Repository) MarkReviewed(ctx context.Context, id uuid.UUID, notes string) error {
	args := m.Called(ctx, id, notes)
	return args.Error(0)
}
