package mocks

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"github.com/wsabol/oracle-moderation/pkg/domain/violation"
)

type Repository struct {
	mock.Mock
}

func (m *Repository) Save(ctx context.Context, v *violation.Violation) error {
	args := m.Called(ctx, v)
	return args.Error(0)
}

func (m *Repository) CountActiveSince(ctx context.Context, userIDHash string, since time.Time) (int64, error) {
	args := m.Called(ctx, userIDHash, since)
	count, _ := args.Get(0).(int64)
	return count, args.Error(1)
}

func (m *Repository) CountActiveByTypeSince(
	ctx context.Context,
	userIDHash string,
	violationType violation.Type,
	since time.Time,
) (int64, error) {
	args := m.Called(ctx, userIDHash, violationType, since)
	count, _ := args.Get(0).(int64)
	return count, args.Error(1)
}

func (m *Repository) CountFalsePositivesSince(ctx context.Context, userIDHash string, since time.Time) (int64, error) {
	args := m.Called(ctx, userIDHash, since)
	count, _ := args.Get(0).(int64)
	return count, args.Error(1)
}

func (m *Repository) CountLowConfidenceSince(
	ctx context.Context,
	userIDHash string,
	maxConfidence float64,
	since time.Time,
) (int64, error) {
	args := m.Called(ctx, userIDHash, maxConfidence, since)
	count, _ := args.Get(0).(int64)
	return count, args.Error(1)
}

func (m *Repository) LatestByType(
	ctx context.Context,
	userIDHash string,
	violationType violation.Type,
) (*violation.Violation, error) {
	args := m.Called(ctx, userIDHash, violationType)
	v, _ := args.Get(0).(*violation.Violation)
	return v, args.Error(1)
}

func (m *Repository) ListByUser(
	ctx context.Context,
	userIDHash string,
	offset, limit int,
) ([]violation.Violation, error) {
	args := m.Called(ctx, userIDHash, offset, limit)
	list, _ := args.Get(0).([]violation.Violation)
	return list, args.Error(1)
}

func (m *Repository) ReportFalsePositive(ctx context.Context, id uuid.UUID, reason string) error {
	args := m.Called(ctx, id, reason)
	return args.Error(0)
}
