package repository

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/wsabol/oracle-moderation/pkg/domain"
	"github.com/wsabol/oracle-moderation/pkg/domain/violation"
	"gorm.io/gorm"
)

type violationRepository struct {
	db *gorm.DB
}

func NewViolationRepository(db *gorm.DB) violation.Repository {
	return &violationRepository{
		db: db,
	}
}

// Save inserts the violation and assigns its running count: prior active
// violations of the same type that were not confirmed false positives, plus
// this one. Counting and inserting happen in one transaction so concurrent
// saves for the same user cannot assign the same count twice.
func (r *violationRepository) Save(ctx context.Context, v *violation.Violation) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var prior int64
		err := tx.Model(&violation.Violation{}).
			Where("user_id_hash = ? AND violation_type = ?", v.UserIDHash, v.ViolationType).
			Where("is_active = ? AND reported_as_false_positive = ?", true, false).
			Count(&prior).Error
		if err != nil {
			return err
		}

		v.ViolationCount = int(prior) + 1
		v.IsActive = true
		return tx.Create(v).Error
	})
}

func (r *violationRepository) CountActiveSince(
	ctx context.Context,
	userIDHash string,
	since time.Time,
) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&violation.Violation{}).
		Where("user_id_hash = ? AND created_at >= ?", userIDHash, since).
		Where("is_active = ? AND reported_as_false_positive = ?", true, false).
		Count(&count).Error
	return count, err
}

func (r *violationRepository) CountActiveByTypeSince(
	ctx context.Context,
	userIDHash string,
	violationType violation.Type,
	since time.Time,
) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&violation.Violation{}).
		Where("user_id_hash = ? AND violation_type = ? AND created_at >= ?", userIDHash, violationType, since).
		Where("is_active = ? AND reported_as_false_positive = ?", true, false).
		Count(&count).Error
	return count, err
}

func (r *violationRepository) CountFalsePositivesSince(
	ctx context.Context,
	userIDHash string,
	since time.Time,
) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&violation.Violation{}).
		Where("user_id_hash = ? AND created_at >= ?", userIDHash, since).
		Where("reported_as_false_positive = ?", true).
		Count(&count).Error
	return count, err
}

func (r *violationRepository) CountLowConfidenceSince(
	ctx context.Context,
	userIDHash string,
	maxConfidence float64,
	since time.Time,
) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&violation.Violation{}).
		Where("user_id_hash = ? AND created_at >= ?", userIDHash, since).
		Where("confidence_score < ?", maxConfidence).
		Count(&count).Error
	return count, err
}

func (r *violationRepository) LatestByType(
	ctx context.Context,
	userIDHash string,
	violationType violation.Type,
) (*violation.Violation, error) {
	var entity violation.Violation
	err := r.db.WithContext(ctx).Model(&violation.Violation{}).
		Where("user_id_hash = ? AND violation_type = ?", userIDHash, violationType).
		Order("created_at desc").
		First(&entity).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &entity, nil
}

func (r *violationRepository) ListByUser(
	ctx context.Context,
	userIDHash string,
	offset, limit int,
) ([]violation.Violation, error) {
	var violations []violation.Violation
	err := r.db.WithContext(ctx).Model(&violation.Violation{}).
		Where("user_id_hash = ?", userIDHash).
		Order("created_at desc").
		Limit(limit).
		Offset(offset).
		Find(&violations).Error
	return violations, err
}

func (r *violationRepository) ReportFalsePositive(ctx context.Context, id uuid.UUID, reason string) error {
	result := r.db.WithContext(ctx).Model(&violation.Violation{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"reported_as_false_positive": true,
			"false_positive_reason":      reason,
			"is_active":                  false,
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domain.NewNotFoundError("violation", id)
	}
	return nil
}
