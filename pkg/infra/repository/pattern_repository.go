package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/wsabol/oracle-moderation/pkg/domain"
	"github.com/wsabol/oracle-moderation/pkg/domain/pattern"
	"gorm.io/gorm"
)

type patternRepository struct {
	db *gorm.DB
}

func NewPatternRepository(db *gorm.DB) pattern.Repository {
	return &patternRepository{
		db: db,
	}
}

func (r *patternRepository) Save(ctx context.Context, p *pattern.Pattern) error {
	return r.db.WithContext(ctx).Create(p).Error
}

func (r *patternRepository) ListRequiringReview(ctx context.Context, userIDHash string) ([]pattern.Pattern, error) {
	var patterns []pattern.Pattern
	err := r.db.WithContext(ctx).Model(&pattern.Pattern{}).
		Where("user_id_hash = ? AND requires_manual_review = ? AND reviewed_at IS NULL", userIDHash, true).
		Order("created_at desc").
		Find(&patterns).Error
	return patterns, err
}

// MarkReviewed is guarded by the reviewed_at IS NULL predicate so the first
// reviewer wins; a second attempt surfaces as ErrPatternAlreadyReviewed
// instead of silently overwriting the original notes.
func (r *patternRepository) MarkReviewed(ctx context.Context, id uuid.UUID, notes string) error {
	now := time.Now()
	result := r.db.WithContext(ctx).Model(&pattern.Pattern{}).
		Where("id = ? AND reviewed_at IS NULL", id).
		Updates(map[string]interface{}{
			"reviewed_at":         now,
			"manual_review_notes": notes,
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected > 0 {
		return nil
	}

	var count int64
	if err := r.db.WithContext(ctx).Model(&pattern.Pattern{}).
		Where("id = ?", id).
		Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return domain.ErrPatternAlreadyReviewed
	}
	return domain.NewNotFoundError("pattern", id)
}
