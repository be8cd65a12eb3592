package pattern

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/wsabol/oracle-moderation/pkg/domain/violation"
	"gorm.io/gorm"
)

// Type identifies a behavioral pattern derived from violation history.
type Type string

const (
	TypeRapidEscalation      Type = "rapid_escalation"
	TypeSameTypeRepeat       Type = "same_type_repeat"
	TypeThresholdWarning     Type = "threshold_warning"
	TypeFalsePositiveCluster Type = "false_positive_cluster"
	TypeLowConfidenceFlag    Type = "low_confidence_flagging"
)

func (t Type) IsValid() bool {
	switch t {
	case TypeRapidEscalation, TypeSameTypeRepeat, TypeThresholdWarning,
		TypeFalsePositiveCluster, TypeLowConfidenceFlag:
		return true
	}
	return false
}

func (t Type) String() string {
	return string(t)
}

// Pattern is a derived signal over a user's violation history. Rows are
// append-only: re-detection of the same condition inserts a new row, and a
// row is mutated exactly once, when a human marks it reviewed.
type Pattern struct {
	ID                   uuid.UUID          `json:"id" gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	PatternType          Type               `json:"pattern_type" gorm:"index;not null"`
	UserIDHash           string             `json:"user_id_hash" gorm:"index;not null"`
	ViolationType        violation.Type     `json:"violation_type,omitempty"`
	Description          string             `json:"description"`
	Severity             violation.Severity `json:"severity"`
	PatternScore         float64            `json:"pattern_score"`
	RequiresManualReview bool               `json:"requires_manual_review"`
	ReviewedAt           *time.Time         `json:"reviewed_at,omitempty"`
	ManualReviewNotes    string             `json:"manual_review_notes,omitempty"`
	CreatedAt            time.Time          `json:"created_at" gorm:"index"`
}

func (p *Pattern) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	if p.CreatedAt.IsZero() {
		p.CreatedAt = time.Now()
	}
	return p.Validate()
}

func (p *Pattern) Validate() error {
	if !p.PatternType.IsValid() {
		return fmt.Errorf("invalid pattern type: %s", p.PatternType)
	}
	if p.UserIDHash == "" {
		return fmt.Errorf("user_id_hash is required")
	}
	if p.ViolationType != "" && !p.ViolationType.IsValid() {
		return fmt.Errorf("invalid violation type: %s", p.ViolationType)
	}
	if !p.Severity.IsValid() {
		return fmt.Errorf("invalid severity: %s", p.Severity)
	}
	return nil
}

func (p *Pattern) TableName() string {
	return "public.violation_patterns"
}
