package violation

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Type identifies a moderation policy category.
type Type string

const (
	TypeSexualContent       Type = "sexual_content"
	TypeMinorContent        Type = "minor_content"
	TypeSelfHarm            Type = "self_harm"
	TypeHarmOthers          Type = "harm_others"
	TypeAbusiveLanguage     Type = "abusive_language"
	TypeDoxxingThreats      Type = "doxxing_threats"
	TypeIllegalActivity     Type = "illegal_activity"
	TypeJailbreakAttempt    Type = "jailbreak_attempt"
	TypeHatefulContent      Type = "hateful_content"
	TypeHealthMedicalAdvice Type = "health_medical_advice"
)

var validTypes = map[Type]struct{}{
	TypeSexualContent:       {},
	TypeMinorContent:        {},
	TypeSelfHarm:            {},
	TypeHarmOthers:          {},
	TypeAbusiveLanguage:     {},
	TypeDoxxingThreats:      {},
	TypeIllegalActivity:     {},
	TypeJailbreakAttempt:    {},
	TypeHatefulContent:      {},
	TypeHealthMedicalAdvice: {},
}

func (t Type) IsValid() bool {
	_, ok := validTypes[t]
	return ok
}

func (t Type) String() string {
	return string(t)
}

// Severity is a fixed ordinal scale. Zero-tolerance severities ban on first
// occurrence; the others accumulate through the running violation count.
type Severity string

const (
	SeverityCriticalZeroTolerance Severity = "CRITICAL_ZERO_TOLERANCE"
	SeverityCritical              Severity = "CRITICAL"
	SeverityHigh                  Severity = "HIGH"
	SeverityMedium                Severity = "MEDIUM"
	SeverityLowTrackingOnly       Severity = "LOW_TRACKING_ONLY"
)

func (s Severity) IsValid() bool {
	switch s {
	case SeverityCriticalZeroTolerance, SeverityCritical, SeverityHigh, SeverityMedium, SeverityLowTrackingOnly:
		return true
	}
	return false
}

func (s Severity) IsZeroTolerance() bool {
	return s == SeverityCriticalZeroTolerance
}

func (s Severity) String() string {
	return string(s)
}

// Violation is one detected incident. Once created it is immutable except for
// the false-positive and is_active fields, which a reviewer sets out of band;
// confidence, severity and keyword are never edited post-hoc.
type Violation struct {
	ID                      uuid.UUID `json:"id" gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	UserIDHash              string    `json:"user_id_hash" gorm:"index;not null"`
	ViolationType           Type      `json:"violation_type" gorm:"index;not null"`
	Severity                Severity  `json:"severity" gorm:"not null"`
	ConfidenceScore         float64   `json:"confidence_score"`
	Keyword                 string    `json:"keyword"`
	ViolationCount          int       `json:"violation_count"`
	IsActive                bool      `json:"is_active" gorm:"default:true"`
	ReportedAsFalsePositive bool      `json:"reported_as_false_positive"`
	FalsePositiveReason     string    `json:"false_positive_reason,omitempty"`
	CreatedAt               time.Time `json:"created_at" gorm:"index"`
}

func (v *Violation) BeforeCreate(tx *gorm.DB) error {
	if v.ID == uuid.Nil {
		v.ID = uuid.New()
	}
	if v.CreatedAt.IsZero() {
		v.CreatedAt = time.Now()
	}
	return v.Validate()
}

func (v *Violation) Validate() error {
	if v.UserIDHash == "" {
		return fmt.Errorf("user_id_hash is required")
	}
	if !v.ViolationType.IsValid() {
		return fmt.Errorf("invalid violation type: %s", v.ViolationType)
	}
	if !v.Severity.IsValid() {
		return fmt.Errorf("invalid severity: %s", v.Severity)
	}
	if v.ConfidenceScore < 0 || v.ConfidenceScore > 1 {
		return fmt.Errorf("confidence score must be within [0,1], got %f", v.ConfidenceScore)
	}
	return nil
}

func (v *Violation) TableName() string {
	return "public.violations"
}
