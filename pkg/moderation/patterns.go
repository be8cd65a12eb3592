package moderation

import (
	"context"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/wsabol/oracle-moderation/pkg/domain"
	"github.com/wsabol/oracle-moderation/pkg/domain/pattern"
	"github.com/wsabol/oracle-moderation/pkg/domain/violation"
	"github.com/wsabol/oracle-moderation/pkg/infra/prometheus"
	"golang.org/x/sync/errgroup"
)

// Pattern analysis thresholds. Scores are not on the confidence scale:
// false-positive clusters and low-confidence clusters are detector-health
// signals and intentionally score below genuine behavioral patterns.
const (
	RapidEscalationWindow            = 24 * time.Hour
	RapidEscalationHighThreshold     = 3
	RapidEscalationCriticalThreshold = 5

	SameTypeRepeatWindow          = 7 * 24 * time.Hour
	SameTypeRepeatMediumThreshold = 3
	SameTypeRepeatHighThreshold   = 5

	// A running count of exactly 1 means the next same-type violation crosses
	// into automatic suspension; the warning is informational, not punitive.
	ThresholdWarningCount = 1
	ThresholdWarningScore = 0.5

	FalsePositiveClusterWindow    = 30 * 24 * time.Hour
	FalsePositiveClusterThreshold = 3

	LowConfidenceWindow    = 30 * 24 * time.Hour
	LowConfidenceCutoff    = 0.7
	LowConfidenceThreshold = 5
	LowConfidenceScore     = 0.3
)

// checkResult carries one check's outcome so the aggregation is a pure fold
// over results instead of scattered error handling.
type checkResult struct {
	check   string
	pattern *pattern.Pattern
	err     error
}

type patternCheck struct {
	name string
	run  func(ctx context.Context, userIDHash string, violationType violation.Type) (*pattern.Pattern, error)
}

// PatternDetector evaluates a user's rolling violation history right after a
// new violation is persisted. Checks are independent reads and run
// concurrently; a failing check is logged and skipped, never fatal to the
// batch, because pattern analysis is best-effort telemetry.
type PatternDetector struct {
	violations violation.Repository
	patterns   pattern.Repository
	logger     *logrus.Logger
}

func NewPatternDetector(
	violations violation.Repository,
	patterns pattern.Repository,
	logger *logrus.Logger,
) *PatternDetector {
	return &PatternDetector{
		violations: violations,
		patterns:   patterns,
		logger:     logger,
	}
}

// DetectPatterns runs all checks for the user, persists every detected
// pattern as its own append-only row, and returns the ones that persisted.
// Partial success is expected behavior, not an error.
func (d *PatternDetector) DetectPatterns(
	ctx context.Context,
	userIDHash string,
	violationType violation.Type,
) []*pattern.Pattern {
	checks := []patternCheck{
		{"rapid_escalation", d.checkRapidEscalation},
		{"same_type_repeat", d.checkSameTypeRepeat},
		{"threshold_warning", d.checkThresholdWarning},
		{"false_positive_cluster", d.checkFalsePositiveCluster},
		{"low_confidence_flagging", d.checkLowConfidenceFlagging},
	}

	results := make([]checkResult, len(checks))
	var group errgroup.Group
	for i, check := range checks {
		i, check := i, check
		group.Go(func() error {
			p, err := check.run(ctx, userIDHash, violationType)
			results[i] = checkResult{check: check.name, pattern: p, err: err}
			return nil
		})
	}
	_ = group.Wait()

	detected := foldResults(results)
	for _, r := range results {
		if r.err != nil {
			prometheus.PatternChecksFailedTotal.WithLabelValues(r.check).Inc()
			d.logger.WithError(r.err).WithFields(logrus.Fields{
				"check":        r.check,
				"user_id_hash": userIDHash,
			}).Error("pattern check failed")
		}
	}

	persisted := make([]*pattern.Pattern, 0, len(detected))
	for _, p := range detected {
		if err := d.patterns.Save(ctx, p); err != nil {
			d.logger.WithError(err).WithFields(logrus.Fields{
				"pattern_type": p.PatternType.String(),
				"user_id_hash": userIDHash,
			}).Error("failed to persist detected pattern")
			continue
		}
		prometheus.PatternsDetectedTotal.WithLabelValues(p.PatternType.String()).Inc()
		persisted = append(persisted, p)
	}
	return persisted
}

// foldResults extracts detected patterns from check results. Pure function;
// the caller decides what to do about errors.
func foldResults(results []checkResult) []*pattern.Pattern {
	patterns := make([]*pattern.Pattern, 0, len(results))
	for _, r := range results {
		if r.err == nil && r.pattern != nil {
			patterns = append(patterns, r.pattern)
		}
	}
	return patterns
}

func (d *PatternDetector) checkRapidEscalation(
	ctx context.Context,
	userIDHash string,
	_ violation.Type,
) (*pattern.Pattern, error) {
	since := time.Now().Add(-RapidEscalationWindow)
	count, err := d.violations.CountActiveSince(ctx, userIDHash, since)
	if err != nil {
		return nil, fmt.Errorf("rapid escalation count: %w", err)
	}
	if count < RapidEscalationHighThreshold {
		return nil, nil
	}

	severity := violation.SeverityHigh
	if count >= RapidEscalationCriticalThreshold {
		severity = violation.SeverityCritical
	}

	return &pattern.Pattern{
		PatternType:          pattern.TypeRapidEscalation,
		UserIDHash:           userIDHash,
		Description:          fmt.Sprintf("%d violations within the last 24 hours", count),
		Severity:             severity,
		PatternScore:         ratioScore(count, RapidEscalationCriticalThreshold),
		RequiresManualReview: true,
	}, nil
}

func (d *PatternDetector) checkSameTypeRepeat(
	ctx context.Context,
	userIDHash string,
	violationType violation.Type,
) (*pattern.Pattern, error) {
	since := time.Now().Add(-SameTypeRepeatWindow)
	count, err := d.violations.CountActiveByTypeSince(ctx, userIDHash, violationType, since)
	if err != nil {
		return nil, fmt.Errorf("same type repeat count: %w", err)
	}
	if count < SameTypeRepeatMediumThreshold {
		return nil, nil
	}

	severity := violation.SeverityMedium
	if count >= SameTypeRepeatHighThreshold {
		severity = violation.SeverityHigh
	}

	return &pattern.Pattern{
		PatternType:          pattern.TypeSameTypeRepeat,
		UserIDHash:           userIDHash,
		ViolationType:        violationType,
		Description:          fmt.Sprintf("%d '%s' violations within the last 7 days", count, violationType),
		Severity:             severity,
		PatternScore:         ratioScore(count, SameTypeRepeatHighThreshold),
		RequiresManualReview: true,
	}, nil
}

func (d *PatternDetector) checkThresholdWarning(
	ctx context.Context,
	userIDHash string,
	violationType violation.Type,
) (*pattern.Pattern, error) {
	latest, err := d.violations.LatestByType(ctx, userIDHash, violationType)
	if err != nil {
		if domain.IsNotFoundError(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("threshold warning lookup: %w", err)
	}
	if latest == nil || latest.ViolationCount != ThresholdWarningCount {
		return nil, nil
	}
	if latest.Severity.IsZeroTolerance() {
		return nil, nil
	}

	return &pattern.Pattern{
		PatternType:   pattern.TypeThresholdWarning,
		UserIDHash:    userIDHash,
		ViolationType: violationType,
		Description: fmt.Sprintf(
			"next '%s' violation will trigger automatic suspension", violationType),
		Severity:             violation.SeverityMedium,
		PatternScore:         ThresholdWarningScore,
		RequiresManualReview: false,
	}, nil
}

func (d *PatternDetector) checkFalsePositiveCluster(
	ctx context.Context,
	userIDHash string,
	_ violation.Type,
) (*pattern.Pattern, error) {
	since := time.Now().Add(-FalsePositiveClusterWindow)
	count, err := d.violations.CountFalsePositivesSince(ctx, userIDHash, since)
	if err != nil {
		return nil, fmt.Errorf("false positive cluster count: %w", err)
	}
	if count < FalsePositiveClusterThreshold {
		return nil, nil
	}

	return &pattern.Pattern{
		PatternType: pattern.TypeFalsePositiveCluster,
		UserIDHash:  userIDHash,
		Description: fmt.Sprintf(
			"%d confirmed false positives within the last 30 days", count),
		Severity:             violation.SeverityMedium,
		PatternScore:         clamp(float64(count)/10.0, 0, 1.0),
		RequiresManualReview: true,
	}, nil
}

func (d *PatternDetector) checkLowConfidenceFlagging(
	ctx context.Context,
	userIDHash string,
	_ violation.Type,
) (*pattern.Pattern, error) {
	since := time.Now().Add(-LowConfidenceWindow)
	count, err := d.violations.CountLowConfidenceSince(ctx, userIDHash, LowConfidenceCutoff, since)
	if err != nil {
		return nil, fmt.Errorf("low confidence count: %w", err)
	}
	if count < LowConfidenceThreshold {
		return nil, nil
	}

	return &pattern.Pattern{
		PatternType: pattern.TypeLowConfidenceFlag,
		UserIDHash:  userIDHash,
		Description: fmt.Sprintf(
			"%d low-confidence flags within the last 30 days; detector thresholds may need retuning", count),
		Severity:             violation.SeverityLowTrackingOnly,
		PatternScore:         LowConfidenceScore,
		RequiresManualReview: true,
	}, nil
}

func ratioScore(count int64, denominator int64) float64 {
	return clamp(float64(count)/float64(denominator), 0, 1.0)
}
