package scan

import (
	"context"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/wsabol/oracle-moderation/pkg/domain"
	"github.com/wsabol/oracle-moderation/pkg/domain/pattern"
	"github.com/wsabol/oracle-moderation/pkg/domain/violation"
	"github.com/wsabol/oracle-moderation/pkg/infra/prometheus"
	"github.com/wsabol/oracle-moderation/pkg/moderation"
)

// Result is what the chat handler acts on after scanning one message.
type Result struct {
	UserIDHash string               `json:"user_id_hash"`
	Violation  *violation.Violation `json:"violation,omitempty"`
	// Suppressed is set when a keyword matched but the confidence scorer
	// decided the context was too ambiguous to act on.
	Suppressed bool                 `json:"suppressed,omitempty"`
	Action     Action               `json:"action"`
	Analysis   *moderation.Analysis `json:"analysis,omitempty"`
	Patterns   []*pattern.Pattern   `json:"patterns,omitempty"`
}

// MessageScanner composes detection, persistence and pattern analysis for a
// single chat message. Detection failures fail open: a message that cannot be
// scanned is treated as clean rather than surfacing an error to the chat
// session.
type MessageScanner struct {
	detector      *moderation.Detector
	scorer        *moderation.ConfidenceScorer
	violations    violation.Repository
	patterns      *moderation.PatternDetector
	logger        *logrus.Logger
	useConfidence bool
}

func NewMessageScanner(
	detector *moderation.Detector,
	scorer *moderation.ConfidenceScorer,
	violations violation.Repository,
	patterns *moderation.PatternDetector,
	logger *logrus.Logger,
	useConfidence bool,
) *MessageScanner {
	return &MessageScanner{
		detector:      detector,
		scorer:        scorer,
		violations:    violations,
		patterns:      patterns,
		logger:        logger,
		useConfidence: useConfidence,
	}
}

// Scan hashes the user identity, runs detection, persists any violation and
// re-evaluates the user's pattern history. Pattern analysis is best-effort;
// only the violation insert can fail the call.
func (s *MessageScanner) Scan(ctx context.Context, rawUserID, message string) (*Result, error) {
	userIDHash := domain.HashUserID(rawUserID)
	result := &Result{
		UserIDHash: userIDHash,
		Action:     ActionNone,
	}

	start := time.Now()
	match, scored, suppressed := s.detect(message)
	mode := "strict"
	if s.useConfidence {
		mode = "confidence"
	}
	prometheus.ScanLatency.WithLabelValues(mode).Observe(float64(time.Since(start).Microseconds()) / 1000.0)

	if match == nil {
		if suppressed {
			result.Suppressed = true
			prometheus.ScansTotal.WithLabelValues("suppressed").Inc()
		} else {
			prometheus.ScansTotal.WithLabelValues("clean").Inc()
		}
		return result, nil
	}

	v := &violation.Violation{
		UserIDHash:      userIDHash,
		ViolationType:   match.Type,
		Severity:        match.Severity,
		ConfidenceScore: 1.0,
		Keyword:         match.Keyword,
	}
	if scored != nil {
		v.ConfidenceScore = scored.Confidence
		result.Analysis = &scored.Analysis
	}

	if err := s.violations.Save(ctx, v); err != nil {
		s.logger.WithError(err).WithFields(logrus.Fields{
			"user_id_hash": userIDHash,
			"category":     match.Type.String(),
		}).Error("failed to persist violation")
		return nil, fmt.Errorf("failed to persist violation: %w", err)
	}

	prometheus.ScansTotal.WithLabelValues("violation").Inc()
	prometheus.ViolationsDetectedTotal.WithLabelValues(match.Type.String(), match.Severity.String()).Inc()

	result.Violation = v
	result.Action = DecideAction(v.Severity, v.ViolationCount)
	result.Patterns = s.patterns.DetectPatterns(ctx, userIDHash, v.ViolationType)

	s.logger.WithFields(logrus.Fields{
		"user_id_hash": userIDHash,
		"category":     match.Type.String(),
		"severity":     match.Severity.String(),
		"confidence":   v.ConfidenceScore,
		"action":       string(result.Action),
		"patterns":     len(result.Patterns),
	}).Info("violation detected")

	return result, nil
}

// detect runs strict detection and, when confidence mode is on and the match
// falls in the scorer's category subset, re-scores it. suppressed reports a
// keyword match whose context pushed confidence below the report threshold.
func (s *MessageScanner) detect(message string) (match *moderation.Match, scored *moderation.ScoredMatch, suppressed bool) {
	match = s.detector.Detect(message)
	if match == nil {
		return nil, nil, false
	}
	if !s.useConfidence || !moderation.InConfidenceSubset(match.Type) {
		return match, nil, false
	}

	scored = s.scorer.DetectWithConfidence(message)
	if scored == nil {
		return nil, nil, true
	}
	return &scored.Match, scored, false
}
