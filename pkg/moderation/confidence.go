package moderation

import (
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/wsabol/oracle-moderation/pkg/domain/violation"
)

// Analysis explains a confidence-scored match to a reviewer: which signal
// group applied and which signals inside it fired. Exactly one of the context
// pointers is set, matching the scored category.
type Analysis struct {
	BaseConfidence  float64 `json:"base_confidence"`
	FinalConfidence float64 `json:"final_confidence"`

	SelfHarm        *SelfHarmContext        `json:"self_harm,omitempty"`
	SexualContent   *SexualContentContext   `json:"sexual_content,omitempty"`
	HarmOthers      *HarmOthersContext      `json:"harm_others,omitempty"`
	AbusiveLanguage *AbusiveLanguageContext `json:"abusive_language,omitempty"`
}

// ScoredMatch is a keyword match refined by contextual heuristics.
type ScoredMatch struct {
	Match
	Confidence float64
	Analysis   Analysis
}

// ConfidenceScorer is the context-aware detection variant. It scans only the
// categories in confidenceCategories and suppresses matches whose adjusted
// confidence falls below the category threshold; suppression is deliberate,
// not a missed detection.
type ConfidenceScorer struct {
	detector *Detector
	logger   *logrus.Logger
}

func NewConfidenceScorer(detector *Detector, logger *logrus.Logger) *ConfidenceScorer {
	return &ConfidenceScorer{
		detector: detector,
		logger:   logger,
	}
}

// DetectWithConfidence returns the first confidence-scored match in priority
// order, or nil when the message is clean or every match was suppressed.
func (s *ConfidenceScorer) DetectWithConfidence(message string) *ScoredMatch {
	normalized := strings.ToLower(strings.TrimSpace(message))
	if normalized == "" {
		return nil
	}

	for _, cr := range s.detector.rules {
		if _, ok := confidenceCategories[cr.Type]; !ok {
			continue
		}
		keyword, found := cr.match(normalized)
		if !found {
			continue
		}

		policy := confidencePolicies[cr.Type]
		confidence, analysis := s.score(cr.Type, normalized, policy)

		if confidence < policy.Threshold {
			s.logger.WithFields(logrus.Fields{
				"category":   cr.Type.String(),
				"confidence": confidence,
				"threshold":  policy.Threshold,
			}).Debug("keyword match suppressed by confidence threshold")
			return nil
		}

		return &ScoredMatch{
			Match: Match{
				Type:     cr.Type,
				Severity: cr.Severity,
				Keyword:  keyword,
			},
			Confidence: confidence,
			Analysis:   analysis,
		}
	}
	return nil
}

func (s *ConfidenceScorer) score(
	category violation.Type,
	normalized string,
	policy categoryPolicy,
) (float64, Analysis) {
	analysis := Analysis{BaseConfidence: policy.Base}
	confidence := policy.Base

	switch category {
	case violation.TypeSelfHarm:
		signals := extractSelfHarmContext(normalized)
		analysis.SelfHarm = &signals
		if signals.HasCrisisLanguage {
			confidence += selfHarmCrisisBoost
		}
		if signals.HasIntentLanguage {
			confidence += selfHarmIntentBoost
		}
		if signals.IsThirdPerson {
			confidence += selfHarmThirdPersonDelta
		}
		if signals.IsPastTense {
			confidence += selfHarmPastTenseDelta
		}

	case violation.TypeSexualContent:
		signals := extractSexualContentContext(normalized)
		analysis.SexualContent = &signals
		if signals.IsEducational {
			confidence += sexualEducationalDelta
		}
		if signals.IsSupportSeeking {
			confidence += sexualSupportDelta
		}
		if signals.IsFictional {
			confidence += sexualFictionalDelta
		}
		if signals.HasExplicitDescriptors && confidence < sexualExplicitMinimum {
			confidence = sexualExplicitMinimum
		}

	case violation.TypeHarmOthers:
		signals := extractHarmOthersContext(normalized)
		analysis.HarmOthers = &signals
		if signals.IsHypothetical {
			confidence += harmHypotheticalDelta
		}
		if signals.IsFantasy {
			confidence += harmFantasyDelta
		}
		if signals.IsMediaReference {
			confidence += harmMediaDelta
		}
		if signals.HasExplicitThreat && confidence < harmThreatMinimum {
			confidence = harmThreatMinimum
		}

	case violation.TypeAbusiveLanguage:
		signals := extractAbusiveLanguageContext(normalized)
		analysis.AbusiveLanguage = &signals
		if signals.IsEmotionalExpression {
			confidence += abusiveEmotionalDelta
		}
		if signals.IsCasualUsage {
			confidence += abusiveCasualDelta
		}
		if !signals.HasPersonalPronoun {
			confidence += abusiveNoPronounDelta
		}
		if signals.IsDirected && confidence < abusiveDirectedMinimum {
			confidence = abusiveDirectedMinimum
		}
	}

	// Clamping is an explicit invariant, not a property of the arithmetic.
	confidence = clamp(confidence, policy.Floor, 1.0)
	analysis.FinalConfidence = confidence

	return confidence, analysis
}

func clamp(value, floor, ceiling float64) float64 {
	if value < floor {
		return floor
	}
	if value > ceiling {
		return ceiling
	}
	return value
}
