package moderation

import (
	"github.com/wsabol/oracle-moderation/pkg/domain/violation"
)

// categoryPolicy collects the scoring policy for one category in one place
// so it can be audited and tested independently of the detection control
// flow. Base is the confidence assigned to a bare keyword match before any
// contextual adjustment; Floor is the hard minimum after adjustment;
// Threshold is the report cutoff below which a match is suppressed.
type categoryPolicy struct {
	Base      float64
	Floor     float64
	Threshold float64
}

// Self-harm and harm-to-others start highest: a missed genuine case costs
// far more than a spurious one in those categories.
var confidencePolicies = map[violation.Type]categoryPolicy{
	violation.TypeSelfHarm: {
		Base:      SelfHarmBaseConfidence,
		Floor:     SelfHarmMinConfidence,
		Threshold: SelfHarmReportThreshold,
	},
	violation.TypeSexualContent: {
		Base:      SexualContentBaseConfidence,
		Floor:     SexualContentMinConfidence,
		Threshold: SexualContentReportThreshold,
	},
	violation.TypeHarmOthers: {
		Base:      HarmOthersBaseConfidence,
		Floor:     HarmOthersMinConfidence,
		Threshold: HarmOthersReportThreshold,
	},
	violation.TypeAbusiveLanguage: {
		Base:      AbusiveLanguageBaseConfidence,
		Floor:     AbusiveLanguageMinConfidence,
		Threshold: AbusiveLanguageReportThreshold,
	},
}

const (
	SelfHarmBaseConfidence  = 0.9
	SelfHarmMinConfidence   = 0.5
	SelfHarmReportThreshold = 0.5

	SexualContentBaseConfidence  = 0.8
	SexualContentMinConfidence   = 0.4
	SexualContentReportThreshold = 0.6

	HarmOthersBaseConfidence  = 0.9
	HarmOthersMinConfidence   = 0.4
	HarmOthersReportThreshold = 0.7

	AbusiveLanguageBaseConfidence  = 0.75
	AbusiveLanguageMinConfidence   = 0.5
	AbusiveLanguageReportThreshold = 0.65
)

// Contextual deltas. Positive values push toward action, negative toward
// suppression or human review.
const (
	selfHarmCrisisBoost      = 0.05
	selfHarmIntentBoost      = 0.05
	selfHarmThirdPersonDelta = -0.1
	selfHarmPastTenseDelta   = -0.15

	sexualEducationalDelta = -0.25
	sexualSupportDelta     = -0.2
	sexualFictionalDelta   = -0.15
	sexualExplicitMinimum  = 0.9

	harmHypotheticalDelta = -0.3
	harmFantasyDelta      = -0.25
	harmMediaDelta        = -0.2
	harmThreatMinimum     = 0.95

	abusiveEmotionalDelta  = -0.15
	abusiveCasualDelta     = -0.1
	abusiveDirectedMinimum = 0.85
	abusiveNoPronounDelta  = -0.05
)

// confidenceCategories is the fixed subset the scorer applies to; it must not
// silently grow.
var confidenceCategories = map[violation.Type]struct{}{
	violation.TypeSelfHarm:        {},
	violation.TypeSexualContent:   {},
	violation.TypeHarmOthers:      {},
	violation.TypeAbusiveLanguage: {},
}

// InConfidenceSubset reports whether contextual scoring applies to a
// category. Callers outside the subset use strict keyword detection.
func InConfidenceSubset(t violation.Type) bool {
	_, ok := confidenceCategories[t]
	return ok
}
