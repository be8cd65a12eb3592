package moderation

import (
	"regexp"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/wsabol/oracle-moderation/pkg/domain/violation"
	"github.com/wsabol/oracle-moderation/pkg/moderation/lexicon"
)

// matchKind selects how a category's keywords are applied to a message.
type matchKind int

const (
	// matchSubstring flags on any occurrence, deliberately broad.
	matchSubstring matchKind = iota
	// matchWordBoundary only flags whole words, so profanity embedded inside
	// an unrelated word does not trip the rule.
	matchWordBoundary
	// matchFlexible tolerates arbitrary whitespace between the tokens of a
	// phrase ("kill myself" also matches "kill   my self").
	matchFlexible
	// matchMixed uses substring for multi-word phrases and word boundaries
	// for single words.
	matchMixed
)

// rule binds a category to its severity and matching semantics. The slice
// order below is the enforcement priority order and is a policy decision:
// when a message matches several categories, the earliest rule wins.
type rule struct {
	Type     violation.Type
	Severity violation.Severity
	Kind     matchKind
}

var detectionOrder = []rule{
	{violation.TypeMinorContent, violation.SeverityCriticalZeroTolerance, matchSubstring},
	{violation.TypeSelfHarm, violation.SeverityCritical, matchFlexible},
	{violation.TypeHarmOthers, violation.SeverityCriticalZeroTolerance, matchSubstring},
	{violation.TypeDoxxingThreats, violation.SeverityCriticalZeroTolerance, matchSubstring},
	{violation.TypeHatefulContent, violation.SeverityCriticalZeroTolerance, matchSubstring},
	{violation.TypeIllegalActivity, violation.SeverityCriticalZeroTolerance, matchMixed},
	{violation.TypeSexualContent, violation.SeverityHigh, matchSubstring},
	{violation.TypeJailbreakAttempt, violation.SeverityCritical, matchSubstring},
	{violation.TypeAbusiveLanguage, violation.SeverityMedium, matchWordBoundary},
	{violation.TypeHealthMedicalAdvice, violation.SeverityLowTrackingOnly, matchWordBoundary},
}

// Match is the outcome of a strict keyword scan. Keyword is the literal
// trigger retained for audit, not for re-matching.
type Match struct {
	Type     violation.Type
	Severity violation.Severity
	Keyword  string
}

type compiledEntry struct {
	keyword string
	pattern *regexp.Regexp // nil for plain substring entries
}

type compiledRule struct {
	rule
	entries []compiledEntry
}

// Detector scans one message against the category chain. Detection is a pure
// function over the compiled tables: no I/O, no state mutation, and malformed
// input degrades to "no violation" rather than an error.
type Detector struct {
	rules  []compiledRule
	logger *logrus.Logger
}

func NewDetector(provider lexicon.Provider, logger *logrus.Logger) *Detector {
	compiled := make([]compiledRule, 0, len(detectionOrder))
	for _, r := range detectionOrder {
		keywords := provider.Get(r.Type.String())
		if len(keywords) == 0 {
			logger.WithField("category", r.Type.String()).Debug("no keywords loaded for category")
		}

		cr := compiledRule{rule: r}
		for _, kw := range keywords {
			kw = strings.ToLower(strings.TrimSpace(kw))
			if kw == "" {
				continue
			}
			entry := compiledEntry{keyword: kw}
			switch r.Kind {
			case matchWordBoundary:
				entry.pattern = compileWordBoundary(kw)
			case matchFlexible:
				entry.pattern = compileFlexible(kw)
			case matchMixed:
				if !strings.Contains(kw, " ") {
					entry.pattern = compileWordBoundary(kw)
				}
			}
			cr.entries = append(cr.entries, entry)
		}
		compiled = append(compiled, cr)
	}

	return &Detector{
		rules:  compiled,
		logger: logger,
	}
}

// Detect returns the first matching violation in priority order, or nil when
// the message is clean. The common case is no match and must stay cheap.
func (d *Detector) Detect(message string) *Match {
	normalized := strings.ToLower(strings.TrimSpace(message))
	if normalized == "" {
		return nil
	}

	for _, cr := range d.rules {
		if keyword, found := cr.match(normalized); found {
			return &Match{
				Type:     cr.Type,
				Severity: cr.Severity,
				Keyword:  keyword,
			}
		}
	}
	return nil
}

func (cr *compiledRule) match(normalized string) (string, bool) {
	for _, entry := range cr.entries {
		if entry.pattern != nil {
			if entry.pattern.MatchString(normalized) {
				return entry.keyword, true
			}
			continue
		}
		if strings.Contains(normalized, entry.keyword) {
			return entry.keyword, true
		}
	}
	return "", false
}

func compileWordBoundary(keyword string) *regexp.Regexp {
	return regexp.MustCompile(`\b` + regexp.QuoteMeta(keyword) + `\b`)
}

// compileFlexible joins phrase tokens with \s+ and additionally allows the
// reflexive compounds to be split ("myself" matches "my self").
func compileFlexible(keyword string) *regexp.Regexp {
	tokens := strings.Fields(keyword)
	quoted := make([]string, len(tokens))
	for i, token := range tokens {
		quoted[i] = regexp.QuoteMeta(token)
	}
	pattern := strings.Join(quoted, `\s+`)
	for _, compound := range []string{"myself", "yourself", "himself", "herself"} {
		split := compound[:len(compound)-4] + `\s*self`
		pattern = strings.ReplaceAll(pattern, compound, split)
	}
	return regexp.MustCompile(pattern)
}
