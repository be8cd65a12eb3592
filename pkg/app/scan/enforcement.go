package scan

import (
	"github.com/wsabol/oracle-moderation/pkg/domain/violation"
)

// Action is the enforcement tier the caller should apply. Executing the
// action (suspending the account, ending the session) is the caller's job;
// this package only decides the tier.
type Action string

const (
	ActionNone Action = "none"
	// ActionDecline means the assistant must decline the topic (medical
	// advice) but no enforcement is taken against the account.
	ActionDecline      Action = "decline_topic"
	ActionWarning      Action = "warning"
	ActionSuspension   Action = "suspension"
	ActionPermanentBan Action = "permanent_ban"
)

// Accumulating violations escalate per running count; the counts line up with
// the threshold-warning pattern, which fires when the next violation would
// cross SuspensionCount.
const (
	WarningCount    = 1
	SuspensionCount = 2
	BanCount        = 3
)

// DecideAction maps a violation's severity and running count to an
// enforcement tier. Zero-tolerance severities ban on the first occurrence;
// tracking-only severities never enforce.
func DecideAction(severity violation.Severity, violationCount int) Action {
	if severity.IsZeroTolerance() {
		return ActionPermanentBan
	}
	if severity == violation.SeverityLowTrackingOnly {
		return ActionDecline
	}

	switch {
	case violationCount >= BanCount:
		return ActionPermanentBan
	case violationCount >= SuspensionCount:
		return ActionSuspension
	case violationCount >= WarningCount:
		return ActionWarning
	default:
		return ActionNone
	}
}
