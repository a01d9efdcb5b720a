package metrics

// Common metric attribute keys to keep telemetry consistent/searchable.
const (
	AttrMethod   = "method"
	AttrPath     = "path"
	AttrStatus   = "status"
	AttrProvider = "provider"
	AttrOutcome  = "outcome"
	AttrReason   = "reason"
	AttrSource   = "source"
)

// Resolver lookup outcomes.
const (
	OutcomeMatched  = "matched"
	OutcomeNoMatch  = "no_match"
	OutcomeRejected = "rejected"
)

// Roster drop reasons.
const (
	ReasonLowMinutes     = "low_minutes"
	ReasonInvalidMinutes = "invalid_minutes"
	ReasonStint          = "stint"
	ReasonDuplicateTotal = "duplicate_total"
	ReasonVanished       = "vanished"
)
