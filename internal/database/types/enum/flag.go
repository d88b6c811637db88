package enum

// Severity ranks how serious a scam flag is. The same scale is used for a
// group's overall scam risk, which is the maximum severity across its flags.
type Severity string

const (
	SeverityLow      Severity = "low"
	SeverityMedium   Severity = "medium"
	SeverityHigh     Severity = "high"
	SeverityCritical Severity = "critical"
)

// severityOrder defines the aggregation ordering: low < medium < high < critical.
var severityOrder = map[Severity]int{
	SeverityLow:      0,
	SeverityMedium:   1,
	SeverityHigh:     2,
	SeverityCritical: 3,
}

// Compare returns a negative value if s ranks below other, zero if equal,
// and a positive value if s ranks above other.
func (s Severity) Compare(other Severity) int {
	return severityOrder[s] - severityOrder[other]
}

// MaxSeverity returns the higher ranked of two severities.
func MaxSeverity(a, b Severity) Severity {
	if a.Compare(b) >= 0 {
		return a
	}
	return b
}
