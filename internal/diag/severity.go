package diag

import "strings"

// Severity orders diagnostics: a higher value is more serious.
type Severity uint8

const (
	SevInfo Severity = iota
	SevWarning
	SevError
)

// имена по порядку значений; неизвестное значение печатается как info
var severityLabels = [...]string{SevInfo: "info", SevWarning: "warning", SevError: "error"}

// Label is the lower-case form used by short and JSON output.
func (s Severity) Label() string {
	if int(s) < len(severityLabels) {
		return severityLabels[s]
	}
	return severityLabels[SevInfo]
}

func (s Severity) String() string {
	if int(s) >= len(severityLabels) {
		return "UNKNOWN"
	}
	return strings.ToUpper(severityLabels[s])
}
