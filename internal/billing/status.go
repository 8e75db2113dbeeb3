package billing

// Invoice statuses. Paid and void are terminal.
const (
	StatusDraft = "draft"
	StatusSent  = "sent"
	StatusPaid  = "paid"
	StatusVoid  = "void"
)

// allowedTransitions encodes the invoice lifecycle:
// draft -> sent/void, sent -> paid/void, paid and void accept nothing.
var allowedTransitions = map[string]map[string]bool{
	StatusDraft: {StatusSent: true, StatusVoid: true},
	StatusSent:  {StatusPaid: true, StatusVoid: true},
	StatusPaid:  {},
	StatusVoid:  {},
}

// ValidStatus reports whether s names a known invoice status.
func ValidStatus(s string) bool {
	_, ok := allowedTransitions[s]
	return ok
}

// CanTransition reports whether an invoice may move from one status to
// another. Setting the current status again is not a transition and is
// handled by callers as a no-op.
func CanTransition(from, to string) bool {
	return allowedTransitions[from][to]
}

// Editable reports whether invoice content (fields, lines) may still change.
func Editable(status string) bool {
	return status != StatusPaid && status != StatusVoid
}
