package aiusage

import "errors"

// ErrQuotaExhausted is returned when a visitor has no assistant messages
// remaining for the current month.
var ErrQuotaExhausted = errors.New("assistant message quota exhausted")

// DefaultMessages is the monthly assistant-message allowance per visitor.
const DefaultMessages = 30
