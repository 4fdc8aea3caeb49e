package quota

import "errors"

// ErrQuotaExhausted is returned when a user has no messages remaining for the
// current month.
var ErrQuotaExhausted = errors.New("monthly message quota exhausted")

// MonthlyAllowance is the number of AI-bound messages granted per month.
const MonthlyAllowance = 100
