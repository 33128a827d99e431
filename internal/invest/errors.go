package invest

// Validation error codes.
const (
	CodeNoWallet            = "no_wallet"
	CodeInvalidType         = "invalid_type"
	CodeBelowMinimum        = "below_minimum"
	CodeDebtNotCovered      = "debt_not_covered"
	CodeInvalidAmount       = "invalid_amount"
	CodeInsufficientBalance = "insufficient_balance"
)

// ValidationError is a pre-network rejection of a draft. Message is the
// user-visible pt-BR text shown on the form.
type ValidationError struct {
	Code    string
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}
