package errs

// ErrorKind identifies a kind of internal error.
// fully support for errors.Is and errors.As.
type ErrorKind string

const (
	// NotFound is returned when a requested record is not found on the ledger.
	NotFound           = ErrorKind("Not Found")
	InvalidArgument    = ErrorKind("Invalid Argument")
	ArgumentRequired   = ErrorKind("Argument Required")
	Unsupported        = ErrorKind("Unsupported")
	InternalError      = ErrorKind("Internal Error")
	SomethingWentWrong = ErrorKind("Something Went Wrong")
	Timeout            = ErrorKind("Timeout")

	// NetworkFailure is returned when the ledger endpoint can't be reached
	// or answers with a malformed response.
	NetworkFailure = ErrorKind("Network Failure")

	// ValidationFailure is returned when a request is rejected before submission
	// or by the ledger because of its content.
	ValidationFailure = ErrorKind("Validation Failure")

	// InsufficientFunds is returned when the payer can't cover fees or payments.
	InsufficientFunds = ErrorKind("Insufficient Funds")

	// GuardRejected is returned when a guard rule doesn't allow the caller to mint.
	GuardRejected = ErrorKind("Guard Rejected")

	// SupplyExhausted is returned when there is no item left to mint.
	SupplyExhausted = ErrorKind("Supply Exhausted")
)

// Error satisfies the error interface and prints human-readable errors.
func (e ErrorKind) Error() string {
	return string(e)
}
