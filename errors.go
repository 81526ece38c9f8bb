package fintrack

import "fmt"

// The engine distinguishes three kinds of failures. All of them are
// deterministic functions of the current state and inputs: retrying with the
// same arguments reproduces the same outcome, so none is transient.

// ValidationError reports malformed or out-of-domain input: a non-positive
// amount, an expense whose category or date does not match the target budget,
// a payment exceeding the balance. The operation has no partial effect.
type ValidationError struct {
	Op     string // operation that rejected the input, e.g. "apply-expense"
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Op, e.Reason)
}

func validationf(op, format string, args ...any) error {
	return &ValidationError{Op: op, Reason: fmt.Sprintf(format, args...)}
}

// InvalidStateError reports an operation that is not permitted given the
// entity's current state: a payment on a non-active debt, a SIP contribution
// on a non-SIP investment. The operation has no effect.
type InvalidStateError struct {
	Op     string
	Reason string
}

func (e *InvalidStateError) Error() string {
	return fmt.Sprintf("%s: %s", e.Op, e.Reason)
}

func invalidStatef(op, format string, args ...any) error {
	return &InvalidStateError{Op: op, Reason: fmt.Sprintf(format, args...)}
}

// NonConvergentError reports a payoff projection that cannot resolve under
// the current payment and rate: the minimum payment does not cover the
// accruing interest, so the balance never reaches zero. It is a valid
// real-world state (the debt is growing), not a crash.
type NonConvergentError struct {
	Debt string
}

func (e *NonConvergentError) Error() string {
	return fmt.Sprintf("payoff of %q does not converge: payment does not cover accruing interest", e.Debt)
}
