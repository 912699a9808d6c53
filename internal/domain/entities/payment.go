package entities

// PaymentMethod enumerates how a completed job gets paid.

type PaymentMethod string

const (
	PaymentMethodOnline PaymentMethod = "online"
	PaymentMethodCash   PaymentMethod = "cash"
	PaymentMethodCheck  PaymentMethod = "check"
	PaymentMethodFree   PaymentMethod = "free"
)

func (m PaymentMethod) Valid() bool {
	switch m {
	case PaymentMethodOnline, PaymentMethodCash, PaymentMethodCheck, PaymentMethodFree:
		return true
	}
	return false
}

// RequiresAmount reports whether the operator must type the collected amount
// before dispatch. Only cash and check carry an entered amount; online bills
// the computed total and free bills nothing.
func (m PaymentMethod) RequiresAmount() bool {
	return m == PaymentMethodCash || m == PaymentMethodCheck
}

// PaymentSelection is the tagged payment choice for one workflow run.
//
// EnteredAmount is the operator-typed amount text and is meaningful only when
// Method.RequiresAmount() is true; it stays raw (string) until dispatch-time
// validation so the workflow can report InvalidAmount vs AmountMismatch
// separately.
type PaymentSelection struct {
	Method        PaymentMethod `json:"method"`
	EnteredAmount string        `json:"entered_amount,omitempty"`
}
