package entities

import "time"

// CompletionStep names the workflow states. The workflow is strictly linear;
// the only asynchronous transition is PaymentProcessing -> CompletionSummary,
// driven by a successful dispatch.

type CompletionStep int

const (
	StepServiceReview CompletionStep = iota + 1
	StepPricingAdjustment
	StepPaymentMethod
	StepPaymentProcessing
	StepCompletionSummary
)

func (s CompletionStep) String() string {
	switch s {
	case StepServiceReview:
		return "service_review"
	case StepPricingAdjustment:
		return "pricing_adjustment"
	case StepPaymentMethod:
		return "payment_method"
	case StepPaymentProcessing:
		return "payment_processing"
	case StepCompletionSummary:
		return "completion_summary"
	}
	return "unknown"
}

// Terminal reports whether no forward transition exists from s.
func (s CompletionStep) Terminal() bool { return s == StepCompletionSummary }

// CompletionSession is one running job-completion workflow, scoped to a single
// operator dialog.
//
// Invariants:
//   - Selected always contains Job.ServiceID; toggling it off is a no-op.
//   - Every id in Selected has an entry in Prices before the pricing step can
//     be left (entries are seeded from the catalog base price the first time a
//     service enters the set, then changed only by explicit edits/mark-free).
//   - Catalog is the snapshot fetched at session start; the dialog never
//     refetches it mid-run.
//
// Nothing here persists beyond the dialog: sessions live in an expiring
// in-memory store and all job/billing state belongs to the platform API.

type CompletionSession struct {
	ID       string                    `json:"id"`
	Job      Job                       `json:"job"`
	Step     CompletionStep            `json:"step"`
	Selected map[string]bool           `json:"selected"`
	Prices   map[string]float64        `json:"prices"`
	Catalog  map[string]CatalogService `json:"catalog"`
	Payment  *PaymentSelection         `json:"payment,omitempty"`

	// Dispatching guards against re-entrant advance calls while the outbound
	// dispatch is in flight.
	Dispatching bool `json:"dispatching"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// ServiceName resolves a display name from the catalog snapshot, falling back
// to the raw id for services the catalog no longer lists.
func (s CompletionSession) ServiceName(serviceID string) string {
	if svc, ok := s.Catalog[serviceID]; ok && svc.Name != "" {
		return svc.Name
	}
	return serviceID
}
