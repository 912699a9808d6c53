package entities

import "time"

// Job is the unit of field work being closed out (a scheduled service visit).
//
// Domain notes:
//   - The platform API is the source of truth for job state; the completion
//     service never mutates a Job. It is a read-only input to the workflow.
//   - ServiceID is the originally scheduled catalog service. It is a permanent
//     member of the session's selected set and can never be toggled off.

type Job struct {
	ID            string    `json:"id"`
	CustomerName  string    `json:"customer_name"`
	CustomerPhone string    `json:"customer_phone"`
	CustomerEmail string    `json:"customer_email"`
	ServiceID     string    `json:"service_id"`
	ScheduledAt   time.Time `json:"scheduled_at"`
	Notes         string    `json:"notes"`
}

// CatalogService is external reference data fetched from the platform API.
//
// PriceRange is a freeform display string (e.g. "$50-$100", "Varies"). The
// numeric base price is derived from it best-effort; see usecase.BasePrice.
type CatalogService struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	PriceRange string `json:"priceRange"`
}

// PerformedService is one line item reported to the platform API when a job
// is completed.
type PerformedService struct {
	ServiceID   string  `json:"serviceId"`
	ServiceName string  `json:"serviceName"`
	Price       float64 `json:"price"`
}
