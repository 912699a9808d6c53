package response

import (
	"sort"
	"time"

	"fieldops/internal/domain/entities"
	"fieldops/internal/usecase"
)

type SelectedServiceResponse struct {
	ServiceID string  `json:"service_id"`
	Name      string  `json:"name"`
	Price     float64 `json:"price"`
	Scheduled bool    `json:"scheduled"`
}

type PaymentResponse struct {
	Method        string `json:"method"`
	EnteredAmount string `json:"entered_amount,omitempty"`
}

// CompletionSessionResponse is the session snapshot returned by every workflow
// endpoint. Subtotal/Total are computed per response; the session itself never
// stores derived money values.
type CompletionSessionResponse struct {
	SessionID   string                    `json:"session_id"`
	JobID       string                    `json:"job_id"`
	Step        int                       `json:"step"`
	StepName    string                    `json:"step_name"`
	Services    []SelectedServiceResponse `json:"services"`
	Subtotal    float64                   `json:"subtotal"`
	Total       float64                   `json:"total"`
	Payment     *PaymentResponse          `json:"payment,omitempty"`
	Dispatching bool                      `json:"dispatching"`
	CreatedAt   time.Time                 `json:"created_at"`
	UpdatedAt   time.Time                 `json:"updated_at"`
}

func FromCompletionSession(s entities.CompletionSession) CompletionSessionResponse {
	services := make([]SelectedServiceResponse, 0, len(s.Selected))
	for id := range s.Selected {
		services = append(services, SelectedServiceResponse{
			ServiceID: id,
			Name:      s.ServiceName(id),
			Price:     s.Prices[id],
			Scheduled: id == s.Job.ServiceID,
		})
	}
	sort.Slice(services, func(i, j int) bool {
		if services[i].Scheduled != services[j].Scheduled {
			return services[i].Scheduled
		}
		return services[i].ServiceID < services[j].ServiceID
	})

	subtotal := usecase.Subtotal(s.Selected, s.Prices)
	res := CompletionSessionResponse{
		SessionID:   s.ID,
		JobID:       s.Job.ID,
		Step:        int(s.Step),
		StepName:    s.Step.String(),
		Services:    services,
		Subtotal:    subtotal,
		Total:       usecase.Total(subtotal, usecase.TaxRate),
		Dispatching: s.Dispatching,
		CreatedAt:   s.CreatedAt,
		UpdatedAt:   s.UpdatedAt,
	}
	if s.Payment != nil {
		res.Payment = &PaymentResponse{
			Method:        string(s.Payment.Method),
			EnteredAmount: s.Payment.EnteredAmount,
		}
	}
	return res
}
