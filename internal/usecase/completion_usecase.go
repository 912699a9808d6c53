package usecase

import (
	"context"
	"errors"
	"fmt"
	"log"
	"math"
	"sort"
	"strconv"
	"strings"
	"time"

	"fieldops/internal/domain/entities"
	"fieldops/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrInvalidJob       = errors.New("invalid job")
	ErrSessionNotFound  = errors.New("completion session not found")
	ErrUnknownService   = errors.New("unknown service")
	ErrWorkflowComplete = errors.New("workflow already complete")
	ErrDispatchInFlight = errors.New("dispatch already in flight")
	ErrCannotRetreat    = errors.New("cannot retreat from this step")
)

// ICompletionUseCase drives the five-step job-completion workflow.
//
// Advance moves the session one step forward after the guard for the current
// step passes; from the processing step it performs the dispatch and only a
// successful dispatch lands the session on the summary step. Retreat walks
// back one step and is legal only from steps 2-4. All validation failures
// leave the step unchanged.

type ICompletionUseCase interface {
	Start(ctx context.Context, job entities.Job) (entities.CompletionSession, error)
	Get(ctx context.Context, sessionID string) (entities.CompletionSession, error)
	ToggleService(ctx context.Context, sessionID, serviceID string) (entities.CompletionSession, error)
	SetServicePrice(ctx context.Context, sessionID, serviceID string, price float64) (entities.CompletionSession, error)
	MarkServiceFree(ctx context.Context, sessionID, serviceID string) (entities.CompletionSession, error)
	SelectPayment(ctx context.Context, sessionID string, sel entities.PaymentSelection) (entities.CompletionSession, error)
	Advance(ctx context.Context, sessionID string) (entities.CompletionSession, error)
	Retreat(ctx context.Context, sessionID string) (entities.CompletionSession, error)
	Abandon(ctx context.Context, sessionID string) error
}

type CompletionUseCase struct {
	sessions interfaces.ISessionStore
	api      interfaces.IPlatformAPI
	receipts interfaces.IDispatchReceiptRepository
	cache    interfaces.ICacheInvalidator
	events   interfaces.IEventPublisher
}

var _ ICompletionUseCase = (*CompletionUseCase)(nil)

// NewCompletionUseCase wires the workflow. receipts, cache and events may be
// nil; their side effects are skipped when absent and are best-effort even
// when present. sessions and api are required.
func NewCompletionUseCase(
	sessions interfaces.ISessionStore,
	api interfaces.IPlatformAPI,
	receipts interfaces.IDispatchReceiptRepository,
	cache interfaces.ICacheInvalidator,
	events interfaces.IEventPublisher,
) *CompletionUseCase {
	return &CompletionUseCase{sessions: sessions, api: api, receipts: receipts, cache: cache, events: events}
}

func (u *CompletionUseCase) Start(ctx context.Context, job entities.Job) (entities.CompletionSession, error) {
	log.Printf("[completion][usecase] start job_id=%s service_id=%s", job.ID, job.ServiceID)
	if strings.TrimSpace(job.ID) == "" || strings.TrimSpace(job.ServiceID) == "" {
		log.Printf("[completion][usecase] invalid job (missing id or service_id)")
		return entities.CompletionSession{}, ErrInvalidJob
	}
	if u.sessions == nil {
		return entities.CompletionSession{}, errors.New("session store not configured")
	}
	if u.api == nil {
		log.Printf("[completion][usecase] platform api not configured job_id=%s", job.ID)
		return entities.CompletionSession{}, errors.New("platform api not configured")
	}

	catalog, err := u.loadCatalog(ctx)
	if err != nil {
		log.Printf("[completion][usecase] catalog load failed job_id=%s err=%v", job.ID, err)
		return entities.CompletionSession{}, err
	}

	now := time.Now().UTC()
	s := entities.CompletionSession{
		ID:        uuid.NewString(),
		Job:       job,
		Step:      entities.StepServiceReview,
		Selected:  map[string]bool{job.ServiceID: true},
		Prices:    map[string]float64{},
		Catalog:   catalog,
		CreatedAt: now,
		UpdatedAt: now,
	}
	seedPrice(&s, job.ServiceID)

	if err := u.sessions.Put(ctx, s); err != nil {
		return entities.CompletionSession{}, err
	}
	log.Printf("[completion][usecase] start success session_id=%s job_id=%s base_price=%.2f", s.ID, job.ID, s.Prices[job.ServiceID])
	return s, nil
}

func (u *CompletionUseCase) Get(ctx context.Context, sessionID string) (entities.CompletionSession, error) {
	return u.load(ctx, sessionID)
}

// ToggleService adds or removes a catalog service from the selected set.
// Toggling the originally scheduled service is a no-op in every step where the
// toggle is reachable. A service entering the set for the first time gets its
// price seeded from the catalog base price; re-entering keeps any edited
// price.
func (u *CompletionUseCase) ToggleService(ctx context.Context, sessionID, serviceID string) (entities.CompletionSession, error) {
	return u.mutate(ctx, sessionID, func(s *entities.CompletionSession) error {
		if serviceID == s.Job.ServiceID {
			log.Printf("[completion][usecase] toggle no-op for scheduled service session_id=%s service_id=%s", s.ID, serviceID)
			return nil
		}
		if s.Selected[serviceID] {
			delete(s.Selected, serviceID)
			return nil
		}
		if _, ok := s.Catalog[serviceID]; !ok {
			return ErrUnknownService
		}
		s.Selected[serviceID] = true
		seedPrice(s, serviceID)
		return nil
	})
}

func (u *CompletionUseCase) SetServicePrice(ctx context.Context, sessionID, serviceID string, price float64) (entities.CompletionSession, error) {
	return u.mutate(ctx, sessionID, func(s *entities.CompletionSession) error {
		if !s.Selected[serviceID] {
			return ErrUnknownService
		}
		if math.IsNaN(price) || math.IsInf(price, 0) || price < 0 {
			return ErrInvalidPrice
		}
		s.Prices[serviceID] = price
		return nil
	})
}

func (u *CompletionUseCase) MarkServiceFree(ctx context.Context, sessionID, serviceID string) (entities.CompletionSession, error) {
	return u.mutate(ctx, sessionID, func(s *entities.CompletionSession) error {
		if !s.Selected[serviceID] {
			return ErrUnknownService
		}
		s.Prices[serviceID] = 0
		return nil
	})
}

func (u *CompletionUseCase) SelectPayment(ctx context.Context, sessionID string, sel entities.PaymentSelection) (entities.CompletionSession, error) {
	return u.mutate(ctx, sessionID, func(s *entities.CompletionSession) error {
		if !sel.Method.Valid() {
			return ErrNoPaymentMethod
		}
		if !sel.Method.RequiresAmount() {
			sel.EnteredAmount = ""
		}
		s.Payment = &sel
		return nil
	})
}

func (u *CompletionUseCase) Advance(ctx context.Context, sessionID string) (entities.CompletionSession, error) {
	s, err := u.load(ctx, sessionID)
	if err != nil {
		return entities.CompletionSession{}, err
	}
	if s.Dispatching {
		return entities.CompletionSession{}, ErrDispatchInFlight
	}
	if s.Step.Terminal() {
		return entities.CompletionSession{}, ErrWorkflowComplete
	}

	switch s.Step {
	case entities.StepServiceReview:
		if len(s.Selected) == 0 {
			return entities.CompletionSession{}, ErrNoServicesSelected
		}
	case entities.StepPricingAdjustment:
		if err := ValidatePricing(s.Selected, s.Prices); err != nil {
			log.Printf("[completion][usecase] pricing validation failed session_id=%s err=%v", s.ID, err)
			return entities.CompletionSession{}, err
		}
	case entities.StepPaymentMethod:
		if s.Payment == nil {
			return entities.CompletionSession{}, ErrNoPaymentMethod
		}
	case entities.StepPaymentProcessing:
		return u.dispatch(ctx, s)
	}

	s.Step++
	s.UpdatedAt = time.Now().UTC()
	if err := u.sessions.Put(ctx, s); err != nil {
		return entities.CompletionSession{}, err
	}
	log.Printf("[completion][usecase] advance session_id=%s step=%s", s.ID, s.Step)
	return s, nil
}

func (u *CompletionUseCase) Retreat(ctx context.Context, sessionID string) (entities.CompletionSession, error) {
	s, err := u.load(ctx, sessionID)
	if err != nil {
		return entities.CompletionSession{}, err
	}
	if s.Dispatching {
		return entities.CompletionSession{}, ErrDispatchInFlight
	}
	switch s.Step {
	case entities.StepPricingAdjustment, entities.StepPaymentMethod, entities.StepPaymentProcessing:
	default:
		return entities.CompletionSession{}, ErrCannotRetreat
	}

	s.Step--
	s.UpdatedAt = time.Now().UTC()
	if err := u.sessions.Put(ctx, s); err != nil {
		return entities.CompletionSession{}, err
	}
	log.Printf("[completion][usecase] retreat session_id=%s step=%s", s.ID, s.Step)
	return s, nil
}

// Abandon closes the dialog. No compensation is needed: nothing has been
// persisted server-side unless the dispatch already succeeded, and a
// successful dispatch is final.
func (u *CompletionUseCase) Abandon(ctx context.Context, sessionID string) error {
	s, err := u.load(ctx, sessionID)
	if err != nil {
		return err
	}
	if s.Dispatching {
		return ErrDispatchInFlight
	}
	u.sessions.Delete(ctx, s.ID)
	log.Printf("[completion][usecase] abandoned session_id=%s step=%s", s.ID, s.Step)
	return nil
}

// dispatch runs the processing step: reconcile the total against the payment
// selection, optionally send the itemized invoice, then complete the job. Any
// failure leaves the session at the processing step so the operator can fix
// input or retry.
func (u *CompletionUseCase) dispatch(ctx context.Context, s entities.CompletionSession) (entities.CompletionSession, error) {
	if u.api == nil {
		return entities.CompletionSession{}, errors.New("platform api not configured")
	}
	if s.Payment == nil {
		return entities.CompletionSession{}, ErrNoPaymentMethod
	}
	method := s.Payment.Method

	total := Total(Subtotal(s.Selected, s.Prices), TaxRate)
	if err := ValidatePaymentTotal(method, total); err != nil {
		log.Printf("[completion][usecase] total validation failed session_id=%s method=%s total=%.2f err=%v", s.ID, method, total, err)
		return entities.CompletionSession{}, err
	}

	amount := total
	switch method {
	case entities.PaymentMethodCash, entities.PaymentMethodCheck:
		if err := ValidateCashCheckAmount(s.Payment.EnteredAmount, total); err != nil {
			log.Printf("[completion][usecase] amount validation failed session_id=%s method=%s err=%v", s.ID, method, err)
			return entities.CompletionSession{}, err
		}
		amount, _ = strconv.ParseFloat(strings.TrimSpace(s.Payment.EnteredAmount), 64)
	case entities.PaymentMethodFree:
		// Discount-to-zero: nothing is billed even if the total is nonzero.
		amount = 0
	}

	performed := performedServices(s)

	s.Dispatching = true
	s.UpdatedAt = time.Now().UTC()
	if err := u.sessions.Put(ctx, s); err != nil {
		return entities.CompletionSession{}, err
	}

	fail := func(err error) (entities.CompletionSession, error) {
		s.Dispatching = false
		s.UpdatedAt = time.Now().UTC()
		if putErr := u.sessions.Put(ctx, s); putErr != nil {
			log.Printf("[completion][usecase] session unwind failed session_id=%s err=%v", s.ID, putErr)
		}
		return entities.CompletionSession{}, err
	}

	if method == entities.PaymentMethodOnline {
		inv := interfaces.InvoiceRequest{
			CustomerPhone: s.Job.CustomerPhone,
			CustomerEmail: s.Job.CustomerEmail,
			CustomerName:  s.Job.CustomerName,
			Amount:        amount,
			Service:       itemize(performed),
			Notes:         s.Job.Notes,
		}
		log.Printf("[completion][usecase] sending invoice session_id=%s job_id=%s amount=%.2f", s.ID, s.Job.ID, amount)
		if err := u.api.SendInvoice(ctx, inv); err != nil {
			log.Printf("[completion][usecase] invoice send failed session_id=%s err=%v", s.ID, err)
			return fail(err)
		}
	}

	log.Printf("[completion][usecase] completing job session_id=%s job_id=%s method=%s amount=%.2f services=%d", s.ID, s.Job.ID, method, amount, len(performed))
	raw, err := u.api.CompleteJob(ctx, s.Job.ID, interfaces.CompleteJobRequest{
		PaymentMethod:     string(method),
		Amount:            amount,
		ServicesPerformed: performed,
	})
	if err != nil {
		log.Printf("[completion][usecase] complete job failed session_id=%s err=%v", s.ID, err)
		return fail(err)
	}

	now := time.Now().UTC()
	s.Dispatching = false
	s.Step = entities.StepCompletionSummary
	s.UpdatedAt = now
	if err := u.sessions.Put(ctx, s); err != nil {
		log.Printf("[completion][usecase] session persist after dispatch failed session_id=%s err=%v", s.ID, err)
	}
	log.Printf("[completion][usecase] dispatch success session_id=%s job_id=%s", s.ID, s.Job.ID)

	if u.cache != nil {
		if err := u.cache.InvalidateCompletionViews(ctx); err != nil {
			log.Printf("[completion][usecase] cache invalidation failed session_id=%s err=%v", s.ID, err)
		}
	}
	if u.receipts != nil {
		receipt := entities.DispatchReceipt{
			ID:                  uuid.NewString(),
			JobID:               s.Job.ID,
			SessionID:           s.ID,
			PaymentMethod:       method,
			Amount:              amount,
			ServicesPerformed:   performed,
			PlatformResponseRaw: raw,
			CreatedAt:           now,
		}
		if _, err := u.receipts.Create(ctx, receipt); err != nil {
			log.Printf("[completion][usecase] receipt write failed session_id=%s err=%v", s.ID, err)
		}
	}
	if u.events != nil {
		evt := entities.JobCompletedEvent{
			JobID:         s.Job.ID,
			SessionID:     s.ID,
			CustomerPhone: s.Job.CustomerPhone,
			PaymentMethod: method,
			Amount:        amount,
			CompletedAt:   now,
		}
		if err := u.events.PublishJobCompleted(ctx, evt); err != nil {
			log.Printf("[completion][usecase] event publish failed session_id=%s err=%v", s.ID, err)
		}
	}

	return s, nil
}

func (u *CompletionUseCase) load(ctx context.Context, sessionID string) (entities.CompletionSession, error) {
	sessionID = strings.TrimSpace(sessionID)
	if sessionID == "" {
		return entities.CompletionSession{}, ErrSessionNotFound
	}
	if u.sessions == nil {
		return entities.CompletionSession{}, errors.New("session store not configured")
	}
	s, ok := u.sessions.Get(ctx, sessionID)
	if !ok {
		return entities.CompletionSession{}, ErrSessionNotFound
	}
	return s, nil
}

// mutate applies fn to a loaded session and persists it. Mutations are
// rejected once the workflow is terminal or a dispatch is in flight; the
// payment selection in particular must not change after dispatch begins.
func (u *CompletionUseCase) mutate(ctx context.Context, sessionID string, fn func(*entities.CompletionSession) error) (entities.CompletionSession, error) {
	s, err := u.load(ctx, sessionID)
	if err != nil {
		return entities.CompletionSession{}, err
	}
	if s.Dispatching {
		return entities.CompletionSession{}, ErrDispatchInFlight
	}
	if s.Step.Terminal() {
		return entities.CompletionSession{}, ErrWorkflowComplete
	}
	if err := fn(&s); err != nil {
		return entities.CompletionSession{}, err
	}
	s.UpdatedAt = time.Now().UTC()
	if err := u.sessions.Put(ctx, s); err != nil {
		return entities.CompletionSession{}, err
	}
	return s, nil
}

func (u *CompletionUseCase) loadCatalog(ctx context.Context) (map[string]entities.CatalogService, error) {
	services, err := u.api.ListServices(ctx)
	if err != nil {
		return nil, err
	}
	addons, err := u.api.ListAddonServices(ctx)
	if err != nil {
		return nil, err
	}

	catalog := make(map[string]entities.CatalogService, len(services)+len(addons))
	for _, svc := range services {
		catalog[svc.ID] = svc
	}
	for _, svc := range addons {
		catalog[svc.ID] = svc
	}
	return catalog, nil
}

// seedPrice initializes a service's price from the catalog base price the
// first time it enters the selected set. A price that already exists (from a
// prior toggle + edit) is kept.
func seedPrice(s *entities.CompletionSession, serviceID string) {
	if _, ok := s.Prices[serviceID]; ok {
		return
	}
	svc, ok := s.Catalog[serviceID]
	if !ok {
		log.Printf("[completion][usecase] service missing from catalog session_id=%s service_id=%s", s.ID, serviceID)
		s.Prices[serviceID] = 0
		return
	}
	price, parsed := BasePrice(svc.PriceRange)
	if !parsed {
		log.Printf("[completion][usecase] no base price in range text session_id=%s service_id=%s range=%q", s.ID, serviceID, svc.PriceRange)
	}
	s.Prices[serviceID] = price
}

func performedServices(s entities.CompletionSession) []entities.PerformedService {
	// Scheduled service first, then the rest in a stable order.
	out := make([]entities.PerformedService, 0, len(s.Selected))
	appendSvc := func(id string) {
		out = append(out, entities.PerformedService{
			ServiceID:   id,
			ServiceName: s.ServiceName(id),
			Price:       s.Prices[id],
		})
	}
	if s.Selected[s.Job.ServiceID] {
		appendSvc(s.Job.ServiceID)
	}
	rest := make([]string, 0, len(s.Selected))
	for id := range s.Selected {
		if id != s.Job.ServiceID {
			rest = append(rest, id)
		}
	}
	sort.Strings(rest)
	for _, id := range rest {
		appendSvc(id)
	}
	return out
}

func itemize(performed []entities.PerformedService) string {
	parts := make([]string, 0, len(performed))
	for _, p := range performed {
		parts = append(parts, fmt.Sprintf("%s ($%.2f)", p.ServiceName, p.Price))
	}
	return strings.Join(parts, ", ")
}
