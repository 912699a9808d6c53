package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"fieldops/internal/domain/entities"
	"fieldops/internal/usecase/interfaces"
	mock_interfaces "fieldops/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func testJob() entities.Job {
	return entities.Job{
		ID:            "job-1",
		CustomerName:  "Dana Fisher",
		CustomerPhone: "+15550001111",
		CustomerEmail: "dana@example.com",
		ServiceID:     "svc-7",
	}
}

func testCatalog() []entities.CatalogService {
	return []entities.CatalogService{
		{ID: "svc-7", Name: "Basic Wash", PriceRange: "$30-$40"},
		{ID: "svc-9", Name: "Deep Clean", PriceRange: "$80-$120"},
	}
}

func testAddons() []entities.CatalogService {
	return []entities.CatalogService{
		{ID: "addon-1", Name: "Tire Shine", PriceRange: "$10-$15"},
		{ID: "addon-2", Name: "Odor Treatment", PriceRange: "Varies"},
	}
}

// statefulStore backs the mock session store with a real map so sequences of
// Put/Get behave like the LRU store does.
func statefulStore(ctrl *gomock.Controller) (*mock_interfaces.MockISessionStore, map[string]entities.CompletionSession) {
	store := mock_interfaces.NewMockISessionStore(ctrl)
	state := map[string]entities.CompletionSession{}
	store.EXPECT().Put(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, s entities.CompletionSession) error {
			state[s.ID] = s
			return nil
		}).AnyTimes()
	store.EXPECT().Get(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, id string) (entities.CompletionSession, bool) {
			s, ok := state[id]
			return s, ok
		}).AnyTimes()
	store.EXPECT().Delete(gomock.Any(), gomock.Any()).Do(
		func(_ context.Context, id string) {
			delete(state, id)
		}).AnyTimes()
	return store, state
}

func apiWithCatalog(ctrl *gomock.Controller) *mock_interfaces.MockIPlatformAPI {
	api := mock_interfaces.NewMockIPlatformAPI(ctrl)
	api.EXPECT().ListServices(gomock.Any()).Return(testCatalog(), nil).AnyTimes()
	api.EXPECT().ListAddonServices(gomock.Any()).Return(testAddons(), nil).AnyTimes()
	return api
}

func TestCompletionUseCase_Start(t *testing.T) {
	t.Run("invalid job", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		store, _ := statefulStore(ctrl)
		uc := NewCompletionUseCase(store, apiWithCatalog(ctrl), nil, nil, nil)

		_, err := uc.Start(context.Background(), entities.Job{ID: "job-1"})
		if !errors.Is(err, ErrInvalidJob) {
			t.Fatalf("expected ErrInvalidJob, got %v", err)
		}
	})

	t.Run("platform api not configured", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		store, _ := statefulStore(ctrl)
		uc := NewCompletionUseCase(store, nil, nil, nil, nil)

		_, err := uc.Start(context.Background(), testJob())
		if err == nil || err.Error() != "platform api not configured" {
			t.Fatalf("expected platform api not configured error, got %v", err)
		}
	})

	t.Run("catalog load failure", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		store, _ := statefulStore(ctrl)
		api := mock_interfaces.NewMockIPlatformAPI(ctrl)
		api.EXPECT().ListServices(gomock.Any()).Return(nil, errors.New("down"))
		uc := NewCompletionUseCase(store, api, nil, nil, nil)

		_, err := uc.Start(context.Background(), testJob())
		if err == nil || err.Error() != "down" {
			t.Fatalf("expected catalog error, got %v", err)
		}
	})

	t.Run("seeds scheduled service from catalog base price", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		store, _ := statefulStore(ctrl)
		uc := NewCompletionUseCase(store, apiWithCatalog(ctrl), nil, nil, nil)

		s, err := uc.Start(context.Background(), testJob())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if s.Step != entities.StepServiceReview {
			t.Fatalf("expected step 1, got %d", s.Step)
		}
		if !s.Selected["svc-7"] || len(s.Selected) != 1 {
			t.Fatalf("expected selected = {svc-7}, got %v", s.Selected)
		}
		if s.Prices["svc-7"] != 30 {
			t.Fatalf("expected seeded base price 30, got %v", s.Prices["svc-7"])
		}
	})
}

func TestCompletionUseCase_ToggleService(t *testing.T) {
	newSession := func(t *testing.T, ctrl *gomock.Controller) (*CompletionUseCase, entities.CompletionSession) {
		t.Helper()
		store, _ := statefulStore(ctrl)
		uc := NewCompletionUseCase(store, apiWithCatalog(ctrl), nil, nil, nil)
		s, err := uc.Start(context.Background(), testJob())
		if err != nil {
			t.Fatalf("start failed: %v", err)
		}
		return uc, s
	}

	t.Run("scheduled service cannot be removed", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, s := newSession(t, ctrl)

		got, err := uc.ToggleService(context.Background(), s.ID, "svc-7")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !got.Selected["svc-7"] || len(got.Selected) != 1 {
			t.Fatalf("expected toggle to be a no-op, got %v", got.Selected)
		}
	})

	t.Run("addon toggles in with lazy seeded price", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, s := newSession(t, ctrl)

		got, err := uc.ToggleService(context.Background(), s.ID, "addon-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !got.Selected["addon-1"] {
			t.Fatalf("expected addon-1 selected, got %v", got.Selected)
		}
		if got.Prices["addon-1"] != 10 {
			t.Fatalf("expected seeded price 10, got %v", got.Prices["addon-1"])
		}
	})

	t.Run("no-digit price range seeds zero", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, s := newSession(t, ctrl)

		got, err := uc.ToggleService(context.Background(), s.ID, "addon-2")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if p, ok := got.Prices["addon-2"]; !ok || p != 0 {
			t.Fatalf("expected seeded price 0, got %v (present=%v)", p, ok)
		}
	})

	t.Run("re-toggle keeps an edited price", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, s := newSession(t, ctrl)

		if _, err := uc.ToggleService(context.Background(), s.ID, "addon-1"); err != nil {
			t.Fatalf("toggle on failed: %v", err)
		}
		if _, err := uc.SetServicePrice(context.Background(), s.ID, "addon-1", 12.5); err != nil {
			t.Fatalf("price edit failed: %v", err)
		}
		if _, err := uc.ToggleService(context.Background(), s.ID, "addon-1"); err != nil {
			t.Fatalf("toggle off failed: %v", err)
		}
		got, err := uc.ToggleService(context.Background(), s.ID, "addon-1")
		if err != nil {
			t.Fatalf("toggle back on failed: %v", err)
		}
		if got.Prices["addon-1"] != 12.5 {
			t.Fatalf("expected edited price kept, got %v", got.Prices["addon-1"])
		}
	})

	t.Run("unknown service", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, s := newSession(t, ctrl)

		_, err := uc.ToggleService(context.Background(), s.ID, "nope")
		if !errors.Is(err, ErrUnknownService) {
			t.Fatalf("expected ErrUnknownService, got %v", err)
		}
	})
}

func TestCompletionUseCase_AdvanceGuards(t *testing.T) {
	setup := func(t *testing.T, ctrl *gomock.Controller) (*CompletionUseCase, map[string]entities.CompletionSession, entities.CompletionSession) {
		t.Helper()
		store, state := statefulStore(ctrl)
		uc := NewCompletionUseCase(store, apiWithCatalog(ctrl), nil, nil, nil)
		s, err := uc.Start(context.Background(), testJob())
		if err != nil {
			t.Fatalf("start failed: %v", err)
		}
		return uc, state, s
	}

	t.Run("unknown session", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, _, _ := setup(t, ctrl)

		_, err := uc.Advance(context.Background(), "missing")
		if !errors.Is(err, ErrSessionNotFound) {
			t.Fatalf("expected ErrSessionNotFound, got %v", err)
		}
	})

	t.Run("pricing step rejects negative price and keeps the step", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, state, s := setup(t, ctrl)

		sess := state[s.ID]
		sess.Step = entities.StepPricingAdjustment
		sess.Prices["svc-7"] = -1
		state[s.ID] = sess

		_, err := uc.Advance(context.Background(), s.ID)
		if !errors.Is(err, ErrInvalidPrice) {
			t.Fatalf("expected ErrInvalidPrice, got %v", err)
		}
		if state[s.ID].Step != entities.StepPricingAdjustment {
			t.Fatalf("step changed on failed validation: %v", state[s.ID].Step)
		}
	})

	t.Run("payment step requires a selection", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, state, s := setup(t, ctrl)

		sess := state[s.ID]
		sess.Step = entities.StepPaymentMethod
		state[s.ID] = sess

		_, err := uc.Advance(context.Background(), s.ID)
		if !errors.Is(err, ErrNoPaymentMethod) {
			t.Fatalf("expected ErrNoPaymentMethod, got %v", err)
		}
	})

	t.Run("terminal step rejects advance", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, state, s := setup(t, ctrl)

		sess := state[s.ID]
		sess.Step = entities.StepCompletionSummary
		state[s.ID] = sess

		_, err := uc.Advance(context.Background(), s.ID)
		if !errors.Is(err, ErrWorkflowComplete) {
			t.Fatalf("expected ErrWorkflowComplete, got %v", err)
		}
	})

	t.Run("dispatch in flight rejects advance", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, state, s := setup(t, ctrl)

		sess := state[s.ID]
		sess.Dispatching = true
		state[s.ID] = sess

		_, err := uc.Advance(context.Background(), s.ID)
		if !errors.Is(err, ErrDispatchInFlight) {
			t.Fatalf("expected ErrDispatchInFlight, got %v", err)
		}
	})
}

func TestCompletionUseCase_Dispatch(t *testing.T) {
	// walkToProcessing drives a fresh session to the processing step with the
	// given payment selection.
	walkToProcessing := func(t *testing.T, uc *CompletionUseCase, sel entities.PaymentSelection) entities.CompletionSession {
		t.Helper()
		ctx := context.Background()
		s, err := uc.Start(ctx, testJob())
		if err != nil {
			t.Fatalf("start failed: %v", err)
		}
		for _, step := range []entities.CompletionStep{entities.StepPricingAdjustment, entities.StepPaymentMethod} {
			if s, err = uc.Advance(ctx, s.ID); err != nil {
				t.Fatalf("advance to %s failed: %v", step, err)
			}
		}
		if s, err = uc.SelectPayment(ctx, s.ID, sel); err != nil {
			t.Fatalf("select payment failed: %v", err)
		}
		if s, err = uc.Advance(ctx, s.ID); err != nil {
			t.Fatalf("advance to processing failed: %v", err)
		}
		if s.Step != entities.StepPaymentProcessing {
			t.Fatalf("expected processing step, got %d", s.Step)
		}
		return s
	}

	t.Run("cash end to end", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		store, _ := statefulStore(ctrl)
		api := apiWithCatalog(ctrl)
		receipts := mock_interfaces.NewMockIDispatchReceiptRepository(ctrl)
		invalidator := mock_interfaces.NewMockICacheInvalidator(ctrl)
		events := mock_interfaces.NewMockIEventPublisher(ctrl)
		uc := NewCompletionUseCase(store, api, receipts, invalidator, events)
		ctx := context.Background()

		s := walkToProcessing(t, uc, entities.PaymentSelection{Method: entities.PaymentMethodCash, EnteredAmount: "35.00"})

		// Operator edited the seeded $30 up to $35 on the pricing step; do it
		// here so the entered amount matches.
		if _, err := uc.SetServicePrice(ctx, s.ID, "svc-7", 35); err != nil {
			t.Fatalf("price edit failed: %v", err)
		}

		api.EXPECT().CompleteJob(gomock.Any(), "job-1", gomock.Any()).DoAndReturn(
			func(_ context.Context, _ string, req interfaces.CompleteJobRequest) (json.RawMessage, error) {
				if req.PaymentMethod != "cash" || req.Amount != 35 {
					t.Fatalf("unexpected completion request: %+v", req)
				}
				if len(req.ServicesPerformed) != 1 {
					t.Fatalf("expected one performed service, got %d", len(req.ServicesPerformed))
				}
				svc := req.ServicesPerformed[0]
				if svc.ServiceID != "svc-7" || svc.ServiceName != "Basic Wash" || svc.Price != 35 {
					t.Fatalf("unexpected performed service: %+v", svc)
				}
				return json.RawMessage(`{"success":true}`), nil
			})
		invalidator.EXPECT().InvalidateCompletionViews(gomock.Any()).Return(nil)
		receipts.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, r entities.DispatchReceipt) (entities.DispatchReceipt, error) {
				if r.JobID != "job-1" || r.Amount != 35 || r.PaymentMethod != entities.PaymentMethodCash {
					t.Fatalf("unexpected receipt: %+v", r)
				}
				return r, nil
			})
		events.EXPECT().PublishJobCompleted(gomock.Any(), gomock.Any()).Return(nil)

		got, err := uc.Advance(ctx, s.ID)
		if err != nil {
			t.Fatalf("dispatch failed: %v", err)
		}
		if got.Step != entities.StepCompletionSummary {
			t.Fatalf("expected summary step, got %d", got.Step)
		}
		if got.Dispatching {
			t.Fatalf("dispatching flag not cleared")
		}
	})

	t.Run("cash amount mismatch keeps processing step", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		store, state := statefulStore(ctrl)
		uc := NewCompletionUseCase(store, apiWithCatalog(ctrl), nil, nil, nil)

		s := walkToProcessing(t, uc, entities.PaymentSelection{Method: entities.PaymentMethodCash, EnteredAmount: "18.00"})

		_, err := uc.Advance(context.Background(), s.ID)
		if !errors.Is(err, ErrAmountMismatch) {
			t.Fatalf("expected ErrAmountMismatch, got %v", err)
		}
		if state[s.ID].Step != entities.StepPaymentProcessing {
			t.Fatalf("step changed on failed validation")
		}
	})

	t.Run("online sends invoice before completing", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		store, _ := statefulStore(ctrl)
		api := apiWithCatalog(ctrl)
		uc := NewCompletionUseCase(store, api, nil, nil, nil)
		ctx := context.Background()

		s := walkToProcessing(t, uc, entities.PaymentSelection{Method: entities.PaymentMethodOnline})

		gomock.InOrder(
			api.EXPECT().SendInvoice(gomock.Any(), gomock.Any()).DoAndReturn(
				func(_ context.Context, inv interfaces.InvoiceRequest) error {
					if inv.CustomerName != "Dana Fisher" || inv.Amount != 30 {
						t.Fatalf("unexpected invoice: %+v", inv)
					}
					if inv.Service != "Basic Wash ($30.00)" {
						t.Fatalf("unexpected itemization: %q", inv.Service)
					}
					return nil
				}),
			api.EXPECT().CompleteJob(gomock.Any(), "job-1", gomock.Any()).Return(json.RawMessage(`{}`), nil),
		)

		got, err := uc.Advance(ctx, s.ID)
		if err != nil {
			t.Fatalf("dispatch failed: %v", err)
		}
		if got.Step != entities.StepCompletionSummary {
			t.Fatalf("expected summary step, got %d", got.Step)
		}
	})

	t.Run("invoice failure aborts before completion", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		store, state := statefulStore(ctrl)
		api := apiWithCatalog(ctrl)
		uc := NewCompletionUseCase(store, api, nil, nil, nil)

		s := walkToProcessing(t, uc, entities.PaymentSelection{Method: entities.PaymentMethodOnline})

		api.EXPECT().SendInvoice(gomock.Any(), gomock.Any()).Return(errors.New("sms down"))
		// No CompleteJob expectation: the controller enforces it is never called.

		_, err := uc.Advance(context.Background(), s.ID)
		if err == nil || err.Error() != "sms down" {
			t.Fatalf("expected invoice error, got %v", err)
		}
		if got := state[s.ID]; got.Step != entities.StepPaymentProcessing || got.Dispatching {
			t.Fatalf("expected session back at processing step, got %+v", got)
		}
	})

	t.Run("zero total blocked for online", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		store, _ := statefulStore(ctrl)
		uc := NewCompletionUseCase(store, apiWithCatalog(ctrl), nil, nil, nil)
		ctx := context.Background()

		s := walkToProcessing(t, uc, entities.PaymentSelection{Method: entities.PaymentMethodOnline})
		if _, err := uc.MarkServiceFree(ctx, s.ID, "svc-7"); err != nil {
			t.Fatalf("mark free failed: %v", err)
		}

		_, err := uc.Advance(ctx, s.ID)
		if !errors.Is(err, ErrInvalidTotal) {
			t.Fatalf("expected ErrInvalidTotal, got %v", err)
		}
	})

	t.Run("free with nonzero total dispatches zero amount", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		store, _ := statefulStore(ctrl)
		api := apiWithCatalog(ctrl)
		uc := NewCompletionUseCase(store, api, nil, nil, nil)

		s := walkToProcessing(t, uc, entities.PaymentSelection{Method: entities.PaymentMethodFree})

		api.EXPECT().CompleteJob(gomock.Any(), "job-1", gomock.Any()).DoAndReturn(
			func(_ context.Context, _ string, req interfaces.CompleteJobRequest) (json.RawMessage, error) {
				if req.PaymentMethod != "free" || req.Amount != 0 {
					t.Fatalf("unexpected completion request: %+v", req)
				}
				return json.RawMessage(`{}`), nil
			})

		got, err := uc.Advance(context.Background(), s.ID)
		if err != nil {
			t.Fatalf("dispatch failed: %v", err)
		}
		if got.Step != entities.StepCompletionSummary {
			t.Fatalf("expected summary step, got %d", got.Step)
		}
	})
}

func TestCompletionUseCase_Retreat(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	store, state := statefulStore(ctrl)
	uc := NewCompletionUseCase(store, apiWithCatalog(ctrl), nil, nil, nil)
	ctx := context.Background()

	s, err := uc.Start(ctx, testJob())
	if err != nil {
		t.Fatalf("start failed: %v", err)
	}

	if _, err := uc.Retreat(ctx, s.ID); !errors.Is(err, ErrCannotRetreat) {
		t.Fatalf("expected ErrCannotRetreat from step 1, got %v", err)
	}

	if _, err := uc.Advance(ctx, s.ID); err != nil {
		t.Fatalf("advance failed: %v", err)
	}
	got, err := uc.Retreat(ctx, s.ID)
	if err != nil {
		t.Fatalf("retreat failed: %v", err)
	}
	if got.Step != entities.StepServiceReview {
		t.Fatalf("expected step 1 after retreat, got %d", got.Step)
	}

	sess := state[s.ID]
	sess.Step = entities.StepCompletionSummary
	state[s.ID] = sess
	if _, err := uc.Retreat(ctx, s.ID); !errors.Is(err, ErrCannotRetreat) {
		t.Fatalf("expected ErrCannotRetreat from summary, got %v", err)
	}
}

func TestCompletionUseCase_Abandon(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	store, _ := statefulStore(ctrl)
	uc := NewCompletionUseCase(store, apiWithCatalog(ctrl), nil, nil, nil)
	ctx := context.Background()

	s, err := uc.Start(ctx, testJob())
	if err != nil {
		t.Fatalf("start failed: %v", err)
	}

	if err := uc.Abandon(ctx, s.ID); err != nil {
		t.Fatalf("abandon failed: %v", err)
	}
	if _, err := uc.Get(ctx, s.ID); !errors.Is(err, ErrSessionNotFound) {
		t.Fatalf("expected ErrSessionNotFound after abandon, got %v", err)
	}
}
