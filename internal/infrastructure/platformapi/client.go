package platformapi

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"os"
	"strings"

	"fieldops/internal/domain/entities"
	"fieldops/internal/usecase/interfaces"
)

var ErrMissingPlatformAPIBaseURL = errors.New("missing PLATFORM_API_BASE_URL")
var ErrPlatformAPINotConfigured = errors.New("platform api client not configured")

// APIError is a non-2xx answer from the platform API. Message carries the
// server-provided text when the body had one, so handlers can surface it to
// the operator verbatim.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("platform api error status=%d message=%q", e.StatusCode, e.Message)
}

// Client talks to the platform's job/billing REST API.
//
// Mock mode (PLATFORM_API_MOCK=1) answers every call locally with canned data
// so the workflow can run without the platform being up.

type Client struct {
	baseURL    string
	httpClient *http.Client
	mockMode   bool
}

var _ interfaces.IPlatformAPI = (*Client)(nil)

func NewClient(baseURL string) (*Client, error) {
	if isPlatformAPIMockEnabled() {
		log.Printf("[platform][client] mock mode enabled")
		return &Client{mockMode: true}, nil
	}

	baseURL = strings.TrimSpace(baseURL)
	if baseURL == "" {
		log.Printf("[platform][client] missing PLATFORM_API_BASE_URL")
		return nil, ErrMissingPlatformAPIBaseURL
	}

	log.Printf("[platform][client] initialized base_url=%s", baseURL)
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{},
	}, nil
}

func (c *Client) SendInvoice(ctx context.Context, req interfaces.InvoiceRequest) error {
	if c != nil && c.mockMode {
		log.Printf("[platform][client] mock invoice send customer=%s amount=%.2f", req.CustomerName, req.Amount)
		return nil
	}
	if c == nil || c.httpClient == nil {
		return ErrPlatformAPINotConfigured
	}

	log.Printf("[platform][client] invoice send start customer=%s amount=%.2f", req.CustomerName, req.Amount)
	_, err := c.post(ctx, "/api/dashboard/send-invoice", req)
	if err != nil {
		log.Printf("[platform][client] invoice send failed err=%v", err)
		return err
	}
	log.Printf("[platform][client] invoice send success")
	return nil
}

func (c *Client) CompleteJob(ctx context.Context, jobID string, req interfaces.CompleteJobRequest) (json.RawMessage, error) {
	if c != nil && c.mockMode {
		log.Printf("[platform][client] mock complete job job_id=%s method=%s amount=%.2f", jobID, req.PaymentMethod, req.Amount)
		b, err := json.Marshal(map[string]any{"success": true, "jobId": jobID})
		if err != nil {
			return nil, err
		}
		return b, nil
	}
	if c == nil || c.httpClient == nil {
		return nil, ErrPlatformAPINotConfigured
	}

	log.Printf("[platform][client] complete job start job_id=%s method=%s amount=%.2f", jobID, req.PaymentMethod, req.Amount)
	body, err := c.post(ctx, "/api/tech/jobs/"+jobID+"/complete", req)
	if err != nil {
		log.Printf("[platform][client] complete job failed job_id=%s err=%v", jobID, err)
		return nil, err
	}
	log.Printf("[platform][client] complete job success job_id=%s", jobID)
	return body, nil
}

func (c *Client) ListServices(ctx context.Context) ([]entities.CatalogService, error) {
	if c != nil && c.mockMode {
		return mockCatalog(), nil
	}
	var out struct {
		Success  bool                      `json:"success"`
		Services []entities.CatalogService `json:"services"`
	}
	if err := c.getJSON(ctx, "/api/services", &out); err != nil {
		return nil, err
	}
	return out.Services, nil
}

func (c *Client) ListAddonServices(ctx context.Context) ([]entities.CatalogService, error) {
	if c != nil && c.mockMode {
		return nil, nil
	}
	var out struct {
		Success bool                      `json:"success"`
		Addons  []entities.CatalogService `json:"addons"`
	}
	if err := c.getJSON(ctx, "/api/addon-services", &out); err != nil {
		return nil, err
	}
	return out.Addons, nil
}

func (c *Client) post(ctx context.Context, path string, payload any) (json.RawMessage, error) {
	b, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(b))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, &APIError{StatusCode: resp.StatusCode, Message: extractMessage(body)}
	}
	return body, nil
}

func (c *Client) getJSON(ctx context.Context, path string, out any) error {
	if c == nil || c.httpClient == nil {
		return ErrPlatformAPINotConfigured
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return &APIError{StatusCode: resp.StatusCode, Message: extractMessage(body)}
	}
	return json.Unmarshal(body, out)
}

// extractMessage pulls the server-provided error text out of a failure body.
// Falls back to the raw body, then to a generic message.
func extractMessage(body []byte) string {
	var envelope struct {
		Message string `json:"message"`
		Error   string `json:"error"`
	}
	if err := json.Unmarshal(body, &envelope); err == nil {
		if envelope.Message != "" {
			return envelope.Message
		}
		if envelope.Error != "" {
			return envelope.Error
		}
	}
	if s := strings.TrimSpace(string(body)); s != "" {
		return s
	}
	return "request failed"
}

func mockCatalog() []entities.CatalogService {
	return []entities.CatalogService{
		{ID: "svc-basic-wash", Name: "Basic Wash", PriceRange: "$30-$40"},
		{ID: "svc-deep-clean", Name: "Deep Clean", PriceRange: "$80-$120"},
		{ID: "svc-consult", Name: "On-site Consultation", PriceRange: "Varies"},
	}
}

func isPlatformAPIMockEnabled() bool {
	v := strings.ToLower(strings.TrimSpace(os.Getenv("PLATFORM_API_MOCK")))
	switch v {
	case "1", "true", "yes", "on", "mock":
		return true
	}
	return false
}
