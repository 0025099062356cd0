package contactform

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"portfolio-backend/internal/domain"
	"portfolio-backend/pkg/validation"
)

// DefaultTimeout bounds one round trip of HTTPSubmitter.
const DefaultTimeout = 10 * time.Second

const maxResponseBytes = 64 << 10

// SubmitResponse is the JSON body returned by the contact endpoint.
type SubmitResponse struct {
	Success   bool                   `json:"success"`
	Message   string                 `json:"message,omitempty"`
	Error     string                 `json:"error,omitempty"`
	Details   []validation.Violation `json:"details,omitempty"`
	RequestID string                 `json:"request_id,omitempty"`
}

// Submitter sends a locally valid submission to the endpoint.
type Submitter interface {
	Submit(ctx context.Context, data domain.ContactSubmission) (*SubmitResponse, error)
}

// ResponseError is a non-success answer from the endpoint.
type ResponseError struct {
	StatusCode int
	Message    string
}

func (e *ResponseError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("contactform: endpoint returned %d", e.StatusCode)
	}
	return fmt.Sprintf("contactform: endpoint returned %d: %s", e.StatusCode, e.Message)
}

// HTTPSubmitter posts submissions as JSON.
type HTTPSubmitter struct {
	endpoint string
	client   *http.Client
}

// NewHTTPSubmitter targets endpoint, e.g. "https://example.com/api/contact".
// A non-positive timeout uses DefaultTimeout.
func NewHTTPSubmitter(endpoint string, timeout time.Duration) *HTTPSubmitter {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &HTTPSubmitter{
		endpoint: endpoint,
		client:   &http.Client{Timeout: timeout},
	}
}

func (s *HTTPSubmitter) Submit(ctx context.Context, data domain.ContactSubmission) (*SubmitResponse, error) {
	payload, err := json.Marshal(data)
	if err != nil {
		return nil, fmt.Errorf("contactform: encode request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.endpoint, bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("contactform: build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	res, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("contactform: send request: %w", err)
	}
	defer res.Body.Close()

	var body SubmitResponse
	decodeErr := json.NewDecoder(io.LimitReader(res.Body, maxResponseBytes)).Decode(&body)

	if res.StatusCode < 200 || res.StatusCode > 299 {
		return nil, &ResponseError{StatusCode: res.StatusCode, Message: body.Error}
	}
	if decodeErr != nil {
		return nil, fmt.Errorf("contactform: decode response: %w", decodeErr)
	}
	if !body.Success {
		return nil, &ResponseError{StatusCode: res.StatusCode, Message: body.Error}
	}
	return &body, nil
}
