package bookingform

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"
)

// envelope is the single documented response shape of the booking API.
// Anything that does not parse into it is treated as a rejection with a
// generic message rather than branching per call site.
type envelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Error   string          `json:"error"`
}

// HTTPSubmitter delivers payloads to POST {baseURL}/api/booking.
type HTTPSubmitter struct {
	baseURL    string
	httpClient *http.Client
}

// NewHTTPSubmitter builds a submitter for the given API base URL. The
// timeout bounds the whole request; there is no retry, since the backend is
// not idempotent.
func NewHTTPSubmitter(baseURL string, timeout time.Duration) *HTTPSubmitter {
	return &HTTPSubmitter{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
}

// Submit posts the payload and normalizes the response at the boundary:
// transport failures become *ConnectivityError, everything the backend
// refused becomes *RejectedError carrying the backend message.
func (s *HTTPSubmitter) Submit(ctx context.Context, payload Payload) (*Receipt, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, &RejectedError{Message: fmt.Sprintf("failed to encode booking: %v", err)}
	}

	url := s.baseURL + "/api/booking"
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return nil, &RejectedError{Message: fmt.Sprintf("failed to build request: %v", err)}
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return nil, &ConnectivityError{Err: err}
	}
	defer resp.Body.Close()

	var env envelope
	if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
		if resp.StatusCode >= 200 && resp.StatusCode < 300 {
			// 2xx with an unreadable body: booking state unknown, report
			// as rejected so the user does not silently resubmit.
			return nil, &RejectedError{Message: "unexpected response from booking service"}
		}
		return nil, &RejectedError{Message: fmt.Sprintf("booking service returned status %d", resp.StatusCode)}
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 || !env.Success {
		msg := strings.TrimSpace(env.Error)
		if msg == "" {
			msg = fmt.Sprintf("booking service returned status %d", resp.StatusCode)
		}
		return nil, &RejectedError{Message: msg}
	}

	var receipt Receipt
	if len(env.Data) > 0 {
		if err := json.Unmarshal(env.Data, &receipt); err != nil {
			return nil, &RejectedError{Message: "unexpected response from booking service"}
		}
	}
	return &receipt, nil
}
