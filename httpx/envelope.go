package httpx

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
)

// Envelope is the fixed response wrapper of the survey service:
// {status, data, message}.
type Envelope struct {
	Status  int             `json:"status"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

// DecodeEnvelope reads a service response, classifying non-2xx statuses as
// StatusError and unwrapping the data payload into out (out may be nil when
// the caller only needs the acknowledgement).
func DecodeEnvelope(resp *http.Response, out any) error {
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("read response: %w", err)
	}

	var env Envelope
	if err := json.Unmarshal(body, &env); err != nil {
		if resp.StatusCode < 200 || resp.StatusCode > 299 {
			return &StatusError{Status: resp.StatusCode, Message: http.StatusText(resp.StatusCode)}
		}
		return fmt.Errorf("decode response: %w", err)
	}
	if env.Status == 0 {
		env.Status = resp.StatusCode
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return &StatusError{Status: resp.StatusCode, Message: env.Message}
	}
	if env.Status < 200 || env.Status > 299 {
		return &StatusError{Status: env.Status, Message: env.Message}
	}

	if out != nil && len(env.Data) > 0 && string(env.Data) != "null" {
		if err := json.Unmarshal(env.Data, out); err != nil {
			return fmt.Errorf("decode response data: %w", err)
		}
	}
	return nil
}
