package shutterstock

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
)

const maxErrorBodyBytes = 4096

// normalize consumes one HTTP response. It returns the body for 2xx responses
// and a typed error for everything else.
func normalize(resp *http.Response) ([]byte, error) {
	defer resp.Body.Close()

	switch {
	case resp.StatusCode >= 200 && resp.StatusCode < 300:
		body, err := io.ReadAll(resp.Body)
		if err != nil {
			return nil, &DecodeError{HTTPStatus: resp.StatusCode, Err: fmt.Errorf("read body: %w", err)}
		}
		return body, nil

	case resp.StatusCode == http.StatusNotFound:
		_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, maxErrorBodyBytes))
		return nil, &APIError{Message: notFoundMessage, HTTPStatus: http.StatusNotFound}

	default:
		body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBodyBytes))
		return nil, newAPIError(resp.StatusCode, body)
	}
}

// newAPIError builds an APIError, preferring the message the API put in the body.
func newAPIError(status int, body []byte) *APIError {
	apiErr := &APIError{HTTPStatus: status}

	var payload struct {
		Message string        `json:"message"`
		Errors  []ErrorDetail `json:"errors"`
	}
	if err := json.Unmarshal(body, &payload); err == nil {
		apiErr.Message = payload.Message
		apiErr.Errors = payload.Errors
		if apiErr.Message == "" && len(payload.Errors) > 0 {
			apiErr.Message = payload.Errors[0].Message
		}
	}

	if apiErr.Message == "" {
		apiErr.Message = strings.ToLower(http.StatusText(status))
	}
	if apiErr.Message == "" {
		apiErr.Message = "unexpected status"
	}
	return apiErr
}

// decodeJSON unmarshals a 2xx body into out.
func decodeJSON(status int, body []byte, out any) error {
	if err := json.Unmarshal(body, out); err != nil {
		return &DecodeError{HTTPStatus: status, Err: err}
	}
	return nil
}

// checkRecord verifies that a single record carries every required key.
func checkRecord(status int, raw json.RawMessage, required []string) error {
	if err := missingKey(raw, required); err != nil {
		return &DecodeError{HTTPStatus: status, Err: err}
	}
	return nil
}

// searchKeys are the envelope keys every search body carries.
var searchKeys = []string{"page", "per_page", "total_count", "data"}

// checkData verifies a list or search body: it must be a JSON object holding
// every key in envelopeKeys, and each record under "data" must carry recordKeys.
// An object without "data" is accepted when envelopeKeys does not require it.
func checkData(status int, body []byte, envelopeKeys, recordKeys []string) error {
	var envelope map[string]json.RawMessage
	if err := decodeJSON(status, body, &envelope); err != nil {
		return err
	}
	if envelope == nil {
		return &DecodeError{HTTPStatus: status, Err: errors.New("body is null, want an object")}
	}
	for _, k := range envelopeKeys {
		if _, ok := envelope[k]; !ok {
			return &DecodeError{HTTPStatus: status, Err: fmt.Errorf("body missing required key %q", k)}
		}
	}

	var records []json.RawMessage
	if raw, ok := envelope["data"]; ok {
		if err := decodeJSON(status, raw, &records); err != nil {
			return err
		}
	}
	for i, rec := range records {
		if err := missingKey(rec, recordKeys); err != nil {
			return &DecodeError{HTTPStatus: status, Err: fmt.Errorf("data[%d]: %w", i, err)}
		}
	}
	return nil
}

func missingKey(raw json.RawMessage, required []string) error {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(raw, &fields); err != nil {
		return err
	}
	for _, k := range required {
		if _, ok := fields[k]; !ok {
			return fmt.Errorf("record missing required key %q", k)
		}
	}
	return nil
}
