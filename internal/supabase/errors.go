package supabase

import (
	"encoding/json"
	"fmt"
)

// APIError is a non-2xx backend response. Message holds the backend's
// own wording so auth endpoints can surface it verbatim.
type APIError struct {
	Status  int
	Code    string
	Message string
}

func (e *APIError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("supabase: %s (status %d)", e.Message, e.Status)
	}
	return fmt.Sprintf("supabase: status %d", e.Status)
}

// errorBody covers the shapes GoTrue and PostgREST use for errors.
type errorBody struct {
	Code             string `json:"code"`
	Message          string `json:"message"`
	Msg              string `json:"msg"`
	ErrorField       string `json:"error"`
	ErrorDescription string `json:"error_description"`
}

func decodeAPIError(status int, data []byte) error {
	apiErr := &APIError{Status: status}
	var body errorBody
	if err := json.Unmarshal(data, &body); err == nil {
		apiErr.Code = body.Code
		for _, msg := range []string{body.ErrorDescription, body.Msg, body.Message, body.ErrorField} {
			if msg != "" {
				apiErr.Message = msg
				break
			}
		}
	}
	return apiErr
}
