package bsncloud

import (
	"encoding/json"
	"fmt"
)

// Result is the normalized outcome of a dispatched API call: the decoded
// JSON response body, {"success": true} for a 204 No Content, or a
// structured error shape with "error" and "details" keys.
//
// The "error" value is the HTTP status code (int) for protocol failures
// and the string "request_failed" for transport failures. A Result is
// never partially decoded: a non-2xx response discards body parsing in
// favor of the error shape.
type Result map[string]any

// IsError reports whether the result carries the error shape rather than a
// decoded response body.
func (r Result) IsError() bool {
	_, ok := r["error"]
	return ok
}

// StatusCode returns the HTTP status code of a protocol failure. The
// second return is false for successful results and for transport failures,
// which have no status.
func (r Result) StatusCode() (int, bool) {
	code, ok := r["error"].(int)
	return code, ok
}

// Details returns the raw error details: the response body text for a
// protocol failure or the underlying error message for a transport failure.
func (r Result) Details() string {
	details, _ := r["details"].(string)
	return details
}

// Succeeded reports whether the result is the bare {"success": true} shape
// produced by a 204 No Content response.
func (r Result) Succeeded() bool {
	ok, _ := r["success"].(bool)
	return ok
}

// decodeResult parses a successful response body into a Result. JSON
// objects map directly; the Remote DWS occasionally returns a bare array,
// which is wrapped under the "value" key.
func decodeResult(body []byte) (Result, error) {
	var v any
	if err := json.Unmarshal(body, &v); err != nil {
		return nil, fmt.Errorf("failed to parse response: %w (body: %s)", err, truncatePreview(body))
	}
	switch t := v.(type) {
	case map[string]any:
		return Result(t), nil
	default:
		return Result{"value": t}, nil
	}
}
