package aiguard

import (
	"encoding/json"
	"net/http"
	"strconv"
)

// Response is the result of a single API call. It represents either a genuine
// HTTP response or a response the transport synthesized for a failure that
// never reached the server, so callers inspect StatusCode and Body without
// caring which occurred.
type Response struct {
	// StatusCode is the HTTP status code, or a synthesized one (408 for a
	// timeout, 400 for any other request failure, 500 for a missing response).
	StatusCode int
	// Body is the raw JSON body.
	Body []byte
	// Header holds the response headers. Empty for synthesized responses.
	Header http.Header
	// RequestID is the X-Request-ID the client attached to the outgoing
	// request.
	RequestID string
}

// errorBody is the JSON shape of a synthesized failure response, matching the
// error bodies the API itself produces.
type errorBody struct {
	Status  int    `json:"status"`
	Message string `json:"message"`
}

// syntheticResponse builds a response-shaped value for a request that failed
// before producing a real HTTP response.
func syntheticResponse(statusCode int, message, requestID string) *Response {
	body, _ := json.Marshal(errorBody{Status: statusCode, Message: message})
	return &Response{
		StatusCode: statusCode,
		Body:       body,
		Header:     http.Header{},
		RequestID:  requestID,
	}
}

// JSON decodes the response body into v.
func (r *Response) JSON(v any) error {
	return json.Unmarshal(r.Body, v)
}

// Map decodes the response body into a generic map.
func (r *Response) Map() (map[string]any, error) {
	var m map[string]any
	if err := json.Unmarshal(r.Body, &m); err != nil {
		return nil, err
	}
	return m, nil
}

// Status extracts the "status" field from the response body. A numeric status
// (as carried by synthesized error bodies) is rendered in decimal; a missing
// or unreadable field yields StatusUnknown.
func (r *Response) Status() RequestStatus {
	var body struct {
		Status any `json:"status"`
	}
	if err := json.Unmarshal(r.Body, &body); err != nil {
		return StatusUnknown
	}
	switch s := body.Status.(type) {
	case string:
		return RequestStatus(s)
	case float64:
		return RequestStatus(strconv.Itoa(int(s)))
	default:
		return StatusUnknown
	}
}

// AsyncRequestID extracts the "request_id" field from the response body. The
// API includes it on 202 Accepted responses; it is the ID to pass to Poll.
func (r *Response) AsyncRequestID() string {
	var body struct {
		RequestID string `json:"request_id"`
	}
	if err := json.Unmarshal(r.Body, &body); err != nil {
		return ""
	}
	return body.RequestID
}

// IsError reports whether the response carries a non-2xx status code.
func (r *Response) IsError() bool {
	return r.StatusCode < 200 || r.StatusCode >= 300
}

// Err converts a failed response into an *APIError. It returns nil for 2xx
// responses.
func (r *Response) Err() error {
	if !r.IsError() {
		return nil
	}
	var body errorBody
	// Best effort; an unreadable body just leaves the message empty.
	_ = json.Unmarshal(r.Body, &body)
	return &APIError{
		StatusCode: r.StatusCode,
		Message:    body.Message,
		RequestID:  r.RequestID,
	}
}
