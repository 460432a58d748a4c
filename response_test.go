package aiguard

import (
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResponseStatus(t *testing.T) {
	tests := []struct {
		name string
		body string
		want RequestStatus
	}{
		{
			name: "string status",
			body: `{"status":"Accepted"}`,
			want: StatusAccepted,
		},
		{
			name: "success status",
			body: `{"status":"Success","result":{}}`,
			want: StatusSuccess,
		},
		{
			name: "numeric status from a synthesized body",
			body: `{"status":408,"message":"Request Timeout"}`,
			want: RequestStatus("408"),
		},
		{
			name: "missing status field",
			body: `{"message":"nothing here"}`,
			want: StatusUnknown,
		},
		{
			name: "not JSON",
			body: `<html>gateway error</html>`,
			want: StatusUnknown,
		},
		{
			name: "empty body",
			body: ``,
			want: StatusUnknown,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := &Response{StatusCode: http.StatusOK, Body: []byte(tt.body)}
			assert.Equal(t, tt.want, r.Status())
		})
	}
}

func TestRequestStatusTerminal(t *testing.T) {
	assert.False(t, StatusAccepted.Terminal())
	assert.True(t, StatusSuccess.Terminal())
	assert.True(t, RequestStatus("Failed").Terminal())
	assert.True(t, StatusUnknown.Terminal())
}

func TestSyntheticResponseBody(t *testing.T) {
	r := syntheticResponse(http.StatusRequestTimeout, "Request Timeout", "rid-1")

	assert.Equal(t, http.StatusRequestTimeout, r.StatusCode)
	assert.Equal(t, "rid-1", r.RequestID)

	var body errorBody
	require.NoError(t, r.JSON(&body))
	assert.Equal(t, errorBody{Status: 408, Message: "Request Timeout"}, body)
}

func TestResponseErr(t *testing.T) {
	ok := &Response{StatusCode: http.StatusOK, Body: []byte(`{}`)}
	assert.NoError(t, ok.Err())
	assert.False(t, ok.IsError())

	failed := syntheticResponse(http.StatusBadRequest, "Bad Request: boom", "rid-2")
	err := failed.Err()
	require.Error(t, err)
	assert.True(t, failed.IsError())
	assert.ErrorIs(t, err, ErrAPIFailure)

	var apiErr *APIError
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, http.StatusBadRequest, apiErr.StatusCode)
	assert.Equal(t, "Bad Request: boom", apiErr.Message)
	assert.Equal(t, "rid-2", apiErr.RequestID)
}

func TestAPIErrorMessage(t *testing.T) {
	withMessage := &APIError{StatusCode: 408, Message: "Request Timeout"}
	assert.Equal(t, "pangea API error (status 408): Request Timeout", withMessage.Error())

	bare := &APIError{StatusCode: 502}
	assert.Equal(t, "pangea API error (status 502)", bare.Error())
}

func TestResponseAsyncRequestID(t *testing.T) {
	r := &Response{Body: []byte(`{"status":"Accepted","request_id":"prq_abc"}`)}
	assert.Equal(t, "prq_abc", r.AsyncRequestID())

	empty := &Response{Body: []byte(`{}`)}
	assert.Equal(t, "", empty.AsyncRequestID())
}

func TestResponseMap(t *testing.T) {
	r := &Response{Body: []byte(`{"status":"Success","summary":"ok"}`)}
	m, err := r.Map()
	require.NoError(t, err)
	assert.Equal(t, "ok", m["summary"])

	bad := &Response{Body: []byte(`not json`)}
	_, err = bad.Map()
	assert.Error(t, err)
}
