package aiguard

import (
	"context"
	"errors"
	"time"

	"github.com/cenkalti/backoff/v4"
)

// errStillPending signals the retry loop that the request is still queued.
var errStillPending = errors.New("request still pending")

// terminalStatusError carries a terminal non-success status out of the loop.
type terminalStatusError struct {
	status RequestStatus
}

func (e *terminalStatusError) Error() string {
	return "terminal request status: " + e.status.String()
}

// PollOption overrides polling parameters for a single Poll call.
type PollOption func(*pollConfig)

type pollConfig struct {
	interval    time.Duration
	maxAttempts int
}

// PollInterval overrides the client's sleep between attempts for this call.
func PollInterval(interval time.Duration) PollOption {
	return func(pc *pollConfig) {
		pc.interval = interval
	}
}

// PollMaxAttempts overrides the client's attempt budget for this call.
func PollMaxAttempts(attempts int) PollOption {
	return func(pc *pollConfig) {
		pc.maxAttempts = attempts
	}
}

// Poll repeatedly fetches the status of an asynchronous request until it
// reaches a terminal status or the attempt budget runs out, sleeping the poll
// interval between attempts.
//
// It returns the last observed status and the last response received:
//
//   - StatusSuccess: the request completed.
//   - StatusAccepted: the attempt budget ran out while the request was still
//     queued. This is not an error; callers may poll again.
//   - anything else: the request reached a terminal failure status. The
//     status set is open, so unknown statuses land here too.
//
// The error return is non-nil only when ctx is canceled or its deadline
// expires before polling finishes.
func (c *Client) Poll(
	ctx context.Context,
	requestID string,
	opts ...PollOption,
) (RequestStatus, *Response, error) {
	pc := &pollConfig{
		interval:    c.config.pollInterval,
		maxAttempts: c.config.maxPollAttempts,
	}
	for _, opt := range opts {
		opt(pc)
	}
	if pc.maxAttempts < 1 {
		pc.maxAttempts = 1
	}

	var (
		status  = StatusAccepted
		last    *Response
		attempt int
	)

	bo := backoff.WithContext(
		backoff.WithMaxRetries(backoff.NewConstantBackOff(pc.interval), uint64(pc.maxAttempts-1)),
		ctx,
	)

	operation := func() error {
		attempt++
		resp := c.GetRequest(ctx, requestID)
		last = resp
		status = resp.Status()

		c.logger.Debug().
			Int("attempt", attempt).
			Str("request_id", requestID).
			Str("status", status.String()).
			Msg("polling request status")

		switch status {
		case StatusAccepted:
			return errStillPending
		case StatusSuccess:
			return nil
		default:
			return backoff.Permanent(&terminalStatusError{status: status})
		}
	}

	err := backoff.Retry(operation, bo)
	switch {
	case err == nil:
		return status, last, nil
	case errors.Is(err, errStillPending):
		// Attempt budget exhausted while the request was still queued.
		return status, last, nil
	default:
		var terminal *terminalStatusError
		if errors.As(err, &terminal) {
			return terminal.status, last, nil
		}
		// Context cancellation or deadline.
		return status, last, err
	}
}
