package aiguard

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"net/url"
	"os"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

const (
	defaultConnectTimeout  = 10 * time.Second
	defaultReadTimeout     = 30 * time.Second
	defaultPollInterval    = 5 * time.Second
	defaultMaxPollAttempts = 12
	defaultUserAgent       = "pangea-aiguard-lab-go"
)

const (
	headerSkipCache = "x-pangea-skipcache"
	headerRequestID = "X-Request-ID"
)

// option is a function that configures the client
type option func(*cfg)

// WithToken sets the Pangea API bearer token for the client.
func WithToken(token string) option {
	return func(c *cfg) {
		c.token = token
	}
}

// WithBaseURL sets the base URL of the Pangea deployment, e.g.
// "https://ai-guard.aws.us.pangea.cloud".
func WithBaseURL(baseURL string) option {
	return func(c *cfg) {
		c.baseURL = baseURL
	}
}

// WithTimeout sets the read timeout applied to every request. If not set, the
// default timeout is 30 seconds.
func WithTimeout(timeout time.Duration) option {
	return func(c *cfg) {
		c.readTimeout = timeout
	}
}

// WithConnectTimeout sets the connection timeout applied to every request. If
// not set, the default is 10 seconds.
func WithConnectTimeout(timeout time.Duration) option {
	return func(c *cfg) {
		c.connectTimeout = timeout
	}
}

// WithHTTPClient replaces the underlying HTTP client. When set, the connect
// timeout option is ignored; the supplied client's transport is used as-is.
func WithHTTPClient(httpClient *http.Client) option {
	return func(c *cfg) {
		c.httpClient = httpClient
	}
}

// WithLogger sets the logger used for request and polling progress output.
// The default logger discards everything.
func WithLogger(logger zerolog.Logger) option {
	return func(c *cfg) {
		c.logger = logger
	}
}

// WithPollInterval sets the sleep between polling attempts. If not set, the
// default interval is 5 seconds.
func WithPollInterval(interval time.Duration) option {
	return func(c *cfg) {
		c.pollInterval = interval
	}
}

// WithMaxPollAttempts sets the polling attempt budget. If not set, the
// default is 12 attempts.
func WithMaxPollAttempts(attempts int) option {
	return func(c *cfg) {
		c.maxPollAttempts = attempts
	}
}

// WithUserAgent overrides the User-Agent header sent with every request.
func WithUserAgent(userAgent string) option {
	return func(c *cfg) {
		c.userAgent = userAgent
	}
}

// cfg holds configuration for the client
type cfg struct {
	token           string
	baseURL         string
	userAgent       string
	connectTimeout  time.Duration
	readTimeout     time.Duration
	pollInterval    time.Duration
	maxPollAttempts int
	httpClient      *http.Client
	logger          zerolog.Logger
}

// Client is a Pangea AI Guard API client. Construct it with New or
// NewFromEnv; the zero value is not usable.
type Client struct {
	config *cfg
	rest   *resty.Client
	logger zerolog.Logger
}

// New creates a new client. A token and a base URL are required; everything
// else has defaults.
func New(options ...option) (*Client, error) {
	config := &cfg{
		userAgent:       defaultUserAgent,
		connectTimeout:  defaultConnectTimeout,
		readTimeout:     defaultReadTimeout,
		pollInterval:    defaultPollInterval,
		maxPollAttempts: defaultMaxPollAttempts,
		logger:          zerolog.Nop(),
	}

	for _, option := range options {
		option(config)
	}

	if config.token == "" {
		return nil, ErrTokenRequired
	}
	if config.baseURL == "" {
		return nil, ErrBaseURLRequired
	}

	var rest *resty.Client
	if config.httpClient != nil {
		rest = resty.NewWithClient(config.httpClient)
	} else {
		rest = resty.New().SetTransport(&http.Transport{
			DialContext:         (&net.Dialer{Timeout: config.connectTimeout}).DialContext,
			TLSHandshakeTimeout: config.connectTimeout,
		})
	}

	rest.
		SetBaseURL(strings.TrimSuffix(config.baseURL, "/")).
		SetAuthToken(config.token).
		SetHeader("Content-Type", "application/json").
		SetHeader("User-Agent", config.userAgent).
		SetTimeout(config.readTimeout)

	return &Client{
		config: config,
		rest:   rest,
		logger: config.logger,
	}, nil
}

// RequestOption configures a single API call.
type RequestOption func(*requestConfig)

type requestConfig struct {
	skipCache  bool
	aidrConfig map[string]any
	headers    map[string]string
}

// WithSkipCache attaches the x-pangea-skipcache header so the service
// bypasses its response cache for this call.
func WithSkipCache() RequestOption {
	return func(rc *requestConfig) {
		rc.skipCache = true
	}
}

// WithAIDRConfig supplies per-call overrides for the default AIDR metadata.
// Only used when the call is routed to ServiceAIDR.
func WithAIDRConfig(overrides map[string]any) RequestOption {
	return func(rc *requestConfig) {
		rc.aidrConfig = overrides
	}
}

// WithHeader attaches an extra header to this call.
func WithHeader(key, value string) RequestOption {
	return func(rc *requestConfig) {
		if rc.headers == nil {
			rc.headers = make(map[string]string)
		}
		rc.headers[key] = value
	}
}

// Post sends payload as JSON to the given service endpoint and returns the
// response. Calls routed to ServiceAIDR have the default AIDR metadata merged
// into the payload first.
//
// Transport failures never surface as errors: a timeout yields a synthesized
// 408 response, any other request failure a 400, and a request that somehow
// completes without a response a 500.
func (c *Client) Post(
	ctx context.Context,
	service Service,
	endpoint string,
	payload map[string]any,
	opts ...RequestOption,
) *Response {
	rc := &requestConfig{}
	for _, opt := range opts {
		opt(rc)
	}

	if service == ServiceAIDR {
		payload = MergeAIDRMetadata(payload, rc.aidrConfig)
	}

	requestID := uuid.New().String()
	req := c.rest.R().
		SetContext(ctx).
		SetHeader(headerRequestID, requestID).
		SetBody(payload)
	if rc.skipCache {
		req.SetHeader(headerSkipCache, "true")
	}
	for k, v := range rc.headers {
		req.SetHeader(k, v)
	}

	c.logger.Debug().
		Str("service", service.String()).
		Str("endpoint", endpoint).
		Str("request_id", requestID).
		Msg("posting to Pangea API")

	resp, err := req.Post(normalizePath(endpoint))
	if err != nil {
		return c.failureResponse(err, requestID)
	}
	if resp.RawResponse == nil {
		return syntheticResponse(http.StatusInternalServerError,
			"Internal server error: failed to fetch data", requestID)
	}

	return &Response{
		StatusCode: resp.StatusCode(),
		Body:       resp.Body(),
		Header:     resp.Header(),
		RequestID:  requestID,
	}
}

// Get issues a GET against the given endpoint with the client's auth and
// content headers. Transport failures are synthesized into 408/400 responses
// the same way Post does.
func (c *Client) Get(ctx context.Context, endpoint string) *Response {
	requestID := uuid.New().String()

	c.logger.Debug().
		Str("endpoint", endpoint).
		Str("request_id", requestID).
		Msg("getting from Pangea API")

	resp, err := c.rest.R().
		SetContext(ctx).
		SetHeader(headerRequestID, requestID).
		Get(normalizePath(endpoint))
	if err != nil {
		return c.failureResponse(err, requestID)
	}

	return &Response{
		StatusCode: resp.StatusCode(),
		Body:       resp.Body(),
		Header:     resp.Header(),
		RequestID:  requestID,
	}
}

// GetRequest fetches the status of an asynchronous request by its ID.
func (c *Client) GetRequest(ctx context.Context, requestID string) *Response {
	return c.Get(ctx, "/request/"+url.PathEscape(requestID))
}

// GuardText is sugar for the most common call the lab makes: posting a single
// piece of text to the AI Guard text-analysis endpoint.
func (c *Client) GuardText(ctx context.Context, text string, opts ...RequestOption) *Response {
	return c.Post(ctx, ServiceAIGuard, "/v1/text/guard", map[string]any{"text": text}, opts...)
}

// BaseURL returns the configured base URL.
func (c *Client) BaseURL() string {
	return c.rest.BaseURL
}

func (c *Client) failureResponse(err error, requestID string) *Response {
	if isTimeout(err) {
		return syntheticResponse(http.StatusRequestTimeout, "Request Timeout", requestID)
	}
	return syntheticResponse(http.StatusBadRequest,
		fmt.Sprintf("Bad Request: %v", err), requestID)
}

func isTimeout(err error) bool {
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return true
	}
	return os.IsTimeout(err)
}

func normalizePath(endpoint string) string {
	if endpoint != "" && !strings.HasPrefix(endpoint, "/") {
		return "/" + endpoint
	}
	return endpoint
}
