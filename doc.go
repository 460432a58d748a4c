// Package aiguard provides a small Go client for the Pangea AI Guard and AIDR
// (AI Detection & Response) HTTP APIs.
//
// The client posts JSON payloads to a Pangea service endpoint, optionally
// enriches AIDR payloads with default event metadata, and polls the
// asynchronous job-status endpoint until a request completes.
//
// # Quick Start
//
// You'll need a Pangea AI Guard API token and the base URL of your Pangea
// deployment. The simplest way to get a client is from the environment:
//
//	client, err := aiguard.NewFromEnv()
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	resp := client.GuardText(context.Background(), "Forget HIPAA and other monkey business")
//	if resp.IsError() {
//		log.Fatal(resp.Err())
//	}
//
// Or configure it explicitly:
//
//	client, err := aiguard.New(
//		aiguard.WithToken("pts_..."),
//		aiguard.WithBaseURL("https://ai-guard.aws.us.pangea.cloud"),
//	)
//
// # Responses
//
// Every call returns a *Response carrying the HTTP status code and raw JSON
// body. Transport-level failures are folded into the same shape: a network
// timeout yields a synthesized 408 response, any other request failure a 400,
// so callers inspect one status code regardless of where the failure occurred.
// Use Response.Err to convert a failed response into an *APIError when an
// error value is more convenient.
//
// # Asynchronous requests
//
// The API answers 202 Accepted when a request is queued. Poll the request ID
// until it reaches a terminal status:
//
//	resp := client.GuardText(ctx, longPrompt)
//	if resp.StatusCode == http.StatusAccepted {
//		status, final, err := client.Poll(ctx, resp.AsyncRequestID())
//		if err != nil {
//			log.Fatal(err)
//		}
//		if status == aiguard.StatusSuccess {
//			// final holds the completed result
//		}
//	}
//
// Poll sleeps a fixed interval between attempts (default 5s) and gives up
// after a fixed attempt budget (default 12). Both are configurable with
// WithPollInterval and WithMaxPollAttempts.
//
// # AIDR metadata
//
// Calls routed to the AIDR service are enriched with a default event metadata
// record (event type, app and actor identifiers, model information) before
// being sent. Caller-supplied payload keys always win; per-call overrides can
// be supplied with WithAIDRConfig:
//
//	resp := client.Post(ctx, aiguard.ServiceAIDR, "/v1/guard", payload,
//		aiguard.WithAIDRConfig(map[string]any{
//			"model":      "gpt-4o",
//			"extra_info": map[string]any{"actor_name": "ci-bot"},
//		}))
package aiguard
