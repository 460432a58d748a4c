package main

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/rs/zerolog"

	aiguard "github.com/pangeacyber/pangea-aiguard-lab"
)

func main() {
	logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
		With().Timestamp().Logger()

	// PANGEA_AI_GUARD_TOKEN and PANGEA_BASE_URL are required.
	client, err := aiguard.NewFromEnv(aiguard.WithLogger(logger))
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to create client")
	}

	text := "Hello, this is a test prompt for AI Guard."
	if len(os.Args) > 1 {
		text = os.Args[1]
	}

	fmt.Printf("Testing the AI Guard API at %s...\n", client.BaseURL())
	fmt.Printf("Prompt: %q\n", text)

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	resp := client.GuardText(ctx, text, aiguard.WithSkipCache())

	if resp.StatusCode == http.StatusAccepted {
		requestID := resp.AsyncRequestID()
		fmt.Printf("Request %s accepted, polling for the result...\n", requestID)

		status, final, err := client.Poll(ctx, requestID)
		if err != nil {
			logger.Fatal().Err(err).Msg("polling interrupted")
		}
		if status != aiguard.StatusSuccess {
			logger.Fatal().Str("status", status.String()).Msg("request did not complete")
		}
		resp = final
	}

	if resp.IsError() {
		logger.Fatal().Err(resp.Err()).Msg("request failed")
	}

	body, err := resp.Map()
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to decode response body")
	}

	pretty, _ := json.MarshalIndent(body, "", "  ")
	fmt.Printf("\nResult:\n%s\n", pretty)
}
