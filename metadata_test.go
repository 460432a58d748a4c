package aiguard

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultAIDRMetadataIsFreshCopy(t *testing.T) {
	first := DefaultAIDRMetadata()
	first["app_id"] = "mutated"
	firstExtra := first["extra_info"].(map[string]any)
	firstExtra["app_name"] = "mutated"

	second := DefaultAIDRMetadata()
	assert.Equal(t, "AIG-lab", second["app_id"])
	assert.Equal(t, "AIGuard-lab", second["extra_info"].(map[string]any)["app_name"])
}

func TestMergeAIDRMetadata(t *testing.T) {
	tests := []struct {
		name      string
		payload   map[string]any
		overrides map[string]any
		check     func(t *testing.T, got map[string]any)
	}{
		{
			name:    "defaults fill missing keys",
			payload: map[string]any{"text": "hi"},
			check: func(t *testing.T, got map[string]any) {
				assert.Equal(t, "hi", got["text"])
				assert.Equal(t, "input", got["event_type"])
				assert.Equal(t, "AIG-lab", got["app_id"])
				assert.Equal(t, "GPT-6-super", got["model"])
			},
		},
		{
			name: "existing payload keys are never overwritten",
			payload: map[string]any{
				"model":      "caller-model",
				"event_type": "output",
			},
			overrides: map[string]any{"model": "override-model"},
			check: func(t *testing.T, got map[string]any) {
				assert.Equal(t, "caller-model", got["model"])
				assert.Equal(t, "output", got["event_type"])
			},
		},
		{
			name:      "override replaces a default",
			payload:   map[string]any{},
			overrides: map[string]any{"llm_provider": "openai"},
			check: func(t *testing.T, got map[string]any) {
				assert.Equal(t, "openai", got["llm_provider"])
			},
		},
		{
			name:    "extra_info merges key by key",
			payload: map[string]any{},
			overrides: map[string]any{
				"extra_info": map[string]any{"actor_name": "ci-bot", "run_id": "42"},
			},
			check: func(t *testing.T, got map[string]any) {
				extra, ok := got["extra_info"].(map[string]any)
				require.True(t, ok)
				assert.Equal(t, "ci-bot", extra["actor_name"])
				assert.Equal(t, "42", extra["run_id"])
				assert.Equal(t, "AIGuard-lab", extra["app_name"], "untouched extra_info defaults remain")
			},
		},
		{
			name:    "nil payload",
			payload: nil,
			check: func(t *testing.T, got map[string]any) {
				assert.Equal(t, "input", got["event_type"])
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := MergeAIDRMetadata(tt.payload, tt.overrides)
			tt.check(t, got)
		})
	}
}

func TestMergeAIDRMetadataDoesNotMutateDefaults(t *testing.T) {
	MergeAIDRMetadata(map[string]any{}, map[string]any{
		"extra_info": map[string]any{"app_name": "scribbled"},
	})

	fresh := DefaultAIDRMetadata()
	assert.Equal(t, "AIGuard-lab", fresh["extra_info"].(map[string]any)["app_name"])
}

func TestMergeAIDRMetadataZeroValuePayloadKeyWins(t *testing.T) {
	got := MergeAIDRMetadata(map[string]any{"model": ""}, nil)
	assert.Equal(t, "", got["model"], "presence decides, not emptiness")
}
