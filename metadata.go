package aiguard

import (
	"os/user"

	"dario.cat/mergo"
)

// DefaultAIDRMetadata returns a fresh copy of the default AIDR event metadata
// record. The actor_name entry of extra_info is the current OS username.
func DefaultAIDRMetadata() map[string]any {
	return map[string]any{
		"event_type":    "input",
		"app_id":        "AIG-lab",
		"actor_id":      "test tool",
		"llm_provider":  "test",
		"model":         "GPT-6-super",
		"model_version": "6s",
		"source_ip":     "74.244.51.54",
		"extra_info": map[string]any{
			"actor_name": currentUsername(),
			"app_name":   "AIGuard-lab",
		},
	}
}

func currentUsername() string {
	u, err := user.Current()
	if err != nil {
		return "unknown"
	}
	return u.Username
}

// MergeAIDRMetadata merges the default AIDR metadata into payload and returns
// it. Overrides replace the defaults key by key, except extra_info, whose
// sub-keys are merged into the default extra_info rather than replacing it
// wholesale. Keys already present in payload are never overwritten.
//
// The payload map is mutated in place; the defaults are copied fresh on every
// call.
func MergeAIDRMetadata(payload, overrides map[string]any) map[string]any {
	if payload == nil {
		payload = make(map[string]any)
	}

	metadata := DefaultAIDRMetadata()
	if len(overrides) > 0 {
		// mergo merges nested maps recursively, which is exactly the
		// extra_info contract: override sub-keys land in the default
		// extra_info instead of replacing the whole map.
		_ = mergo.Merge(&metadata, overrides, mergo.WithOverride)
	}

	// Presence check, not emptiness: a key the caller set to a zero value
	// still wins over the default.
	for key, value := range metadata {
		if _, ok := payload[key]; !ok {
			payload[key] = value
		}
	}
	return payload
}
