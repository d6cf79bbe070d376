package config

import "testing"

func TestCanonicalizeEnvKey_UsesExistingCamelCaseKeys(t *testing.T) {
	existing := map[string]any{
		"dataset": map[string]any{
			"staticDir": "public",
		},
		"search": map[string]any{
			"defaultLimit": 20,
		},
		"feed": map[string]any{
			"apiBaseUrl": "",
			"fetchTimeout": "8s",
		},
	}

	tests := []struct {
		envKey string
		want   string
	}{
		{envKey: "DATASET_STATICDIR", want: "dataset.staticDir"},
		{envKey: "SEARCH_DEFAULTLIMIT", want: "search.defaultLimit"},
		{envKey: "FEED_APIBASEURL", want: "feed.apiBaseUrl"},
		{envKey: "FEED_FETCHTIMEOUT", want: "feed.fetchTimeout"},
		{envKey: "NEW_FEATURE_FLAG", want: "new.feature.flag"},
	}

	for _, tt := range tests {
		t.Run(tt.envKey, func(t *testing.T) {
			if got := canonicalizeEnvKey(tt.envKey, existing); got != tt.want {
				t.Fatalf("canonicalizeEnvKey(%q) = %q, want %q", tt.envKey, got, tt.want)
			}
		})
	}
}
