package main

import "testing"

func TestResolveModel(t *testing.T) {
	cases := []struct {
		provider string
		model    string
		want     string
	}{
		{"openai", "", "text-embedding-3-small"},
		{"google", "", "text-embedding-004"},
		{"fastembed", "", "all-MiniLM-L6-v2"},
		{"", "", "all-MiniLM-L6-v2"},
		{"google", "text-embedding-005", "text-embedding-005"},
		{"openai", "text-embedding-3-large", "text-embedding-3-large"},
	}

	for _, tc := range cases {
		if got := resolveModel(tc.provider, tc.model); got != tc.want {
			t.Fatalf("resolveModel(%q, %q) = %q, want %q", tc.provider, tc.model, got, tc.want)
		}
	}
}
