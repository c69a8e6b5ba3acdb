package proxyown

import "testing"

func TestCanonicalizeHolder(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"The Vanguard Group, Inc.", "Vanguard Group"},
		{"The  Vanguard   Group", "Vanguard Group"},
		{"BlackRock, Inc.", "BlackRock"},
		{"BlackRock Inc", "BlackRock"},
		{"State Street Corporation", "State Street"},
		{"Fidelity Management & Research Company", "Fidelity"},
		{"FIDELITY", "Fidelity"},
		{"T. Rowe Price Associates, Inc.", "T. Rowe Price"},
		{"T Rowe Price Group", "T. Rowe Price"},
		{"Berkshire Hathaway Inc.", "Berkshire Hathaway"},
		// Unmatched names pass through cleaned but unchanged
		{"Dodge & Cox", "Dodge & Cox"},
		{"  Geode   Capital Management ", "Geode Capital Management"},
	}
	for _, tt := range tests {
		if got := CanonicalizeHolder(tt.in); got != tt.want {
			t.Errorf("CanonicalizeHolder(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestCanonicalizeHolder_Idempotent(t *testing.T) {
	inputs := []string{
		"The Vanguard Group, Inc.",
		"BlackRock, Inc.",
		"State Street Corp",
		"Fidelity Management",
		"T. Rowe Price",
		"Berkshire Hathaway Inc.",
		"Dodge & Cox",
		"",
		"X",
	}
	for _, in := range inputs {
		once := CanonicalizeHolder(in)
		twice := CanonicalizeHolder(once)
		if once != twice {
			t.Errorf("CanonicalizeHolder not idempotent for %q: %q -> %q", in, once, twice)
		}
	}
}
