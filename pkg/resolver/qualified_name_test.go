package resolver

import "testing"

func TestIsFeatureChainDetectsDotOutsideQuotes(t *testing.T) {
	cases := map[string]bool{
		"vehicle.engine.pistons": true,
		"A::B":                   false,
		"A::B.c":                 false,
		"'a.b'":                  false,
		"plain":                  false,
	}
	for input, want := range cases {
		if got := isFeatureChain(input); got != want {
			t.Errorf("isFeatureChain(%q) = %v, want %v", input, got, want)
		}
	}
}

func TestSplitFeatureChainSegmentsRespectsQuotes(t *testing.T) {
	got := splitFeatureChainSegments("vehicle.'a.b'.pistons")
	want := []string{"vehicle", "'a.b'", "pistons"}
	if len(got) != len(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("segment %d: got %q, want %q", i, got[i], want[i])
		}
	}
}
