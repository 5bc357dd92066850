package challenge

import "testing"

func TestIssuanceLimiterAllowsBurstThenBlocks(t *testing.T) {
	lim := NewIssuanceLimiter(1, 2)
	if !lim.Allow("frag-a") {
		t.Error("first request should be allowed")
	}
	if !lim.Allow("frag-a") {
		t.Error("second request within burst should be allowed")
	}
	if lim.Allow("frag-a") {
		t.Error("third immediate request should be rate limited")
	}
}

func TestIssuanceLimiterTracksFragmentsIndependently(t *testing.T) {
	lim := NewIssuanceLimiter(1, 1)
	if !lim.Allow("frag-a") {
		t.Error("frag-a first request should be allowed")
	}
	if !lim.Allow("frag-b") {
		t.Error("frag-b should have its own independent budget")
	}
}
