package imagestore

import (
	"testing"
	"time"
)

func TestCacheTTLIsHalfTheSignatureLifetime(t *testing.T) {
	cases := []struct {
		ttl  time.Duration
		want time.Duration
	}{
		{time.Hour, 30 * time.Minute},
		{10 * time.Minute, 5 * time.Minute},
		{4 * time.Second, 2 * time.Second},
	}
	for _, tc := range cases {
		if got := cacheTTL(tc.ttl); got != tc.want {
			t.Errorf("cacheTTL(%s) = %s, want %s", tc.ttl, got, tc.want)
		}
	}
}

func TestCacheTTLNeverDropsBelowOneSecond(t *testing.T) {
	if got := cacheTTL(500 * time.Millisecond); got != time.Second {
		t.Errorf("cacheTTL(500ms) = %s, want 1s", got)
	}
}
