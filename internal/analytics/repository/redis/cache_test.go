package redis

import (
	"strings"
	"testing"
	"time"
)

func TestParamsKey(t *testing.T) {
	from := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2024, 3, 31, 23, 59, 59, 0, time.UTC)

	t.Run("deterministic for same inputs", func(t *testing.T) {
		a := ParamsKey([]string{"src-1", "src-2"}, &from, &to)
		b := ParamsKey([]string{"src-1", "src-2"}, &from, &to)
		if a != b {
			t.Errorf("keys differ for identical inputs: %s vs %s", a, b)
		}
	})

	t.Run("embeds source ids for pattern invalidation", func(t *testing.T) {
		key := ParamsKey([]string{"src-1", "src-2"}, &from, &to)
		if !strings.Contains(key, "src-1") {
			t.Errorf("key %s does not contain src-1", key)
		}
		if !strings.Contains(key, "src-2") {
			t.Errorf("key %s does not contain src-2", key)
		}
	})

	t.Run("date range changes the key", func(t *testing.T) {
		a := ParamsKey([]string{"src-1"}, &from, &to)

		later := to.Add(24 * time.Hour)
		b := ParamsKey([]string{"src-1"}, &from, &later)
		if a == b {
			t.Error("keys should differ for different date ranges")
		}
	})

	t.Run("nil dates differ from set dates", func(t *testing.T) {
		a := ParamsKey([]string{"src-1"}, nil, nil)
		b := ParamsKey([]string{"src-1"}, &from, &to)
		if a == b {
			t.Error("keys should differ when dates are unset")
		}
	})

	t.Run("no source filter gets the all marker", func(t *testing.T) {
		key := ParamsKey(nil, &from, &to)
		if !strings.HasPrefix(key, allSourcesKeyPart+":") {
			t.Errorf("unfiltered key %s should carry the %s prefix so invalidation can reach it", key, allSourcesKeyPart)
		}
	})
}
