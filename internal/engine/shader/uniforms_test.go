package shader

import (
	"sort"
	"testing"
)

func TestResolveLooksUpOnce(t *testing.T) {
	calls := make(map[string]int)
	active := map[string]int32{"uModel": 0, "uView": 1, "uColor": 4}
	lookup := func(name string) int32 {
		calls[name]++
		if loc, ok := active[name]; ok {
			return loc
		}
		return -1
	}

	u := ResolveWith(7, lookup, "uModel", "uView", "uColor", "uModel", "uShininess")

	for name, n := range calls {
		if n != 1 {
			t.Errorf("%s looked up %d times", name, n)
		}
	}
	for i := 0; i < 3; i++ {
		if u.Loc("uColor") != 4 {
			t.Fatalf("uColor: got %d, want 4", u.Loc("uColor"))
		}
	}
	if calls["uColor"] != 1 {
		t.Errorf("Loc triggered extra lookups: %d", calls["uColor"])
	}
	if u.Program() != 7 {
		t.Errorf("expected program 7, got %d", u.Program())
	}
}

func TestLocMissing(t *testing.T) {
	u := ResolveWith(1, func(string) int32 { return -1 }, "uLightPos", "uTexMix")

	if got := u.Loc("uLightPos"); got != -1 {
		t.Errorf("inactive uniform: got %d, want -1", got)
	}
	if got := u.Loc("neverResolved"); got != -1 {
		t.Errorf("unresolved uniform: got %d, want -1", got)
	}

	missing := u.Missing()
	sort.Strings(missing)
	if len(missing) != 2 || missing[0] != "uLightPos" || missing[1] != "uTexMix" {
		t.Errorf("unexpected missing list %v", missing)
	}
}
