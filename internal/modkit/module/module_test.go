package module

import (
	"testing"

	kit "interventions/internal/platform/testkit"
)

type readier interface{ Ready() string }

type ready string

func (r ready) Ready() string { return string(r) }

func TestPortsAs(t *testing.T) {
	kit.Serial(t)
	Reset()
	t.Cleanup(Reset)

	type bundle struct {
		Ready readier
		Count int
	}
	type hidden struct {
		ready readier
	}

	Register("direct", ready("direct"))
	Register("bundle", bundle{Ready: ready("field"), Count: 3})
	Register("hidden", hidden{ready: ready("hidden")})
	Register("scalar", 42)
	Register("meta", nil)

	cases := []struct {
		name string
		want string
		ok   bool
	}{
		{"direct", "direct", true},
		{"bundle", "field", true},
		{"hidden", "", false},
		{"scalar", "", false},
		{"meta", "", false},
		{"missing", "", false},
	}
	for _, c := range cases {
		got, ok := PortsAs[readier](c.name)
		if ok != c.ok {
			t.Fatalf("%s: ok = %v, want %v", c.name, ok, c.ok)
		}
		if ok && got.Ready() != c.want {
			t.Fatalf("%s: got %q, want %q", c.name, got.Ready(), c.want)
		}
	}

	want := []string{"bundle", "direct", "hidden", "meta", "scalar"}
	got := Names()
	if len(got) != len(want) {
		t.Fatalf("Names() = %v", got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("Names() = %v, want %v", got, want)
		}
	}
}

func TestRegister_Replaces(t *testing.T) {
	kit.Serial(t)
	Reset()
	t.Cleanup(Reset)

	Register("scheduler", ready("old"))
	Register("scheduler", ready("new"))
	if p, _ := PortsAs[readier]("scheduler"); p.Ready() != "new" {
		t.Fatalf("got %q", p.Ready())
	}
}
