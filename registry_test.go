package contend

import (
	"slices"
	"testing"
)

func TestBuiltinScenariosRegistered(t *testing.T) {
	want := []string{
		"atomic",
		"false-sharing",
		"independent-mutex",
		"no-false-sharing",
		"shared-mutex",
	}
	got := Names()
	for _, name := range want {
		if !slices.Contains(got, name) {
			t.Errorf("scenario %q not registered (have %v)", name, got)
		}
	}
	if !slices.IsSorted(got) {
		t.Errorf("Names() not sorted: %v", got)
	}
}

func TestRegisteredNamesMatchScenarioNames(t *testing.T) {
	for _, name := range Names() {
		f, err := Lookup(name)
		if err != nil {
			t.Fatal(err)
		}
		s := f(10)
		if s.Name() != name {
			t.Errorf("factory registered as %q builds scenario named %q", name, s.Name())
		}
		if s.Workers() < 1 {
			t.Errorf("%s: %d workers", name, s.Workers())
		}
	}
}

func TestLookupUnknown(t *testing.T) {
	if _, err := Lookup("no-such-scenario"); err == nil {
		t.Error("Lookup of an unregistered name succeeded")
	}
}

func TestRegisterReplaces(t *testing.T) {
	f := func(iters int) Scenario { return NewAtomic(1, iters) }
	Register("registry-test-scratch", f)
	defer registry.Delete("registry-test-scratch")

	got, err := Lookup("registry-test-scratch")
	if err != nil {
		t.Fatal(err)
	}
	if got(5).Workers() != 1 {
		t.Error("lookup returned a different factory")
	}
}
