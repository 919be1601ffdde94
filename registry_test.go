package pphtml

import (
	"sync"
	"testing"
)

func TestTagRegistryValid(t *testing.T) {
	r := NewTagRegistry()

	for _, tag := range []string{"div", "html", "br", "wbr", "template"} {
		if !r.Valid(tag) {
			t.Errorf("Valid(%q) = false, want true", tag)
		}
	}
	for _, tag := range []string{"not-a-real-tag", "DIV", ""} {
		if r.Valid(tag) {
			t.Errorf("Valid(%q) = true, want false", tag)
		}
	}
}

func TestTagRegistryExtensions(t *testing.T) {
	r := NewTagRegistry("x-chart")
	if !r.Valid("x-chart") {
		t.Error("Valid(x-chart) = false, want true")
	}

	r.Allow("x-grid", "x-row")
	if !r.Valid("x-grid") || !r.Valid("x-row") {
		t.Error("allowed extensions not valid")
	}

	want := []string{"x-chart", "x-grid", "x-row"}
	got := r.Extensions()
	if len(got) != len(want) {
		t.Fatalf("Extensions() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("Extensions() = %v, want %v", got, want)
		}
	}
}

func TestTagRegistryVoid(t *testing.T) {
	for _, tag := range []string{"br", "img", "input", "meta", "hr"} {
		if !DefaultRegistry.Void(tag) {
			t.Errorf("Void(%q) = false, want true", tag)
		}
	}
	for _, tag := range []string{"div", "p", "li"} {
		if DefaultRegistry.Void(tag) {
			t.Errorf("Void(%q) = true, want false", tag)
		}
	}
}

func TestTagRegistryConcurrent(t *testing.T) {
	r := NewTagRegistry()
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			r.Allow("x-widget")
		}()
		go func() {
			defer wg.Done()
			r.Valid("x-widget")
			r.Valid("div")
		}()
	}
	wg.Wait()
	if !r.Valid("x-widget") {
		t.Error("Valid(x-widget) = false after concurrent Allow")
	}
}
