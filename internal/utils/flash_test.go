package utils

import (
	"testing"
	"time"
)

func TestFlashRoundTrip(t *testing.T) {
	s := NewFlashSigner("secret-a", time.Minute)
	tok, err := s.Issue("Venue The Fillmore was successfully listed!", "success")
	if err != nil {
		t.Fatalf("issue failed: %v", err)
	}
	f, err := s.Parse(tok)
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	if f.Message != "Venue The Fillmore was successfully listed!" || f.Category != "success" {
		t.Errorf("unexpected flash %+v", f)
	}
}

func TestFlashRejectsForeignSecret(t *testing.T) {
	// A restart regenerates the secret; tokens from the previous process
	// must stop verifying.
	old := NewFlashSigner("secret-old", time.Minute)
	tok, err := old.Issue("stale", "success")
	if err != nil {
		t.Fatalf("issue failed: %v", err)
	}
	fresh := NewFlashSigner("secret-new", time.Minute)
	if _, err := fresh.Parse(tok); err == nil {
		t.Error("expected foreign token to be rejected")
	}
}

func TestFlashRejectsGarbage(t *testing.T) {
	s := NewFlashSigner("secret", time.Minute)
	for _, tok := range []string{"", "not-a-token", "a.b.c"} {
		if _, err := s.Parse(tok); err == nil {
			t.Errorf("expected %q to be rejected", tok)
		}
	}
}
