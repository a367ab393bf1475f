package core

import (
	"errors"
	"testing"
)

func TestErrorCarriesCode(t *testing.T) {
	err := Error(EINVALID, "argument %d is out of range", 7)
	if Code(err) != EINVALID {
		t.Errorf("expected code EINVALID, have %d", Code(err))
	}
	if UserMessage(err) != "argument 7 is out of range" {
		t.Errorf("unexpected user message: %q", UserMessage(err))
	}
}

func TestWrapErrorKeepsChain(t *testing.T) {
	cause := errors.New("no such file")
	err := WrapError(cause, EMISSING, "font not found")
	if !errors.Is(err, cause) {
		t.Error("wrapped error should match its cause")
	}
	if Code(err) != EMISSING {
		t.Errorf("expected code EMISSING, have %d", Code(err))
	}
}

func TestCodeDefaults(t *testing.T) {
	if Code(nil) != NOERROR {
		t.Error("nil error should map to NOERROR")
	}
	if Code(errors.New("anonymous")) != EINTERNAL {
		t.Error("uncoded error should map to EINTERNAL")
	}
	if UserMessage(nil) != "" {
		t.Error("nil error should have an empty user message")
	}
}

func TestErrorWithCode(t *testing.T) {
	err := ErrorWithCode(nil, EMISSING)
	if err == nil {
		t.Fatal("expected a non-nil error for a nil cause")
	}
	if Code(err) != EMISSING || UserMessage(err) != "not found" {
		t.Errorf("unexpected error: %v", err)
	}
}
