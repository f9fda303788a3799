package errors

import (
	stdErrors "errors"
	"fmt"
	"net/http"
	"testing"
)

func TestWrapPreservesCause(t *testing.T) {
	cause := stdErrors.New("boom")
	err := Wrap(CodeDependency, cause, "loading orders")

	if !stdErrors.Is(err, cause) {
		t.Fatal("wrapped cause must be reachable via errors.Is")
	}
	if err.Code() != CodeDependency {
		t.Fatalf("unexpected code %s", err.Code())
	}
	if got := err.Error(); got != "DEPENDENCY_ERROR: loading orders" {
		t.Fatalf("unexpected message %q", got)
	}
}

func TestWrapNilCause(t *testing.T) {
	err := Wrap(CodeValidation, nil, "missing field")
	if err.Unwrap() != nil {
		t.Fatal("nil cause should not produce a wrapped error")
	}
}

func TestAsFindsTypedError(t *testing.T) {
	inner := New(CodeNotFound, "order not found")
	wrapped := fmt.Errorf("handler: %w", inner)

	typed := As(wrapped)
	if typed == nil || typed.Code() != CodeNotFound {
		t.Fatalf("expected typed NOT_FOUND, got %v", typed)
	}
	if As(stdErrors.New("plain")) != nil {
		t.Fatal("plain errors should not convert")
	}
}

func TestMetadataFor(t *testing.T) {
	if MetadataFor(CodeValidation).HTTPStatus != http.StatusBadRequest {
		t.Fatal("validation maps to 400")
	}
	if MetadataFor(Code("UNKNOWN")).HTTPStatus != http.StatusInternalServerError {
		t.Fatal("unknown codes fall back to 500")
	}
}

func TestDumpChain(t *testing.T) {
	err := Wrap(CodeDependency, stdErrors.New("net down"), "fetch")
	d := Dump(err)
	if d.Code != CodeDependency {
		t.Fatalf("unexpected code %s", d.Code)
	}
	if len(d.Chain) < 2 {
		t.Fatalf("expected full chain, got %v", d.Chain)
	}
}
