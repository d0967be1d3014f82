package nts

import (
	"errors"
	"strings"
	"testing"
)

func TestResponseErrorMessage(t *testing.T) {
	err := &ResponseError{StatusCode: 503, Body: "service unavailable"}
	if got := err.Error(); !strings.Contains(got, "503") || !strings.Contains(got, "service unavailable") {
		t.Fatalf("unexpected message: %q", got)
	}

	empty := &ResponseError{StatusCode: 500}
	if got := empty.Error(); !strings.Contains(got, "<empty>") {
		t.Fatalf("expected empty-body marker, got %q", got)
	}
}

func TestResponseErrorBodySnippetTruncation(t *testing.T) {
	err := &ResponseError{StatusCode: 500, Body: strings.Repeat("x", 2048)}
	if got := err.Error(); !strings.HasSuffix(got, "...") {
		t.Fatalf("expected truncated body in message, got %d chars", len(got))
	}
	if len(err.Body) != 2048 {
		t.Fatal("truncation must not touch the stored body")
	}
}

func TestErrorTaxonomyBaseKind(t *testing.T) {
	for name, err := range map[string]error{
		"response": &ResponseError{StatusCode: 500},
		"timeout":  &TimeoutError{},
	} {
		if !errors.Is(err, ErrAPI) {
			t.Fatalf("%s error should satisfy ErrAPI", name)
		}
		if errors.Is(err, errors.New("other")) {
			t.Fatalf("%s error matched an unrelated target", name)
		}
	}
}

func TestTimeoutErrorUnwrap(t *testing.T) {
	cause := errors.New("deadline exceeded")
	err := &TimeoutError{Err: cause}
	if !errors.Is(err, cause) {
		t.Fatal("timeout error should unwrap to its cause")
	}
	if !strings.Contains(err.Error(), "deadline exceeded") {
		t.Fatalf("unexpected message: %q", err.Error())
	}

	bare := &TimeoutError{}
	if bare.Error() == "" {
		t.Fatal("bare timeout error needs a message")
	}
}
