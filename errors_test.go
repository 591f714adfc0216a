package optpack_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/AndrewDonelson/optpack"
)

func TestErrors_Sentinel(t *testing.T) {
	errs := []error{
		optpack.ErrInvalidInput,
		optpack.ErrInvalidCharacter,
		optpack.ErrInconsistentMapping,
		optpack.ErrOutOfRange,
		optpack.ErrInvalidConfig,
		optpack.ErrMappingNotFound,
		optpack.ErrMappingDuplicate,
		optpack.ErrInvalidDefinition,
		optpack.ErrUnknownFormat,
	}
	seen := map[error]bool{}
	for _, e := range errs {
		if e == nil {
			t.Fatalf("nil sentinel error")
		}
		if seen[e] {
			t.Fatalf("sentinel %v listed twice", e)
		}
		seen[e] = true
	}
}

func TestErrors_Is(t *testing.T) {
	wrapped := fmt.Errorf("decoding query: %w", optpack.ErrInvalidCharacter)
	if !errors.Is(wrapped, optpack.ErrInvalidCharacter) {
		t.Fatal("expected ErrInvalidCharacter")
	}
	if errors.Is(wrapped, optpack.ErrInconsistentMapping) {
		t.Fatal("unexpected ErrInconsistentMapping")
	}
}
