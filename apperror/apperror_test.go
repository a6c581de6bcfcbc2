package apperror

import (
	"errors"
	"fmt"
	"net/http"
	"testing"
)

func TestHTTPStatus(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"validation", Validation("salario", -1.0, "must be greater than 0"), http.StatusBadRequest},
		{"invalid request", InvalidRequest("no fields"), http.StatusBadRequest},
		{"not found", NotFound("Empleado %d no encontrado", 7), http.StatusNotFound},
		{"conflict", Conflict("duplicate"), http.StatusConflict},
		{"internal", Internal(errors.New("boom"), "storage failed"), http.StatusInternalServerError},
		{"plain error", errors.New("boom"), http.StatusInternalServerError},
		{"wrapped", fmt.Errorf("outer: %w", NotFound("x")), http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := HTTPStatus(tt.err); got != tt.want {
				t.Fatalf("HTTPStatus() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestInternalUnwrap(t *testing.T) {
	cause := errors.New("connection reset")
	err := Internal(cause, "failed to load project")

	if !errors.Is(err, cause) {
		t.Fatal("expected Internal error to unwrap to its cause")
	}
	if err.Error() != "failed to load project: connection reset" {
		t.Fatalf("unexpected message %q", err.Error())
	}
}

func TestIs(t *testing.T) {
	if Is(nil, KindConflict) {
		t.Fatal("nil error must not match any kind")
	}
	if !Is(Conflict("dup"), KindConflict) {
		t.Fatal("expected conflict kind")
	}
	if Is(Conflict("dup"), KindNotFound) {
		t.Fatal("conflict must not match not found")
	}
}
