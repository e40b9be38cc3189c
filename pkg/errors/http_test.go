package errors_test

import (
	"fmt"
	"net/http"
	"testing"

	pkgErrors "gantt-timeline/pkg/errors"
)

func TestAsHTTPError(t *testing.T) {
	wrapped := fmt.Errorf("handler: %w", pkgErrors.NewHTTPError(http.StatusConflict, "board is full"))

	he, ok := pkgErrors.AsHTTPError(wrapped)
	if !ok {
		t.Fatalf("expected wrapped HTTPError to be found")
	}
	if he.StatusCode != http.StatusConflict || he.Message != "board is full" {
		t.Errorf("unexpected HTTPError %+v", he)
	}

	if _, ok := pkgErrors.AsHTTPError(fmt.Errorf("plain")); ok {
		t.Errorf("plain error must not match")
	}
}
