package backend_test

import (
	"slices"
	"testing"

	"github.com/bornholm/maven/internal/filesystem/backend"
	"github.com/pkg/errors"

	_ "github.com/bornholm/maven/internal/filesystem/backend/memory"
)

func TestNew(t *testing.T) {
	if !slices.Contains(backend.Schemes(), "memory") {
		t.Fatalf("expected 'memory' scheme to be registered, got %v", backend.Schemes())
	}

	if _, err := backend.New("memory://"); err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}

	if _, err := backend.New("ftp://example.net"); !errors.Is(err, backend.ErrSchemeNotRegistered) {
		t.Errorf("expected ErrSchemeNotRegistered, got %+v", err)
	}
}
