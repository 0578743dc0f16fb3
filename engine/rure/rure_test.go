//go:build rure

package rure_test

import (
	"testing"

	"github.com/coregx/regolith/engine"
	"github.com/coregx/regolith/engine/enginetest"
	rureengine "github.com/coregx/regolith/engine/rure"
)

func TestConformance(t *testing.T) {
	enginetest.Suite{Engine: rureengine.Engine{}}.Run(t)
}

func TestRegistered(t *testing.T) {
	if _, ok := engine.Lookup(rureengine.Name); !ok {
		t.Fatalf("engine %q is not registered", rureengine.Name)
	}
}
