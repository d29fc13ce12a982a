package domain

import (
	"testing"

	"github.com/shopspring/decimal"
)

func TestPathTimes_Speedup(t *testing.T) {
	t.Run("Registry Wins", func(t *testing.T) {
		pt := PathTimes{RegistryMS: 100, DirectMS: 250}

		if !pt.Speedup().Equal(decimal.NewFromFloat(2.5)) {
			t.Errorf("Expected speedup 2.5, got %s", pt.Speedup())
		}
		if pt.Winner() != "Registry" {
			t.Errorf("Expected Registry winner, got %s", pt.Winner())
		}
		if !pt.Magnitude().Equal(decimal.NewFromFloat(2.5)) {
			t.Errorf("Expected magnitude 2.5, got %s", pt.Magnitude())
		}
	})

	t.Run("Direct Wins", func(t *testing.T) {
		pt := PathTimes{RegistryMS: 400, DirectMS: 100}

		if pt.Winner() != "Direct" {
			t.Errorf("Expected Direct winner, got %s", pt.Winner())
		}
		// Magnitude is the reciprocal: 400/100 = 4
		if !pt.Magnitude().Equal(decimal.NewFromInt(4)) {
			t.Errorf("Expected magnitude 4, got %s", pt.Magnitude())
		}
	})

	t.Run("Tie Counts As Registry", func(t *testing.T) {
		pt := PathTimes{RegistryMS: 100, DirectMS: 100}
		if pt.Winner() != "Registry" {
			t.Errorf("Expected Registry on a tie, got %s", pt.Winner())
		}
	})

	t.Run("Safety: Zero Registry Time", func(t *testing.T) {
		pt := PathTimes{RegistryMS: 0, DirectMS: 100}
		if !pt.Speedup().IsZero() {
			t.Errorf("Expected zero speedup on degenerate run, got %s", pt.Speedup())
		}
		if !pt.Magnitude().IsZero() {
			t.Errorf("Expected zero magnitude on degenerate run, got %s", pt.Magnitude())
		}
	})
}

