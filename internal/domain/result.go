package domain

import "github.com/shopspring/decimal"

// PathTimes holds the elapsed wall-clock time of the two comparison paths
// over one scenario run.
type PathTimes struct {
	RegistryMS float64 `json:"registry_ms"`
	DirectMS   float64 `json:"direct_ms"`
}

// Speedup returns direct/registry. A value >= 1 means the registry path
// won. Returns zero when the registry time is zero (degenerate run).
func (t PathTimes) Speedup() decimal.Decimal {
	reg := decimal.NewFromFloat(t.RegistryMS)
	if reg.IsZero() {
		return decimal.Zero
	}
	return decimal.NewFromFloat(t.DirectMS).Div(reg)
}

// Winner returns "Registry" when the speedup is >= 1, "Direct" otherwise.
func (t PathTimes) Winner() string {
	if t.Speedup().GreaterThanOrEqual(decimal.New(1, 0)) {
		return "Registry"
	}
	return "Direct"
}

// Magnitude expresses the winner's margin as a ratio >= 1 (the reciprocal
// of the speedup when the direct path won).
func (t PathTimes) Magnitude() decimal.Decimal {
	s := t.Speedup()
	if s.IsZero() {
		return decimal.Zero
	}
	if s.GreaterThanOrEqual(decimal.New(1, 0)) {
		return s
	}
	return decimal.New(1, 0).Div(s)
}

// ScenarioResult is the outcome of a single-match scenario run: both path
// timings plus the agreed match count. Never mutated after creation.
type ScenarioResult struct {
	Name    string `json:"name"`
	Matches uint64 `json:"matches"`
	PathTimes
}

// FanoutResult is one row of the 1-to-many sweep. Produced by the engine,
// consumed by the reporter and the optional run-history store.
type FanoutResult struct {
	Fanout  int    `json:"fanout"`
	Matches uint64 `json:"matches"`
	PathTimes
}
