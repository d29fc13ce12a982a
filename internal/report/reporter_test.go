package report

import (
	"bytes"
	"strings"
	"testing"

	"symbench/internal/domain"
)

func TestReporter_Header(t *testing.T) {
	var buf bytes.Buffer
	NewReporter(&buf).Header(10_000_000, 45)

	out := buf.String()
	if !strings.Contains(out, "Iterations : 10000000") {
		t.Errorf("Header missing iteration count:\n%s", out)
	}
	if !strings.Contains(out, "45 unique symbols") {
		t.Errorf("Header missing pool size:\n%s", out)
	}
}

func TestReporter_OneToOne(t *testing.T) {
	var buf bytes.Buffer
	NewReporter(&buf).OneToOne(domain.ScenarioResult{
		Name:      "1-to-1",
		Matches:   222171,
		PathTimes: domain.PathTimes{RegistryMS: 120.5, DirectMS: 60.25},
	})

	out := buf.String()
	if !strings.Contains(out, "222171") {
		t.Errorf("Table missing match count:\n%s", out)
	}
	if !strings.Contains(out, "120.500") {
		t.Errorf("Table missing registry time:\n%s", out)
	}
	if !strings.Contains(out, "Direct is 2.00x faster than registry.") {
		t.Errorf("Expected direct-winner speedup line:\n%s", out)
	}
}

func TestReporter_Fanout(t *testing.T) {
	var buf bytes.Buffer
	NewReporter(&buf).Fanout(domain.FanoutResult{
		Fanout:    64,
		Matches:   1000,
		PathTimes: domain.PathTimes{RegistryMS: 50, DirectMS: 200},
	})

	out := buf.String()
	if !strings.Contains(out, "fanout=64") {
		t.Errorf("Table missing fanout value:\n%s", out)
	}
	if !strings.Contains(out, "Registry is 4.00x faster than direct.") {
		t.Errorf("Expected registry-winner speedup line:\n%s", out)
	}
}

func TestReporter_Summary(t *testing.T) {
	var buf bytes.Buffer
	NewReporter(&buf).Summary([]domain.FanoutResult{
		{Fanout: 8, Matches: 10, PathTimes: domain.PathTimes{RegistryMS: 100, DirectMS: 80}},
		{Fanout: 16, Matches: 20, PathTimes: domain.PathTimes{RegistryMS: 100, DirectMS: 300}},
	})

	out := buf.String()
	for _, want := range []string{"Fanout", "Winner", "Direct", "Registry", "3.00"} {
		if !strings.Contains(out, want) {
			t.Errorf("Summary missing %q:\n%s", want, out)
		}
	}

	lines := strings.Split(strings.TrimSpace(out), "\n")
	// banner + header + separator + two rows
	if len(lines) != 5 {
		t.Errorf("Expected 5 summary lines, got %d:\n%s", len(lines), out)
	}
}
