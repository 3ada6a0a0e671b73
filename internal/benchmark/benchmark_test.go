// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package benchmark

import (
	"testing"

	"github.com/pdiddy/materials-engine/pkg/types"
)

func TestEvaluate(t *testing.T) {
	targets := types.DefaultTargets()

	tests := []struct {
		name       string
		entry      types.LiteratureEntry
		metric     string
		wantKnown  bool
		wantMet    bool
		wantMargin float64
	}{
		{
			name:       "at-most target met",
			entry:      types.LiteratureEntry{CorrosionCurrent: types.Float(0.5)},
			metric:     types.MetricCorrosionCurrent,
			wantKnown:  true,
			wantMet:    true,
			wantMargin: 0.5,
		},
		{
			name:       "at-most target missed",
			entry:      types.LiteratureEntry{CorrosionCurrent: types.Float(1.5)},
			metric:     types.MetricCorrosionCurrent,
			wantKnown:  true,
			wantMet:    false,
			wantMargin: -0.5,
		},
		{
			name:       "exactly on threshold passes",
			entry:      types.LiteratureEntry{CorrosionCurrent: types.Float(1.0)},
			metric:     types.MetricCorrosionCurrent,
			wantKnown:  true,
			wantMet:    true,
			wantMargin: 0,
		},
		{
			name:       "at-least target met",
			entry:      types.LiteratureEntry{TestDurationHours: types.Float(3000)},
			metric:     types.MetricTestDuration,
			wantKnown:  true,
			wantMet:    true,
			wantMargin: 1000,
		},
		{
			name:       "at-least target missed",
			entry:      types.LiteratureEntry{TestDurationHours: types.Float(500)},
			metric:     types.MetricTestDuration,
			wantKnown:  true,
			wantMet:    false,
			wantMargin: -1500,
		},
		{
			name:      "absent metric is unknown",
			entry:     types.LiteratureEntry{},
			metric:    types.MetricCorrosionCurrent,
			wantKnown: false,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			verdicts := Evaluate(tt.entry, targets)
			v := verdicts[tt.metric]
			if v.Known != tt.wantKnown {
				t.Fatalf("Known = %t, want %t", v.Known, tt.wantKnown)
			}
			if !tt.wantKnown {
				return
			}
			if v.Met != tt.wantMet {
				t.Errorf("Met = %t, want %t", v.Met, tt.wantMet)
			}
			if v.Margin != tt.wantMargin {
				t.Errorf("Margin = %g, want %g", v.Margin, tt.wantMargin)
			}
		})
	}
}

func TestEvaluateOneVerdictPerTarget(t *testing.T) {
	targets := types.DefaultTargets()
	verdicts := Evaluate(types.LiteratureEntry{}, targets)
	if len(verdicts) != len(targets) {
		t.Errorf("Evaluate returned %d verdicts, want %d", len(verdicts), len(targets))
	}
}

func TestMeetsAll(t *testing.T) {
	targets := types.DefaultTargets()

	full := types.LiteratureEntry{
		ContactResistance: types.Float(8),
		CorrosionCurrent:  types.Float(0.5),
		TestDurationHours: types.Float(3000),
		CostEstimate:      types.Float(9),
	}
	if met, unknown := MeetsAll(full, targets); !met || unknown != 0 {
		t.Errorf("full pass = %t/%d, want true/0", met, unknown)
	}

	failing := full
	failing.CorrosionCurrent = types.Float(5)
	if met, _ := MeetsAll(failing, targets); met {
		t.Error("entry over corrosion threshold reported as passing")
	}

	// Missing data disqualifies a full pass even when everything known passes.
	partial := full
	partial.CostEstimate = nil
	if met, unknown := MeetsAll(partial, targets); met || unknown != 1 {
		t.Errorf("partial entry = %t/%d, want false/1", met, unknown)
	}
}

func TestEvaluateEntriesOrder(t *testing.T) {
	targets := SortTargets(types.DefaultTargets())
	entries := []types.LiteratureEntry{
		{SourceID: "a", Material: "TiN", CorrosionCurrent: types.Float(0.5)},
		{SourceID: "b", Material: "CrN"},
	}

	rows := EvaluateEntries(entries, targets)
	if len(rows) != len(entries)*len(targets) {
		t.Fatalf("got %d rows, want %d", len(rows), len(entries)*len(targets))
	}
	// Entry order outer, target order inner.
	if rows[0].RecordID != "a" || rows[len(targets)].RecordID != "b" {
		t.Errorf("row order wrong: first %q, then %q", rows[0].RecordID, rows[len(targets)].RecordID)
	}
	for i, target := range targets {
		if rows[i].MetricName != target.MetricName {
			t.Errorf("row %d metric = %q, want %q", i, rows[i].MetricName, target.MetricName)
		}
	}
}

func TestSortTargets(t *testing.T) {
	targets := SortTargets(types.DefaultTargets())
	for i := 1; i < len(targets); i++ {
		if targets[i-1].MetricName > targets[i].MetricName {
			t.Fatalf("targets not sorted: %q before %q", targets[i-1].MetricName, targets[i].MetricName)
		}
	}
}
