package news

import (
	"testing"
)

func TestImpactAverage(t *testing.T) {
	tests := []struct {
		name     string
		impacts  []float64
		expected float64
	}{
		{"empty defaults to neutral", nil, DefaultImpact},
		{"single analysis", []float64{8.0}, 8.0},
		{"mean of several", []float64{4.0, 6.0, 8.0}, 6.0},
		{"zero impacts kept", []float64{0.0, 10.0}, 5.0},
	}

	for _, tc := range tests {
		analyses := make([]Analysis, len(tc.impacts))
		for i, imp := range tc.impacts {
			analyses[i] = Analysis{LegislatorID: "x", Impact: imp}
		}
		if got := ImpactAverage(analyses); got != tc.expected {
			t.Errorf("%s: expected %v, got %v", tc.name, tc.expected, got)
		}
	}
}

func TestAverageByLegislator(t *testing.T) {
	analyses := []Analysis{
		{LegislatorID: "OZGUR OZEL", Impact: 9.0},
		{LegislatorID: "OZGUR OZEL", Impact: 7.0},
		{LegislatorID: "ORHAN KIRCALI", Impact: 3.0},
		{LegislatorID: "", Impact: 10.0},
	}

	averages := AverageByLegislator(analyses)

	if len(averages) != 2 {
		t.Fatalf("expected 2 legislators, got %d: %v", len(averages), averages)
	}
	if averages["OZGUR OZEL"] != 8.0 {
		t.Errorf("expected 8.0, got %v", averages["OZGUR OZEL"])
	}
	if averages["ORHAN KIRCALI"] != 3.0 {
		t.Errorf("expected 3.0, got %v", averages["ORHAN KIRCALI"])
	}
	if _, ok := averages[""]; ok {
		t.Error("analyses without a legislator id must be dropped")
	}
}

func TestAverageByLegislatorEmpty(t *testing.T) {
	if averages := AverageByLegislator(nil); len(averages) != 0 {
		t.Errorf("expected empty map, got %v", averages)
	}
}
