package batch

import (
	"testing"

	"github.com/dosecraft/infuse/pkg/units"
	"gopkg.in/yaml.v3"
)

func TestLoad(t *testing.T) {
	b, err := Load("testdata/batch.yaml")
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if b.CannabisGrams != 5 {
		t.Errorf("cannabis_grams = %v, want 5", b.CannabisGrams)
	}
	if b.THCPercent != 18 {
		t.Errorf("thc_percent = %v, want 18", b.THCPercent)
	}
	if b.THCAPercent != 2.5 {
		t.Errorf("thca_percent = %v, want 2.5", b.THCAPercent)
	}
	if b.Efficiency() != 70 {
		t.Errorf("efficiency = %v, want 70", b.Efficiency())
	}
	if b.TotalBaseMade != (units.Volume{Amount: 250, Unit: units.Milliliter}) {
		t.Errorf("total_base_made = %+v, want 250 ml", b.TotalBaseMade)
	}
	if b.BaseUsed != (units.Volume{Amount: 50, Unit: units.Milliliter}) {
		t.Errorf("base_used = %+v, want 50 ml", b.BaseUsed)
	}
	if b.Servings != 8 {
		t.Errorf("servings = %v, want 8", b.Servings)
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load("testdata/does-not-exist.yaml"); err == nil {
		t.Fatal("expected error for missing file")
	}
}

func TestEfficiencyDefault(t *testing.T) {
	var b Batch
	if err := yaml.Unmarshal([]byte("cannabis_grams: 7\n"), &b); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if b.EfficiencyPercent != nil {
		t.Fatal("efficiency should be nil when absent from YAML")
	}
	if b.Efficiency() != DefaultEfficiencyPercent {
		t.Errorf("Efficiency() = %v, want %v", b.Efficiency(), DefaultEfficiencyPercent)
	}
}

func TestEfficiencyExplicitZeroRespected(t *testing.T) {
	var b Batch
	if err := yaml.Unmarshal([]byte("efficiency_percent: 0\n"), &b); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if b.EfficiencyPercent == nil {
		t.Fatal("explicit zero efficiency should not be nil")
	}
	if b.Efficiency() != 0 {
		t.Errorf("Efficiency() = %v, want 0", b.Efficiency())
	}
}

func TestWithEfficiency(t *testing.T) {
	b := Batch{CannabisGrams: 3}.WithEfficiency(60)
	if b.Efficiency() != 60 {
		t.Errorf("Efficiency() = %v, want 60", b.Efficiency())
	}
}
