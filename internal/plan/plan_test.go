package plan

import (
	"os"
	"path/filepath"
	"testing"
)

func writePlanFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "plans.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write plan file: %v", err)
	}
	return path
}

func TestLoadDefaultsToCanonical(t *testing.T) {
	plans, err := Load("")
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if len(plans) != 1 || plans[0].ID != Canonical.ID {
		t.Errorf("expected the canonical plan, got %+v", plans)
	}
	if plans[0].Days != DefaultDays {
		t.Errorf("canonical plan should span %d days, got %d", DefaultDays, plans[0].Days)
	}
}

func TestLoadParsesFile(t *testing.T) {
	path := writePlanFile(t, `
plans:
  - id: gospels-90
    name: Gospels in 90 Days
    days: 90
  - id: whole-year
    name: Whole Year
`)

	plans, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if len(plans) != 2 {
		t.Fatalf("expected 2 plans, got %d", len(plans))
	}
	if plans[0].Days != 90 {
		t.Errorf("declared days should be kept, got %d", plans[0].Days)
	}
	if plans[1].Days != DefaultDays {
		t.Errorf("missing days should default to %d, got %d", DefaultDays, plans[1].Days)
	}
}

func TestLoadRejectsBadFiles(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"empty", "plans: []"},
		{"missing id", "plans:\n  - name: No ID\n"},
		{"duplicate id", "plans:\n  - id: a\n  - id: a\n"},
		{"not yaml", "{{{"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := Load(writePlanFile(t, tt.content)); err == nil {
				t.Error("expected an error")
			}
		})
	}
}

func TestByID(t *testing.T) {
	plans := []Plan{{ID: "a"}, {ID: "b"}}
	if p, ok := ByID(plans, "b"); !ok || p.ID != "b" {
		t.Errorf("ByID(b) = %+v, %v", p, ok)
	}
	if _, ok := ByID(plans, "c"); ok {
		t.Error("ByID(c) should report missing")
	}
}
