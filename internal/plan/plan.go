// Package plan holds reading plans and the per-plan progress tracker.
package plan

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// DefaultDays is the length of a plan that does not declare one: one
// calendar year.
const DefaultDays = 365

// Plan is a reading plan definition.
type Plan struct {
	ID          string `yaml:"id"`
	Name        string `yaml:"name"`
	Description string `yaml:"description"`
	Days        int    `yaml:"days"`
}

type planFile struct {
	Plans []Plan `yaml:"plans"`
}

// Canonical is the built-in whole-year plan used when no plan file is
// configured.
var Canonical = Plan{
	ID:          "canonical",
	Name:        "Bible in a Year",
	Description: "Read through the whole Bible in one calendar year.",
	Days:        DefaultDays,
}

// Load reads plan definitions from a YAML file. An empty path yields the
// built-in canonical plan.
func Load(path string) ([]Plan, error) {
	if path == "" {
		return []Plan{Canonical}, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read plan file: %w", err)
	}

	var f planFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("failed to parse plan file: %w", err)
	}
	if len(f.Plans) == 0 {
		return nil, fmt.Errorf("plan file %s defines no plans", path)
	}

	seen := make(map[string]bool, len(f.Plans))
	for i := range f.Plans {
		p := &f.Plans[i]
		if p.ID == "" {
			return nil, fmt.Errorf("plan %d has no id", i)
		}
		if seen[p.ID] {
			return nil, fmt.Errorf("duplicate plan id %q", p.ID)
		}
		seen[p.ID] = true
		if p.Days <= 0 {
			p.Days = DefaultDays
		}
	}
	return f.Plans, nil
}

// ByID returns the plan with the given id.
func ByID(plans []Plan, id string) (Plan, bool) {
	for _, p := range plans {
		if p.ID == id {
			return p, true
		}
	}
	return Plan{}, false
}
