package satune

import (
	"encoding/json"
	"fmt"
	"os"
)

// TuningParameters is the immutable input shared by every solver.
// All fields are required; there are no prescribed defaults (spec.md §6).
type TuningParameters struct {
	MinTemp float64         `json:"min_temp"`
	MaxTemp float64         `json:"max_temp"`
	MaxStep uint64          `json:"max_step"`
	Cooling CoolingSchedule `json:"cooling"`
	Energy  EnergyType      `json:"energy"`
	// BasicExpAlpha is the decay factor used only when Cooling == BasicExp.
	BasicExpAlpha float64 `json:"basic_exp_alpha,omitempty"`
}

// Validate checks a TuningParameters for internal consistency, mirroring
// the style (and error phrasing) of the teacher's ValidateConfig.
func (p *TuningParameters) Validate() error {
	if p == nil {
		return fmt.Errorf("tuning parameters is nil")
	}
	if p.MinTemp <= 0 {
		return fmt.Errorf("min_temp must be positive (got %f)", p.MinTemp)
	}
	if p.MaxTemp < p.MinTemp {
		return fmt.Errorf("max_temp (%f) must be >= min_temp (%f)", p.MaxTemp, p.MinTemp)
	}
	if p.MaxStep < 1 {
		return fmt.Errorf("max_step must be >= 1 (got %d)", p.MaxStep)
	}
	switch p.Cooling {
	case Linear, Exponential, BasicExp:
	default:
		return fmt.Errorf("cooling must be 'linear', 'exponential', or 'basic_exp' (got %q)", p.Cooling)
	}
	switch p.Energy {
	case Throughput, Latency:
	default:
		return fmt.Errorf("energy must be 'throughput' or 'latency' (got %q)", p.Energy)
	}
	if p.Cooling == BasicExp {
		if p.BasicExpAlpha <= 0 || p.BasicExpAlpha >= 1 {
			return fmt.Errorf("basic_exp_alpha should be in (0,1) (got %f)", p.BasicExpAlpha)
		}
	}
	return nil
}

// LoadTuningParametersFromFile loads TuningParameters from a JSON file.
func LoadTuningParametersFromFile(path string) (*TuningParameters, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read tuning parameters file: %w", err)
	}

	p := &TuningParameters{}
	if err := json.Unmarshal(data, p); err != nil {
		return nil, fmt.Errorf("failed to parse tuning parameters file: %w", err)
	}

	if err := p.Validate(); err != nil {
		return nil, fmt.Errorf("invalid tuning parameters: %w", err)
	}

	return p, nil
}

// SaveTuningParametersToFile saves TuningParameters to a JSON file.
func SaveTuningParametersToFile(p *TuningParameters, path string) error {
	data, err := json.MarshalIndent(p, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal tuning parameters: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write tuning parameters file: %w", err)
	}

	return nil
}
