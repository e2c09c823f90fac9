package area

import (
	"encoding/json"
	"fmt"
	"os"
)

// Config holds the per-resource area weights of the model. The defaults are
// the hand-calibrated values of the reference VLSI model.
type Config struct {
	// ALU is the area of one ALU. Default: 3273.
	ALU int64 `json:"alu"`

	// Multiplier is the area of one multiplier. Default: 40614.
	Multiplier int64 `json:"multiplier"`

	// LoadStore is the area of the combined load/store unit. The model
	// always instantiates exactly one. Default: 1500.
	LoadStore int64 `json:"load_store"`

	// GPRNumerator and GPRDivisor give the area of the general purpose
	// register file as floor(r0 * GPRNumerator / GPRDivisor).
	// Default: 6597 / 16.
	GPRNumerator int64 `json:"gpr_numerator"`
	GPRDivisor   int64 `json:"gpr_divisor"`

	// BranchRegNumerator and BranchRegDivisor give the area of the branch
	// register file as floor(b0 * BranchRegNumerator / BranchRegDivisor).
	// Default: 129 / 4.
	BranchRegNumerator int64 `json:"branch_reg_numerator"`
	BranchRegDivisor   int64 `json:"branch_reg_divisor"`

	// Connection is the area of one 32-bit data cache connection, charged
	// per load, store and prefetch port. Default: 1000.
	Connection int64 `json:"connection"`
}

// DefaultConfig returns the reference area weights.
func DefaultConfig() *Config {
	return &Config{
		ALU:                3273,
		Multiplier:         40614,
		LoadStore:          1500,
		GPRNumerator:       6597,
		GPRDivisor:         16,
		BranchRegNumerator: 129,
		BranchRegDivisor:   4,
		Connection:         1000,
	}
}

// LoadConfig loads a Config from a JSON file. Weights missing from the
// file keep their default value.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read area config file: %w", err)
	}

	config := DefaultConfig()
	if err := json.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("failed to parse area config: %w", err)
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return config, nil
}

// SaveConfig writes a Config to a JSON file.
func (c *Config) SaveConfig(path string) error {
	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to serialize area config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write area config file: %w", err)
	}

	return nil
}

// Validate checks that no weight is negative and both divisors are > 0.
func (c *Config) Validate() error {
	if c.GPRDivisor <= 0 {
		return fmt.Errorf("gpr_divisor must be > 0")
	}
	if c.BranchRegDivisor <= 0 {
		return fmt.Errorf("branch_reg_divisor must be > 0")
	}
	if c.ALU < 0 || c.Multiplier < 0 || c.LoadStore < 0 || c.Connection < 0 {
		return fmt.Errorf("unit weights must be >= 0")
	}
	if c.GPRNumerator < 0 || c.BranchRegNumerator < 0 {
		return fmt.Errorf("register file weights must be >= 0")
	}
	return nil
}

// Clone returns a copy of the Config.
func (c *Config) Clone() *Config {
	clone := *c
	return &clone
}
