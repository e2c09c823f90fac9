// Package area provides the closed-form silicon area model of a VLIW core
// configuration.
//
// The estimate is a weighted sum over the functional units and register
// files of a design-space point:
//
//	area = ALU*alu + Multiplier*mpy + LoadStore*1
//	     + floor(r0*GPRNumerator/GPRDivisor)
//	     + floor(b0*BranchRegNumerator/BranchRegDivisor)
//	     + Connection*(memLoad + memStore + memPft)
//
// Issue width and memory syllable count do not contribute to the area.
package area

import (
	"errors"
	"fmt"
	"math"

	"github.com/sarchlab/vexdse/space"
)

// loadStoreUnits is the number of combined load/store units in every
// configuration. It is independent of the connection counts.
const loadStoreUnits = 1

// ErrNegativeParameter is returned by Validate for a point with a negative
// field.
var ErrNegativeParameter = errors.New("negative parameter")

// Model evaluates the area of design-space points.
type Model struct {
	config *Config
}

// NewModel creates a model with the reference weights.
func NewModel() *Model {
	return &Model{
		config: DefaultConfig(),
	}
}

// NewModelWithConfig creates a model with custom weights.
func NewModelWithConfig(config *Config) *Model {
	return &Model{
		config: config,
	}
}

// Config returns the weights of the model.
func (m *Model) Config() *Config {
	return m.config
}

// Validate rejects points the model is not defined for.
func (m *Model) Validate(p space.Point) error {
	for i, v := range p {
		if v < 0 {
			return fmt.Errorf("%w: %s=%d", ErrNegativeParameter, space.Param(i), v)
		}
	}
	return nil
}

// Estimate returns the unrounded area of p. The register file terms use
// truncating integer division.
func (m *Model) Estimate(p space.Point) float64 {
	return m.Breakdown(p).Total()
}

// Breakdown is the per-resource contribution to an area estimate.
type Breakdown struct {
	ALU        float64
	Multiplier float64
	LoadStore  float64
	GPR        float64
	BranchReg  float64
	Connection float64
}

// Total returns the sum of all contributions.
func (b Breakdown) Total() float64 {
	return b.ALU + b.Multiplier + b.LoadStore + b.GPR + b.BranchReg + b.Connection
}

// Breakdown returns the contribution of each resource to Estimate(p).
func (m *Model) Breakdown(p space.Point) Breakdown {
	c := m.config
	return Breakdown{
		ALU:        float64(c.ALU * int64(p.Alu())),
		Multiplier: float64(c.Multiplier * int64(p.Mpy())),
		LoadStore:  float64(c.LoadStore * loadStoreUnits),
		GPR:        float64(int64(p.R0()) * c.GPRNumerator / c.GPRDivisor),
		BranchReg:  float64(int64(p.B0()) * c.BranchRegNumerator / c.BranchRegDivisor),
		Connection: float64(c.Connection * int64(p.MemLoad()+p.MemStore()+p.MemPft())),
	}
}

// Report rounds an estimate up to the integer used for display.
func Report(estimate float64) int {
	return int(math.Ceil(estimate))
}

// Estimate evaluates p with the reference weights.
func Estimate(p space.Point) float64 {
	return NewModel().Estimate(p)
}
