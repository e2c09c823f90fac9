// Package space describes the VLIW design space explored by vexdse: the nine
// resource parameters, the integer range each one sweeps, and the
// enumeration of every design-space point in the product of those ranges.
package space

import (
	"errors"
	"fmt"
	"strings"
)

// Param identifies one architectural resource parameter. The declaration
// order is significant: it is the column order of every emitted tuple and
// the nesting order of the enumeration (IssueWidth outermost, B0 innermost).
type Param int

// The nine resource parameters in declaration order.
const (
	// IssueWidth is the number of syllables issued per cycle.
	IssueWidth Param = iota
	// MemLoad is the number of 32-bit load connections to the data cache.
	MemLoad
	// MemStore is the number of 32-bit store connections to the data cache.
	MemStore
	// MemPft is the number of 32-bit prefetch connections to the data cache.
	MemPft
	// Alu is the number of ALU syllables executed per cycle.
	Alu
	// Mpy is the number of multiply syllables executed per cycle.
	Mpy
	// Memory is the number of memory syllables executed per cycle.
	Memory
	// R0 is the number of 32-bit general purpose registers.
	R0
	// B0 is the number of single-bit branch registers.
	B0

	// NumParams is the number of resource parameters.
	NumParams
)

var paramNames = [NumParams]string{
	"IssueWidth",
	"MemLoad",
	"MemStore",
	"MemPft",
	"Alu",
	"Mpy",
	"Memory",
	"R0",
	"B0",
}

// ErrInvalidRange is returned when a range has a negative bound or a
// non-positive step.
var ErrInvalidRange = errors.New("invalid parameter range")

// ErrDuplicateParam is returned when a range file names the same
// parameter twice, in any letter case.
var ErrDuplicateParam = errors.New("duplicate parameter")

// ErrUnknownParam is returned when a parameter name does not match any of
// the nine resource parameters.
var ErrUnknownParam = errors.New("unknown parameter")

// String returns the parameter name as used in range files and usage lines.
func (p Param) String() string {
	if p < 0 || p >= NumParams {
		return fmt.Sprintf("Param(%d)", int(p))
	}
	return paramNames[p]
}

// Params returns all parameters in declaration order.
func Params() []Param {
	params := make([]Param, NumParams)
	for i := range params {
		params[i] = Param(i)
	}
	return params
}

// ParseParam looks up a parameter by name, ignoring case.
func ParseParam(name string) (Param, error) {
	for i, n := range paramNames {
		if strings.EqualFold(n, name) {
			return Param(i), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownParam, name)
}

// ParameterRange is the arithmetic sequence Min, Min+Step, Min+2*Step, ...
// up to but excluding Max.
type ParameterRange struct {
	Min  int `json:"min" yaml:"min"`
	Step int `json:"step" yaml:"step"`
	Max  int `json:"max" yaml:"max"`
}

// Len returns the number of values in the range, ceil((Max-Min)/Step).
// A range with Min >= Max is empty, and so is an invalid one.
func (r ParameterRange) Len() int {
	if r.Step <= 0 || r.Min < 0 || r.Min >= r.Max {
		return 0
	}
	return (r.Max-r.Min-1)/r.Step + 1
}

// Values returns every value of the range in ascending order.
func (r ParameterRange) Values() []int {
	values := make([]int, 0, r.Len())
	for v, n := r.Min, r.Len(); len(values) < n; v += r.Step {
		values = append(values, v)
	}
	return values
}

// Validate checks the bounds are non-negative and the step is positive.
// An inverted range (Min >= Max) is valid and simply empty.
func (r ParameterRange) Validate() error {
	if r.Min < 0 || r.Max < 0 {
		return fmt.Errorf("%w: bounds must be >= 0 (min=%d, max=%d)",
			ErrInvalidRange, r.Min, r.Max)
	}
	if r.Step <= 0 {
		return fmt.Errorf("%w: step must be > 0 (step=%d)", ErrInvalidRange, r.Step)
	}
	return nil
}

// Ranges is the full range table, one ParameterRange per Param.
type Ranges [NumParams]ParameterRange

// DefaultRanges returns the range table of the reference exploration.
func DefaultRanges() Ranges {
	return Ranges{
		IssueWidth: {Min: 2, Step: 2, Max: 32},
		MemLoad:    {Min: 2, Step: 2, Max: 8},
		MemStore:   {Min: 2, Step: 2, Max: 8},
		MemPft:     {Min: 2, Step: 2, Max: 8},
		Alu:        {Min: 2, Step: 2, Max: 8},
		Mpy:        {Min: 2, Step: 2, Max: 8},
		Memory:     {Min: 2, Step: 2, Max: 8},
		R0:         {Min: 32, Step: 32, Max: 256},
		B0:         {Min: 2, Step: 4, Max: 32},
	}
}

// Validate checks every range in the table and names the first offending
// parameter.
func (r Ranges) Validate() error {
	for i, pr := range r {
		if err := pr.Validate(); err != nil {
			return fmt.Errorf("%s: %w", Param(i), err)
		}
	}
	return nil
}

// Empty reports whether any range contributes zero values, which makes the
// whole product empty.
func (r Ranges) Empty() bool {
	for _, pr := range r {
		if pr.Len() == 0 {
			return true
		}
	}
	return false
}

// Count returns the number of points in the product of all ranges.
func (r Ranges) Count() int {
	if r.Empty() {
		return 0
	}
	count := 1
	for _, pr := range r {
		count *= pr.Len()
	}
	return count
}
