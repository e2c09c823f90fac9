package space

import (
	"strconv"
	"strings"
)

// Point is one design-space point: a value for every Param, indexed by
// Param.
type Point [NumParams]int

// Get returns the value of the given parameter.
func (p Point) Get(param Param) int {
	return p[param]
}

// IssueWidth returns the issue width of the point.
func (p Point) IssueWidth() int { return p[IssueWidth] }

// MemLoad returns the load connection count of the point.
func (p Point) MemLoad() int { return p[MemLoad] }

// MemStore returns the store connection count of the point.
func (p Point) MemStore() int { return p[MemStore] }

// MemPft returns the prefetch connection count of the point.
func (p Point) MemPft() int { return p[MemPft] }

// Alu returns the ALU count of the point.
func (p Point) Alu() int { return p[Alu] }

// Mpy returns the multiplier count of the point.
func (p Point) Mpy() int { return p[Mpy] }

// Memory returns the memory syllable count of the point.
func (p Point) Memory() int { return p[Memory] }

// R0 returns the general purpose register count of the point.
func (p Point) R0() int { return p[R0] }

// B0 returns the branch register count of the point.
func (p Point) B0() int { return p[B0] }

// Fields returns the values as decimal strings in declaration order.
func (p Point) Fields() []string {
	fields := make([]string, NumParams)
	for i, v := range p {
		fields[i] = strconv.Itoa(v)
	}
	return fields
}

// String formats the point as nine space-separated integers, the line
// format of an enumeration dump.
func (p Point) String() string {
	return strings.Join(p.Fields(), " ")
}

// AppendTo appends the String form of the point to b.
func (p Point) AppendTo(b []byte) []byte {
	for i, v := range p {
		if i > 0 {
			b = append(b, ' ')
		}
		b = strconv.AppendInt(b, int64(v), 10)
	}
	return b
}

// ParsePoint parses exactly NumParams decimal integers, in declaration
// order.
func ParsePoint(args []string) (Point, error) {
	var p Point
	if len(args) != int(NumParams) {
		return p, &ArgCountError{Got: len(args)}
	}
	for i, arg := range args {
		v, err := strconv.Atoi(arg)
		if err != nil {
			return p, &ParseError{Param: Param(i), Value: arg, Err: err}
		}
		p[i] = v
	}
	return p, nil
}

// ArgCountError reports a value list that does not have one entry per
// parameter.
type ArgCountError struct {
	Got int
}

func (e *ArgCountError) Error() string {
	return "expected " + strconv.Itoa(int(NumParams)) + " values, got " + strconv.Itoa(e.Got)
}

// ParseError reports a parameter value that is not a decimal integer.
type ParseError struct {
	Param Param
	Value string
	Err   error
}

func (e *ParseError) Error() string {
	return e.Param.String() + ": invalid value " + strconv.Quote(e.Value)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}
