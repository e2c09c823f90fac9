// Package record formats the machine configuration record consumed by the
// VEX simulator for one design-space point.
//
// The record has four kinds of lines: RES (resources), REG (register
// files), DEL (operation delays) and CFG (simulator flags). Only the RES
// and REG lines depend on the point; DEL and CFG lines are fixed.
package record

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/sarchlab/vexdse/space"
)

// Usage is the argument synopsis printed when the formatter is called with
// the wrong number of values.
const Usage = "<IssueWidth> <MemLoad> <MemStore> <MemPft> <Alu> <Mpy> <Memory> <R0> <B0>"

// ErrArgCount is returned when the number of fields is not space.NumParams.
var ErrArgCount = errors.New("wrong number of configuration values")

// line is one record line. A line with a param takes its value from the
// point; the others carry a fixed value.
type line struct {
	kind  string
	name  string
	param space.Param
	fixed string
}

const noParam space.Param = -1

func res(name string, p space.Param) line { return line{kind: "RES:", name: name, param: p} }
func reg(name string, p space.Param) line { return line{kind: "REG:", name: name, param: p} }
func fixed(kind, name, value string) line { return line{kind: kind, name: name, param: noParam, fixed: value} }
func comment(name, value string) line { return fixed("#", name, value) }
func del(name, value string) line { return fixed("DEL:", name, value) }
func cfg(name, value string) line { return fixed("CFG:", name, value) }

// layout is the record in output order. IssueWidth feeds both the global
// and the cluster 0 issue width.
var layout = []line{
	res("IssueWidth", space.IssueWidth),
	res("MemLoad", space.MemLoad),
	res("MemStore", space.MemStore),
	res("MemPft", space.MemPft),
	comment("***Clusters***", "1"),
	res("IssueWidth.0", space.IssueWidth),
	res("Alu.0", space.Alu),
	res("Mpy.0", space.Mpy),
	res("Memory.0", space.Memory),
	fixed("RES:", "CopySrc.0", "0"),
	fixed("RES:", "CopyDst.0", "0"),
	reg("$r0", space.R0),
	reg("$b0", space.B0),
	del("AluR.0", "0"),
	del("Alu.0", "0"),
	del("CmpBr.0", "0"),
	del("CmpGr.0", "0"),
	del("Select.0", "0"),
	del("Multiply.0", "1"),
	del("Load.0", "1"),
	del("LoadLr.0", "1"),
	del("Store.0", "0"),
	del("Pft.0", "0"),
	del("CpGrBr.0", "0"),
	del("CpBrGr.0", "0"),
	del("CpGrLr.0", "0"),
	del("CpLrGr.0", "0"),
	del("Spill.0", "0"),
	del("Restore.0", "1"),
	del("RestoreLr.0", "1"),
	cfg("Quit", "0"),
	cfg("Warn", "0"),
	cfg("Debug", "0"),
}

// Format returns the record for the given field values, one per
// space.Param in declaration order. Values are copied verbatim.
func Format(fields []string) (string, error) {
	if len(fields) != int(space.NumParams) {
		return "", fmt.Errorf("%w: got %d, want %d", ErrArgCount, len(fields), space.NumParams)
	}

	var sb strings.Builder
	for _, l := range layout {
		value := l.fixed
		if l.param != noParam {
			value = fields[l.param]
		}
		// The kind and name share a fixed 19-column prefix.
		prefix := l.kind + " " + l.name
		fmt.Fprintf(&sb, "%-19s %s\n", prefix, value)
	}
	return sb.String(), nil
}

// Write formats the record and writes it to w. Nothing is written if the
// field count is wrong.
func Write(w io.Writer, fields []string) error {
	rec, err := Format(fields)
	if err != nil {
		return err
	}

	_, err = io.WriteString(w, rec)
	return err
}

// FromPoint returns the record of a design-space point.
func FromPoint(p space.Point) string {
	// A Point always has NumParams fields, so Format cannot fail.
	rec, _ := Format(p.Fields())
	return rec
}
