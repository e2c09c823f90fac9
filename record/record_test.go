package record_test

import (
	"bytes"
	"errors"
	"strings"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/sarchlab/vexdse/record"
	"github.com/sarchlab/vexdse/space"
)

const referenceRecord = `RES: IssueWidth     4
RES: MemLoad        1
RES: MemStore       2
RES: MemPft         3
# ***Clusters***    1
RES: IssueWidth.0   4
RES: Alu.0          5
RES: Mpy.0          6
RES: Memory.0       7
RES: CopySrc.0      0
RES: CopyDst.0      0
REG: $r0            64
REG: $b0            8
DEL: AluR.0         0
DEL: Alu.0          0
DEL: CmpBr.0        0
DEL: CmpGr.0        0
DEL: Select.0       0
DEL: Multiply.0     1
DEL: Load.0         1
DEL: LoadLr.0       1
DEL: Store.0        0
DEL: Pft.0          0
DEL: CpGrBr.0       0
DEL: CpBrGr.0       0
DEL: CpGrLr.0       0
DEL: CpLrGr.0       0
DEL: Spill.0        0
DEL: Restore.0      1
DEL: RestoreLr.0    1
CFG: Quit           0
CFG: Warn           0
CFG: Debug          0
`

var _ = Describe("Record", func() {
	fields := []string{"4", "1", "2", "3", "5", "6", "7", "64", "8"}

	It("should format the full record", func() {
		rec, err := record.Format(fields)
		Expect(err).NotTo(HaveOccurred())
		Expect(rec).To(Equal(referenceRecord))
	})

	It("should reuse IssueWidth for cluster 0", func() {
		rec, err := record.Format([]string{"16", "1", "1", "1", "1", "1", "1", "1", "1"})
		Expect(err).NotTo(HaveOccurred())
		Expect(rec).To(ContainSubstring("RES: IssueWidth     16\n"))
		Expect(rec).To(ContainSubstring("RES: IssueWidth.0   16\n"))
	})

	It("should copy values verbatim", func() {
		rec, err := record.Format([]string{"a", "b", "c", "d", "e", "f", "g", "h", "i"})
		Expect(err).NotTo(HaveOccurred())
		Expect(rec).To(ContainSubstring("REG: $r0            h\n"))
		Expect(rec).To(ContainSubstring("REG: $b0            i\n"))
	})

	It("should keep DEL and CFG lines independent of the values", func() {
		constant := func(rec string) []string {
			var lines []string
			for _, l := range strings.Split(rec, "\n") {
				if strings.HasPrefix(l, "DEL:") || strings.HasPrefix(l, "CFG:") {
					lines = append(lines, l)
				}
			}
			return lines
		}

		a, err := record.Format(fields)
		Expect(err).NotTo(HaveOccurred())
		b, err := record.Format([]string{"9", "9", "9", "9", "9", "9", "9", "9", "9"})
		Expect(err).NotTo(HaveOccurred())
		Expect(constant(a)).To(HaveLen(20))
		Expect(constant(a)).To(Equal(constant(b)))
	})

	It("should reject the wrong number of values", func() {
		_, err := record.Format(fields[:8])
		Expect(errors.Is(err, record.ErrArgCount)).To(BeTrue())

		_, err = record.Format(append(fields, "1"))
		Expect(errors.Is(err, record.ErrArgCount)).To(BeTrue())
	})

	It("should write nothing on error", func() {
		var buf bytes.Buffer
		err := record.Write(&buf, fields[:3])
		Expect(err).To(HaveOccurred())
		Expect(buf.Len()).To(BeZero())
	})

	It("should write the record", func() {
		var buf bytes.Buffer
		Expect(record.Write(&buf, fields)).To(Succeed())
		Expect(buf.String()).To(Equal(referenceRecord))
	})

	It("should format a design-space point", func() {
		p := space.Point{4, 1, 2, 3, 5, 6, 7, 64, 8}
		Expect(record.FromPoint(p)).To(Equal(referenceRecord))
	})

	It("should match Format for any point", func() {
		p := space.Point{0, -1, 0, 0, 0, 0, 0, 0, -30}
		want, err := record.Format(p.Fields())
		Expect(err).NotTo(HaveOccurred())
		Expect(record.FromPoint(p)).To(Equal(want))
		Expect(want).To(ContainSubstring("REG: $b0            -30\n"))
	})
})
