package trace

import (
	"bufio"
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/Alia5/kanamatrix/matrix"
)

// ErrFrame is returned for a hex line that does not hold exactly one scan
// report.
var ErrFrame = errors.New("malformed scan frame")

// Source yields scan reports until io.EOF.
type Source interface {
	Next() (matrix.ScanReport, error)
}

// HexReader reads one scan report per line as 8 hex bytes, e.g.
// "02 00 31 00 00 00 00 00". Spaces are optional, blank lines and text after
// '#' are ignored.
type HexReader struct {
	sc   *bufio.Scanner
	line int
}

func NewHexReader(r io.Reader) *HexReader {
	return &HexReader{sc: bufio.NewScanner(r)}
}

func (h *HexReader) Next() (matrix.ScanReport, error) {
	var s matrix.ScanReport
	for h.sc.Scan() {
		h.line++
		text := h.sc.Text()
		if i := strings.IndexByte(text, '#'); i >= 0 {
			text = text[:i]
		}
		text = strings.Join(strings.Fields(text), "")
		if text == "" {
			continue
		}
		b, err := hex.DecodeString(text)
		if err != nil {
			return s, fmt.Errorf("line %d: %w: %w", h.line, ErrFrame, err)
		}
		if len(b) != len(s) {
			return s, fmt.Errorf("line %d: %w: %d bytes", h.line, ErrFrame, len(b))
		}
		copy(s[:], b)
		return s, nil
	}
	if err := h.sc.Err(); err != nil {
		return s, err
	}
	return s, io.EOF
}

// FrameReader reads raw 8-byte scan reports, as sent by the matrix scanner
// over a serial link.
type FrameReader struct {
	r io.Reader
}

func NewFrameReader(r io.Reader) *FrameReader {
	return &FrameReader{r: r}
}

// Next returns io.EOF at a frame boundary and io.ErrUnexpectedEOF for a
// truncated frame.
func (f *FrameReader) Next() (matrix.ScanReport, error) {
	var s matrix.ScanReport
	_, err := io.ReadFull(f.r, s[:])
	return s, err
}

// CycleSource replays the cycles of a trace file, expanding Repeat.
type CycleSource struct {
	cycles []Cycle
	i      int
	left   int
}

func NewCycleSource(cycles []Cycle) *CycleSource {
	return &CycleSource{cycles: cycles}
}

// NextCycle returns the next cycle with its encoded scan report.
func (c *CycleSource) NextCycle() (Cycle, matrix.ScanReport, error) {
	for c.i < len(c.cycles) {
		cy := c.cycles[c.i]
		if c.left <= 0 {
			c.left = max(cy.Repeat, 0) + 1
		}
		c.left--
		if c.left == 0 {
			c.i++
		}
		s, err := cy.ScanReport()
		return cy, s, err
	}
	return Cycle{}, matrix.ScanReport{}, io.EOF
}

func (c *CycleSource) Next() (matrix.ScanReport, error) {
	_, s, err := c.NextCycle()
	return s, err
}
