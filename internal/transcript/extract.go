package transcript

import (
	"bytes"
	"fmt"
	"regexp"
	"strings"

	"github.com/ledongthuc/pdf"
)

// Boilerplate the gradesheet template prints on every page. Matched against
// trimmed cells, exact except for the page footer.
var boilerplate = map[string]struct{}{
	"BRAC University":                         {},
	"Kha 224, Bir Uttam Rafiqul Islam Avenue": {},
	"Merul Badda, Dhaka 1212.":                {},
	"GRADE SHEET":                             {},
	"UNOFFICIAL COPY":                         {},
	"UNDERGRADUATE PROGRAM":                   {},
}

var pageFooterRx = regexp.MustCompile(`^Page \d+ of \d+$`)

// Column gutters on the template are over an em wide; spacing between the
// runs of a single cell stays well under one.
const cellGapEm = 1.0

// extractLines pulls the text layer of a PDF into reading order: rows top to
// bottom, cells left to right, one trimmed non-boilerplate line per cell.
func extractLines(data []byte) (lines []string, err error) {
	// The pdf library panics on some malformed content streams.
	defer func() {
		if r := recover(); r != nil {
			lines = nil
			err = fmt.Errorf("malformed pdf content: %v", r)
		}
	}()

	r, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return nil, fmt.Errorf("open pdf: %w", err)
	}

	for i := 1; i <= r.NumPage(); i++ {
		p := r.Page(i)
		if p.V.IsNull() {
			continue
		}
		rows, err := p.GetTextByRow()
		if err != nil {
			// A page without a readable text layer is skipped, not fatal.
			continue
		}
		for _, row := range rows {
			for _, cell := range splitCells(row.Content) {
				if line := cleanLine(cell); line != "" {
					lines = append(lines, line)
				}
			}
		}
	}
	return lines, nil
}

// splitCells merges horizontally-contiguous text runs of one row into cells
// and returns the cell strings left to right.
func splitCells(runs []pdf.Text) []string {
	var cells []string
	var b strings.Builder
	for idx, t := range runs {
		if idx > 0 {
			prev := runs[idx-1]
			em := prev.FontSize
			if em <= 0 {
				em = 10
			}
			gap := t.X - (prev.X + prev.W)
			switch {
			case gap > cellGapEm*em:
				cells = append(cells, b.String())
				b.Reset()
			case gap > 0.2*em:
				b.WriteByte(' ')
			}
		}
		b.WriteString(t.S)
	}
	if b.Len() > 0 {
		cells = append(cells, b.String())
	}
	return cells
}

func cleanLine(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return ""
	}
	if _, drop := boilerplate[s]; drop {
		return ""
	}
	if pageFooterRx.MatchString(s) {
		return ""
	}
	return s
}
