package printer

// Status codes of the legacy line printer API.
const (
	StatusOK          = 0
	StatusLineTooLong = 1
	StatusOutOfPaper  = 2
)

// LegacyLinePrinter simulates a vendor line-printer driver: one call per line,
// a fixed carriage width, integer status codes instead of errors.
type LegacyLinePrinter struct {
	carriageWidth  int
	paperLinesLeft int
	printed        []string
}

// NewLegacyLinePrinter creates a legacy printer with the given carriage width
// and amount of paper, counted in lines.
func NewLegacyLinePrinter(carriageWidth int, paperLines int) *LegacyLinePrinter {
	return &LegacyLinePrinter{
		carriageWidth:  carriageWidth,
		paperLinesLeft: paperLines,
	}
}

// PrintLine prints a single line and returns a status code.
func (p *LegacyLinePrinter) PrintLine(line string) int {
	if len([]rune(line)) > p.carriageWidth {
		return StatusLineTooLong
	}

	if p.paperLinesLeft <= 0 {
		return StatusOutOfPaper
	}

	p.printed = append(p.printed, line)
	p.paperLinesLeft--

	return StatusOK
}

// FormFeed ejects the current page and returns a status code.
func (p *LegacyLinePrinter) FormFeed() int {
	p.printed = append(p.printed, "\f")
	return StatusOK
}

// Printed returns everything the printer has put on paper, one element per line.
func (p *LegacyLinePrinter) Printed() []string {
	return p.printed
}
