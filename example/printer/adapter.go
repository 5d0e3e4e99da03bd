package printer

import (
	"fmt"
)

// LinePrinterAdapter implements Printer on top of the legacy line printer.
//
// It wraps lines to the legacy carriage width before handing them over, so
// a device with a usable carriage width never answers StatusLineTooLong, and
// translates the remaining status codes into errors. A device reporting a
// non-positive carriage width gets the lines unwrapped and its rejection is
// surfaced as ErrPrinterFailure.
type LinePrinterAdapter struct {
	legacy *LegacyLinePrinter
}

// NewLinePrinterAdapter creates an adapter around the given legacy printer.
func NewLinePrinterAdapter(legacy *LegacyLinePrinter) *LinePrinterAdapter {
	return &LinePrinterAdapter{legacy: legacy}
}

// PrintPage prints the title and the wrapped body lines, ending with a form feed.
func (a *LinePrinterAdapter) PrintPage(page Page) error {
	for _, line := range a.layoutPage(page) {
		if err := translateStatus(a.legacy.PrintLine(line)); err != nil {
			return err
		}
	}

	return translateStatus(a.legacy.FormFeed())
}

// layoutPage renders the page into carriage-width lines.
func (a *LinePrinterAdapter) layoutPage(page Page) []string {
	lines := wrapLine(page.Title, a.legacy.carriageWidth)

	for _, line := range page.Lines {
		lines = append(lines, wrapLine(line, a.legacy.carriageWidth)...)
	}

	return lines
}

// wrapLine splits a line into chunks of at most width runes.
// An empty line still occupies one printed line.
// A non-positive width disables wrapping and leaves the line for the
// legacy device to reject.
func wrapLine(line string, width int) []string {
	runes := []rune(line)

	if len(runes) == 0 {
		return []string{""}
	}

	if width <= 0 {
		return []string{line}
	}

	var wrapped []string

	for len(runes) > width {
		wrapped = append(wrapped, string(runes[:width]))
		runes = runes[width:]
	}

	return append(wrapped, string(runes))
}

// translateStatus maps the legacy status codes onto the package's error vocabulary.
func translateStatus(status int) error {
	switch status {
	case StatusOK:
		return nil

	case StatusOutOfPaper:
		return ErrOutOfPaper

	default:
		return fmt.Errorf("%w: status code %d", ErrPrinterFailure, status)
	}
}
