package printer

import "errors"

var ErrOutOfPaper = errors.New("printer is out of paper")
var ErrPrinterFailure = errors.New("printer reported a failure")

// Page is a titled block of text lines, the unit of the modern printing API.
type Page struct {
	Title string
	Lines []string
}

// Printer is the modern interface client code prints pages through.
type Printer interface {
	PrintPage(page Page) error
}
