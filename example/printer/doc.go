// Package printer demonstrates the Adapter pattern on a legacy device API.
//
// The legacy line printer speaks in per-line calls, a fixed carriage width,
// and integer status codes. LinePrinterAdapter presents it through the modern
// Printer interface: pages in, wrapped lines and translated errors out.
package printer
