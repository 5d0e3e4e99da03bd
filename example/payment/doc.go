// Package payment demonstrates the Adapter pattern on payment gateways.
//
// The checkout code is written against the Processor interface and amounts in
// cents. The two simulated vendor clients disagree with that contract and with
// each other: LegacyPay wants a JSON body with decimal-string amounts and
// answers with status codes, SwiftCharge wants minor units split across a
// reserve/capture call pair. One adapter per vendor translates the call shape,
// the units, and the error vocabulary, so checkout never sees a vendor type.
//
// NewProcessor is the factory the article builds up to: it returns the adapter
// for a known gateway name and ErrUnsupportedGateway for anything else.
package payment
