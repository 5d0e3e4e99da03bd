package payment

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"sync"
)

// The types in this file simulate the two vendor client libraries the adapters
// wrap. They stand in for real gateway SDKs, which is why their APIs clash
// with the Processor contract on purpose: that clash is what the adapters are
// for.

const (
	legacyPayCodeOK          = "OK"
	legacyPayCodeDeclined    = "DECLINED"
	legacyPayCodeUnavailable = "UNAVAILABLE"

	defaultDeclineOverCents = 5_000_00
)

// LegacyPayRequest is the JSON body the LegacyPay API expects.
// Amounts are decimal strings like "12.34".
type LegacyPayRequest struct {
	Reference string `json:"reference"`
	Amount    string `json:"amount"`
	Currency  string `json:"currency"`
}

// LegacyPayResponse is the JSON body the LegacyPay API answers with.
type LegacyPayResponse struct {
	Code      string `json:"code"`
	Reference string `json:"reference"`
	PaymentID string `json:"payment_id"`
}

// LegacyPayClient simulates the LegacyPay vendor client: one JSON-in, JSON-out
// call, decimal-string amounts, outcomes reported as status codes instead of errors.
type LegacyPayClient struct {
	mu               sync.Mutex
	declineOverCents int64
	outageCallsLeft  int
	paymentSeq       int
}

// NewLegacyPayClient creates a LegacyPayClient with the default decline limit.
func NewLegacyPayClient() *LegacyPayClient {
	return &LegacyPayClient{declineOverCents: defaultDeclineOverCents}
}

// SimulateOutage makes the next calls answer with the UNAVAILABLE status code.
func (c *LegacyPayClient) SimulateOutage(calls int) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.outageCallsLeft = calls
}

// SubmitPayment takes the request as a JSON body and returns the response as a JSON body.
func (c *LegacyPayClient) SubmitPayment(ctx context.Context, requestJSON []byte) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	request := LegacyPayRequest{}
	if err := json.Unmarshal(requestJSON, &request); err != nil {
		return nil, err
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	response := LegacyPayResponse{Reference: request.Reference}

	switch {
	case c.outageCallsLeft > 0:
		c.outageCallsLeft--
		response.Code = legacyPayCodeUnavailable

	case c.parseAmountCents(request.Amount) > c.declineOverCents:
		response.Code = legacyPayCodeDeclined

	default:
		c.paymentSeq++
		response.Code = legacyPayCodeOK
		response.PaymentID = fmt.Sprintf("LP-%06d", c.paymentSeq)
	}

	return json.Marshal(response)
}

// parseAmountCents converts the vendor's decimal-string amount back to cents.
// Unparsable amounts are treated as over-limit, which the real vendor declines as well.
func (c *LegacyPayClient) parseAmountCents(amount string) int64 {
	whole, fraction, found := strings.Cut(amount, ".")
	if !found || len(fraction) != 2 {
		return c.declineOverCents + 1
	}

	wholeValue, wholeErr := strconv.ParseInt(whole, 10, 64)
	fractionValue, fractionErr := strconv.ParseInt(fraction, 10, 64)

	if wholeErr != nil || fractionErr != nil || wholeValue < 0 || fractionValue < 0 {
		return c.declineOverCents + 1
	}

	return wholeValue*100 + fractionValue
}

var (
	// ErrSwiftChargeDeclined is the SwiftCharge vendor error for refused reservations.
	ErrSwiftChargeDeclined = errors.New("swiftcharge: card_declined")

	// ErrSwiftChargeUnavailable is the SwiftCharge vendor error during maintenance windows.
	ErrSwiftChargeUnavailable = errors.New("swiftcharge: service_unavailable")

	// ErrSwiftChargeUnknownReservation is the SwiftCharge vendor error for captures
	// referencing no open reservation.
	ErrSwiftChargeUnknownReservation = errors.New("swiftcharge: unknown_reservation")
)

// SwiftChargeClient simulates the SwiftCharge vendor client: amounts in minor
// units, but a charge takes two calls, a reservation followed by a capture.
type SwiftChargeClient struct {
	mu                    sync.Mutex
	declineOverMinorUnits int64
	outageCallsLeft       int
	reservationSeq        int
	captureSeq            int
	openReservations      map[string]bool
}

// NewSwiftChargeClient creates a SwiftChargeClient with the default decline limit.
func NewSwiftChargeClient() *SwiftChargeClient {
	return &SwiftChargeClient{
		declineOverMinorUnits: defaultDeclineOverCents,
		openReservations:      make(map[string]bool),
	}
}

// SimulateOutage makes the next calls fail with ErrSwiftChargeUnavailable.
func (c *SwiftChargeClient) SimulateOutage(calls int) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.outageCallsLeft = calls
}

// Reserve places a hold for the given amount and returns the reservation ID.
func (c *SwiftChargeClient) Reserve(ctx context.Context, merchantRef string, minorUnits int64, currency string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if c.outageCallsLeft > 0 {
		c.outageCallsLeft--
		return "", ErrSwiftChargeUnavailable
	}

	if minorUnits > c.declineOverMinorUnits {
		return "", ErrSwiftChargeDeclined
	}

	c.reservationSeq++
	reservationID := fmt.Sprintf("RES-%06d", c.reservationSeq)
	c.openReservations[reservationID] = true

	return reservationID, nil
}

// Capture settles a previous reservation and returns the capture ID.
func (c *SwiftChargeClient) Capture(ctx context.Context, reservationID string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if c.outageCallsLeft > 0 {
		c.outageCallsLeft--
		return "", ErrSwiftChargeUnavailable
	}

	if !c.openReservations[reservationID] {
		return "", ErrSwiftChargeUnknownReservation
	}

	delete(c.openReservations, reservationID)
	c.captureSeq++

	return fmt.Sprintf("CAP-%06d", c.captureSeq), nil
}
