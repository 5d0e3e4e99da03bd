package payment

import (
	"context"
	"errors"
	"fmt"
)

const (
	// GatewayLegacyPay selects the adapter for the LegacyPay JSON API.
	GatewayLegacyPay = "legacypay"

	// GatewaySwiftCharge selects the adapter for the SwiftCharge reserve/capture API.
	GatewaySwiftCharge = "swiftcharge"
)

var (
	// ErrUnsupportedGateway is returned by NewProcessor for an unknown gateway name.
	ErrUnsupportedGateway = errors.New("unsupported payment gateway")

	// ErrInvalidAmount is returned for a charge with a zero or negative amount.
	ErrInvalidAmount = errors.New("charge amount must be positive")

	// ErrPaymentDeclined is returned when the gateway refuses the charge.
	// Declines are permanent for the given payment and must not be retried.
	ErrPaymentDeclined = errors.New("payment was declined by the gateway")

	// ErrGatewayUnavailable is returned for transient gateway outages.
	// Charges failing with it may be retried, see ChargeWithRetry.
	ErrGatewayUnavailable = errors.New("payment gateway is temporarily unavailable")
)

// Payment describes a charge request, with the amount in cents.
type Payment struct {
	MerchantRef string
	AmountCents int64
	Currency    string
}

// Receipt is the uniform result of a successful charge, independent of which
// gateway processed it.
type Receipt struct {
	ReceiptID        string
	GatewayReference string
	AmountCents      int64
	Currency         string
}

// Processor is the domain-facing interface checkout code charges payments through.
type Processor interface {
	Charge(ctx context.Context, payment Payment) (Receipt, error)
}

// NewProcessor creates the Processor for the given gateway name.
// Returns ErrUnsupportedGateway for a name no adapter exists for.
func NewProcessor(gatewayName string) (Processor, error) {
	switch gatewayName {
	case GatewayLegacyPay:
		return NewLegacyPayAdapter(NewLegacyPayClient()), nil

	case GatewaySwiftCharge:
		return NewSwiftChargeAdapter(NewSwiftChargeClient()), nil

	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedGateway, gatewayName)
	}
}
