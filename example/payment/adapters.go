package payment

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	jsoniter "github.com/json-iterator/go"
)

// ErrGatewayProtocol is joined onto the cause when a vendor answer cannot be interpreted.
var ErrGatewayProtocol = errors.New("unexpected answer from payment gateway")

// LegacyPayAdapter implements Processor for the LegacyPay JSON API.
//
// It translates cents into the vendor's decimal-string amounts, wraps the
// request into the vendor's JSON body, and maps the vendor's status codes onto
// the package's error vocabulary.
type LegacyPayAdapter struct {
	client *LegacyPayClient
}

// NewLegacyPayAdapter creates a new LegacyPay adapter.
func NewLegacyPayAdapter(client *LegacyPayClient) *LegacyPayAdapter {
	return &LegacyPayAdapter{client: client}
}

// Charge submits the payment to LegacyPay and translates the result.
func (a *LegacyPayAdapter) Charge(ctx context.Context, payment Payment) (Receipt, error) {
	if payment.AmountCents <= 0 {
		return Receipt{}, ErrInvalidAmount
	}

	requestJSON, marshalErr := jsoniter.ConfigFastest.Marshal(LegacyPayRequest{
		Reference: payment.MerchantRef,
		Amount:    formatAmountDecimal(payment.AmountCents),
		Currency:  payment.Currency,
	})
	if marshalErr != nil {
		return Receipt{}, errors.Join(ErrGatewayProtocol, marshalErr)
	}

	responseJSON, submitErr := a.client.SubmitPayment(ctx, requestJSON)
	if submitErr != nil {
		return Receipt{}, errors.Join(ErrGatewayUnavailable, submitErr)
	}

	response := LegacyPayResponse{}
	if unmarshalErr := jsoniter.ConfigFastest.Unmarshal(responseJSON, &response); unmarshalErr != nil {
		return Receipt{}, errors.Join(ErrGatewayProtocol, unmarshalErr)
	}

	switch response.Code {
	case legacyPayCodeOK:
		return buildReceipt(response.PaymentID, payment), nil

	case legacyPayCodeDeclined:
		return Receipt{}, ErrPaymentDeclined

	case legacyPayCodeUnavailable:
		return Receipt{}, ErrGatewayUnavailable

	default:
		return Receipt{}, fmt.Errorf("%w: status code %q", ErrGatewayProtocol, response.Code)
	}
}

// SwiftChargeAdapter implements Processor for the SwiftCharge reserve/capture API.
//
// It folds the vendor's two-call shape into the single Charge the Processor
// contract promises and maps the vendor errors onto the package's error vocabulary.
type SwiftChargeAdapter struct {
	client *SwiftChargeClient
}

// NewSwiftChargeAdapter creates a new SwiftCharge adapter.
func NewSwiftChargeAdapter(client *SwiftChargeClient) *SwiftChargeAdapter {
	return &SwiftChargeAdapter{client: client}
}

// Charge reserves and captures the payment at SwiftCharge and translates the result.
func (a *SwiftChargeAdapter) Charge(ctx context.Context, payment Payment) (Receipt, error) {
	if payment.AmountCents <= 0 {
		return Receipt{}, ErrInvalidAmount
	}

	reservationID, reserveErr := a.client.Reserve(ctx, payment.MerchantRef, payment.AmountCents, payment.Currency)
	if reserveErr != nil {
		return Receipt{}, translateSwiftChargeError(reserveErr)
	}

	captureID, captureErr := a.client.Capture(ctx, reservationID)
	if captureErr != nil {
		return Receipt{}, translateSwiftChargeError(captureErr)
	}

	return buildReceipt(captureID, payment), nil
}

// translateSwiftChargeError maps the vendor's error vocabulary onto the package's.
func translateSwiftChargeError(vendorErr error) error {
	switch {
	case errors.Is(vendorErr, ErrSwiftChargeDeclined):
		return errors.Join(ErrPaymentDeclined, vendorErr)

	case errors.Is(vendorErr, ErrSwiftChargeUnavailable):
		return errors.Join(ErrGatewayUnavailable, vendorErr)

	default:
		return errors.Join(ErrGatewayProtocol, vendorErr)
	}
}

// buildReceipt creates the uniform Receipt with a fresh receipt ID.
func buildReceipt(gatewayReference string, payment Payment) Receipt {
	return Receipt{
		ReceiptID:        uuid.New().String(),
		GatewayReference: gatewayReference,
		AmountCents:      payment.AmountCents,
		Currency:         payment.Currency,
	}
}

// formatAmountDecimal converts cents into the decimal-string amount LegacyPay expects.
func formatAmountDecimal(amountCents int64) string {
	return fmt.Sprintf("%d.%02d", amountCents/100, amountCents%100)
}
