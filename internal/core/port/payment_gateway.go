package port

import (
	"context"

	"fundmyfuture/internal/core/domain"
)

// PaymentGateway abstracts the hosted payment processor. The ledger only
// opens checkout sessions and authenticates incoming notifications; card
// handling and retry delivery belong to the provider.
type PaymentGateway interface {
	// CreateCheckout opens a payment session for the given order and
	// returns the URL the funder is redirected to.
	CreateCheckout(ctx context.Context, orderID string, amount domain.Money, donorName string) (string, error)
	// VerifyNotification authenticates a webhook payload by its
	// signature. Returns domain.ErrUnauthenticated on mismatch.
	VerifyNotification(n PaymentNotification) error
}

// PaymentNotification is the provider event delivered to the webhook.
// Field names follow the gateway's JSON payload.
type PaymentNotification struct {
	OrderID           string `json:"order_id"`
	TransactionID     string `json:"transaction_id"`
	TransactionStatus string `json:"transaction_status"`
	StatusCode        string `json:"status_code"`
	GrossAmount       string `json:"gross_amount"`
	SignatureKey      string `json:"signature_key"`
}

// Settled reports whether the event confirms payment.
func (n PaymentNotification) Settled() bool {
	return n.TransactionStatus == "settlement" || n.TransactionStatus == "capture"
}

// Failed reports whether the event terminally failed the payment.
func (n PaymentNotification) Failed() bool {
	switch n.TransactionStatus {
	case "deny", "cancel", "expire", "failure":
		return true
	}
	return false
}
