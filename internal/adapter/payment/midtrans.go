package payment

import (
	"context"
	"crypto/sha512"
	"crypto/subtle"
	"encoding/hex"
	"fmt"

	"github.com/midtrans/midtrans-go"
	"github.com/midtrans/midtrans-go/snap"

	"fundmyfuture/internal/core/domain"
	"fundmyfuture/internal/core/port"
)

// MidtransGateway implements port.PaymentGateway against the Midtrans
// Snap API. Checkout sessions redirect the funder to a hosted payment
// page; confirmations arrive through the signed webhook.
type MidtransGateway struct {
	client    snap.Client
	serverKey string
}

// NewMidtransGateway builds a gateway for the given server key.
// Production selects the live Midtrans environment, otherwise sandbox.
func NewMidtransGateway(serverKey string, production bool) *MidtransGateway {
	env := midtrans.Sandbox
	if production {
		env = midtrans.Production
	}
	var c snap.Client
	c.New(serverKey, env)
	return &MidtransGateway{client: c, serverKey: serverKey}
}

// snapRequest builds the checkout request. The gross amount carries the
// ledger's minor units unchanged so the gateway charge and the applied
// donation can never disagree.
func snapRequest(orderID string, amount domain.Money, donorName string) *snap.Request {
	if donorName == "" {
		donorName = "Anonymous"
	}
	return &snap.Request{
		TransactionDetails: midtrans.TransactionDetails{
			OrderID:  orderID,
			GrossAmt: amount.Cents,
		},
		CustomerDetail: &midtrans.CustomerDetails{
			FName: donorName,
		},
	}
}

// CreateCheckout opens a Snap session and returns the redirect URL.
func (g *MidtransGateway) CreateCheckout(ctx context.Context, orderID string, amount domain.Money, donorName string) (string, error) {
	resp, mErr := g.client.CreateTransaction(snapRequest(orderID, amount, donorName))
	if resp == nil {
		return "", fmt.Errorf("create checkout for %s: %v", orderID, mErr)
	}
	// A non-nil response alongside a non-nil error still carries a
	// usable redirect URL.
	return resp.RedirectURL, nil
}

// VerifyNotification authenticates a webhook payload by recomputing
// sha512(order_id + status_code + gross_amount + server_key) and
// comparing it in constant time against the delivered signature.
func (g *MidtransGateway) VerifyNotification(n port.PaymentNotification) error {
	sum := sha512.Sum512([]byte(n.OrderID + n.StatusCode + n.GrossAmount + g.serverKey))
	want := hex.EncodeToString(sum[:])
	if subtle.ConstantTimeCompare([]byte(want), []byte(n.SignatureKey)) != 1 {
		return fmt.Errorf("%w: signature mismatch for order %s", domain.ErrUnauthenticated, n.OrderID)
	}
	return nil
}
