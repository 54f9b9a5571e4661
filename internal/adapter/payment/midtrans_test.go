package payment

import (
	"crypto/sha512"
	"encoding/hex"
	"testing"

	"github.com/stretchr/testify/assert"

	"fundmyfuture/internal/core/domain"
	"fundmyfuture/internal/core/port"
)

func TestSnapRequest(t *testing.T) {
	req := snapRequest("DON-1", domain.NewMoney(15050, "ZAR"), "")
	// minor units pass through untruncated
	assert.Equal(t, int64(15050), req.TransactionDetails.GrossAmt)
	assert.Equal(t, "DON-1", req.TransactionDetails.OrderID)
	assert.Equal(t, "Anonymous", req.CustomerDetail.FName)

	req = snapRequest("DON-2", domain.NewMoney(50, "ZAR"), "Thabo")
	assert.Equal(t, int64(50), req.TransactionDetails.GrossAmt)
	assert.Equal(t, "Thabo", req.CustomerDetail.FName)
}

func TestVerifyNotification(t *testing.T) {
	const serverKey = "SB-Mid-server-testkey"
	g := NewMidtransGateway(serverKey, false)

	n := port.PaymentNotification{
		OrderID:           "DON-123",
		TransactionStatus: "settlement",
		StatusCode:        "200",
		GrossAmount:       "150.00",
	}
	sum := sha512.Sum512([]byte(n.OrderID + n.StatusCode + n.GrossAmount + serverKey))
	n.SignatureKey = hex.EncodeToString(sum[:])

	t.Run("valid signature", func(t *testing.T) {
		assert.NoError(t, g.VerifyNotification(n))
	})

	t.Run("tampered amount", func(t *testing.T) {
		forged := n
		forged.GrossAmount = "1.00"
		assert.ErrorIs(t, g.VerifyNotification(forged), domain.ErrUnauthenticated)
	})

	t.Run("missing signature", func(t *testing.T) {
		forged := n
		forged.SignatureKey = ""
		assert.ErrorIs(t, g.VerifyNotification(forged), domain.ErrUnauthenticated)
	})

	t.Run("wrong server key", func(t *testing.T) {
		other := NewMidtransGateway("SB-Mid-server-otherkey", false)
		assert.ErrorIs(t, other.VerifyNotification(n), domain.ErrUnauthenticated)
	})
}
