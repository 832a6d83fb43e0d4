// Package razorpay wraps the Razorpay order API and the signature scheme
// used to verify checkout callbacks.
package razorpay

import (
	"crypto/hmac"
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"
	"fmt"

	razorpaygo "github.com/razorpay/razorpay-go"
)

// Gateway is the surface the payment service depends on. The fake used in
// tests implements the same interface.
type Gateway interface {
	CreateOrder(amountPaise int, currency, receipt string) (string, error)
	VerifySignature(orderID, paymentID, signature string) bool
}

type Client struct {
	api       *razorpaygo.Client
	keySecret string
}

func NewClient(keyID, keySecret string) *Client {
	return &Client{
		api:       razorpaygo.NewClient(keyID, keySecret),
		keySecret: keySecret,
	}
}

// CreateOrder opens a gateway order for the given amount in the currency's
// minor unit (paise for INR) and returns the order id.
func (c *Client) CreateOrder(amountPaise int, currency, receipt string) (string, error) {
	data := map[string]interface{}{
		"amount":          amountPaise,
		"currency":        currency,
		"receipt":         receipt,
		"payment_capture": 1,
	}
	order, err := c.api.Order.Create(data, nil)
	if err != nil {
		return "", fmt.Errorf("razorpay order create: %w", err)
	}
	id, ok := order["id"].(string)
	if !ok || id == "" {
		return "", fmt.Errorf("razorpay order create: missing order id in response")
	}
	return id, nil
}

// VerifySignature checks the checkout callback signature: HMAC-SHA256 of
// "order_id|payment_id" keyed with the API secret, hex encoded.
func (c *Client) VerifySignature(orderID, paymentID, signature string) bool {
	mac := hmac.New(sha256.New, []byte(c.keySecret))
	mac.Write([]byte(orderID + "|" + paymentID))
	expected := hex.EncodeToString(mac.Sum(nil))
	return subtle.ConstantTimeCompare([]byte(expected), []byte(signature)) == 1
}
