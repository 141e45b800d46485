package utils

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"time"

	"lms/config"

	"github.com/go-resty/resty/v2"
)

// RazorpayOrder represents an order created at the gateway
type RazorpayOrder struct {
	ID       string `json:"id"`
	Amount   int64  `json:"amount"` // minor units (paise)
	Currency string `json:"currency"`
	Receipt  string `json:"receipt"`
	Status   string `json:"status"`
}

// razorpayError is the gateway's error envelope
type razorpayError struct {
	Error struct {
		Code        string `json:"code"`
		Description string `json:"description"`
	} `json:"error"`
}

// CreateRazorpayOrder creates an order at the gateway using basic auth over
// the given key pair. Amount is in paise. The order is not persisted locally;
// it exists only at the gateway until enrollment finalization.
func CreateRazorpayOrder(keyID, keySecret string, amountPaise int64, currency, receipt string) (*RazorpayOrder, error) {
	if keyID == "" || keySecret == "" {
		return nil, fmt.Errorf("payment credential is incomplete")
	}

	var order RazorpayOrder
	var gwErr razorpayError

	client := resty.New().
		SetBaseURL(config.AppConfig.RazorpayBaseURL).
		SetTimeout(15 * time.Second).
		SetBasicAuth(keyID, keySecret)

	resp, err := client.R().
		SetHeader("Content-Type", "application/json").
		SetBody(map[string]interface{}{
			"amount":   amountPaise,
			"currency": currency,
			"receipt":  receipt,
			"notes": map[string]string{
				"created_at": time.Now().UTC().Format(time.RFC3339),
			},
		}).
		SetResult(&order).
		SetError(&gwErr).
		Post("/v1/orders")
	if err != nil {
		return nil, fmt.Errorf("failed to reach payment gateway: %v", err)
	}

	if resp.IsError() {
		if gwErr.Error.Description != "" {
			return nil, fmt.Errorf("gateway error: %s", gwErr.Error.Description)
		}
		return nil, fmt.Errorf("gateway error: status %d", resp.StatusCode())
	}

	return &order, nil
}

// VerifyPaymentSignature checks the checkout callback signature:
// HMAC-SHA256 over "orderId|paymentId" keyed with the key secret.
func VerifyPaymentSignature(orderID, paymentID, signature, keySecret string) bool {
	if signature == "" || keySecret == "" {
		return false
	}
	mac := hmac.New(sha256.New, []byte(keySecret))
	mac.Write([]byte(orderID + "|" + paymentID))
	expected := hex.EncodeToString(mac.Sum(nil))
	return hmac.Equal([]byte(expected), []byte(signature))
}

// VerifyWebhookSignature checks the X-Razorpay-Signature header over the raw
// webhook body, keyed with the stored webhook secret.
func VerifyWebhookSignature(body []byte, signature, webhookSecret string) bool {
	if signature == "" || webhookSecret == "" {
		return false
	}
	mac := hmac.New(sha256.New, []byte(webhookSecret))
	mac.Write(body)
	expected := hex.EncodeToString(mac.Sum(nil))
	return hmac.Equal([]byte(expected), []byte(signature))
}
