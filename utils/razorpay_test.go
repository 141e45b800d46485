package utils

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"lms/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateRazorpayOrder(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/v1/orders", r.URL.Path)
		require.Equal(t, http.MethodPost, r.Method)

		user, pass, ok := r.BasicAuth()
		require.True(t, ok)
		require.Equal(t, "key_test", user)
		require.Equal(t, "secret_test", pass)

		var body map[string]interface{}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		require.Equal(t, float64(50000), body["amount"])
		require.Equal(t, "INR", body["currency"])

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]interface{}{
			"id":       "order_ABC123",
			"amount":   50000,
			"currency": "INR",
			"receipt":  body["receipt"],
			"status":   "created",
		})
	}))
	defer srv.Close()

	config.AppConfig = &config.Config{RazorpayBaseURL: srv.URL}

	order, err := CreateRazorpayOrder("key_test", "secret_test", 50000, "INR", "rcpt_1")
	require.NoError(t, err)
	assert.Equal(t, "order_ABC123", order.ID)
	assert.Equal(t, int64(50000), order.Amount)
	assert.Equal(t, "rcpt_1", order.Receipt)
}

func TestCreateRazorpayOrderGatewayError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadRequest)
		json.NewEncoder(w).Encode(map[string]interface{}{
			"error": map[string]string{
				"code":        "BAD_REQUEST_ERROR",
				"description": "Authentication failed",
			},
		})
	}))
	defer srv.Close()

	config.AppConfig = &config.Config{RazorpayBaseURL: srv.URL}

	_, err := CreateRazorpayOrder("key_test", "wrong_secret", 50000, "INR", "rcpt_1")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Authentication failed")
}

func TestCreateRazorpayOrderIncompleteCredential(t *testing.T) {
	_, err := CreateRazorpayOrder("", "secret", 100, "INR", "rcpt_1")
	require.Error(t, err)

	_, err = CreateRazorpayOrder("key", "", 100, "INR", "rcpt_1")
	require.Error(t, err)
}

func sign(payload, secret string) string {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write([]byte(payload))
	return hex.EncodeToString(mac.Sum(nil))
}

func TestVerifyPaymentSignature(t *testing.T) {
	secret := "secret_test"
	valid := sign("order_1|pay_1", secret)

	tests := []struct {
		name      string
		orderID   string
		paymentID string
		signature string
		want      bool
	}{
		{name: "valid signature", orderID: "order_1", paymentID: "pay_1", signature: valid, want: true},
		{name: "wrong order", orderID: "order_2", paymentID: "pay_1", signature: valid, want: false},
		{name: "wrong payment", orderID: "order_1", paymentID: "pay_2", signature: valid, want: false},
		{name: "empty signature", orderID: "order_1", paymentID: "pay_1", signature: "", want: false},
		{name: "garbage signature", orderID: "order_1", paymentID: "pay_1", signature: "nope", want: false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := VerifyPaymentSignature(tt.orderID, tt.paymentID, tt.signature, secret)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestVerifyWebhookSignature(t *testing.T) {
	secret := "whsec_test"
	body := []byte(`{"event":"payment.captured"}`)
	valid := sign(string(body), secret)

	assert.True(t, VerifyWebhookSignature(body, valid, secret))
	assert.False(t, VerifyWebhookSignature([]byte(`{"event":"tampered"}`), valid, secret))
	assert.False(t, VerifyWebhookSignature(body, valid, "other_secret"))
	assert.False(t, VerifyWebhookSignature(body, "", secret))
	assert.False(t, VerifyWebhookSignature(body, valid, ""))
}
