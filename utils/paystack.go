package utils

import (
	"edusite/config"
	"encoding/json"
	"fmt"
	"net/url"
	"time"

	"github.com/go-resty/resty/v2"
)

// PaystackVerifyData is the transaction detail nested in a verify response.
type PaystackVerifyData struct {
	Status    string `json:"status"`
	Reference string `json:"reference"`
	Amount    int64  `json:"amount"` // settled amount in minor units, not reconciled against the registration
}

// PaystackVerifyResponse is the body of GET /transaction/verify/{reference}.
type PaystackVerifyResponse struct {
	Status  bool               `json:"status"`
	Message string             `json:"message"`
	Data    PaystackVerifyData `json:"data"`
}

// IsSuccessful reports whether the gateway confirmed the transaction.
// Only the exact success shape counts; anything else is a failure.
func (r *PaystackVerifyResponse) IsSuccessful() bool {
	return r.Status && r.Data.Status == "success"
}

// VerifyPaystackTransaction looks a payment reference up at the gateway.
// The call is bounded to 10 seconds; a timeout or a body that does not
// decode is returned as an error so the caller fails closed.
func VerifyPaystackTransaction(reference string) (*PaystackVerifyResponse, error) {
	cfg := config.AppConfig

	client := resty.New().
		SetBaseURL(cfg.PaystackBaseURL).
		SetTimeout(10 * time.Second)

	resp, err := client.R().
		SetHeader("Authorization", "Bearer "+cfg.PaystackSecretKey).
		SetHeader("Content-Type", "application/json").
		Get("/transaction/verify/" + url.PathEscape(reference))
	if err != nil {
		return nil, err
	}
	if resp.StatusCode() >= 500 {
		return nil, fmt.Errorf("paystack verify returned %d", resp.StatusCode())
	}

	result := new(PaystackVerifyResponse)
	if err := json.Unmarshal(resp.Body(), result); err != nil {
		return nil, fmt.Errorf("invalid paystack verify response: %w", err)
	}

	return result, nil
}
