package payment

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"math"
	"net/http"
	"time"

	"chopnow/internal/config"

	"github.com/rs/zerolog"
)

// StatusSuccess is the transaction status the gateway reports for a
// completed payment. Only this status may trigger order creation.
const StatusSuccess = "success"

// Client talks to the Paystack REST API. Amounts are in kobo.
type Client struct {
	baseURL    string
	secretKey  string
	httpClient *http.Client
	logger     zerolog.Logger
}

// NewClient creates a Paystack API client.
func NewClient(cfg config.PaystackConfig, logger zerolog.Logger) *Client {
	return &Client{
		baseURL:   cfg.BaseURL,
		secretKey: cfg.SecretKey,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
		logger: logger.With().Str("component", "paystack").Logger(),
	}
}

// Authorization is returned when a transaction is initialised.
type Authorization struct {
	AuthorizationURL string `json:"authorization_url"`
	AccessCode       string `json:"access_code"`
	Reference        string `json:"reference"`
}

// Transaction is the gateway's view of a payment attempt.
type Transaction struct {
	Reference string `json:"reference"`
	Status    string `json:"status"`
	Amount    int64  `json:"amount"`
	Currency  string `json:"currency"`
	Channel   string `json:"channel"`
	PaidAt    string `json:"paid_at"`
}

// envelope is the response wrapper every Paystack endpoint uses.
type envelope struct {
	Status  bool            `json:"status"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

// KoboAmount converts a naira amount to kobo.
func KoboAmount(naira float64) int64 {
	return int64(math.Round(naira * 100))
}

// Initialize creates a transaction for the given billing email and amount
// and returns the authorization URL the payer is sent to.
func (c *Client) Initialize(ctx context.Context, email string, amountKobo int64, reference, callbackURL string) (*Authorization, error) {
	payload := map[string]interface{}{
		"email":     email,
		"amount":    amountKobo,
		"reference": reference,
	}
	if callbackURL != "" {
		payload["callback_url"] = callbackURL
	}

	var auth Authorization
	if err := c.post(ctx, "/transaction/initialize", payload, &auth); err != nil {
		c.logger.Error().
			Err(err).
			Str("reference", reference).
			Int64("amount_kobo", amountKobo).
			Msg("failed to initialise transaction")
		return nil, fmt.Errorf("failed to initialise transaction: %w", err)
	}

	c.logger.Info().
		Str("reference", reference).
		Int64("amount_kobo", amountKobo).
		Msg("transaction initialised")

	return &auth, nil
}

// Verify fetches the gateway's record of a transaction by reference.
func (c *Client) Verify(ctx context.Context, reference string) (*Transaction, error) {
	var txn Transaction
	if err := c.get(ctx, "/transaction/verify/"+reference, &txn); err != nil {
		c.logger.Error().Err(err).Str("reference", reference).Msg("failed to verify transaction")
		return nil, fmt.Errorf("failed to verify transaction: %w", err)
	}

	c.logger.Info().
		Str("reference", reference).
		Str("status", txn.Status).
		Int64("amount_kobo", txn.Amount).
		Msg("transaction verified")

	return &txn, nil
}

func (c *Client) post(ctx context.Context, path string, payload interface{}, out interface{}) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to encode request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	return c.do(req, out)
}

func (c *Client) get(ctx context.Context, path string, out interface{}) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}

	return c.do(req, out)
}

func (c *Client) do(req *http.Request, out interface{}) error {
	req.Header.Set("Authorization", "Bearer "+c.secretKey)
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to reach payment gateway: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read gateway response: %w", err)
	}

	var env envelope
	if err := json.Unmarshal(body, &env); err != nil {
		return fmt.Errorf("failed to decode gateway response (status %d): %w", resp.StatusCode, err)
	}

	if !env.Status {
		return fmt.Errorf("gateway rejected request (status %d): %s", resp.StatusCode, env.Message)
	}

	if out != nil {
		if err := json.Unmarshal(env.Data, out); err != nil {
			return fmt.Errorf("failed to decode gateway response data: %w", err)
		}
	}

	return nil
}
