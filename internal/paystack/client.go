package paystack

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"math"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/Supa-mustea/Visualfind-store/internal/config"
)

const defaultBaseURL = "https://api.paystack.co"

// APIError carries the HTTP status and Paystack's message for a failed call.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("paystack API error: %d - %s", e.StatusCode, e.Message)
}

// Client is a thin pass-through wrapper around the Paystack REST API. Every
// operation issues exactly one HTTP call; there are no retries.
type Client struct {
	secretKey  string
	baseURL    string
	httpClient *http.Client
	logger     *zap.Logger
}

// NewClient creates a new Paystack client
func NewClient(cfg config.PaystackConfig, logger *zap.Logger) *Client {
	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	return &Client{
		secretKey: cfg.SecretKey,
		baseURL:   strings.TrimSuffix(baseURL, "/"),
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
		logger: logger,
	}
}

// envelope is the common Paystack response wrapper.
type envelope struct {
	Status  bool            `json:"status"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

func (c *Client) do(ctx context.Context, method, path string, body, out interface{}) error {
	var reqBody io.Reader
	if body != nil {
		jsonData, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to marshal request: %w", err)
		}
		reqBody = bytes.NewBuffer(jsonData)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reqBody)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.secretKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to execute request: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response: %w", err)
	}

	var env envelope
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		message := "Unknown error"
		if err := json.Unmarshal(respBody, &env); err == nil && env.Message != "" {
			message = env.Message
		}
		return &APIError{StatusCode: resp.StatusCode, Message: message}
	}

	if err := json.Unmarshal(respBody, &env); err != nil {
		return fmt.Errorf("failed to unmarshal response: %w, body: %s", err, string(respBody))
	}
	if out != nil && len(env.Data) > 0 {
		if err := json.Unmarshal(env.Data, out); err != nil {
			return fmt.Errorf("failed to unmarshal response data: %w", err)
		}
	}
	return nil
}

// NewReference fabricates a transaction reference for callers that did not
// supply one.
func NewReference() string {
	suffix := strings.ReplaceAll(uuid.New().String(), "-", "")[:9]
	return fmt.Sprintf("ref_%d_%s", time.Now().UnixMilli(), suffix)
}

// NairaToKobo converts a major-unit amount to the minor unit Paystack bills
// in, rounding to the nearest kobo.
func NairaToKobo(amount float64) int64 {
	return int64(math.Round(amount * 100))
}

// KoboToNaira converts a minor-unit amount back to naira.
func KoboToNaira(amount int64) float64 {
	return float64(amount) / 100
}

// InitializeRequest starts a charge. Amount is in major currency units; the
// client converts to kobo before sending.
type InitializeRequest struct {
	Email       string
	Amount      float64
	Reference   string // auto-generated when empty
	CallbackURL string
	Metadata    map[string]interface{}
}

type initializePayload struct {
	Email       string                 `json:"email"`
	Amount      int64                  `json:"amount"`
	Reference   string                 `json:"reference"`
	CallbackURL string                 `json:"callback_url,omitempty"`
	Metadata    map[string]interface{} `json:"metadata,omitempty"`
}

// InitializeData is the checkout handle returned for a new transaction.
type InitializeData struct {
	AuthorizationURL string `json:"authorization_url"`
	AccessCode       string `json:"access_code"`
	Reference        string `json:"reference"`
}

// InitializeTransaction starts a new charge and returns the hosted checkout
// handle.
func (c *Client) InitializeTransaction(ctx context.Context, req InitializeRequest) (*InitializeData, error) {
	reference := req.Reference
	if reference == "" {
		reference = NewReference()
	}
	payload := initializePayload{
		Email:       req.Email,
		Amount:      NairaToKobo(req.Amount),
		Reference:   reference,
		CallbackURL: req.CallbackURL,
		Metadata:    req.Metadata,
	}

	var data InitializeData
	if err := c.do(ctx, http.MethodPost, "/transaction/initialize", payload, &data); err != nil {
		return nil, err
	}
	return &data, nil
}

// Customer is the payer recorded on a transaction.
type Customer struct {
	ID        int64  `json:"id"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
}

// Authorization is a reusable card authorization.
type Authorization struct {
	AuthorizationCode string `json:"authorization_code"`
	Bin               string `json:"bin"`
	Last4             string `json:"last4"`
	ExpMonth          string `json:"exp_month"`
	ExpYear           string `json:"exp_year"`
	Channel           string `json:"channel"`
	CardType          string `json:"card_type"`
	Bank              string `json:"bank"`
	CountryCode       string `json:"country_code"`
	Brand             string `json:"brand"`
}

// Transaction is a Paystack transaction record. Amount is in kobo.
type Transaction struct {
	ID              int64                  `json:"id"`
	Domain          string                 `json:"domain"`
	Status          string                 `json:"status"`
	Reference       string                 `json:"reference"`
	Amount          int64                  `json:"amount"`
	GatewayResponse string                 `json:"gateway_response"`
	PaidAt          string                 `json:"paid_at"`
	CreatedAt       string                 `json:"created_at"`
	Channel         string                 `json:"channel"`
	Currency        string                 `json:"currency"`
	Customer        Customer               `json:"customer"`
	Authorization   Authorization          `json:"authorization"`
	Metadata        map[string]interface{} `json:"metadata"`
}

// VerifyTransaction fetches the settled state of a charge by reference.
func (c *Client) VerifyTransaction(ctx context.Context, reference string) (*Transaction, error) {
	var data Transaction
	if err := c.do(ctx, http.MethodGet, "/transaction/verify/"+url.PathEscape(reference), nil, &data); err != nil {
		return nil, err
	}
	return &data, nil
}

// ListTransactionsParams filters the transaction export. Zero values are
// omitted from the query.
type ListTransactionsParams struct {
	PerPage  int
	Page     int
	From     string
	To       string
	Customer string
	Status   string // success, failed or abandoned
}

// ListTransactions exports past transactions.
func (c *Client) ListTransactions(ctx context.Context, params ListTransactionsParams) ([]Transaction, error) {
	query := url.Values{}
	if params.PerPage > 0 {
		query.Set("perPage", strconv.Itoa(params.PerPage))
	}
	if params.Page > 0 {
		query.Set("page", strconv.Itoa(params.Page))
	}
	if params.From != "" {
		query.Set("from", params.From)
	}
	if params.To != "" {
		query.Set("to", params.To)
	}
	if params.Customer != "" {
		query.Set("customer", params.Customer)
	}
	if params.Status != "" {
		query.Set("status", params.Status)
	}

	path := "/transaction"
	if encoded := query.Encode(); encoded != "" {
		path += "?" + encoded
	}

	var data []Transaction
	if err := c.do(ctx, http.MethodGet, path, nil, &data); err != nil {
		return nil, err
	}
	return data, nil
}

// PaymentPageRequest creates a reusable hosted payment page. Amount is in
// major units.
type PaymentPageRequest struct {
	Name        string
	Description string
	Amount      float64
	RedirectURL string
	Metadata    map[string]interface{}
}

type paymentPagePayload struct {
	Name        string                 `json:"name"`
	Description string                 `json:"description"`
	Amount      int64                  `json:"amount"`
	Currency    string                 `json:"currency"`
	Type        string                 `json:"type"`
	RedirectURL string                 `json:"redirect_url,omitempty"`
	Metadata    map[string]interface{} `json:"metadata,omitempty"`
}

// PaymentPageData is the created hosted page.
type PaymentPageData struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Amount      int64  `json:"amount"`
	Currency    string `json:"currency"`
	Slug        string `json:"slug"`
	URL         string `json:"url"`
	Active      bool   `json:"active"`
}

// CreatePaymentPage creates a reusable payment link.
func (c *Client) CreatePaymentPage(ctx context.Context, req PaymentPageRequest) (*PaymentPageData, error) {
	payload := paymentPagePayload{
		Name:        req.Name,
		Description: req.Description,
		Amount:      NairaToKobo(req.Amount),
		Currency:    "NGN",
		Type:        "payment",
		RedirectURL: req.RedirectURL,
		Metadata:    req.Metadata,
	}

	var data PaymentPageData
	if err := c.do(ctx, http.MethodPost, "/page", payload, &data); err != nil {
		return nil, err
	}
	return &data, nil
}

// PlanRequest creates a recurring billing plan. Amount is in major units.
type PlanRequest struct {
	Name        string
	Interval    string // daily, weekly, monthly or annually
	Amount      float64
	Description string
}

type planPayload struct {
	Name        string `json:"name"`
	Interval    string `json:"interval"`
	Amount      int64  `json:"amount"`
	Currency    string `json:"currency"`
	Description string `json:"description,omitempty"`
}

// PlanData is the created billing plan.
type PlanData struct {
	ID       int64  `json:"id"`
	Name     string `json:"name"`
	PlanCode string `json:"plan_code"`
	Interval string `json:"interval"`
	Amount   int64  `json:"amount"`
	Currency string `json:"currency"`
}

// CreatePlan creates a recurring subscription plan.
func (c *Client) CreatePlan(ctx context.Context, req PlanRequest) (*PlanData, error) {
	payload := planPayload{
		Name:        req.Name,
		Interval:    req.Interval,
		Amount:      NairaToKobo(req.Amount),
		Currency:    "NGN",
		Description: req.Description,
	}

	var data PlanData
	if err := c.do(ctx, http.MethodPost, "/plan", payload, &data); err != nil {
		return nil, err
	}
	return &data, nil
}

// CustomerRequest creates a customer record.
type CustomerRequest struct {
	Email     string                 `json:"email"`
	FirstName string                 `json:"first_name,omitempty"`
	LastName  string                 `json:"last_name,omitempty"`
	Phone     string                 `json:"phone,omitempty"`
	Metadata  map[string]interface{} `json:"metadata,omitempty"`
}

// CreateCustomer registers a customer with the payment processor.
func (c *Client) CreateCustomer(ctx context.Context, req CustomerRequest) (*Customer, error) {
	var data Customer
	if err := c.do(ctx, http.MethodPost, "/customer", req, &data); err != nil {
		return nil, err
	}
	return &data, nil
}

// ChargeAuthorizationRequest charges a stored card authorization. Amount is
// in major units.
type ChargeAuthorizationRequest struct {
	AuthorizationCode string
	Email             string
	Amount            float64
	Reference         string // auto-generated when empty
	Metadata          map[string]interface{}
}

type chargeAuthorizationPayload struct {
	AuthorizationCode string                 `json:"authorization_code"`
	Email             string                 `json:"email"`
	Amount            int64                  `json:"amount"`
	Currency          string                 `json:"currency"`
	Reference         string                 `json:"reference"`
	Metadata          map[string]interface{} `json:"metadata,omitempty"`
}

// ChargeAuthorization charges a previously stored card authorization.
func (c *Client) ChargeAuthorization(ctx context.Context, req ChargeAuthorizationRequest) (*Transaction, error) {
	reference := req.Reference
	if reference == "" {
		reference = NewReference()
	}
	payload := chargeAuthorizationPayload{
		AuthorizationCode: req.AuthorizationCode,
		Email:             req.Email,
		Amount:            NairaToKobo(req.Amount),
		Currency:          "NGN",
		Reference:         reference,
		Metadata:          req.Metadata,
	}

	var data Transaction
	if err := c.do(ctx, http.MethodPost, "/transaction/charge_authorization", payload, &data); err != nil {
		return nil, err
	}
	return &data, nil
}

// TransactionTimeline fetches the processing timeline for a transaction by
// id or reference. The shape varies, so the raw payload is returned.
func (c *Client) TransactionTimeline(ctx context.Context, idOrReference string) (json.RawMessage, error) {
	var data json.RawMessage
	if err := c.do(ctx, http.MethodGet, "/transaction/timeline/"+url.PathEscape(idOrReference), nil, &data); err != nil {
		return nil, err
	}
	return data, nil
}
