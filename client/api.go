package client

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

// User is the account snapshot returned by the backend.
type User struct {
	ID            uint      `json:"id"`
	Username      string    `json:"username"`
	IsPro         bool      `json:"isPro"`
	QuestionCount int       `json:"questionCount"`
	Avatar        string    `json:"avatar"`
	CreatedAt     time.Time `json:"createdAt"`
}

// PaymentInfo carries the bank-transfer instructions for a created
// payment.
type PaymentInfo struct {
	Bank          string  `json:"bank"`
	AccountNumber string  `json:"accountNumber"`
	AccountName   string  `json:"accountName"`
	Amount        float64 `json:"amount"`
	Content       string  `json:"content"`
}

// PaymentRequest is the client view of a created payment.
type PaymentRequest struct {
	PaymentID   string      `json:"paymentId"`
	PaymentInfo PaymentInfo `json:"paymentInfo"`
}

// APIClient speaks the backend's JSON surface for the networked
// variant. It holds only the bearer token; the backend owns all
// durable state. There are no retries and no timeout beyond whatever
// the injected http.Client enforces.
type APIClient struct {
	baseURL string
	http    *http.Client
	token   string
}

func NewAPIClient(baseURL string, httpClient *http.Client) *APIClient {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &APIClient{baseURL: baseURL, http: httpClient}
}

// Token returns the held session token, empty when logged out.
func (a *APIClient) Token() string { return a.token }

// SetToken installs a previously issued token.
func (a *APIClient) SetToken(token string) { a.token = token }

// Logout drops the held token. The server-side session row stays
// until it expires naturally.
func (a *APIClient) Logout() { a.token = "" }

type apiEnvelope struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

func (a *APIClient) Register(username, password string) error {
	body := map[string]string{"username": username, "password": password}
	return a.do(http.MethodPost, "/api/register", body, false, nil)
}

// Login authenticates, stores the issued token, and returns the
// account snapshot.
func (a *APIClient) Login(username, password string) (*User, error) {
	body := map[string]string{"username": username, "password": password}
	var out struct {
		apiEnvelope
		Token string `json:"token"`
		User  User   `json:"user"`
	}
	if err := a.do(http.MethodPost, "/api/login", body, false, &out); err != nil {
		return nil, err
	}
	a.token = out.Token
	return &out.User, nil
}

// GetUser fetches the current account snapshot from source of truth;
// callers use it as the refresh path for cached flags.
func (a *APIClient) GetUser() (*User, error) {
	var out struct {
		apiEnvelope
		User User `json:"user"`
	}
	if err := a.do(http.MethodGet, "/api/user", nil, true, &out); err != nil {
		return nil, err
	}
	return &out.User, nil
}

func (a *APIClient) Upgrade() error {
	return a.do(http.MethodPost, "/api/user/upgrade", nil, true, nil)
}

func (a *APIClient) UpdateStats(stats Stats) error {
	body := map[string]interface{}{"stats": stats}
	return a.do(http.MethodPut, "/api/user/stats", body, true, nil)
}

// UpdateQuestionCount syncs the local counter and returns the value
// the server kept, which may be higher than the one sent.
func (a *APIClient) UpdateQuestionCount(count int) (int, error) {
	body := map[string]int{"count": count}
	var out struct {
		apiEnvelope
		Count int `json:"count"`
	}
	if err := a.do(http.MethodPut, "/api/user/question-count", body, true, &out); err != nil {
		return 0, err
	}
	return out.Count, nil
}

func (a *APIClient) UpdateAvatar(emoji string) error {
	body := map[string]string{"avatar": emoji}
	return a.do(http.MethodPut, "/api/user/avatar", body, true, nil)
}

func (a *APIClient) CreatePayment(amount float64, method string) (*PaymentRequest, error) {
	body := map[string]interface{}{"amount": amount, "method": method}
	var out struct {
		apiEnvelope
		PaymentRequest
	}
	if err := a.do(http.MethodPost, "/api/payment/create", body, true, &out); err != nil {
		return nil, err
	}
	return &out.PaymentRequest, nil
}

func (a *APIClient) VerifyPayment(paymentID, transactionCode string) error {
	body := map[string]string{
		"paymentId":       paymentID,
		"transactionCode": transactionCode,
	}
	return a.do(http.MethodPost, "/api/payment/verify", body, false, nil)
}

func (a *APIClient) do(method, path string, body interface{}, auth bool, out interface{}) error {
	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			return err
		}
	}

	req, err := http.NewRequest(method, a.baseURL+path, &buf)
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	if auth {
		req.Header.Set("Authorization", "Bearer "+a.token)
	}

	resp, err := a.http.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrConnectivity, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		var envelope apiEnvelope
		json.NewDecoder(resp.Body).Decode(&envelope)
		return fmt.Errorf("%w: %s", statusError(resp.StatusCode), envelope.Message)
	}

	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return fmt.Errorf("%w: %v", ErrConnectivity, err)
		}
	}
	return nil
}

func statusError(status int) error {
	switch status {
	case http.StatusBadRequest:
		return ErrValidation
	case http.StatusUnauthorized:
		return ErrAuth
	case http.StatusNotFound:
		return ErrNotFound
	default:
		return fmt.Errorf("server error (status %d)", status)
	}
}
