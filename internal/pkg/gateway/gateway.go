package gateway

import (
	"bytes"
	"context"
	"encoding/base64"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	"autocare-service/config"
	"autocare-service/internal/pkg/errors"

	"github.com/goccy/go-json"
	circuit "github.com/rubyist/circuitbreaker"
)

const (
	timestampLayout = "20060102150405"

	oauthPath = "/oauth/v1/generate?grant_type=client_credentials"
	pushPath  = "/mpesa/stkpush/v1/processrequest"
	queryPath = "/mpesa/stkpushquery/v1/query"
)

// Client is the outbound contract to the mobile-money gateway.
type Client interface {
	ValidateConfig() error
	InitiatePush(ctx context.Context, req PushRequest) (PushResponse, error)
	QueryStatus(ctx context.Context, checkoutRequestID string) (QueryResponse, error)
}

type PushRequest struct {
	Amount      float64
	PhoneNumber string
	Reference   string
	Description string
}

type PushResponse struct {
	MerchantRequestID   string `json:"MerchantRequestID"`
	CheckoutRequestID   string `json:"CheckoutRequestID"`
	ResponseCode        string `json:"ResponseCode"`
	ResponseDescription string `json:"ResponseDescription"`
	CustomerMessage     string `json:"CustomerMessage"`
}

type QueryResponse struct {
	ResponseCode string `json:"ResponseCode"`
	ResultCode   string `json:"ResultCode"`
	ResultDesc   string `json:"ResultDesc"`
}

type client struct {
	cfg        *config.GatewayConfig
	httpClient *circuit.HTTPClient

	mu          sync.Mutex
	accessToken string
	tokenExpiry time.Time
}

func New(cfg *config.GatewayConfig, httpClient *circuit.HTTPClient) Client {
	return &client{cfg: cfg, httpClient: httpClient}
}

// ValidateConfig fails fast on a callback URL the gateway could never
// reach; a misconfigured callback makes webhook confirmation permanently
// impossible, so no push request is sent until this passes.
func (c *client) ValidateConfig() error {
	if c.cfg.ConsumerKey == "" || c.cfg.ConsumerSecret == "" {
		return errors.ConfigurationError("gateway consumer credentials are not set")
	}
	if c.cfg.Shortcode == "" || c.cfg.Passkey == "" {
		return errors.ConfigurationError("gateway shortcode or passkey is not set")
	}
	u, err := url.Parse(c.cfg.CallbackURL)
	if err != nil {
		return errors.ConfigurationError(fmt.Sprintf("callback URL is not parseable: %v", err))
	}
	if u.Scheme != "https" {
		return errors.ConfigurationError("callback URL must use https")
	}
	if u.Host == "" {
		return errors.ConfigurationError("callback URL has no host")
	}
	return nil
}

func (c *client) token(ctx context.Context) (string, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.accessToken != "" && time.Now().Before(c.tokenExpiry) {
		return c.accessToken, nil
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.cfg.BaseURL+oauthPath, nil)
	if err != nil {
		return "", err
	}
	basic := base64.StdEncoding.EncodeToString([]byte(c.cfg.ConsumerKey + ":" + c.cfg.ConsumerSecret))
	req.Header.Set("Authorization", "Basic "+basic)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("gateway auth request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("gateway auth rejected with status %d", resp.StatusCode)
	}

	var tokenResp struct {
		AccessToken string `json:"access_token"`
		ExpiresIn   string `json:"expires_in"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&tokenResp); err != nil {
		return "", fmt.Errorf("gateway auth response unreadable: %w", err)
	}
	if tokenResp.AccessToken == "" {
		return "", fmt.Errorf("gateway auth returned empty token")
	}

	c.accessToken = tokenResp.AccessToken
	// tokens are valid for an hour; refresh a little early
	c.tokenExpiry = time.Now().Add(50 * time.Minute)

	return c.accessToken, nil
}

func (c *client) password(ts string) string {
	return base64.StdEncoding.EncodeToString([]byte(c.cfg.Shortcode + c.cfg.Passkey + ts))
}

func (c *client) postJSON(ctx context.Context, path string, payload interface{}, out interface{}) error {
	token, err := c.token(ctx)
	if err != nil {
		return err
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.cfg.BaseURL+path, bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Authorization", "Bearer "+token)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("gateway returned status %d: %s", resp.StatusCode, strings.TrimSpace(string(raw)))
	}

	return json.Unmarshal(raw, out)
}

func (c *client) InitiatePush(ctx context.Context, pushReq PushRequest) (PushResponse, error) {
	if err := c.ValidateConfig(); err != nil {
		return PushResponse{}, err
	}

	ts := time.Now().Format(timestampLayout)
	payload := map[string]interface{}{
		"BusinessShortCode": c.cfg.Shortcode,
		"Password":          c.password(ts),
		"Timestamp":         ts,
		"TransactionType":   "CustomerPayBillOnline",
		"Amount":            int64(pushReq.Amount),
		"PartyA":            pushReq.PhoneNumber,
		"PartyB":            c.cfg.Shortcode,
		"PhoneNumber":       pushReq.PhoneNumber,
		"CallBackURL":       c.cfg.CallbackURL,
		"AccountReference":  pushReq.Reference,
		"TransactionDesc":   pushReq.Description,
	}

	var resp PushResponse
	if err := c.postJSON(ctx, pushPath, payload, &resp); err != nil {
		return PushResponse{}, err
	}
	if resp.ResponseCode != "0" {
		return PushResponse{}, fmt.Errorf("gateway rejected push: %s", resp.ResponseDescription)
	}
	if resp.CheckoutRequestID == "" {
		return PushResponse{}, fmt.Errorf("gateway accepted push but returned no correlation key")
	}

	return resp, nil
}

func (c *client) QueryStatus(ctx context.Context, checkoutRequestID string) (QueryResponse, error) {
	ts := time.Now().Format(timestampLayout)
	payload := map[string]interface{}{
		"BusinessShortCode": c.cfg.Shortcode,
		"Password":          c.password(ts),
		"Timestamp":         ts,
		"CheckoutRequestID": checkoutRequestID,
	}

	var resp QueryResponse
	if err := c.postJSON(ctx, queryPath, payload, &resp); err != nil {
		return QueryResponse{}, err
	}
	return resp, nil
}
