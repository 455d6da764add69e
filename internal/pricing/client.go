package pricing

import (
	"bytes"
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

// Client talks to the external price-catalog service. Requests carry a
// sha256 token over the serialized items so the catalog can reject
// tampered payloads.
type Client struct {
	BaseURL    string
	APIKey     string
	Secret     string
	HTTPClient *http.Client
}

func NewClient(baseURL, apiKey, secret string) *Client {
	return &Client{
		BaseURL:    baseURL,
		APIKey:     apiKey,
		Secret:     secret,
		HTTPClient: &http.Client{Timeout: 15 * time.Second},
	}
}

type priceRequest struct {
	APIKey string `json:"api_key"`
	Items  []Item `json:"items"`
	Token  string `json:"token"`
}

type priceResponse struct {
	Success bool   `json:"success"`
	Lines   []Line `json:"lines"`
	Message string `json:"message,omitempty"`
}

func (c *Client) Price(ctx context.Context, items []Item) ([]Line, error) {
	body, err := json.Marshal(items)
	if err != nil {
		return nil, err
	}
	req := priceRequest{
		APIKey: c.APIKey,
		Items:  items,
		Token:  c.sign(body),
	}

	var resp priceResponse
	if err := c.postJSON(ctx, "/prices", req, &resp); err != nil {
		return nil, err
	}
	if !resp.Success {
		return nil, fmt.Errorf("pricing failed: %s", resp.Message)
	}
	return resp.Lines, nil
}

func (c *Client) sign(body []byte) string {
	sum := sha256.Sum256(append(append([]byte(c.APIKey), body...), []byte(c.Secret)...))
	return hex.EncodeToString(sum[:])
}

func (c *Client) postJSON(ctx context.Context, path string, payload any, out any) error {
	b, err := json.Marshal(payload)
	if err != nil {
		return err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.BaseURL+path, bytes.NewReader(b))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	res, err := c.HTTPClient.Do(req)
	if err != nil {
		return err
	}
	defer res.Body.Close()
	if res.StatusCode != http.StatusOK {
		return fmt.Errorf("pricing service returned %s", res.Status)
	}
	return json.NewDecoder(res.Body).Decode(out)
}
