// Package cloudflare is a minimal Cloudflare API client for DNS record
// management: zone lookup and update-or-create of A records.
package cloudflare

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"
)

const defaultBaseURL = "https://api.cloudflare.com/client/v4"

// Client is a minimal Cloudflare API client.
type Client struct {
	apiToken   string
	baseURL    string
	httpClient *http.Client
}

// Record represents a Cloudflare DNS record.
type Record struct {
	ID      string `json:"id,omitempty"`
	Type    string `json:"type"`
	Name    string `json:"name"`
	Content string `json:"content"`
	Proxied bool   `json:"proxied"`
	TTL     int    `json:"ttl"`
}

type apiResponse struct {
	Success bool            `json:"success"`
	Errors  []apiError      `json:"errors"`
	Result  json.RawMessage `json:"result"`
}

type apiError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

type zoneResult struct {
	ID string `json:"id"`
}

// StatusError is returned for non-2xx API responses. Callers use the
// status to tell rejections from transient failures.
type StatusError struct {
	Status int
	Body   string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("API error (status %d): %s", e.Status, e.Body)
}

// IsRejection reports whether err is a definitive API rejection (a 4xx
// response) rather than something worth retrying.
func IsRejection(err error) bool {
	var se *StatusError
	return errors.As(err, &se) && se.Status >= 400 && se.Status < 500
}

// NewClient creates a new Cloudflare API client. All calls are bounded by
// the given timeout.
func NewClient(apiToken string, timeout time.Duration) *Client {
	return &Client{
		apiToken:   apiToken,
		baseURL:    defaultBaseURL,
		httpClient: &http.Client{Timeout: timeout},
	}
}

// GetZoneID returns the zone ID for the given domain.
func (c *Client) GetZoneID(ctx context.Context, domain string) (string, error) {
	req, err := c.newRequest(ctx, http.MethodGet, fmt.Sprintf("/zones?name=%s", domain), nil)
	if err != nil {
		return "", err
	}

	var resp apiResponse
	if err := c.do(req, &resp); err != nil {
		return "", fmt.Errorf("get zone ID: %w", err)
	}

	var zones []zoneResult
	if err := json.Unmarshal(resp.Result, &zones); err != nil {
		return "", fmt.Errorf("parse zones: %w", err)
	}

	if len(zones) == 0 {
		return "", fmt.Errorf("no zone found for domain %s", domain)
	}

	return zones[0].ID, nil
}

// FindRecord looks up an existing DNS record by exact name and type.
// A nil record with nil error means no record exists.
func (c *Client) FindRecord(ctx context.Context, zoneID, name, recordType string) (*Record, error) {
	req, err := c.newRequest(ctx, http.MethodGet,
		fmt.Sprintf("/zones/%s/dns_records?name=%s&type=%s", zoneID, name, recordType), nil)
	if err != nil {
		return nil, err
	}

	var resp apiResponse
	if err := c.do(req, &resp); err != nil {
		return nil, fmt.Errorf("find DNS record %s: %w", name, err)
	}

	var records []Record
	if err := json.Unmarshal(resp.Result, &records); err != nil {
		return nil, fmt.Errorf("parse records: %w", err)
	}
	if len(records) == 0 {
		return nil, nil
	}
	return &records[0], nil
}

// CreateRecord creates a new DNS record in the zone.
func (c *Client) CreateRecord(ctx context.Context, zoneID string, record Record) (*Record, error) {
	body, err := json.Marshal(record)
	if err != nil {
		return nil, fmt.Errorf("marshal record: %w", err)
	}

	req, err := c.newRequest(ctx, http.MethodPost,
		fmt.Sprintf("/zones/%s/dns_records", zoneID), bytes.NewReader(body))
	if err != nil {
		return nil, err
	}

	var resp apiResponse
	if err := c.do(req, &resp); err != nil {
		return nil, fmt.Errorf("create DNS record %s: %w", record.Name, err)
	}

	var created Record
	if err := json.Unmarshal(resp.Result, &created); err != nil {
		return nil, fmt.Errorf("parse created record: %w", err)
	}
	return &created, nil
}

// UpdateRecord replaces an existing DNS record by ID.
func (c *Client) UpdateRecord(ctx context.Context, zoneID, recordID string, record Record) (*Record, error) {
	body, err := json.Marshal(record)
	if err != nil {
		return nil, fmt.Errorf("marshal record: %w", err)
	}

	req, err := c.newRequest(ctx, http.MethodPut,
		fmt.Sprintf("/zones/%s/dns_records/%s", zoneID, recordID), bytes.NewReader(body))
	if err != nil {
		return nil, err
	}

	var resp apiResponse
	if err := c.do(req, &resp); err != nil {
		return nil, fmt.Errorf("update DNS record %s: %w", recordID, err)
	}

	var updated Record
	if err := json.Unmarshal(resp.Result, &updated); err != nil {
		return nil, fmt.Errorf("parse updated record: %w", err)
	}
	return &updated, nil
}

// EnsureRecord points name at ip with a proxied A record, updating the
// existing record when one exists so re-runs never create duplicates.
// The returned bool is true when a new record was created.
func (c *Client) EnsureRecord(ctx context.Context, zoneID, name, ip string) (*Record, bool, error) {
	desired := Record{
		Type:    "A",
		Name:    name,
		Content: ip,
		Proxied: true,
		TTL:     1, // auto TTL while proxied
	}

	existing, err := c.FindRecord(ctx, zoneID, name, "A")
	if err != nil {
		return nil, false, err
	}
	if existing != nil {
		updated, err := c.UpdateRecord(ctx, zoneID, existing.ID, desired)
		return updated, false, err
	}

	created, err := c.CreateRecord(ctx, zoneID, desired)
	return created, true, err
}

func (c *Client) newRequest(ctx context.Context, method, path string, body io.Reader) (*http.Request, error) {
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", "Bearer "+c.apiToken)
	req.Header.Set("Content-Type", "application/json")
	return req, nil
}

func (c *Client) do(req *http.Request, out *apiResponse) error {
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("read response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return &StatusError{Status: resp.StatusCode, Body: string(body)}
	}

	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("parse response: %w (status %d)", err, resp.StatusCode)
	}

	if !out.Success {
		return &StatusError{Status: resp.StatusCode, Body: errorSummary(out.Errors)}
	}

	return nil
}

func errorSummary(errs []apiError) string {
	if len(errs) == 0 {
		return "request not successful"
	}
	return fmt.Sprintf("%d: %s", errs[0].Code, errs[0].Message)
}
