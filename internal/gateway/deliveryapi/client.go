package deliveryapi

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"entrega-tracker/internal/apperr"
	"entrega-tracker/internal/domain"
	"entrega-tracker/internal/logx"
)

// idempotencyHeader carries the client-generated key that lets the
// backend recognize a re-sent confirmation after a timeout.
const idempotencyHeader = "Idempotency-Key"

// Client is a deliveries backend gateway over its REST contract.
type Client struct {
	baseURL string
	httpc   *http.Client
	logger  logx.Logger
}

// NewClient creates a deliveries backend gateway.
func NewClient(baseURL string, httpc *http.Client, logger logx.Logger) *Client {
	if httpc == nil {
		httpc = http.DefaultClient
	}
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpc:   httpc,
		logger:  logger,
	}
}

// ListByUser fetches all deliveries owned by the given user.
func (c *Client) ListByUser(ctx context.Context, userID int64) ([]domain.Delivery, error) {
	var dtos []deliveryDTO
	path := fmt.Sprintf("/deliveries/user/%d", userID)
	if err := c.do(ctx, http.MethodGet, path, nil, nil, &dtos, http.StatusOK); err != nil {
		return nil, fmt.Errorf("delivery api: list by user: %w", err)
	}

	deliveries := make([]domain.Delivery, 0, len(dtos))
	for _, dto := range dtos {
		deliveries = append(deliveries, dto.toDomain())
	}
	return deliveries, nil
}

// GetByID fetches a single delivery by id.
func (c *Client) GetByID(ctx context.Context, id int64) (*domain.Delivery, error) {
	var dto deliveryDTO
	path := fmt.Sprintf("/deliveries/details/%d", id)
	if err := c.do(ctx, http.MethodGet, path, nil, nil, &dto, http.StatusOK); err != nil {
		return nil, fmt.Errorf("delivery api: get by id: %w", err)
	}
	d := dto.toDomain()
	return &d, nil
}

// Create registers a new delivery for the given owner. The backend
// answers 201 with no body the client needs.
func (c *Client) Create(ctx context.Context, n domain.NewDelivery, userID int64) error {
	body := newCreateRequest(n, userID)
	if err := c.do(ctx, http.MethodPost, "/deliveries", nil, body, nil, http.StatusCreated); err != nil {
		return fmt.Errorf("delivery api: create: %w", err)
	}
	return nil
}

// Confirm submits the proof of receipt for a delivery. The idemKey is
// generated once per confirmation workflow so that a user-driven
// re-submission after a timeout is recognizable server-side.
func (c *Client) Confirm(ctx context.Context, id int64, proof domain.Proof, idemKey string) error {
	hdr := http.Header{}
	if idemKey != "" {
		hdr.Set(idempotencyHeader, idemKey)
	}
	body := confirmRequest{
		ReceivedBy:  proof.ReceivedBy,
		CPFReceiver: proof.CPFReceiver,
		Relation:    proof.Relation,
		PhotoURL:    proof.PhotoURL,
	}
	path := fmt.Sprintf("/deliveries/%d/confirm", id)
	if err := c.do(ctx, http.MethodPut, path, hdr, body, nil, http.StatusOK); err != nil {
		return fmt.Errorf("delivery api: confirm: %w", err)
	}
	return nil
}

// Login exchanges credentials for the user id that scopes every
// subsequent query.
func (c *Client) Login(ctx context.Context, email, password string) (int64, error) {
	var resp loginResponse
	body := loginRequest{Email: email, Password: password}
	if err := c.do(ctx, http.MethodPost, "/login", nil, body, &resp, http.StatusOK); err != nil {
		return 0, fmt.Errorf("delivery api: login: %w", err)
	}
	if resp.UserID <= 0 {
		return 0, fmt.Errorf("delivery api: login: bad user id %d: %w", resp.UserID, apperr.Unavailable)
	}
	return resp.UserID, nil
}

// do issues one request and decodes the response into out (when out is
// non-nil). Transport failures and unexpected statuses map onto the
// apperr sentinels.
func (c *Client) do(ctx context.Context, method, path string, hdr http.Header, body, out any, want int) error {
	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		reader = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	for k, vs := range hdr {
		for _, v := range vs {
			req.Header.Add(k, v)
		}
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpc.Do(req)
	if err != nil {
		c.logger.Warn("backend request failed",
			logx.String("method", method),
			logx.String("path", path),
			logx.Any("err", err),
		)
		return fmt.Errorf("%s %s: %s: %w", method, path, err, apperr.Unavailable)
	}
	defer resp.Body.Close() //nolint:errcheck

	switch {
	case resp.StatusCode == want:
		if out == nil {
			return nil
		}
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return fmt.Errorf("%s %s: decode response: %s: %w", method, path, err, apperr.Unavailable)
		}
		return nil
	case resp.StatusCode == http.StatusNotFound:
		return apperr.NotFound
	case resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden:
		return apperr.NotAuthenticated
	default:
		return fmt.Errorf("%s %s: unexpected status %d: %w", method, path, resp.StatusCode, apperr.Unavailable)
	}
}
