package facebook

import (
	"bytes"
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/goccy/go-json"
	"github.com/sony/gobreaker/v2"

	"storefront-backend/internal/domain"
	"storefront-backend/pkg/logger"
)

const (
	defaultBaseURL = "https://graph.facebook.com"
	sendTimeout    = 10 * time.Second
)

// ErrPermanent marks a rejected event that must not be retried.
var ErrPermanent = errors.New("capi: event rejected")

// HashSHA256 returns a hex-encoded SHA256 hash of the normalized input string.
func HashSHA256(input string) string {
	if input == "" {
		return ""
	}
	// Normalize: trim whitespace and lowercase
	normalized := strings.ToLower(strings.TrimSpace(input))
	hash := sha256.Sum256([]byte(normalized))
	return hex.EncodeToString(hash[:])
}

// CAPIClient sends server-side events to the Facebook Conversions API.
// A nil *CAPIClient is a disabled client; every method is a no-op.
type CAPIClient struct {
	pixelID     string
	accessToken string
	apiVersion  string
	baseURL     string
	httpClient  *http.Client
	breaker     *gobreaker.CircuitBreaker[struct{}]
	inflight    sync.WaitGroup
}

type Option func(*CAPIClient)

// WithBaseURL points the client at another Graph API host.
func WithBaseURL(u string) Option {
	return func(c *CAPIClient) { c.baseURL = strings.TrimSuffix(u, "/") }
}

func WithHTTPClient(hc *http.Client) Option {
	return func(c *CAPIClient) { c.httpClient = hc }
}

// NewCAPIClient returns nil when the pixel or token is not configured.
func NewCAPIClient(pixelID, accessToken, apiVersion string, opts ...Option) *CAPIClient {
	if pixelID == "" || accessToken == "" {
		logger.Get().Info().Msg("Facebook Pixel ID or Access Token not configured, CAPI disabled")
		return nil
	}
	c := &CAPIClient{
		pixelID:     pixelID,
		accessToken: accessToken,
		apiVersion:  apiVersion,
		baseURL:     defaultBaseURL,
		httpClient:  &http.Client{Timeout: sendTimeout},
	}
	for _, opt := range opts {
		opt(c)
	}

	c.breaker = gobreaker.NewCircuitBreaker[struct{}](gobreaker.Settings{
		Name:        "facebook-capi",
		MaxRequests: 1,
		Interval:    time.Minute,
		Timeout:     30 * time.Second,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= 5
		},
		// Rejected payloads say nothing about the health of the API.
		IsSuccessful: func(err error) bool {
			return err == nil || errors.Is(err, ErrPermanent)
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			logger.Get().Warn().
				Str("breaker", name).
				Str("from", from.String()).
				Str("to", to.String()).
				Msg("Circuit breaker state change")
		},
	})
	return c
}

// UserData holds the hashed identifiers used for event matching.
type UserData struct {
	ExternalID string `json:"external_id,omitempty"` // SHA256 hashed user id
	ClientIP   string `json:"client_ip_address,omitempty"`
	UserAgent  string `json:"client_user_agent,omitempty"`
}

type CustomData struct {
	ContentIDs  []string `json:"content_ids,omitempty"`
	ContentType string   `json:"content_type,omitempty"`
}

// Event represents a single CAPI event
type Event struct {
	EventName    string     `json:"event_name"`
	EventTime    int64      `json:"event_time"`
	ActionSource string     `json:"action_source"`
	UserData     UserData   `json:"user_data"`
	CustomData   CustomData `json:"custom_data"`
	EventID      string     `json:"event_id,omitempty"` // For deduplication with browser events
}

// EventPayload is the request body for CAPI
type EventPayload struct {
	Data []Event `json:"data"`
}

// SendEvent posts one event through the circuit breaker.
func (c *CAPIClient) SendEvent(ctx context.Context, event Event) error {
	if c == nil {
		return nil
	}

	body, err := json.Marshal(EventPayload{Data: []Event{event}})
	if err != nil {
		return fmt.Errorf("failed to marshal event: %w", err)
	}

	_, err = c.breaker.Execute(func() (struct{}, error) {
		return struct{}{}, c.post(ctx, body)
	})
	return err
}

func (c *CAPIClient) post(ctx context.Context, body []byte) error {
	endpoint := fmt.Sprintf("%s/%s/%s/events?access_token=%s",
		c.baseURL, c.apiVersion, c.pixelID, url.QueryEscape(c.accessToken))

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("create CAPI request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("CAPI request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusOK {
		return nil
	}

	msg, _ := io.ReadAll(io.LimitReader(resp.Body, 4<<10))
	// 4xx other than 429 is a problem with the payload, not the API.
	if resp.StatusCode >= 400 && resp.StatusCode < 500 && resp.StatusCode != http.StatusTooManyRequests {
		return fmt.Errorf("%w (status %d): %s", ErrPermanent, resp.StatusCode, msg)
	}
	return fmt.Errorf("CAPI error (status %d): %s", resp.StatusCode, msg)
}

// TrackAddToWishlist sends an AddToWishlist event in the background.
// The request context only contributes its values; cancellation is ignored.
func (c *CAPIClient) TrackAddToWishlist(ctx context.Context, entry domain.WishlistEntry) {
	if c == nil {
		return
	}

	event := Event{
		EventName:    "AddToWishlist",
		EventTime:    entry.CreatedAt.Unix(),
		ActionSource: "website",
		UserData:     UserData{ExternalID: HashSHA256(entry.UserID)},
		CustomData: CustomData{
			ContentIDs:  []string{entry.ProductID},
			ContentType: "product",
		},
		EventID: entry.ID,
	}

	bg := context.WithoutCancel(ctx)
	c.inflight.Add(1)
	go func() {
		defer c.inflight.Done()
		sendCtx, cancel := context.WithTimeout(bg, sendTimeout)
		defer cancel()

		if err := c.SendEvent(sendCtx, event); err != nil {
			logger.WithContext(bg).Warn().Err(err).Str("event_id", event.EventID).Msg("Failed to send AddToWishlist event")
			return
		}
		logger.WithContext(bg).Debug().Str("event_id", event.EventID).Msg("AddToWishlist event sent")
	}()
}

// Wait blocks until background sends finish or ctx is done.
func (c *CAPIClient) Wait(ctx context.Context) error {
	if c == nil {
		return nil
	}
	done := make(chan struct{})
	go func() {
		c.inflight.Wait()
		close(done)
	}()
	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
