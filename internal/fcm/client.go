// Package fcm sends push notifications through the FCM HTTP v1 API using a
// service account. Each access token is minted from a signed JWT assertion.
package fcm

import (
	"bytes"
	"context"
	"crypto/rsa"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

const (
	messagingScope   = "https://www.googleapis.com/auth/firebase.messaging"
	defaultTokenURI  = "https://oauth2.googleapis.com/token"
	defaultSendURL   = "https://fcm.googleapis.com"
	jwtBearerGrant   = "urn:ietf:params:oauth:grant-type:jwt-bearer"
	assertionTTL     = time.Hour
	maxErrorBodySize = 4096
)

var (
	ErrUnregistered  = errors.New("fcm: token is not registered")
	ErrNoCredentials = errors.New("fcm: service account credentials not configured")
)

// ServiceAccount holds the fields of a Google service account key file
type ServiceAccount struct {
	ProjectID    string `json:"project_id"`
	ClientEmail  string `json:"client_email"`
	PrivateKey   string `json:"private_key"`
	PrivateKeyID string `json:"private_key_id"`
	TokenURI     string `json:"token_uri"`
}

// ParseServiceAccount decodes a service account key file
func ParseServiceAccount(data []byte) (*ServiceAccount, error) {
	var sa ServiceAccount
	if err := json.Unmarshal(data, &sa); err != nil {
		return nil, fmt.Errorf("fcm: invalid service account json: %w", err)
	}
	if sa.ProjectID == "" || sa.ClientEmail == "" || sa.PrivateKey == "" {
		return nil, errors.New("fcm: service account is missing project_id, client_email or private_key")
	}
	if sa.TokenURI == "" {
		sa.TokenURI = defaultTokenURI
	}
	return &sa, nil
}

// LoadServiceAccount reads credentials from inline JSON first, then from path
func LoadServiceAccount(inlineJSON, path string) (*ServiceAccount, error) {
	if inlineJSON != "" {
		return ParseServiceAccount([]byte(inlineJSON))
	}
	if path == "" {
		return nil, ErrNoCredentials
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrNoCredentials
		}
		return nil, fmt.Errorf("fcm: read credentials file: %w", err)
	}
	return ParseServiceAccount(data)
}

// Message is a notification addressed to one device token
type Message struct {
	Token string
	Title string
	Body  string
	Data  map[string]string
}

type Client struct {
	account    ServiceAccount
	key        *rsa.PrivateKey
	httpClient *http.Client
	sendURL    string
	now        func() time.Time
}

type Option func(*Client)

func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.httpClient = hc }
}

// WithSendURL overrides the FCM API host, for tests and emulators
func WithSendURL(u string) Option {
	return func(c *Client) { c.sendURL = strings.TrimRight(u, "/") }
}

func WithClock(now func() time.Time) Option {
	return func(c *Client) { c.now = now }
}

func NewClient(account ServiceAccount, opts ...Option) (*Client, error) {
	key, err := jwt.ParseRSAPrivateKeyFromPEM([]byte(account.PrivateKey))
	if err != nil {
		return nil, fmt.Errorf("fcm: parse private key: %w", err)
	}
	if account.TokenURI == "" {
		account.TokenURI = defaultTokenURI
	}
	c := &Client{
		account:    account,
		key:        key,
		httpClient: &http.Client{Timeout: 10 * time.Second},
		sendURL:    defaultSendURL,
		now:        time.Now,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

type assertionClaims struct {
	Scope string `json:"scope"`
	jwt.RegisteredClaims
}

// Assertion builds the RS256-signed JWT exchanged for an access token
func (c *Client) Assertion() (string, error) {
	now := c.now()
	claims := assertionClaims{
		Scope: messagingScope,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    c.account.ClientEmail,
			Audience:  jwt.ClaimStrings{c.account.TokenURI},
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(assertionTTL)),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodRS256, claims)
	if c.account.PrivateKeyID != "" {
		token.Header["kid"] = c.account.PrivateKeyID
	}
	signed, err := token.SignedString(c.key)
	if err != nil {
		return "", fmt.Errorf("fcm: sign assertion: %w", err)
	}
	return signed, nil
}

type tokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	ExpiresIn   int    `json:"expires_in"`
}

// AccessToken mints a short-lived OAuth2 bearer token for the messaging scope
func (c *Client) AccessToken(ctx context.Context) (string, error) {
	assertion, err := c.Assertion()
	if err != nil {
		return "", err
	}

	form := url.Values{}
	form.Set("grant_type", jwtBearerGrant)
	form.Set("assertion", assertion)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.account.TokenURI, strings.NewReader(form.Encode()))
	if err != nil {
		return "", fmt.Errorf("fcm: build token request: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("fcm: token exchange: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBodySize))
		return "", fmt.Errorf("fcm: token exchange failed with status %d: %s", resp.StatusCode, body)
	}

	var tr tokenResponse
	if err := json.NewDecoder(resp.Body).Decode(&tr); err != nil {
		return "", fmt.Errorf("fcm: decode token response: %w", err)
	}
	if tr.AccessToken == "" {
		return "", errors.New("fcm: token response has no access_token")
	}
	return tr.AccessToken, nil
}

type sendRequest struct {
	Message sendMessage `json:"message"`
}

type sendMessage struct {
	Token        string            `json:"token"`
	Notification sendNotification  `json:"notification"`
	Data         map[string]string `json:"data,omitempty"`
}

type sendNotification struct {
	Title string `json:"title"`
	Body  string `json:"body"`
}

type apiError struct {
	Error struct {
		Code    int    `json:"code"`
		Message string `json:"message"`
		Status  string `json:"status"`
		Details []struct {
			ErrorCode string `json:"errorCode"`
		} `json:"details"`
	} `json:"error"`
}

// Send delivers msg using accessToken. Tokens FCM no longer knows are
// reported as ErrUnregistered.
func (c *Client) Send(ctx context.Context, accessToken string, msg Message) error {
	payload, err := json.Marshal(sendRequest{Message: sendMessage{
		Token:        msg.Token,
		Notification: sendNotification{Title: msg.Title, Body: msg.Body},
		Data:         msg.Data,
	}})
	if err != nil {
		return fmt.Errorf("fcm: marshal message: %w", err)
	}

	endpoint := fmt.Sprintf("%s/v1/projects/%s/messages:send", c.sendURL, url.PathEscape(c.account.ProjectID))
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("fcm: build send request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+accessToken)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("fcm: send: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil
	}

	body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBodySize))
	if isUnregistered(resp.StatusCode, body) {
		return ErrUnregistered
	}
	return fmt.Errorf("fcm: send failed with status %d: %s", resp.StatusCode, body)
}

func isUnregistered(status int, body []byte) bool {
	var apiErr apiError
	if err := json.Unmarshal(body, &apiErr); err == nil {
		for _, d := range apiErr.Error.Details {
			if d.ErrorCode == "UNREGISTERED" {
				return true
			}
		}
		if apiErr.Error.Status == "NOT_FOUND" {
			return true
		}
	}
	return status == http.StatusNotFound
}
