package proxyown

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"math"
	"net/http"
	"os"
	"regexp"
	"strings"
	"time"
)

const (
	VERSION = "0.1.0"

	// RateLimit delays between requests (SEC requires 10 requests/second max)
	RateLimit = 100 * time.Millisecond

	// SecEmailEnvVar is the environment variable name for SEC email
	SecEmailEnvVar = "SEC_EMAIL"

	// DefaultAPIBase serves the submissions JSON API
	DefaultAPIBase = "https://data.sec.gov"

	// DefaultFilesBase serves bulk index files and the filing archives
	DefaultFilesBase = "https://www.sec.gov"
)

var (
	// ErrFetchFailed is returned after all retries are exhausted. It means the
	// resource is unavailable right now, not necessarily permanently.
	ErrFetchFailed = errors.New("fetch failed")

	// ErrInvalidJSON is returned when a 2xx body is not valid JSON.
	ErrInvalidJSON = errors.New("invalid JSON response")
)

// GetSecEmail retrieves email from environment variable or returns error
func GetSecEmail() (string, error) {
	email := os.Getenv(SecEmailEnvVar)
	if email == "" {
		return "", fmt.Errorf("SEC email required: set %s environment variable or use --email flag", SecEmailEnvVar)
	}

	// Basic email validation
	emailRegex := regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)
	if !emailRegex.MatchString(email) {
		return "", fmt.Errorf("invalid email format: %s", email)
	}
	if strings.HasSuffix(email, "example.com") {
		return "", fmt.Errorf("use a real email address, not example.com: %s", email)
	}
	return email, nil
}

// Client issues GET requests against the SEC with the identification headers
// the SEC requires, a politeness rate limit, and retry with exponential
// backoff.
type Client struct {
	APIBase       string
	FilesBase     string
	Email         string
	MaxRetries    int
	BackoffFactor float64
	HTTPClient    *http.Client

	lastRequest time.Time
}

// NewClient returns a Client with the defaults the SEC tolerates:
// 3 retries, 1.5s backoff factor, 60s request timeout.
func NewClient(email string) *Client {
	return &Client{
		APIBase:       DefaultAPIBase,
		FilesBase:     DefaultFilesBase,
		Email:         email,
		MaxRetries:    3,
		BackoffFactor: 1.5,
		HTTPClient:    &http.Client{Timeout: 60 * time.Second},
	}
}

// UserAgent builds the SEC-required User-Agent string from the contact email.
func (c *Client) UserAgent() string {
	return fmt.Sprintf("go-proxyown/%s (%s)", VERSION, c.Email)
}

// Fetch GETs a URL, retrying on transport failure or non-2xx status.
// Between attempts it sleeps BackoffFactor * 2^attempt seconds. Exhausted
// retries surface as an error wrapping ErrFetchFailed.
func (c *Client) Fetch(url string) ([]byte, error) {
	var lastErr error

	for attempt := 0; attempt <= c.MaxRetries; attempt++ {
		if attempt > 0 {
			sleep := time.Duration(c.BackoffFactor * math.Pow(2, float64(attempt-1)) * float64(time.Second))
			time.Sleep(sleep)
		}

		body, err := c.doGet(url)
		if err == nil {
			return body, nil
		}
		lastErr = err
	}

	return nil, fmt.Errorf("%w: %s after %d retries: %v", ErrFetchFailed, url, c.MaxRetries, lastErr)
}

// FetchJSON fetches a URL and decodes the body into v. A 2xx body that is not
// valid JSON yields an error wrapping ErrInvalidJSON; that is distinct from
// transport failure and is not retried.
func (c *Client) FetchJSON(url string, v interface{}) error {
	body, err := c.Fetch(url)
	if err != nil {
		return err
	}
	if err := json.Unmarshal(body, v); err != nil {
		return fmt.Errorf("%w from %s: %v", ErrInvalidJSON, url, err)
	}
	return nil
}

func (c *Client) doGet(url string) ([]byte, error) {
	// Rate limiting
	if !c.lastRequest.IsZero() {
		elapsed := time.Since(c.lastRequest)
		if elapsed < RateLimit {
			time.Sleep(RateLimit - elapsed)
		}
	}

	req, err := http.NewRequest("GET", url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("User-Agent", c.UserAgent())

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	c.lastRequest = time.Now()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("SEC returned status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}

	return body, nil
}
