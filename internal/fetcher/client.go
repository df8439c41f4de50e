// Package fetcher retrieves actress records from the remote service.
//
// Every public operation is total: failures are reported to the Sink and
// surface as nil records, empty slices, or a Result describing what went wrong.
package fetcher

import (
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"golang.org/x/time/rate"

	"actresses/internal/config"
	"actresses/internal/normalizer"
	"actresses/pkg/utils"
)

const (
	defaultMaxConcurrency = config.DefaultMaxConcurrency
	defaultMaxBodyBytes   = int64(config.DefaultMaxBodyKb) * 1024
	collectionPath        = "actresses"
)

// ErrInvalidBaseURL is returned by New for a base URL that is not absolute http(s).
var ErrInvalidBaseURL = errors.New("base URL must be an absolute http(s) URL")

// Sink receives diagnostics for failed fetches.
type Sink interface {
	Warn(msg string, args ...any)
	Error(msg string, args ...any)
}

type nopSink struct{}

func (nopSink) Warn(string, ...any)  {}
func (nopSink) Error(string, ...any) {}

// Options configures a Client. Zero values select defaults.
type Options struct {
	HTTPClient *http.Client
	Processor  *normalizer.Processor
	Sink       Sink
	BaseURL    string
	UserAgent  string
	// MaxConcurrency caps in-flight requests for batch lookups.
	MaxConcurrency int
	MaxBodyBytes   int64
	// RateLimit is requests per second across the client; 0 disables limiting.
	RateLimit float64
}

// Client fetches actresses from {BaseURL}/actresses.
type Client struct {
	httpClient     *http.Client
	processor      *normalizer.Processor
	sink           Sink
	limiter        *rate.Limiter
	headers        *utils.HTTPHelper
	baseURL        string
	userAgent      string
	maxConcurrency int
	maxBodyBytes   int64
}

// New creates a client from opts.
func New(opts Options) (*Client, error) {
	base := strings.TrimRight(strings.TrimSpace(opts.BaseURL), "/")

	headers := utils.NewHTTPHelper()
	if !headers.IsValidURL(base) {
		return nil, fmt.Errorf("%w: %q", ErrInvalidBaseURL, opts.BaseURL)
	}

	c := &Client{
		httpClient:     opts.HTTPClient,
		processor:      opts.Processor,
		sink:           opts.Sink,
		headers:        headers,
		baseURL:        base,
		userAgent:      opts.UserAgent,
		maxConcurrency: opts.MaxConcurrency,
		maxBodyBytes:   opts.MaxBodyBytes,
	}

	if c.httpClient == nil {
		c.httpClient = &http.Client{Timeout: time.Duration(config.DefaultTimeoutSec) * time.Second}
	}

	if c.processor == nil {
		c.processor = normalizer.NewProcessor()
	}

	if c.sink == nil {
		c.sink = nopSink{}
	}

	if c.userAgent == "" {
		c.userAgent = config.DefaultUserAgent
	}

	if c.maxConcurrency <= 0 {
		c.maxConcurrency = defaultMaxConcurrency
	}

	if c.maxBodyBytes <= 0 {
		c.maxBodyBytes = defaultMaxBodyBytes
	}

	if opts.RateLimit > 0 {
		c.limiter = rate.NewLimiter(rate.Limit(opts.RateLimit), c.maxConcurrency)
	}

	return c, nil
}

// NewFromConfig creates a client for cfg, reporting diagnostics to sink.
func NewFromConfig(cfg *config.Config, sink Sink) (*Client, error) {
	validator := &normalizer.Validator{OptionalDeathYear: cfg.Validation.OptionalDeathYear}

	return New(Options{
		HTTPClient:     &http.Client{Timeout: cfg.Client.GetTimeout()},
		Processor:      normalizer.NewProcessorWithValidator(validator),
		Sink:           sink,
		BaseURL:        cfg.Client.BaseURL,
		UserAgent:      cfg.Client.UserAgent,
		MaxConcurrency: cfg.Client.MaxConcurrency,
		MaxBodyBytes:   cfg.Client.GetMaxBodyBytes(),
		RateLimit:      cfg.Client.RateLimitRPS,
	})
}

func (c *Client) collectionURL() string {
	u, _ := url.JoinPath(c.baseURL, collectionPath)
	return u
}

func (c *Client) actressURL(id int) string {
	u, _ := url.JoinPath(c.baseURL, collectionPath, strconv.Itoa(id))
	return u
}
