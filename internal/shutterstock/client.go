// Package shutterstock is a client for the v2 stock media API.
//
// A Client exposes two endpoints, Image and Video, each supporting list by id,
// get by id and keyword search. Every call issues exactly one GET request and
// returns exactly one outcome.
package shutterstock

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/vadimtrunov/stockmedia/internal/httpclient"
	"github.com/vadimtrunov/stockmedia/internal/query"
)

// DefaultBaseURL is the production API host.
const DefaultBaseURL = "https://api.shutterstock.com"

// Config holds client construction settings.
type Config struct {
	BaseURL      string // defaults to DefaultBaseURL
	Token        string // OAuth bearer token; takes precedence over ClientID/ClientSecret
	ClientID     string // HTTP basic auth user
	ClientSecret string // HTTP basic auth password
	Timeout      time.Duration
	UserAgent    string
	HTTPClient   *http.Client // optional; overrides Timeout
}

// Response wraps the raw HTTP response of a call. The body has already been consumed.
type Response struct {
	*http.Response
}

// Client is the API facade. It is immutable after New and safe for concurrent use.
type Client struct {
	baseURL      string
	token        string
	clientID     string
	clientSecret string
	http         *httpclient.Client
	logger       *slog.Logger

	Image *Endpoint[Image, ImageDetails]
	Video *Endpoint[Video, VideoDetails]
}

// New creates a Client from cfg.
func New(cfg Config, logger *slog.Logger) (*Client, error) {
	if logger == nil {
		logger = slog.Default()
	}

	baseURL := strings.TrimRight(cfg.BaseURL, "/")
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	u, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid base URL: %w", err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return nil, fmt.Errorf("invalid base URL %q: must use http or https", baseURL)
	}
	if u.Host == "" {
		return nil, fmt.Errorf("invalid base URL %q: missing host", baseURL)
	}

	hcfg := httpclient.DefaultConfig()
	if cfg.Timeout > 0 {
		hcfg.Timeout = cfg.Timeout
	}
	if cfg.UserAgent != "" {
		hcfg.UserAgent = cfg.UserAgent
	}

	var hc *httpclient.Client
	if cfg.HTTPClient != nil {
		hc = httpclient.NewWithHTTPClient(hcfg, cfg.HTTPClient, logger)
	} else {
		hc = httpclient.New(hcfg, logger)
	}

	c := &Client{
		baseURL:      baseURL,
		token:        cfg.Token,
		clientID:     cfg.ClientID,
		clientSecret: cfg.ClientSecret,
		http:         hc,
		logger:       logger,
	}
	c.Image = newEndpoint[Image, ImageDetails](c, ResourceImages, imageKeys)
	c.Video = newEndpoint[Video, VideoDetails](c, ResourceVideos, videoKeys)
	return c, nil
}

// BaseURL returns the API root the client talks to.
func (c *Client) BaseURL() string { return c.baseURL }

// get performs an authenticated GET and normalizes the response.
// The returned Response is non-nil whenever the server answered.
func (c *Client) get(ctx context.Context, path string, params *query.Params) (*Response, []byte, error) {
	rawURL := c.baseURL + path
	if q := params.Encode(); q != "" {
		rawURL += "?" + q
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, http.NoBody)
	if err != nil {
		return nil, nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	c.authorize(req)

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, nil, &TransportError{Method: http.MethodGet, URL: rawURL, Err: err}
	}

	body, err := normalize(resp)
	return &Response{Response: resp}, body, err
}

func (c *Client) authorize(req *http.Request) {
	switch {
	case c.token != "":
		req.Header.Set("Authorization", "Bearer "+c.token)
	case c.clientID != "":
		req.SetBasicAuth(c.clientID, c.clientSecret)
	}
}
