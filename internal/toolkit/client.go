package toolkit

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/rewined/labelgrid/internal/catalog"
)

// ProductFetcher is the subset of the client the catalog loader needs.
// Implemented by *Client; fakes implement it in tests.
type ProductFetcher interface {
	FetchProducts(ctx context.Context) ([]catalog.Product, error)
}

var _ ProductFetcher = (*Client)(nil)

// Client talks to the label toolkit HTTP API.
type Client struct {
	baseURL   *url.URL
	http      *http.Client
	userAgent string
}

const (
	defaultServerBind = "127.0.0.1:5000"
	defaultUserAgent  = "labelgrid/0.1"
	requestTimeout    = 30 * time.Second
)

// NewClient builds a Client using the provided host:port value.
func NewClient(serverBind string) (*Client, error) {
	base, err := parseBaseURL(serverBind)
	if err != nil {
		return nil, err
	}
	return &Client{
		baseURL: base,
		http: &http.Client{
			Timeout: requestTimeout,
		},
		userAgent: defaultUserAgent,
	}, nil
}

// FetchProducts retrieves the sellable product catalog.
func (c *Client) FetchProducts(ctx context.Context) ([]catalog.Product, error) {
	if c == nil {
		return nil, fmt.Errorf("client is nil")
	}
	var payload []catalog.Product
	if err := c.get(ctx, "/labels/products", &payload); err != nil {
		return nil, err
	}
	return catalog.Normalize(payload), nil
}

// FetchFormats retrieves the label formats the service can render.
func (c *Client) FetchFormats(ctx context.Context) ([]Format, error) {
	if c == nil {
		return nil, fmt.Errorf("client is nil")
	}
	var payload []Format
	if err := c.get(ctx, "/formats", &payload); err != nil {
		return nil, err
	}
	return payload, nil
}

// UploadCSV posts a CSV file for server-side parsing and returns the
// structured rows. The grid itself never parses files.
func (c *Client) UploadCSV(ctx context.Context, path string) (ImportResponse, error) {
	if c == nil {
		return ImportResponse{}, fmt.Errorf("client is nil")
	}

	file, err := os.Open(path)
	if err != nil {
		return ImportResponse{}, fmt.Errorf("open csv: %w", err)
	}
	defer func() { _ = file.Close() }()

	var body bytes.Buffer
	writer := multipart.NewWriter(&body)
	part, err := writer.CreateFormFile("file", filepath.Base(path))
	if err != nil {
		return ImportResponse{}, fmt.Errorf("create form file: %w", err)
	}
	if _, err := io.Copy(part, file); err != nil {
		return ImportResponse{}, fmt.Errorf("read csv: %w", err)
	}
	if err := writer.Close(); err != nil {
		return ImportResponse{}, fmt.Errorf("finish form: %w", err)
	}

	reqURL := c.baseURL.ResolveReference(&url.URL{Path: "/labels/upload"})
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, reqURL.String(), &body)
	if err != nil {
		return ImportResponse{}, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", c.userAgent)

	var payload ImportResponse
	if err := c.send(req, &payload); err != nil {
		return ImportResponse{}, err
	}
	return payload, nil
}

// GenerateLabels submits validated items and returns the rendering result.
func (c *Client) GenerateLabels(ctx context.Context, request GenerateRequest) (GenerateResponse, error) {
	if c == nil {
		return GenerateResponse{}, fmt.Errorf("client is nil")
	}

	encoded, err := json.Marshal(request)
	if err != nil {
		return GenerateResponse{}, fmt.Errorf("encode request: %w", err)
	}

	reqURL := c.baseURL.ResolveReference(&url.URL{Path: "/labels/generate"})
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, reqURL.String(), bytes.NewReader(encoded))
	if err != nil {
		return GenerateResponse{}, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", c.userAgent)

	var payload GenerateResponse
	if err := c.send(req, &payload); err != nil {
		return GenerateResponse{}, err
	}
	return payload, nil
}

func (c *Client) get(ctx context.Context, path string, dest any) error {
	reqURL := c.baseURL.ResolveReference(&url.URL{Path: path})
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL.String(), nil)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", c.userAgent)
	return c.send(req, dest)
}

func (c *Client) send(req *http.Request, dest any) error {
	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("execute request: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode >= 400 {
		return fmt.Errorf("api %s returned status %d", req.URL.Path, resp.StatusCode)
	}
	if dest == nil {
		return nil
	}
	decoder := json.NewDecoder(resp.Body)
	if err := decoder.Decode(dest); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

func parseBaseURL(serverBind string) (*url.URL, error) {
	trimmed := strings.TrimSpace(serverBind)
	if trimmed == "" {
		trimmed = defaultServerBind
	}
	if !strings.Contains(trimmed, "://") {
		trimmed = "http://" + trimmed
	}
	u, err := url.Parse(trimmed)
	if err != nil {
		return nil, fmt.Errorf("parse server_bind %q: %w", serverBind, err)
	}
	u.Path = ""
	u.RawQuery = ""
	u.Fragment = ""
	return u, nil
}
