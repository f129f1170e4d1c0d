package apiclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"cloud.google.com/go/longrunning/autogen/longrunningpb"
	clusterdomain "github.com/10Narratives/nimbus/internal/domains/clusters"
	"google.golang.org/protobuf/encoding/protojson"
)

// Client talks to the gateway's REST surface. It doubles as the waiter's
// status-fetch capability for operations started over HTTP.
type Client struct {
	baseURL string
	http    *http.Client
}

func New(baseURL string, timeout time.Duration) (*Client, error) {
	baseURL = strings.TrimRight(baseURL, "/")
	if baseURL == "" {
		return nil, fmt.Errorf("gateway base URL is required")
	}
	if _, err := url.Parse(baseURL); err != nil {
		return nil, fmt.Errorf("malformed gateway base URL %q: %w", baseURL, err)
	}

	return &Client{
		baseURL: baseURL,
		http:    &http.Client{Timeout: timeout},
	}, nil
}

// APIError is the gateway's JSON error envelope. Throttling and bad-gateway
// answers are temporary: the waiter may retry the fetch.
type APIError struct {
	Code    int    `json:"code"`
	Status  string `json:"status"`
	Message string `json:"message"`
}

func (e *APIError) Error() string {
	return fmt.Sprintf("gateway returned %d (%s): %s", e.Code, e.Status, e.Message)
}

func (e *APIError) Temporary() bool {
	switch e.Code {
	case http.StatusTooManyRequests, http.StatusBadGateway,
		http.StatusServiceUnavailable, http.StatusGatewayTimeout:
		return true
	}
	return false
}

type CreateClusterRequest struct {
	DisplayName string `json:"display_name"`
	NodeCount   int32  `json:"node_count"`
}

func (c *Client) CreateCluster(ctx context.Context, req *CreateClusterRequest) (*longrunningpb.Operation, error) {
	body, err := json.Marshal(req)
	if err != nil {
		return nil, err
	}

	raw, err := c.do(ctx, http.MethodPost, "/v1/clusters", body)
	if err != nil {
		return nil, err
	}
	return decodeOperation(raw)
}

func (c *Client) GetCluster(ctx context.Context, name string) (*clusterdomain.Cluster, error) {
	raw, err := c.do(ctx, http.MethodGet, "/v1/"+name, nil)
	if err != nil {
		return nil, err
	}

	var cluster clusterdomain.Cluster
	if err := json.Unmarshal(raw, &cluster); err != nil {
		return nil, fmt.Errorf("decode cluster: %w", err)
	}
	return &cluster, nil
}

type ListClustersResponse struct {
	Clusters      []*clusterdomain.Cluster `json:"clusters"`
	NextPageToken string                   `json:"next_page_token"`
}

func (c *Client) ListClusters(ctx context.Context, pageSize int32, pageToken string) (*ListClustersResponse, error) {
	query := url.Values{}
	if pageSize > 0 {
		query.Set("page_size", strconv.FormatInt(int64(pageSize), 10))
	}
	if pageToken != "" {
		query.Set("page_token", pageToken)
	}

	path := "/v1/clusters"
	if len(query) > 0 {
		path += "?" + query.Encode()
	}

	raw, err := c.do(ctx, http.MethodGet, path, nil)
	if err != nil {
		return nil, err
	}

	var res ListClustersResponse
	if err := json.Unmarshal(raw, &res); err != nil {
		return nil, fmt.Errorf("decode cluster list: %w", err)
	}
	return &res, nil
}

func (c *Client) DeleteCluster(ctx context.Context, name string) (*longrunningpb.Operation, error) {
	raw, err := c.do(ctx, http.MethodDelete, "/v1/"+name, nil)
	if err != nil {
		return nil, err
	}
	return decodeOperation(raw)
}

func (c *Client) ExportCluster(ctx context.Context, name string) (*longrunningpb.Operation, error) {
	raw, err := c.do(ctx, http.MethodPost, "/v1/"+name+":export", nil)
	if err != nil {
		return nil, err
	}
	return decodeOperation(raw)
}

// FetchOperation implements lro.StatusFetcher.
func (c *Client) FetchOperation(ctx context.Context, name string) (*longrunningpb.Operation, error) {
	raw, err := c.do(ctx, http.MethodGet, "/v1/"+name, nil)
	if err != nil {
		return nil, err
	}
	return decodeOperation(raw)
}

func (c *Client) do(ctx context.Context, method, path string, body []byte) ([]byte, error) {
	var reader io.Reader
	if body != nil {
		reader = bytes.NewReader(body)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return nil, err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, decodeError(resp.StatusCode, raw)
	}
	return raw, nil
}

func decodeError(code int, raw []byte) error {
	var envelope struct {
		Error APIError `json:"error"`
	}
	if err := json.Unmarshal(raw, &envelope); err == nil && envelope.Error.Code != 0 {
		return &envelope.Error
	}

	return &APIError{Code: code, Status: http.StatusText(code), Message: string(raw)}
}

func decodeOperation(raw []byte) (*longrunningpb.Operation, error) {
	var op longrunningpb.Operation
	if err := protojson.Unmarshal(raw, &op); err != nil {
		return nil, fmt.Errorf("decode operation: %w", err)
	}
	return &op, nil
}
