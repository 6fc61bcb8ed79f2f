package netbox

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"
)

// APIError is returned when NetBox responds with a non-2xx status.
// It lets callers distinguish upstream fetch failures from adaptation
// failures in the topology pipeline.
type APIError struct {
	Method     string
	Path       string
	StatusCode int
	Body       string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("netbox API %s %s returned %d: %s", e.Method, e.Path, e.StatusCode, e.Body)
}

// Client wraps the NetBox REST API v4 for read-only topology export.
type Client struct {
	httpClient *http.Client
	baseURL    string
	token      string
	pageSize   int
}

// NewClient creates a new NetBox API client.
func NewClient(baseURL, token string, timeout time.Duration, pageSize int) *Client {
	if timeout == 0 {
		timeout = 30 * time.Second
	}
	if pageSize <= 0 {
		pageSize = 500
	}
	return &Client{
		httpClient: &http.Client{Timeout: timeout},
		baseURL:    strings.TrimRight(baseURL, "/"),
		token:      token,
		pageSize:   pageSize,
	}
}

// ListDevices retrieves all devices, draining pagination.
func (c *Client) ListDevices(ctx context.Context) ([]NBDevice, error) {
	return listAll[NBDevice](ctx, c, "/api/dcim/devices/")
}

// ListInterfaces retrieves all device interfaces, draining pagination.
func (c *Client) ListInterfaces(ctx context.Context) ([]NBInterface, error) {
	return listAll[NBInterface](ctx, c, "/api/dcim/interfaces/")
}

// ListCables retrieves all cables, draining pagination.
func (c *Client) ListCables(ctx context.Context) ([]NBCable, error) {
	return listAll[NBCable](ctx, c, "/api/dcim/cables/")
}

// ListIPAddresses retrieves all IP address assignments, draining pagination.
func (c *Client) ListIPAddresses(ctx context.Context) ([]NBIPAddress, error) {
	return listAll[NBIPAddress](ctx, c, "/api/ipam/ip-addresses/")
}

// ListSites retrieves all sites, draining pagination.
func (c *Client) ListSites(ctx context.Context) ([]NBSite, error) {
	return listAll[NBSite](ctx, c, "/api/dcim/sites/")
}

// ListNeighbors retrieves LLDP neighbor reports from the configured
// collector endpoint (a NetBox plugin path, e.g. "/api/plugins/lldp/neighbors/").
func (c *Client) ListNeighbors(ctx context.Context, path string) ([]NBNeighbor, error) {
	return listAll[NBNeighbor](ctx, c, path)
}

// FetchSnapshot retrieves one complete discovery snapshot. The five list
// endpoints are independent reads with no ordering dependency, so they are
// fetched concurrently. neighborPath is optional; when empty the snapshot
// carries no LLDP neighbor reports.
func (c *Client) FetchSnapshot(ctx context.Context, neighborPath string) (*Snapshot, error) {
	var snap Snapshot

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		snap.Devices, err = c.ListDevices(ctx)
		return err
	})
	g.Go(func() (err error) {
		snap.Interfaces, err = c.ListInterfaces(ctx)
		return err
	})
	g.Go(func() (err error) {
		snap.Cables, err = c.ListCables(ctx)
		return err
	})
	g.Go(func() (err error) {
		snap.IPAddresses, err = c.ListIPAddresses(ctx)
		return err
	})
	g.Go(func() (err error) {
		snap.Sites, err = c.ListSites(ctx)
		return err
	})
	if neighborPath != "" {
		g.Go(func() (err error) {
			snap.LLDPNeighbors, err = c.ListNeighbors(ctx, neighborPath)
			return err
		})
	}

	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("fetch snapshot: %w", err)
	}
	return &snap, nil
}

// listAll drains a paginated NetBox list endpoint by following Next links.
func listAll[T any](ctx context.Context, c *Client, path string) ([]T, error) {
	sep := "?"
	if strings.Contains(path, "?") {
		sep = "&"
	}
	next := fmt.Sprintf("%s%slimit=%d", path, sep, c.pageSize)

	var out []T
	for next != "" {
		var resp ListResponse[T]
		if err := c.getJSON(ctx, next, &resp); err != nil {
			return nil, fmt.Errorf("list %s: %w", path, err)
		}
		out = append(out, resp.Results...)

		var err error
		next, err = relativePath(resp.Next)
		if err != nil {
			// Ending the loop here would silently truncate the listing.
			return nil, fmt.Errorf("list %s: next link %q: %w", path, resp.Next, err)
		}
	}
	return out, nil
}

// relativePath strips the scheme/host from a NetBox "next" URL so the
// pagination loop always goes through the client's configured base URL.
// An empty Next means the listing is complete.
func relativePath(raw string) (string, error) {
	if raw == "" {
		return "", nil
	}
	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.RawQuery != "" {
		return u.Path + "?" + u.RawQuery, nil
	}
	return u.Path, nil
}

// getJSON performs a GET request and decodes the JSON response.
func (c *Client) getJSON(ctx context.Context, path string, result any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}

	if c.token != "" {
		req.Header.Set("Authorization", "Token "+c.token)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("http GET %s: %w", path, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("read response: %w", err)
	}

	if resp.StatusCode >= 400 {
		return &APIError{Method: http.MethodGet, Path: path, StatusCode: resp.StatusCode, Body: string(body)}
	}

	if err := json.Unmarshal(body, result); err != nil {
		return fmt.Errorf("unmarshal response: %w", err)
	}
	return nil
}
