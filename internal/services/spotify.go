// Spotify Web API client
//
// Spotify API response types live in [models], based on https://developer.spotify.com/documentation/web-api/reference/
package services

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

	"github.com/charmbracelet/log"
	"github.com/desertthunder/spotifyexp/internal/models"
	"github.com/desertthunder/spotifyexp/internal/shared"
	"golang.org/x/time/rate"
)

const (
	DefaultBaseURL     = "https://api.spotify.com/v1"
	DefaultAccountsURL = "https://accounts.spotify.com"
	DefaultMarket      = "from_token"
)

// ClientOpts contains configuration options for creating a [Client].
type ClientOpts struct {
	Config            *shared.Config // Required
	HTTPClient        *http.Client   // defaults to http.DefaultClient
	BaseURL           string         // defaults to DefaultBaseURL
	AccountsURL       string         // defaults to DefaultAccountsURL
	Market            string         // sent as market= where supported; empty omits it
	Limit             int            // page size, defaults to shared.MaxLimit
	RequestsPerSecond float64        // client-side pacing, 0 disables it
	Logger            *log.Logger
}

// Client issues authenticated requests against the Spotify Web API.
type Client struct {
	config      *shared.Config
	httpClient  *http.Client
	baseURL     string
	accountsURL string
	market      string
	limit       int
	limiter     *rate.Limiter
	logger      *log.Logger
}

// NewClient creates a new Spotify client from opts.
func NewClient(opts ClientOpts) (*Client, error) {
	if opts.Config == nil {
		return nil, fmt.Errorf("%w: spotify client requires a configuration", shared.ErrMissingConfig)
	}
	if opts.HTTPClient == nil {
		opts.HTTPClient = http.DefaultClient
	}
	if opts.BaseURL == "" {
		opts.BaseURL = DefaultBaseURL
	}
	if opts.AccountsURL == "" {
		opts.AccountsURL = DefaultAccountsURL
	}
	if opts.Limit <= 0 || opts.Limit > shared.MaxLimit {
		opts.Limit = shared.MaxLimit
	}
	if opts.Logger == nil {
		opts.Logger = log.New(io.Discard)
	}

	var limiter *rate.Limiter
	if opts.RequestsPerSecond > 0 {
		limiter = rate.NewLimiter(rate.Limit(opts.RequestsPerSecond), 1)
	}

	return &Client{
		config:      opts.Config,
		httpClient:  opts.HTTPClient,
		baseURL:     strings.TrimRight(opts.BaseURL, "/"),
		accountsURL: strings.TrimRight(opts.AccountsURL, "/"),
		market:      opts.Market,
		limit:       opts.Limit,
		limiter:     limiter,
		logger:      opts.Logger,
	}, nil
}

// request describes one call to the Web API.
type request struct {
	method string
	path   string
	query  url.Values
	body   any  // encoded as JSON when non-nil
	empty  bool // an empty 2xx body means no content
}

// do performs an authenticated request and decodes a successful body into result.
//
// result may be nil for endpoints without a response body. The returned status is
// meaningful only when err is nil; a 204 leaves result untouched, as does an empty
// body when req.empty is set, which is reported as 204.
func (c *Client) do(ctx context.Context, req request, result any) (int, error) {
	if err := c.wait(ctx); err != nil {
		return 0, err
	}

	endpoint := c.baseURL + req.path
	if len(req.query) > 0 {
		endpoint += "?" + req.query.Encode()
	}

	var body io.Reader
	if req.body != nil {
		data, err := json.Marshal(req.body)
		if err != nil {
			return 0, fmt.Errorf("failed to encode request body: %w", err)
		}
		body = bytes.NewReader(data)
	}

	httpReq, err := http.NewRequestWithContext(ctx, req.method, endpoint, body)
	if err != nil {
		return 0, fmt.Errorf("failed to create request: %w", err)
	}

	httpReq.Header.Set("Authorization", "Bearer "+c.config.AccessToken)
	httpReq.Header.Set("Accept", "application/json")
	if body != nil {
		httpReq.Header.Set("Content-Type", "application/json")
	}

	c.logger.Debug("spotify request", "method", req.method, "path", req.path)

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return 0, &TransportError{Method: req.method, Path: req.path, Err: err}
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return 0, &TransportError{Method: req.method, Path: req.path, Err: fmt.Errorf("failed to read response: %w", err)}
	}

	c.logger.Debug("spotify response", "method", req.method, "path", req.path, "status", resp.StatusCode)

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return 0, newAPIError(resp.StatusCode, data)
	}

	// Some endpoints have answered 2xx with an error envelope.
	if envelope, ok := models.ParseErrorResponse(data); ok {
		return 0, envelopeError(resp.StatusCode, envelope)
	}

	if result == nil || resp.StatusCode == http.StatusNoContent {
		return resp.StatusCode, nil
	}
	if req.empty && len(bytes.TrimSpace(data)) == 0 {
		return http.StatusNoContent, nil
	}

	if err := json.Unmarshal(data, result); err != nil {
		return 0, &DecodeError{Path: req.path, Err: err}
	}

	return resp.StatusCode, nil
}

// wait blocks until the pacing limiter admits another request.
func (c *Client) wait(ctx context.Context) error {
	if c.limiter == nil {
		return nil
	}
	return c.limiter.Wait(ctx)
}

// catalogQuery returns the market and limit parameters shared by catalog reads.
func (c *Client) catalogQuery() url.Values {
	query := url.Values{}
	if c.market != "" {
		query.Set("market", c.market)
	}
	query.Set("limit", strconv.Itoa(c.limit))
	return query
}

// SearchAlbums searches the catalog for albums matching query.
func (c *Client) SearchAlbums(ctx context.Context, query string) (*models.SearchAlbumsResponse, error) {
	params := c.catalogQuery()
	params.Set("q", query)
	params.Set("type", "album")

	var response models.SearchAlbumsResponse
	if _, err := c.do(ctx, request{method: http.MethodGet, path: "/search", query: params}, &response); err != nil {
		return nil, err
	}
	return &response, nil
}

// SearchArtists searches the catalog for artists matching query.
func (c *Client) SearchArtists(ctx context.Context, query string) (*models.SearchArtistsResponse, error) {
	params := c.catalogQuery()
	params.Set("q", query)
	params.Set("type", "artist")

	var response models.SearchArtistsResponse
	if _, err := c.do(ctx, request{method: http.MethodGet, path: "/search", query: params}, &response); err != nil {
		return nil, err
	}
	return &response, nil
}

// AlbumTracks lists the tracks of an album.
func (c *Client) AlbumTracks(ctx context.Context, albumID string) (*models.ListTracksResponse, error) {
	path := fmt.Sprintf("/albums/%s/tracks", url.PathEscape(albumID))

	var response models.ListTracksResponse
	if _, err := c.do(ctx, request{method: http.MethodGet, path: path, query: c.catalogQuery()}, &response); err != nil {
		return nil, err
	}
	return &response, nil
}

// Playlists lists the current user's playlists.
func (c *Client) Playlists(ctx context.Context) (*models.GetPlaylistsResponse, error) {
	params := url.Values{}
	params.Set("limit", strconv.Itoa(c.limit))

	var response models.GetPlaylistsResponse
	if _, err := c.do(ctx, request{method: http.MethodGet, path: "/me/playlists", query: params}, &response); err != nil {
		return nil, err
	}
	return &response, nil
}
