package services

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"github.com/desertthunder/spotifyexp/internal/models"
	"github.com/desertthunder/spotifyexp/internal/shared"
)

// playRequest is the body of PUT /me/player/play. The zero value encodes as {} and resumes the loaded context.
type playRequest struct {
	URIs       []string `json:"uris,omitempty"`
	ContextURI string   `json:"context_uri,omitempty"`
}

type emptyBody struct{}

// deviceQuery targets a device; an empty id leaves the choice to Spotify (the active device).
func deviceQuery(deviceID string) url.Values {
	query := url.Values{}
	if deviceID != "" {
		query.Set("device_id", deviceID)
	}
	return query
}

// Devices lists the user's available Spotify Connect devices.
func (c *Client) Devices(ctx context.Context) (*models.DevicesResponse, error) {
	var response models.DevicesResponse
	if _, err := c.do(ctx, request{method: http.MethodGet, path: "/me/player/devices"}, &response); err != nil {
		return nil, err
	}
	return &response, nil
}

// CurrentlyPlaying returns the player state.
//
// Spotify answers 204, or occasionally 200 with no body, when no device is active; both are reported as (nil, nil).
func (c *Client) CurrentlyPlaying(ctx context.Context) (*models.CurrentlyPlayingTrackResponse, error) {
	query := url.Values{}
	if c.market != "" {
		query.Set("market", c.market)
	}

	var response models.CurrentlyPlayingTrackResponse
	status, err := c.do(ctx, request{method: http.MethodGet, path: "/me/player/currently-playing", query: query, empty: true}, &response)
	if err != nil {
		return nil, err
	}
	if status == http.StatusNoContent {
		return nil, nil
	}
	return &response, nil
}

// StartPlayback replaces the device's playback with the given track URIs.
//
// At least one URI is required; use [Client.Resume] to continue the loaded context.
func (c *Client) StartPlayback(ctx context.Context, deviceID string, uris []string) error {
	if len(uris) == 0 {
		return fmt.Errorf("%w: at least one track URI", shared.ErrMissingArgument)
	}
	return c.play(ctx, deviceID, playRequest{URIs: uris})
}

// StartPlaybackContext plays an album or playlist context URI.
func (c *Client) StartPlaybackContext(ctx context.Context, deviceID, contextURI string) error {
	if contextURI == "" {
		return fmt.Errorf("%w: context URI", shared.ErrMissingArgument)
	}
	return c.play(ctx, deviceID, playRequest{ContextURI: contextURI})
}

// Resume starts playback of whatever context the device already has loaded.
func (c *Client) Resume(ctx context.Context, deviceID string) error {
	return c.play(ctx, deviceID, playRequest{})
}

func (c *Client) play(ctx context.Context, deviceID string, body playRequest) error {
	_, err := c.do(ctx, request{method: http.MethodPut, path: "/me/player/play", query: deviceQuery(deviceID), body: body}, nil)
	return err
}

// Enqueue appends a track to the end of the device's queue.
func (c *Client) Enqueue(ctx context.Context, deviceID, uri string) error {
	query := deviceQuery(deviceID)
	query.Set("uri", uri)

	_, err := c.do(ctx, request{method: http.MethodPost, path: "/me/player/queue", query: query, body: emptyBody{}}, nil)
	return err
}

// SkipToNext skips to the next track in the device's queue.
func (c *Client) SkipToNext(ctx context.Context, deviceID string) error {
	_, err := c.do(ctx, request{method: http.MethodPost, path: "/me/player/next", query: deviceQuery(deviceID), body: emptyBody{}}, nil)
	return err
}

// Pause pauses playback on the device.
func (c *Client) Pause(ctx context.Context, deviceID string) error {
	_, err := c.do(ctx, request{method: http.MethodPut, path: "/me/player/pause", query: deviceQuery(deviceID), body: emptyBody{}}, nil)
	return err
}
