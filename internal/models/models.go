package models

import (
	"encoding/json"
	"time"
)

// Artist represents a simplified Spotify artist.
type Artist struct {
	ID   string `json:"id"`
	Href string `json:"href"`
	Name string `json:"name"`
	URI  string `json:"uri"`
}

// Album represents a simplified Spotify album.
type Album struct {
	ID          string   `json:"id"`
	Href        string   `json:"href"`
	Artists     []Artist `json:"artists"`
	Name        string   `json:"name"`
	ReleaseDate string   `json:"release_date"`
	URI         string   `json:"uri"`
}

// Track represents a simplified Spotify track as listed on an album.
type Track struct {
	ID          string   `json:"id"`
	Href        string   `json:"href"`
	Name        string   `json:"name"`
	URI         string   `json:"uri"`
	Artists     []Artist `json:"artists"`
	DurationMS  int      `json:"duration_ms"`
	TrackNumber int      `json:"track_number"`
	DiscNumber  int      `json:"disc_number"`
	Explicit    bool     `json:"explicit"`
}

// Duration returns the track length.
func (t Track) Duration() time.Duration {
	return time.Duration(t.DurationMS) * time.Millisecond
}

// Paging is Spotify's windowed list envelope.
type Paging[T any] struct {
	Href     string  `json:"href"`
	Items    []T     `json:"items"`
	Limit    int     `json:"limit"`
	Offset   int     `json:"offset"`
	Total    int     `json:"total"`
	Next     *string `json:"next"`
	Previous *string `json:"previous"`
}

// Valid reports whether the page is consistent with its declared window.
//
// The API is trusted for this and decoding never enforces it.
func (p Paging[T]) Valid() bool {
	return len(p.Items) <= p.Limit && p.Offset+len(p.Items) <= p.Total
}

// HasNext reports whether the API advertised a following page.
func (p Paging[T]) HasNext() bool {
	return p.Next != nil && *p.Next != ""
}

// Device is a Spotify Connect playback target.
type Device struct {
	ID               *string `json:"id"` // null for some restricted devices
	IsActive         bool    `json:"is_active"`
	IsPrivateSession bool    `json:"is_private_session"`
	IsRestricted     bool    `json:"is_restricted"`
	Name             string  `json:"name"`
	Type             string  `json:"type"`
	VolumePercent    *int    `json:"volume_percent"`
}

// DeviceID returns the device id or an empty string.
func (d Device) DeviceID() string {
	if d.ID == nil {
		return ""
	}
	return *d.ID
}

// PlaylistOwner identifies the user owning a playlist.
type PlaylistOwner struct {
	ID          string `json:"id"`
	DisplayName string `json:"display_name"`
}

// PlaylistTracksRef points at a playlist's tracks without embedding them.
type PlaylistTracksRef struct {
	Href  string `json:"href"`
	Total int    `json:"total"`
}

// Playlist represents a simplified Spotify playlist.
type Playlist struct {
	ID            string            `json:"id"`
	Href          string            `json:"href"`
	Name          string            `json:"name"`
	Description   string            `json:"description"`
	URI           string            `json:"uri"`
	Public        *bool             `json:"public"`
	Collaborative bool              `json:"collaborative"`
	Owner         PlaylistOwner     `json:"owner"`
	Tracks        PlaylistTracksRef `json:"tracks"`
}

// CurrentlyPlayingItem is the track (or episode) in the player.
type CurrentlyPlayingItem struct {
	Album      *Album   `json:"album"`
	Artists    []Artist `json:"artists"`
	Name       string   `json:"name"`
	URI        string   `json:"uri"`
	DurationMS int      `json:"duration_ms"`
}

// CurrentlyPlayingTrackResponse is the body of GET /me/player/currently-playing.
type CurrentlyPlayingTrackResponse struct {
	Timestamp            int64                 `json:"timestamp"`
	ProgressMS           *int                  `json:"progress_ms"`
	IsPlaying            bool                  `json:"is_playing"`
	CurrentlyPlayingType string                `json:"currently_playing_type"` // track, episode, ad, unknown
	Item                 *CurrentlyPlayingItem `json:"item"`
}

// SearchAlbumsResponse is the body of GET /search?type=album.
type SearchAlbumsResponse struct {
	Albums Paging[Album] `json:"albums"`
}

// SearchArtistsResponse is the body of GET /search?type=artist.
type SearchArtistsResponse struct {
	Artists Paging[Artist] `json:"artists"`
}

// ListTracksResponse is the body of GET /albums/{id}/tracks.
type ListTracksResponse = Paging[Track]

// GetPlaylistsResponse is the body of GET /me/playlists.
type GetPlaylistsResponse = Paging[Playlist]

// DevicesResponse is the body of GET /me/player/devices.
type DevicesResponse struct {
	Devices []Device `json:"devices"`
}

// TokenResponse carries the tokens obtained from a refresh grant.
type TokenResponse struct {
	AccessToken  string    `json:"access_token"`
	TokenType    string    `json:"token_type"`
	Scope        string    `json:"scope,omitempty"`
	RefreshToken string    `json:"refresh_token"`
	Expiry       time.Time `json:"expiry,omitzero"`
}

// Error is the payload of the API error envelope.
type Error struct {
	Status  int    `json:"status"`
	Message string `json:"message"`
}

// ErrorResponse is the error envelope used uniformly across endpoints.
type ErrorResponse struct {
	Error Error `json:"error"`
}

// ParseErrorResponse decodes data as an error envelope.
//
// It reports false unless data is a JSON object with an "error" object carrying a non-empty message.
func ParseErrorResponse(data []byte) (*ErrorResponse, bool) {
	var envelope struct {
		Error *Error `json:"error"`
	}
	if err := json.Unmarshal(data, &envelope); err != nil {
		return nil, false
	}
	if envelope.Error == nil || envelope.Error.Message == "" {
		return nil, false
	}
	return &ErrorResponse{Error: *envelope.Error}, true
}
