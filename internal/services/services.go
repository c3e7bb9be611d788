package services

import (
	"context"

	"github.com/desertthunder/spotifyexp/internal/models"
)

// Spotify is the set of Web API operations exposed to the CLI.
//
// [Client] implements it; tests substitute a recording mock.
type Spotify interface {
	// SearchAlbums searches the catalog for albums matching query.
	SearchAlbums(ctx context.Context, query string) (*models.SearchAlbumsResponse, error)

	// SearchArtists searches the catalog for artists matching query.
	SearchArtists(ctx context.Context, query string) (*models.SearchArtistsResponse, error)

	// AlbumTracks lists the tracks of an album.
	AlbumTracks(ctx context.Context, albumID string) (*models.ListTracksResponse, error)

	// Playlists lists the current user's playlists.
	Playlists(ctx context.Context) (*models.GetPlaylistsResponse, error)

	// Devices lists the user's available Spotify Connect devices.
	Devices(ctx context.Context) (*models.DevicesResponse, error)

	// CurrentlyPlaying returns the player state, or nil when nothing is loaded.
	CurrentlyPlaying(ctx context.Context) (*models.CurrentlyPlayingTrackResponse, error)

	// StartPlayback starts playing the given track URIs on a device.
	StartPlayback(ctx context.Context, deviceID string, uris []string) error

	// StartPlaybackContext starts playing an album or playlist context on a device.
	StartPlaybackContext(ctx context.Context, deviceID, contextURI string) error

	// Resume starts playback of whatever context is already loaded.
	Resume(ctx context.Context, deviceID string) error

	// Enqueue appends a track to the device's queue.
	Enqueue(ctx context.Context, deviceID, uri string) error

	// SkipToNext skips to the next track in the queue.
	SkipToNext(ctx context.Context, deviceID string) error

	// Pause pauses playback.
	Pause(ctx context.Context, deviceID string) error

	// RefreshToken exchanges the refresh token for a new access token.
	RefreshToken(ctx context.Context) (*models.TokenResponse, error)
}

var _ Spotify = (*Client)(nil)
