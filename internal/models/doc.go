// Package models defines the Spotify Web API payloads used by the spotifyexp binaries.
//
// All types are passive records decoded from JSON and never mutated afterwards:
//   - [Artist], [Album], [Track] : catalog objects
//   - [Paging] : the windowed list envelope shared by search, album tracks and playlists
//   - [Device] : a Spotify Connect playback target
//   - [Playlist] : a simplified playlist with its [PlaylistTracksRef]
//   - [CurrentlyPlayingTrackResponse] : the player state read before acting on it
//   - [ErrorResponse] : the error envelope returned on failures
//
// Optional fields decode to nil pointers when the API omits them or sends null.
//
// Reference: https://developer.spotify.com/documentation/web-api/reference/
package models
