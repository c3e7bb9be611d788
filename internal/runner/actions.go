package runner

import (
	"context"
	"fmt"
	"strings"

	"github.com/desertthunder/spotifyexp/internal/formatter"
	"github.com/desertthunder/spotifyexp/internal/shared"
	"github.com/desertthunder/spotifyexp/internal/tasks"
	"github.com/urfave/cli/v3"
)

func requireString(cmd *cli.Command, name string) (string, error) {
	value := strings.TrimSpace(cmd.String(name))
	if value == "" {
		return "", fmt.Errorf("%w: --%s", shared.ErrMissingArgument, name)
	}
	return value, nil
}

// checkURI rejects values that are not Spotify URIs, such as pasted open.spotify.com links.
func checkURI(uri string) error {
	if !strings.HasPrefix(uri, "spotify:") {
		return fmt.Errorf("%w: %q is not a spotify: URI", shared.ErrInvalidArgument, uri)
	}
	return nil
}

func requireURIs(cmd *cli.Command) ([]string, error) {
	var uris []string
	for _, uri := range cmd.StringSlice("uri") {
		if uri = strings.TrimSpace(uri); uri == "" {
			continue
		}
		if err := checkURI(uri); err != nil {
			return nil, err
		}
		uris = append(uris, uri)
	}
	if len(uris) == 0 {
		return nil, fmt.Errorf("%w: at least one --uri", shared.ErrMissingArgument)
	}
	return uris, nil
}

// SearchAlbums searches the catalog for albums and prints one line per album.
func (r *Runner) SearchAlbums(ctx context.Context, cmd *cli.Command) error {
	query, err := requireString(cmd, "query")
	if err != nil {
		return err
	}
	if err := r.prepare(cmd); err != nil {
		return err
	}

	r.logger.Info("searching albums", "query", query)
	resp, err := r.spotify.SearchAlbums(ctx, query)
	if err != nil {
		return err
	}

	if cmd.Bool("json") {
		return r.writeJSON(resp, cmd.Bool("pretty"))
	}
	return formatter.WriteAlbums(r.output, resp.Albums)
}

// SearchArtists searches the catalog for artists and prints "<uri> <name>" lines.
func (r *Runner) SearchArtists(ctx context.Context, cmd *cli.Command) error {
	query, err := requireString(cmd, "query")
	if err != nil {
		return err
	}
	if err := r.prepare(cmd); err != nil {
		return err
	}

	r.logger.Info("searching artists", "query", query)
	resp, err := r.spotify.SearchArtists(ctx, query)
	if err != nil {
		return err
	}

	if cmd.Bool("json") {
		return r.writeJSON(resp, cmd.Bool("pretty"))
	}
	return formatter.WriteArtists(r.output, resp.Artists)
}

// AlbumTracks lists the tracks of one album.
func (r *Runner) AlbumTracks(ctx context.Context, cmd *cli.Command) error {
	albumID, err := requireString(cmd, "album-id")
	if err != nil {
		return err
	}
	if err := r.prepare(cmd); err != nil {
		return err
	}

	resp, err := r.spotify.AlbumTracks(ctx, albumID)
	if err != nil {
		return err
	}

	if cmd.Bool("json") {
		return r.writeJSON(resp, cmd.Bool("pretty"))
	}
	return formatter.WriteTracks(r.output, *resp)
}

// ListDevices lists the available Connect devices.
func (r *Runner) ListDevices(ctx context.Context, cmd *cli.Command) error {
	if err := r.prepare(cmd); err != nil {
		return err
	}

	resp, err := r.spotify.Devices(ctx)
	if err != nil {
		return err
	}

	if cmd.Bool("json") {
		return r.writeJSON(resp, cmd.Bool("pretty"))
	}
	return formatter.WriteDevices(r.output, resp.Devices)
}

// ShowCurrentTrack prints the player state.
func (r *Runner) ShowCurrentTrack(ctx context.Context, cmd *cli.Command) error {
	if err := r.prepare(cmd); err != nil {
		return err
	}

	resp, err := r.spotify.CurrentlyPlaying(ctx)
	if err != nil {
		return err
	}

	if cmd.Bool("json") {
		return r.writeJSON(resp, cmd.Bool("pretty"))
	}
	return formatter.WriteCurrentTrack(r.output, resp)
}

// GetPlaylists lists the current user's playlists.
func (r *Runner) GetPlaylists(ctx context.Context, cmd *cli.Command) error {
	if err := r.prepare(cmd); err != nil {
		return err
	}

	resp, err := r.spotify.Playlists(ctx)
	if err != nil {
		return err
	}

	if cmd.Bool("json") {
		return r.writeJSON(resp, cmd.Bool("pretty"))
	}
	return formatter.WritePlaylists(r.output, *resp)
}

// Play replaces playback on a device with the given track URIs.
func (r *Runner) Play(ctx context.Context, cmd *cli.Command) error {
	uris, err := requireURIs(cmd)
	if err != nil {
		return err
	}
	if err := r.prepare(cmd); err != nil {
		return err
	}

	deviceID := cmd.String("device-id")
	r.logger.Info("starting playback", "device", deviceID, "tracks", len(uris))
	if err := r.spotify.StartPlayback(ctx, deviceID, uris); err != nil {
		return err
	}
	return formatter.WriteOK(r.output, fmt.Sprintf("Playing %d track(s)", len(uris)))
}

// Playback queues tracks and brings the first of them into play.
func (r *Runner) Playback(ctx context.Context, cmd *cli.Command) error {
	uris, err := requireURIs(cmd)
	if err != nil {
		return err
	}
	if err := r.prepare(cmd); err != nil {
		return err
	}

	progressCh := make(chan tasks.ProgressUpdate, len(uris)+4)
	done := make(chan struct{})
	go func() {
		defer close(done)
		for update := range progressCh {
			r.logger.Info(update.Message, "phase", update.Phase, "step", update.Step, "total", update.Total)
		}
	}()

	result, err := r.engine.Play(ctx, progressCh, cmd.String("device-id"), uris)
	close(progressCh)
	<-done

	if err != nil {
		return err
	}

	if cmd.Bool("json") {
		return r.writeJSON(result, cmd.Bool("pretty"))
	}
	return formatter.WritePlayResult(r.output, result)
}

// PlaybackPlaylist plays an album or playlist context on a device.
func (r *Runner) PlaybackPlaylist(ctx context.Context, cmd *cli.Command) error {
	uri, err := requireString(cmd, "uri")
	if err != nil {
		return err
	}
	if err := checkURI(uri); err != nil {
		return err
	}
	if err := r.prepare(cmd); err != nil {
		return err
	}

	if err := r.spotify.StartPlaybackContext(ctx, cmd.String("device-id"), uri); err != nil {
		return err
	}
	return formatter.WriteOK(r.output, "Playing "+uri)
}

// Pause pauses playback on a device.
func (r *Runner) Pause(ctx context.Context, cmd *cli.Command) error {
	if err := r.prepare(cmd); err != nil {
		return err
	}

	if err := r.spotify.Pause(ctx, cmd.String("device-id")); err != nil {
		return err
	}
	return formatter.WriteOK(r.output, "Paused playback")
}

// RefreshToken exchanges the refresh token and prints shell assignments for the new tokens.
func (r *Runner) RefreshToken(ctx context.Context, cmd *cli.Command) error {
	if err := r.prepare(cmd); err != nil {
		return err
	}

	token, err := r.spotify.RefreshToken(ctx)
	if err != nil {
		return err
	}
	r.logger.Info("access token refreshed", "expires", token.Expiry)

	if cmd.Bool("json") {
		return r.writeJSON(token, cmd.Bool("pretty"))
	}
	return formatter.WriteToken(r.output, token)
}

// Setup writes an example settings file.
func (r *Runner) Setup(ctx context.Context, cmd *cli.Command) error {
	path := cmd.String("settings")
	if path == "" {
		path = shared.DefaultSettingsPath
	}

	if err := shared.CreateSettingsFile(path); err != nil {
		return err
	}
	return formatter.WriteOK(r.output, "Settings written to "+path)
}
