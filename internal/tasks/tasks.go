// package tasks implements multi-step playback operations on top of the Spotify client.
package tasks

import (
	"context"
	"fmt"
	"io"

	"github.com/charmbracelet/log"
	"github.com/desertthunder/spotifyexp/internal/models"
	"github.com/desertthunder/spotifyexp/internal/shared"
)

// Player is the subset of the Spotify client used by [PlaybackEngine].
type Player interface {
	CurrentlyPlaying(ctx context.Context) (*models.CurrentlyPlayingTrackResponse, error)
	Enqueue(ctx context.Context, deviceID, uri string) error
	SkipToNext(ctx context.Context, deviceID string) error
	Resume(ctx context.Context, deviceID string) error
}

// PlayResult records the steps [PlaybackEngine.Play] completed.
type PlayResult struct {
	DeviceID   string                                `json:"device_id,omitempty"`
	WasPlaying bool                                  `json:"was_playing"`
	Previous   *models.CurrentlyPlayingTrackResponse `json:"previous,omitempty"` // state before any change, nil when idle
	Enqueued   []string                              `json:"enqueued"`           // URIs queued, in order
	Skipped    bool                                  `json:"skipped"`
	Started    bool                                  `json:"started"`
}

// PlaybackEngine runs the read-then-act playback workflow.
type PlaybackEngine struct {
	player Player
	logger *log.Logger
}

// NewPlaybackEngine creates a new PlaybackEngine. A nil logger discards output.
func NewPlaybackEngine(player Player, logger *log.Logger) *PlaybackEngine {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &PlaybackEngine{player: player, logger: logger}
}

// sendProgress sends a progress update through the channel without blocking.
func (e *PlaybackEngine) sendProgress(progress chan<- ProgressUpdate, update ProgressUpdate) {
	if progress == nil {
		return
	}
	select {
	case progress <- update:
	default:
	}
}

// Play queues uris on the device and makes the first of them audible.
//
// The current state is read first. Every URI is then enqueued in order. If something
// was playing, the engine skips to the next track so the first queued one becomes current;
// otherwise it resumes the device's loaded context, which is not guaranteed to start with
// the queued tracks.
//
// The first failing step aborts the workflow. Completed steps are not undone and the
// partial result is returned alongside the error.
func (e *PlaybackEngine) Play(ctx context.Context, progress chan<- ProgressUpdate, deviceID string, uris []string) (*PlayResult, error) {
	if len(uris) == 0 {
		return nil, fmt.Errorf("%w: at least one track URI", shared.ErrMissingArgument)
	}

	result := &PlayResult{DeviceID: deviceID, Enqueued: make([]string, 0, len(uris))}

	e.sendProgress(progress, fetchStateUpdate())
	state, err := e.player.CurrentlyPlaying(ctx)
	if err != nil {
		return result, fmt.Errorf("failed to read playback state: %w", err)
	}
	result.Previous = state
	result.WasPlaying = state != nil && state.IsPlaying
	e.sendProgress(progress, stateUpdate(state))
	e.logger.Debug("playback state", "playing", result.WasPlaying, "device", deviceID)

	for i, uri := range uris {
		if err := e.player.Enqueue(ctx, deviceID, uri); err != nil {
			return result, fmt.Errorf("failed to enqueue %s: %w", uri, err)
		}
		result.Enqueued = append(result.Enqueued, uri)
		e.sendProgress(progress, enqueueUpdate(i+1, len(uris), uri))
	}

	if result.WasPlaying {
		e.sendProgress(progress, skipUpdate())
		if err := e.player.SkipToNext(ctx, deviceID); err != nil {
			return result, fmt.Errorf("failed to skip to queued track: %w", err)
		}
		result.Skipped = true
		return result, nil
	}

	e.sendProgress(progress, startUpdate())
	if err := e.player.Resume(ctx, deviceID); err != nil {
		return result, fmt.Errorf("failed to start playback: %w", err)
	}
	result.Started = true
	return result, nil
}
