package tasks

import (
	"fmt"

	"github.com/desertthunder/spotifyexp/internal/models"
)

// ProgressUpdate represents a progress event during a multi-step operation.
//
// Used to send real-time updates to the CLI layer for display.
type ProgressUpdate struct {
	Phase   Phase  // Operation phase
	Step    int    // Current step number within phase
	Total   int    // Total steps in this phase
	Message string // Human-readable message for display
	Data    any    // Optional phase-specific data
}

// Operation phase enumeration
type Phase int

const (
	FetchState Phase = iota
	Enqueue
	SkipToNext
	StartPlayback
)

func (p Phase) String() string {
	switch p {
	case FetchState:
		return "fetch_state"
	case Enqueue:
		return "enqueue"
	case SkipToNext:
		return "skip_to_next"
	case StartPlayback:
		return "start_playback"
	default:
		return ""
	}
}

func fetchStateUpdate() ProgressUpdate {
	return ProgressUpdate{
		Phase:   FetchState,
		Step:    1,
		Total:   1,
		Message: "Reading playback state...",
	}
}

func stateUpdate(state *models.CurrentlyPlayingTrackResponse) ProgressUpdate {
	msg := "Nothing is playing"
	if state != nil && state.IsPlaying {
		msg = "Playback is active"
		if state.Item != nil {
			msg = fmt.Sprintf("Playing: %s", state.Item.Name)
		}
	}
	return ProgressUpdate{
		Phase:   FetchState,
		Step:    1,
		Total:   1,
		Message: msg,
		Data:    state,
	}
}

func enqueueUpdate(step, total int, uri string) ProgressUpdate {
	return ProgressUpdate{
		Phase:   Enqueue,
		Step:    step,
		Total:   total,
		Message: fmt.Sprintf("[%d/%d] Queued %s", step, total, uri),
		Data:    uri,
	}
}

func skipUpdate() ProgressUpdate {
	return ProgressUpdate{
		Phase:   SkipToNext,
		Step:    1,
		Total:   1,
		Message: "Skipping to the first queued track...",
	}
}

func startUpdate() ProgressUpdate {
	return ProgressUpdate{
		Phase:   StartPlayback,
		Step:    1,
		Total:   1,
		Message: "Starting playback...",
	}
}
