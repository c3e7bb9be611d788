package formatter

import (
	"bytes"
	"strings"
	"testing"

	"github.com/desertthunder/spotifyexp/internal/models"
	"github.com/desertthunder/spotifyexp/internal/tasks"
	th "github.com/desertthunder/spotifyexp/internal/testing"
	"github.com/fatih/color"
)

func init() {
	color.NoColor = true
}

func ptr[T any](v T) *T { return &v }

func TestLineWriters(t *testing.T) {
	t.Run("WriteArtists", func(t *testing.T) {
		page := models.Paging[models.Artist]{
			Limit: 50,
			Total: 2,
			Items: []models.Artist{
				{Name: "Miles Davis", URI: "spotify:artist:1"},
				{Name: "John Coltrane", URI: "spotify:artist:2"},
			},
		}

		var buf bytes.Buffer
		if err := WriteArtists(&buf, page); err != nil {
			t.Fatalf("WriteArtists failed: %v", err)
		}

		want := "spotify:artist:1 Miles Davis\nspotify:artist:2 John Coltrane\n"
		if buf.String() != want {
			t.Errorf("expected %q, got %q", want, buf.String())
		}
	})

	t.Run("WriteAlbums", func(t *testing.T) {
		page := models.Paging[models.Album]{
			Limit: 50,
			Total: 1,
			Items: []models.Album{{
				Name:        "A Love Supreme",
				URI:         "spotify:album:1",
				ReleaseDate: "1965",
				Artists:     []models.Artist{{Name: "John Coltrane"}, {Name: "McCoy Tyner"}},
			}},
		}

		var buf bytes.Buffer
		if err := WriteAlbums(&buf, page); err != nil {
			t.Fatalf("WriteAlbums failed: %v", err)
		}

		want := "spotify:album:1 A Love Supreme (1965) - John Coltrane, McCoy Tyner\n"
		if buf.String() != want {
			t.Errorf("expected %q, got %q", want, buf.String())
		}
	})

	t.Run("Writer Failure", func(t *testing.T) {
		page := models.Paging[models.Artist]{Items: []models.Artist{{Name: "A"}}}
		if err := WriteArtists(&th.FWriter{}, page); err == nil {
			t.Error("expected write error")
		}
	})
}

func TestTableWriters(t *testing.T) {
	t.Run("WriteTracks", func(t *testing.T) {
		page := models.Paging[models.Track]{
			Limit: 2,
			Total: 5,
			Next:  ptr("https://api.spotify.com/v1/albums/x/tracks?offset=2"),
			Items: []models.Track{
				{Name: "So What", URI: "spotify:track:1", DurationMS: 562000, TrackNumber: 1, DiscNumber: 1, Artists: []models.Artist{{Name: "Miles Davis"}}},
				{Name: "Freddie Freeloader", URI: "spotify:track:2", DurationMS: 589000, TrackNumber: 2, DiscNumber: 1, Explicit: true},
			},
		}

		var buf bytes.Buffer
		if err := WriteTracks(&buf, page); err != nil {
			t.Fatalf("WriteTracks failed: %v", err)
		}
		output := buf.String()

		for _, want := range []string{"So What", "Miles Davis", "9:22", "spotify:track:2", "[E]", "Showing 1-2 of 5", "more available"} {
			if !strings.Contains(output, want) {
				t.Errorf("output missing %q:\n%s", want, output)
			}
		}
	})

	t.Run("WriteDevices", func(t *testing.T) {
		devices := []models.Device{
			{ID: ptr("dev1"), Name: "Kitchen", Type: "Speaker", IsActive: true, VolumePercent: ptr(40)},
			{ID: nil, Name: "Car", Type: "Automobile", IsRestricted: true},
		}

		var buf bytes.Buffer
		if err := WriteDevices(&buf, devices); err != nil {
			t.Fatalf("WriteDevices failed: %v", err)
		}
		output := buf.String()

		for _, want := range []string{"Kitchen", "● Active", "40%", "dev1", "Car", "restricted"} {
			if !strings.Contains(output, want) {
				t.Errorf("output missing %q:\n%s", want, output)
			}
		}
	})

	t.Run("WriteDevices Empty", func(t *testing.T) {
		var buf bytes.Buffer
		if err := WriteDevices(&buf, nil); err != nil {
			t.Fatalf("WriteDevices failed: %v", err)
		}
		if !strings.Contains(buf.String(), "No devices available") {
			t.Errorf("unexpected output: %s", buf.String())
		}
	})

	t.Run("WritePlaylists", func(t *testing.T) {
		page := models.Paging[models.Playlist]{
			Limit: 50,
			Total: 1,
			Items: []models.Playlist{{
				Name:   "Late Night",
				URI:    "spotify:playlist:1",
				Owner:  models.PlaylistOwner{ID: "user1"},
				Tracks: models.PlaylistTracksRef{Total: 42},
			}},
		}

		var buf bytes.Buffer
		if err := WritePlaylists(&buf, page); err != nil {
			t.Fatalf("WritePlaylists failed: %v", err)
		}
		output := buf.String()

		for _, want := range []string{"Late Night", "user1", "42", "spotify:playlist:1", "Showing 1-1 of 1"} {
			if !strings.Contains(output, want) {
				t.Errorf("output missing %q:\n%s", want, output)
			}
		}
		if strings.Contains(output, "more available") {
			t.Error("single page should not advertise more results")
		}
	})

	t.Run("Table Writer Failure", func(t *testing.T) {
		page := models.Paging[models.Track]{Items: []models.Track{{Name: "x"}}}
		if err := WriteTracks(&th.FWriter{}, page); err == nil {
			t.Error("expected write error")
		}
	})
}

func TestWriteCurrentTrack(t *testing.T) {
	t.Run("Playing", func(t *testing.T) {
		state := &models.CurrentlyPlayingTrackResponse{
			IsPlaying:  true,
			ProgressMS: ptr(61000),
			Item: &models.CurrentlyPlayingItem{
				Name:       "Blue in Green",
				URI:        "spotify:track:3",
				DurationMS: 337000,
				Album:      &models.Album{Name: "Kind of Blue"},
				Artists:    []models.Artist{{Name: "Miles Davis"}, {Name: "Bill Evans"}},
			},
		}

		var buf bytes.Buffer
		if err := WriteCurrentTrack(&buf, state); err != nil {
			t.Fatalf("WriteCurrentTrack failed: %v", err)
		}
		output := buf.String()

		for _, want := range []string{"Playing", "Blue in Green", "Miles Davis, Bill Evans", "Kind of Blue", "1:01 / 5:37", "spotify:track:3"} {
			if !strings.Contains(output, want) {
				t.Errorf("output missing %q:\n%s", want, output)
			}
		}
	})

	t.Run("Null Album", func(t *testing.T) {
		state := &models.CurrentlyPlayingTrackResponse{
			Item: &models.CurrentlyPlayingItem{Name: "Episode", Artists: []models.Artist{{Name: "Host"}}},
		}

		var buf bytes.Buffer
		if err := WriteCurrentTrack(&buf, state); err != nil {
			t.Fatalf("WriteCurrentTrack failed: %v", err)
		}
		if strings.Contains(buf.String(), "Album:") {
			t.Errorf("expected no album line, got %s", buf.String())
		}
		if !strings.Contains(buf.String(), "Paused") {
			t.Errorf("expected paused status, got %s", buf.String())
		}
	})

	t.Run("Nothing Playing", func(t *testing.T) {
		var buf bytes.Buffer
		if err := WriteCurrentTrack(&buf, nil); err != nil {
			t.Fatalf("WriteCurrentTrack failed: %v", err)
		}
		if !strings.Contains(buf.String(), "Nothing is playing") {
			t.Errorf("unexpected output: %s", buf.String())
		}
	})
}

func TestWriteToken(t *testing.T) {
	var buf bytes.Buffer
	token := &models.TokenResponse{AccessToken: "abc", RefreshToken: "it's"}

	if err := WriteToken(&buf, token); err != nil {
		t.Fatalf("WriteToken failed: %v", err)
	}

	want := "SPOTIFY_ACCESS_TOKEN='abc'\nSPOTIFY_REFRESH_TOKEN='it'\\''s'\n"
	if buf.String() != want {
		t.Errorf("expected %q, got %q", want, buf.String())
	}
}

func TestWritePlayResult(t *testing.T) {
	tests := []struct {
		name   string
		result *tasks.PlayResult
		want   string
	}{
		{
			name:   "skipped",
			result: &tasks.PlayResult{Enqueued: []string{"a", "b"}, Skipped: true},
			want:   "Queued 2 track(s), skipped to the first queued track",
		},
		{
			name:   "started",
			result: &tasks.PlayResult{Enqueued: []string{"a"}, Started: true},
			want:   "Queued 1 track(s), resumed playback",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			if err := WritePlayResult(&buf, tt.result); err != nil {
				t.Fatalf("WritePlayResult failed: %v", err)
			}
			if !strings.Contains(buf.String(), tt.want) {
				t.Errorf("expected %q in %q", tt.want, buf.String())
			}
		})
	}
}

func TestHelpers(t *testing.T) {
	t.Run("FormatDuration", func(t *testing.T) {
		tests := map[int]string{0: "0:00", 59999: "0:59", 61000: "1:01", 3600000: "60:00"}
		for ms, want := range tests {
			if got := FormatDuration(ms); got != want {
				t.Errorf("FormatDuration(%d) = %q, want %q", ms, got, want)
			}
		}
	})

	t.Run("JoinArtists", func(t *testing.T) {
		if got := JoinArtists(nil); got != "" {
			t.Errorf("expected empty string, got %q", got)
		}
		got := JoinArtists([]models.Artist{{Name: "A"}, {Name: "B"}})
		if got != "A, B" {
			t.Errorf("expected \"A, B\", got %q", got)
		}
	})

	t.Run("WriteOK", func(t *testing.T) {
		var buf bytes.Buffer
		if err := WriteOK(&buf, "Paused playback"); err != nil {
			t.Fatalf("WriteOK failed: %v", err)
		}
		if !strings.Contains(buf.String(), "Paused playback") {
			t.Errorf("unexpected output: %s", buf.String())
		}
	})
}
