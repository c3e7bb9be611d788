// package formatter renders Spotify responses as plain lines and tables for the terminal
package formatter

import (
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/desertthunder/spotifyexp/internal/models"
	"github.com/desertthunder/spotifyexp/internal/shared"
	"github.com/desertthunder/spotifyexp/internal/tasks"
	"github.com/fatih/color"
	"github.com/jedib0t/go-pretty/v6/table"
)

// JoinArtists returns artist names separated by commas, in API order.
func JoinArtists(artists []models.Artist) string {
	names := make([]string, len(artists))
	for i, a := range artists {
		names[i] = a.Name
	}
	return strings.Join(names, ", ")
}

// FormatDuration renders a millisecond length as m:ss.
func FormatDuration(ms int) string {
	d := time.Duration(ms) * time.Millisecond
	minutes := int(d.Minutes())
	seconds := int(d.Seconds()) % 60
	return fmt.Sprintf("%d:%02d", minutes, seconds)
}

func newTable() table.Writer {
	t := table.NewWriter()
	t.SetStyle(table.StyleRounded)
	return t
}

func render(w io.Writer, t table.Writer) error {
	_, err := fmt.Fprintln(w, t.Render())
	return err
}

func pageFooter[T any](w io.Writer, page models.Paging[T]) error {
	footer := fmt.Sprintf("Showing %d-%d of %d", page.Offset+min(1, len(page.Items)), page.Offset+len(page.Items), page.Total)
	if page.HasNext() {
		footer += " (more available)"
	}
	_, err := fmt.Fprintln(w, styles.Help(footer))
	return err
}

// WriteArtists writes one "<uri> <name>" line per artist.
func WriteArtists(w io.Writer, page models.Paging[models.Artist]) error {
	for _, artist := range page.Items {
		if _, err := fmt.Fprintf(w, "%s %s\n", artist.URI, artist.Name); err != nil {
			return err
		}
	}
	return nil
}

// WriteAlbums writes one "<uri> <name> (<date>) - <artists>" line per album.
func WriteAlbums(w io.Writer, page models.Paging[models.Album]) error {
	for _, album := range page.Items {
		if _, err := fmt.Fprintf(w, "%s %s (%s) - %s\n", album.URI, album.Name, album.ReleaseDate, JoinArtists(album.Artists)); err != nil {
			return err
		}
	}
	return nil
}

// WriteTracks writes an album track listing as a table.
func WriteTracks(w io.Writer, page models.Paging[models.Track]) error {
	t := newTable()
	t.AppendHeader(table.Row{"#", "Name", "Artists", "Length", "URI"})
	for _, track := range page.Items {
		name := track.Name
		if track.Explicit {
			name += " " + color.YellowString("[E]")
		}
		t.AppendRow(table.Row{
			strconv.Itoa(track.DiscNumber) + "." + strconv.Itoa(track.TrackNumber),
			name,
			JoinArtists(track.Artists),
			FormatDuration(track.DurationMS),
			color.HiBlackString(track.URI),
		})
	}

	if err := render(w, t); err != nil {
		return err
	}
	return pageFooter(w, page)
}

// WriteDevices writes the available Connect devices as a table, marking the active one.
func WriteDevices(w io.Writer, devices []models.Device) error {
	if len(devices) == 0 {
		_, err := fmt.Fprintln(w, styles.Warn("No devices available. Open Spotify on a device first."))
		return err
	}

	if _, err := fmt.Fprintln(w, styles.Title("Available Spotify Connect Devices")); err != nil {
		return err
	}

	t := newTable()
	t.AppendHeader(table.Row{"#", "Name", "Type", "Status", "Volume", "Device ID"})
	for i, device := range devices {
		status := "Inactive"
		if device.IsActive {
			status = color.GreenString("● Active")
		}
		if device.IsRestricted {
			status += " (restricted)"
		}

		volume := "-"
		if device.VolumePercent != nil {
			volume = strconv.Itoa(*device.VolumePercent) + "%"
		}

		t.AppendRow(table.Row{
			i + 1,
			color.New(color.Bold).Sprint(device.Name),
			device.Type,
			status,
			volume,
			color.HiBlackString(device.DeviceID()),
		})
	}
	return render(w, t)
}

// WritePlaylists writes the user's playlists as a table.
func WritePlaylists(w io.Writer, page models.Paging[models.Playlist]) error {
	t := newTable()
	t.AppendHeader(table.Row{"#", "Name", "Owner", "Tracks", "URI"})
	for i, playlist := range page.Items {
		owner := playlist.Owner.DisplayName
		if owner == "" {
			owner = playlist.Owner.ID
		}
		t.AppendRow(table.Row{
			page.Offset + i + 1,
			color.New(color.Bold).Sprint(playlist.Name),
			owner,
			playlist.Tracks.Total,
			color.HiBlackString(playlist.URI),
		})
	}

	if err := render(w, t); err != nil {
		return err
	}
	return pageFooter(w, page)
}

// WriteCurrentTrack writes the player state. A nil state means no device is active.
func WriteCurrentTrack(w io.Writer, state *models.CurrentlyPlayingTrackResponse) error {
	if state == nil || state.Item == nil {
		_, err := fmt.Fprintln(w, styles.Warn("Nothing is playing"))
		return err
	}

	item := state.Item
	status := color.YellowString("Paused")
	if state.IsPlaying {
		status = color.GreenString("▶ Playing")
	}

	lines := []string{
		fmt.Sprintf("%s %s", status, styles.Title(item.Name)),
		fmt.Sprintf("  Artists: %s", JoinArtists(item.Artists)),
	}
	if item.Album != nil {
		lines = append(lines, fmt.Sprintf("  Album:   %s", item.Album.Name))
	}
	if state.ProgressMS != nil && item.DurationMS > 0 {
		lines = append(lines, fmt.Sprintf("  Time:    %s / %s", FormatDuration(*state.ProgressMS), FormatDuration(item.DurationMS)))
	}
	if item.URI != "" {
		lines = append(lines, "  URI:     "+item.URI)
	}

	_, err := fmt.Fprintln(w, strings.Join(lines, "\n"))
	return err
}

// WriteToken writes the refreshed tokens as shell assignments suitable for eval.
func WriteToken(w io.Writer, token *models.TokenResponse) error {
	_, err := fmt.Fprintf(w, "%s=%s\n%s=%s\n",
		shared.EnvAccessToken, shellQuote(token.AccessToken),
		shared.EnvRefreshToken, shellQuote(token.RefreshToken),
	)
	return err
}

// shellQuote wraps s in single quotes for POSIX shells.
func shellQuote(s string) string {
	return "'" + strings.ReplaceAll(s, "'", `'\''`) + "'"
}

// WritePlayResult summarizes a composite playback run.
func WritePlayResult(w io.Writer, result *tasks.PlayResult) error {
	action := "resumed playback"
	if result.Skipped {
		action = "skipped to the first queued track"
	}
	_, err := fmt.Fprintf(w, "%s Queued %d track(s), %s\n", color.GreenString("✓"), len(result.Enqueued), action)
	return err
}

// WriteOK writes a success line for commands without a response body.
func WriteOK(w io.Writer, msg string) error {
	_, err := fmt.Fprintf(w, "%s %s\n", color.GreenString("✓"), styles.OK(msg))
	return err
}
