// package testing contains shared testing utilities
package testing

import (
	"context"
	"errors"
	"io"
	"net/http"
	"os"
	"strings"
	"sync"
	"testing"

	"github.com/desertthunder/spotifyexp/internal/models"
)

// Call is one recorded invocation on [MockSpotify].
type Call struct {
	Method string
	Args   []string
}

func (c Call) String() string {
	return c.Method + "(" + strings.Join(c.Args, ", ") + ")"
}

// MockSpotify is a recording test double for the Spotify client.
//
// Responses are returned as configured; Errors is keyed by method name.
type MockSpotify struct {
	mu sync.Mutex

	AlbumsResponse    *models.SearchAlbumsResponse
	ArtistsResponse   *models.SearchArtistsResponse
	TracksResponse    *models.ListTracksResponse
	PlaylistsResponse *models.GetPlaylistsResponse
	DevicesResponse   *models.DevicesResponse
	CurrentResponse   *models.CurrentlyPlayingTrackResponse
	TokenResponse     *models.TokenResponse
	Errors            map[string]error

	calls []Call
}

func (m *MockSpotify) record(method string, args ...string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.calls = append(m.calls, Call{Method: method, Args: args})
	return m.Errors[method]
}

// Calls returns a copy of the recorded invocations in order.
func (m *MockSpotify) Calls() []Call {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]Call(nil), m.calls...)
}

// Methods returns the recorded method names in order.
func (m *MockSpotify) Methods() []string {
	calls := m.Calls()
	names := make([]string, len(calls))
	for i, c := range calls {
		names[i] = c.Method
	}
	return names
}

func (m *MockSpotify) SearchAlbums(ctx context.Context, query string) (*models.SearchAlbumsResponse, error) {
	if err := m.record("SearchAlbums", query); err != nil {
		return nil, err
	}
	return m.AlbumsResponse, nil
}

func (m *MockSpotify) SearchArtists(ctx context.Context, query string) (*models.SearchArtistsResponse, error) {
	if err := m.record("SearchArtists", query); err != nil {
		return nil, err
	}
	return m.ArtistsResponse, nil
}

func (m *MockSpotify) AlbumTracks(ctx context.Context, albumID string) (*models.ListTracksResponse, error) {
	if err := m.record("AlbumTracks", albumID); err != nil {
		return nil, err
	}
	return m.TracksResponse, nil
}

func (m *MockSpotify) Playlists(ctx context.Context) (*models.GetPlaylistsResponse, error) {
	if err := m.record("Playlists"); err != nil {
		return nil, err
	}
	return m.PlaylistsResponse, nil
}

func (m *MockSpotify) Devices(ctx context.Context) (*models.DevicesResponse, error) {
	if err := m.record("Devices"); err != nil {
		return nil, err
	}
	return m.DevicesResponse, nil
}

func (m *MockSpotify) CurrentlyPlaying(ctx context.Context) (*models.CurrentlyPlayingTrackResponse, error) {
	if err := m.record("CurrentlyPlaying"); err != nil {
		return nil, err
	}
	return m.CurrentResponse, nil
}

func (m *MockSpotify) StartPlayback(ctx context.Context, deviceID string, uris []string) error {
	return m.record("StartPlayback", append([]string{deviceID}, uris...)...)
}

func (m *MockSpotify) StartPlaybackContext(ctx context.Context, deviceID, contextURI string) error {
	return m.record("StartPlaybackContext", deviceID, contextURI)
}

func (m *MockSpotify) Resume(ctx context.Context, deviceID string) error {
	return m.record("Resume", deviceID)
}

func (m *MockSpotify) Enqueue(ctx context.Context, deviceID, uri string) error {
	return m.record("Enqueue", deviceID, uri)
}

func (m *MockSpotify) SkipToNext(ctx context.Context, deviceID string) error {
	return m.record("SkipToNext", deviceID)
}

func (m *MockSpotify) Pause(ctx context.Context, deviceID string) error {
	return m.record("Pause", deviceID)
}

func (m *MockSpotify) RefreshToken(ctx context.Context) (*models.TokenResponse, error) {
	if err := m.record("RefreshToken"); err != nil {
		return nil, err
	}
	return m.TokenResponse, nil
}

// FWriter always returns an error on Write
type FWriter struct{}

func (f *FWriter) Write(p []byte) (n int, err error) {
	return 0, errors.New("write failed")
}

// LimitedWriter fails after a certain number of writes
type LimitedWriter struct {
	maxWrites int
	written   int
	target    io.Writer
}

func (l *LimitedWriter) Write(p []byte) (n int, err error) {
	if l.written >= l.maxWrites {
		return 0, errors.New("write limit exceeded")
	}
	l.written++
	return l.target.Write(p)
}

func NewLimitedWriter(maxWrites, written int, target io.Writer) LimitedWriter {
	return LimitedWriter{maxWrites: maxWrites, written: written, target: target}
}

// MockRoundTripper allows custom HTTP responses for testing
type MockRoundTripper struct {
	response *http.Response
	err      error
}

func NewMockRoundTripper(r *http.Response, e error) *MockRoundTripper {
	return &MockRoundTripper{response: r, err: e}
}

func (m *MockRoundTripper) RoundTrip(*http.Request) (*http.Response, error) {
	return m.response, m.err
}

// FCloser simulates a failure when reading response body
type FCloser struct{}

func (f *FCloser) Read(p []byte) (n int, err error) {
	return 0, errors.New("read failed")
}

func (f *FCloser) Close() error {
	return nil
}

func MustGetwd(t *testing.T) string {
	t.Helper()
	wd, err := os.Getwd()
	if err != nil {
		t.Fatalf("Failed to get working directory: %v", err)
	}
	return wd
}

func MustChdir(t *testing.T, dir string) {
	t.Helper()
	if err := os.Chdir(dir); err != nil {
		t.Fatalf("Failed to change directory to %s: %v", dir, err)
	}
}

func AssertFileExists(t *testing.T, path string) {
	t.Helper()
	if _, err := os.Stat(path); os.IsNotExist(err) {
		t.Errorf("File does not exist: %s", path)
	}
}

func AssertDirExists(t *testing.T, path string) {
	t.Helper()
	info, err := os.Stat(path)
	if os.IsNotExist(err) {
		t.Errorf("Directory does not exist: %s", path)
		return
	}
	if !info.IsDir() {
		t.Errorf("Path is not a directory: %s", path)
	}
}

func MustReadFile(t *testing.T, path string) string {
	t.Helper()
	content, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("Failed to read file %s: %v", path, err)
	}
	return string(content)
}
