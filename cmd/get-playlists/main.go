package main

import (
	"context"
	"os"

	"github.com/desertthunder/spotifyexp/internal/runner"
	"github.com/desertthunder/spotifyexp/internal/shared"
)

func main() {
	logger := shared.NewLogger(nil)
	r := runner.NewRunner(runner.RunnerOpts{Logger: logger})

	if err := runner.GetPlaylistsCommand(r).Run(context.Background(), os.Args); err != nil {
		logger.Fatalf("get-playlists: %v", err)
	}
}
