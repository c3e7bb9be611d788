// Package runner wires the Spotify client, playback engine and formatter into urfave/cli commands.
//
// Every binary under cmd/ is a thin main around one constructor here, for example
// [SearchAlbumsCommand]; the spotifyexp binary registers all of them through [App].
//
// A [Runner] reads settings and credentials on first use, after flags are parsed.
// Missing credentials abort the command before any request is sent.
package runner
