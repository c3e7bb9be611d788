// Package tasks orchestrates multi-step playback operations with progress reporting.
//
// # Composite Playback
//
// [PlaybackEngine.Play] is the one operation that issues more than a single request:
//
//  1. Read the current playback state
//  2. Enqueue each track URI in order
//  3. Skip to next when playback was active, otherwise resume the loaded context
//
// Steps run sequentially and the first failure aborts the run. There is no rollback,
// so playback is left wherever the last successful step put it.
//
// # Progress Reporting
//
// The [ProgressUpdate] struct contains phase, step counters, a message, and optional data.
// Updates are sent with select and default, so a slow or absent reader never blocks playback.
//
// # Implementation
//
// [PlaybackEngine] depends only on the [Player] interface, which the Spotify client satisfies.
package tasks
