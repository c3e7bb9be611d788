// Package services implements the Spotify Web API client used by every spotifyexp binary.
//
// # Client
//
// [Client] is built from an explicit [shared.Config]; it never reads the environment itself.
// Every endpoint funnels through one helper that builds the URL, attaches the bearer token,
// sends the request and maps the response. There are no retries.
//
// # Error Handling
//
// Failures are reported as one of three typed errors, each matching a shared sentinel with [errors.Is]:
//   - [*APIError] ([shared.ErrAPIRequest]) : non-2xx status, or a 2xx body shaped like the error envelope.
//     Message is taken verbatim from the envelope; when the body is not an envelope only the status is known.
//   - [*TransportError] ([shared.ErrTransport]) : DNS, TLS, connection and body read failures
//   - [*DecodeError] ([shared.ErrDecode]) : a 2xx body that does not fit the expected record
//
// # Token Refresh
//
// [Client.RefreshToken] runs the refresh_token grant against the accounts service with [oauth2].
// It is an explicit user action; API calls never refresh on their own.
package services
