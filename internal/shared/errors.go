package shared

import "fmt"

var (
	// Configuration errors
	ErrMissingConfig = fmt.Errorf("missing configuration")
	ErrInvalidConfig = fmt.Errorf("invalid configuration")

	// Authentication errors
	ErrRefreshFailed = fmt.Errorf("token refresh failed")

	// API and transport errors
	ErrAPIRequest = fmt.Errorf("API request failed")
	ErrTransport  = fmt.Errorf("transport failure")
	ErrDecode     = fmt.Errorf("failed to decode response")

	// Input validation errors
	ErrMissingArgument = fmt.Errorf("missing required argument")
	ErrInvalidArgument = fmt.Errorf("invalid argument")
)
