package wallpaper

import "errors"

var (
	ErrEmptyPrompt = errors.New("prompt must not be empty")
	ErrBadQuality  = errors.New(`quality must be "high" or "medium"`)
)

// ServiceError means the remote responded but signaled failure.
type ServiceError struct {
	Message string
}

func (e *ServiceError) Error() string {
	if e.Message == "" {
		return "wallpaper service reported failure"
	}
	return "wallpaper service reported failure: " + e.Message
}

// TransportError means the call itself could not complete: connection
// failure, non-2xx status or an unreadable body.
type TransportError struct {
	Err error
}

func (e *TransportError) Error() string {
	return "wallpaper api unreachable: " + e.Err.Error()
}

func (e *TransportError) Unwrap() error {
	return e.Err
}
