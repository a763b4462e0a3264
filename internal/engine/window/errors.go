package window

import "fmt"

// Initialization stages reported by InitializationError.
const (
	ComponentSDL     = "sdl"
	ComponentWindow  = "window"
	ComponentContext = "gl context"
	ComponentLoader  = "gl loader"
)

// InitializationError reports a failure to bring up the windowing system,
// the window, its GL context or the GL function loader.
type InitializationError struct {
	Component string
	Err       error
}

func (e *InitializationError) Error() string {
	return fmt.Sprintf("initialize %s: %v", e.Component, e.Err)
}

func (e *InitializationError) Unwrap() error {
	return e.Err
}
