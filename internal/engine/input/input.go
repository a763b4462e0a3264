// Package input handles SDL2 input events and maps them to actions.
package input

import (
	"go.uber.org/zap"

	"github.com/veandco/go-sdl2/sdl"

	"github.com/Faultbox/hikesim/internal/engine/action"
	"github.com/Faultbox/hikesim/internal/engine/camera"
	"github.com/Faultbox/hikesim/internal/logger"
)

// Event types consumed by Process.
type EventType int

const (
	EventNone EventType = iota
	EventQuit
	EventWindowResize
	EventKeyDown
	EventKeyUp
	EventMouseMove
	EventMouseDown
	EventMouseUp
)

// Event represents a processed input event.
type Event struct {
	Type   EventType
	Key    sdl.Scancode
	Repeat bool
	Width  int
	Height int
	DX     float64 // Relative pointer motion
	DY     float64
	Button uint8
}

// ExitButton is the mouse button that closes the viewer.
const ExitButton = sdl.BUTTON_RIGHT

// Frame is the input gathered for one frame.
type Frame struct {
	Actions action.Set
	Pointer *camera.PointerSample // nil when the pointer did not move
	Resized bool
	Width   int
	Height  int
}

// Input handles all input processing.
type Input struct {
	events   []Event
	bindings action.Bindings
	held     map[sdl.Scancode]bool

	// Virtual cursor fed by relative motion.
	cursorX float64
	cursorY float64
}

// New creates an input handler from action name to scancode name bindings.
func New(bindings map[string]string) (*Input, error) {
	b, err := action.ParseBindings(bindings, ResolveScancode)
	if err != nil {
		return nil, err
	}
	logger.Debug("input bindings resolved", zap.Int("count", len(b)))
	return NewWithBindings(b), nil
}

// NewWithBindings creates an input handler from a resolved binding table.
func NewWithBindings(b action.Bindings) *Input {
	return &Input{
		events:   make([]Event, 0, 16),
		bindings: b,
		held:     make(map[sdl.Scancode]bool),
	}
}

// ResolveScancode turns an SDL scancode name such as "W" or "Left Ctrl"
// into its code.
func ResolveScancode(name string) (int32, bool) {
	code := sdl.GetScancodeFromName(name)
	return int32(code), code != sdl.SCANCODE_UNKNOWN
}

// CapturePointer hides the cursor and switches to relative motion.
func CapturePointer() error {
	if sdl.SetRelativeMouseMode(true) < 0 {
		return sdl.GetError()
	}
	return nil
}

// Update polls SDL events and converts them to a Frame.
func (i *Input) Update() Frame {
	i.events = i.events[:0]

	for event := sdl.PollEvent(); event != nil; event = sdl.PollEvent() {
		switch e := event.(type) {
		case *sdl.QuitEvent:
			i.events = append(i.events, Event{Type: EventQuit})

		case *sdl.WindowEvent:
			if e.Event == sdl.WINDOWEVENT_RESIZED || e.Event == sdl.WINDOWEVENT_SIZE_CHANGED {
				i.events = append(i.events, Event{
					Type:   EventWindowResize,
					Width:  int(e.Data1),
					Height: int(e.Data2),
				})
			}

		case *sdl.KeyboardEvent:
			if e.Type == sdl.KEYDOWN {
				i.events = append(i.events, Event{
					Type:   EventKeyDown,
					Key:    e.Keysym.Scancode,
					Repeat: e.Repeat != 0,
				})
			} else if e.Type == sdl.KEYUP {
				i.events = append(i.events, Event{
					Type: EventKeyUp,
					Key:  e.Keysym.Scancode,
				})
			}

		case *sdl.MouseMotionEvent:
			i.events = append(i.events, Event{
				Type: EventMouseMove,
				DX:   float64(e.XRel),
				DY:   float64(e.YRel),
			})

		case *sdl.MouseButtonEvent:
			if e.Type == sdl.MOUSEBUTTONDOWN {
				i.events = append(i.events, Event{Type: EventMouseDown, Button: e.Button})
			} else if e.Type == sdl.MOUSEBUTTONUP {
				i.events = append(i.events, Event{Type: EventMouseUp, Button: e.Button})
			}
		}
	}

	return i.Process(i.events)
}

// Process folds one frame of events into the held-key state and returns
// the resulting actions.
//
// Level-triggered actions are active on every frame their key is held,
// including a press released within the same frame. Edge-triggered
// actions fire once per press and ignore key repeat.
func (i *Input) Process(events []Event) Frame {
	var f Frame
	moved := false

	for _, e := range events {
		switch e.Type {
		case EventQuit:
			f.Actions = f.Actions.With(action.Exit)

		case EventWindowResize:
			f.Resized = true
			f.Width, f.Height = e.Width, e.Height

		case EventKeyDown:
			i.held[e.Key] = true
			a, ok := i.bindings[int32(e.Key)]
			if !ok {
				continue
			}
			if !a.EdgeTriggered() || !e.Repeat {
				f.Actions = f.Actions.With(a)
			}

		case EventKeyUp:
			delete(i.held, e.Key)

		case EventMouseMove:
			i.cursorX += e.DX
			i.cursorY += e.DY
			moved = true

		case EventMouseDown:
			if e.Button == ExitButton {
				f.Actions = f.Actions.With(action.Exit)
			}
		}
	}

	for key := range i.held {
		if a, ok := i.bindings[int32(key)]; ok && !a.EdgeTriggered() {
			f.Actions = f.Actions.With(a)
		}
	}

	if moved {
		f.Pointer = &camera.PointerSample{X: i.cursorX, Y: i.cursorY}
	}
	return f
}
