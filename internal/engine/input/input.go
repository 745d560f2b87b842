// Package input handles SDL2 input events.
package input

import (
	"github.com/veandco/go-sdl2/sdl"

	"github.com/Faultbox/overworld/internal/nav"
)

// Event types for game use
type EventType int

const (
	EventNone EventType = iota
	EventQuit
	EventWindowResize
	EventKeyDown
	EventKeyUp
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
	MouseX int
	MouseY int
	Button uint8
}

// Input handles all input processing.
type Input struct {
	events []Event
}

// New creates a new input handler.
func New() *Input {
	return &Input{
		events: make([]Event, 0, 16),
	}
}

// Update polls SDL events and converts them to game events.
// Returns true if the game should quit.
func (i *Input) Update() bool {
	i.events = i.events[:0] // Clear previous events

	for event := sdl.PollEvent(); event != nil; event = sdl.PollEvent() {
		switch e := event.(type) {
		case *sdl.QuitEvent:
			i.events = append(i.events, Event{Type: EventQuit})
			return true

		case *sdl.WindowEvent:
			if e.Event == sdl.WINDOWEVENT_RESIZED {
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

		case *sdl.MouseButtonEvent:
			if e.Type == sdl.MOUSEBUTTONDOWN {
				i.events = append(i.events, Event{
					Type:   EventMouseDown,
					MouseX: int(e.X),
					MouseY: int(e.Y),
					Button: e.Button,
				})
			} else if e.Type == sdl.MOUSEBUTTONUP {
				i.events = append(i.events, Event{
					Type:   EventMouseUp,
					MouseX: int(e.X),
					MouseY: int(e.Y),
					Button: e.Button,
				})
			}
		}
	}

	return false
}

// Events returns the events from the last Update.
func (i *Input) Events() []Event {
	return i.events
}

// justPressed checks whether any of the scancodes had a non-repeat key-down
// this frame. Held keys only register on the initial press.
func (i *Input) justPressed(codes ...sdl.Scancode) bool {
	for _, e := range i.events {
		if e.Type != EventKeyDown || e.Repeat {
			continue
		}
		for _, code := range codes {
			if e.Key == code {
				return true
			}
		}
	}
	return false
}

// Snapshot collects the directional presses of this frame for the
// navigation tick. Arrows and WASD are equivalent.
func (i *Input) Snapshot() nav.Snapshot {
	return nav.Snapshot{
		Left:  i.justPressed(sdl.SCANCODE_LEFT, sdl.SCANCODE_A),
		Right: i.justPressed(sdl.SCANCODE_RIGHT, sdl.SCANCODE_D),
		Up:    i.justPressed(sdl.SCANCODE_UP, sdl.SCANCODE_W),
		Down:  i.justPressed(sdl.SCANCODE_DOWN, sdl.SCANCODE_S),
	}
}

// PointerPress returns the screen coordinates of the first left-button press
// this frame. Drags and further buttons are ignored.
func (i *Input) PointerPress() (x, y int, ok bool) {
	for _, e := range i.events {
		if e.Type == EventMouseDown && e.Button == sdl.BUTTON_LEFT {
			return e.MouseX, e.MouseY, true
		}
	}
	return 0, 0, false
}
