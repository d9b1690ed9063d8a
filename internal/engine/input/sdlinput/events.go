// Package sdlinput reads the keyboard and game controllers through SDL2 and
// exposes them as input sources.
package sdlinput

import (
	"github.com/veandco/go-sdl2/sdl"
)

// EventType classifies a processed SDL event.
type EventType int

const (
	EventNone EventType = iota
	EventQuit
	EventWindowResize
	EventKeyDown
	EventKeyUp
	EventControllerAdded
	EventControllerRemoved
)

// Event represents a processed input event.
type Event struct {
	Type   EventType
	Key    sdl.Scancode
	Width  int
	Height int
	Device int
}

// Pump polls SDL events once per frame. It must run on the thread that
// initialized SDL.
type Pump struct {
	events      []Event
	controllers *Controllers
}

// NewPump creates an event pump. controllers may be nil.
func NewPump(controllers *Controllers) *Pump {
	return &Pump{
		events:      make([]Event, 0, 16),
		controllers: controllers,
	}
}

// Update polls SDL events and converts them to sandbox events.
// Returns true if the window was closed.
func (p *Pump) Update() bool {
	p.events = p.events[:0]

	for event := sdl.PollEvent(); event != nil; event = sdl.PollEvent() {
		switch e := event.(type) {
		case *sdl.QuitEvent:
			p.events = append(p.events, Event{Type: EventQuit})
			return true

		case *sdl.WindowEvent:
			if e.Event == sdl.WINDOWEVENT_RESIZED {
				p.events = append(p.events, Event{
					Type:   EventWindowResize,
					Width:  int(e.Data1),
					Height: int(e.Data2),
				})
			}

		case *sdl.KeyboardEvent:
			if e.Repeat != 0 {
				continue
			}
			if e.Type == sdl.KEYDOWN {
				p.events = append(p.events, Event{Type: EventKeyDown, Key: e.Keysym.Scancode})
			} else if e.Type == sdl.KEYUP {
				p.events = append(p.events, Event{Type: EventKeyUp, Key: e.Keysym.Scancode})
			}

		case *sdl.ControllerDeviceEvent:
			switch e.Type {
			case sdl.CONTROLLERDEVICEADDED:
				p.events = append(p.events, Event{Type: EventControllerAdded, Device: int(e.Which)})
				if p.controllers != nil {
					p.controllers.Open(int(e.Which))
				}
			case sdl.CONTROLLERDEVICEREMOVED:
				p.events = append(p.events, Event{Type: EventControllerRemoved, Device: int(e.Which)})
				if p.controllers != nil {
					p.controllers.Remove(sdl.JoystickID(e.Which))
				}
			}
		}
	}

	return false
}

// Events returns the events from the last Update.
func (p *Pump) Events() []Event {
	return p.events
}

// IsKeyPressed checks if a specific key went down this frame.
func (p *Pump) IsKeyPressed(scancode sdl.Scancode) bool {
	for _, e := range p.events {
		if e.Type == EventKeyDown && e.Key == scancode {
			return true
		}
	}
	return false
}
