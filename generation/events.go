package generation

import (
	"fmt"

	"ebiten-dungeon/components"
)

// EventType identifies a generation decision
type EventType string

const (
	EventBackgroundFilled EventType = "background_filled"
	EventRoomCountDrawn   EventType = "room_count_drawn"
	EventRoomRejected     EventType = "room_rejected"
	EventRoomPlaced       EventType = "room_placed"
	EventRoomSkipped      EventType = "room_skipped"
	EventSeedRejected     EventType = "seed_rejected"
	EventSeedChosen       EventType = "seed_chosen"
	EventCorridorGrown    EventType = "corridor_grown"
	EventCorridorProbed   EventType = "corridor_probed"
)

// Rejection reasons carried in Event.Detail
const (
	ReasonOverlap    = "overlap"
	ReasonNoPosition = "no_position"
	ReasonAdjacent   = "adjacent"
)

// Direction is an axis-aligned step on the grid. Up is +Y.
type Direction int

const (
	DirNone Direction = iota
	DirUp
	DirDown
	DirRight
	DirLeft
)

// Delta returns the unit step for d
func (d Direction) Delta() (int, int) {
	switch d {
	case DirUp:
		return 0, 1
	case DirDown:
		return 0, -1
	case DirRight:
		return 1, 0
	case DirLeft:
		return -1, 0
	}
	return 0, 0
}

func (d Direction) String() string {
	switch d {
	case DirUp:
		return "up"
	case DirDown:
		return "down"
	case DirRight:
		return "right"
	case DirLeft:
		return "left"
	}
	return "none"
}

// directionOf maps a unit delta back to a Direction
func directionOf(dx, dy int) Direction {
	switch {
	case dx == 0 && dy == 1:
		return DirUp
	case dx == 0 && dy == -1:
		return DirDown
	case dx == 1 && dy == 0:
		return DirRight
	case dx == -1 && dy == 0:
		return DirLeft
	}
	return DirNone
}

// Event records one decision made during generation. Only the fields
// relevant to Type are set.
type Event struct {
	Type      EventType
	Room      int // Index of the room slot being filled
	Attempt   int
	Rect      Rect
	Point     components.Point
	Direction Direction
	Count     int
	Detail    string
}

func (e Event) String() string {
	switch e.Type {
	case EventBackgroundFilled:
		return fmt.Sprintf("background filled (%d tiles)", e.Count)
	case EventRoomCountDrawn:
		return fmt.Sprintf("requesting %d rooms", e.Count)
	case EventRoomRejected:
		return fmt.Sprintf("room %d attempt %d rejected (%s) %v", e.Room, e.Attempt, e.Detail, e.Rect)
	case EventRoomPlaced:
		return fmt.Sprintf("room %d placed at %v after %d attempts, %d border tiles", e.Room, e.Rect, e.Attempt+1, e.Count)
	case EventRoomSkipped:
		return fmt.Sprintf("room %d skipped after %d attempts", e.Room, e.Attempt)
	case EventSeedRejected:
		return fmt.Sprintf("room %d seed (%d,%d) rejected (%s)", e.Room, e.Point.X, e.Point.Y, e.Detail)
	case EventSeedChosen:
		return fmt.Sprintf("room %d corridor start (%d,%d)", e.Room, e.Point.X, e.Point.Y)
	case EventCorridorGrown:
		return fmt.Sprintf("corridor from (%d,%d) heading %s, %d tiles carved", e.Point.X, e.Point.Y, e.Direction, e.Count)
	case EventCorridorProbed:
		return fmt.Sprintf("corridor from (%d,%d) opens %s", e.Point.X, e.Point.Y, e.Direction)
	}
	return string(e.Type)
}

// EventHandler processes events as they are emitted
type EventHandler func(Event)

// EventLog records generation events and dispatches them to subscribers
type EventLog struct {
	events      []Event
	subscribers map[EventType][]EventHandler
	all         []EventHandler
}

// NewEventLog creates an empty event log
func NewEventLog() *EventLog {
	return &EventLog{
		subscribers: make(map[EventType][]EventHandler),
	}
}

// Subscribe registers a handler for one event type
func (l *EventLog) Subscribe(eventType EventType, handler EventHandler) {
	l.subscribers[eventType] = append(l.subscribers[eventType], handler)
}

// SubscribeAll registers a handler for every event
func (l *EventLog) SubscribeAll(handler EventHandler) {
	l.all = append(l.all, handler)
}

// Emit records an event and dispatches it. A nil log discards the event.
func (l *EventLog) Emit(event Event) {
	if l == nil {
		return
	}
	l.events = append(l.events, event)
	for _, handler := range l.subscribers[event.Type] {
		handler(event)
	}
	for _, handler := range l.all {
		handler(event)
	}
}

// Events returns every recorded event in emission order
func (l *EventLog) Events() []Event {
	if l == nil {
		return nil
	}
	return l.events
}

// OfType returns the recorded events with the given type
func (l *EventLog) OfType(eventType EventType) []Event {
	var result []Event
	for _, e := range l.Events() {
		if e.Type == eventType {
			result = append(result, e)
		}
	}
	return result
}
