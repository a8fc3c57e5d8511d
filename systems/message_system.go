package systems

import (
	"fmt"

	"ebiten-dungeon/generation"
)

// MessageLog keeps recent generation messages for display
type MessageLog struct {
	Messages    []string
	MaxMessages int
	muted       map[generation.EventType]bool
}

// NewMessageLog creates a message log. Rejected placement attempts are muted
// since a crowded map produces hundreds of them.
func NewMessageLog(maxMessages int) *MessageLog {
	return &MessageLog{
		Messages:    []string{},
		MaxMessages: maxMessages,
		muted: map[generation.EventType]bool{
			generation.EventRoomRejected: true,
		},
	}
}

// Add adds a message to the log
func (ml *MessageLog) Add(message string) {
	ml.Messages = append(ml.Messages, message)

	if len(ml.Messages) > ml.MaxMessages {
		ml.Messages = ml.Messages[len(ml.Messages)-ml.MaxMessages:]
	}
}

// Mute stops or resumes recording one event type
func (ml *MessageLog) Mute(eventType generation.EventType, muted bool) {
	if ml.muted == nil {
		ml.muted = make(map[generation.EventType]bool)
	}
	ml.muted[eventType] = muted
}

// HandleEvent records a generation event; it can be passed to DungeonGenerator.Observe
func (ml *MessageLog) HandleEvent(e generation.Event) {
	if ml.muted[e.Type] {
		return
	}
	ml.Add(e.String())
}

// AddSummary records the outcome of a generation pass
func (ml *MessageLog) AddSummary(layout *generation.Layout) {
	ml.Add(Summary(layout))
}

// RecentMessages gets the n most recent messages, newest first
func (ml *MessageLog) RecentMessages(n int) []string {
	if n > len(ml.Messages) {
		n = len(ml.Messages)
	}

	result := make([]string, n)
	for i := 0; i < n; i++ {
		result[i] = ml.Messages[len(ml.Messages)-1-i]
	}

	return result
}

// Clear clears all messages
func (ml *MessageLog) Clear() {
	ml.Messages = []string{}
}

// Summary describes a layout in one line
func Summary(layout *generation.Layout) string {
	corridors := 0
	for _, room := range layout.Rooms {
		corridors += len(room.Corridors)
	}
	return fmt.Sprintf("%dx%d map: %d of %d rooms placed, %d corridors",
		layout.Grid.Width, layout.Grid.Height, layout.Placed(), layout.Requested, corridors)
}
