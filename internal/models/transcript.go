package models

// TurnType identifies the speaker of a transcript turn
type TurnType string

const (
	TurnUser TurnType = "user"
	TurnBot  TurnType = "bot"
)

// Turn is one displayed chat message
type Turn struct {
	Type    TurnType `json:"type"`
	Content string   `json:"content"`
}

// Transcript is the client-side conversation log. It is append-only,
// lives for one session and is never read back into classification.
type Transcript struct {
	turns []Turn
}

// Append adds a turn to the end of the transcript
func (t *Transcript) Append(kind TurnType, content string) {
	t.turns = append(t.turns, Turn{Type: kind, Content: content})
}

// Turns returns a copy of the recorded turns
func (t *Transcript) Turns() []Turn {
	out := make([]Turn, len(t.turns))
	copy(out, t.turns)
	return out
}

// Len returns the number of turns
func (t *Transcript) Len() int {
	return len(t.turns)
}
