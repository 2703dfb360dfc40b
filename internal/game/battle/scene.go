package battle

import (
	"context"
	"fmt"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Scene is the boundary to the visual layer. PlayMoveAnimation blocks until the
// renderer signals completion (or ctx ends); banners are fire-and-forget.
type Scene interface {
	PlayMoveAnimation(ctx context.Context, user *Battler, move *Move, targets []*Battler) error
	ShowAbility(b *Battler)
	ShowItem(b *Battler)
}

// MessageSink receives every battle message in emission order.
type MessageSink interface {
	Emit(msg Message)
}

// Message is one line of battle text. Key is stable for programmatic checks;
// Text is an English rendering for logs and simple front-ends.
type Message struct {
	Turn int
	Key  string
	Text string
}

// NopScene renders nothing and never blocks.
type NopScene struct{}

func (NopScene) PlayMoveAnimation(context.Context, *Battler, *Move, []*Battler) error { return nil }
func (NopScene) ShowAbility(*Battler)                                                 {}
func (NopScene) ShowItem(*Battler)                                                    {}

// DiscardMessages drops every message.
type DiscardMessages struct{}

func (DiscardMessages) Emit(Message) {}

var titleCaser = cases.Title(language.English)

// DisplayName turns a data symbol ("thunder_punch") into display text ("Thunder Punch").
func DisplayName(symbol string) string {
	if symbol == "" {
		return ""
	}
	return titleCaser.String(strings.ReplaceAll(symbol, "_", " "))
}

// Say emits a message for the current turn.
func (l *Logic) Say(key, format string, args ...any) {
	l.messages.Emit(Message{Turn: l.turn, Key: key, Text: fmt.Sprintf(format, args...)})
}

// Scene returns the visual layer.
func (l *Logic) Scene() Scene { return l.scene }

// MessageLog keeps every message in memory.
type MessageLog struct {
	Messages []Message
}

func (m *MessageLog) Emit(msg Message) { m.Messages = append(m.Messages, msg) }

// Keys returns the message keys in emission order.
func (m *MessageLog) Keys() []string {
	keys := make([]string, len(m.Messages))
	for i, msg := range m.Messages {
		keys[i] = msg.Key
	}
	return keys
}

// Count returns how many messages carry key.
func (m *MessageLog) Count(key string) int {
	n := 0
	for _, msg := range m.Messages {
		if msg.Key == key {
			n++
		}
	}
	return n
}
