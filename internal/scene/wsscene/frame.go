package wsscene

import "github.com/udisondev/battlecore/internal/game/battle"

// Frame types sent to renderers.
const (
	FrameMessage   = "message"
	FrameAnimation = "animation"
	FrameAbility   = "ability"
	FrameItem      = "item"
)

// FrameAck is the only frame type read from renderers. It releases the animation
// with the same Seq.
const FrameAck = "ack"

// Frame is one JSON text frame of the spectate protocol.
type Frame struct {
	Type string `json:"type"`
	Seq  uint64 `json:"seq,omitempty"`
	Turn int    `json:"turn,omitempty"`

	Key  string `json:"key,omitempty"`
	Text string `json:"text,omitempty"`

	Battler *Actor  `json:"battler,omitempty"`
	Move    string  `json:"move,omitempty"`
	Targets []Actor `json:"targets,omitempty"`
	Symbol  string  `json:"symbol,omitempty"`
}

// Actor identifies a battler by its slot on the field.
type Actor struct {
	Name     string `json:"name"`
	Species  string `json:"species"`
	Bank     int    `json:"bank"`
	Position int    `json:"position"`
	HP       int    `json:"hp"`
	MaxHP    int    `json:"max_hp"`
}

func actorOf(b *battle.Battler) Actor {
	return Actor{
		Name:     b.Name(),
		Species:  b.Species(),
		Bank:     b.Bank(),
		Position: b.Position(),
		HP:       b.HP(),
		MaxHP:    b.MaxHP(),
	}
}

func actorRef(b *battle.Battler) *Actor {
	a := actorOf(b)
	return &a
}
