package battle

// ActionKind is the bracket of an action in turn order: lower kinds act first.
type ActionKind int8

const (
	ActionFlee ActionKind = iota
	ActionItem
	ActionSwitch
	ActionAttack
)

func (k ActionKind) String() string {
	switch k {
	case ActionFlee:
		return "flee"
	case ActionItem:
		return "item"
	case ActionSwitch:
		return "switch"
	case ActionAttack:
		return "attack"
	}
	return "unknown"
}

// Action is one choice submitted for a turn.
type Action interface {
	Kind() ActionKind
	Actor() *Battler
}

// AttackAction uses the move at MoveIndex against the battler at
// (TargetBank, TargetPosition).
type AttackAction struct {
	User           *Battler
	MoveIndex      int
	TargetBank     int
	TargetPosition int

	move   *Move
	forced bool
}

func (a *AttackAction) Kind() ActionKind { return ActionAttack }
func (a *AttackAction) Actor() *Battler  { return a.User }

// ItemAction uses a bag item on Target (a member of the user's party).
type ItemAction struct {
	User   *Battler
	Item   string
	Target *Battler
}

func (a *ItemAction) Kind() ActionKind { return ActionItem }
func (a *ItemAction) Actor() *Battler  { return a.User }

// SwitchAction replaces Who with the party member at PartyIndex.
type SwitchAction struct {
	Who        *Battler
	PartyIndex int
}

func (a *SwitchAction) Kind() ActionKind { return ActionSwitch }
func (a *SwitchAction) Actor() *Battler  { return a.Who }

// FleeAction tries to run from a wild battle.
type FleeAction struct {
	User *Battler
}

func (a *FleeAction) Kind() ActionKind { return ActionFlee }
func (a *FleeAction) Actor() *Battler  { return a.User }
