package input

// Trigger selects which edge of a Button's state a Binding fires on.
type Trigger int

const (
	// OnPress fires the one cycle a button transitions to pressed.
	OnPress Trigger = iota
	// OnRelease fires the one cycle a button transitions to released.
	OnRelease
	// WhileHeld fires every cycle a button is held, including the
	// cycle it is first pressed (see Bindings.WhileHeld for why).
	WhileHeld
)

// Binding pairs a button accessor with a trigger and the action to run
// when that trigger condition holds.
type Binding struct {
	selector func(Snapshot) Button
	trigger  Trigger
	action   func()
}

// Bindings is an ordered set of bindings evaluated against one player's
// snapshot once per cycle.
type Bindings struct {
	entries       []Binding
	lastFireCycle int64
	haveFired     bool
}

// NewBindings returns an empty binding registry.
func NewBindings() *Bindings {
	return &Bindings{}
}

// Bind registers action to run when trigger holds for the button
// selector extracts from a player's Snapshot.
func (b *Bindings) Bind(selector func(Snapshot) Button, trigger Trigger, action func()) {
	b.entries = append(b.entries, Binding{selector: selector, trigger: trigger, action: action})
}

// OnPress is a convenience wrapper for Bind with the OnPress trigger.
func (b *Bindings) OnPress(selector func(Snapshot) Button, action func()) {
	b.Bind(selector, OnPress, action)
}

// OnRelease is a convenience wrapper for Bind with the OnRelease trigger.
func (b *Bindings) OnRelease(selector func(Snapshot) Button, action func()) {
	b.Bind(selector, OnRelease, action)
}

// WhileHeld is a convenience wrapper for Bind with the WhileHeld trigger.
//
// WhileHeld fires on the same cycle as OnPress, not the cycle after: a
// held-down action (e.g. a continuously-driven intake) should start
// acting the instant the button goes down, not one cycle late. Both
// triggers on the same button observe it identically.
func (b *Bindings) WhileHeld(selector func(Snapshot) Button, action func()) {
	b.Bind(selector, WhileHeld, action)
}

// Fire evaluates every binding against snap exactly once for the given
// cycle number. Calling it again with the same cycle is a no-op, so a
// host can call Fire from multiple places without double-firing
// bindings within one cycle. Within a cycle, every on_press binding
// whose button just rose fires first, then every on_release binding
// whose button just fell, then every while_held binding for a currently
// pressed button.
func (b *Bindings) Fire(snap Snapshot, cycle int64) {
	if b.haveFired && b.lastFireCycle == cycle {
		return
	}
	b.haveFired = true
	b.lastFireCycle = cycle

	b.fireTrigger(snap, OnPress)
	b.fireTrigger(snap, OnRelease)
	b.fireTrigger(snap, WhileHeld)
}

func (b *Bindings) fireTrigger(snap Snapshot, trigger Trigger) {
	for _, entry := range b.entries {
		if entry.trigger != trigger {
			continue
		}
		button := entry.selector(snap)
		var fire bool
		switch trigger {
		case OnPress:
			fire = button.JustPressed()
		case OnRelease:
			fire = button.JustReleased()
		case WhileHeld:
			fire = button.Pressed()
		}
		if fire && entry.action != nil {
			entry.action()
		}
	}
}
