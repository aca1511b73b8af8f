package task

import "robocore-dx/internal/clock"

// sequenceTask runs its children one at a time in order. An empty
// sequence completes immediately with Success. The sequence's outcome is
// Success iff every child finished Success; otherwise it takes on the
// first non-Success outcome its children reported.
type sequenceTask struct {
	children []Task
	index    int
	complete bool
	outcome  Outcome
}

// Sequence returns a Task that runs children one after another,
// starting the next child on the same cycle the previous one completes.
func Sequence(children ...Task) Task {
	return &sequenceTask{children: children}
}

func (t *sequenceTask) Start(c *clock.LoopClock) {
	t.index = 0
	t.complete = false
	t.outcome = Unknown
	if len(t.children) == 0 {
		t.complete = true
		t.outcome = Success
		return
	}
	t.children[0].Start(c)
	t.advanceIfDone(c)
}

func (t *sequenceTask) Update(c *clock.LoopClock) {
	if t.complete {
		return
	}
	t.children[t.index].Update(c)
	t.advanceIfDone(c)
}

// advanceIfDone starts the next child on the same cycle the current one
// finishes, and may advance through several children in a single cycle
// if each newly started child also completes instantly.
func (t *sequenceTask) advanceIfDone(c *clock.LoopClock) {
	for !t.complete && t.children[t.index].IsComplete() {
		outcome := t.children[t.index].Outcome()
		if outcome != Success {
			t.complete = true
			t.outcome = outcome
			return
		}
		t.index++
		if t.index >= len(t.children) {
			t.complete = true
			t.outcome = Success
			return
		}
		t.children[t.index].Start(c)
	}
}

func (t *sequenceTask) IsComplete() bool { return t.complete }

func (t *sequenceTask) Outcome() Outcome { return t.outcome }
