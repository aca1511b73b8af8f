package task

import "robocore-dx/internal/clock"

// parallelTask starts all of its children together and gives each
// exactly one Update per outer Update, regardless of whether sibling
// children have already completed. An empty parallel completes
// immediately with Success. The outcome is Success iff every child
// finished Success; otherwise it takes on the first non-Success outcome
// in child order.
type parallelTask struct {
	children []Task
	complete bool
	outcome  Outcome
}

// ParallelAll returns a Task that runs all children concurrently
// (cooperatively) and completes once every child has completed.
func ParallelAll(children ...Task) Task {
	return &parallelTask{children: children}
}

func (t *parallelTask) Start(c *clock.LoopClock) {
	t.complete = false
	t.outcome = Unknown
	if len(t.children) == 0 {
		t.complete = true
		t.outcome = Success
		return
	}
	for _, child := range t.children {
		child.Start(c)
	}
	t.checkDone()
}

func (t *parallelTask) Update(c *clock.LoopClock) {
	if t.complete {
		return
	}
	for _, child := range t.children {
		if !child.IsComplete() {
			child.Update(c)
		}
	}
	t.checkDone()
}

func (t *parallelTask) checkDone() {
	allDone := true
	outcome := Success
	for _, child := range t.children {
		if !child.IsComplete() {
			allDone = false
			break
		}
		if o := child.Outcome(); o != Success && outcome == Success {
			outcome = o
		}
	}
	if allDone {
		t.complete = true
		t.outcome = outcome
	}
}

func (t *parallelTask) IsComplete() bool { return t.complete }

func (t *parallelTask) Outcome() Outcome { return t.outcome }
