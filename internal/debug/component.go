package debug

// Component tags which top-level system produced a recorded entry. This
// is a Recorder-level convenience for filtering in a dashboard; it plays
// no part in the core Sink contract itself.
type Component string

const (
	ComponentClock    Component = "clock"
	ComponentInput    Component = "input"
	ComponentTask     Component = "task"
	ComponentDrive    Component = "drive"
	ComponentGuidance Component = "guidance"
	ComponentPlant    Component = "plant"
)
