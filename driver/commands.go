package driver

// Action is a player command queued by an input layer.
type Action uint8

const (
	ActionMoveLeft Action = iota
	ActionMoveRight
	ActionSoftDrop
	ActionRotateLeft
	ActionRotateRight
	ActionHold
	ActionHardDrop
)

var actionNames = [...]string{
	ActionMoveLeft:    "move-left",
	ActionMoveRight:   "move-right",
	ActionSoftDrop:    "soft-drop",
	ActionRotateLeft:  "rotate-left",
	ActionRotateRight: "rotate-right",
	ActionHold:        "hold",
	ActionHardDrop:    "hard-drop",
}

func (a Action) String() string {
	if int(a) < len(actionNames) {
		return actionNames[a]
	}
	return "unknown"
}

// ParseAction is the inverse of Action.String.
func ParseAction(name string) (Action, bool) {
	for i, n := range actionNames {
		if n == name {
			return Action(i), true
		}
	}
	return 0, false
}

// Commands buffers player actions between frames and deferred functions
// that run once the frame's systems have finished.
type Commands struct {
	actions []Action
	defers  []func()
}

func newCommands() *Commands {
	return &Commands{}
}

// Push queues an action for the next InputSystem pass.
func (c *Commands) Push(actions ...Action) {
	c.actions = append(c.actions, actions...)
}

// Defer queues a function to run at the end of the current frame.
func (c *Commands) Defer(fn func()) {
	c.defers = append(c.defers, fn)
}

// Len returns the number of queued actions.
func (c *Commands) Len() int {
	return len(c.actions)
}

// take hands the queued actions to the caller and empties the queue.
func (c *Commands) take() []Action {
	actions := c.actions
	c.actions = nil
	return actions
}

// Flush runs the deferred functions, resetting the buffer state. Actions
// pushed by a deferred function stay queued for the next frame.
func (c *Commands) Flush() {
	defers := c.defers
	c.defers = nil
	for _, fn := range defers {
		fn()
	}
}
