// Package cabin implements the per-elevator state machine: position, travel
// direction, work status, pending drop-offs and at most one assigned pickup.
package cabin

// Direction is a travel heading. Up and Down are the only values that ever
// cross the dispatcher's public boundary (a PickupTask.Direction is always
// one of the two); Unassigned only ever appears on an idle or momentarily
// undecided Cabin.
type Direction int

const (
	Up Direction = iota
	Down
	Unassigned
)

func (d Direction) String() string {
	switch d {
	case Up:
		return "Up"
	case Down:
		return "Down"
	case Unassigned:
		return "Unassigned"
	default:
		return "Direction(?)"
	}
}

// WorkStatus is a cabin's current activity.
type WorkStatus int

const (
	Idle WorkStatus = iota
	Moving
	Stopped
)

func (s WorkStatus) String() string {
	switch s {
	case Idle:
		return "Idle"
	case Moving:
		return "Moving"
	case Stopped:
		return "Stopped"
	default:
		return "WorkStatus(?)"
	}
}

// PickupTask is an immutable hall call: a floor plus the direction the rider
// wants to travel. Two tasks are the same pickup when both fields match.
type PickupTask struct {
	Floor     int
	Direction Direction
}

// FloorLimits bounds the floors a cabin may legally occupy. A nil
// *FloorLimits disables the check entirely.
type FloorLimits struct {
	Bottom int
	Top    int
}

// Contains reports whether floor lies within the limits (inclusive). A nil
// receiver always contains every floor.
func (l *FloorLimits) Contains(floor int) bool {
	if l == nil {
		return true
	}
	return floor >= l.Bottom && floor <= l.Top
}

// Cabin is one elevator car. ID is stable for the cabin's lifetime within a
// fleet and always equals its index.
type Cabin struct {
	ID             int
	Floor          int
	Direction      Direction
	Status         WorkStatus
	DropOffs       map[int]struct{}
	AssignedPickup *PickupTask
}

// New returns a freshly idle cabin at floor, per SetElevator/SetElevatorCount
// semantics: no drop-offs, no assigned pickup, unassigned direction.
func New(id, floor int) *Cabin {
	return &Cabin{
		ID:        id,
		Floor:     floor,
		Direction: Unassigned,
		Status:    Idle,
		DropOffs:  make(map[int]struct{}),
	}
}

// HasDropOff reports whether floor is a pending drop-off.
func (c *Cabin) HasDropOff(floor int) bool {
	_, ok := c.DropOffs[floor]
	return ok
}

// AddDropOff records floor as a pending drop-off. Idempotent.
func (c *Cabin) AddDropOff(floor int) {
	c.DropOffs[floor] = struct{}{}
}

func (c *Cabin) clearDropOff(floor int) {
	delete(c.DropOffs, floor)
}
