// Package dispatcher owns the fleet of cabins and the pool of unassigned
// hall calls. It runs a single-threaded, synchronous, tick-driven scheduling
// loop: nothing in this package touches a clock, a goroutine, or a channel.
package dispatcher

import (
	"fmt"
	"log/slog"

	"elevatorcore/cabin"
)

// Dispatcher coordinates a fleet of cabins against a shared pool of
// unassigned pickups. It has no thread-safety contract; callers sharing one
// across goroutines must serialize access themselves.
type Dispatcher struct {
	fleet    []*cabin.Cabin
	pool     []cabin.PickupTask
	limits   *cabin.FloorLimits
	soleMode bool
}

// New builds a Dispatcher with fleetSize idle cabins at floor 0 and no
// floor limits.
func New(fleetSize int) *Dispatcher {
	d := &Dispatcher{}
	d.SetElevatorCount(fleetSize)
	return d
}

// Pickup registers a hall call at floor for the given direction. Rejects
// with ErrBadFloor if floor lies outside the configured limits. Duplicate
// (floor, direction) pairs already in the pool are silently ignored; a
// pickup already held as some cabin's assigned pickup does not block a new
// pool entry for the same (floor, direction) — see DESIGN.md.
func (d *Dispatcher) Pickup(floor int, dir cabin.Direction) error {
	if !d.limits.Contains(floor) {
		return badFloorError(floor, d.limits)
	}
	task := cabin.PickupTask{Floor: floor, Direction: dir}
	for _, existing := range d.pool {
		if existing == task {
			slog.Debug("pickup already pooled, ignoring", "floor", floor, "direction", dir)
			return nil
		}
	}
	d.pool = append(d.pool, task)
	slog.Debug("pickup pooled", "floor", floor, "direction", dir)
	return nil
}

// SelectFloor records a cabin-interior floor selection. Rejects with
// ErrBadFloor if floor is outside limits, or ErrBadCabinID if cabinID does
// not name a cabin in the fleet. Idempotent.
func (d *Dispatcher) SelectFloor(cabinID, floor int) error {
	if !d.limits.Contains(floor) {
		return badFloorError(floor, d.limits)
	}
	c, err := d.cabinByID(cabinID)
	if err != nil {
		return err
	}
	c.AddDropOff(floor)
	slog.Debug("drop-off recorded", "cabin", cabinID, "floor", floor)
	return nil
}

// SetElevator replaces the cabin at index id with a fresh idle cabin at
// floor. Any pickup the old cabin was carrying is returned to the pool; its
// drop-offs are discarded. Rejects with ErrBadCabinID / ErrBadFloor.
func (d *Dispatcher) SetElevator(id, floor int) error {
	if !d.limits.Contains(floor) {
		return badFloorError(floor, d.limits)
	}
	old, err := d.cabinByID(id)
	if err != nil {
		return err
	}
	if old.AssignedPickup != nil {
		d.pool = append(d.pool, *old.AssignedPickup)
		slog.Debug("returned assigned pickup to pool on reset", "cabin", id, "task", *old.AssignedPickup)
	}
	d.fleet[id] = cabin.New(id, floor)
	return nil
}

// SetElevatorCount resizes the fleet. Growing appends fresh idle cabins at
// floor 0; shrinking truncates the tail and silently discards any assigned
// pickups those cabins were carrying (see DESIGN.md Open Question 1 — this
// intentionally does not match SetElevator's return-to-pool behaviour).
func (d *Dispatcher) SetElevatorCount(n int) {
	switch {
	case n < 0:
		return
	case n < len(d.fleet):
		d.fleet = d.fleet[:n]
	case n > len(d.fleet):
		for id := len(d.fleet); id < n; id++ {
			d.fleet = append(d.fleet, cabin.New(id, 0))
		}
	}
}

// SetFloorLimits sets or clears (nil) the floor-limit check. Rejects a
// non-nil limits with Bottom > Top; otherwise does not retroactively
// validate existing cabin positions or pooled/assigned pickups.
func (d *Dispatcher) SetFloorLimits(limits *cabin.FloorLimits) error {
	if limits != nil && limits.Bottom > limits.Top {
		return fmt.Errorf("%w: bottom %d above top %d", ErrBadFloor, limits.Bottom, limits.Top)
	}
	d.limits = limits
	return nil
}

// SetSoleElevatorMode toggles the relaxed absorption rule that ignores
// direction matching entirely. Takes effect from the next Step.
func (d *Dispatcher) SetSoleElevatorMode(on bool) {
	d.soleMode = on
}

func (d *Dispatcher) cabinByID(id int) (*cabin.Cabin, error) {
	if id < 0 || id >= len(d.fleet) {
		return nil, badCabinIDError(id, len(d.fleet))
	}
	return d.fleet[id], nil
}

// Step advances simulated time by one tick: every cabin advances, moving
// cabins opportunistically absorb compatible pool pickups at their new
// floor, and finally any remaining pool pickups are assigned to idle
// cabins, closest first.
func (d *Dispatcher) Step() {
	for _, c := range d.fleet {
		c.Advance()
		d.absorb(c)
	}
	d.assignIdleCabins()
}

// absorb looks for the first pool task c can opportunistically clear at its
// current floor and, if found, removes it from the pool and stops c there.
func (d *Dispatcher) absorb(c *cabin.Cabin) {
	if c.Status == cabin.Idle {
		return
	}
	for i, task := range d.pool {
		if c.CanClear(task, d.limits, d.soleMode) {
			d.pool = removeAt(d.pool, i)
			c.Status = cabin.Stopped
			slog.Debug("cabin absorbed pool pickup", "cabin", c.ID, "floor", c.Floor, "task", task)
			return
		}
	}
}

// assignIdleCabins drains the pool into idle cabins, closest cabin first,
// until either the pool is empty or no cabin remains idle.
func (d *Dispatcher) assignIdleCabins() {
	for len(d.pool) > 0 {
		target, ok := d.closestIdleCabin(d.pool[0].Floor)
		if !ok {
			return
		}
		task := d.pool[0]
		d.pool = removeAt(d.pool, 0)

		if task.Floor == target.Floor {
			// The chosen cabin is already sitting on the requested floor:
			// resolve the pickup immediately rather than declare a heading
			// toward a destination that equals the current floor.
			target.Direction = task.Direction
			target.Status = cabin.Stopped
			slog.Debug("assigned pickup resolved immediately", "cabin", target.ID, "task", task)
			continue
		}

		target.AssignedPickup = &task
		target.Status = cabin.Moving
		target.Direction = headingTowards(target.Floor, task.Floor)
		slog.Debug("assigned pickup to idle cabin", "cabin", target.ID, "task", task)
	}
}

// closestIdleCabin finds the idle cabin with the smallest absolute distance
// to floor, ties broken by lowest id (fleet order is already id order).
func (d *Dispatcher) closestIdleCabin(floor int) (*cabin.Cabin, bool) {
	var best *cabin.Cabin
	bestDist := 0
	for _, c := range d.fleet {
		if c.Status != cabin.Idle {
			continue
		}
		dist := abs(c.Floor - floor)
		if best == nil || dist < bestDist {
			best, bestDist = c, dist
		}
	}
	return best, best != nil
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

func removeAt(tasks []cabin.PickupTask, i int) []cabin.PickupTask {
	out := make([]cabin.PickupTask, 0, len(tasks)-1)
	out = append(out, tasks[:i]...)
	out = append(out, tasks[i+1:]...)
	return out
}

// headingTowards returns Up if to is strictly above from, Down otherwise.
// Callers guard the from == to case (see assignIdleCabins) since a cabin
// already sitting on the target floor is resolved immediately instead.
func headingTowards(from, to int) cabin.Direction {
	if to > from {
		return cabin.Up
	}
	return cabin.Down
}
