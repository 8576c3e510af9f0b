package cabin

import "log/slog"

// Destination is the pure function of cabin state described by the spec's
// "current destination rule". It never mutates c.
func (c *Cabin) Destination() int {
	if c.AssignedPickup != nil {
		return c.AssignedPickup.Floor
	}
	if len(c.DropOffs) > 0 {
		switch c.Direction {
		case Up:
			return c.maxDropOff()
		case Down:
			return c.minDropOff()
		default:
			return c.anyDropOff()
		}
	}
	return c.Floor
}

func (c *Cabin) maxDropOff() int {
	max, first := 0, true
	for f := range c.DropOffs {
		if first || f > max {
			max, first = f, false
		}
	}
	return max
}

func (c *Cabin) minDropOff() int {
	min, first := 0, true
	for f := range c.DropOffs {
		if first || f < min {
			min, first = f, false
		}
	}
	return min
}

func (c *Cabin) anyDropOff() int {
	for f := range c.DropOffs {
		return f
	}
	return c.Floor
}

// headingTo returns the direction of travel from from to to. Calling it with
// from == to is a programmer error: every call site guards against a
// no-op destination first.
func headingTo(from, to int) Direction {
	switch {
	case to > from:
		return Up
	case to < from:
		return Down
	default:
		panic("cabin: headingTo called with equal floors")
	}
}

// Advance runs one tick of the cabin's state machine. It is invoked by the
// dispatcher exactly once per cabin per Step.
func (c *Cabin) Advance() {
	switch c.Status {
	case Idle:
		c.advanceFromIdle()
	case Stopped:
		c.advanceFromStopped()
	case Moving:
		c.advanceFromMoving()
	}
}

func (c *Cabin) advanceFromIdle() {
	if len(c.DropOffs) == 0 && c.AssignedPickup == nil {
		return
	}
	if c.HasDropOff(c.Floor) {
		c.clearDropOff(c.Floor)
		c.Status = Stopped
		slog.Debug("cabin stopped at floor without moving", "cabin", c.ID, "floor", c.Floor)
		return
	}
	c.Status = Moving
	c.Direction = headingTo(c.Floor, c.Destination())
	slog.Debug("cabin departing idle", "cabin", c.ID, "floor", c.Floor, "direction", c.Direction)
}

func (c *Cabin) advanceFromStopped() {
	if len(c.DropOffs) == 0 && c.AssignedPickup == nil {
		c.Status = Idle
		c.Direction = Unassigned
		slog.Debug("cabin idling", "cabin", c.ID, "floor", c.Floor)
		return
	}
	dest := c.Destination()
	if dest == c.Floor {
		// A drop-off was added at the floor the cabin is already stopped at:
		// clear it without computing a heading toward the current floor.
		c.clearDropOff(c.Floor)
		slog.Debug("cabin stopped again at floor without moving", "cabin", c.ID, "floor", c.Floor)
		return
	}
	c.Status = Moving
	if c.Direction == Unassigned {
		c.Direction = headingTo(c.Floor, dest)
	} else if want := headingTo(c.Floor, dest); want != c.Direction {
		c.Direction = want
	}
	slog.Debug("cabin resuming", "cabin", c.ID, "floor", c.Floor, "direction", c.Direction)
}

func (c *Cabin) advanceFromMoving() {
	dest := c.Destination()
	switch headingTo(c.Floor, dest) {
	case Up:
		c.Floor++
	case Down:
		c.Floor--
	}

	stopped := false
	if c.HasDropOff(c.Floor) {
		c.clearDropOff(c.Floor)
		stopped = true
	}
	if c.AssignedPickup != nil && c.AssignedPickup.Floor == c.Floor {
		c.Direction = c.AssignedPickup.Direction
		c.AssignedPickup = nil
		stopped = true
	}
	if stopped {
		c.Status = Stopped
		slog.Debug("cabin stopped", "cabin", c.ID, "floor", c.Floor, "direction", c.Direction)
	}
}

// CanClear reports whether the cabin, at its current floor, may opportunistically
// absorb task into its own workload instead of leaving it in the dispatcher's pool.
func (c *Cabin) CanClear(task PickupTask, limits *FloorLimits, soleMode bool) bool {
	if task.Floor != c.Floor {
		return false
	}
	if soleMode {
		return true
	}
	if task.Direction != c.Direction {
		return false
	}
	if c.AssignedPickup != nil {
		if limits != nil && c.AssignedPickup.Floor == limits.Top && task.Direction == Up {
			return true
		}
		if limits != nil && c.AssignedPickup.Floor == limits.Bottom && task.Direction == Down {
			return true
		}
		if c.AssignedPickup.Direction != task.Direction {
			return false
		}
		return true
	}
	return true
}
