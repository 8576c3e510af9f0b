package dispatcher

import (
	"sort"

	"github.com/tiendc/go-deepcopy"

	"elevatorcore/cabin"
)

// CabinStatus is an independent snapshot of one cabin, safe for a caller to
// retain or mutate without affecting the dispatcher.
type CabinStatus struct {
	ID          int
	Floor       int
	Destination int
	Status      cabin.WorkStatus
	DropOffs    []int
}

// Status returns a snapshot of every cabin in the fleet, in id order.
func (d *Dispatcher) Status() []CabinStatus {
	fleetCopy := make([]*cabin.Cabin, len(d.fleet))
	if err := deepcopy.Copy(&fleetCopy, &d.fleet); err != nil {
		panic(err)
	}

	out := make([]CabinStatus, len(fleetCopy))
	for i, c := range fleetCopy {
		dropOffs := make([]int, 0, len(c.DropOffs))
		for f := range c.DropOffs {
			dropOffs = append(dropOffs, f)
		}
		sort.Ints(dropOffs)
		out[i] = CabinStatus{
			ID:          c.ID,
			Floor:       c.Floor,
			Destination: c.Destination(),
			Status:      c.Status,
			DropOffs:    dropOffs,
		}
	}
	return out
}

// Tasks returns every PickupTask the dispatcher currently knows about: the
// pool plus every cabin's assigned pickup, if any. Order is not part of the
// contract.
func (d *Dispatcher) Tasks() []cabin.PickupTask {
	poolCopy := make([]cabin.PickupTask, len(d.pool))
	if err := deepcopy.Copy(&poolCopy, &d.pool); err != nil {
		panic(err)
	}

	out := poolCopy
	for _, c := range d.fleet {
		if c.AssignedPickup != nil {
			out = append(out, *c.AssignedPickup)
		}
	}
	return out
}
