package dispatcher

import (
	"errors"
	"fmt"

	"elevatorcore/cabin"
)

// ErrBadFloor is returned when a call references a floor outside the
// configured FloorLimits.
var ErrBadFloor = errors.New("dispatcher: floor outside limits")

// ErrBadCabinID is returned when a call references a cabin index that does
// not exist in the current fleet.
var ErrBadCabinID = errors.New("dispatcher: unknown cabin id")

func badFloorError(floor int, limits *cabin.FloorLimits) error {
	return fmt.Errorf("%w: floor %d not in [%d, %d]", ErrBadFloor, floor, limits.Bottom, limits.Top)
}

func badCabinIDError(id, fleetSize int) error {
	return fmt.Errorf("%w: cabin %d (fleet size %d)", ErrBadCabinID, id, fleetSize)
}
