package dispatcher

import (
	"testing"

	"elevatorcore/cabin"
)

func stepUntilStopped(t *testing.T, d *Dispatcher, cabinID, maxTicks int) {
	t.Helper()
	for i := 0; i < maxTicks; i++ {
		if d.Status()[cabinID].Status == cabin.Stopped {
			return
		}
		d.Step()
	}
	t.Fatalf("cabin %d never stopped within %d ticks", cabinID, maxTicks)
}

// S1: single cabin, declared direction wins.
func TestScenarioDeclaredDirectionWins(t *testing.T) {
	d := New(1)
	if err := d.Pickup(5, cabin.Down); err != nil {
		t.Fatal(err)
	}
	for i := 0; i < 20 && d.Status()[0].Floor != 5; i++ {
		d.Step()
	}
	if got := d.Status()[0]; got.Floor != 5 || got.Status != cabin.Stopped {
		t.Fatalf("cabin did not reach and stop at floor 5: %+v", got)
	}

	if err := d.SelectFloor(0, 6); err != nil {
		t.Fatal(err)
	}
	if err := d.SelectFloor(0, -3); err != nil {
		t.Fatal(err)
	}
	if err := d.SelectFloor(0, 20); err != nil {
		t.Fatal(err)
	}
	d.Step()

	if got := d.Status()[0].Destination; got != -3 {
		t.Fatalf("Destination = %d, want -3", got)
	}
}

// S2: drop-offs complete before next pickup.
func TestScenarioDropOffsBeforeNextPickup(t *testing.T) {
	d := New(1)
	if err := d.Pickup(2, cabin.Down); err != nil {
		t.Fatal(err)
	}
	d.Step()
	if err := d.Pickup(3, cabin.Up); err != nil {
		t.Fatal(err)
	}
	stepUntilStopped(t, d, 0, 20)
	if got := d.Status()[0].Floor; got != 2 {
		t.Fatalf("first stop at floor %d, want 2", got)
	}

	if err := d.SelectFloor(0, 0); err != nil {
		t.Fatal(err)
	}
	if err := d.SelectFloor(0, -1); err != nil {
		t.Fatal(err)
	}

	d.Step()
	stepUntilStopped(t, d, 0, 20)
	if got := d.Status()[0].Floor; got != 0 {
		t.Fatalf("stopped at %d, want 0", got)
	}

	d.Step()
	stepUntilStopped(t, d, 0, 20)
	if got := d.Status()[0].Floor; got != -1 {
		t.Fatalf("stopped at %d, want -1", got)
	}

	d.Step()
	stepUntilStopped(t, d, 0, 20)
	if got := d.Status()[0].Floor; got != 3 {
		t.Fatalf("stopped at %d, want 3", got)
	}
}

// S3: opportunistic matching-direction absorption while passing through.
func TestScenarioOpportunisticMatchingDirection(t *testing.T) {
	d := New(1)
	if err := d.Pickup(6, cabin.Up); err != nil {
		t.Fatal(err)
	}
	d.Step()
	if err := d.Pickup(2, cabin.Up); err != nil {
		t.Fatal(err)
	}
	if err := d.Pickup(3, cabin.Down); err != nil {
		t.Fatal(err)
	}
	if err := d.Pickup(4, cabin.Up); err != nil {
		t.Fatal(err)
	}

	stepUntilStopped(t, d, 0, 20)
	if got := d.Status()[0]; got.Floor != 2 {
		t.Fatalf("first stop at %d, want 2 (matching-direction absorb)", got.Floor)
	}

	d.Step()
	stepUntilStopped(t, d, 0, 20)
	if got := d.Status()[0].Floor; got != 4 {
		t.Fatalf("second stop at %d, want 4 (passed 3 without stopping)", got)
	}
}

// S4: terminal-floor relaxation.
func TestScenarioTerminalFloorRelaxation(t *testing.T) {
	d := New(1)
	if err := d.SetFloorLimits(&cabin.FloorLimits{Bottom: -1, Top: 10}); err != nil {
		t.Fatal(err)
	}
	if err := d.Pickup(10, cabin.Down); err != nil {
		t.Fatal(err)
	}
	d.Step()
	if err := d.Pickup(5, cabin.Up); err != nil {
		t.Fatal(err)
	}

	absorbed := false
	for i := 0; i < 20 && d.Status()[0].Floor < 10; i++ {
		d.Step()
		if d.Status()[0].Floor == 5 && d.Status()[0].Status == cabin.Stopped {
			absorbed = true
			break
		}
	}
	if !absorbed {
		t.Fatalf("cabin never stopped at floor 5 en route to the top-floor pickup")
	}
}

// S5: sole-mode absorbs regardless of direction.
func TestScenarioSoleModeAbsorbsAll(t *testing.T) {
	d := New(1)
	d.SetSoleElevatorMode(true)
	if err := d.Pickup(1, cabin.Up); err != nil {
		t.Fatal(err)
	}
	d.Step()
	if err := d.Pickup(2, cabin.Down); err != nil {
		t.Fatal(err)
	}
	if err := d.Pickup(2, cabin.Up); err != nil {
		t.Fatal(err)
	}
	if err := d.Pickup(4, cabin.Up); err != nil {
		t.Fatal(err)
	}

	// The cabin must first service its assigned pickup at floor 1 before the
	// pool pickups at floor 2 come into reach.
	stepUntilStopped(t, d, 0, 20)
	if got := d.Status()[0].Floor; got != 1 {
		t.Fatalf("first stop at %d, want 1 (assigned pickup)", got)
	}

	d.Step()
	stepUntilStopped(t, d, 0, 20)
	if got := d.Status()[0].Floor; got != 2 {
		t.Fatalf("stopped at %d, want 2", got)
	}
	// The cabin arrived heading Down (its assigned 2/Down pickup); only sole
	// mode lets it also absorb the opposite-direction 2/Up pool pickup.
	for _, tk := range d.Tasks() {
		if tk.Floor == 2 {
			t.Fatalf("tasks = %v, want both floor-2 pickups cleared", d.Tasks())
		}
	}
}

// S6: closest-idle cabin wins the assignment.
func TestScenarioClosestIdleWins(t *testing.T) {
	d := New(2)
	if err := d.SetElevator(0, 0); err != nil {
		t.Fatal(err)
	}
	if err := d.SetElevator(1, 4); err != nil {
		t.Fatal(err)
	}
	if err := d.Pickup(3, cabin.Up); err != nil {
		t.Fatal(err)
	}
	d.Step()

	statuses := d.Status()
	if statuses[1].Status != cabin.Moving {
		t.Fatalf("cabin 1 (closer) status = %v, want Moving", statuses[1].Status)
	}
	if statuses[0].Status != cabin.Idle {
		t.Fatalf("cabin 0 (farther) status = %v, want Idle", statuses[0].Status)
	}
}
