package neuromotor

import "context"

// Driver is the pointer-actuation backend this package drives (spec.md §6).
// Implementations dispatch actual input events — over CDP, a platform
// accessibility API, a virtual HID, or a test double — and must not block
// beyond what ctx allows; Session treats a Driver call that outlives its
// watchdog window as KindDriverStalled.
type Driver interface {
	// MoveTo dispatches a pointer-move event to pos. Called once per sample
	// of the composed trajectory.
	MoveTo(ctx context.Context, pos Point) error

	// ButtonDown presses the given button (0=left, 1=middle, 2=right) at the
	// driver's current position.
	ButtonDown(ctx context.Context, button int) error

	// ButtonUp releases the given button. Session guarantees this is called
	// exactly once for every successful ButtonDown, including on
	// cancellation mid-click (spec.md §5).
	ButtonUp(ctx context.Context, button int) error

	// Scroll dispatches a wheel/scroll delta at the driver's current
	// position.
	Scroll(ctx context.Context, dx, dy float64) error
}
