package motor

import (
	"context"
	"testing"

	"go.viam.com/test"
)

func TestSimulatedGoToTracksPosition(t *testing.T) {
	ctx := context.Background()
	m := NewSimulated("j1")
	test.That(t, m.Name(), test.ShouldEqual, "j1")

	err := m.GoTo(ctx, 1.0, 0.5, nil)
	test.That(t, err, test.ShouldBeNil)

	pos, err := m.Position(ctx, nil)
	test.That(t, err, test.ShouldBeNil)
	test.That(t, pos, test.ShouldAlmostEqual, 0.5, 1e-12)

	moving, err := m.IsMoving(ctx)
	test.That(t, err, test.ShouldBeNil)
	test.That(t, moving, test.ShouldBeFalse)
}

func TestSimulatedSetPowerReportsState(t *testing.T) {
	ctx := context.Background()
	m := NewSimulated("j2")

	err := m.SetPower(ctx, 0.75, nil)
	test.That(t, err, test.ShouldBeNil)

	powered, power, err := m.IsPowered(ctx, nil)
	test.That(t, err, test.ShouldBeNil)
	test.That(t, powered, test.ShouldBeTrue)
	test.That(t, power, test.ShouldAlmostEqual, 0.75, 1e-12)

	err = m.Stop(ctx, nil)
	test.That(t, err, test.ShouldBeNil)
	powered, _, _ = m.IsPowered(ctx, nil)
	test.That(t, powered, test.ShouldBeFalse)
}
