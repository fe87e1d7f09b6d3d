// Package motor defines the actuator contract a Joint can drive through:
// context-scoped calls, an "extra" side-channel for driver-specific
// options, and power/position readback split from commanded motion.
package motor

import (
	"context"

	"github.com/pkg/errors"
)

// Motor is the minimal actuator surface roki needs: command a power or
// position setpoint, read back state, stop. It satisfies joint.MotorDriver
// via Name.
type Motor interface {
	Name() string

	// SetPower commands an open-loop drive in [-1, 1] of full scale.
	SetPower(ctx context.Context, power float64, extra map[string]interface{}) error

	// GoTo commands a closed-loop move to a target generalized position at
	// a given generalized velocity.
	GoTo(ctx context.Context, velocity, position float64, extra map[string]interface{}) error

	// Stop commands an immediate halt.
	Stop(ctx context.Context, extra map[string]interface{}) error

	// Position reports the current generalized position.
	Position(ctx context.Context, extra map[string]interface{}) (float64, error)

	// IsPowered reports whether the motor is currently driven and at what
	// power fraction.
	IsPowered(ctx context.Context, extra map[string]interface{}) (bool, float64, error)

	// IsMoving reports whether the motor is presently in motion.
	IsMoving(ctx context.Context) (bool, error)
}

// ErrNotImplemented is returned by Simulated for commands a pure-kinematic
// stand-in can't honor meaningfully.
var ErrNotImplemented = errors.New("motor: not implemented by a simulated actuator")

// Simulated is a Motor that tracks a position/power setpoint in memory,
// with no physical backing. config.ToChain binds one to each joint whose
// link declares a motor; joints without a declared motor keep a nil Motor.
type Simulated struct {
	name     string
	position float64
	power    float64
	moving   bool
}

// NewSimulated builds a Simulated motor at the zero position.
func NewSimulated(name string) *Simulated {
	return &Simulated{name: name}
}

func (m *Simulated) Name() string { return m.name }

func (m *Simulated) SetPower(_ context.Context, power float64, _ map[string]interface{}) error {
	m.power = power
	m.moving = power != 0
	return nil
}

func (m *Simulated) GoTo(_ context.Context, _ float64, position float64, _ map[string]interface{}) error {
	m.position = position
	m.moving = false
	return nil
}

func (m *Simulated) Stop(_ context.Context, _ map[string]interface{}) error {
	m.power = 0
	m.moving = false
	return nil
}

func (m *Simulated) Position(_ context.Context, _ map[string]interface{}) (float64, error) {
	return m.position, nil
}

func (m *Simulated) IsPowered(_ context.Context, _ map[string]interface{}) (bool, float64, error) {
	return m.power != 0, m.power, nil
}

func (m *Simulated) IsMoving(_ context.Context) (bool, error) {
	return m.moving, nil
}
