package chain

import (
	"gonum.org/v1/gonum/mat"

	"github.com/sugihara-lab/roki/spatial"
)

// InertiaMatBiasVec computes the joint-space inertia matrix H and bias
// vector h at displacement q and velocity dq, such that the chain's
// inverse dynamics satisfies tau = H*ddq + h, via the unit-vector method:
// h is read directly from one ID call at ddq=0 (gravity+Coriolis only,
// with no acceleration contribution), and each column of H is the ID
// torque produced by ddq = unit vector e_i with dq=0 and gravity
// temporarily zeroed, since with zero velocity and zero gravity the
// Newton-Euler torque is purely H's i-th column.
func (c *Chain) InertiaMatBiasVec(q, dq []float64) (*mat.Dense, []float64, error) {
	n := c.totalDOF
	if n == 0 {
		// gonum refuses zero-dimension matrices; a chain with no DOF has no
		// joint space for H to describe.
		return nil, nil, ErrSizeMismatch
	}
	H := mat.NewDense(n, n, nil)
	h := make([]float64, n)
	if err := c.InertiaMatBiasVecInto(H, h, q, dq); err != nil {
		return nil, nil, err
	}
	return H, h, nil
}

// InertiaMatBiasVecInto is InertiaMatBiasVec writing into caller-allocated
// storage: H must be square n x n and h of length n, where n is the
// chain's total DOF; a mismatch is reported as a sizing error before any
// chain state is mutated.
func (c *Chain) InertiaMatBiasVecInto(H *mat.Dense, h []float64, q, dq []float64) error {
	n := c.totalDOF
	if len(q) != n || len(dq) != n || len(h) != n {
		return ErrSizeMismatch
	}
	if r, cols := H.Dims(); r != n || cols != n {
		return ErrSizeMismatch
	}

	bias, err := c.ID(q, dq, make([]float64, n), spatial.ZeroSpatial6D, spatial.ZeroSpatial6D)
	if err != nil {
		return err
	}
	copy(h, bias)

	savedGravity := c.Gravity
	c.Gravity = spatial.ZeroVec3
	defer func() { c.Gravity = savedGravity }()

	zeroDq := make([]float64, n)
	ddq := make([]float64, n)
	for i := 0; i < n; i++ {
		for k := range ddq {
			ddq[k] = 0
		}
		ddq[i] = 1
		col, err := c.ID(q, zeroDq, ddq, spatial.ZeroSpatial6D, spatial.ZeroSpatial6D)
		if err != nil {
			return err
		}
		for r := 0; r < n; r++ {
			H.Set(r, i, col[r])
		}
	}
	return nil
}
