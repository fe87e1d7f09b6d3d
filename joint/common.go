package joint

import (
	"math"

	"github.com/sugihara-lab/roki/spatial"
)

// copyN copies n entries from src into dst, both assumed long enough.
func copyN(dst, src []float64, n int) {
	copy(dst[:n], src[:n])
}

// zeroN zeros the first n entries of v.
func zeroN(v []float64, n int) {
	for i := 0; i < n; i++ {
		v[i] = 0
	}
}

// flatCat implements the "flat" (non-manifold) cat_dis used by every kind
// whose q components add linearly: qOut[i] += k*dq[i].
func flatCat(qOut []float64, k float64, dq []float64, n int) {
	for i := 0; i < n; i++ {
		qOut[i] += k * dq[i]
	}
}

// flatSub implements the "flat" sub_dis: out[i] = qA[i] - qB[i].
func flatSub(qA, qB, out []float64, n int) {
	for i := 0; i < n; i++ {
		out[i] = qA[i] - qB[i]
	}
}

// isNeutralN reports whether the first n entries of v are all within tol of
// zero.
func isNeutralN(v []float64, n int, tol float64) bool {
	for i := 0; i < n; i++ {
		a := v[i]
		if a < 0 {
			a = -a
		}
		if a > tol {
			return false
		}
	}
	return true
}

// nearestRotVec returns the rotation-vector representative of v closest to
// prev. Rotation vectors cover SO(3) redundantly: v and v +- 2*pi along its
// own axis name the same attitude, and the identity is also any 2*pi turn.
// Continuous-displacement setting picks the representative nearest the
// previous value so finite differencing across the double cover stays
// smooth.
func nearestRotVec(v, prev spatial.Vec3) spatial.Vec3 {
	theta := v.Norm()
	var candidates []spatial.Vec3
	if spatial.IsTiny(theta) {
		candidates = append(candidates, v)
		if pn := prev.Norm(); !spatial.IsTiny(pn) {
			candidates = append(candidates, prev.Mul(2*math.Pi/pn))
		}
	} else {
		u := v.Mul(1 / theta)
		candidates = []spatial.Vec3{
			u.Mul(theta - 2*math.Pi),
			v,
			u.Mul(theta + 2*math.Pi),
		}
	}
	best := candidates[0]
	bestD := best.Sub(prev).Norm2()
	for _, c := range candidates[1:] {
		if d := c.Sub(prev).Norm2(); d < bestD {
			bestD = d
			best = c
		}
	}
	return best
}

// wrapToPi reduces an angle into (-pi, pi].
func wrapToPi(a float64) float64 {
	a = math.Mod(a, 2*math.Pi)
	if a > math.Pi {
		a -= 2 * math.Pi
	} else if a <= -math.Pi {
		a += 2 * math.Pi
	}
	return a
}
