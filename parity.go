package touchfield

// objectRadius is the host engine's base hit-target radius in its own
// coordinate units.
const objectRadius = 64.0

// roundingAllowance is a historical fudge factor both radius formulas
// carry; it cancels in the ratio but is kept so intermediate values
// match the clients' own numbers.
const roundingAllowance = 1.00041

const (
	minParityMultiplier = 0.5
	maxParityMultiplier = 3.0
)

// machineEpsilon is the double-precision machine epsilon.
const machineEpsilon = 2.220446049250313e-16

// RadiusMultiplier computes the one-time scale multiplier that makes
// the host's difficulty-derived hit-target radius match the reference
// client's radius for the same circle-size value (typical domain
// 0–10). The result is clamped to [0.5, 3.0] so extreme inputs cannot
// produce an absurd rescale.
//
// ok is false when the host radius degenerates to zero or below, in
// which case no rescale should be applied. In-domain circle sizes
// never trigger this; the guard exists for out-of-spec input.
func RadiusMultiplier(circleSize float64) (m float64, ok bool) {
	reference := (54.4 - 4.48*circleSize) * roundingAllowance
	host := objectRadius * ((1.0 - 0.7*(circleSize-5.0)/5.0) / 2.0) * roundingAllowance
	if host <= machineEpsilon {
		return 1, false
	}
	return clamp(reference/host, minParityMultiplier, maxParityMultiplier), true
}

// ApplyRadiusParity multiplies the target's current scale by the
// radius parity multiplier for circleSize. The multiplier composes
// with whatever scale is already present rather than replacing it.
// Reports whether a rescale was applied; a nil target or degenerate
// radius leaves everything untouched.
func ApplyRadiusParity(target TransformTarget, circleSize float64) bool {
	if target == nil {
		return false
	}
	m, ok := RadiusMultiplier(circleSize)
	if !ok {
		return false
	}
	target.SetScale(target.Scale() * m)
	return true
}
