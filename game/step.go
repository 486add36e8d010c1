package game

import "math"

// Step advances a displayed position one frame toward a target at the
// given speed. It is pure: no registry, no rendering, just coordinates.
// Returns the new position and whether the mover has arrived. Within
// ArriveThreshold (or one stride) of the target it snaps rather than
// overshoots, so repeated calls at rest are no-ops.
func Step(x, y, targetX, targetY, speed float64) (float64, float64, bool) {
	dx := targetX - x
	dy := targetY - y
	dist := math.Hypot(dx, dy)
	if dist < ArriveThreshold || dist <= speed {
		return targetX, targetY, true
	}
	return x + dx/dist*speed, y + dy/dist*speed, false
}

// SpeedForBalance derives per-frame speed from a self-reported balance.
// Monotonically decreasing, clamped at MinSpeedFraction of BaseSpeed.
func SpeedForBalance(balance float64) float64 {
	scale := 1 - balance/BalanceSlowdownUnit*BalanceSlowdown
	if scale < MinSpeedFraction {
		scale = MinSpeedFraction
	}
	return BaseSpeed * scale
}
