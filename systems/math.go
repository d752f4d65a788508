package systems

import "math"

// normalizeAngle wraps an angle to [-Pi, Pi].
func normalizeAngle(angle float64) float64 {
	for angle > math.Pi {
		angle -= 2 * math.Pi
	}
	for angle < -math.Pi {
		angle += 2 * math.Pi
	}
	return angle
}

// TurnToward rotates heading toward target by at most maxStep radians.
func TurnToward(heading, target, maxStep float64) float64 {
	diff := clampFloat(normalizeAngle(target-heading), -maxStep, maxStep)
	return normalizeAngle(heading + diff)
}

func clampFloat(v, minVal, maxVal float64) float64 {
	if v < minVal {
		return minVal
	}
	if v > maxVal {
		return maxVal
	}
	return v
}
