package components

// Spaceship holds a ship's handling limits.
type Spaceship struct {
	MaxAngVel float64 // radians per second
	MaxLinVel float64 // forward thrust, units per second
	MaxLatVel float64 // lateral (RCS) thrust, units per second
}

// Enemy marks a hostile entity and the experience it grants when destroyed.
type Enemy struct {
	XP uint32
}

// UserControlled marks the entity driven by input actions.
type UserControlled struct{}

// CameraTarget marks the entity the camera follows. Its position drives the
// arena's shown quadrant.
type CameraTarget struct{}

// Cursor marks the pointer entity.
type Cursor struct{}
