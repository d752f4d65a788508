package systems

import "github.com/pthm-cable/kotlot/components"

// Interaction is the gameplay meaning of a contact between two collider types.
type Interaction uint8

const (
	InteractNone Interaction = iota
	InteractMissileEnemy
	InteractShipLoot
	InteractCursorEnemy
	InteractCursorLoot
)

func (i Interaction) String() string {
	switch i {
	case InteractMissileEnemy:
		return "missile_enemy"
	case InteractShipLoot:
		return "ship_loot"
	case InteractCursorEnemy:
		return "cursor_enemy"
	case InteractCursorLoot:
		return "cursor_loot"
	}
	return "none"
}

// Classify returns the interaction between colliders of type a and b.
// When swap is true the roles are reversed: b is the missile, ship or
// cursor and a the target. Pairs with no gameplay meaning return InteractNone.
func Classify(a, b components.ColliderType) (kind Interaction, swap bool) {
	if k := classify(a, b); k != InteractNone {
		return k, false
	}
	if k := classify(b, a); k != InteractNone {
		return k, true
	}
	return InteractNone, false
}

func classify(actor, target components.ColliderType) Interaction {
	switch {
	case actor == components.ColliderMissile && target == components.ColliderEnemy:
		return InteractMissileEnemy
	case actor == components.ColliderShip && target == components.ColliderLoot:
		return InteractShipLoot
	case actor == components.ColliderCursor && target == components.ColliderEnemy:
		return InteractCursorEnemy
	case actor == components.ColliderCursor && target == components.ColliderLoot:
		return InteractCursorLoot
	}
	return InteractNone
}
