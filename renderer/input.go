package renderer

import (
	rl "github.com/gen2brain/raylib-go/raylib"
	"gonum.org/v1/gonum/spatial/r2"

	"github.com/pthm-cable/kotlot/camera"
	"github.com/pthm-cable/kotlot/game"
)

// keyBindings maps held keys to actions.
var keyBindings = []struct {
	key    int32
	action game.Action
}{
	{rl.KeyW, game.ActionForward},
	{rl.KeyS, game.ActionBackward},
	{rl.KeyA, game.ActionRCSLeft},
	{rl.KeyD, game.ActionRCSRight},
	{rl.KeySpace, game.ActionShoot1},
}

// ReadInput samples the keyboard and mouse for one tick. The cursor is
// mapped into arena coordinates through cam.
func ReadInput(cam *camera.Camera) game.Input {
	var in game.Input

	for _, b := range keyBindings {
		if rl.IsKeyDown(b.key) {
			in.Actions = in.Actions.With(b.action)
		}
	}
	if rl.IsMouseButtonDown(rl.MouseButtonLeft) {
		in.Actions = in.Actions.With(game.ActionShoot1)
	}
	if rl.IsKeyPressed(rl.KeyF4) {
		in.Actions = in.Actions.With(game.ActionQuit)
	}

	mouse := rl.GetMousePosition()
	x, y := cam.ScreenToArena(mouse.X, mouse.Y)
	in.Cursor = r2.Vec{X: x, Y: y}
	in.HasCursor = true

	return in
}
