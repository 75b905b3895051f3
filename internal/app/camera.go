package app

import (
	"math"

	rl "github.com/gen2brain/raylib-go/raylib"
)

const (
	defaultAngleX = 0.6
	defaultAngleY = 0.6
	maxAngleX     = 1.5
)

// setupCamera places the orbit camera above the grid
func (app *App) setupCamera(extent float32) {
	app.Camera.distance = extent
	app.Camera.angleX = defaultAngleX
	app.Camera.angleY = defaultAngleY
	app.Camera.defaultDist = extent
	app.Camera.defaultAngleX = defaultAngleX
	app.Camera.defaultAngleY = defaultAngleY

	app.Camera.camera = rl.Camera3D{
		Position:   rl.Vector3{X: 0, Y: extent, Z: extent},
		Target:     app.Camera.target,
		Up:         rl.Vector3{X: 0, Y: 1, Z: 0},
		Fovy:       45.0,
		Projection: rl.CameraPerspective,
	}
	app.updateCamera()
}

// resetCameraView resets the camera to the default view
func (app *App) resetCameraView() {
	app.Camera.distance = app.Camera.defaultDist
	app.Camera.angleX = app.Camera.defaultAngleX
	app.Camera.angleY = app.Camera.defaultAngleY
	app.Camera.target = rl.Vector3{}
}

// setCameraTopView looks straight down on the sketch plane
func (app *App) setCameraTopView() {
	app.Camera.angleX = maxAngleX
	app.Camera.angleY = 0
}

// rotateCamera orbits around the target, clamping the elevation
func (app *App) rotateCamera(delta rl.Vector2) {
	app.Camera.angleY -= delta.X * 0.01
	app.Camera.angleX += delta.Y * 0.01
	if app.Camera.angleX > maxAngleX {
		app.Camera.angleX = maxAngleX
	}
	if app.Camera.angleX < 0.05 {
		app.Camera.angleX = 0.05
	}
}

// zoomCamera scales the orbit distance
func (app *App) zoomCamera(wheel float32) {
	app.Camera.distance *= 1 - wheel*0.1
	if app.Camera.distance < 1 {
		app.Camera.distance = 1
	}
}

// updateCamera updates camera position based on angles
func (app *App) updateCamera() {
	x := app.Camera.distance * float32(math.Cos(float64(app.Camera.angleX))) * float32(math.Sin(float64(app.Camera.angleY)))
	y := app.Camera.distance * float32(math.Sin(float64(app.Camera.angleX)))
	z := app.Camera.distance * float32(math.Cos(float64(app.Camera.angleX))) * float32(math.Cos(float64(app.Camera.angleY)))

	app.Camera.camera.Position = rl.Vector3{
		X: app.Camera.target.X + x,
		Y: app.Camera.target.Y + y,
		Z: app.Camera.target.Z + z,
	}
	app.Camera.camera.Target = app.Camera.target
}

// doPan moves the camera target in the view plane
func (app *App) doPan(delta rl.Vector2) {
	forward := rl.Vector3Normalize(rl.Vector3Subtract(app.Camera.target, app.Camera.camera.Position))
	right := rl.Vector3Normalize(rl.Vector3CrossProduct(forward, app.Camera.camera.Up))
	up := rl.Vector3Normalize(rl.Vector3CrossProduct(right, forward))

	// Pan speed based on distance from target
	panSpeed := app.Camera.distance * 0.001

	rightMove := rl.Vector3Scale(right, -delta.X*panSpeed)
	upMove := rl.Vector3Scale(up, delta.Y*panSpeed)

	app.Camera.target = rl.Vector3Add(app.Camera.target, rightMove)
	app.Camera.target = rl.Vector3Add(app.Camera.target, upMove)
}
