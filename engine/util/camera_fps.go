package util

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

type FPSCamera struct {
	position     mgl32.Vec3
	cameraFront  mgl32.Vec3
	cameraRight  mgl32.Vec3
	cameraUp     mgl32.Vec3
	walkFront    mgl32.Vec3
	rotatex      float32
	rotatey      float32
	sensitivity  float32
	invertedY    bool
	fovY         float32
	windowWidth  int
	windowHeight int
	nearPlane    float32
	farPlane     float32
}

func NewFPSCamera(pos mgl32.Vec3, windowWidth, windowHeight int, sensitivity float32) *FPSCamera {
	f := &FPSCamera{
		position:     pos,
		cameraFront:  mgl32.Vec3{0, 0, -1},
		cameraUp:     mgl32.Vec3{0, 1, 0},
		sensitivity:  sensitivity,
		rotatey:      0,
		rotatex:      -90,
		invertedY:    true,
		fovY:         60,
		windowWidth:  windowWidth,
		windowHeight: windowHeight,
		nearPlane:    0.05,
		farPlane:     256,
	}
	f.updateVectors()
	return f
}

func (c *FPSCamera) GetPosition() mgl32.Vec3 {
	return c.position
}

func (c *FPSCamera) SetPosition(pos mgl32.Vec3) {
	c.position = pos
}

func (c *FPSCamera) GetFront() mgl32.Vec3 {
	return c.cameraFront
}

func (c *FPSCamera) GetUp() mgl32.Vec3 {
	return c.cameraUp
}

func (c *FPSCamera) SetFieldOfView(fovY float32) {
	c.fovY = fovY
}

func (c *FPSCamera) SetInvertedY(inverted bool) {
	c.invertedY = inverted
}

func (c *FPSCamera) GetViewMatrix() mgl32.Mat4 {
	return mgl32.LookAtV(c.position, c.position.Add(c.cameraFront), c.cameraUp)
}

func (c *FPSCamera) GetProjectionMatrix() mgl32.Mat4 {
	aspect := float32(c.windowWidth) / float32(c.windowHeight)
	return mgl32.Perspective(mgl32.DegToRad(c.fovY), aspect, c.nearPlane, c.farPlane)
}

func (c *FPSCamera) GetProjectionViewMatrix() mgl32.Mat4 {
	return c.GetProjectionMatrix().Mul4(c.GetViewMatrix())
}

// ChangeAngles changes the camera's angles by dx and dy.
// Used for mouse look.
func (c *FPSCamera) ChangeAngles(dx, dy float32) {
	if mgl32.Abs(dx) > 200 || mgl32.Abs(dy) > 200 {
		return
	}
	c.rotatex += dx * c.sensitivity
	yChange := dy * c.sensitivity
	if c.invertedY {
		c.rotatey -= yChange
	} else {
		c.rotatey += yChange
	}
	c.updateVectors()
}

// MoveInDirection walks on the horizontal plane. dir[0] is strafe (+1 right), dir[1] is
// forward (+1) or backward (-1).
func (c *FPSCamera) MoveInDirection(delta float32, dir [2]int) {
	moveVector := mgl32.Vec3{0, 0, 0}
	if dir[0] != 0 {
		moveVector = moveVector.Add(c.cameraRight.Mul(float32(dir[0]) * delta))
	}
	if dir[1] != 0 {
		moveVector = moveVector.Add(c.walkFront.Mul(float32(dir[1]) * delta))
	}
	c.position = c.position.Add(moveVector)
}

func (c *FPSCamera) MoveUp(delta float32) {
	c.position = c.position.Add(mgl32.Vec3{0, delta, 0})
}

// SetLookTarget turns the camera towards position.
func (c *FPSCamera) SetLookTarget(position mgl32.Vec3) {
	front := position.Sub(c.position).Normalize()
	c.rotatex = mgl32.RadToDeg(float32(math.Atan2(float64(front.Z()), float64(front.X()))))
	c.rotatey = mgl32.RadToDeg(float32(math.Asin(float64(front.Y()))))
	c.updateVectors()
}

func (c *FPSCamera) updateVectors() {
	c.rotatey = mgl32.Clamp(c.rotatey, -89, 89)
	yaw := float64(mgl32.DegToRad(c.rotatex))
	pitch := float64(mgl32.DegToRad(c.rotatey))
	c.cameraFront = mgl32.Vec3{
		float32(math.Cos(yaw) * math.Cos(pitch)),
		float32(math.Sin(pitch)),
		float32(math.Sin(yaw) * math.Cos(pitch)),
	}.Normalize()
	worldUp := mgl32.Vec3{0, 1, 0}
	c.cameraRight = c.cameraFront.Cross(worldUp).Normalize()
	c.cameraUp = c.cameraRight.Cross(c.cameraFront).Normalize()
	c.walkFront = worldUp.Cross(c.cameraRight).Normalize()
}
