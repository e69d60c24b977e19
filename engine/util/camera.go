package util

import (
	"github.com/go-gl/mathgl/mgl32"
)

type Camera interface {
	GetViewMatrix() mgl32.Mat4
	GetProjectionMatrix() mgl32.Mat4
	GetFront() mgl32.Vec3
	GetPosition() mgl32.Vec3
}

// GetCenterRay returns the segment of the given length starting at the camera position and
// pointing along the view direction, the ray under a centered crosshair.
func GetCenterRay(cam Camera, length float32) (mgl32.Vec3, mgl32.Vec3) {
	rayStart := cam.GetPosition()
	rayEnd := rayStart.Add(cam.GetFront().Normalize().Mul(length))
	return rayStart, rayEnd
}
