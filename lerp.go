package motion

import (
	"math"

	"github.com/lucasb-eyer/go-colorful"
)

// Interp is a pure interpolation function for a value type T. It must be
// unclamped: t may fall outside [0, 1] for overshooting easing curves
// (ease.OutBack and friends), and the interpolator is expected to
// extrapolate rather than clamp.
type Interp[T any] func(a, b T, t float64) T

// LerpFloat64 linearly interpolates between a and b by t.
func LerpFloat64(a, b float64, t float64) float64 {
	return a + (b-a)*t
}

// LerpInt linearly interpolates between a and b by t, rounding to nearest.
func LerpInt(a, b int, t float64) int {
	return a + int(math.Round(float64(b-a)*t))
}

// LerpVec2 linearly interpolates each component.
func LerpVec2(a, b Vec2, t float64) Vec2 {
	return Vec2{
		X: a.X + (b.X-a.X)*t,
		Y: a.Y + (b.Y-a.Y)*t,
	}
}

// LerpVec3 linearly interpolates each component.
func LerpVec3(a, b Vec3, t float64) Vec3 {
	return Vec3{
		X: a.X + (b.X-a.X)*t,
		Y: a.Y + (b.Y-a.Y)*t,
		Z: a.Z + (b.Z-a.Z)*t,
	}
}

// LerpColor linearly interpolates each RGBA component. Components are not
// clamped, so overshooting curves can briefly push them outside [0, 1];
// renderers that require clamped colors should clamp at submission time.
func LerpColor(a, b Color, t float64) Color {
	return Color{
		R: a.R + (b.R-a.R)*t,
		G: a.G + (b.G-a.G)*t,
		B: a.B + (b.B-a.B)*t,
		A: a.A + (b.A-a.A)*t,
	}
}

// LerpAngle interpolates between two angles along the shortest arc.
// Interpolating 350° → 10° passes through 0°, not 180°.
func LerpAngle(a, b Angle, t float64) Angle {
	d := math.Mod(float64(b-a), 2*math.Pi)
	if d > math.Pi {
		d -= 2 * math.Pi
	} else if d < -math.Pi {
		d += 2 * math.Pi
	}
	return a + Angle(d*t)
}

// LerpColorHCL interpolates colors in HCL space for perceptually even fades
// (a red→green blend stays saturated instead of passing through gray).
// Register it in place of LerpColor when hue-correct blending matters:
//
//	motion.RegisterPool[motion.Color](rt, motion.LerpColorHCL, 0, 64)
//
// HCL blending is only defined on [0, 1], so t is clamped; pair it with
// non-overshooting easing curves. Alpha interpolates linearly.
func LerpColorHCL(a, b Color, t float64) Color {
	ct := t
	if ct < 0 {
		ct = 0
	} else if ct > 1 {
		ct = 1
	}
	blended := a.colorful().BlendHcl(b.colorful(), ct).Clamped()
	return Color{
		R: blended.R,
		G: blended.G,
		B: blended.B,
		A: a.A + (b.A-a.A)*ct,
	}
}

// colorful converts the RGB part of c for use with go-colorful.
func (c Color) colorful() colorful.Color {
	return colorful.Color{R: c.R, G: c.G, B: c.B}
}
