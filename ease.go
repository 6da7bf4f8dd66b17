package motion

import (
	"github.com/tanema/gween/ease"
)

// EaseFunc maps linear progress in [0, 1] to eased progress. The result may
// leave [0, 1] (overshoot curves); interpolators extrapolate accordingly.
//
// The signature matches github.com/fogleman/ease, so its curves can be
// passed directly:
//
//	tween.SetEase(ease.OutElastic)
type EaseFunc func(t float64) float64

// Linear is the identity easing curve and the default for new tweens.
func Linear(t float64) float64 {
	return t
}

// GweenEase adapts a gween ease.TweenFunc to an EaseFunc, so the easing
// vocabulary from github.com/tanema/gween carries over unchanged:
//
//	tween.SetEase(motion.GweenEase(ease.OutBounce))
func GweenEase(fn ease.TweenFunc) EaseFunc {
	return func(t float64) float64 {
		return float64(fn(float32(t), 0, 1, 1))
	}
}
