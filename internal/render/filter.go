package render

import "golang.org/x/image/draw"

// InterpolationMethod selects the resampling quality used when a frame or
// icon is drawn at a size other than its own.
type InterpolationMethod int

const (
	InterpolationFast InterpolationMethod = iota
	InterpolationGood
	InterpolationBest
)

// Interpolator returns the resampling kernel for the method. Unknown values
// fall back to the fast kernel.
func (m InterpolationMethod) Interpolator() draw.Interpolator {
	switch m {
	case InterpolationGood:
		return draw.ApproxBiLinear
	case InterpolationBest:
		return draw.CatmullRom
	default:
		return draw.NearestNeighbor
	}
}
