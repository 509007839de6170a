package image

import (
	"fmt"
	"image"
	"strings"

	xdraw "golang.org/x/image/draw"
)

type Filter uint8

const (
	FilterNearest Filter = iota
	FilterApproxBiLinear
	FilterBiLinear
	FilterCatmullRom
)

var filters = [...]struct {
	name   string
	scaler xdraw.Scaler
}{
	FilterNearest:        {"nearest", xdraw.NearestNeighbor},
	FilterApproxBiLinear: {"approx-bilinear", xdraw.ApproxBiLinear},
	FilterBiLinear:       {"bilinear", xdraw.BiLinear},
	FilterCatmullRom:     {"catmullrom", xdraw.CatmullRom},
}

func (f Filter) String() string {
	if int(f) < len(filters) {
		return filters[f].name
	}
	return fmt.Sprintf("Filter(%d)", uint8(f))
}

func ParseFilter(s string) (Filter, error) {
	if s == "" {
		return FilterNearest, nil
	}
	for f, entry := range filters {
		if strings.EqualFold(entry.name, s) {
			return Filter(f), nil
		}
	}
	return 0, fmt.Errorf("unknown filter %q", s)
}

// Upscale resamples src by whole factors on each axis.
func Upscale(src image.Image, fx, fy int, f Filter) (*image.RGBA, error) {
	if fx < 1 || fy < 1 {
		return nil, fmt.Errorf("upscale: invalid factor %dx%d", fx, fy)
	}
	if int(f) >= len(filters) {
		return nil, fmt.Errorf("upscale: %v", f)
	}
	b := src.Bounds()
	dst := image.NewRGBA(image.Rect(0, 0, b.Dx()*fx, b.Dy()*fy))
	filters[f].scaler.Scale(dst, dst.Bounds(), src, b, xdraw.Src, nil)
	return dst, nil
}
