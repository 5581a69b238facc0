// Package reference is a self-contained quality provider built from plain
// raster statistics. It exists so the harness can run end-to-end without a
// vendor library and so tests have a real implementation to drive. Its
// scores have no biometric merit.
package reference

import (
	"context"
	"math"
	"os"

	"github.com/vk/qualbench/internal/provider"
	"github.com/vk/qualbench/internal/quality"
)

// Name is the registry name of this provider.
const Name = "reference"

// minSide is the smallest image dimension the provider accepts.
const minSide = 32

// Module implements the provider.Module interface for this package.
type Module struct{}

// Register registers the provider with the application registry.
func (m *Module) Register(r *provider.Registry) {
	r.Register(Name, &impl{})
}

type impl struct{}

func (i *impl) Version() provider.Version {
	return provider.Version{
		StructsMajor: provider.ExpectedStructsMajor,
		StructsMinor: provider.ExpectedStructsMinor,
		APIMajor:     provider.ExpectedAPIMajor,
		APIMinor:     provider.ExpectedAPIMinor,
	}
}

func (i *impl) Initialize(ctx context.Context, configDir string) quality.ReturnStatus {
	if info, err := os.Stat(configDir); err != nil || !info.IsDir() {
		return quality.ReturnStatus{Code: quality.ConfigError, Info: "config directory unavailable: " + configDir}
	}
	return quality.ReturnStatus{Code: quality.Success}
}

func (i *impl) VectorQuality(ctx context.Context, img *quality.Image) (quality.ReturnStatus, quality.Assessment) {
	a := quality.NewAssessment()

	if img.Width < minSide || img.Height < minSide {
		return quality.ReturnStatus{Code: quality.RefuseInput, Info: "image below minimum resolution"}, a
	}
	if len(img.Data) < img.Size() {
		return quality.ReturnStatus{Code: quality.ParseError, Info: "raster shorter than geometry implies"}, a
	}

	under, over := exposure(img)

	// A centered crop stands in for detection; the measures that would need
	// real landmarking stay absent and render as NA.
	a.BoundingBox = centeredBox(img)
	a.Scores[quality.TotalFacesPresent] = 1
	a.Scores[quality.Underexposure] = under
	a.Scores[quality.Overexposure] = over
	a.Scores[quality.Resolution] = float64(min(img.Width, img.Height))
	a.Scores[quality.InterocularDistance] = float64(img.Width) / 4
	a.Scores[quality.UnifiedQualityScore] = 100 * (1 - (under+over)/2)

	return quality.ReturnStatus{Code: quality.Success}, a
}

// exposure returns the fraction of pixels darker than 32 and brighter than
// 224 on the 8-bit luminance scale.
func exposure(img *quality.Image) (under, over float64) {
	var dark, bright, total int
	step := 1
	if img.Depth == 24 {
		step = 3
	}
	data := img.Data[:img.Size()]
	for i := 0; i+step <= len(data); i += step {
		var lum int
		if step == 3 {
			// Integer Rec.601 luma.
			lum = (299*int(data[i]) + 587*int(data[i+1]) + 114*int(data[i+2])) / 1000
		} else {
			lum = int(data[i])
		}
		if lum < 32 {
			dark++
		} else if lum > 224 {
			bright++
		}
		total++
	}
	if total == 0 {
		return 0, 0
	}
	return float64(dark) / float64(total), float64(bright) / float64(total)
}

// centeredBox covers the middle 60% of the frame. Geometry is computed in
// int because image dimensions go up to 65535 while the box fields are int16;
// anything wider than the field can carry is clamped.
func centeredBox(img *quality.Image) quality.BoundingBox {
	w := int(img.Width) * 6 / 10
	h := int(img.Height) * 6 / 10
	return quality.BoundingBox{
		XLeft:  clampInt16((int(img.Width) - w) / 2),
		YTop:   clampInt16((int(img.Height) - h) / 2),
		Width:  clampInt16(w),
		Height: clampInt16(h),
	}
}

func clampInt16(v int) int16 {
	if v > math.MaxInt16 {
		return math.MaxInt16
	}
	if v < math.MinInt16 {
		return math.MinInt16
	}
	return int16(v)
}
