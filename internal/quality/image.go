package quality

import "strings"

// ImageDescription labels the collection conditions of an image.
type ImageDescription uint8

const (
	// Unknown covers imagery with unassigned collection conditions.
	Unknown ImageDescription = 0
	// StillISO is a frontal face image closely ISO/IEC 19794-5 compliant.
	StillISO ImageDescription = 1
	// StillMugshot is a nominally frontal law-enforcement booking image.
	StillMugshot ImageDescription = 2
	// StillPhotojournalism is a well exposed press-style image with pose
	// and illumination variation.
	StillPhotojournalism ImageDescription = 3
	// StillWild is an unconstrained amateur photo.
	StillWild ImageDescription = 4
	// VideoLongRange is a frame from long-range video.
	VideoLongRange ImageDescription = 5
	// VideoPhotojournalism is a frame from television footage.
	VideoPhotojournalism ImageDescription = 6
	// VideoPassiveObservation is a frame from passive collection in public
	// spaces.
	VideoPassiveObservation ImageDescription = 7
	// VideoChokepoint is a frame from chokepoint video.
	VideoChokepoint ImageDescription = 8
	// VideoElevatedPlatform is a frame from a large look-down angle.
	VideoElevatedPlatform ImageDescription = 9
)

// descriptionLabels maps the free-text labels that appear in input manifests
// to their enumerated description.
var descriptionLabels = map[string]ImageDescription{
	"unknown":            Unknown,
	"iso":                StillISO,
	"mugshot":            StillMugshot,
	"photojournalism":    StillPhotojournalism,
	"wild":               StillWild,
	"longrange":          VideoLongRange,
	"tvphotojournalism":  VideoPhotojournalism,
	"passiveobservation": VideoPassiveObservation,
	"chokepoint":         VideoChokepoint,
	"elevatedplatform":   VideoElevatedPlatform,
}

// ParseDescription maps a manifest label to its ImageDescription.
// Unrecognized labels map to Unknown; providers are expected to handle
// Unknown imagery appropriately.
func ParseDescription(label string) ImageDescription {
	if d, ok := descriptionLabels[strings.ToLower(label)]; ok {
		return d
	}
	return Unknown
}

// Illuminant identifies the light source used to acquire an image.
type Illuminant uint8

const (
	// IlluminantUnspecified means the light source was not recorded.
	IlluminantUnspecified Illuminant = 0
	// IlluminantVisible is conventional visible light.
	IlluminantVisible Illuminant = 1
)

// Image is a single raster handed to a provider. Depth 24 means Data holds
// 3*Width*Height bytes of RGBRGB...; depth 8 means Width*Height intensity
// bytes.
type Image struct {
	Width       uint16
	Height      uint16
	Depth       uint8
	Data        []byte
	Description ImageDescription
	Illuminant  Illuminant
}

// Size returns the expected byte length of Data for the image geometry.
func (im *Image) Size() int {
	return int(im.Width) * int(im.Height) * int(im.Depth) / 8
}
