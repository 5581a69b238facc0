package quality

import "fmt"

// QualityMeasure identifies one scalar quality component a provider may
// report. The declaration order below is the fixed column order of every
// result log; appending new measures is allowed, reordering is not.
type QualityMeasure uint8

const (
	TotalFacesPresent QualityMeasure = iota
	SubjectPoseRoll
	SubjectPosePitch
	SubjectPoseYaw
	EyesOpen
	MouthOpen
	EyeglassesPresent
	SunglassesPresent
	Underexposure
	Overexposure
	BackgroundUniformity
	MotionBlur
	CompressionArtifacts
	InterocularDistance
	Resolution
	UnifiedQualityScore

	numQualityMeasures
)

var measureNames = [numQualityMeasures]string{
	"TotalFacesPresent",
	"SubjectPoseRoll",
	"SubjectPosePitch",
	"SubjectPoseYaw",
	"EyesOpen",
	"MouthOpen",
	"EyeglassesPresent",
	"SunglassesPresent",
	"Underexposure",
	"Overexposure",
	"BackgroundUniformity",
	"MotionBlur",
	"CompressionArtifacts",
	"InterocularDistance",
	"Resolution",
	"UnifiedQualityScore",
}

func (m QualityMeasure) String() string {
	if m < numQualityMeasures {
		return measureNames[m]
	}
	return fmt.Sprintf("QualityMeasure(%d)", uint8(m))
}

// Measures returns every quality measure in log column order.
func Measures() []QualityMeasure {
	out := make([]QualityMeasure, numQualityMeasures)
	for i := range out {
		out[i] = QualityMeasure(i)
	}
	return out
}

// BoundingBox locates the detected head within the image. All fields are -1
// when no detection is available.
type BoundingBox struct {
	XLeft  int16
	YTop   int16
	Width  int16
	Height int16
}

// NewBoundingBox returns the unassigned bounding box.
func NewBoundingBox() BoundingBox {
	return BoundingBox{XLeft: -1, YTop: -1, Width: -1, Height: -1}
}

// Assessment is the structured output of one VectorQuality call. Measures a
// provider does not compute are simply absent from Scores and are rendered
// as NA in logs.
type Assessment struct {
	BoundingBox BoundingBox
	Scores      map[QualityMeasure]float64
}

// NewAssessment returns an empty assessment with an unassigned bounding box.
func NewAssessment() Assessment {
	return Assessment{
		BoundingBox: NewBoundingBox(),
		Scores:      make(map[QualityMeasure]float64),
	}
}
