package provider

import (
	"context"
	"fmt"

	"github.com/vk/qualbench/internal/quality"
)

// Version is the capability descriptor a provider declares: the version of
// the shared data contract it was built against and the version of the
// provider interface itself.
type Version struct {
	StructsMajor uint16
	StructsMinor uint16
	APIMajor     uint16
	APIMinor     uint16
}

// Provider is the opaque capability object supplied by a vendor. The harness
// never inspects an implementation beyond this interface.
//
// Initialize is called once per process before any evaluation. VectorQuality
// must be safe to call repeatedly within one process; it is never invoked
// from two threads of the same process, and sibling worker processes never
// share provider state.
type Provider interface {
	Version() Version
	Initialize(ctx context.Context, configDir string) quality.ReturnStatus
	VectorQuality(ctx context.Context, img *quality.Image) (quality.ReturnStatus, quality.Assessment)
}

// Expected contract versions for this harness build. A provider compiled
// against anything else is rejected by CheckVersions before it is touched.
const (
	ExpectedStructsMajor uint16 = 3
	ExpectedStructsMinor uint16 = 0
	ExpectedAPIMajor     uint16 = 4
	ExpectedAPIMinor     uint16 = 1
)

// CheckVersions compares a provider's declared contract versions against the
// versions this harness was built for. The returned error names the
// mismatching pair with both expected and actual values.
func CheckVersions(v Version) error {
	if v.StructsMajor != ExpectedStructsMajor || v.StructsMinor != ExpectedStructsMinor {
		return fmt.Errorf(
			"provider built against data-contract version %d.%d, harness requires %d.%d",
			v.StructsMajor, v.StructsMinor, ExpectedStructsMajor, ExpectedStructsMinor)
	}
	if v.APIMajor != ExpectedAPIMajor || v.APIMinor != ExpectedAPIMinor {
		return fmt.Errorf(
			"provider built against interface version %d.%d, harness requires %d.%d",
			v.APIMajor, v.APIMinor, ExpectedAPIMajor, ExpectedAPIMinor)
	}
	return nil
}
