// Package absent is a conformance provider that declines the vector-quality
// capability: it declares correct contract versions and initializes
// successfully, then answers every evaluation with the capability-absent
// sentinel. It exercises the harness's not-implemented path end to end.
package absent

import (
	"context"

	"github.com/vk/qualbench/internal/provider"
	"github.com/vk/qualbench/internal/quality"
)

// Name is the registry name of this provider.
const Name = "absent"

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
	return quality.ReturnStatus{Code: quality.Success}
}

func (i *impl) VectorQuality(ctx context.Context, img *quality.Image) (quality.ReturnStatus, quality.Assessment) {
	return quality.ReturnStatus{Code: quality.NotImplemented}, quality.NewAssessment()
}
