package provider

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vk/qualbench/internal/quality"
)

type stubProvider struct {
	version     Version
	initialized bool
}

func (s *stubProvider) Version() Version { return s.version }

func (s *stubProvider) Initialize(ctx context.Context, configDir string) quality.ReturnStatus {
	s.initialized = true
	return quality.ReturnStatus{Code: quality.Success}
}

func (s *stubProvider) VectorQuality(ctx context.Context, img *quality.Image) (quality.ReturnStatus, quality.Assessment) {
	return quality.ReturnStatus{Code: quality.Success}, quality.NewAssessment()
}

func goodVersion() Version {
	return Version{
		StructsMajor: ExpectedStructsMajor,
		StructsMinor: ExpectedStructsMinor,
		APIMajor:     ExpectedAPIMajor,
		APIMinor:     ExpectedAPIMinor,
	}
}

func TestCheckVersions(t *testing.T) {
	testCases := []struct {
		name      string
		mutate    func(*Version)
		expectErr string
	}{
		{
			name:   "exact match passes",
			mutate: func(v *Version) {},
		},
		{
			name:      "structs major mismatch",
			mutate:    func(v *Version) { v.StructsMajor = 2 },
			expectErr: "data-contract",
		},
		{
			name:      "structs minor mismatch",
			mutate:    func(v *Version) { v.StructsMinor = 9 },
			expectErr: "data-contract",
		},
		{
			name:      "api major mismatch",
			mutate:    func(v *Version) { v.APIMajor = 3 },
			expectErr: "interface",
		},
		{
			name:      "api minor mismatch",
			mutate:    func(v *Version) { v.APIMinor = 0 },
			expectErr: "interface",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			v := goodVersion()
			tc.mutate(&v)
			err := CheckVersions(v)
			if tc.expectErr == "" {
				require.NoError(t, err)
				return
			}
			require.Error(t, err)
			// The diagnostic must name the mismatching pair and both the
			// expected and actual values.
			assert.Contains(t, err.Error(), tc.expectErr)
			assert.Contains(t, err.Error(), "harness requires")
		})
	}
}

func TestGateRunsBeforeInitialize(t *testing.T) {
	// The gate inspects only the declared versions; a failing gate means
	// no provider method was invoked at all.
	p := &stubProvider{version: Version{StructsMajor: 1}}
	err := CheckVersions(p.Version())
	require.Error(t, err)
	assert.False(t, p.initialized)
}

func TestRegistryRegisterAndLookup(t *testing.T) {
	r := New()
	p := &stubProvider{version: goodVersion()}
	r.Register("vendor-x", p)

	got, err := r.Lookup("vendor-x")
	require.NoError(t, err)
	assert.Same(t, p, got)

	_, err = r.Lookup("vendor-y")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "vendor-y")
}

func TestRegistryDuplicatePanics(t *testing.T) {
	r := New()
	r.Register("vendor-x", &stubProvider{})
	assert.Panics(t, func() {
		r.Register("vendor-x", &stubProvider{})
	})
}

func TestRegistryNamesSorted(t *testing.T) {
	r := New()
	r.Register("zeta", &stubProvider{})
	r.Register("alpha", &stubProvider{})
	assert.Equal(t, []string{"alpha", "zeta"}, r.Names())
}
