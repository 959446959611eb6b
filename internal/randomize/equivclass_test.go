package randomize

import (
	"testing"

	"github.com/parrotls/parrotls/internal/model"
	"github.com/parrotls/parrotls/internal/randomize/testrng"
	"github.com/stretchr/testify/require"
)

func TestSubstituteEquivalentOptionalSwapsWithinClass(t *testing.T) {
	extensions := []uint16{model.ExtServerName, model.ExtStatusRequest, model.ExtPadding}
	classes := [][]uint16{{model.ExtStatusRequest, model.ExtStatusRequestV2}}

	sawSwap := false
	for seed := uint64(0); seed < 60; seed++ {
		out := substituteEquivalentOptional(extensions, classes, testrng.New(seed))
		require.Len(t, out, len(extensions))
		for _, e := range out {
			if e == model.ExtStatusRequestV2 {
				sawSwap = true
			}
		}
	}
	require.True(t, sawSwap, "expected at least one seed to substitute status_request for status_request_v2")
}

func TestSubstituteEquivalentOptionalNoOpWithoutClasses(t *testing.T) {
	extensions := []uint16{model.ExtServerName, model.ExtStatusRequest, model.ExtPadding}
	out := substituteEquivalentOptional(extensions, nil, testrng.New(1))
	require.Equal(t, extensions, out)
}

func TestSubstituteEquivalentOptionalNoOpWhenBothAbsent(t *testing.T) {
	extensions := []uint16{model.ExtServerName, model.ExtPadding}
	classes := [][]uint16{{model.ExtStatusRequest, model.ExtStatusRequestV2}}
	for seed := uint64(0); seed < 20; seed++ {
		out := substituteEquivalentOptional(extensions, classes, testrng.New(seed))
		require.Equal(t, extensions, out)
	}
}
