//go:build unit

package errs_test

import (
	"errors"
	"fmt"
	"testing"

	"vinyl-storefront/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMark_MatchesSentinelAndCause(t *testing.T) {
	sentinel := errs.New("cart has no lines")
	cause := errs.Newf("cart %d is empty", 5)

	err := errs.Mark(cause, sentinel)

	require.ErrorIs(t, err, sentinel)
	require.ErrorIs(t, err, cause)
	assert.Equal(t, "cart 5 is empty", err.Error())
}

func TestMark_SurvivesFurtherWrapping(t *testing.T) {
	sentinel := errs.New("order left in incomplete state")
	err := errs.Wrap(errs.Mark(errs.New("status patch failed"), sentinel), "checkout failed")

	require.ErrorIs(t, err, sentinel)
}

func TestMark_NilCauseReturnsSentinel(t *testing.T) {
	sentinel := errs.New("not found")

	require.ErrorIs(t, errs.Mark(nil, sentinel), sentinel)
}

func TestMark_VerboseFormatKeepsCauseDetail(t *testing.T) {
	err := errs.Mark(errs.New("backend said no"), errs.New("sentinel"))

	verbose := fmt.Sprintf("%+v", err)
	assert.Contains(t, verbose, "backend said no")
	assert.NotContains(t, err.Error(), "sentinel")
}

func TestMark_DistinctSentinelsDoNotCrossMatch(t *testing.T) {
	a := errs.New("a")
	b := errs.New("b")

	err := errs.Mark(errors.New("boom"), a)
	require.ErrorIs(t, err, a)
	require.NotErrorIs(t, err, b)
}
