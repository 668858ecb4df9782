package errorx_test

import (
	"errors"
	"fmt"
	"testing"

	"longrun/infra/errorx"
	"longrun/infra/errorx/errCode"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCarriesCode(t *testing.T) {
	err := errorx.New(errCode.INVALID_KERNEL, "unknown kernel")
	require.Error(t, err)
	assert.True(t, errorx.Is(err, errCode.INVALID_KERNEL))
	assert.False(t, errorx.Is(err, errCode.INVALID_ORDER))
	assert.Equal(t, "[INVALID_KERNEL] unknown kernel", err.Error())
}

func TestNewf(t *testing.T) {
	err := errorx.Newf(errCode.INSUFFICIENT_LAGS, "need %d lags, have %d", 5, 3)
	assert.Equal(t, errCode.INSUFFICIENT_LAGS, errorx.CodeOf(err))
	assert.Contains(t, err.Error(), "need 5 lags, have 3")
}

func TestWrapKeepsCause(t *testing.T) {
	cause := errors.New("singular")
	err := errorx.Wrap(errCode.INVALID_ORDER, cause, "AR fit failed")
	assert.ErrorIs(t, err, cause)
	assert.Equal(t, errCode.INVALID_ORDER, errorx.CodeOf(err))
	assert.Nil(t, errorx.Wrap(errCode.INVALID_ORDER, nil, "noop"))
}

func TestCodeOfThroughFmtWrap(t *testing.T) {
	inner := errorx.New(errCode.INVALID_BANDWIDTH, "bandwidth < 0")
	outer := fmt.Errorf("estimate: %w", inner)
	assert.True(t, errorx.Is(outer, errCode.INVALID_BANDWIDTH))
}

func TestCodeOfForeignError(t *testing.T) {
	assert.Equal(t, errCode.OK, errorx.CodeOf(nil))
	assert.Equal(t, errCode.INVALID_VALUE, errorx.CodeOf(errors.New("plain")))
	assert.False(t, errorx.Is(nil, errCode.OK))
}

func TestCodeString(t *testing.T) {
	assert.Equal(t, "INVALID_CRITERION", errCode.INVALID_CRITERION.String())
	assert.Equal(t, "UNKNOWN", errCode.Code(99).String())
}
