//go:build unit

package infra_test

import (
	"errors"
	"fmt"
	"testing"

	"rental-booking/internal/infra"

	"github.com/stretchr/testify/assert"
)

func TestWrapRepoErr(t *testing.T) {
	cause := errors.New("connection reset")

	err := infra.WrapRepoErr("failed to write item", cause)
	assert.True(t, infra.IsKind(err, infra.KindDBFailure))
	assert.ErrorIs(t, err, cause)
	assert.Contains(t, err.Error(), "DB_FAILURE: failed to write item")

	err = infra.WrapRepoErr("value too large", nil, infra.KindQuotaExceeded)
	assert.True(t, infra.IsKind(err, infra.KindQuotaExceeded))
	assert.Equal(t, "QUOTA_EXCEEDED: value too large", err.Error())

	wrapped := fmt.Errorf("outer: %w", err)
	assert.True(t, infra.IsKind(wrapped, infra.KindQuotaExceeded))
	assert.False(t, infra.IsKind(wrapped, infra.KindUnavailable))
	assert.False(t, infra.IsKind(cause, infra.KindDBFailure))
}
