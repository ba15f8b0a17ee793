//go:build unit

package patch_test

import (
	"testing"

	"syncro-backend/internal/pkg/patch"
	"syncro-backend/internal/pkg/ptr"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestCoalesce(t *testing.T) {
	price := decimal.RequireFromString("1500.00")

	assert.Equal(t, "Logo design", patch.Coalesce(nil, "Logo design"))
	assert.Equal(t, "Brand kit", patch.Coalesce(ptr.Of("Brand kit"), "Logo design"))
	assert.True(t, price.Equal(patch.Coalesce(nil, price)))
	// an explicit zero is still a sent value
	assert.Equal(t, int64(0), patch.Coalesce(ptr.Of(int64(0)), int64(7)))
}

func TestCoalesceOptional(t *testing.T) {
	current := ptr.Of("3 days")

	assert.Same(t, current, patch.CoalesceOptional(nil, current))
	assert.Nil(t, patch.CoalesceOptional[string](nil, nil))
	assert.Equal(t, "1 week", *patch.CoalesceOptional(ptr.Of("1 week"), current))
}
