package pgsql

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

// The cutoff comparisons are load-bearing: the retention purge must leave a
// row observed exactly at the cutoff in place, while window reads must still
// include it. These tests pin the predicates the statements ship with.

func TestDeleteRecordedBeforeSQL_CutoffIsExclusive(t *testing.T) {
	assert.Contains(t, deleteRecordedBeforeSQL, "recorded_at < $1")
	assert.NotContains(t, deleteRecordedBeforeSQL, "recorded_at <= $1")
	assert.Contains(t, deleteRecordedBeforeSQL, "deleted_at IS NULL")
}

func TestFindLowestPriceSinceSQL_CutoffIsInclusive(t *testing.T) {
	assert.Contains(t, findLowestPriceSinceSQL, "recorded_at >= $2")
	assert.Contains(t, findLowestPriceSinceSQL, "deleted_at IS NULL")
	assert.Contains(t, findLowestPriceSinceSQL, "ORDER BY price ASC, recorded_at ASC, price_history_id ASC")
	assert.Contains(t, findLowestPriceSinceSQL, "LIMIT 1")
}

func TestDeleteByVariantIDsSQL_ScopedToGivenVariants(t *testing.T) {
	assert.Contains(t, deleteByVariantIDsSQL, "variant_id = ANY($1)")
	assert.Contains(t, deleteByVariantIDsSQL, "deleted_at IS NULL")
	// Variant resets ignore age entirely.
	assert.False(t, strings.Contains(deleteByVariantIDsSQL, "recorded_at"))
}
