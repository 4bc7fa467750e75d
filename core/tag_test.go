package core

import (
	"testing"

	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
)

func TestNormalizeTags(t *testing.T) {
	assert.Equal(t, pq.StringArray{}, NormalizeTags(nil))
	assert.Equal(t, pq.StringArray{"dragon", "lore"}, NormalizeTags([]string{" dragon", "lore", "", "dragon "}))

	// order of first occurrence is kept
	assert.Equal(t, pq.StringArray{"b", "a"}, NormalizeTags([]string{"b", "a", "b"}))
}
