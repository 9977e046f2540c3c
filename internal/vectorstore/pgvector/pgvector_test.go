package pgvector

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestVectorLiteral(t *testing.T) {
	assert.Equal(t, "[1.000000,-0.500000,0.333333]", VectorLiteral([]float32{1, -0.5, 0.333333}))
	assert.Equal(t, "[]", VectorLiteral(nil))
}
