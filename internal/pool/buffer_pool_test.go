package pool

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBufferPoolResetsLength(t *testing.T) {
	bp := NewBufferPool(16)
	buf := bp.Get()
	assert.Equal(t, 0, len(*buf))
	assert.GreaterOrEqual(t, cap(*buf), 16)

	*buf = append(*buf, "hello"...)
	bp.Put(buf)

	again := bp.Get()
	assert.Equal(t, 0, len(*again))
	assert.Equal(t, 16, bp.Size())
}
