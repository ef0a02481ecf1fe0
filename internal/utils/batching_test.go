package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBatchBuffer(t *testing.T) {
	b := NewBatchBuffer[int](3)
	assert.False(t, b.HasData())
	assert.Nil(t, b.GetAndClear())

	assert.False(t, b.Add(1))
	assert.False(t, b.Add(2))
	assert.True(t, b.Add(3))
	assert.True(t, b.HasData())

	assert.Equal(t, []int{1, 2, 3}, b.GetAndClear())
	assert.False(t, b.HasData())

	b.Add(4)
	assert.Equal(t, []int{4}, b.GetAndClear())
}

func TestBatchBuffer_DefaultSize(t *testing.T) {
	b := NewBatchBuffer[string](0)
	for i := 0; i < DEFAULT_BATCH_SIZE-1; i++ {
		assert.False(t, b.Add("x"))
	}
	assert.True(t, b.Add("x"))
}
