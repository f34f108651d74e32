package util

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSum(t *testing.T) {
	assert.Equal(t, uint64(12), Sum([]int{3, 0, 3, 0, 1, 3, 0, 1, 0, 1, 0, 0}))
	assert.Equal(t, uint64(0), Sum([]int{}))
}

func TestMinMax(t *testing.T) {
	assert.Equal(t, 1, Min(1, 3))
	assert.Equal(t, 3, Max(1, 3))
	assert.Equal(t, uint8(2), Max(uint8(2), uint8(2)))
}

func TestGetKeys(t *testing.T) {
	keys := GetKeys(map[uint8]bool{60: true, 64: true, 67: true})
	sort.Slice(keys, func(i, j int) bool { return keys[i] < keys[j] })
	assert.Equal(t, []uint8{60, 64, 67}, keys)
}
