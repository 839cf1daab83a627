package internal

import (
	"maps"
	"slices"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIterSeq2Concat(t *testing.T) {
	assert := assert.New(t)

	a := slices.All([]string{"x", "y"})
	b := slices.All([]string{"z"})

	var keys []int
	var vals []string
	for key, val := range IterSeq2Concat(a, nil, b) {
		keys = append(keys, key)
		vals = append(vals, val)
	}
	assert.Equal([]int{0, 1, 0}, keys)
	assert.Equal([]string{"x", "y", "z"}, vals)

	count := 0
	for range IterSeq2Concat(a, b) {
		count++
		if count == 2 {
			break
		}
	}
	assert.Equal(2, count)
}

func TestIterSeq2Convert(t *testing.T) {
	assert := assert.New(t)

	defines := maps.All(map[string]string{"A": "1", "B": "bee", "C": "3"})
	atoi := func(key string, str string) (n int, ok bool) {
		n, err := strconv.Atoi(str)
		return n, err == nil
	}

	got := maps.Collect(IterSeq2Convert(defines, atoi))
	assert.Equal(map[string]int{"A": 1, "C": 3}, got)

	assert.Empty(maps.Collect(IterSeq2Convert(nil, atoi)))
}
