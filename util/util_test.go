package util

import (
	"slices"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStack(t *testing.T) {
	s := Stack[int]{}
	_, ok := s.Peek()
	assert.False(t, ok)
	_, ok = s.Pop()
	assert.False(t, ok)

	s.Push(1)
	s.Push(2)
	top, ok := s.Peek()
	assert.True(t, ok)
	assert.Equal(t, 2, top)

	top, _ = s.Pop()
	assert.Equal(t, 2, top)
	top, _ = s.Peek()
	assert.Equal(t, 1, top)
}

func TestJoinSeq(t *testing.T) {
	testCases := []struct {
		name  string
		elems []int
		want  string
	}{
		{"empty", nil, ""},
		{"single", []int{1}, "1"},
		{"many", []int{1, 2, 3}, "1, 2, 3"},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, JoinSeq(slices.Values(tc.elems), ", ", strconv.Itoa))
		})
	}
}
