package circuit

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProductOfLargest(t *testing.T) {
	tests := []struct {
		name  string
		sizes []int
		count int
		want  int
	}{
		{"sorted", []int{5, 4, 2, 2}, 3, 40},
		{"unsorted", []int{2, 5, 2, 4}, 3, 40},
		{"exactly three", []int{3, 3, 3}, 3, 27},
		{"count one", []int{1, 9, 4}, 1, 9},
		{"count zero", []int{7}, 0, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ProductOfLargest(tt.sizes, tt.count)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestProductOfLargest_DoesNotModifyInput(t *testing.T) {
	sizes := []int{2, 5, 3}
	_, err := ProductOfLargest(sizes, 2)
	require.NoError(t, err)
	assert.Equal(t, []int{2, 5, 3}, sizes)
}

func TestProductOfLargest_Insufficient(t *testing.T) {
	_, err := ProductOfLargest([]int{15, 3}, 3)

	var ie *InsufficientGroupsError
	require.True(t, errors.As(err, &ie), "got %v", err)
	assert.Equal(t, 3, ie.Need)
	assert.Equal(t, 2, ie.Have)
	assert.EqualError(t, err, "circuit: need 3 groups, have 2")
}

func TestTerminalProduct(t *testing.T) {
	points := Points{{216, 146, 977}, {0, 0, 0}, {117, 168, 530}}
	assert.Equal(t, 25272, TerminalProduct(points, Edge{U: 0, V: 2}))
	assert.Equal(t, 0, TerminalProduct(points, Edge{U: 0, V: 1}))
}
