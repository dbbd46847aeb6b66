package postgres

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIntersectIDSets_NoSets(t *testing.T) {
	assert.Nil(t, intersectIDSets(nil))
	assert.Nil(t, intersectIDSets([][]int64{}))
}

func TestIntersectIDSets_SingleSet(t *testing.T) {
	result := intersectIDSets([][]int64{{3, 1, 2}})

	assert.ElementsMatch(t, []int64{1, 2, 3}, result)
}

func TestIntersectIDSets_Intersection(t *testing.T) {
	sets := [][]int64{
		{1, 2, 3, 4},
		{2, 4, 5},
		{4, 2, 9},
	}

	result := intersectIDSets(sets)

	assert.ElementsMatch(t, []int64{2, 4}, result)
}

func TestIntersectIDSets_EmptyMemberShortCircuits(t *testing.T) {
	sets := [][]int64{
		{1, 2, 3},
		{},
		{1, 2},
	}

	assert.Empty(t, intersectIDSets(sets))
}

func TestIntersectIDSets_DisjointSets(t *testing.T) {
	sets := [][]int64{
		{1, 2},
		{3, 4},
	}

	assert.Empty(t, intersectIDSets(sets))
}

func TestIntersectIDSets_DuplicatesCountedOnce(t *testing.T) {
	// Дубликат во втором множестве не должен давать ложное пересечение
	sets := [][]int64{
		{1, 2},
		{2, 2, 3},
		{2, 5},
	}

	result := intersectIDSets(sets)

	assert.ElementsMatch(t, []int64{2}, result)
}
