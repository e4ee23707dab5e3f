package geo

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func threeSuggestions() []Suggestion {
	return []Suggestion{
		{DisplayName: "MG Road, Bengaluru"},
		{DisplayName: "MG Road, Pune"},
		{DisplayName: "MG Road, Kochi"},
	}
}

func TestSuggestionListStartsUnhighlighted(t *testing.T) {
	list := NewSuggestionList()
	list.SetItems(threeSuggestions())

	_, ok := list.Highlighted()
	assert.False(t, ok)
}

func TestSuggestionListWrapsBothWays(t *testing.T) {
	list := NewSuggestionList()
	list.SetItems(threeSuggestions())

	assert.Equal(t, 0, list.MoveDown())
	assert.Equal(t, 1, list.MoveDown())
	assert.Equal(t, 2, list.MoveDown())
	assert.Equal(t, 0, list.MoveDown(), "down from the last entry wraps to the first")

	assert.Equal(t, 2, list.MoveUp(), "up from the first entry wraps to the last")
	assert.Equal(t, 1, list.MoveUp())
}

func TestSuggestionListMoveOnEmptyList(t *testing.T) {
	list := NewSuggestionList()
	assert.Equal(t, -1, list.MoveDown())
	assert.Equal(t, -1, list.MoveUp())
}

func TestSuggestionListCommit(t *testing.T) {
	list := NewSuggestionList()
	list.SetItems(threeSuggestions())

	_, ok := list.Commit()
	assert.False(t, ok, "commit with nothing highlighted is a no-op")
	assert.Len(t, list.Items(), 3)

	list.MoveDown()
	list.MoveDown()
	picked, ok := list.Commit()
	require.True(t, ok)
	assert.Equal(t, "MG Road, Pune", picked.DisplayName)
	assert.Empty(t, list.Items(), "commit closes the list")
}

func TestSuggestionListSelectByIndex(t *testing.T) {
	list := NewSuggestionList()
	list.SetItems(threeSuggestions())

	_, ok := list.Select(3)
	assert.False(t, ok)
	_, ok = list.Select(-1)
	assert.False(t, ok)

	picked, ok := list.Select(2)
	require.True(t, ok)
	assert.Equal(t, "MG Road, Kochi", picked.DisplayName)
	assert.Empty(t, list.Items())
}

func TestSuggestionListDismiss(t *testing.T) {
	list := NewSuggestionList()
	list.SetItems(threeSuggestions())
	list.MoveDown()

	list.Dismiss()
	assert.Empty(t, list.Items())
	_, ok := list.Highlighted()
	assert.False(t, ok)
}

func TestSuggestionListSetItemsResetsHighlight(t *testing.T) {
	list := NewSuggestionList()
	list.SetItems(threeSuggestions())
	list.MoveDown()

	list.SetItems(threeSuggestions()[:2])
	_, ok := list.Highlighted()
	assert.False(t, ok, "fresh results start with no highlight")
}
