package pagination

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTotalPages(t *testing.T) {
	tests := []struct {
		total, size, want int
	}{
		{0, 10, 0},
		{1, 10, 1},
		{10, 10, 1},
		{11, 10, 2},
		{49, 5, 10},
		{50, 50, 1},
		{101, 20, 6},
	}

	for _, tt := range tests {
		s := New(tt.size, tt.total)
		assert.Equal(t, tt.want, s.TotalPages(), "total=%d size=%d", tt.total, tt.size)
	}
}

func TestNavigationIsClamped(t *testing.T) {
	for total := 0; total <= 37; total++ {
		for _, size := range []int{1, 3, 5, 10} {
			s := New(size, total)
			pages := s.TotalPages()

			for _, step := range []func(State) State{
				State.First, State.Prev, State.Next, State.Last,
				func(s State) State { return s.GoTo(-5) },
				func(s State) State { return s.GoTo(pages + 7) },
				func(s State) State { return s.SetItemsPerPage(size) },
			} {
				s = step(s)
				require.GreaterOrEqual(t, s.CurrentPage, 1)
				if pages > 0 {
					require.LessOrEqual(t, s.CurrentPage, pages)
				}
			}
		}
	}
}

func TestPrevNext(t *testing.T) {
	s := New(10, 25)
	assert.False(t, s.HasPrev())
	assert.True(t, s.HasNext())

	s = s.Next().Next().Next()
	assert.Equal(t, 3, s.CurrentPage)
	assert.False(t, s.HasNext())

	s = s.Prev()
	assert.Equal(t, 2, s.CurrentPage)
	assert.Equal(t, 1, s.First().CurrentPage)
	assert.Equal(t, 3, s.Last().CurrentPage)
}

func TestSetItemsPerPageResetsPage(t *testing.T) {
	s := New(5, 40).GoTo(6)
	require.Equal(t, 6, s.CurrentPage)

	same := s.SetItemsPerPage(5)
	assert.Equal(t, 1, same.CurrentPage)
	assert.Equal(t, 5, same.ItemsPerPage)

	bigger := s.SetItemsPerPage(20)
	assert.Equal(t, 1, bigger.CurrentPage)
	assert.Equal(t, 2, bigger.TotalPages())
}

func TestResetReturnsToFirstPage(t *testing.T) {
	s := New(5, 40).GoTo(4).Reset(12)
	assert.Equal(t, 1, s.CurrentPage)
	assert.Equal(t, 3, s.TotalPages())
}

func TestParseJump(t *testing.T) {
	for _, input := range []string{"0", "-1", "abc", "", "1.5", "6"} {
		_, ok := ParseJump(input, 5)
		assert.False(t, ok, "input %q", input)
	}

	page, ok := ParseJump("5", 5)
	assert.True(t, ok)
	assert.Equal(t, 5, page)

	page, ok = ParseJump(" 2 ", 5)
	assert.True(t, ok)
	assert.Equal(t, 2, page)
}

func TestSlice(t *testing.T) {
	items := []int{1, 2, 3, 4, 5, 6, 7}
	s := New(3, len(items))

	assert.Equal(t, []int{1, 2, 3}, Slice(items, s))
	assert.Equal(t, []int{4, 5, 6}, Slice(items, s.Next()))
	assert.Equal(t, []int{7}, Slice(items, s.Last()))
	assert.Empty(t, Slice([]int{}, New(3, 0)))

	start, end := s.Last().Bounds()
	assert.Equal(t, 6, start)
	assert.Equal(t, 7, end)
}

func TestVisible(t *testing.T) {
	single := New(10, 3)
	hidden := DefaultOptions()
	hidden.ShowItemsPerPage = false

	assert.False(t, Visible(single, hidden))
	assert.True(t, Visible(single, DefaultOptions()))
	assert.True(t, Visible(New(2, 3), hidden))
}

func TestNextOption(t *testing.T) {
	assert.Equal(t, 10, NextOption(DefaultItemsPerPageOptions, 5, 1))
	assert.Equal(t, 5, NextOption(DefaultItemsPerPageOptions, 50, 1))
	assert.Equal(t, 50, NextOption(DefaultItemsPerPageOptions, 5, -1))
	assert.Equal(t, 5, NextOption(DefaultItemsPerPageOptions, 7, 1))
}
