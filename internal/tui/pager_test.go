package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kelsos/sui-wallet/internal/pagination"
)

func focusedPager(t *testing.T) Pager {
	t.Helper()
	p, _ := NewPager(pagination.DefaultOptions()).Focus()
	return p
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestPagerNavigation(t *testing.T) {
	p := focusedPager(t)
	state := pagination.New(5, 23)

	for _, tt := range []struct {
		key  tea.KeyMsg
		from int
		want int
	}{
		{tea.KeyMsg{Type: tea.KeyRight}, 1, 2},
		{tea.KeyMsg{Type: tea.KeyLeft}, 1, 1},
		{tea.KeyMsg{Type: tea.KeyEnd}, 2, 5},
		{tea.KeyMsg{Type: tea.KeyHome}, 4, 1},
		{tea.KeyMsg{Type: tea.KeyRight}, 5, 5},
	} {
		_, cmd := p.Update(tt.key, state.GoTo(tt.from))
		require.NotNil(t, cmd, tt.key.String())
		assert.Equal(t, PageChangedMsg{Page: tt.want}, cmd(), tt.key.String())
	}
}

func TestPagerJumpRejectsInvalidInput(t *testing.T) {
	state := pagination.New(5, 23)

	for _, input := range []string{"0", "-1", "abc", "6", ""} {
		p := focusedPager(t)
		p.jump.SetValue(input)

		next, cmd := p.Update(tea.KeyMsg{Type: tea.KeyEnter}, state)
		assert.Nil(t, cmd, input)
		assert.Equal(t, input, next.jump.Value())
	}
}

func TestPagerJump(t *testing.T) {
	p := focusedPager(t)
	p.jump.SetValue("3")

	next, cmd := p.Update(tea.KeyMsg{Type: tea.KeyEnter}, pagination.New(5, 23))
	require.NotNil(t, cmd)
	assert.Equal(t, PageChangedMsg{Page: 3}, cmd())
	assert.Empty(t, next.jump.Value())
}

func TestPagerItemsPerPageAlsoResetsPage(t *testing.T) {
	p := focusedPager(t)
	state := pagination.New(5, 23).GoTo(4)

	_, cmd := p.Update(runes("]"), state)
	require.NotNil(t, cmd)

	batch, ok := cmd().(tea.BatchMsg)
	require.True(t, ok)

	var msgs []tea.Msg
	for _, c := range batch {
		msgs = append(msgs, c())
	}
	assert.ElementsMatch(t, []tea.Msg{ItemsPerPageChangedMsg{ItemsPerPage: 10}, PageChangedMsg{Page: 1}}, msgs)
}

func TestPagerIgnoresKeysWhenBlurred(t *testing.T) {
	p := NewPager(pagination.DefaultOptions())
	_, cmd := p.Update(tea.KeyMsg{Type: tea.KeyRight}, pagination.New(5, 23))
	assert.Nil(t, cmd)
}

func TestPagerView(t *testing.T) {
	opts := pagination.DefaultOptions()
	p := NewPager(opts)

	view := p.View(pagination.New(5, 23).GoTo(2))
	assert.Contains(t, view, "Page 2 of 5 (items 6-10 of 23)")
	assert.Contains(t, view, "Per page: 5")

	assert.Contains(t, p.View(pagination.New(5, 23).Last()), "(items 21-23 of 23)")
	assert.Contains(t, p.View(pagination.New(5, 0)), "(items 0-0 of 0)")
	assert.NotEmpty(t, p.View(pagination.New(5, 3)))

	opts.ShowItemsPerPage = false
	p = NewPager(opts)
	assert.Empty(t, p.View(pagination.New(5, 3)))
	assert.NotEmpty(t, p.View(pagination.New(5, 6)))
}
