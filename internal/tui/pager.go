package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/kelsos/sui-wallet/internal/pagination"
)

// PageChangedMsg asks the owner of the list to move to Page
type PageChangedMsg struct {
	Page int
}

// ItemsPerPageChangedMsg asks the owner of the list to change the page size
type ItemsPerPageChangedMsg struct {
	ItemsPerPage int
}

// Pager renders navigation for a paginated list. Page and size state stay
// with the owner; the pager only keeps the jump input.
type Pager struct {
	Options pagination.Options
	jump    textinput.Model
	focused bool
}

func NewPager(opts pagination.Options) Pager {
	jump := textinput.New()
	jump.Placeholder = "#"
	jump.CharLimit = 6
	jump.Width = 4
	jump.Prompt = ""

	return Pager{Options: opts, jump: jump}
}

func (p Pager) Focused() bool {
	return p.focused
}

func (p Pager) Focus() (Pager, tea.Cmd) {
	p.focused = true
	return p, p.jump.Focus()
}

func (p Pager) Blur() Pager {
	p.focused = false
	p.jump.Blur()
	return p
}

// JumpTarget returns the page typed into the jump input, if valid
func (p Pager) JumpTarget(state pagination.State) (int, bool) {
	return pagination.ParseJump(p.jump.Value(), state.TotalPages())
}

func pageChanged(page int) tea.Cmd {
	return func() tea.Msg { return PageChangedMsg{Page: page} }
}

func itemsPerPageChanged(n int) tea.Cmd {
	return tea.Batch(
		func() tea.Msg { return ItemsPerPageChangedMsg{ItemsPerPage: n} },
		pageChanged(1),
	)
}

// Update handles navigation keys while focused
func (p Pager) Update(msg tea.Msg, state pagination.State) (Pager, tea.Cmd) {
	if !p.focused {
		return p, nil
	}

	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return p, nil
	}

	switch keyMsg.String() {
	case "home":
		return p, pageChanged(state.First().CurrentPage)
	case "left":
		return p, pageChanged(state.Prev().CurrentPage)
	case "right":
		return p, pageChanged(state.Next().CurrentPage)
	case "end":
		return p, pageChanged(state.Last().CurrentPage)
	case "[", "]":
		if !p.Options.ShowItemsPerPage {
			return p, nil
		}
		step := 1
		if keyMsg.String() == "[" {
			step = -1
		}
		return p, itemsPerPageChanged(pagination.NextOption(p.Options.ItemsPerPageOptions, state.ItemsPerPage, step))
	case "enter":
		page, ok := p.JumpTarget(state)
		if !ok {
			return p, nil
		}
		p.jump.SetValue("")
		return p, pageChanged(page)
	}

	if !p.Options.ShowPageJump {
		return p, nil
	}

	var cmd tea.Cmd
	p.jump, cmd = p.jump.Update(msg)
	return p, cmd
}

// View renders the control, or nothing when there is a single page and the
// size selector is hidden
func (p Pager) View(state pagination.State) string {
	if !pagination.Visible(state, p.Options) {
		return ""
	}

	var parts []string
	parts = append(parts,
		control("«", state.HasPrev()),
		control("‹", state.HasPrev()),
	)

	if p.Options.ShowPageInfo {
		start, end := state.Bounds()
		parts = append(parts, valueStyle.Render(fmt.Sprintf("Page %d of %d (items %d-%d of %d)",
			state.CurrentPage, max(state.TotalPages(), 1), min(start+1, end), end, state.TotalItems)))
	}

	if p.Options.ShowPageJump {
		_, valid := p.JumpTarget(state)
		parts = append(parts, labelStyle.Render("Go to")+" "+p.jump.View()+" "+button("Go", valid))
	}

	parts = append(parts,
		control("›", state.HasNext()),
		control("»", state.HasNext()),
	)

	if p.Options.ShowItemsPerPage {
		parts = append(parts, labelStyle.Render(fmt.Sprintf("Per page: %d", state.ItemsPerPage)))
	}

	line := strings.Join(parts, " ")
	if p.focused {
		line = "▸ " + line
	}
	return line
}

func control(symbol string, enabled bool) string {
	if enabled {
		return valueStyle.Render(symbol)
	}
	return dimStyle.Render(symbol)
}
