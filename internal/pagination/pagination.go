package pagination

import (
	"strconv"
	"strings"

	"github.com/samber/lo"
)

// DefaultItemsPerPageOptions are the page sizes offered by the size selector
var DefaultItemsPerPageOptions = []int{5, 10, 20, 50}

// Options controls which parts of the pagination control are shown
type Options struct {
	ItemsPerPageOptions []int
	ShowItemsPerPage    bool
	ShowPageInfo        bool
	ShowPageJump        bool
}

// DefaultOptions shows every control
func DefaultOptions() Options {
	return Options{
		ItemsPerPageOptions: DefaultItemsPerPageOptions,
		ShowItemsPerPage:    true,
		ShowPageInfo:        true,
		ShowPageJump:        true,
	}
}

// State is the page position over a client-held list
type State struct {
	CurrentPage  int
	ItemsPerPage int
	TotalItems   int
}

// New returns a state on page 1. A non-positive page size falls back to the
// first default option.
func New(itemsPerPage, totalItems int) State {
	if itemsPerPage <= 0 {
		itemsPerPage = DefaultItemsPerPageOptions[0]
	}
	return State{
		CurrentPage:  1,
		ItemsPerPage: itemsPerPage,
		TotalItems:   max(totalItems, 0),
	}
}

// TotalPages is ceil(TotalItems / ItemsPerPage)
func (s State) TotalPages() int {
	if s.ItemsPerPage <= 0 || s.TotalItems <= 0 {
		return 0
	}
	return (s.TotalItems + s.ItemsPerPage - 1) / s.ItemsPerPage
}

// Clamp bounds a requested page into [1, TotalPages]
func (s State) Clamp(page int) int {
	return max(1, min(page, s.TotalPages()))
}

// GoTo moves to the requested page, clamped
func (s State) GoTo(page int) State {
	s.CurrentPage = s.Clamp(page)
	return s
}

func (s State) First() State { return s.GoTo(1) }
func (s State) Prev() State  { return s.GoTo(s.CurrentPage - 1) }
func (s State) Next() State  { return s.GoTo(s.CurrentPage + 1) }
func (s State) Last() State  { return s.GoTo(s.TotalPages()) }

func (s State) HasPrev() bool { return s.CurrentPage > 1 }
func (s State) HasNext() bool { return s.CurrentPage < s.TotalPages() }

// SetItemsPerPage changes the page size and always returns to page 1, even
// when the size is unchanged
func (s State) SetItemsPerPage(n int) State {
	if n > 0 {
		s.ItemsPerPage = n
	}
	s.CurrentPage = 1
	return s
}

// Reset replaces the underlying collection size and returns to page 1
func (s State) Reset(totalItems int) State {
	s.TotalItems = max(totalItems, 0)
	s.CurrentPage = 1
	return s
}

// Bounds returns the [start, end) indexes of the current page
func (s State) Bounds() (int, int) {
	if s.TotalItems == 0 || s.ItemsPerPage <= 0 {
		return 0, 0
	}
	start := (s.Clamp(s.CurrentPage) - 1) * s.ItemsPerPage
	end := min(start+s.ItemsPerPage, s.TotalItems)
	return start, end
}

// Slice returns the items visible on the current page
func Slice[T any](items []T, s State) []T {
	if s.ItemsPerPage <= 0 {
		return nil
	}
	start := (s.Clamp(s.CurrentPage) - 1) * s.ItemsPerPage
	return lo.Subset(items, start, uint(s.ItemsPerPage))
}

// ParseJump validates jump-to-page input. Only an integer within
// [1, totalPages] is accepted.
func ParseJump(input string, totalPages int) (int, bool) {
	input = strings.TrimSpace(input)
	if input == "" {
		return 0, false
	}

	page, err := strconv.Atoi(input)
	if err != nil || page < 1 || page > totalPages {
		return 0, false
	}
	return page, true
}

// Visible reports whether the control renders anything at all
func Visible(s State, opts Options) bool {
	return s.TotalPages() > 1 || opts.ShowItemsPerPage
}

// NextOption cycles through the size options starting after current
func NextOption(options []int, current int, step int) int {
	if len(options) == 0 {
		return current
	}
	idx := lo.IndexOf(options, current)
	if idx < 0 {
		return options[0]
	}
	idx = (idx + step + len(options)) % len(options)
	return options[idx]
}
