package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Quit       key.Binding
	QuitQ      key.Binding
	NextPanel  key.Binding
	PrevPanel  key.Binding
	Up         key.Binding
	Down       key.Binding
	Submit     key.Binding
	Refresh    key.Binding
	Connect    key.Binding
	Disconnect key.Binding
	Guide      key.Binding
	Estimate   key.Binding
	PageNav    key.Binding
	PageSize   key.Binding
}

var keys = keyMap{
	Quit:       key.NewBinding(key.WithKeys("ctrl+c"), key.WithHelp("ctrl+c", "quit")),
	QuitQ:      key.NewBinding(key.WithKeys("q"), key.WithHelp("q", "quit")),
	NextPanel:  key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "next panel")),
	PrevPanel:  key.NewBinding(key.WithKeys("shift+tab"), key.WithHelp("shift+tab", "prev panel")),
	Up:         key.NewBinding(key.WithKeys("up"), key.WithHelp("↑/↓", "switch field")),
	Down:       key.NewBinding(key.WithKeys("down")),
	Submit:     key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "submit")),
	Refresh:    key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "refresh")),
	Connect:    key.NewBinding(key.WithKeys("c"), key.WithHelp("c", "connect")),
	Disconnect: key.NewBinding(key.WithKeys("d"), key.WithHelp("d", "disconnect")),
	Guide:      key.NewBinding(key.WithKeys("g"), key.WithHelp("g", "install guide")),
	Estimate:   key.NewBinding(key.WithKeys("ctrl+e"), key.WithHelp("ctrl+e", "estimate gas")),
	PageNav:    key.NewBinding(key.WithKeys("left", "right", "home", "end"), key.WithHelp("←/→ home/end", "page")),
	PageSize:   key.NewBinding(key.WithKeys("[", "]"), key.WithHelp("[/]", "page size")),
}

// panelKeys is the help for the active panel
type panelKeys []key.Binding

func (k panelKeys) ShortHelp() []key.Binding  { return k }
func (k panelKeys) FullHelp() [][]key.Binding { return [][]key.Binding{k} }

func helpFor(p Panel) panelKeys {
	common := []key.Binding{keys.NextPanel, keys.PrevPanel, keys.Quit}
	switch p {
	case WalletPanel:
		return append(panelKeys{keys.Connect, keys.Disconnect, keys.Guide, keys.Refresh, keys.QuitQ}, common...)
	case AddressPanel:
		return append(panelKeys{keys.Submit, keys.Up, keys.PageNav, keys.PageSize}, common...)
	case ObjectPanel:
		return append(panelKeys{keys.Submit, keys.QuitQ}, common...)
	default:
		return append(panelKeys{keys.Submit, keys.Estimate, keys.Up}, common...)
	}
}
