package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/kelsos/sui-wallet/internal/services"
	"github.com/kelsos/sui-wallet/internal/transfer"
)

func (m Model) View() string {
	if m.quit {
		return "Shutting down...\n"
	}

	var s strings.Builder

	s.WriteString(headerStyle.Render("💧 Sui Wallet"))
	s.WriteString("\n")
	s.WriteString(m.tabsView())
	s.WriteString("\n")

	var body string
	switch m.active {
	case WalletPanel:
		body = m.walletView()
	case AddressPanel:
		body = m.addressView()
	case ObjectPanel:
		body = m.objectView()
	case TransferPanel:
		body = m.transferView()
	}
	s.WriteString(panelStyle.Width(max(m.width-2, 40)).Render(body))
	s.WriteString("\n")

	s.WriteString(footerStyle.Render(m.help.View(helpFor(m.active))))
	return s.String()
}

func (m Model) tabsView() string {
	tabs := make([]string, 0, len(panelNames))
	for i, name := range panelNames {
		if Panel(i) == m.active {
			tabs = append(tabs, activeTabStyle.Render(name))
		} else {
			tabs = append(tabs, tabStyle.Render(name))
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, tabs...)
}

func field(label, value string) string {
	return labelStyle.Render(label+": ") + valueStyle.Render(value) + "\n"
}

func (m Model) walletView() string {
	var s strings.Builder
	s.WriteString("🔐 Wallet Connection\n\n")

	if m.accountLoading {
		s.WriteString(m.spinner.View() + " Loading...\n")
		return s.String()
	}

	if m.account.Connected {
		s.WriteString(successStyle.Render("● Connected") + "\n")
		s.WriteString(field("Network", m.account.ChainName))
		s.WriteString(field("Address", m.account.Address))
		s.WriteString(field("Balance", m.balanceText()))
		s.WriteString("\n" + button("Disconnect (d)", true))
		return s.String()
	}

	s.WriteString(dimStyle.Render("○ Not connected") + "\n\n")
	s.WriteString(button("Connect (c)", true) + " " + button("Install guide (g)", true) + "\n")

	if !m.account.Guide.ChromeInstalled {
		s.WriteString("\n" + warnStyle.Render("⚠ Chrome was not found. Sui wallet extensions need Chrome.") + "\n")
	}

	if m.walletErr != "" {
		s.WriteString("\n" + errorStyle.Render(m.walletErr) + "\n")
	}

	if m.showGuide {
		s.WriteString("\n")
		for _, entry := range m.account.Guide.Entries {
			status := dimStyle.Render("not installed")
			if entry.Installed {
				status = successStyle.Render("installed")
			}
			s.WriteString(fmt.Sprintf("%-16s %s\n  %s\n", entry.Name, status, linkStyle.Render(entry.Link)))
		}
	}

	return s.String()
}

func (m Model) balanceText() string {
	if m.account.Balance == "" {
		return "-"
	}
	if m.account.Balance == services.BalanceError {
		return errorStyle.Render(m.account.Balance)
	}
	return m.account.Balance + " SUI"
}

func (m Model) addressView() string {
	var s strings.Builder
	s.WriteString("🔎 Address Balance\n\n")
	s.WriteString(m.addressInput.View() + " " + button("Query", !m.addressLoading && strings.TrimSpace(m.addressInput.Value()) != "") + "\n\n")

	if m.addressLoading {
		s.WriteString(m.spinner.View() + " Querying...\n")
		return s.String()
	}

	if m.address.Error != nil {
		s.WriteString(errorStyle.Render(m.address.Error.Error) + "\n")
		if m.address.Error.HasDetails() {
			s.WriteString(dimStyle.Render(string(m.address.Error.Details)) + "\n")
		}
		return s.String()
	}

	balance := m.address.Balance
	if balance == nil {
		return s.String()
	}

	s.WriteString(field("Address", balance.Address))
	s.WriteString(field("SUI", balance.SuiBalance))
	s.WriteString("\n")

	if len(balance.OtherCoins) == 0 {
		s.WriteString(dimStyle.Render("No other coins") + "\n")
		return s.String()
	}

	s.WriteString(labelStyle.Render("Other coins") + "\n")
	for _, coin := range m.addressPage {
		s.WriteString(fmt.Sprintf("  %-12s %s\n", coin.DisplayName(), coin.Balance))
	}

	if pager := m.pager.View(m.addressState); pager != "" {
		s.WriteString("\n" + pager + "\n")
	}
	return s.String()
}

func (m Model) objectView() string {
	var s strings.Builder
	s.WriteString("📦 Object\n\n")
	s.WriteString(field("Object ID", m.deps.Object.ObjectID()))
	s.WriteString(button("Fetch (enter)", !m.objectLoading) + "\n\n")

	switch {
	case m.objectLoading:
		s.WriteString(m.spinner.View() + " Loading...\n")
	case m.object.Error != nil:
		s.WriteString(errorStyle.Render(m.object.Error.Error) + "\n")
	case m.object.Fields != nil:
		s.WriteString(field("Admin", m.object.Fields.Admin))
		s.WriteString(field("ID", m.object.Fields.ID))
		s.WriteString(field("Balance", m.object.Fields.Balance))
	}
	return s.String()
}

func (m Model) transferView() string {
	var s strings.Builder
	s.WriteString("💸 Transfer SUI\n\n")

	if m.account.Connected {
		s.WriteString(field("From", m.account.Address))
		s.WriteString(field("Balance", m.balanceText()))
	} else {
		s.WriteString(warnStyle.Render("Connect a wallet in the Wallet panel first") + "\n")
	}
	s.WriteString("\n")

	s.WriteString(labelStyle.Render("To") + "\n" + m.recipientInput.View() + "\n")
	s.WriteString(labelStyle.Render("Amount") + "\n" + m.amountInput.View() + "\n\n")

	idle := !m.transferLoading && !m.estimating
	s.WriteString(button("Estimate gas (ctrl+e)", idle) + " " + button("Send (enter)", idle) + "\n\n")

	if m.transferLoading || m.estimating {
		s.WriteString(m.spinner.View() + " " + phaseText(m.transferState.Phase, m.estimating) + "\n")
	}

	if m.estimate != nil {
		s.WriteString(field("Estimated gas", m.estimate.String()+" SUI"))
		s.WriteString(field("Recommended reserve", transfer.Reserve(*m.estimate).String()+" SUI"))
	}

	if m.alert != "" {
		s.WriteString(errorStyle.Render(m.alert) + "\n")
	}

	if m.receipt != nil {
		s.WriteString(successStyle.Render("✅ Transaction submitted") + "\n")
		s.WriteString(field("Digest", m.receipt.Digest))
		s.WriteString(labelStyle.Render("Explorer: ") + linkStyle.Render(m.receipt.ExplorerURL) + "\n")
		if m.confirmed != "" {
			s.WriteString(field("Checkpoint", m.confirmed))
		}
	}

	return s.String()
}

func phaseText(phase transfer.Phase, estimating bool) string {
	if estimating {
		return "Estimating gas..."
	}
	switch phase {
	case transfer.Validating:
		return "Validating..."
	case transfer.Estimating:
		return "Estimating gas..."
	case transfer.Submitting:
		return "Waiting for signature and execution..."
	default:
		return "Working..."
	}
}
