package tui

import (
	"context"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/shopspring/decimal"

	"github.com/kelsos/sui-wallet/internal/models"
	"github.com/kelsos/sui-wallet/internal/pagination"
	"github.com/kelsos/sui-wallet/internal/services"
	"github.com/kelsos/sui-wallet/internal/transfer"
)

type Panel int

const (
	WalletPanel Panel = iota
	AddressPanel
	ObjectPanel
	TransferPanel
)

var panelNames = []string{"Wallet", "Address", "Object", "Transfer"}

func (p Panel) String() string {
	return panelNames[p]
}

// Connector connects the local wallet
type Connector interface {
	Connect(ctx context.Context) (*models.Account, error)
	Disconnect()
}

// Deps are the services the panels call into
type Deps struct {
	Connector Connector
	Account   *services.AccountService
	Address   *services.AddressLookupService
	Object    *services.ObjectLookupService
	Transfer  *transfer.Service
}

type accountLoaded struct {
	snapshot services.AccountSnapshot
}

type walletConnected struct {
	err error
}

type addressLoaded struct {
	result services.AddressResult
}

type objectLoaded struct {
	result services.ObjectResult
}

type gasEstimated struct {
	gas decimal.Decimal
	err error
}

type transferDone struct {
	receipt *transfer.Receipt
	err     error
}

type transferConfirmed struct {
	block *models.TransactionBlock
	err   error
}

// TransferStateMsg carries transfer state changes into the program
type TransferStateMsg struct {
	State transfer.State
}

type Model struct {
	deps    Deps
	active  Panel
	spinner spinner.Model
	help    help.Model
	width   int
	height  int
	quit    bool

	account        services.AccountSnapshot
	accountLoading bool
	showGuide      bool
	walletErr      string

	addressInput   textinput.Model
	pager          Pager
	address        services.AddressResult
	addressPage    []models.CoinEntry
	addressState   pagination.State
	addressLoading bool

	object        services.ObjectResult
	objectLoading bool

	recipientInput  textinput.Model
	amountInput     textinput.Model
	transferFocus   int
	estimating      bool
	transferLoading bool
	transferState   transfer.State
	estimate        *decimal.Decimal
	receipt         *transfer.Receipt
	confirmed       string
	alert           string
}

func NewModel(deps Deps) Model {
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("205"))

	addressInput := textinput.New()
	addressInput.Placeholder = "0x..."
	addressInput.Width = 66

	recipient := textinput.New()
	recipient.Placeholder = "Recipient address"
	recipient.Width = 66

	amount := textinput.New()
	amount.Placeholder = "Amount (SUI)"
	amount.Width = 20

	return Model{
		deps:           deps,
		spinner:        sp,
		help:           help.New(),
		width:          80,
		height:         24,
		addressInput:   addressInput,
		pager:          NewPager(pagination.DefaultOptions()),
		addressState:   deps.Address.Pagination(),
		recipientInput: recipient,
		amountInput:    amount,
		accountLoading: true,
	}
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(
		m.spinner.Tick,
		m.loadAccount(),
	)
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		var cmd tea.Cmd
		m, cmd = m.handleKeyMsg(msg)
		cmds = append(cmds, cmd)

	case tea.WindowSizeMsg:
		m = m.handleWindowSizeMsg(msg)

	case accountLoaded:
		m = m.handleAccountLoaded(msg)

	case walletConnected:
		var cmd tea.Cmd
		m, cmd = m.handleWalletConnected(msg)
		cmds = append(cmds, cmd)

	case addressLoaded:
		m = m.handleAddressLoaded(msg)

	case PageChangedMsg:
		m.addressState = m.deps.Address.GoTo(msg.Page)
		m.addressPage = m.deps.Address.Page()

	case ItemsPerPageChangedMsg:
		m.addressState = m.deps.Address.SetItemsPerPage(msg.ItemsPerPage)
		m.addressPage = m.deps.Address.Page()

	case objectLoaded:
		m.objectLoading = false
		m.object = msg.result

	case gasEstimated:
		m = m.handleGasEstimated(msg)

	case transferDone:
		var cmd tea.Cmd
		m, cmd = m.handleTransferDone(msg)
		cmds = append(cmds, cmd)

	case transferConfirmed:
		var cmd tea.Cmd
		m, cmd = m.handleTransferConfirmed(msg)
		cmds = append(cmds, cmd)

	case TransferStateMsg:
		m.transferState = msg.State

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		cmds = append(cmds, cmd)
	}

	return m, tea.Batch(cmds...)
}

func (m Model) handleWindowSizeMsg(msg tea.WindowSizeMsg) Model {
	m.width = msg.Width
	m.height = msg.Height
	m.help.Width = msg.Width
	return m
}

func (m Model) handleKeyMsg(msg tea.KeyMsg) (Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.Quit):
		m.quit = true
		return m, tea.Quit
	case key.Matches(msg, keys.NextPanel):
		return m.switchPanel(1)
	case key.Matches(msg, keys.PrevPanel):
		return m.switchPanel(-1)
	}

	switch m.active {
	case WalletPanel:
		return m.handleWalletKey(msg)
	case AddressPanel:
		return m.handleAddressKey(msg)
	case ObjectPanel:
		return m.handleObjectKey(msg)
	case TransferPanel:
		return m.handleTransferKey(msg)
	}
	return m, nil
}

func (m Model) switchPanel(step int) (Model, tea.Cmd) {
	m.addressInput.Blur()
	m.pager = m.pager.Blur()
	m.recipientInput.Blur()
	m.amountInput.Blur()

	m.active = Panel((int(m.active) + step + len(panelNames)) % len(panelNames))

	switch m.active {
	case AddressPanel:
		return m, m.addressInput.Focus()
	case TransferPanel:
		return m.focusTransferInput(m.transferFocus)
	}
	return m, nil
}

func (m Model) handleWalletKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.QuitQ):
		m.quit = true
		return m, tea.Quit
	case key.Matches(msg, keys.Connect):
		if m.account.Connected || m.accountLoading {
			return m, nil
		}
		m.accountLoading = true
		m.walletErr = ""
		return m, m.connect()
	case key.Matches(msg, keys.Disconnect):
		if !m.account.Connected {
			return m, nil
		}
		m.deps.Connector.Disconnect()
		m.accountLoading = true
		return m, m.loadAccount()
	case key.Matches(msg, keys.Guide):
		m.showGuide = !m.showGuide
	case key.Matches(msg, keys.Refresh):
		if m.accountLoading {
			return m, nil
		}
		m.accountLoading = true
		return m, m.loadAccount()
	}
	return m, nil
}

func (m Model) handleAddressKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	if key.Matches(msg, keys.Up, keys.Down) {
		if m.pager.Focused() {
			m.pager = m.pager.Blur()
			return m, m.addressInput.Focus()
		}
		m.addressInput.Blur()
		var cmd tea.Cmd
		m.pager, cmd = m.pager.Focus()
		return m, cmd
	}

	if m.pager.Focused() {
		var cmd tea.Cmd
		m.pager, cmd = m.pager.Update(msg, m.addressState)
		return m, cmd
	}

	if key.Matches(msg, keys.Submit) {
		address := strings.TrimSpace(m.addressInput.Value())
		if address == "" || m.addressLoading {
			return m, nil
		}
		m.addressLoading = true
		return m, m.lookupAddress(address)
	}

	var cmd tea.Cmd
	m.addressInput, cmd = m.addressInput.Update(msg)
	return m, cmd
}

func (m Model) handleObjectKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.QuitQ):
		m.quit = true
		return m, tea.Quit
	case key.Matches(msg, keys.Submit, keys.Refresh):
		if m.objectLoading {
			return m, nil
		}
		m.objectLoading = true
		return m, m.fetchObject()
	}
	return m, nil
}

func (m Model) handleTransferKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.Up, keys.Down):
		return m.focusTransferInput(1 - m.transferFocus)
	case key.Matches(msg, keys.Estimate):
		if m.transferBusy() {
			return m, nil
		}
		m.estimating = true
		m.alert = ""
		return m, m.dryRun(m.transferRequest())
	case key.Matches(msg, keys.Submit):
		if m.transferBusy() {
			return m, nil
		}
		m.transferLoading = true
		m.alert = ""
		m.receipt = nil
		m.confirmed = ""
		return m, m.submitTransfer(m.transferRequest())
	}

	var cmd tea.Cmd
	if m.transferFocus == 0 {
		m.recipientInput, cmd = m.recipientInput.Update(msg)
	} else {
		m.amountInput, cmd = m.amountInput.Update(msg)
	}
	return m, cmd
}

func (m Model) focusTransferInput(idx int) (Model, tea.Cmd) {
	m.transferFocus = idx
	if idx == 0 {
		m.amountInput.Blur()
		return m, m.recipientInput.Focus()
	}
	m.recipientInput.Blur()
	return m, m.amountInput.Focus()
}

func (m Model) transferBusy() bool {
	return m.transferLoading || m.estimating || m.deps.Transfer.Busy()
}

func (m Model) transferRequest() transfer.Request {
	return transfer.Request{
		Recipient: m.recipientInput.Value(),
		Amount:    m.amountInput.Value(),
	}
}

func (m Model) handleAccountLoaded(msg accountLoaded) Model {
	m.accountLoading = false
	m.account = msg.snapshot
	return m
}

func (m Model) handleWalletConnected(msg walletConnected) (Model, tea.Cmd) {
	if msg.err != nil {
		m.accountLoading = false
		m.walletErr = msg.err.Error()
		return m, nil
	}
	return m, m.loadAccount()
}

func (m Model) handleAddressLoaded(msg addressLoaded) Model {
	m.addressLoading = false
	m.address = msg.result
	m.addressState = m.deps.Address.Pagination()
	m.addressPage = m.deps.Address.Page()
	return m
}

func (m Model) handleGasEstimated(msg gasEstimated) Model {
	m.estimating = false
	if msg.err != nil {
		m.estimate = nil
		m.alert = transferFailed(msg.err)
		return m
	}
	m.estimate = &msg.gas
	return m
}

func (m Model) handleTransferDone(msg transferDone) (Model, tea.Cmd) {
	m.transferLoading = false
	if msg.err != nil {
		m.alert = transferFailed(msg.err)
		return m, nil
	}
	m.receipt = msg.receipt
	return m, m.confirmTransfer(msg.receipt.Digest)
}

// handleTransferConfirmed refreshes the balance once the transfer is indexed
func (m Model) handleTransferConfirmed(msg transferConfirmed) (Model, tea.Cmd) {
	if msg.err != nil {
		m.confirmed = "unconfirmed: " + msg.err.Error()
	} else {
		m.confirmed = msg.block.Checkpoint
	}
	m.accountLoading = true
	return m, m.loadAccount()
}

func transferFailed(err error) string {
	return "transaction failed: " + err.Error()
}

func (m Model) loadAccount() tea.Cmd {
	account := m.deps.Account
	return func() tea.Msg {
		return accountLoaded{snapshot: account.Snapshot(context.Background())}
	}
}

func (m Model) connect() tea.Cmd {
	connector := m.deps.Connector
	return func() tea.Msg {
		_, err := connector.Connect(context.Background())
		return walletConnected{err: err}
	}
}

func (m Model) lookupAddress(address string) tea.Cmd {
	lookup := m.deps.Address
	return func() tea.Msg {
		result, _ := lookup.Lookup(context.Background(), address)
		return addressLoaded{result: result}
	}
}

func (m Model) fetchObject() tea.Cmd {
	object := m.deps.Object
	return func() tea.Msg {
		return objectLoaded{result: object.Fetch(context.Background())}
	}
}

func (m Model) dryRun(req transfer.Request) tea.Cmd {
	svc := m.deps.Transfer
	return func() tea.Msg {
		gas, err := svc.DryRun(context.Background(), req)
		return gasEstimated{gas: gas, err: err}
	}
}

func (m Model) submitTransfer(req transfer.Request) tea.Cmd {
	svc := m.deps.Transfer
	return func() tea.Msg {
		receipt, err := svc.Transfer(context.Background(), req)
		return transferDone{receipt: receipt, err: err}
	}
}

func (m Model) confirmTransfer(digest string) tea.Cmd {
	svc := m.deps.Transfer
	return func() tea.Msg {
		block, err := svc.Confirm(context.Background(), digest)
		return transferConfirmed{block: block, err: err}
	}
}
