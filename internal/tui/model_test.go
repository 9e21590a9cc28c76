package tui

import (
	"context"
	"path/filepath"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kelsos/sui-wallet/internal/config"
	"github.com/kelsos/sui-wallet/internal/models"
	"github.com/kelsos/sui-wallet/internal/services"
	"github.com/kelsos/sui-wallet/internal/transfer"
	"github.com/kelsos/sui-wallet/internal/wallet"
)

type fakeWallet struct {
	account *models.Account
	chain   string
}

func (f *fakeWallet) Connect(context.Context) (*models.Account, error) {
	f.account = &models.Account{Address: "0xa11ce", Chains: []string{f.chain}}
	return f.account, nil
}

func (f *fakeWallet) Disconnect() { f.account = nil }

func (f *fakeWallet) CurrentAccount() (*models.Account, bool) {
	return f.account, f.account != nil
}

func (f *fakeWallet) SignAndExecute(context.Context, string) (*models.ExecuteResult, error) {
	return &models.ExecuteResult{Digest: "9XyZ"}, nil
}

type fakeChain struct {
	balanceCalls int
}

func (f *fakeChain) GetBalance(context.Context, string, string) (*models.ChainBalance, error) {
	f.balanceCalls++
	return &models.ChainBalance{TotalBalance: "1500000000"}, nil
}

func (f *fakeChain) GetCoins(context.Context, string, string, *string, int) (*models.CoinPage, error) {
	return &models.CoinPage{Data: []models.Coin{{CoinObjectID: "0x1", Balance: "1500000000"}}}, nil
}

func (f *fakeChain) BuildTransfer(context.Context, string, string, uint64) (string, error) {
	return "AAEC", nil
}

func (f *fakeChain) DryRun(context.Context, string) (*models.DryRunResult, error) {
	return &models.DryRunResult{GasUsed: models.GasCostSummary{ComputationCost: "1000000"}}, nil
}

func (f *fakeChain) WaitForTransaction(_ context.Context, digest string) (*models.TransactionBlock, error) {
	return &models.TransactionBlock{Digest: digest, Checkpoint: "42"}, nil
}

type fakeBackend struct{}

func (fakeBackend) GetAddressBalance(_ context.Context, address string) (*models.AddressBalance, *models.APIError, error) {
	coins := make([]models.CoinEntry, 12)
	for i := range coins {
		coins[i] = models.CoinEntry{CoinType: "0x2::usdc::USDC", Balance: "7"}
	}
	return &models.AddressBalance{Address: address, SuiBalance: "1.5", OtherCoins: coins}, nil, nil
}

func (fakeBackend) GetObject(context.Context) (*models.ObjectFields, *models.APIError, error) {
	return &models.ObjectFields{Admin: "0xad", ID: "0x0b", Balance: "300"}, nil, nil
}

func newTestModel(t *testing.T, chainID string) (Model, *fakeWallet, *fakeChain) {
	t.Helper()
	cfg := config.NewConfig()
	w := &fakeWallet{chain: chainID}
	chain := &fakeChain{}
	detector := &wallet.Detector{Root: filepath.Join(t.TempDir(), "missing")}

	m := NewModel(Deps{
		Connector: w,
		Account:   services.NewAccountService(w, chain, detector),
		Address:   services.NewAddressLookupService(fakeBackend{}, 5),
		Object:    services.NewObjectLookupService(fakeBackend{}, "0x0b"),
		Transfer:  transfer.NewService(cfg, chain, w),
	})
	return m, w, chain
}

func update(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	return next.(Model), cmd
}

func press(k tea.KeyType) tea.KeyMsg {
	return tea.KeyMsg{Type: k}
}

// run executes cmd and feeds its message back into the model
func run(t *testing.T, m Model, cmd tea.Cmd) (Model, tea.Cmd) {
	t.Helper()
	require.NotNil(t, cmd)
	return update(t, m, cmd())
}

func TestTabCyclesPanels(t *testing.T) {
	m, _, _ := newTestModel(t, "sui:testnet")
	assert.Equal(t, WalletPanel, m.active)

	for _, want := range []Panel{AddressPanel, ObjectPanel, TransferPanel, WalletPanel} {
		m, _ = update(t, m, press(tea.KeyTab))
		assert.Equal(t, want, m.active)
	}

	m, _ = update(t, m, press(tea.KeyShiftTab))
	assert.Equal(t, TransferPanel, m.active)
	assert.True(t, m.recipientInput.Focused())
}

func TestQuit(t *testing.T) {
	m, _, _ := newTestModel(t, "sui:testnet")
	m, cmd := update(t, m, runes("q"))
	assert.True(t, m.quit)
	require.NotNil(t, cmd)
	assert.Equal(t, tea.QuitMsg{}, cmd())
	assert.Equal(t, "Shutting down...\n", m.View())
}

func TestConnectAndShowBalance(t *testing.T) {
	m, _, _ := newTestModel(t, "sui:testnet")
	m, _ = update(t, m, m.loadAccount()())
	assert.False(t, m.account.Connected)

	m, cmd := update(t, m, runes("c"))
	assert.True(t, m.accountLoading)
	m, cmd = run(t, m, cmd)
	m, _ = run(t, m, cmd)

	assert.True(t, m.account.Connected)
	assert.Equal(t, "TESTNET", m.account.ChainName)
	assert.Equal(t, "0xa11ce", m.account.Address)
	assert.Contains(t, m.View(), "1.500000000 SUI")

	m, cmd = update(t, m, runes("d"))
	m, _ = run(t, m, cmd)
	assert.False(t, m.account.Connected)
}

func TestInstallGuideToggle(t *testing.T) {
	m, _, _ := newTestModel(t, "sui:testnet")
	m, _ = update(t, m, m.loadAccount()())
	assert.NotContains(t, m.View(), "Binance Wallet")
	assert.Contains(t, m.View(), "Chrome was not found")

	m, _ = update(t, m, runes("g"))
	view := m.View()
	assert.Contains(t, view, "Suiet")
	assert.Contains(t, view, "Binance Wallet")
	assert.Contains(t, view, "Chrome was not found")

	m, _ = update(t, m, runes("g"))
	assert.False(t, m.showGuide)
}

func TestChromeAdvisoryHiddenWhenConnected(t *testing.T) {
	m, w, _ := newTestModel(t, "sui:testnet")
	_, err := w.Connect(context.Background())
	require.NoError(t, err)
	m, _ = update(t, m, m.loadAccount()())

	assert.True(t, m.account.Connected)
	assert.NotContains(t, m.View(), "Chrome was not found")
}

func TestAddressLookupAndPaging(t *testing.T) {
	m, _, _ := newTestModel(t, "sui:testnet")
	m, _ = update(t, m, press(tea.KeyTab))

	_, cmd := update(t, m, press(tea.KeyEnter))
	assert.Nil(t, cmd)

	m.addressInput.SetValue("0xabc")
	m, cmd = update(t, m, press(tea.KeyEnter))
	assert.True(t, m.addressLoading)

	_, again := update(t, m, press(tea.KeyEnter))
	assert.Nil(t, again)

	m, _ = run(t, m, cmd)
	assert.False(t, m.addressLoading)
	require.NotNil(t, m.address.Balance)
	assert.Equal(t, 3, m.addressState.TotalPages())
	assert.Len(t, m.addressPage, 5)
	assert.Contains(t, m.View(), "USDC")

	m, _ = update(t, m, PageChangedMsg{Page: 3})
	assert.Equal(t, 3, m.addressState.CurrentPage)
	assert.Len(t, m.addressPage, 2)

	m, _ = update(t, m, ItemsPerPageChangedMsg{ItemsPerPage: 10})
	assert.Equal(t, 1, m.addressState.CurrentPage)
	assert.Len(t, m.addressPage, 10)

	m, _ = update(t, m, press(tea.KeyDown))
	assert.True(t, m.pager.Focused())
	m, cmd = update(t, m, press(tea.KeyRight))
	m, _ = run(t, m, cmd)
	assert.Equal(t, 2, m.addressState.CurrentPage)
}

func TestObjectFetch(t *testing.T) {
	m, _, _ := newTestModel(t, "sui:testnet")
	m, _ = update(t, m, press(tea.KeyTab))
	m, _ = update(t, m, press(tea.KeyTab))
	assert.Equal(t, ObjectPanel, m.active)

	m, cmd := update(t, m, press(tea.KeyEnter))
	assert.True(t, m.objectLoading)
	m, _ = run(t, m, cmd)
	require.NotNil(t, m.object.Fields)
	assert.Equal(t, "0xad", m.object.Fields.Admin)
	assert.Contains(t, m.View(), "300")
}

func connectedTransferModel(t *testing.T, chainID string) (Model, *fakeChain) {
	t.Helper()
	m, w, chain := newTestModel(t, chainID)
	_, err := w.Connect(context.Background())
	require.NoError(t, err)
	m, _ = update(t, m, m.loadAccount()())

	m, _ = update(t, m, press(tea.KeyShiftTab))
	require.Equal(t, TransferPanel, m.active)
	m.recipientInput.SetValue("0xb0b")
	m.amountInput.SetValue("1")
	return m, chain
}

func TestTransferSuccessRefreshesBalance(t *testing.T) {
	m, chain := connectedTransferModel(t, "sui:testnet")
	before := chain.balanceCalls

	m, cmd := update(t, m, press(tea.KeyEnter))
	assert.True(t, m.transferLoading)

	m, cmd = run(t, m, cmd)
	assert.False(t, m.transferLoading)
	assert.Empty(t, m.alert)
	require.NotNil(t, m.receipt)
	assert.Equal(t, "9XyZ", m.receipt.Digest)
	assert.Equal(t, "https://suiscan.xyz/testnet/tx/9XyZ", m.receipt.ExplorerURL)

	m, cmd = run(t, m, cmd)
	assert.Equal(t, "42", m.confirmed)
	assert.True(t, m.accountLoading)

	m, _ = run(t, m, cmd)
	assert.False(t, m.accountLoading)
	assert.Greater(t, chain.balanceCalls, before+1)
}

func TestTransferOnWrongNetworkShowsAlert(t *testing.T) {
	m, _ := connectedTransferModel(t, "sui:mainnet")

	m, cmd := update(t, m, press(tea.KeyEnter))
	m, _ = run(t, m, cmd)
	assert.Nil(t, m.receipt)
	assert.Contains(t, m.alert, "transaction failed: ")
	assert.Contains(t, m.alert, "wrong network")
}

func TestEstimateGas(t *testing.T) {
	m, _ := connectedTransferModel(t, "sui:testnet")

	m, cmd := update(t, m, press(tea.KeyCtrlE))
	assert.True(t, m.estimating)
	m, _ = run(t, m, cmd)
	assert.False(t, m.estimating)
	require.NotNil(t, m.estimate)
	assert.Equal(t, "0.001", m.estimate.String())
	assert.Contains(t, m.View(), "0.002 SUI")
}

func TestTransferStateMsg(t *testing.T) {
	m, _, _ := newTestModel(t, "sui:testnet")
	m, _ = update(t, m, TransferStateMsg{State: transfer.State{Phase: transfer.Submitting}})
	assert.Equal(t, transfer.Submitting, m.transferState.Phase)
}
