package services

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kelsos/sui-wallet/internal/models"
	"github.com/kelsos/sui-wallet/internal/wallet"
)

type fakeProvider struct {
	account *models.Account
}

func (f fakeProvider) CurrentAccount() (*models.Account, bool) {
	return f.account, f.account != nil
}

type fakeChain struct {
	balance string
	err     error
}

func (f fakeChain) GetBalance(context.Context, string, string) (*models.ChainBalance, error) {
	if f.err != nil {
		return nil, f.err
	}
	return &models.ChainBalance{CoinType: models.SuiCoinType, TotalBalance: f.balance}, nil
}

func TestSnapshotConnected(t *testing.T) {
	provider := fakeProvider{account: &models.Account{Address: "0xa11ce", Chains: []string{"sui:testnet"}}}
	s := NewAccountService(provider, fakeChain{balance: "1500000000"}, &wallet.Detector{})

	snap := s.Snapshot(context.Background())
	assert.True(t, snap.Connected)
	assert.Equal(t, "TESTNET", snap.ChainName)
	assert.Equal(t, "0xa11ce", snap.Address)
	assert.Equal(t, "1.500000000", snap.Balance)
	assert.Empty(t, snap.Guide.Entries)
}

func TestSnapshotBalanceError(t *testing.T) {
	provider := fakeProvider{account: &models.Account{Address: "0xa11ce", Chains: []string{"sui:mainnet"}}}
	s := NewAccountService(provider, fakeChain{err: errors.New("timeout")}, &wallet.Detector{})

	snap := s.Snapshot(context.Background())
	assert.Equal(t, "MAINNET", snap.ChainName)
	assert.Equal(t, BalanceError, snap.Balance)

	s = NewAccountService(provider, fakeChain{balance: "not-a-number"}, &wallet.Detector{})
	assert.Equal(t, BalanceError, s.Snapshot(context.Background()).Balance)
}

func TestSnapshotDisconnectedShowsGuide(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(root, "Default", "Extensions", wallet.KnownWallets[1].ExtensionID), 0o755))

	s := NewAccountService(fakeProvider{}, fakeChain{}, &wallet.Detector{Root: root})
	snap := s.Snapshot(context.Background())

	assert.False(t, snap.Connected)
	assert.True(t, snap.Guide.ChromeInstalled)
	require.Len(t, snap.Guide.Entries, len(wallet.KnownWallets))
	assert.False(t, snap.Guide.Entries[0].Installed)
	assert.True(t, snap.Guide.Entries[1].Installed)
}
