package vault

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/turtlecash/baccarat/account"
	"github.com/turtlecash/baccarat/common/db"
	"github.com/turtlecash/baccarat/types"
)

var player = "14ZTV2wHG3uPHnA5cBJmNxAxxvbzS7Z5mE"

func newTestVault(t *testing.T) (*Vault, *account.DB) {
	storedb, err := db.NewGoMemDB("gomemdb", t.TempDir(), 128)
	require.NoError(t, err)
	acc, err := account.NewAccountDB("turtle", storedb)
	require.NoError(t, err)
	cfg := &types.CasinoConfig{
		Title:  "baccarat",
		Owner:  "owner",
		MinBet: 1,
		MaxBet: 1000 * types.Coin,
		Asset:  "turtle",
	}
	return NewVault(cfg, acc), acc
}

func TestAddressDeterministic(t *testing.T) {
	cfg := &types.CasinoConfig{Title: "baccarat", Owner: "owner", Asset: "turtle"}
	assert.Equal(t, Address(cfg.ID()), Address(cfg.ID()))

	other := &types.CasinoConfig{Title: "baccarat", Owner: "other", Asset: "turtle"}
	assert.NotEqual(t, Address(cfg.ID()), Address(other.ID()))
}

func TestEscrowRoundTrip(t *testing.T) {
	v, acc := newTestVault(t)
	require.NoError(t, acc.Deposit(player, 100*types.Coin))

	require.NoError(t, v.EscrowIn(player, 30*types.Coin))
	assert.Equal(t, 30*types.Coin, v.Balance())
	assert.Equal(t, 70*types.Coin, acc.LoadAccount(player).Balance)

	require.NoError(t, v.EscrowOut(player, 30*types.Coin, v.Authority()))
	assert.Equal(t, int64(0), v.Balance())
	assert.Equal(t, 100*types.Coin, acc.LoadAccount(player).Balance)
}

func TestEscrowInNoBalance(t *testing.T) {
	v, _ := newTestVault(t)

	err := v.EscrowIn(player, 10*types.Coin)
	require.Error(t, err)
	assert.Equal(t, types.ErrNoBalance, errors.Cause(err))
	assert.Equal(t, int64(0), v.Balance())
}

func TestEscrowOutInsufficientVault(t *testing.T) {
	v, acc := newTestVault(t)
	require.NoError(t, acc.Deposit(player, 10*types.Coin))
	require.NoError(t, v.EscrowIn(player, 10*types.Coin))

	err := v.EscrowOut(player, 20*types.Coin, v.Authority())
	require.Error(t, err)
	assert.Equal(t, types.ErrNoBalance, errors.Cause(err))
	//失败不改变余额
	assert.Equal(t, 10*types.Coin, v.Balance())
}

//拿别的金库派生的授权出金必须被拒绝
func TestEscrowOutForeignAuthority(t *testing.T) {
	v, acc := newTestVault(t)
	require.NoError(t, acc.Deposit(player, 10*types.Coin))
	require.NoError(t, v.EscrowIn(player, 10*types.Coin))

	otherCfg := &types.CasinoConfig{Title: "baccarat", Owner: "other", Asset: "turtle"}
	other := NewVault(otherCfg, acc)

	err := v.EscrowOut(player, 5*types.Coin, other.Authority())
	assert.Equal(t, types.ErrVaultAuthority, err)
	assert.Equal(t, 10*types.Coin, v.Balance())
}
