/*
Package vault 实现一个赌场配置对应的托管金库

金库地址和出金授权都从配置标识确定性派生，不存在独立保管的密钥。
出金时校验授权是否派生自同一个配置，拿到别的金库的授权没有任何用处。
*/
package vault

import (
	lru "github.com/hashicorp/golang-lru"
	log "github.com/inconshreveable/log15"
	"github.com/mr-tron/base58"
	"github.com/pkg/errors"

	"github.com/turtlecash/baccarat/account"
	"github.com/turtlecash/baccarat/common"
	"github.com/turtlecash/baccarat/types"
)

var vlog = log.New("module", "vault")

var addressCache *lru.Cache

func init() {
	addressCache, _ = lru.New(1024)
}

//Address 金库的托管地址，从配置标识确定性派生
//派生计算量有点大，做一次cache
func Address(cfgID string) string {
	if value, ok := addressCache.Get(cfgID); ok {
		return value.(string)
	}
	hash := common.Sha256([]byte("vault:" + cfgID))
	addr := base58.Encode(hash[:20])
	addressCache.Add(cfgID, addr)
	return addr
}

//Authority 金库的出金能力，只能通过 NewVault 派生获得
type Authority struct {
	vaultAddr string
}

//Vault 托管在途押注资金，1:1 绑定一个 CasinoConfig
type Vault struct {
	cfg  *types.CasinoConfig
	acc  *account.DB
	addr string
}

func NewVault(cfg *types.CasinoConfig, acc *account.DB) *Vault {
	return &Vault{
		cfg:  cfg,
		acc:  acc,
		addr: Address(cfg.ID()),
	}
}

//Addr 金库地址
func (v *Vault) Addr() string {
	return v.addr
}

//Authority 派生本金库的出金授权
func (v *Vault) Authority() Authority {
	return Authority{vaultAddr: v.addr}
}

//Balance 金库当前余额
func (v *Vault) Balance() int64 {
	return v.acc.LoadAccount(v.addr).GetBalance()
}

//EscrowIn 把押注资金从玩家账户划入金库托管
//账本拒绝划转时原样向上传递，由调用方决定是否重试
func (v *Vault) EscrowIn(from string, amount int64) error {
	if err := v.acc.Transfer(from, v.addr, amount); err != nil {
		vlog.Error("EscrowIn", "from", from, "vault", v.addr, "amount", amount, "err", err)
		return errors.Wrap(err, "escrow in")
	}
	return nil
}

//EscrowOut 金库向玩家放款，必须持有本金库派生的授权
//金库余额不足时失败，由调用方保证结算操作整体原子
func (v *Vault) EscrowOut(to string, amount int64, auth Authority) error {
	if auth.vaultAddr != v.addr {
		vlog.Error("EscrowOut", "vault", v.addr, "authority", auth.vaultAddr, "err", types.ErrVaultAuthority)
		return types.ErrVaultAuthority
	}
	if err := v.acc.Transfer(v.addr, to, amount); err != nil {
		vlog.Error("EscrowOut", "vault", v.addr, "to", to, "amount", amount, "err", err)
		return errors.Wrap(err, "escrow out")
	}
	return nil
}
