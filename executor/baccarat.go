/*
Package executor 实现押注的结算引擎

引擎驱动一笔下注的完整生命周期：
  PlaceBet        校验注额边界，押注资金进金库托管，落盘 Open 状态的记录
  RevealAndSettle 校验承诺，查赔付表，金库放款，记录一次性迁移到 Settled

每笔下注独立结算，记录之间没有任何关联。Settled 是终态，
同一笔下注并发开奖时只有一次放款能成功，其余全部返回 ErrAlreadySettled。
*/
package executor

import (
	"sync"
	"time"

	"github.com/google/uuid"
	log "github.com/inconshreveable/log15"
	"github.com/pkg/errors"

	"github.com/turtlecash/baccarat/account"
	"github.com/turtlecash/baccarat/commit"
	dbm "github.com/turtlecash/baccarat/common/db"
	"github.com/turtlecash/baccarat/types"
	"github.com/turtlecash/baccarat/vault"
)

var glog = log.New("module", "execs."+types.BaccaratX)

//Engine 一个赌场配置对应一个引擎实例
type Engine struct {
	cfg   *types.CasinoConfig
	db    dbm.DB
	acc   *account.DB
	vault *vault.Vault
	auth  vault.Authority

	//引擎自己串行化状态迁移，账本划转跟随同一把锁
	mu    sync.Mutex
	index int64
}

//New 从配置构造引擎，账本和金库都挂在同一个存储上
func New(cfg *types.Config, db dbm.DB) (*Engine, error) {
	acc, err := account.NewAccountDB(cfg.Casino.Asset, db)
	if err != nil {
		return nil, err
	}
	v := vault.NewVault(cfg.Casino, acc)
	return &Engine{
		cfg:   cfg.Casino,
		db:    db,
		acc:   acc,
		vault: v,
		auth:  v.Authority(),
		index: time.Now().UnixNano(),
	}, nil
}

//Account 账本句柄，部署初始化注资时使用
func (e *Engine) Account() *account.DB {
	return e.acc
}

//Vault 金库句柄
func (e *Engine) Vault() *vault.Vault {
	return e.vault
}

//PlaceBet 下注
//注额必须落在 [minBet, maxBet] 闭区间内；押注资金先进金库，
//账本拒绝划转时不会产生任何下注记录
func (e *Engine) PlaceBet(player string, amount int64, category int32, commitment []byte) (string, error) {
	if player == "" || !types.CheckCategory(category) || len(commitment) != types.CommitmentSize {
		return "", types.ErrInvalidParam
	}
	if !types.CheckAmount(amount) {
		return "", types.ErrAmount
	}
	if amount < e.cfg.MinBet {
		glog.Error("PlaceBet", "addr", player, "amount", amount, "minBet", e.cfg.MinBet, "err", types.ErrBetTooSmall)
		return "", types.ErrBetTooSmall
	}
	if amount > e.cfg.MaxBet {
		glog.Error("PlaceBet", "addr", player, "amount", amount, "maxBet", e.cfg.MaxBet, "err", types.ErrBetTooLarge)
		return "", types.ErrBetTooLarge
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	if err := e.vault.EscrowIn(player, amount); err != nil {
		glog.Error("PlaceBet.EscrowIn", "addr", player, "amount", amount, "err", err)
		return "", errors.WithMessage(types.ErrEscrowFailed, err.Error())
	}

	e.index++
	bet := &types.BetRecord{
		BetId:      uuid.New().String(),
		Player:     player,
		Amount:     amount,
		Category:   category,
		Commitment: commitment,
		Status:     types.BetStatusOpen,
		PlaceTime:  time.Now().Unix(),
		Index:      e.index,
	}
	e.saveBet(bet)
	e.addIndex(bet)
	glog.Debug("PlaceBet", "betId", bet.BetId, "addr", player, "amount", amount, "category", types.CategoryName(category))
	return bet.BetId, nil
}

//RevealAndSettle 公开secret并结算
//放款失败时记录保持 Open，金库补足后可以重试；
//只有放款成功（包括应付为0）记录才迁移到 Settled
func (e *Engine) RevealAndSettle(betId string, secret []byte, category int32, outcome int32) (int64, error) {
	if !types.CheckCategory(category) || !types.CheckOutcome(outcome) {
		return 0, types.ErrInvalidParam
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	bet, err := e.readBet(betId)
	if err != nil {
		glog.Error("RevealAndSettle", "betId", betId, "err", err)
		return 0, err
	}
	if bet.GetStatus() != types.BetStatusOpen {
		glog.Error("RevealAndSettle", "betId", betId, "err", types.ErrAlreadySettled)
		return 0, types.ErrAlreadySettled
	}
	if bet.Category != category {
		glog.Error("RevealAndSettle", "betId", betId, "declared", types.CategoryName(category),
			"placed", types.CategoryName(bet.Category), "err", types.ErrCategoryMismatch)
		return 0, types.ErrCategoryMismatch
	}
	if !commit.Verify(secret, category, bet.Commitment) {
		glog.Error("RevealAndSettle", "betId", betId, "err", types.ErrCommitmentMismatch)
		return 0, types.ErrCommitmentMismatch
	}

	payout := Payout(bet.Category, outcome, bet.Amount)
	if payout > 0 {
		if err := e.vault.EscrowOut(bet.Player, payout, e.auth); err != nil {
			//不迁移状态，这笔下注可以在金库补足后重新开奖
			glog.Error("RevealAndSettle.EscrowOut", "betId", betId, "addr", bet.Player, "payout", payout, "err", err)
			return 0, errors.WithMessage(types.ErrPayoutTransferFailed, err.Error())
		}
	}

	prevStatus := bet.Status
	prevIndex := bet.Index
	bet.Status = types.BetStatusSettled
	bet.SettleTime = time.Now().Unix()
	bet.Secret = secret
	bet.Outcome = outcome
	bet.Payout = payout
	e.index++
	bet.Index = e.index
	e.saveBet(bet)
	e.delIndex(prevStatus, bet.Player, prevIndex)
	e.addIndex(bet)
	glog.Debug("RevealAndSettle", "betId", betId, "outcome", types.OutcomeName(outcome), "payout", payout)
	return payout, nil
}
