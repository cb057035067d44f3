/*
Package account 实现押注资产的余额记账
*/
package account

//package for account manger
//1. load from db
//2. save to db
//3. Transfer
//4. Deposit
//5. Account balance query

import (
	"fmt"
	"strings"

	log "github.com/inconshreveable/log15"

	dbm "github.com/turtlecash/baccarat/common/db"
	"github.com/turtlecash/baccarat/types"
)

var alog = log.New("module", "account")

// DB for account
type DB struct {
	db               dbm.KV
	accountKeyPerfix []byte
	symbol           string
}

//NewAccountDB 每种资产一个DB实例
//如果 symbol 中存在 "-", 那么创建失败
func NewAccountDB(symbol string, db dbm.KV) (*DB, error) {
	if strings.ContainsRune(symbol, '-') {
		return nil, types.ErrInvalidParam
	}
	acc := &DB{
		accountKeyPerfix: []byte(SymbolPrefix(symbol)),
		symbol:           symbol,
	}
	acc.SetDB(db)
	return acc, nil
}

func (acc *DB) SetDB(db dbm.KV) *DB {
	acc.db = db
	return acc
}

func (acc *DB) LoadAccount(addr string) *types.Account {
	value, err := acc.db.Get(acc.AccountKey(addr))
	if err != nil {
		return &types.Account{Addr: addr, Currency: acc.symbol}
	}
	var acc1 types.Account
	err = types.Decode(value, &acc1)
	if err != nil {
		panic(err) //数据库已经损坏
	}
	return &acc1
}

//CheckTransfer 只做余额校验，不落盘
func (acc *DB) CheckTransfer(from, to string, amount int64) error {
	if !types.CheckAmount(amount) {
		return types.ErrAmount
	}
	accFrom := acc.LoadAccount(from)
	b := accFrom.GetBalance() - amount
	if b < 0 {
		return types.ErrNoBalance
	}
	return nil
}

//Transfer 单资产余额划转，from和to的变更一起落盘
func (acc *DB) Transfer(from, to string, amount int64) error {
	if !types.CheckAmount(amount) {
		return types.ErrAmount
	}
	accFrom := acc.LoadAccount(from)
	accTo := acc.LoadAccount(to)
	if accFrom.Addr == accTo.Addr {
		return types.ErrSendSameToRecv
	}
	if accFrom.GetBalance()-amount < 0 {
		alog.Error("Transfer", "from", from, "balance", accFrom.GetBalance(), "amount", amount, "err", types.ErrNoBalance)
		return types.ErrNoBalance
	}
	newBalance, err := safeAdd(accTo.GetBalance(), amount)
	if err != nil {
		return err
	}
	accFrom.Balance = accFrom.GetBalance() - amount
	accTo.Balance = newBalance
	acc.SaveAccount(accFrom)
	acc.SaveAccount(accTo)
	return nil
}

//Deposit 外部入金，部署初始化时给玩家和金库注资
func (acc *DB) Deposit(addr string, amount int64) error {
	if !types.CheckAmount(amount) {
		return types.ErrAmount
	}
	acc1 := acc.LoadAccount(addr)
	newBalance, err := safeAdd(acc1.GetBalance(), amount)
	if err != nil {
		return err
	}
	acc1.Balance = newBalance
	acc.SaveAccount(acc1)
	return nil
}

func safeAdd(balance, amount int64) (int64, error) {
	if balance+amount < amount || balance+amount > types.MaxCoin {
		return balance, types.ErrAmount
	}
	return balance + amount, nil
}

func (acc *DB) SaveAccount(acc1 *types.Account) {
	err := acc.db.Set(acc.AccountKey(acc1.Addr), types.Encode(acc1))
	if err != nil {
		panic(err)
	}
}

// AccountKey return the key of address in DB
func (acc *DB) AccountKey(address string) (key []byte) {
	key = append(key, acc.accountKeyPerfix...)
	key = append(key, []byte(address)...)
	return key
}

func SymbolPrefix(symbol string) string {
	return fmt.Sprintf("mavl-coins-%s-", symbol)
}
