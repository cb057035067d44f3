package executor

//database operation for the bet records

import (
	"fmt"

	dbm "github.com/turtlecash/baccarat/common/db"
	"github.com/turtlecash/baccarat/types"
)

/*
 一笔下注的状态只有两种：Open(1) -> Settled(2)。

 分页查询接口的实现：
  1.索引建立规则;
     根据状态索引建立： key= status:index
     状态地址索引建立：key= status:addr:index
     value=betId
    index=fmt.Sprintf("%018d", bet.Index)
  2.状态迁移时删除旧状态的索引，以免形成脏数据。
*/

//Key betId to save key
func Key(id string) (key []byte) {
	key = append(key, []byte("mavl-"+types.BaccaratX+"-")...)
	key = append(key, []byte(id)...)
	return key
}

func calcBetStatusIndexPrefix(status int32) []byte {
	return []byte(fmt.Sprintf("LODB-%s-status:%d:", types.BaccaratX, status))
}

func calcBetStatusIndexKey(status int32, index int64) []byte {
	return []byte(fmt.Sprintf("LODB-%s-status:%d:%018d", types.BaccaratX, status, index))
}

func calcBetAddrIndexPrefix(status int32, addr string) []byte {
	return []byte(fmt.Sprintf("LODB-%s-addr:%d:%s:", types.BaccaratX, status, addr))
}

func calcBetAddrIndexKey(status int32, addr string, index int64) []byte {
	return []byte(fmt.Sprintf("LODB-%s-addr:%d:%s:%018d", types.BaccaratX, status, addr, index))
}

func (e *Engine) saveBet(bet *types.BetRecord) {
	err := e.db.Set(Key(bet.BetId), types.Encode(bet))
	if err != nil {
		panic(err)
	}
}

func (e *Engine) readBet(id string) (*types.BetRecord, error) {
	data, err := e.db.Get(Key(id))
	if err != nil {
		if err == dbm.ErrNotFoundInDb {
			return nil, types.ErrBetNotFound
		}
		return nil, err
	}
	var bet types.BetRecord
	err = types.Decode(data, &bet)
	if err != nil {
		return nil, err
	}
	return &bet, nil
}

//addIndex 建立当前状态的索引
func (e *Engine) addIndex(bet *types.BetRecord) {
	value := types.Encode(&types.BetIndexRecord{BetId: bet.BetId})
	if err := e.db.Set(calcBetStatusIndexKey(bet.Status, bet.Index), value); err != nil {
		panic(err)
	}
	if err := e.db.Set(calcBetAddrIndexKey(bet.Status, bet.Player, bet.Index), value); err != nil {
		panic(err)
	}
}

//delIndex 删除旧状态的索引
func (e *Engine) delIndex(status int32, addr string, index int64) {
	if err := e.db.Delete(calcBetStatusIndexKey(status, index)); err != nil {
		glog.Error("delIndex", "status", status, "index", index, "err", err)
	}
	if err := e.db.Delete(calcBetAddrIndexKey(status, addr, index)); err != nil {
		glog.Error("delIndex", "status", status, "addr", addr, "index", index, "err", err)
	}
}

//getBetList 安全批量查询方式,防止因为脏数据导致查询接口奔溃
func (e *Engine) getBetList(betIds []string) []*types.BetRecord {
	var bets []*types.BetRecord
	for _, id := range betIds {
		bet, err := e.readBet(id)
		if err != nil {
			continue
		}
		bets = append(bets, bet)
	}
	return bets
}
