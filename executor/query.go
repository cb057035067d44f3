package executor

import (
	"github.com/turtlecash/baccarat/types"
)

//QueryBetById 按betId查询
func (e *Engine) QueryBetById(betId string) (*types.BetRecord, error) {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.readBet(betId)
}

//ListBetsByStatusAndPlayer 分页查询
//addr 为空时按状态查全部；index 为0时查第一页，否则从 index 的下一条开始
func (e *Engine) ListBetsByStatusAndPlayer(status int32, addr string, count int32, index int64, direction int32) (*types.ReplyBetList, error) {
	switch status {
	case types.BetStatusOpen, types.BetStatusSettled:
	default:
		return nil, types.ErrInvalidParam
	}
	if count <= 0 || count > types.MaxCount {
		count = types.DefaultCount
	}
	if direction != types.ListASC {
		direction = types.ListDESC
	}

	var prefix []byte
	var key []byte
	if addr == "" {
		prefix = calcBetStatusIndexPrefix(status)
		if index != 0 {
			key = calcBetStatusIndexKey(status, index)
		}
	} else {
		prefix = calcBetAddrIndexPrefix(status, addr)
		if index != 0 {
			key = calcBetAddrIndexKey(status, addr, index)
		}
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	values, err := e.db.List(prefix, key, count, direction)
	if err != nil {
		return nil, err
	}
	var betIds []string
	for _, value := range values {
		var record types.BetIndexRecord
		if err := types.Decode(value, &record); err != nil {
			continue
		}
		betIds = append(betIds, record.BetId)
	}
	return &types.ReplyBetList{Bets: e.getBetList(betIds)}, nil
}
