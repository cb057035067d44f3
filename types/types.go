package types

import "encoding/json"

//CasinoConfig 一个部署实例全局唯一的配置，初始化后不再修改
type CasinoConfig struct {
	Title  string `json:"title"`
	Owner  string `json:"owner"`
	MinBet int64  `json:"minBet"`
	MaxBet int64  `json:"maxBet"`
	Asset  string `json:"asset"`
}

//BetRecord 一笔下注的完整状态
// Commitment 在创建后不可变更；Status 只允许 Open -> Settled 单向迁移
type BetRecord struct {
	BetId      string `json:"betId"`
	Player     string `json:"player"`
	Amount     int64  `json:"amount"`
	Category   int32  `json:"category"`
	Commitment []byte `json:"commitment"`
	Status     int32  `json:"status"`
	PlaceTime  int64  `json:"placeTime"`
	SettleTime int64  `json:"settleTime,omitempty"`
	Secret     []byte `json:"secret,omitempty"`
	Outcome    int32  `json:"outcome,omitempty"`
	Payout     int64  `json:"payout,omitempty"`
	Index      int64  `json:"index"`
}

//Account 账户余额，由外部资产账本持有
type Account struct {
	Addr     string `json:"addr"`
	Currency string `json:"currency,omitempty"`
	Balance  int64  `json:"balance"`
}

//BetIndexRecord localDB 索引项，value 中只存 betId
type BetIndexRecord struct {
	BetId string `json:"betId"`
}

//ReplyBetList 分页查询返回
type ReplyBetList struct {
	Bets []*BetRecord `json:"bets"`
}

//Encode 序列化存储结构，编码失败视为程序内部错误
func Encode(v interface{}) []byte {
	data, err := json.Marshal(v)
	if err != nil {
		panic(err)
	}
	return data
}

//Decode 反序列化存储结构
func Decode(data []byte, v interface{}) error {
	return json.Unmarshal(data, v)
}

func (b *BetRecord) GetStatus() int32 {
	if b == nil {
		return 0
	}
	return b.Status
}

func (b *BetRecord) GetPlayer() string {
	if b == nil {
		return ""
	}
	return b.Player
}

func (b *BetRecord) GetAmount() int64 {
	if b == nil {
		return 0
	}
	return b.Amount
}

func (a *Account) GetBalance() int64 {
	if a == nil {
		return 0
	}
	return a.Balance
}
