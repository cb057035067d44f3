package types

//bet category
const (
	CategoryPlayer = int32(iota + 1)
	CategoryBanker
	CategoryTie
)

//game outcome, supplied by the external shuffle process
const (
	OutcomePlayer = int32(iota + 1)
	OutcomeBanker
	OutcomeTie
)

//bet record status
const (
	BetStatusOpen = int32(iota + 1)
	BetStatusSettled
)

const (
	ListDESC = int32(0)
	ListASC  = int32(1)

	DefaultCount = int32(20)
	MaxCount     = int32(100)
)

const (
	BaccaratX = "baccarat"

	//Coin 资产的最小单位换算，1 coin = 1e8
	Coin = int64(1e8)

	//MaxCoin 单笔操作金额上限
	MaxCoin = int64(1e8 * 1e8)

	//CommitmentSize commitment 固定为32字节
	CommitmentSize = 32
)

var (
	categoryNames = map[int32]string{
		CategoryPlayer: "player",
		CategoryBanker: "banker",
		CategoryTie:    "tie",
	}

	outcomeNames = map[int32]string{
		OutcomePlayer: "player",
		OutcomeBanker: "banker",
		OutcomeTie:    "tie",
	}
)

//CategoryName 下注类型对应的标签，commitment 计算时使用同一套标签
func CategoryName(category int32) string {
	return categoryNames[category]
}

//OutcomeName 开奖结果标签
func OutcomeName(outcome int32) string {
	return outcomeNames[outcome]
}

//CheckCategory category 只能是 player/banker/tie 三选一
func CheckCategory(category int32) bool {
	_, ok := categoryNames[category]
	return ok
}

//CheckOutcome outcome 只能是 player/banker/tie 三选一
func CheckOutcome(outcome int32) bool {
	_, ok := outcomeNames[outcome]
	return ok
}

//CheckAmount 金额必须为正，且不能超过单笔上限
func CheckAmount(amount int64) bool {
	if amount <= 0 || amount >= MaxCoin {
		return false
	}
	return true
}
