package executor

import (
	"github.com/shopspring/decimal"

	"github.com/turtlecash/baccarat/types"
)

//赔付表：对 (下注类型 x 开奖结果) 全量定义，未命中的组合一律为0
//banker 命中按 1.95 赔付，不足最小资产单位的部分向零截断
//banker 对 tie 没有退注，整注算输，沿用原始赔付表
var payoutMultiplier = map[int32]map[int32]decimal.Decimal{
	types.CategoryPlayer: {
		types.OutcomePlayer: decimal.NewFromInt(2),
		types.OutcomeBanker: decimal.Zero,
		types.OutcomeTie:    decimal.Zero,
	},
	types.CategoryBanker: {
		types.OutcomePlayer: decimal.Zero,
		types.OutcomeBanker: decimal.New(195, -2),
		types.OutcomeTie:    decimal.Zero,
	},
	types.CategoryTie: {
		types.OutcomePlayer: decimal.Zero,
		types.OutcomeBanker: decimal.Zero,
		types.OutcomeTie:    decimal.NewFromInt(8),
	},
}

//Payout 计算应付金额，纯函数
func Payout(category, outcome int32, stake int64) int64 {
	m, ok := payoutMultiplier[category][outcome]
	if !ok {
		return 0
	}
	return decimal.NewFromInt(stake).Mul(m).Floor().IntPart()
}
