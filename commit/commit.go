/*
Package commit 实现押注的承诺哈希

玩家下注时只提交 digest = sha256(secret || 类型标签)，开奖后再公开 secret。
标签把下注类型一并绑死，同一个 secret 换一种类型得到的digest完全不同，
所以开奖后既换不了 secret 也换不了下注类型。
*/
package commit

import (
	"crypto/sha256"
	"crypto/subtle"

	"github.com/turtlecash/baccarat/types"
)

//Commit 计算 (secret, category) 的承诺
func Commit(secret []byte, category int32) []byte {
	h := sha256.New()
	h.Write(secret)
	h.Write([]byte(types.CategoryName(category)))
	return h.Sum(nil)
}

//Verify 校验公开的 (secret, category) 是否和存储的承诺一致
//比较本身不泄露除了匹配与否之外的任何信息
func Verify(secret []byte, category int32, digest []byte) bool {
	if len(digest) != types.CommitmentSize {
		return false
	}
	return subtle.ConstantTimeCompare(Commit(secret, category), digest) == 1
}
