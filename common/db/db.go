package db

import (
	"errors"
	"fmt"
)

//ErrNotFoundInDb key 不存在
var ErrNotFoundInDb = errors.New("ErrNotFoundInDb")

//KV 状态存储的最小接口
type KV interface {
	Get(key []byte) (value []byte, err error)
	Set(key []byte, value []byte) (err error)
}

//Lister 按前缀分页遍历，direction: ListDESC(0)/ListASC(1)
//key 非空时从 key 的下一条开始，用于翻页
type Lister interface {
	List(prefix, key []byte, count, direction int32) (values [][]byte, err error)
}

//DB 完整的存储接口
type DB interface {
	KV
	Lister
	Delete(key []byte) error
	PrefixScan(prefix []byte) (values [][]byte, err error)
	Close()
}

const (
	ListDESC = int32(0)
	ListASC  = int32(1)
)

const (
	GoLevelDBBackendStr  = "goleveldb"
	MemDBBackendStr      = "memdb"
	GoBadgerDBBackendStr = "gobadgerdb"
)

type dbCreator func(name string, dir string, cache int32) (DB, error)

var backends = map[string]dbCreator{}

func registerDBCreator(backend string, creator dbCreator, force bool) {
	_, ok := backends[backend]
	if !force && ok {
		return
	}
	backends[backend] = creator
}

//NewDB 创建指定backend的存储，backend不支持或打开失败直接panic，和节点启动行为一致
func NewDB(name string, backend string, dir string, cache int32) DB {
	dbCreator, ok := backends[backend]
	if !ok {
		panic(fmt.Sprintf("initializing DB error: unknown backend %s", backend))
	}
	db, err := dbCreator(name, dir, cache)
	if err != nil {
		panic(fmt.Sprintf("initializing DB error: %v", err))
	}
	return db
}
