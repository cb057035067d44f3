package db

import (
	"bytes"
	"sort"
	"sync"

	log "github.com/inconshreveable/log15"
)

var mlog = log.New("module", "db.memdb")

func init() {
	dbCreator := func(name string, dir string, cache int32) (DB, error) {
		return NewGoMemDB(name, dir, cache)
	}
	registerDBCreator(MemDBBackendStr, dbCreator, false)
}

//GoMemDB 内存KV，测试和单进程部署使用
type GoMemDB struct {
	db   map[string][]byte
	lock sync.RWMutex
}

//NewGoMemDB memdb 不需要创建文件
func NewGoMemDB(name string, dir string, cache int32) (*GoMemDB, error) {
	return &GoMemDB{
		db: make(map[string][]byte),
	}, nil
}

func (db *GoMemDB) Get(key []byte) ([]byte, error) {
	db.lock.RLock()
	defer db.lock.RUnlock()

	if entry, ok := db.db[string(key)]; ok {
		return copyBytes(entry), nil
	}
	return nil, ErrNotFoundInDb
}

func (db *GoMemDB) Set(key []byte, value []byte) error {
	db.lock.Lock()
	defer db.lock.Unlock()

	db.db[string(key)] = copyBytes(value)
	return nil
}

func (db *GoMemDB) Delete(key []byte) error {
	db.lock.Lock()
	defer db.lock.Unlock()

	delete(db.db, string(key))
	return nil
}

func (db *GoMemDB) PrefixScan(prefix []byte) ([][]byte, error) {
	db.lock.RLock()
	defer db.lock.RUnlock()

	var values [][]byte
	for _, k := range db.sortedKeys(prefix) {
		values = append(values, copyBytes(db.db[k]))
	}
	return values, nil
}

func (db *GoMemDB) List(prefix, key []byte, count, direction int32) ([][]byte, error) {
	db.lock.RLock()
	defer db.lock.RUnlock()

	keys := db.sortedKeys(prefix)
	if direction == ListDESC {
		for i, j := 0, len(keys)-1; i < j; i, j = i+1, j-1 {
			keys[i], keys[j] = keys[j], keys[i]
		}
	}
	var values [][]byte
	seeking := len(key) > 0
	for _, k := range keys {
		if seeking {
			//翻页查询：定位到key本身，下一条才开始输出
			if bytes.Equal([]byte(k), key) {
				seeking = false
			}
			continue
		}
		values = append(values, copyBytes(db.db[k]))
		if count > 0 && int32(len(values)) == count {
			break
		}
	}
	return values, nil
}

func (db *GoMemDB) sortedKeys(prefix []byte) []string {
	var keys []string
	for k := range db.db {
		if bytes.HasPrefix([]byte(k), prefix) {
			keys = append(keys, k)
		}
	}
	sort.Strings(keys)
	return keys
}

func (db *GoMemDB) Close() {
}

func (db *GoMemDB) Print() {
	db.lock.RLock()
	defer db.lock.RUnlock()

	for key, value := range db.db {
		mlog.Info("Print", "key", key, "value", string(value))
	}
}

func copyBytes(b []byte) (copiedBytes []byte) {
	if b == nil {
		return nil
	}
	copiedBytes = make([]byte, len(b))
	copy(copiedBytes, b)
	return
}
