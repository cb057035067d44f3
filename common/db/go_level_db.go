package db

import (
	"bytes"
	"path"

	log "github.com/inconshreveable/log15"
	"github.com/syndtr/goleveldb/leveldb"
	"github.com/syndtr/goleveldb/leveldb/errors"
	"github.com/syndtr/goleveldb/leveldb/filter"
	"github.com/syndtr/goleveldb/leveldb/opt"
	"github.com/syndtr/goleveldb/leveldb/util"
)

var llog = log.New("module", "db.goleveldb")

func init() {
	dbCreator := func(name string, dir string, cache int32) (DB, error) {
		return NewGoLevelDB(name, dir, cache)
	}
	registerDBCreator(GoLevelDBBackendStr, dbCreator, false)
}

//GoLevelDB 默认的持久化存储
type GoLevelDB struct {
	db *leveldb.DB
}

func NewGoLevelDB(name string, dir string, cache int32) (*GoLevelDB, error) {
	dbPath := path.Join(dir, name+".db")
	if cache <= 0 {
		cache = 128
	}
	handles := cache
	// Open the db and recover any potential corruptions
	db, err := leveldb.OpenFile(dbPath, &opt.Options{
		OpenFilesCacheCapacity: int(handles),
		BlockCacheCapacity:     int(cache) / 2 * opt.MiB,
		WriteBuffer:            int(cache) / 4 * opt.MiB, // Two of these are used internally
		Filter:                 filter.NewBloomFilter(10),
	})
	if _, corrupted := err.(*errors.ErrCorrupted); corrupted {
		db, err = leveldb.RecoverFile(dbPath, nil)
	}
	if err != nil {
		return nil, err
	}
	return &GoLevelDB{db: db}, nil
}

func (db *GoLevelDB) Get(key []byte) ([]byte, error) {
	res, err := db.db.Get(key, nil)
	if err != nil {
		if err == errors.ErrNotFound {
			return nil, ErrNotFoundInDb
		}
		llog.Error("Get", "error", err)
		return nil, err
	}
	return res, nil
}

func (db *GoLevelDB) Set(key []byte, value []byte) error {
	err := db.db.Put(key, value, nil)
	if err != nil {
		llog.Error("Set", "error", err)
		return err
	}
	return nil
}

func (db *GoLevelDB) Delete(key []byte) error {
	err := db.db.Delete(key, nil)
	if err != nil {
		llog.Error("Delete", "error", err)
		return err
	}
	return nil
}

func (db *GoLevelDB) PrefixScan(prefix []byte) ([][]byte, error) {
	it := db.db.NewIterator(util.BytesPrefix(prefix), nil)
	defer it.Release()

	var values [][]byte
	for it.Next() {
		values = append(values, copyBytes(it.Value()))
	}
	if err := it.Error(); err != nil {
		llog.Error("PrefixScan", "error", err)
		return nil, err
	}
	return values, nil
}

func (db *GoLevelDB) List(prefix, key []byte, count, direction int32) ([][]byte, error) {
	it := db.db.NewIterator(util.BytesPrefix(prefix), nil)
	defer it.Release()

	var seek func() bool
	var next func() bool
	if direction == ListASC {
		next = it.Next
		if len(key) == 0 {
			seek = it.First
		} else {
			//定位到key，下一条才开始输出
			seek = func() bool {
				if !it.Seek(key) {
					return false
				}
				if bytes.Equal(it.Key(), key) {
					return it.Next()
				}
				return true
			}
		}
	} else {
		next = it.Prev
		if len(key) == 0 {
			seek = it.Last
		} else {
			seek = func() bool {
				//Seek 停在 >= key 的位置，反向输出时回退到 key 之前
				if it.Seek(key) {
					return it.Prev()
				}
				return it.Last()
			}
		}
	}

	var values [][]byte
	for ok := seek(); ok; ok = next() {
		values = append(values, copyBytes(it.Value()))
		if count > 0 && int32(len(values)) == count {
			break
		}
	}
	if err := it.Error(); err != nil {
		llog.Error("List", "error", err)
		return nil, err
	}
	return values, nil
}

func (db *GoLevelDB) Close() {
	if err := db.db.Close(); err != nil {
		llog.Error("Close", "error", err)
	}
}
