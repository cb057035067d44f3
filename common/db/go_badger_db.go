package db

import (
	"bytes"

	"github.com/dgraph-io/badger"
	log "github.com/inconshreveable/log15"
)

var blog = log.New("module", "db.gobadgerdb")

func init() {
	dbCreator := func(name string, dir string, cache int32) (DB, error) {
		return NewGoBadgerDB(name, dir, cache)
	}
	registerDBCreator(GoBadgerDBBackendStr, dbCreator, false)
}

//GoBadgerDB 可选的持久化存储
type GoBadgerDB struct {
	db *badger.DB
}

func NewGoBadgerDB(name string, dir string, cache int32) (*GoBadgerDB, error) {
	opts := badger.DefaultOptions(dir)
	opts.Logger = nil

	db, err := badger.Open(opts)
	if err != nil {
		return nil, err
	}
	return &GoBadgerDB{db: db}, nil
}

func (db *GoBadgerDB) Get(key []byte) ([]byte, error) {
	var val []byte
	err := db.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(key)
		if err != nil {
			return err
		}
		val, err = item.ValueCopy(nil)
		return err
	})
	if err == badger.ErrKeyNotFound {
		return nil, ErrNotFoundInDb
	}
	if err != nil {
		blog.Error("Get", "error", err)
		return nil, err
	}
	return val, nil
}

func (db *GoBadgerDB) Set(key []byte, value []byte) error {
	err := db.db.Update(func(txn *badger.Txn) error {
		return txn.Set(key, value)
	})
	if err != nil {
		blog.Error("Set", "error", err)
	}
	return err
}

func (db *GoBadgerDB) Delete(key []byte) error {
	err := db.db.Update(func(txn *badger.Txn) error {
		return txn.Delete(key)
	})
	if err != nil {
		blog.Error("Delete", "error", err)
	}
	return err
}

func (db *GoBadgerDB) PrefixScan(prefix []byte) ([][]byte, error) {
	var values [][]byte
	err := db.db.View(func(txn *badger.Txn) error {
		it := txn.NewIterator(badger.DefaultIteratorOptions)
		defer it.Close()
		for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
			value, err := it.Item().ValueCopy(nil)
			if err != nil {
				return err
			}
			values = append(values, value)
		}
		return nil
	})
	if err != nil {
		blog.Error("PrefixScan", "error", err)
		return nil, err
	}
	return values, nil
}

func (db *GoBadgerDB) List(prefix, key []byte, count, direction int32) ([][]byte, error) {
	var values [][]byte
	err := db.db.View(func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		if direction == ListDESC {
			opts.Reverse = true
		}
		it := txn.NewIterator(opts)
		defer it.Close()

		seek := key
		if len(seek) == 0 {
			seek = prefix
			if direction == ListDESC {
				//反向迭代需要从前缀区间的末尾开始
				seek = append(copyBytes(prefix), 0xff)
			}
		}
		it.Seek(seek)
		if len(key) > 0 && it.ValidForPrefix(prefix) && bytes.Equal(it.Item().Key(), key) {
			//翻页查询从key的下一条开始
			it.Next()
		}
		var i int32
		for ; it.ValidForPrefix(prefix); it.Next() {
			value, err := it.Item().ValueCopy(nil)
			if err != nil {
				return err
			}
			values = append(values, value)
			i++
			if count > 0 && i == count {
				break
			}
		}
		return nil
	})
	if err != nil {
		blog.Error("List", "error", err)
		return nil, err
	}
	return values, nil
}

func (db *GoBadgerDB) Close() {
	if err := db.db.Close(); err != nil {
		blog.Error("Close", "error", err)
	}
}
