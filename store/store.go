// Package store connects to the data store that persists bookmarks, reading
// statistics and asset preferences
package store

import (
	"errors"
	"time"

	bolt "go.etcd.io/bbolt"

	"github.com/omahapp/mushaf/internal/apperr"
	"github.com/omahapp/mushaf/internal/osutil"
)

const kvBucket = "kv"

var errMushafRunning = &apperr.Error{
	Message: "is mushaf already running? Only one instance can be active at a time",
}

// Client is a BoltDB database client.
type Client struct {
	*bolt.DB
}

func (c *Client) Get(key string) (string, bool, error) {
	var (
		value string
		ok    bool
	)

	err := c.View(func(tx *bolt.Tx) error {
		b := tx.Bucket([]byte(kvBucket)).Get([]byte(key))
		if b != nil {
			// b is only valid for the life of the transaction
			value, ok = string(b), true
		}

		return nil
	})

	return value, ok, err
}

func (c *Client) Set(key, value string) error {
	return c.Update(func(tx *bolt.Tx) error {
		return tx.Bucket([]byte(kvBucket)).Put([]byte(key), []byte(value))
	})
}

func (c *Client) Remove(keys ...string) error {
	return c.Update(func(tx *bolt.Tx) error {
		b := tx.Bucket([]byte(kvBucket))

		for _, k := range keys {
			err := b.Delete([]byte(k))
			if err != nil {
				return err
			}
		}

		return nil
	})
}

// open creates or opens a database and locks it.
func openDB(pathToDB string) (*bolt.DB, error) {
	db, err := bolt.Open(
		pathToDB,
		osutil.DBPermission,
		&bolt.Options{Timeout: 1 * time.Second},
	)
	if err != nil {
		if errors.Is(err, bolt.ErrDatabaseOpen) ||
			errors.Is(err, bolt.ErrTimeout) {
			return nil, errMushafRunning
		}

		return nil, err
	}

	return db, nil
}

// NewClient returns a wrapper to a BoltDB connection.
func NewClient(dbPath string) (*Client, error) {
	db, err := openDB(dbPath)
	if err != nil {
		return nil, err
	}

	err = db.Update(func(tx *bolt.Tx) error {
		_, err = tx.CreateBucketIfNotExists([]byte(kvBucket))
		return err
	})
	if err != nil {
		_ = db.Close()
		return nil, err
	}

	return &Client{
		db,
	}, nil
}
