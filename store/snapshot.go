package store

import (
	"encoding/json"
	"fmt"
	"io"

	bolt "go.etcd.io/bbolt"
)

// Export returns every stored key and value.
func (c *Client) Export() (map[string]string, error) {
	out := make(map[string]string)

	err := c.View(func(tx *bolt.Tx) error {
		cur := tx.Bucket([]byte(kvBucket)).Cursor()

		for k, v := cur.First(); k != nil; k, v = cur.Next() {
			out[string(k)] = string(v)
		}

		return nil
	})

	return out, err
}

// Import writes values in a single transaction. Existing keys not present in
// values are left untouched.
func (c *Client) Import(values map[string]string) error {
	return c.Update(func(tx *bolt.Tx) error {
		b := tx.Bucket([]byte(kvBucket))

		for k, v := range values {
			err := b.Put([]byte(k), []byte(v))
			if err != nil {
				return err
			}
		}

		return nil
	})
}

// WriteSnapshot encodes the whole store as an indented JSON object. The
// format matches a key/value dump of the mobile app's storage, so snapshots
// can move in either direction.
func (c *Client) WriteSnapshot(w io.Writer) error {
	values, err := c.Export()
	if err != nil {
		return err
	}

	b, err := json.MarshalIndent(values, "", "  ")
	if err != nil {
		return err
	}

	_, err = fmt.Fprintln(w, string(b))

	return err
}

// ReadSnapshot imports a JSON object produced by WriteSnapshot and returns the
// number of keys written. Keys describing the page images on the exporting
// device are skipped: they only become true on this device through a
// completed download.
func (c *Client) ReadSnapshot(r io.Reader) (int, error) {
	var values map[string]string

	err := json.NewDecoder(r).Decode(&values)
	if err != nil {
		return 0, fmt.Errorf("decoding snapshot: %w", err)
	}

	for _, k := range deviceKeys {
		delete(values, k)
	}

	return len(values), c.Import(values)
}
