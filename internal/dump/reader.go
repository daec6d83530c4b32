package dump

import (
	"encoding/csv"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/nspcc-dev/neo-go/pkg/core/state"
)

// StorageItem is a single key-value pair of the contract storage.
type StorageItem struct {
	Key, Value []byte
}

// Reader provides access to the dump created by Creator.
type Reader struct {
	states  []contractState
	storage map[string][]StorageItem
}

// Open reads the dump with the given ID from dir.
func Open(dir string, id ID) (*Reader, error) {
	data, err := os.ReadFile(filepath.Join(dir, id.statesFile()))
	if err != nil {
		return nil, fmt.Errorf("read contract states: %w", err)
	}

	var r Reader

	err = json.Unmarshal(data, &r.states)
	if err != nil {
		return nil, fmt.Errorf("decode contract states from JSON: %w", err)
	}

	f, err := os.Open(filepath.Join(dir, id.storageFile()))
	if err != nil {
		return nil, fmt.Errorf("open file with storage items: %w", err)
	}
	defer f.Close()

	r.storage, err = readStorage(f)
	if err != nil {
		return nil, err
	}

	return &r, nil
}

func readStorage(r io.Reader) (map[string][]StorageItem, error) {
	res := make(map[string][]StorageItem)

	c := csv.NewReader(r)
	c.FieldsPerRecord = 3

	for {
		rec, err := c.Read()
		if err != nil {
			if errors.Is(err, io.EOF) {
				return res, nil
			}
			return nil, fmt.Errorf("read next CSV record: %w", err)
		}

		var item StorageItem

		item.Key, err = _encoding.DecodeString(rec[1])
		if err != nil {
			return nil, fmt.Errorf("decode storage item key: %w", err)
		}

		item.Value, err = _encoding.DecodeString(rec[2])
		if err != nil {
			return nil, fmt.Errorf("decode storage item value: %w", err)
		}

		res[rec[0]] = append(res[rec[0]], item)
	}
}

// Contracts returns names of the dumped contracts in the order they were
// added.
func (x *Reader) Contracts() []string {
	res := make([]string, len(x.states))
	for i := range x.states {
		res[i] = x.states[i].Name
	}
	return res
}

// State returns state of the named contract. Second value is false if there
// is no such contract in the dump.
func (x *Reader) State(name string) (state.Contract, bool) {
	for i := range x.states {
		if x.states[i].Name == name {
			return x.states[i].State, true
		}
	}
	return state.Contract{}, false
}

// Storage returns storage items of the named contract in the order they were
// written.
func (x *Reader) Storage(name string) []StorageItem {
	return x.storage[name]
}
