package dump

import (
	"encoding/base64"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/nspcc-dev/neo-go/pkg/core/state"
)

var _encoding = base64.StdEncoding

// contractState is a JSON-encoded information about the dumped contract.
type contractState struct {
	Name  string         `json:"name"`
	State state.Contract `json:"state"`
}

// Creator dumps states of the PeerLedger contracts.
type Creator struct {
	states  []contractState
	storage *os.File
	csv     *csv.Writer
	path    string
}

// NewCreator returns Creator writing the dump with the given ID into dir.
// Resulting Creator should be closed when finished working with it.
//
// NewCreator fails if dump with provided ID already exists.
func NewCreator(dir string, id ID) (*Creator, error) {
	if err := id.validate(); err != nil {
		return nil, fmt.Errorf("invalid dump ID: %w", err)
	}

	statesPath := filepath.Join(dir, id.statesFile())
	if err := checkFileNotExists(statesPath); err != nil {
		return nil, err
	}

	f, err := os.OpenFile(filepath.Join(dir, id.storageFile()), os.O_CREATE|os.O_EXCL|os.O_WRONLY, 0600)
	if err != nil {
		return nil, fmt.Errorf("open file with storage items: %w", err)
	}

	return &Creator{
		storage: f,
		csv:     csv.NewWriter(f),
		path:    statesPath,
	}, nil
}

// AddContract adds given state of the named contract to the dump and returns
// StorageWriter for the contract storage.
func (x *Creator) AddContract(name string, st state.Contract) *StorageWriter {
	x.states = append(x.states, contractState{
		Name:  name,
		State: st,
	})

	return &StorageWriter{
		name: name,
		csv:  x.csv,
	}
}

// Flush writes accumulated contract states and storage items to the file
// system.
func (x *Creator) Flush() error {
	x.csv.Flush()

	err := x.csv.Error()
	if err != nil {
		return fmt.Errorf("flush CSV data: %w", err)
	}

	data, err := json.MarshalIndent(x.states, "", " ")
	if err != nil {
		return fmt.Errorf("encode contract states to JSON: %w", err)
	}

	err = os.WriteFile(x.path, data, 0600)
	if err != nil {
		return fmt.Errorf("write contract states: %w", err)
	}

	return nil
}

// Close releases underlying resources of the Creator and makes it unusable.
func (x *Creator) Close() error {
	return x.storage.Close()
}

// StorageWriter writes storage items of the particular contract.
type StorageWriter struct {
	name string
	csv  *csv.Writer
}

// Write saves given binary key-value into the dump as storage item.
func (x *StorageWriter) Write(key, value []byte) error {
	err := x.csv.Write([]string{
		x.name,
		_encoding.EncodeToString(key),
		_encoding.EncodeToString(value),
	})
	if err != nil {
		return fmt.Errorf("write storage item as CSV data: %w", err)
	}

	return nil
}

func checkFileNotExists(p string) error {
	_, err := os.Stat(p)
	if !os.IsNotExist(err) {
		if err == nil {
			err = os.ErrExist
		}
		return fmt.Errorf("file '%s' absence check failed: %w", p, err)
	}
	return nil
}
