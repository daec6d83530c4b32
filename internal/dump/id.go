package dump

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
)

const (
	sep = "-"

	statesFileSuffix  = "contracts.json"
	storageFileSuffix = "storage.csv"
)

// ID identifies the dump.
type ID struct {
	// Label of the dumped network, e.g. 'testnet'. Must not contain '-'.
	Label string
	// Blockchain height at which the state was pulled.
	Block uint32
}

// String returns hyphen-separated ID fields.
func (x ID) String() string {
	return x.Label + sep + strconv.FormatUint(uint64(x.Block), 10)
}

func (x ID) validate() error {
	switch {
	case x.Label == "":
		return errors.New("empty label")
	case strings.Contains(x.Label, sep):
		return fmt.Errorf("label '%s' contains '%s'", x.Label, sep)
	}
	return nil
}

func (x ID) statesFile() string {
	return x.String() + sep + statesFileSuffix
}

func (x ID) storageFile() string {
	return x.String() + sep + storageFileSuffix
}

// parseStatesFileName decodes ID from the name of file with contract states.
func parseStatesFileName(name string) (ID, bool) {
	if !strings.HasSuffix(name, sep+statesFileSuffix) {
		return ID{}, false
	}

	ss := strings.Split(strings.TrimSuffix(name, sep+statesFileSuffix), sep)
	if len(ss) != 2 || ss[0] == "" {
		return ID{}, false
	}

	n, err := strconv.ParseUint(ss[1], 10, 32)
	if err != nil {
		return ID{}, false
	}

	return ID{Label: ss[0], Block: uint32(n)}, true
}

// List returns IDs of all dumps stored in the given directory sorted by label
// and then by block. Missing directory has no dumps.
func List(dir string) ([]ID, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("read dump directory: %w", err)
	}

	var res []ID

	for i := range entries {
		if entries[i].IsDir() {
			continue
		}

		id, ok := parseStatesFileName(entries[i].Name())
		if !ok {
			continue
		}

		if _, err := os.Stat(filepath.Join(dir, id.storageFile())); err != nil {
			continue
		}

		res = append(res, id)
	}

	sort.Slice(res, func(i, j int) bool {
		if res[i].Label != res[j].Label {
			return res[i].Label < res[j].Label
		}
		return res[i].Block < res[j].Block
	})

	return res, nil
}
