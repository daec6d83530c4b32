/*
Package contracts provides access to PeerLedger contracts: it compiles them
from sources and reads prebuilt ones.
*/
package contracts

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"

	"github.com/nspcc-dev/neo-go/cli/smartcontract"
	"github.com/nspcc-dev/neo-go/pkg/compiler"
	"github.com/nspcc-dev/neo-go/pkg/config"
	"github.com/nspcc-dev/neo-go/pkg/core/state"
	"github.com/nspcc-dev/neo-go/pkg/io"
	"github.com/nspcc-dev/neo-go/pkg/smartcontract/manifest"
	"github.com/nspcc-dev/neo-go/pkg/smartcontract/nef"
	"github.com/nspcc-dev/neo-go/pkg/util"
)

// Contract directory names. They are also used as contract names in
// configuration.
const (
	CredentialDir  = "credential"
	ReputationDir  = "reputation"
	PublicationDir = "publication"
	ReviewDir      = "review"
	GovernanceDir  = "governance"

	nefName      = "contract.nef"
	manifestName = "manifest.json"
	configName   = "config.yml"
)

// compilerVersion is written into NEF headers of compiled contracts.
const compilerVersion = "0.102.0"

// Contract groups information about Neo contract.
type Contract struct {
	NEF      nef.File
	Manifest manifest.Manifest
}

var (
	errInvalidNEF      = errors.New("invalid NEF")
	errInvalidManifest = errors.New("invalid manifest")

	// deployOrder lists contracts in the order they're supposed to be
	// deployed. Contracts depending on others come after.
	deployOrder = []string{
		CredentialDir,
		ReputationDir,
		PublicationDir,
		ReviewDir,
		GovernanceDir,
	}
)

// DeployOrder returns contract directory names in the order they're supposed
// to be deployed.
func DeployOrder() []string {
	return append([]string(nil), deployOrder...)
}

// Hash returns address of the contract deployed by the sender.
func (c Contract) Hash(sender util.Uint160) util.Uint160 {
	return state.CreateContractHash(sender, c.NEF.Checksum, c.Manifest.Name)
}

// Compile compiles contract sources located in the directory. Contract
// configuration is read from config.yml file of the same directory.
func Compile(dir string) (Contract, error) {
	var c Contract

	// nef.NewFile() cares about version a lot.
	if config.Version == "" {
		config.Version = compilerVersion
	}

	conf, err := smartcontract.ParseContractConfig(filepath.Join(dir, configName))
	if err != nil {
		return c, fmt.Errorf("read contract config: %w", err)
	}

	ne, di, err := compiler.CompileWithOptions(dir, nil, nil)
	if err != nil {
		return c, fmt.Errorf("compile %s: %w", dir, err)
	}

	o := &compiler.Options{}
	o.Name = conf.Name
	o.ContractEvents = conf.Events
	o.DeclaredNamedTypes = conf.NamedTypes
	o.ContractSupportedStandards = conf.SupportedStandards
	o.Permissions = make([]manifest.Permission, len(conf.Permissions))
	for i := range conf.Permissions {
		o.Permissions[i] = manifest.Permission(conf.Permissions[i])
	}
	o.SafeMethods = conf.SafeMethods
	o.Overloads = conf.Overloads
	m, err := compiler.CreateManifest(di, o)
	if err != nil {
		return c, fmt.Errorf("create manifest: %w", err)
	}

	c.NEF = *ne
	c.Manifest = *m

	return c, nil
}

// CompileAll compiles all PeerLedger contracts located in the root directory
// and returns them in deployment order.
func CompileAll(root string) ([]Contract, error) {
	var res = make([]Contract, 0, len(deployOrder))

	for _, dir := range deployOrder {
		c, err := Compile(filepath.Join(root, dir))
		if err != nil {
			return nil, fmt.Errorf("contract %s: %w", dir, err)
		}

		res = append(res, c)
	}

	return res, nil
}

// Read reads prebuilt PeerLedger contracts from the file system and returns
// them in deployment order. Every contract is expected in its own directory
// holding contract.nef and manifest.json files.
func Read(fsys fs.FS) ([]Contract, error) {
	return read(fsys, deployOrder)
}

func read(_fs fs.FS, dirs []string) ([]Contract, error) {
	var res = make([]Contract, 0, len(dirs))

	for i := range dirs {
		c, err := readContractFromDir(_fs, dirs[i])
		if err != nil {
			return nil, fmt.Errorf("read contract %s: %w", dirs[i], err)
		}

		res = append(res, c)
	}

	return res, nil
}

func readContractFromDir(_fs fs.FS, dir string) (Contract, error) {
	var c Contract

	// fs.FS uses "/" even on Windows, so filepath.Join() is not applicable.
	fNEF, err := _fs.Open(dir + "/" + nefName)
	if err != nil {
		return c, fmt.Errorf("open NEF: %w", err)
	}
	defer fNEF.Close()

	fManifest, err := _fs.Open(dir + "/" + manifestName)
	if err != nil {
		return c, fmt.Errorf("open manifest: %w", err)
	}
	defer fManifest.Close()

	bReader := io.NewBinReaderFromIO(fNEF)
	c.NEF.DecodeBinary(bReader)
	if bReader.Err != nil {
		return c, fmt.Errorf("%w: %v", errInvalidNEF, bReader.Err)
	}

	err = json.NewDecoder(fManifest).Decode(&c.Manifest)
	if err != nil {
		return c, fmt.Errorf("%w: %v", errInvalidManifest, err)
	}

	return c, nil
}
