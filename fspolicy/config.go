package fspolicy

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

const defaultName = ".syncpath.yaml"

var (
	// ErrMissingConfig means no readable policy file exists at the path.
	ErrMissingConfig = errors.New("missing policy configuration")
	// ErrInvalidConfig means the file exists but its contents do not parse.
	ErrInvalidConfig = errors.New("invalid policy configuration")
)

type tableProduct struct {
	Policies map[string]policyProduct `yaml:"policies"`
}

// policyProduct mirrors Policy with optional fields, so a file can override
// a single knob without restating the rest.
type policyProduct struct {
	Forbidden          *string   `yaml:"forbidden"`
	Controls           *bool     `yaml:"controls"`
	CaseInsensitive    *bool     `yaml:"case_insensitive"`
	Reserved           *[]string `yaml:"reserved"`
	MaxComponentLength *int      `yaml:"max_component_length"`
}

// ReadTable loads policy overrides from fp, which may be a folder holding a
// .syncpath.yaml file, and overlays them onto the default table. Keys are
// filesystem kind names; only the fields present in the file change.
func ReadTable(fp string) (Table, error) {
	info, err := os.Stat(fp)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMissingConfig, err)
	}
	if info.IsDir() {
		fp = filepath.Join(fp, defaultName)
	}
	data, err := os.ReadFile(fp)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMissingConfig, err)
	}
	var prod tableProduct
	if err := yaml.Unmarshal(data, &prod); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	if len(prod.Policies) == 0 {
		return nil, fmt.Errorf("%w: empty contents", ErrInvalidConfig)
	}
	table := DefaultTable()
	for key, overrides := range prod.Policies {
		kind, err := KindString(key)
		if err != nil {
			return nil, fmt.Errorf("%w: unknown filesystem %q", ErrInvalidConfig, key)
		}
		pol := table[kind]
		if v := overrides.Forbidden; v != nil {
			pol.Forbidden = *v
		}
		if v := overrides.Controls; v != nil {
			pol.Controls = *v
		}
		if v := overrides.CaseInsensitive; v != nil {
			pol.CaseInsensitive = *v
		}
		if v := overrides.Reserved; v != nil {
			pol.Reserved = *v
		}
		if v := overrides.MaxComponentLength; v != nil {
			pol.MaxComponentLength = *v
		}
		table[kind] = pol
	}
	return table, nil
}
