package params

import (
	_ "embed"
	"fmt"

	"github.com/hashicorp/hcl/v2/hclsimple"
)

//go:embed defaults.hcl
var defaultsHCL []byte

// Load reads and validates a parameter table from an HCL file on disk.
func Load(path string) (*Params, error) {
	var p Params
	if err := hclsimple.DecodeFile(path, nil, &p); err != nil {
		return nil, fmt.Errorf("failed to load parameter table %s: %w", path, err)
	}
	if err := p.validate(); err != nil {
		return nil, err
	}
	return &p, nil
}

// Parse decodes a parameter table from an in-memory HCL document. The
// filename is only used in diagnostics.
func Parse(filename string, src []byte) (*Params, error) {
	var p Params
	if err := hclsimple.Decode(filename, src, nil, &p); err != nil {
		return nil, fmt.Errorf("failed to parse parameter table %s: %w", filename, err)
	}
	if err := p.validate(); err != nil {
		return nil, err
	}
	return &p, nil
}

// Default returns the embedded parameter table. The embedded document is
// part of the build, so a decode failure is a programmer error.
func Default() *Params {
	p, err := Parse("defaults.hcl", defaultsHCL)
	if err != nil {
		panic(fmt.Errorf("embedded parameter table is invalid: %w", err))
	}
	return p
}
