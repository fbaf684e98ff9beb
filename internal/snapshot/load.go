// Package snapshot loads validated tax-year information from YAML
// files. Loading is the validation boundary: everything downstream
// assumes the snapshot is internally consistent and treats it as
// immutable.
package snapshot

import (
	"bytes"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/vk/taxgridgo/internal/model"
)

// Load reads and validates a snapshot file.
func Load(path string) (*model.ValidatedInformation, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read snapshot file: %w", err)
	}
	info, err := Parse(raw)
	if err != nil {
		return nil, fmt.Errorf("invalid snapshot file %q: %w", path, err)
	}
	return info, nil
}

// Parse decodes and validates snapshot YAML. Unknown fields are
// rejected so a typo in a field name cannot silently drop data.
func Parse(raw []byte) (*model.ValidatedInformation, error) {
	dec := yaml.NewDecoder(bytes.NewReader(raw))
	dec.KnownFields(true)

	var info model.ValidatedInformation
	if err := dec.Decode(&info); err != nil {
		return nil, fmt.Errorf("failed to decode snapshot YAML: %w", err)
	}
	if err := validate(&info); err != nil {
		return nil, err
	}
	return &info, nil
}

func validate(info *model.ValidatedInformation) error {
	if info.Year == 0 {
		return fmt.Errorf("snapshot is missing a tax year")
	}
	if !info.FilingStatus.Valid() {
		return fmt.Errorf("unknown filing status %q", info.FilingStatus)
	}
	if info.Taxpayer.SSN == "" {
		return fmt.Errorf("taxpayer is missing an SSN")
	}
	if (info.FilingStatus == model.StatusMarriedJoint || info.FilingStatus == model.StatusMarriedSeparate) && info.Spouse == nil {
		return fmt.Errorf("filing status %q requires a spouse", info.FilingStatus)
	}
	for i, w := range info.Wages {
		if w.Wages < 0 || w.FederalWithholding < 0 {
			return fmt.Errorf("wage statement %d has a negative amount", i)
		}
	}
	for i, d := range info.Dividends {
		if d.Qualified > d.Ordinary {
			return fmt.Errorf("dividend statement %d: qualified dividends exceed ordinary dividends", i)
		}
	}
	if info.ElectItemized && info.Itemized == nil {
		return fmt.Errorf("itemizing elected without itemized deduction data")
	}
	return nil
}
