// Package manifest handles huff.toml project configuration.
package manifest

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"

	"github.com/Maddiaa0/go-huff/asm"
)

// Filename is the manifest file name looked up in a project directory.
const Filename = "huff.toml"

// Output formats accepted by [Build].Format.
const (
	FormatHex      = "hex"
	FormatBin      = "bin"
	FormatArtifact = "artifact"
)

// Manifest represents a huff.toml project configuration.
type Manifest struct {
	Project Project `toml:"project"`
	Build   Build   `toml:"build"`

	// Dir is the directory containing the huff.toml file (set at load time).
	Dir string `toml:"-"`
}

// Project contains project metadata.
type Project struct {
	Name    string `toml:"name"`
	Version string `toml:"version"`
}

// Build configures the assembly of deploy bytecode.
type Build struct {
	// Runtime is the hex file holding the runtime payload, relative to Dir.
	Runtime string `toml:"runtime"`

	// Output is where the assembled program is written, relative to Dir.
	Output string `toml:"output"`

	// Format is "hex", "bin" or "artifact". Defaults to "hex".
	Format string `toml:"format"`

	// ShrinkBudget caps the assembler's shrink passes. 0 means the
	// assembler default; negative means unbounded.
	ShrinkBudget int `toml:"shrink-budget"`

	// Cache enables the build cache.
	Cache bool `toml:"cache"`
}

// Load parses a huff.toml file from the given directory.
func Load(dir string) (*Manifest, error) {
	path := filepath.Join(dir, Filename)
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("cannot read %s: %w", path, err)
	}

	var m Manifest
	if err := toml.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("parse error in %s: %w", path, err)
	}
	m.Dir = dir

	if err := m.validate(); err != nil {
		return nil, fmt.Errorf("invalid %s: %w", path, err)
	}
	return &m, nil
}

func (m *Manifest) validate() error {
	switch m.Build.Format {
	case "", FormatHex, FormatBin, FormatArtifact:
	default:
		return fmt.Errorf("unknown build format %q", m.Build.Format)
	}
	return nil
}

// EffectiveFormat returns the configured output format, defaulted.
func (m *Manifest) EffectiveFormat() string {
	if m.Build.Format == "" {
		return FormatHex
	}
	return m.Build.Format
}

// EffectiveBudget maps the manifest's shrink-budget to the assembler's
// convention: unset means the default, negative means unbounded.
func (m *Manifest) EffectiveBudget() int {
	if m.Build.ShrinkBudget == 0 {
		return asm.DefaultShrinkBudget
	}
	if m.Build.ShrinkBudget < 0 {
		return asm.UnboundedShrink
	}
	return m.Build.ShrinkBudget
}

// RuntimePath returns the runtime payload path resolved against Dir.
func (m *Manifest) RuntimePath() string {
	return filepath.Join(m.Dir, m.Build.Runtime)
}

// OutputPath returns the output path resolved against Dir.
func (m *Manifest) OutputPath() string {
	return filepath.Join(m.Dir, m.Build.Output)
}
