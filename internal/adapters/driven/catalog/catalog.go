// Package catalog provides driven.CatalogSource implementations: the
// built-in values list and user-supplied TOML values files.
package catalog

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/pelletier/go-toml/v2"

	"github.com/custodia-labs/valuesort/internal/core/domain"
	"github.com/custodia-labs/valuesort/internal/core/ports/driven"
	"github.com/custodia-labs/valuesort/internal/logger"
)

// Ensure both sources implement the interface.
var (
	_ driven.CatalogSource = (*Builtin)(nil)
	_ driven.CatalogSource = (*File)(nil)
)

// New returns a file source for path, or the built-in source when path is empty.
func New(path string) driven.CatalogSource {
	if strings.TrimSpace(path) == "" {
		return &Builtin{}
	}
	return NewFile(path)
}

// Builtin serves the values compiled into the binary.
type Builtin struct{}

// Values returns the built-in values.
func (b *Builtin) Values() ([]domain.Card, error) {
	return domain.BuiltinValues(), nil
}

// Origin describes the source.
func (b *Builtin) Origin() string {
	return "built-in"
}

// valuesFile is the on-disk shape of a values catalog:
//
//	[[values]]
//	name = "Honesty"
//	desc = "to be honest and truthful"
type valuesFile struct {
	Values []valueEntry `toml:"values"`
}

type valueEntry struct {
	Name string `toml:"name"`
	Desc string `toml:"desc"`
}

// File reads values from a TOML file.
type File struct {
	path string
}

// NewFile creates a source reading path.
func NewFile(path string) *File {
	return &File{path: path}
}

// Values parses the file. Entries without a name are skipped; duplicate
// names are kept but reported.
func (f *File) Values() ([]domain.Card, error) {
	data, err := os.ReadFile(f.path)
	if err != nil {
		return nil, fmt.Errorf("read catalog %s: %w", f.path, err)
	}

	var parsed valuesFile
	if err := toml.Unmarshal(data, &parsed); err != nil {
		var decodeErr *toml.DecodeError
		if errors.As(err, &decodeErr) {
			row, col := decodeErr.Position()
			return nil, fmt.Errorf("parse catalog %s:%d:%d: %w: %s", f.path, row, col, domain.ErrInvalidInput, decodeErr)
		}
		return nil, fmt.Errorf("parse catalog %s: %w: %s", f.path, domain.ErrInvalidInput, err)
	}

	cards := make([]domain.Card, 0, len(parsed.Values))
	seen := make(map[string]bool, len(parsed.Values))
	for i, v := range parsed.Values {
		name := strings.TrimSpace(v.Name)
		if name == "" {
			logger.Warn("catalog %s: entry %d has no name, skipped", f.path, i+1)
			continue
		}
		if seen[name] {
			logger.Warn("catalog %s: duplicate value %q", f.path, name)
		}
		seen[name] = true
		cards = append(cards, domain.Card{Name: name, Desc: strings.TrimSpace(v.Desc)})
	}

	if len(cards) == 0 {
		return nil, fmt.Errorf("catalog %s: %w", f.path, domain.ErrEmptyCatalog)
	}
	logger.Debug("loaded %d values from %s", len(cards), f.path)
	return cards, nil
}

// Origin describes the source.
func (f *File) Origin() string {
	return f.path
}
