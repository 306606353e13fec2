package datefmt

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// PhrasebookLoader reads phrasebooks from JSON or YAML files. A file holds a
// single phrasebook or a map of locale code to phrasebook.
type PhrasebookLoader struct {
	paths []string
}

func NewPhrasebookLoader(paths ...string) *PhrasebookLoader {
	return &PhrasebookLoader{paths: append([]string(nil), paths...)}
}

// Load decodes every configured file. Later files override earlier ones for
// the same locale.
func (l *PhrasebookLoader) Load() (map[string]*Phrasebook, error) {
	if l == nil || len(l.paths) == 0 {
		return nil, errors.New("datefmt: no phrasebook paths configured")
	}

	books := make(map[string]*Phrasebook)
	for _, path := range l.paths {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("datefmt: read %s: %w", path, err)
		}

		decoded, err := decodePhrasebookFile(path, data)
		if err != nil {
			return nil, fmt.Errorf("datefmt: decode %s: %w", path, err)
		}

		for locale, book := range decoded {
			if err := book.Validate(); err != nil {
				return nil, fmt.Errorf("datefmt: %s: %w", path, err)
			}
			books[locale] = book
		}
	}

	return books, nil
}

func decodePhrasebookFile(path string, data []byte) (map[string]*Phrasebook, error) {
	ext := strings.ToLower(filepath.Ext(path))

	var unmarshal func([]byte, any) error
	switch ext {
	case ".json":
		unmarshal = json.Unmarshal
	case ".yaml", ".yml":
		unmarshal = yaml.Unmarshal
	default:
		return nil, fmt.Errorf("unsupported extension %s", ext)
	}

	var single Phrasebook
	if err := unmarshal(data, &single); err == nil && single.Locale != "" {
		return map[string]*Phrasebook{normalizeLocale(single.Locale): &single}, nil
	}

	var many map[string]Phrasebook
	if err := unmarshal(data, &many); err != nil {
		return nil, err
	}
	if len(many) == 0 {
		return nil, errors.New("empty phrasebook file")
	}

	result := make(map[string]*Phrasebook, len(many))
	for locale, book := range many {
		book := book
		if locale == "" {
			return nil, fmt.Errorf("empty locale in %s", path)
		}
		if book.Locale == "" {
			book.Locale = locale
		}
		result[normalizeLocale(locale)] = &book
	}
	return result, nil
}
