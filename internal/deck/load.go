package deck

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Load parses a JSON deck document and assigns missing slide ids.
func Load(data []byte) (*Deck, error) {
	var d Deck
	if err := json.Unmarshal(data, &d); err != nil {
		return nil, fmt.Errorf("parsing deck: %w", err)
	}
	assignIDs(&d)
	return &d, nil
}

// LoadFile reads a deck document from disk. Files ending in .yml or .yaml
// are parsed as YAML; everything else is treated as JSON.
func LoadFile(path string) (*Deck, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading deck %s: %w", path, err)
	}

	ext := strings.ToLower(filepath.Ext(path))
	if ext == ".yml" || ext == ".yaml" {
		var d Deck
		if err := yaml.Unmarshal(data, &d); err != nil {
			return nil, fmt.Errorf("parsing deck %s: %w", path, err)
		}
		assignIDs(&d)
		return &d, nil
	}

	d, err := Load(data)
	if err != nil {
		return nil, fmt.Errorf("parsing deck %s: %w", path, err)
	}
	return d, nil
}

// assignIDs gives every slide a stable id of the form "{layout}-{1-based
// index}" when one is absent. Ids are assigned exactly once, at load time,
// and never touched afterwards.
func assignIDs(d *Deck) {
	for i, s := range d.Slides {
		if s == nil {
			s = Slide{}
			d.Slides[i] = s
		}
		if s.ID() != "" {
			continue
		}
		layout := s.Layout()
		if layout == "" {
			layout = LayoutContent
		}
		s["id"] = fmt.Sprintf("%s-%d", layout, i+1)
	}
}
