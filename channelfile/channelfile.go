// SPDX-License-Identifier: MIT

// Package channelfile reads a channel's sorted units from a YAML or JSON
// document:
//
//	channel: ch-03
//	units:
//	  - label: unit-1
//	    class: normal          # or noise / unclassified
//	    waveforms:
//	      - [0.12, 0.40, -0.31]
//	      - [0.10, 0.38, -0.29]
//
// JSON is decoded by the same YAML decoder; unknown keys are rejected.
package channelfile

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/isoscore/isolation"
)

// Sentinel errors.
var (
	// ErrUnsupportedExtension is returned for files that are not .yaml, .yml or .json.
	ErrUnsupportedExtension = errors.New("channelfile: unsupported extension")

	// ErrNoUnits is returned when the document lists no units.
	ErrNoUnits = errors.New("channelfile: document has no units")
)

// Document is the on-disk layout.
type Document struct {
	Channel string     `yaml:"channel" json:"channel"`
	Units   []UnitSpec `yaml:"units" json:"units"`
}

// UnitSpec is one unit entry of a Document.
type UnitSpec struct {
	Label     string      `yaml:"label" json:"label"`
	Class     string      `yaml:"class" json:"class"`
	Waveforms [][]float64 `yaml:"waveforms" json:"waveforms"`
}

// Channel is a decoded document ready for scoring.
type Channel struct {
	Name  string
	Units []isolation.Unit
}

// Load reads path; the extension selects nothing beyond validation since
// YAML is a superset of JSON.
func Load(path string) (*Channel, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml", ".json":
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedExtension, filepath.Ext(path))
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open channel file: %w", err)
	}
	defer f.Close()

	ch, err := Decode(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	if ch.Name == "" {
		ch.Name = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	}

	return ch, nil
}

// Decode parses one document from r.
func Decode(r io.Reader) (*Channel, error) {
	var doc Document
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, ErrNoUnits
		}

		return nil, fmt.Errorf("parse channel document: %w", err)
	}
	if len(doc.Units) == 0 {
		return nil, ErrNoUnits
	}

	ch := &Channel{Name: strings.TrimSpace(doc.Channel), Units: make([]isolation.Unit, len(doc.Units))}
	for i, u := range doc.Units {
		label := strings.TrimSpace(u.Label)
		if label == "" {
			label = fmt.Sprintf("unit-%d", i)
		}
		ch.Units[i] = isolation.Unit{Label: label, Tag: u.Class, Waveforms: u.Waveforms}
	}

	return ch, nil
}
