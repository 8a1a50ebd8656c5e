// Package billfile loads bills for the godutch CLI from TOML or YAML files.
//
// A bill lists the people at the table with one amount each, plus the pooled
// tax and tip:
//
//	title = "Thai night"
//	tax = 0.80
//	tip = 1.20
//
//	[[people]]
//	name = "Alice"
//	amount = 3.00
//
// For settle the amount is what the person paid; for tiptax it is their
// subtotal before tax and tip. A person without a name is called
// "Person N" after their position.
package billfile

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"github.com/mmynk/godutch/internal/calculator"
	"github.com/mmynk/godutch/internal/models"
)

// ErrUnsupportedFormat is returned for files that are neither TOML nor YAML.
var ErrUnsupportedFormat = errors.New("unsupported bill file format")

// Person is one row of a bill.
type Person struct {
	Name   string  `toml:"name" yaml:"name"`
	Amount float64 `toml:"amount" yaml:"amount"`
}

// Bill is the decoded contents of a bill file.
type Bill struct {
	Title  string   `toml:"title" yaml:"title"`
	Tax    float64  `toml:"tax" yaml:"tax"`
	Tip    float64  `toml:"tip" yaml:"tip"`
	People []Person `toml:"people" yaml:"people"`
}

// Load reads a bill, picking the decoder from the file extension:
// .toml, or .yaml/.yml.
func Load(path string) (Bill, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Bill{}, fmt.Errorf("reading bill: %w", err)
	}

	var b Bill
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		if err := toml.Unmarshal(data, &b); err != nil {
			return Bill{}, fmt.Errorf("parsing bill: %w", err)
		}
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &b); err != nil {
			return Bill{}, fmt.Errorf("parsing bill: %w", err)
		}
	default:
		return Bill{}, fmt.Errorf("%w: %s", ErrUnsupportedFormat, path)
	}

	if err := b.validate(); err != nil {
		return Bill{}, fmt.Errorf("invalid bill %s: %w", path, err)
	}
	return b, nil
}

func (b Bill) validate() error {
	if b.Tax < 0 || b.Tip < 0 {
		return errors.New("tax and tip must not be negative")
	}
	for i, p := range b.People {
		if p.Amount < 0 {
			return fmt.Errorf("person %d: amount must not be negative", i+1)
		}
	}
	return nil
}

// Participants returns the people as go-dutch participants, amount = paid.
func (b Bill) Participants() []models.Participant {
	var out []models.Participant
	for _, p := range b.People {
		out = calculator.AddParticipant(out)
		last := &out[len(out)-1]
		if name := strings.TrimSpace(p.Name); name != "" {
			last.Name = name
		}
		last.AmountPaid = p.Amount
	}
	return out
}

// Items returns the people as line items numbered from 1, amount = subtotal.
func (b Bill) Items() []models.LineItem {
	var sheet models.Sheet
	for _, p := range b.People {
		sheet, _ = calculator.AddRow(sheet)
		last := &sheet.Items[len(sheet.Items)-1]
		if name := strings.TrimSpace(p.Name); name != "" {
			last.Name = name
		}
		last.Subtotal = p.Amount
	}
	return sheet.Items
}
