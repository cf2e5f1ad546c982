package tariff

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Rates holds the price of one unit on a plain weekday and on an elevated day.
type Rates struct {
	Weekday  int `yaml:"weekday"`
	Elevated int `yaml:"elevated"`
}

func (r Rates) pick(elevated bool) int {
	if elevated {
		return r.Elevated
	}

	return r.Weekday
}

// Table is the tariff sheet of the property.
//
// OvernightBase is keyed by adult count from 2 up to BaseCapacity; one or two adults share the
// key 2. Guests above BaseCapacity pay ExtraPerson each, children always pay Child.
type Table struct {
	BaseCapacity  int           `yaml:"base_capacity"`
	OvernightBase map[int]Rates `yaml:"overnight"`
	DayVisitBase  Rates         `yaml:"day_visit"`
	ExtraPerson   Rates         `yaml:"extra_person"`
	Child         int           `yaml:"child"`
}

// DefaultReimbursableDeposit is the damage deposit quoted with every stay and returned on checkout.
const DefaultReimbursableDeposit = 150000

// DefaultTable returns the current rate sheet.
func DefaultTable() *Table {
	return &Table{
		BaseCapacity: 6,
		OvernightBase: map[int]Rates{
			2: {Weekday: 380000, Elevated: 450000},
			3: {Weekday: 430000, Elevated: 520000},
			4: {Weekday: 500000, Elevated: 590000},
			5: {Weekday: 570000, Elevated: 660000},
			6: {Weekday: 640000, Elevated: 730000},
		},
		DayVisitBase: Rates{Weekday: 280000, Elevated: 400000},
		ExtraPerson:  Rates{Weekday: 56000, Elevated: 70000},
		Child:        40000,
	}
}

// LoadTable reads a YAML rate sheet. An empty path yields the default table.
func LoadTable(path string) (*Table, error) {
	if path == "" {
		return DefaultTable(), nil
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read tariff file: %w", err)
	}

	table := &Table{}
	if err = yaml.Unmarshal(raw, table); err != nil {
		return nil, fmt.Errorf("failed to parse tariff file: %w", err)
	}

	if err = table.Validate(); err != nil {
		return nil, err
	}

	return table, nil
}

// Validate checks that every adult count up to the base capacity has a rate.
func (t *Table) Validate() error {
	if t.BaseCapacity < 2 {
		return fmt.Errorf("tariff base capacity must be at least 2, got %d", t.BaseCapacity)
	}

	for people := 2; people <= t.BaseCapacity; people++ {
		rates, ok := t.OvernightBase[people]
		if !ok {
			return fmt.Errorf("tariff has no overnight rate for %d people", people)
		}

		if rates.Weekday < 0 || rates.Elevated < 0 {
			return fmt.Errorf("tariff overnight rate for %d people is negative", people)
		}
	}

	if t.Child < 0 || t.DayVisitBase.Weekday < 0 || t.DayVisitBase.Elevated < 0 || t.ExtraPerson.Weekday < 0 || t.ExtraPerson.Elevated < 0 {
		return fmt.Errorf("tariff rates must not be negative")
	}

	return nil
}
