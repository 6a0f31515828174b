package scenario

import (
	"fmt"
	"os"

	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"

	"github.com/valleedgar085-rgb/Smart-shopping-list/pkg/domain/entities"
)

// officeDoc and storeDoc mirror the YAML scenario layout. Quantities and
// prices are captured as raw nodes and parsed from their scalar text, so
// decimal values stay exact instead of round-tripping through float64.
type officeDoc struct {
	Name  string               `yaml:"name"`
	Items map[string]yaml.Node `yaml:"items"`
}

type storeDoc struct {
	Name   string               `yaml:"name"`
	Prices map[string]yaml.Node `yaml:"prices"`
}

type scenarioDoc struct {
	Offices []officeDoc `yaml:"offices"`
	Stores  []storeDoc  `yaml:"stores"`
}

// Loader reads offices and stores from a YAML scenario file
type Loader struct{}

// NewLoader creates a new scenario loader
func NewLoader() *Loader {
	return &Loader{}
}

// Load parses a scenario file into offices and stores, preserving the order
// they are listed in.
func (l *Loader) Load(filename string) ([]*entities.Office, []*entities.Store, error) {
	raw, err := os.ReadFile(filename)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open scenario file %s: %w", filename, err)
	}

	var doc scenarioDoc
	if err := yaml.Unmarshal(raw, &doc); err != nil {
		return nil, nil, fmt.Errorf("failed to parse scenario file %s: %w", filename, err)
	}

	offices := make([]*entities.Office, 0, len(doc.Offices))
	for i, entry := range doc.Offices {
		office, err := parseOffice(entry)
		if err != nil {
			return nil, nil, fmt.Errorf("scenario office %d: %w", i+1, err)
		}
		offices = append(offices, office)
	}

	stores := make([]*entities.Store, 0, len(doc.Stores))
	for i, entry := range doc.Stores {
		store, err := parseStore(entry)
		if err != nil {
			return nil, nil, fmt.Errorf("scenario store %d: %w", i+1, err)
		}
		stores = append(stores, store)
	}

	return offices, stores, nil
}

func parseOffice(entry officeDoc) (*entities.Office, error) {
	if entry.Name == "" {
		return nil, fmt.Errorf("office name cannot be empty")
	}

	office := entities.NewOffice(entry.Name)
	for item, node := range entry.Items {
		quantity, err := parseDecimal(node)
		if err != nil {
			return nil, fmt.Errorf("office %q: invalid quantity for %q: %w", entry.Name, item, err)
		}
		if err := office.AddItem(entities.ItemName(item), quantity); err != nil {
			return nil, fmt.Errorf("office %q: %w", entry.Name, err)
		}
	}
	return office, nil
}

func parseStore(entry storeDoc) (*entities.Store, error) {
	if entry.Name == "" {
		return nil, fmt.Errorf("store name cannot be empty")
	}

	store := entities.NewStore(entry.Name)
	for item, node := range entry.Prices {
		price, err := parseDecimal(node)
		if err != nil {
			return nil, fmt.Errorf("store %q: invalid price for %q: %w", entry.Name, item, err)
		}
		if err := store.SetPrice(entities.ItemName(item), price); err != nil {
			return nil, fmt.Errorf("store %q: %w", entry.Name, err)
		}
	}
	return store, nil
}

func parseDecimal(node yaml.Node) (decimal.Decimal, error) {
	if node.Kind != yaml.ScalarNode {
		return decimal.Zero, fmt.Errorf("expected a number, got %s", node.Tag)
	}
	return decimal.NewFromString(node.Value)
}
