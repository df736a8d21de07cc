// Package catalog loads game title definitions: the currency, bank size,
// certificate limits, stock market shape, trading policy, corporations,
// and private companies of one published game. Definitions are YAML
// documents validated against an embedded JSON Schema before they are
// built into a playable state.
package catalog

import (
	"embed"
	"encoding/json"
	"fmt"
	"os"

	"github.com/santhosh-tekuri/jsonschema/v5"
	"gopkg.in/yaml.v3"

	apperrors "github.com/railbaron/stockround/internal/errors"
)

//go:embed title.schema.json
var schemaSource string

//go:embed titles/*.yaml
var builtinTitles embed.FS

// Title is a parsed game definition.
type Title struct {
	Name             string             `yaml:"name"`
	Currency         string             `yaml:"currency"`
	BankCash         int                `yaml:"bank"`
	StartingCash     []PlayerCountValue `yaml:"starting_cash"`
	CertLimits       []PlayerCountValue `yaml:"cert_limits"`
	SellBuyOrder     string             `yaml:"sell_buy_order"`
	MustSellInBlocks bool               `yaml:"must_sell_in_blocks"`
	// FirstStockRoundSales permits selling during the first stock round;
	// most titles forbid it.
	FirstStockRoundSales bool             `yaml:"first_stock_round_sales"`
	Market               MarketDef        `yaml:"market"`
	Corporations         []CorporationDef `yaml:"corporations"`
	Companies            []CompanyDef     `yaml:"companies"`
	PhaseStatuses        []string         `yaml:"phase_statuses"`
}

// PlayerCountValue maps a player count to a title value, e.g. the
// certificate limit for a four-player game.
type PlayerCountValue struct {
	Players int `yaml:"players"`
	Value   int `yaml:"value"`
}

// MarketDef is the stock market shape: an ascending price ladder and the
// subset usable as par prices.
type MarketDef struct {
	Ladder    []int `yaml:"ladder"`
	ParPrices []int `yaml:"par_prices"`
}

// CorporationDef describes one share company.
type CorporationDef struct {
	Name         string `yaml:"name"`
	FullName     string `yaml:"full_name"`
	ShareSplit   []int  `yaml:"share_split"`
	FloatPercent int    `yaml:"float_percent"`
	BuyMultiple  bool   `yaml:"buy_multiple"`
	HoldingLimit int    `yaml:"holding_limit"`
}

// CompanyDef describes one private company.
type CompanyDef struct {
	Name  string `yaml:"name"`
	Value int    `yaml:"value"`
}

var titleSchema = jsonschema.MustCompileString("title.schema.json", schemaSource)

// Load reads and parses a title definition from a YAML file.
func Load(path string) (*Title, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read title: %w", err)
	}
	return Parse(raw)
}

// LoadBuiltin parses one of the title definitions shipped with the
// binary, e.g. "standard".
func LoadBuiltin(name string) (*Title, error) {
	raw, err := builtinTitles.ReadFile("titles/" + name + ".yaml")
	if err != nil {
		return nil, apperrors.WithMetadata(apperrors.CodeCatalogInvalidTitle, "unknown builtin title "+name, map[string]string{
			"title": name,
		})
	}
	return Parse(raw)
}

// Parse validates a YAML title document against the schema and decodes
// it.
func Parse(raw []byte) (*Title, error) {
	var doc any
	if err := yaml.Unmarshal(raw, &doc); err != nil {
		return nil, apperrors.Wrap(apperrors.CodeCatalogInvalidTitle, "title is not valid YAML", err)
	}
	// Round-trip through JSON so the schema sees JSON-typed values.
	encoded, err := json.Marshal(doc)
	if err != nil {
		return nil, apperrors.Wrap(apperrors.CodeCatalogInvalidTitle, "title is not JSON-representable", err)
	}
	var jsonDoc any
	if err := json.Unmarshal(encoded, &jsonDoc); err != nil {
		return nil, apperrors.Wrap(apperrors.CodeCatalogInvalidTitle, "title is not JSON-representable", err)
	}
	if err := titleSchema.Validate(jsonDoc); err != nil {
		return nil, apperrors.Wrap(apperrors.CodeCatalogInvalidTitle, "title fails schema validation", err)
	}

	var title Title
	if err := yaml.Unmarshal(raw, &title); err != nil {
		return nil, apperrors.Wrap(apperrors.CodeCatalogInvalidTitle, "decode title", err)
	}
	return &title, nil
}

// valueForPlayers finds the entry for a player count.
func valueForPlayers(values []PlayerCountValue, players int) (int, bool) {
	for _, v := range values {
		if v.Players == players {
			return v.Value, true
		}
	}
	return 0, false
}
