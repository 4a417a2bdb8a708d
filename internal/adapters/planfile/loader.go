package planfile

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/andrescamacho/prun-cogm/internal/domain/cost"
	"github.com/andrescamacho/prun-cogm/internal/domain/production"
	"github.com/andrescamacho/prun-cogm/internal/infrastructure/config"
)

// empireFile is the YAML layout of an empire plan
type empireFile struct {
	Name              string             `yaml:"name"`
	Planets           []planetFile       `yaml:"planets" validate:"required,min=1,dive"`
	MaterialBuyPrices map[string]float64 `yaml:"material_buy_prices" validate:"dive,keys,required,endkeys,gt=0"`
}

type planetFile struct {
	NaturalID string         `yaml:"natural_id" validate:"required_without=Name"`
	Name      string         `yaml:"name"`
	Program   string         `yaml:"program" validate:"omitempty,expertise"`
	Experts   map[string]int `yaml:"experts" validate:"dive,keys,expertise,endkeys,min=0"`
	Recipes   []stepFile     `yaml:"recipes" validate:"required,min=1,dive"`
}

type stepFile struct {
	BuildingSymbol string `yaml:"building_symbol" validate:"required"`
	RecipeSymbol   string `yaml:"recipe_symbol" validate:"required_without=ItemSymbol"`
	ItemSymbol     string `yaml:"item_symbol"`
}

// LoadFile reads an empire plan from a YAML file
func LoadFile(path string) (*cost.EmpirePlan, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read plan file: %w", err)
	}
	return Load(bytes.NewReader(data))
}

// Load decodes and validates an empire plan. Unknown keys are rejected.
func Load(r io.Reader) (*cost.EmpirePlan, error) {
	decoder := yaml.NewDecoder(r)
	decoder.KnownFields(true)

	var file empireFile
	if err := decoder.Decode(&file); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("plan file is empty")
		}
		return nil, fmt.Errorf("failed to parse plan file: %w", err)
	}

	if err := config.NewValidator().Validate(&file); err != nil {
		return nil, fmt.Errorf("invalid plan file: %w", err)
	}

	return file.toDomain()
}

func (f *empireFile) toDomain() (*cost.EmpirePlan, error) {
	plan := &cost.EmpirePlan{
		Name:              f.Name,
		Planets:           make([]cost.PlanetPlan, 0, len(f.Planets)),
		MaterialBuyPrices: make(map[string]float64, len(f.MaterialBuyPrices)),
	}
	for item, price := range f.MaterialBuyPrices {
		plan.MaterialBuyPrices[strings.TrimSpace(item)] = price
	}

	for _, p := range f.Planets {
		experts, err := production.NewExperts(p.Experts)
		if err != nil {
			return nil, err
		}

		identifier := p.NaturalID
		if identifier == "" {
			identifier = p.Name
		}

		planetPlan := cost.PlanetPlan{
			Planet:  identifier,
			Program: p.Program,
			Experts: experts,
			Steps:   make([]cost.ProductionStep, 0, len(p.Recipes)),
		}
		for _, step := range p.Recipes {
			planetPlan.Steps = append(planetPlan.Steps, cost.ProductionStep{
				BuildingSymbol: step.BuildingSymbol,
				RecipeSymbol:   step.RecipeSymbol,
				ItemSymbol:     step.ItemSymbol,
			})
		}
		plan.Planets = append(plan.Planets, planetPlan)
	}

	return plan, nil
}
