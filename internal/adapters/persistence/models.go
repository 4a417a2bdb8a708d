package persistence

import (
	"time"
)

// ItemModel represents the items table
type ItemModel struct {
	Symbol   string  `gorm:"column:symbol;primaryKey"`
	Name     string  `gorm:"column:name"`
	Category string  `gorm:"column:category"`
	Weight   float64 `gorm:"column:weight"`
	Volume   float64 `gorm:"column:volume"`
}

func (ItemModel) TableName() string {
	return "items"
}

// RecipeModel represents the recipes table
type RecipeModel struct {
	Symbol         string              `gorm:"column:symbol;primaryKey"`
	BuildingSymbol string              `gorm:"column:building_symbol;index;not null"`
	TimeMs         int64               `gorm:"column:time_ms;not null"`
	Inputs         []RecipeInputModel  `gorm:"foreignKey:RecipeSymbol;references:Symbol;constraint:OnDelete:CASCADE"`
	Outputs        []RecipeOutputModel `gorm:"foreignKey:RecipeSymbol;references:Symbol;constraint:OnDelete:CASCADE"`
}

func (RecipeModel) TableName() string {
	return "recipes"
}

// RecipeInputModel represents the recipe_inputs table
type RecipeInputModel struct {
	ID           uint    `gorm:"column:id;primaryKey;autoIncrement"`
	RecipeSymbol string  `gorm:"column:recipe_symbol;index;not null"`
	ItemSymbol   string  `gorm:"column:item_symbol;not null"`
	Quantity     float64 `gorm:"column:quantity;not null"`
	Position     int     `gorm:"column:position;not null;default:0"`
}

func (RecipeInputModel) TableName() string {
	return "recipe_inputs"
}

// RecipeOutputModel represents the recipe_outputs table
type RecipeOutputModel struct {
	ID           uint    `gorm:"column:id;primaryKey;autoIncrement"`
	RecipeSymbol string  `gorm:"column:recipe_symbol;index;not null"`
	ItemSymbol   string  `gorm:"column:item_symbol;index;not null"`
	Quantity     float64 `gorm:"column:quantity;not null"`
	Position     int     `gorm:"column:position;not null;default:0"`
}

func (RecipeOutputModel) TableName() string {
	return "recipe_outputs"
}

// BuildingModel represents the buildings table
type BuildingModel struct {
	Symbol      string              `gorm:"column:symbol;primaryKey"`
	Name        string              `gorm:"column:name"`
	Expertise   string              `gorm:"column:expertise"`
	Pioneers    int                 `gorm:"column:pioneers;not null;default:0"`
	Settlers    int                 `gorm:"column:settlers;not null;default:0"`
	Technicians int                 `gorm:"column:technicians;not null;default:0"`
	Engineers   int                 `gorm:"column:engineers;not null;default:0"`
	Scientists  int                 `gorm:"column:scientists;not null;default:0"`
	AreaCost    int                 `gorm:"column:area_cost;not null;default:0"`
	Costs       []BuildingCostModel `gorm:"foreignKey:BuildingSymbol;references:Symbol;constraint:OnDelete:CASCADE"`
}

func (BuildingModel) TableName() string {
	return "buildings"
}

// BuildingCostModel represents the building_costs table
type BuildingCostModel struct {
	ID             uint    `gorm:"column:id;primaryKey;autoIncrement"`
	BuildingSymbol string  `gorm:"column:building_symbol;index;not null"`
	ItemSymbol     string  `gorm:"column:item_symbol;not null"`
	Amount         float64 `gorm:"column:amount;not null"`
	Position       int     `gorm:"column:position;not null;default:0"`
}

func (BuildingCostModel) TableName() string {
	return "building_costs"
}

// PlanetModel represents the planets table
type PlanetModel struct {
	NaturalID   string                `gorm:"column:natural_id;primaryKey"`
	Name        string                `gorm:"column:name;index"`
	Gravity     float64               `gorm:"column:gravity"`
	Pressure    float64               `gorm:"column:pressure"`
	Temperature float64               `gorm:"column:temperature"`
	Surface     bool                  `gorm:"column:surface"`
	Fertility   float64               `gorm:"column:fertility"`
	Resources   []PlanetResourceModel `gorm:"foreignKey:PlanetNaturalID;references:NaturalID;constraint:OnDelete:CASCADE"`
}

func (PlanetModel) TableName() string {
	return "planets"
}

// PlanetResourceModel represents the planet_resources table
type PlanetResourceModel struct {
	ID              uint    `gorm:"column:id;primaryKey;autoIncrement"`
	PlanetNaturalID string  `gorm:"column:planet_natural_id;index;not null"`
	ItemSymbol      string  `gorm:"column:item_symbol;not null"`
	ResourceType    string  `gorm:"column:resource_type;not null"`
	Factor          float64 `gorm:"column:factor;not null"`
}

func (PlanetResourceModel) TableName() string {
	return "planet_resources"
}

// ExchangePriceModel represents the exchange_prices table. Every snapshot is
// kept; readers take the newest per (exchange, item).
type ExchangePriceModel struct {
	ID           uint      `gorm:"column:id;primaryKey;autoIncrement"`
	ExchangeCode string    `gorm:"column:exchange_code;index:idx_exchange_item;not null"`
	ItemSymbol   string    `gorm:"column:item_symbol;index:idx_exchange_item;not null"`
	Timestamp    time.Time `gorm:"column:timestamp;not null"`
	MMBuy        float64   `gorm:"column:mm_buy"`
	MMSell       float64   `gorm:"column:mm_sell"`
	AveragePrice float64   `gorm:"column:average_price"`
	AskAmount    int       `gorm:"column:ask_amount"`
	AskPrice     float64   `gorm:"column:ask_price"`
	AskAvailable int       `gorm:"column:ask_available"`
	BidAmount    int       `gorm:"column:bid_amount"`
	BidPrice     float64   `gorm:"column:bid_price"`
	BidAvailable int       `gorm:"column:bid_available"`
}

func (ExchangePriceModel) TableName() string {
	return "exchange_prices"
}

// WorkforceNeedModel represents the workforce_needs table
type WorkforceNeedModel struct {
	ID            uint    `gorm:"column:id;primaryKey;autoIncrement"`
	WorkforceType string  `gorm:"column:workforce_type;index;not null"`
	ItemSymbol    string  `gorm:"column:item_symbol;not null"`
	Amount        float64 `gorm:"column:amount;not null"`
}

func (WorkforceNeedModel) TableName() string {
	return "workforce_needs"
}
