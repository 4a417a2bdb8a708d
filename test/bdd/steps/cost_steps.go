package steps

import (
	"context"
	"errors"
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/cucumber/godog"

	"github.com/andrescamacho/prun-cogm/internal/adapters/planfile"
	"github.com/andrescamacho/prun-cogm/internal/application/cost/queries"
	"github.com/andrescamacho/prun-cogm/internal/application/cost/services"
	"github.com/andrescamacho/prun-cogm/internal/application/logging"
	"github.com/andrescamacho/prun-cogm/internal/application/mediator"
	"github.com/andrescamacho/prun-cogm/internal/domain/cost"
	"github.com/andrescamacho/prun-cogm/internal/domain/production"
	"github.com/andrescamacho/prun-cogm/test/helpers"
)

// seededAt is the timestamp of the seeded exchange snapshots
var seededAt = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

// costContext drives the cost queries against the shared SQLite database
type costContext struct {
	repos    *helpers.TestRepositories
	mediator mediator.Mediator
	logger   *helpers.RecordingLogger

	// Query inputs
	experts        production.Experts
	program        string
	priceOverrides map[string]float64
	plan           *cost.EmpirePlan

	// State tracking for assertions
	lastError    error
	lastRunCost  *cost.CalculatedRecipeCost
	lastCOGM     *cost.CalculatedRecipeOutputCOGM
	lastRecipe   *production.Recipe
	lastEmpire   *cost.CalculatedEmpireCOGM
	lastProgress *queries.ExpertProgressResponse
}

func (c *costContext) reset() error {
	if err := helpers.TruncateAllTables(); err != nil {
		return fmt.Errorf("failed to truncate tables: %w", err)
	}

	c.repos = helpers.NewTestRepositories()
	c.mediator = mediator.NewMediator()
	c.logger = helpers.NewRecordingLogger()
	c.experts = production.Experts{}
	c.program = ""
	c.priceOverrides = map[string]float64{}
	c.plan = nil
	c.lastError = nil
	c.lastRunCost = nil
	c.lastCOGM = nil
	c.lastRecipe = nil
	c.lastEmpire = nil
	c.lastProgress = nil

	return queries.RegisterHandlers(c.mediator, queries.Dependencies{
		Catalog:         c.repos.Catalog,
		Planets:         c.repos.Planets,
		Workforce:       c.repos.Workforce,
		Prices:          c.repos.Prices,
		DaysSinceRepair: services.DefaultDaysSinceRepair,
	})
}

func (c *costContext) send(request mediator.Request) (mediator.Response, error) {
	ctx := logging.WithLogger(context.Background(), c.logger)
	return c.mediator.Send(ctx, request)
}

// ============================================================================
// Given Steps
// ============================================================================

func (c *costContext) theCostCatalogIsSeeded() error {
	return c.repos.SeedCostFixture(context.Background(), seededAt)
}

func (c *costContext) anAlternativeRecipe(symbol, building string, inQty float64, inItem string, outQty float64, outItem string, hours int) error {
	recipe, err := production.NewRecipe(
		symbol,
		building,
		time.Duration(hours)*time.Hour,
		[]production.RecipeLine{{ItemSymbol: inItem, Quantity: inQty}},
		[]production.RecipeLine{{ItemSymbol: outItem, Quantity: outQty}},
	)
	if err != nil {
		return err
	}
	return c.repos.Catalog.SaveRecipe(context.Background(), recipe)
}

func (c *costContext) theExchangeQuotesAt(itemSymbol string, price float64) error {
	return c.repos.SetAskPrice(context.Background(), itemSymbol, price, seededAt.Add(time.Hour))
}

func (c *costContext) aManualPriceFor(price float64, itemSymbol string) error {
	c.priceOverrides[itemSymbol] = price
	return nil
}

func (c *costContext) expertsAreAssigned(count int, category string) error {
	expertise, err := production.ParseExpertise(category)
	if err != nil {
		return err
	}
	c.experts[expertise] += count
	return nil
}

func (c *costContext) theCOGCProgramIs(program string) error {
	c.program = program
	return nil
}

func (c *costContext) theEmpirePlan(doc *godog.DocString) error {
	plan, err := planfile.Load(strings.NewReader(doc.Content))
	if err != nil {
		return err
	}
	c.plan = plan
	return nil
}

// ============================================================================
// When Steps
// ============================================================================

func (c *costContext) iCalculateTheRunCostOfOnPlanet(itemSymbol, planet string) error {
	response, err := c.send(&queries.CalculateRecipeCostQuery{
		ItemSymbol:     itemSymbol,
		Planet:         planet,
		Experts:        c.experts,
		Program:        c.program,
		ExchangeCode:   helpers.FixtureExchange,
		PriceOverrides: c.priceOverrides,
	})
	c.lastError = err
	if err == nil {
		c.lastRunCost = response.(*queries.CalculateRecipeCostResponse).Cost
	}
	return nil
}

func (c *costContext) iCalculateTheCOGMOfOnPlanet(itemSymbol, planet string) error {
	response, err := c.send(&queries.CalculateCOGMQuery{
		ItemSymbol:     itemSymbol,
		Planet:         planet,
		Experts:        c.experts,
		Program:        c.program,
		ExchangeCode:   helpers.FixtureExchange,
		PriceOverrides: c.priceOverrides,
	})
	c.lastError = err
	if err == nil {
		c.lastCOGM = response.(*queries.CalculateCOGMResponse).COGM
	}
	return nil
}

func (c *costContext) iCalculateTheCOGMOfWithoutAPlanet(itemSymbol string) error {
	return c.iCalculateTheCOGMOfOnPlanet(itemSymbol, "")
}

func (c *costContext) iFindTheRecipeForOnPlanet(itemSymbol, planet string) error {
	response, err := c.send(&queries.FindRecipeQuery{ItemSymbol: itemSymbol, Planet: planet})
	c.lastError = err
	if err == nil {
		c.lastRecipe = response.(*queries.FindRecipeResponse).Recipe
	}
	return nil
}

func (c *costContext) iEvaluateTheEmpire() error {
	if c.plan == nil {
		return fmt.Errorf("no empire plan given")
	}
	response, err := c.send(&queries.CalculateEmpireCOGMQuery{Plan: c.plan, ExchangeCode: helpers.FixtureExchange})
	c.lastError = err
	if err == nil {
		c.lastEmpire = response.(*queries.CalculateEmpireCOGMResponse).Result
	}
	return nil
}

func (c *costContext) iProjectExpertProgress(current, target, buildings int) error {
	response, err := c.send(&queries.ExpertProgressQuery{
		CurrentExperts: current,
		TargetExperts:  target,
		Buildings:      buildings,
	})
	c.lastError = err
	if err == nil {
		c.lastProgress = response.(*queries.ExpertProgressResponse)
	}
	return nil
}

// ============================================================================
// Then Steps
// ============================================================================

func expectAmount(label string, actual, expected, tolerance float64) error {
	if math.Abs(actual-expected) > tolerance {
		return fmt.Errorf("expected %s %.6f, got %.6f", label, expected, actual)
	}
	return nil
}

func (c *costContext) theRunCostTotalShouldBe(expected float64) error {
	if c.lastRunCost == nil {
		return fmt.Errorf("no run cost calculated (error: %v)", c.lastError)
	}
	return expectAmount("run cost", c.lastRunCost.Total, expected, 1e-9)
}

func (c *costContext) theRunCostComponentShouldBe(component string, expected float64) error {
	if c.lastRunCost == nil {
		return fmt.Errorf("no run cost calculated (error: %v)", c.lastError)
	}
	var actual float64
	switch component {
	case "input":
		actual = c.lastRunCost.InputCosts.Total
	case "workforce":
		actual = c.lastRunCost.WorkforceCosts.Total
	case "repair":
		actual = c.lastRunCost.RepairCosts.Total
	}
	return expectAmount(component+" cost", actual, expected, 1e-9)
}

func (c *costContext) theCOGMPerUnitShouldBe(expected float64) error {
	if c.lastCOGM == nil {
		return fmt.Errorf("no COGM calculated (error: %v)", c.lastError)
	}
	return expectAmount("COGM", c.lastCOGM.Total, expected, 1e-9)
}

func (c *costContext) theCOGMComponentPerUnitShouldBe(component string, expected float64) error {
	if c.lastCOGM == nil {
		return fmt.Errorf("no COGM calculated (error: %v)", c.lastError)
	}
	var actual float64
	switch component {
	case "input":
		actual = c.lastCOGM.InputCosts.Total
	case "workforce":
		actual = c.lastCOGM.WorkforceCosts.Total
	case "repair":
		actual = c.lastCOGM.RepairCosts.Total
	}
	return expectAmount(component+" cost per unit", actual, expected, 1e-9)
}

func (c *costContext) theRecipeShouldExtractIn(quantity float64, itemSymbol string, hours float64) error {
	if c.lastRecipe == nil {
		return fmt.Errorf("no recipe found (error: %v)", c.lastError)
	}
	if !c.lastRecipe.IsPlanetInstance() {
		return fmt.Errorf("expected an extraction recipe bound to a planet, got %s", c.lastRecipe.Symbol())
	}
	output, ok := c.lastRecipe.Output(itemSymbol)
	if !ok {
		return fmt.Errorf("recipe %s does not produce %s", c.lastRecipe.Symbol(), itemSymbol)
	}
	if err := expectAmount("output quantity", output.Quantity, quantity, 1e-9); err != nil {
		return err
	}
	return expectAmount("duration hours", c.lastRecipe.DurationHours(), hours, 1e-6)
}

func (c *costContext) theQueryShouldFailWith(message string) error {
	if c.lastError == nil {
		return fmt.Errorf("expected error containing %q, got none", message)
	}
	if !strings.Contains(c.lastError.Error(), message) {
		return fmt.Errorf("expected error containing %q, got %q", message, c.lastError.Error())
	}
	return nil
}

func (c *costContext) theQueryShouldFailListingCandidateRecipes(count int) error {
	var multiple *production.MultipleRecipesFoundError
	if !errors.As(c.lastError, &multiple) {
		return fmt.Errorf("expected a multiple recipes error, got %v", c.lastError)
	}
	if len(multiple.Candidates) != count {
		return fmt.Errorf("expected %d candidates, got %d", count, len(multiple.Candidates))
	}
	return nil
}

func (c *costContext) theEmpireCOGMOfOnShouldBe(itemSymbol, planet string, expected float64) error {
	if c.lastEmpire == nil {
		return fmt.Errorf("no empire evaluated (error: %v)", c.lastError)
	}
	for _, p := range c.lastEmpire.Planets {
		if !strings.EqualFold(p.PlanetNaturalID, planet) && !strings.EqualFold(p.PlanetName, planet) {
			continue
		}
		for _, output := range p.Outputs {
			if output.ItemSymbol == itemSymbol {
				return expectAmount("COGM of "+itemSymbol, output.Total, expected, 1e-9)
			}
		}
	}
	return fmt.Errorf("no %s output on planet %s", itemSymbol, planet)
}

func (c *costContext) theCachedPriceOfShouldBe(itemSymbol string, expected float64) error {
	if c.lastEmpire == nil {
		return fmt.Errorf("no empire evaluated (error: %v)", c.lastError)
	}
	price, ok := c.lastEmpire.CachedPrices[itemSymbol]
	if !ok {
		return fmt.Errorf("no cached price for %s", itemSymbol)
	}
	return expectAmount("cached price of "+itemSymbol, price, expected, 1e-9)
}

func (c *costContext) noPriceShouldBeCachedFor(itemSymbol string) error {
	if c.lastEmpire == nil {
		return fmt.Errorf("no empire evaluated (error: %v)", c.lastError)
	}
	if price, ok := c.lastEmpire.CachedPrices[itemSymbol]; ok {
		return fmt.Errorf("expected no cached price for %s, got %.2f", itemSymbol, price)
	}
	return nil
}

func (c *costContext) logEntriesShouldBeRecorded(count int, message string) error {
	entries := c.logger.Find(message)
	if len(entries) != count {
		return fmt.Errorf("expected %d %q log entries, got %d", count, message, len(entries))
	}
	return nil
}

func (c *costContext) theProgressValueShouldBe(field string, expected float64) error {
	if c.lastProgress == nil {
		return fmt.Errorf("no expert progress projected (error: %v)", c.lastError)
	}
	var actual float64
	switch field {
	case "current bonus":
		actual = c.lastProgress.CurrentBonus
	case "target bonus":
		actual = c.lastProgress.TargetBonus
	case "days to the next expert":
		actual = c.lastProgress.DaysToNextExpert
	case "days to the target":
		actual = c.lastProgress.DaysToTarget
	}
	return expectAmount(field, actual, expected, 1e-6)
}

// InitializeCostScenario registers the cost engine step definitions
func InitializeCostScenario(sc *godog.ScenarioContext) {
	c := &costContext{}

	sc.Before(func(ctx context.Context, _ *godog.Scenario) (context.Context, error) {
		return ctx, c.reset()
	})

	// Given
	sc.Step(`^the cost catalog is seeded$`, c.theCostCatalogIsSeeded)
	sc.Step(`^an alternative recipe "([^"]*)" in building "([^"]*)" turns (\d+(?:\.\d+)?) "([^"]*)" into (\d+(?:\.\d+)?) "([^"]*)" over (\d+) hours$`, c.anAlternativeRecipe)
	sc.Step(`^the exchange quotes "([^"]*)" at (\d+(?:\.\d+)?)$`, c.theExchangeQuotesAt)
	sc.Step(`^a manual price of (\d+(?:\.\d+)?) for "([^"]*)"$`, c.aManualPriceFor)
	sc.Step(`^(\d+) "([^"]*)" experts? (?:is|are) assigned$`, c.expertsAreAssigned)
	sc.Step(`^the COGC program is "([^"]*)"$`, c.theCOGCProgramIs)
	sc.Step(`^the empire plan:$`, c.theEmpirePlan)

	// When
	sc.Step(`^I calculate the run cost of "([^"]*)" on planet "([^"]*)"$`, c.iCalculateTheRunCostOfOnPlanet)
	sc.Step(`^I calculate the COGM of "([^"]*)" on planet "([^"]*)"$`, c.iCalculateTheCOGMOfOnPlanet)
	sc.Step(`^I calculate the COGM of "([^"]*)" without a planet$`, c.iCalculateTheCOGMOfWithoutAPlanet)
	sc.Step(`^I find the recipe for "([^"]*)" on planet "([^"]*)"$`, c.iFindTheRecipeForOnPlanet)
	sc.Step(`^I evaluate the empire$`, c.iEvaluateTheEmpire)
	sc.Step(`^I project expert progress from (\d+) to (\d+) experts across (\d+) buildings?$`, c.iProjectExpertProgress)

	// Then
	sc.Step(`^the run cost total should be (\d+(?:\.\d+)?)$`, c.theRunCostTotalShouldBe)
	sc.Step(`^the (input|workforce|repair) cost total should be (\d+(?:\.\d+)?)$`, c.theRunCostComponentShouldBe)
	sc.Step(`^the COGM per unit should be (\d+(?:\.\d+)?)$`, c.theCOGMPerUnitShouldBe)
	sc.Step(`^the COGM (input|workforce|repair) cost per unit should be (\d+(?:\.\d+)?)$`, c.theCOGMComponentPerUnitShouldBe)
	sc.Step(`^the recipe should extract (\d+(?:\.\d+)?) "([^"]*)" in (\d+(?:\.\d+)?) hours$`, c.theRecipeShouldExtractIn)
	sc.Step(`^the query should fail with "([^"]*)"$`, c.theQueryShouldFailWith)
	sc.Step(`^the query should fail listing (\d+) candidate recipes$`, c.theQueryShouldFailListingCandidateRecipes)
	sc.Step(`^the empire COGM of "([^"]*)" on "([^"]*)" should be (\d+(?:\.\d+)?)$`, c.theEmpireCOGMOfOnShouldBe)
	sc.Step(`^the cached price of "([^"]*)" should be (\d+(?:\.\d+)?)$`, c.theCachedPriceOfShouldBe)
	sc.Step(`^no price should be cached for "([^"]*)"$`, c.noPriceShouldBeCachedFor)
	sc.Step(`^(\d+) "([^"]*)" log entries should be recorded$`, c.logEntriesShouldBeRecorded)
	sc.Step(`^the (current bonus|target bonus|days to the next expert|days to the target) should be (\d+(?:\.\d+)?)$`, c.theProgressValueShouldBe)
}
