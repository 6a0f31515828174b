package commands

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/valleedgar085-rgb/Smart-shopping-list/pkg/application/services/shopping"
	"github.com/valleedgar085-rgb/Smart-shopping-list/pkg/infrastructure/events"
	"github.com/valleedgar085-rgb/Smart-shopping-list/pkg/infrastructure/repositories/memory"
	"github.com/valleedgar085-rgb/Smart-shopping-list/pkg/infrastructure/repositories/scenario"
	"github.com/valleedgar085-rgb/Smart-shopping-list/pkg/interfaces/cli/output"
)

// Config holds configuration for the compare command
type Config struct {
	ScenarioFile string
	Format       string
	Verbose      bool
}

// CompareCommand loads a scenario, runs the merge-and-compare pass, and
// renders the report
type CompareCommand struct {
	config Config
	logger *zap.SugaredLogger
}

// NewCompareCommand creates a new compare command with the given configuration
func NewCompareCommand(config Config) *CompareCommand {
	return &CompareCommand{
		config: config,
	}
}

// Execute runs the compare command
func (c *CompareCommand) Execute(ctx context.Context) error {
	if err := c.initLogger(); err != nil {
		return err
	}

	if c.config.ScenarioFile == "" {
		return fmt.Errorf("a scenario file is required")
	}

	c.logger.Infow("loading scenario", "file", c.config.ScenarioFile)

	offices, stores, err := scenario.NewLoader().Load(c.config.ScenarioFile)
	if err != nil {
		return fmt.Errorf("error loading scenario: %w", err)
	}

	c.logger.Infow("scenario loaded", "offices", len(offices), "stores", len(stores))

	officeRepo := memory.NewOfficeRepository()
	storeRepo := memory.NewStoreRepository()
	eventStore := events.NewInMemoryEventStore()
	service := shopping.NewEventDrivenShoppingService(officeRepo, storeRepo, eventStore)

	for _, office := range offices {
		if err := service.RegisterOffice(office); err != nil {
			return fmt.Errorf("error registering office %q: %w", office.Name, err)
		}
	}
	for _, store := range stores {
		if err := service.RegisterStore(store); err != nil {
			return fmt.Errorf("error registering store %q: %w", store.Name, err)
		}
	}

	report, err := service.Report()
	if err != nil {
		return fmt.Errorf("error building comparison report: %w", err)
	}

	if err := output.Generate(report, output.Config{
		Format:  c.config.Format,
		Verbose: c.config.Verbose,
	}); err != nil {
		return fmt.Errorf("error generating output: %w", err)
	}

	if c.config.Verbose {
		c.printAuditTrail(eventStore)
	}

	return nil
}

func (c *CompareCommand) initLogger() error {
	if !c.config.Verbose {
		c.logger = zap.NewNop().Sugar()
		return nil
	}

	logger, err := zap.NewDevelopment()
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	c.logger = logger.Sugar()
	return nil
}

func (c *CompareCommand) printAuditTrail(eventStore events.EventStore) {
	recorded, err := eventStore.ReadAllEvents(0)
	if err != nil {
		c.logger.Warnw("failed to read audit trail", "error", err)
		return
	}

	for _, event := range recorded {
		c.logger.Infow("audit",
			"type", event.Type(),
			"stream", event.StreamID(),
			"version", event.Version(),
			"id", event.ID(),
		)
	}
}
