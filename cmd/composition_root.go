package cmd

import (
	"errors"
	"os"

	"deliverymanager/internal/adapters/out/flatfile"
	"deliverymanager/internal/adapters/out/inmem"
	"deliverymanager/internal/adapters/out/ordercsv"
	"deliverymanager/internal/adapters/out/productcsv"
	"deliverymanager/internal/core/application/usecases/commands"
	"deliverymanager/internal/core/application/usecases/queries"
	"deliverymanager/internal/core/domain/model/kernel"
	"deliverymanager/internal/core/domain/model/product"
	"deliverymanager/internal/core/domain/services"
	"deliverymanager/internal/core/ports"

	"go.uber.org/zap"
)

// CompositionRoot wires the adapters to the application layer: the product
// catalog, the flat-file managers, the in-memory order book, and the
// command/query handlers on top of them.
type CompositionRoot struct {
	config Config
	log    *zap.Logger

	catalog         product.Catalog
	orderRepository ports.OrderRepository
	agents          *flatfile.AgentsManager
	addresses       *flatfile.AddressHistory
}

// NewCompositionRoot builds the object graph. The product catalog is loaded
// from the configured file; a missing file is seeded with the sample catalog
// first, so a fresh checkout runs out of the box.
func NewCompositionRoot(config Config, log *zap.Logger) (*CompositionRoot, error) {
	root := &CompositionRoot{
		config:          config,
		log:             log,
		orderRepository: inmem.NewOrderRepository(),
	}

	if err := root.loadCatalog(); err != nil {
		return nil, err
	}

	root.agents = flatfile.NewAgentsManager(log, config.AgentsFile, config.DefaultAgents)
	if err := root.agents.Load(); err != nil {
		return nil, err
	}

	root.addresses = flatfile.NewAddressHistory(log, config.AddressesFile, config.MaxAddressHistory)
	if err := root.addresses.Load(); err != nil {
		return nil, err
	}

	return root, nil
}

// Catalog returns the loaded product catalog.
func (c *CompositionRoot) Catalog() product.Catalog {
	return c.catalog
}

// Agents returns the agents manager.
func (c *CompositionRoot) Agents() *flatfile.AgentsManager {
	return c.agents
}

// Addresses returns the address history.
func (c *CompositionRoot) Addresses() *flatfile.AddressHistory {
	return c.addresses
}

// PhoneBounds returns the configured phone digit bounds.
func (c *CompositionRoot) PhoneBounds() services.PhoneBounds {
	return services.PhoneBounds{Min: c.config.PhoneMinDigits, Max: c.config.PhoneMaxDigits}
}

func (c *CompositionRoot) CreateCreateOrderCommandHandler() commands.CreateOrderCommandHandler {
	return commands.NewCreateOrderCommandHandler(c.orderRepository, c.addresses)
}

func (c *CompositionRoot) CreateUpdateOrderStatusCommandHandler() commands.UpdateOrderStatusCommandHandler {
	return commands.NewUpdateOrderStatusCommandHandler(c.orderRepository)
}

func (c *CompositionRoot) CreateRemoveOrdersCommandHandler() commands.RemoveOrdersCommandHandler {
	return commands.NewRemoveOrdersCommandHandler(c.orderRepository)
}

func (c *CompositionRoot) CreateGetAllOrdersQueryHandler() queries.GetAllOrdersQueryHandler {
	return queries.NewGetAllOrdersQueryHandler(c.orderRepository)
}

func (c *CompositionRoot) CreateGetOrdersByStatusQueryHandler() queries.GetOrdersByStatusQueryHandler {
	return queries.NewGetOrdersByStatusQueryHandler(c.orderRepository)
}

func (c *CompositionRoot) CreateOrderImporter() *ordercsv.Importer {
	return ordercsv.NewImporter(c.log, c.PhoneBounds())
}

func (c *CompositionRoot) CreateOrderExporter() *ordercsv.Exporter {
	return ordercsv.NewExporter(c.log)
}

// loadCatalog loads the product file, seeding it with the sample catalog
// when it does not exist yet.
func (c *CompositionRoot) loadCatalog() error {
	loader := productcsv.NewLoader(c.log)

	if _, err := os.Stat(c.config.ProductsFile); errors.Is(err, os.ErrNotExist) {
		products, sampleErr := sampleProducts()
		if sampleErr != nil {
			return sampleErr
		}
		if seedErr := loader.WriteSample(c.config.ProductsFile, products); seedErr != nil {
			return seedErr
		}
		c.log.Info("seeded sample product catalog", zap.String("path", c.config.ProductsFile))
	}

	catalog, warnings, err := loader.Load(c.config.ProductsFile)
	if err != nil {
		return err
	}
	for _, w := range warnings {
		c.log.Warn("skipped product row", zap.Int("row", w.Row), zap.String("reason", w.Reason))
	}

	c.catalog = catalog
	return nil
}

// sampleProducts is the starter catalog written on first run.
func sampleProducts() ([]product.Product, error) {
	rows := []struct {
		code  string
		name  string
		price int64
		unit  string
	}{
		{"CA", "Creme Affinante", 25000, "unit"},
		{"TA", "Tisane Affinante", 25000, "unit"},
		{"CG", "Creme Galbante", 25000, "unit"},
		{"SG", "SAVON GALBANT", 15000, "unit"},
		{"BS", "Base de Savon", 50, "g"},
		{"G", "Gaine", 10000, "unit"},
	}

	products := make([]product.Product, 0, len(rows))
	for _, row := range rows {
		p, err := product.NewProduct(row.code, row.name, kernel.MoneyFromInt(row.price), row.unit)
		if err != nil {
			return nil, err
		}
		products = append(products, p)
	}
	return products, nil
}
