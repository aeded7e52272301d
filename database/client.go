package database

import (
	"context"
	"fmt"

	firebase "firebase.google.com/go"
	"firebase.google.com/go/db"
	"github.com/rs/zerolog"

	"github.com/Ezequielp19/sistema-ventas/models"
	"github.com/Ezequielp19/sistema-ventas/pricing"
)

// Client implements RecordStore over the Firebase Realtime Database.
type Client struct {
	db  *db.Client
	log zerolog.Logger
}

// NewClient connects to the Realtime Database of the given app. The
// database URL comes from the firebase.Config used to build the app.
func NewClient(ctx context.Context, app *firebase.App, log zerolog.Logger) (*Client, error) {
	dbClient, err := app.Database(ctx)
	if err != nil {
		return nil, fmt.Errorf("database client: %w", err)
	}
	return &Client{db: dbClient, log: log}, nil
}

func productsPath(storeID string) string {
	return "stores/" + storeID + "/products"
}

func configPath(storeID string) string {
	return "stores/" + storeID + "/config"
}

func suppliersPath(userID string) string {
	return "users/" + userID + "/suppliers"
}

func (c *Client) Products(ctx context.Context, storeID string) ([]models.Product, error) {
	nodes, err := c.db.NewRef(productsPath(storeID)).OrderByKey().GetOrdered(ctx)
	if err != nil {
		return nil, fmt.Errorf("fetch products: %w", err)
	}

	products := make([]models.Product, 0, len(nodes))
	for _, node := range nodes {
		var raw models.RawProduct
		if err := node.Unmarshal(&raw); err != nil {
			// A malformed node must not take the whole catalog down.
			c.log.Warn().Str("store", storeID).Str("key", node.Key()).Err(err).Msg("skipping malformed product node")
			continue
		}
		products = append(products, raw.Normalize(node.Key()))
	}
	return products, nil
}

func (c *Client) RawProduct(ctx context.Context, storeID, key string) (*models.RawProduct, error) {
	var raw *models.RawProduct
	if err := c.db.NewRef(productsPath(storeID)+"/"+key).Get(ctx, &raw); err != nil {
		return nil, fmt.Errorf("fetch product %s: %w", key, err)
	}
	return raw, nil
}

func (c *Client) SaveProduct(ctx context.Context, storeID, key string, p models.RawProduct) error {
	return c.db.NewRef(productsPath(storeID) + "/" + key).Set(ctx, p)
}

func (c *Client) DeleteProduct(ctx context.Context, storeID, key string) error {
	return c.db.NewRef(productsPath(storeID) + "/" + key).Delete(ctx)
}

// ApplyPriceBatch submits the whole batch as one multi-path update
// rooted at the store's products node. The database applies it
// atomically: either every salePrice changes or none does.
func (c *Client) ApplyPriceBatch(ctx context.Context, storeID string, updates []pricing.Update) error {
	if len(updates) == 0 {
		return nil
	}
	batch := make(map[string]interface{}, len(updates))
	for _, u := range updates {
		batch[u.Key+"/salePrice"] = u.NewPrice
	}
	if err := c.db.NewRef(productsPath(storeID)).Update(ctx, batch); err != nil {
		return fmt.Errorf("apply price batch: %w", err)
	}
	c.log.Info().Str("store", storeID).Int("products", len(updates)).Msg("price batch applied")
	return nil
}

func (c *Client) SetStock(ctx context.Context, storeID, key string, stock int) error {
	return c.db.NewRef(productsPath(storeID)).Update(ctx, map[string]interface{}{
		key + "/stock": stock,
	})
}

func (c *Client) Config(ctx context.Context, storeID string) (models.StoreConfig, error) {
	var cfg models.StoreConfig
	if err := c.db.NewRef(configPath(storeID)).Get(ctx, &cfg); err != nil {
		return models.StoreConfig{}, fmt.Errorf("fetch config: %w", err)
	}
	return cfg, nil
}

func (c *Client) SaveConfig(ctx context.Context, storeID string, cfg models.StoreConfig) error {
	return c.db.NewRef(configPath(storeID)).Set(ctx, cfg)
}

func (c *Client) Suppliers(ctx context.Context, userID string) ([]models.Supplier, error) {
	nodes, err := c.db.NewRef(suppliersPath(userID)).OrderByKey().GetOrdered(ctx)
	if err != nil {
		return nil, fmt.Errorf("fetch suppliers: %w", err)
	}

	suppliers := make([]models.Supplier, 0, len(nodes))
	for _, node := range nodes {
		var s models.Supplier
		if err := node.Unmarshal(&s); err != nil {
			c.log.Warn().Str("user", userID).Str("key", node.Key()).Err(err).Msg("skipping malformed supplier node")
			continue
		}
		s.Key = node.Key()
		suppliers = append(suppliers, s)
	}
	return suppliers, nil
}

func (c *Client) SaveSupplier(ctx context.Context, userID, key string, s models.Supplier) error {
	s.Key = "" // the key lives in the path, not the record
	return c.db.NewRef(suppliersPath(userID) + "/" + key).Set(ctx, s)
}

func (c *Client) DeleteSupplier(ctx context.Context, userID, key string) error {
	return c.db.NewRef(suppliersPath(userID) + "/" + key).Delete(ctx)
}
