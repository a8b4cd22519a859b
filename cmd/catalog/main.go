// Command catalog dumps the remote product catalog as JSON, for smoke-testing
// store credentials and inspecting what the storefront will render.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"

	"storefront/internal/config"
	"storefront/internal/domain"
	"storefront/internal/reconcile"
	"storefront/internal/storefront"
)

func main() {
	pageSize := flag.Int("n", 20, "number of products to fetch")
	flag.Parse()

	_ = godotenv.Load()

	logger := log.New(os.Stderr, "[catalog] ", log.LstdFlags|log.LUTC)

	cfg, err := config.FromEnv()
	if err != nil {
		logger.Fatalf("load config: %v", err)
	}

	remote := storefront.New(storefront.Endpoint(cfg.ShopDomain, cfg.APIVersion), cfg.StorefrontToken, logger)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	payloads, err := remote.FetchCatalog(ctx, *pageSize)
	if err != nil {
		logger.Fatalf("fetch catalog: %v", err)
	}

	products := make([]domain.Product, 0, len(payloads))
	for _, payload := range payloads {
		products = append(products, reconcile.Product(payload, logger))
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(products); err != nil {
		logger.Fatalf("encode products: %v", err)
	}

	logger.Printf("fetched %d products from %s", len(products), cfg.ShopDomain)
}
