package main

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/spf13/pflag"

	"github.com/poolshark1904/gestao-produtos/internal/app"
	"github.com/poolshark1904/gestao-produtos/internal/config"
	"github.com/poolshark1904/gestao-produtos/internal/core/domain"
)

func main() {
	configPath := pflag.String("config", "", "path to config.yaml")
	total := pflag.IntP("count", "n", 20, "number of products to create")
	pflag.Parse()

	if err := run(*configPath, *total); err != nil {
		log.Fatal(err)
	}
}

func run(configPath string, total int) (err error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	ctx := context.Background()

	application, err := app.New(ctx, cfg, nil)
	if err != nil {
		return fmt.Errorf("failed to start application: %w", err)
	}
	defer func() {
		if closeErr := application.Close(); err == nil {
			err = closeErr
		}
	}()

	before, err := application.Store.Load(ctx)
	if err != nil {
		return fmt.Errorf("failed to load products: %w", err)
	}

	// Create sequentially, as a single user would
	ids := make(map[string]bool)
	var failed int
	start := time.Now()

	for i := 0; i < total; i++ {
		product, err := application.Store.Create(ctx, domain.Draft{
			Title:       fmt.Sprintf("Seed product %d", i+1),
			Description: "generated by seed",
			Price:       float64(i) + 0.99,
			Quantity:    i,
		})
		if err != nil {
			log.Printf("create %d failed: %v", i+1, err)
			failed++
			continue
		}
		ids[product.ID] = true
	}
	elapsed := time.Since(start)

	after, err := application.Store.Load(ctx)
	if err != nil {
		return fmt.Errorf("failed to reload products: %w", err)
	}

	// Results
	fmt.Println("============== SEED RESULTS ==============")
	fmt.Printf("Products before:  %d\n", len(before))
	fmt.Printf("Requested:        %d\n", total)
	fmt.Printf("Created:          %d\n", len(ids))
	fmt.Printf("Failed:           %d\n", failed)
	fmt.Printf("Products after:   %d\n", len(after))
	fmt.Printf("Duration:         %v\n", elapsed)
	fmt.Println("==========================================")

	if len(ids) == total-failed {
		fmt.Println("PASS: all created ids are distinct")
	} else {
		fmt.Printf("FAIL: %d creates produced only %d distinct ids\n", total-failed, len(ids))
	}

	if len(after) == len(before)+len(ids) {
		fmt.Println("PASS: persisted list matches")
	} else {
		fmt.Printf("FAIL: expected %d persisted products, got %d\n", len(before)+len(ids), len(after))
	}

	return nil
}
