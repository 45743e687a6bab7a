package main

import (
	"fmt"
	"log"
	"os"
	"path/filepath"

	"product-api/internal/model"
	"product-api/internal/seed"
)

// generateSampleSeed writes a sample seed file that can be served with
// SEED_FILE=data/seed/products.json.gz. It holds the built-in products plus a
// few extra records, one of them without an id so the loader assigns a UUID.
func main() {
	dataDir := "data/seed"

	// Create directory if it doesn't exist
	if err := os.MkdirAll(dataDir, 0755); err != nil {
		log.Fatalf("Failed to create directory: %v", err)
	}

	records := make([]seed.Record, 0, 6)
	for _, p := range seed.Default() {
		records = append(records, record(p.ID, p.Name, p.Description, p.Price, p.Category, p.InStock))
	}
	records = append(records,
		record("4", "Desk Lamp", "LED lamp with adjustable arm", 35, "Home", true),
		record("5", "Kettle", "1.7L electric kettle", 25, "Kitchen", true),
		record("", "Headphones", "Noise-cancelling over-ear headphones", 199.99, "electronics", false),
	)

	filePath := filepath.Join(dataDir, "products.json.gz")
	if err := seed.WriteFile(filePath, records); err != nil {
		log.Fatalf("Failed to create %s: %v", filePath, err)
	}

	fmt.Printf("Created %s with %d products\n", filePath, len(records))
	fmt.Println("\nStart the server with:")
	fmt.Printf("  SEED_FILE=%s go run ./cmd/api\n", filePath)
}

func record(id, name, description string, price float64, category string, inStock bool) seed.Record {
	return seed.Record{
		ID: id,
		ProductInput: model.ProductInput{
			Name:        name,
			Description: description,
			Price:       &price,
			Category:    category,
			InStock:     &inStock,
		},
	}
}
