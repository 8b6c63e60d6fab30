package catalog

import (
	_ "embed"
	"encoding/json"
	"fmt"

	"github.com/techgear-labs/techgear/pkg/types"
)

//go:embed products.json
var seedData []byte

// Seed parses the embedded product catalog shipped with the binary.
func Seed() ([]types.Product, error) {
	var products []types.Product
	if err := json.Unmarshal(seedData, &products); err != nil {
		return nil, fmt.Errorf("failed to parse seed catalog: %w", err)
	}
	return products, nil
}
