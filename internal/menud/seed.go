package menud

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/five82/orchid/internal/catalog"
)

// LoadSeed reads a JSON array of categories in the GET /menu shape.
func LoadSeed(path string) ([]catalog.Category, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read seed: %w", err)
	}
	var categories []catalog.Category
	if err := json.Unmarshal(data, &categories); err != nil {
		return nil, fmt.Errorf("parse seed: %w", err)
	}
	return categories, nil
}

// DefaultCategories is the built-in orchid catalog.
func DefaultCategories() []catalog.Category {
	return []catalog.Category{
		{ID: "P", Name: "Phalaenopsis", Items: []catalog.Item{
			{ID: "P1", Name: "Moth Orchid White", Origin: "Taiwan", Color: "white", Weight: 0.8, Bonus: "ceramic pot", Price: 24.5, Rating: "4.6", Image: "https://images.example.com/p1.jpg", IsTopOfTheWeek: true},
			{ID: "P2", Name: "Pink Cascade", Origin: "Thailand", Color: "pink", Weight: 0.9, Price: 29, Rating: "4.4", Image: "https://images.example.com/p2.jpg"},
		}},
		{ID: "C", Name: "Cattleya", Items: []catalog.Item{
			{ID: "C1", Name: "Queen of Orchids", Origin: "Brazil", Color: "lavender", Weight: 1.1, Bonus: "fertilizer", Price: 38, Rating: "4.8", Image: "https://images.example.com/c1.jpg"},
		}},
		{ID: "D", Name: "Dendrobium", Items: []catalog.Item{
			{ID: "D1", Name: "Noble Rock", Origin: "Australia", Color: "cream", Weight: 0.7, Price: 19.9, Rating: "4.1", Image: "https://images.example.com/d1.jpg"},
			{ID: "D2", Name: "Purple Spray", Origin: "Vietnam", Color: "purple", Weight: 0.6, Price: 17.5, Rating: "4.0", Image: "https://images.example.com/d2.jpg"},
		}},
		{ID: "V", Name: "Vanda", Items: []catalog.Item{}},
	}
}
