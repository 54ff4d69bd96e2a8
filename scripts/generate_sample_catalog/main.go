package main

import (
	"encoding/json"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"chopnow/internal/model"
)

// Generates a sample catalog file for local development and seeding.
func main() {
	dataDir := "data"

	if err := os.MkdirAll(dataDir, 0755); err != nil {
		log.Fatalf("Failed to create directory: %v", err)
	}

	items := []model.FoodItem{
		{ID: "jollof-rice", Name: "Jollof Rice", Description: "Smoky party-style jollof with fried plantain", Price: 1500, Category: "mains", ImageURL: "https://images.chopnow.dev/jollof-rice.jpg"},
		{ID: "pounded-yam", Name: "Pounded Yam & Egusi", Description: "Pounded yam served with egusi soup", Price: 2200, Category: "mains", ImageURL: "https://images.chopnow.dev/pounded-yam.jpg"},
		{ID: "suya", Name: "Beef Suya", Description: "Spicy grilled beef skewers with yaji", Price: 800, Category: "grills", ImageURL: "https://images.chopnow.dev/suya.jpg"},
		{ID: "moi-moi", Name: "Moi Moi", Description: "Steamed bean pudding", Price: 400, Category: "sides", ImageURL: "https://images.chopnow.dev/moi-moi.jpg"},
		{ID: "chapman", Name: "Chapman", Description: "Classic Chapman cocktail, non-alcoholic", Price: 700, Category: "drinks", ImageURL: "https://images.chopnow.dev/chapman.jpg"},
		{ID: "puff-puff", Name: "Puff Puff", Description: "Six pieces of fresh puff puff", Price: 300, Category: "snacks", ImageURL: "https://images.chopnow.dev/puff-puff.jpg"},
	}

	path := filepath.Join(dataDir, "catalog.json")
	file, err := os.Create(path)
	if err != nil {
		log.Fatalf("Failed to create catalog file: %v", err)
	}
	defer file.Close()

	enc := json.NewEncoder(file)
	enc.SetIndent("", "  ")
	if err := enc.Encode(items); err != nil {
		log.Fatalf("Failed to write catalog file: %v", err)
	}

	fmt.Printf("Wrote %d items to %s\n", len(items), path)
}
