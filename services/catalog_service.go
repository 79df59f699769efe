package services

import (
	"log"
	"os"

	"gopkg.in/yaml.v3"

	"reservation-demo/models"
)

// CatalogService holds the static room catalog, loaded once at startup.
// The catalog is read-only after load; reservations reference rooms by name.
type CatalogService struct {
	rooms []models.Room
}

// NewCatalogService loads the room catalog from a YAML file. A load failure
// degrades to an empty catalog with a warning; the service keeps running.
func NewCatalogService(path string) *CatalogService {
	s := &CatalogService{}

	data, err := os.ReadFile(path)
	if err != nil {
		log.Printf("⚠️  Could not read room catalog %s: %v — starting with an empty catalog", path, err)
		return s
	}

	var rooms []models.Room
	if err := yaml.Unmarshal(data, &rooms); err != nil {
		log.Printf("⚠️  Could not parse room catalog %s: %v — starting with an empty catalog", path, err)
		return s
	}

	s.rooms = rooms
	log.Printf("✅ Loaded %d rooms from %s", len(rooms), path)
	return s
}

func (s *CatalogService) All() []models.Room {
	return s.rooms
}

func (s *CatalogService) ByID(id int) (models.Room, bool) {
	for _, r := range s.rooms {
		if r.ID == id {
			return r, true
		}
	}
	return models.Room{}, false
}
