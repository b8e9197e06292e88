package world

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/andsky/talekeeper/pkg/domain"
)

// Document is the on-disk YAML layout for a world definition. Either section
// may be omitted; the built-in data fills the gap.
type Document struct {
	StartScene string           `yaml:"start_scene"`
	Tagline    string           `yaml:"tagline"`
	Scenes     []domain.Scene   `yaml:"scenes"`
	Products   []domain.Product `yaml:"products"`
}

// Load reads a world definition from a YAML file and builds a registry.
func Load(path string) (*Registry, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read world file: %w", err)
	}
	return Parse(data)
}

// Parse builds a registry from raw YAML.
func Parse(data []byte) (*Registry, error) {
	var doc Document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to parse world document: %w", err)
	}

	if doc.StartScene == "" {
		doc.StartScene = "intro"
	}
	if len(doc.Scenes) == 0 {
		doc.Scenes = StormglassScenes()
		if doc.Tagline == "" {
			doc.Tagline = stormglassTagline
		}
	}
	if len(doc.Products) == 0 {
		doc.Products = DefaultCatalog()
	}

	if _, ok := findScene(doc.Scenes, doc.StartScene); !ok {
		return nil, fmt.Errorf("start scene %q is not declared", doc.StartScene)
	}

	return NewRegistry(doc.StartScene, doc.Scenes, doc.Products,
		WithTagline(doc.Tagline)), nil
}

func findScene(scenes []domain.Scene, id string) (*domain.Scene, bool) {
	for i := range scenes {
		if scenes[i].ID == id {
			return &scenes[i], true
		}
	}
	return nil, false
}
