package config

import (
	"bytes"

	"gopkg.in/yaml.v3"
)

// decodeYAML overlays data onto cfg. Gallery order follows the key order
// of the galleries mapping.
func decodeYAML(data []byte, cfg *Config) error {
	if len(bytes.TrimSpace(data)) == 0 {
		return nil
	}
	var root yaml.Node
	if err := yaml.Unmarshal(data, &root); err != nil {
		return err
	}
	if err := root.Decode(cfg); err != nil {
		return err
	}
	if len(root.Content) == 0 {
		return nil
	}
	doc := root.Content[0]
	if doc.Kind != yaml.MappingNode {
		return nil
	}
	for i := 0; i+1 < len(doc.Content); i += 2 {
		if doc.Content[i].Value != "galleries" {
			continue
		}
		g := doc.Content[i+1]
		if g.Kind != yaml.MappingNode {
			break
		}
		for j := 0; j+1 < len(g.Content); j += 2 {
			cfg.galleryOrder = append(cfg.galleryOrder, g.Content[j].Value)
		}
	}
	return nil
}
