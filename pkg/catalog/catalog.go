// Package catalog holds the closed vocabulary of services the company offers.
// The catalog is embedded configuration: it is parsed once at startup, never
// mutated afterwards, and a malformed catalog stops the process immediately.
// Both the contact form's service selector and its validation rules read from
// the same catalog, so the two can never drift apart.
package catalog

import (
	_ "embed"
	"fmt"

	"gopkg.in/yaml.v3"
)

//go:embed services.yaml
var servicesYAML []byte

// Service is a single entry of the service vocabulary.
type Service struct {
	ID    string `yaml:"id" json:"id"`
	Name  string `yaml:"name" json:"name"`
	Blurb string `yaml:"blurb" json:"blurb"`
}

var (
	services []Service
	byID     map[string]Service
)

func init() {
	var doc struct {
		Services []Service `yaml:"services"`
	}
	if err := yaml.Unmarshal(servicesYAML, &doc); err != nil {
		panic(fmt.Errorf("catalog: parse services.yaml: %w", err))
	}
	if len(doc.Services) == 0 {
		panic("catalog: services.yaml defines no services")
	}

	byID = make(map[string]Service, len(doc.Services))
	for _, svc := range doc.Services {
		if svc.ID == "" || svc.Name == "" {
			panic(fmt.Errorf("catalog: service entry %+v is missing id or name", svc))
		}
		if _, dup := byID[svc.ID]; dup {
			panic(fmt.Errorf("catalog: duplicate service id %q", svc.ID))
		}
		byID[svc.ID] = svc
	}
	services = doc.Services
}

// Services returns all services in catalog order.
func Services() []Service {
	out := make([]Service, len(services))
	copy(out, services)
	return out
}

// IDs returns the service identifiers in catalog order.
func IDs() []string {
	ids := make([]string, len(services))
	for i, svc := range services {
		ids[i] = svc.ID
	}
	return ids
}

// ByID looks up a service by identifier.
func ByID(id string) (Service, bool) {
	svc, ok := byID[id]
	return svc, ok
}
