package factory

import (
	"github.com/arya-analytics/saki/pkg/resource"
	"github.com/cockroachdb/errors"
	"gopkg.in/yaml.v3"
	"io"
)

// Fixture is the YAML definition of a single factory. An example file:
//
//	order:
//	  key: "7"
//	  attrs:
//	    total: 12
//	widget:
//	  type: Widget
//	  attrs:
//	    name: sprocket
//
// Type defaults to the fixture name. Fixtures without a key get a fresh uuid
// every time they are built.
type Fixture struct {
	Type  resource.Type          `yaml:"type"`
	Key   string                 `yaml:"key"`
	Attrs map[string]interface{} `yaml:"attrs"`
}

// LoadFixtures decodes fixtures from r and defines a builder for each of them in
// the registry.
func (r *Registry) LoadFixtures(rd io.Reader) error {
	var fixtures map[string]Fixture
	if err := yaml.NewDecoder(rd).Decode(&fixtures); err != nil {
		if errors.Is(err, io.EOF) {
			return nil
		}
		return errors.Wrap(err, "[factory] - invalid fixtures")
	}
	for name, f := range fixtures {
		r.Define(name, f.builder(name))
	}
	return nil
}

func (f Fixture) builder(name string) Builder {
	t := f.Type
	if t == "" {
		t = resource.Type(name)
	}
	if f.Key == "" {
		return Records(t, f.Attrs)
	}
	id := resource.ID{Type: t, Key: f.Key}
	return func() (resource.Model, error) {
		return Record{ID: id, Attrs: copyAttrs(f.Attrs)}, nil
	}
}
