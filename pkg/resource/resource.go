package resource

import (
	"fmt"
	"github.com/arya-analytics/saki/pkg/naming"
)

// Type is the name of a resource type, e.g. "order" or "LineItem".
type Type string

// Segment returns the URL segment conventional routes use for the type.
func (t Type) Segment() string { return naming.Segment(string(t)) }

// ID identifies a live resource. An example:
//
//	orderID := ID{
//		Key:  "42",
//		Type: "order",
//	}
//
// ID implements Model, so an ID can stand in for the resource it identifies
// anywhere a path is built.
type ID struct {
	// Key uniquely identifies the resource within its Type.
	Key string
	// Type is the type of resource the Key refers to.
	Type Type
}

// Validate checks that both elements of the ID are set.
func (id ID) Validate() error {
	if id.Key == "" {
		return fmt.Errorf("[resource] - key is required")
	}
	if id.Type == "" {
		return fmt.Errorf("[resource] - type is required")
	}
	return nil
}

func (id ID) String() string { return fmt.Sprintf("%s:%s", id.Key, id.Type) }

// ResourceID implements the Model interface.
func (id ID) ResourceID() ID { return id }

// NewID builds an ID, formatting key with its default format so integer keys
// can be passed directly.
func NewID(t Type, key interface{}) ID { return ID{Key: fmt.Sprint(key), Type: t} }

// Model is a live resource instance.
type Model interface {
	// ResourceID returns the type and key of the resource.
	ResourceID() ID
}
