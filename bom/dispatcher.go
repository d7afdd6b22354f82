package bom

import (
	"context"
	"reflect"

	"shadequote/configurator"
)

// Dispatcher routes a configuration to the builder of its product type.
type Dispatcher struct {
	provider CatalogProvider
}

// NewDispatcher creates a dispatcher resolving items through provider.
func NewDispatcher(provider CatalogProvider) *Dispatcher {
	return &Dispatcher{provider: provider}
}

// Build synthesises the bill of materials for cfg. An unsupported
// configuration fails with *configurator.UnknownProductTypeError before any
// catalog lookup; a missing required component fails the whole build.
func (d *Dispatcher) Build(ctx context.Context, cfg configurator.ProductConfig) (*BOMResult, error) {
	switch c := cfg.(type) {
	case *configurator.RollerShade:
		if c != nil {
			return buildRollerShade(ctx, d.provider, c)
		}
	case *configurator.DualShade:
		if c != nil {
			return buildDualShade(ctx, d.provider, c)
		}
	case *configurator.TripleShade:
		if c != nil {
			return buildTripleShade(ctx, d.provider, c)
		}
	case *configurator.Drapery:
		if c != nil {
			return buildDrapery(ctx, d.provider, c)
		}
	case *configurator.Awning:
		if c != nil {
			return buildAwning(ctx, d.provider, c)
		}
	case *configurator.WindowFilm:
		if c != nil {
			return buildWindowFilm(ctx, d.provider, c)
		}
	case nil:
	default:
		if !isNilPointer(c) {
			return nil, &configurator.UnknownProductTypeError{Type: string(c.Base().ProductType)}
		}
	}
	return nil, &configurator.UnknownProductTypeError{}
}

// isNilPointer reports whether cfg holds a typed nil pointer.
func isNilPointer(cfg configurator.ProductConfig) bool {
	v := reflect.ValueOf(cfg)
	return v.Kind() == reflect.Pointer && v.IsNil()
}

// BuildBOM is a shorthand for NewDispatcher(provider).Build(ctx, cfg).
func BuildBOM(ctx context.Context, cfg configurator.ProductConfig, provider CatalogProvider) (*BOMResult, error) {
	return NewDispatcher(provider).Build(ctx, cfg)
}
