package handlers

import (
	"github.com/pocketbase/pocketbase/core"

	"shadequote/bom"
	"shadequote/config"
	"shadequote/configurator"
	"shadequote/metrics"
)

// Deps carries what the handlers share. It is built once in main.
type Deps struct {
	App      core.App
	Registry *configurator.Registry
	Sessions *SessionStore
	Catalog  bom.CatalogProvider
	Metrics  *metrics.Metrics
	Config   *config.Config
}

func (d *Deps) recordSessionEvent(event string) {
	if d.Metrics != nil {
		d.Metrics.RecordSessionEvent(event)
	}
}
