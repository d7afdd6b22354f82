package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/pocketbase/pocketbase/core"

	"shadequote/bom"
	"shadequote/configurator"
)

// buildBOM runs the dispatcher and records the outcome.
func (d *Deps) buildBOM(ctx context.Context, cfg configurator.ProductConfig) (*bom.BOMResult, error) {
	start := time.Now()
	result, err := bom.NewDispatcher(d.Catalog).Build(ctx, cfg)
	if d.Metrics != nil {
		d.Metrics.RecordBOMBuild(string(cfg.Base().ProductType), err == nil, time.Since(start))
	}
	return result, err
}

// HandleSessionBOM returns the bill of materials of the session's current
// configuration.
func HandleSessionBOM(d *Deps) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		entry, ok, err := requireSession(e)
		if !ok {
			return err
		}
		cfg := entry.Session.Config()
		if cfg == nil {
			return respondError(e, configurator.ErrNoProductType)
		}
		result, err := d.buildBOM(e.Request.Context(), cfg)
		if err != nil {
			return respondError(e, err)
		}
		return e.JSON(http.StatusOK, result)
	}
}

// HandleLineBOM returns the bill of materials of a stored quote line.
func HandleLineBOM(d *Deps) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		_, cfg, err := loadLineFromPath(d, e)
		if err != nil {
			return respondError(e, err)
		}
		result, err := d.buildBOM(e.Request.Context(), cfg)
		if err != nil {
			return respondError(e, err)
		}
		return e.JSON(http.StatusOK, result)
	}
}
