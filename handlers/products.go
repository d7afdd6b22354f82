package handlers

import (
	"net/http"

	"github.com/pocketbase/pocketbase/core"

	"shadequote/configurator"
)

type productResponse struct {
	Type  configurator.ProductType `json:"type"`
	Name  string                   `json:"name"`
	Steps []configurator.Step      `json:"steps"`
}

// HandleProductList lists the registered product definitions with their
// steps.
func HandleProductList(d *Deps) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		defs := d.Registry.Definitions()
		out := make([]productResponse, 0, len(defs))
		for _, def := range defs {
			out = append(out, productResponse{Type: def.Type, Name: def.Name, Steps: def.Steps})
		}
		return e.JSON(http.StatusOK, out)
	}
}
