package products

import (
	"shadequote/configurator"
)

const StepFilm = "film"

// WindowFilm is applied film over one or more panes of one height.
func WindowFilm() configurator.ProductDefinition {
	const name = "Window Film"
	return configurator.ProductDefinition{
		Type: configurator.TypeWindowFilm,
		Name: name,
		Steps: []configurator.Step{
			step(StepPanels, "Panes", true, panelFields("Pane", "Height (m)")...),
			step(StepFilm, "Film", true, fabricFields("film", "Film")...),
			step(StepAccessories, "Accessories", false),
			reviewStep(name),
		},
		ValidateStep: func(stepID string, cfg configurator.ProductConfig) bool {
			c, ok := cfg.(*configurator.WindowFilm)
			if !ok {
				return false
			}
			switch stepID {
			case StepPanels:
				return validPanels(c.Panels, c.HeightM)
			case StepFilm:
				return c.Film.Selected()
			case StepAccessories:
				return validAccessories(c.Accessories)
			}
			return true
		},
	}
}
