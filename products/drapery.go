package products

import (
	"shadequote/configurator"
	"shadequote/views"
)

const StepLining = "lining"

// Drapery is a multi-panel curtain on a manual or motorised track.
func Drapery() configurator.ProductDefinition {
	const name = "Drapery"
	return configurator.ProductDefinition{
		Type: configurator.TypeDrapery,
		Name: name,
		Steps: []configurator.Step{
			step(StepPanels, "Panels", true, panelFields("Panel", "Drop (m)")...),
			step(StepFabric, "Fabric", true, fabricFields("fabric", "Fabric")...),
			step(StepLining, "Lining", false, fabricFields("lining", "Lining")...),
			step(StepOperatingSystem, "Track", true,
				views.Field{Name: "driveType", Label: "Drive", Kind: "select", Opts: driveTypes},
				views.Field{Name: "motorFamily", Label: "Motor family", Kind: "text"},
				views.Field{Name: "hardwareColor", Label: "Track colour", Kind: "text"},
			),
			step(StepAccessories, "Accessories", false),
			reviewStep(name),
		},
		ValidateStep: func(stepID string, cfg configurator.ProductConfig) bool {
			c, ok := cfg.(*configurator.Drapery)
			if !ok {
				return false
			}
			switch stepID {
			case StepPanels:
				return validPanels(c.Panels, c.HeightM)
			case StepFabric:
				return c.Fabric.Selected()
			case StepLining:
				return c.Lining == nil || c.Lining.Selected()
			case StepOperatingSystem:
				return c.OperatingSystem.Complete()
			case StepAccessories:
				return validAccessories(c.Accessories)
			}
			return true
		},
	}
}
