package products

import (
	"shadequote/configurator"
	"shadequote/views"
)

const StepFrame = "frame"

// Awning is an exterior awning; HeightM holds the projection.
func Awning() configurator.ProductDefinition {
	const name = "Awning"
	return configurator.ProductDefinition{
		Type: configurator.TypeAwning,
		Name: name,
		Steps: []configurator.Step{
			step(StepDimensions, "Dimensions", true,
				views.Field{Name: "widthM", Label: "Width (m)", Kind: "number"},
				views.Field{Name: "heightM", Label: "Projection (m)", Kind: "number"},
			),
			step(StepFabric, "Canvas", true, fabricFields("fabric", "Canvas")...),
			step(StepOperatingSystem, "Operation", true,
				views.Field{Name: "driveType", Label: "Drive", Kind: "select", Opts: driveTypes},
				views.Field{Name: "motorFamily", Label: "Motor family", Kind: "text"},
			),
			step(StepFrame, "Frame", true,
				views.Field{Name: "hardwareColor", Label: "Frame colour", Kind: "text"},
			),
			step(StepAccessories, "Accessories", false),
			reviewStep(name),
		},
		ValidateStep: func(stepID string, cfg configurator.ProductConfig) bool {
			c, ok := cfg.(*configurator.Awning)
			if !ok {
				return false
			}
			switch stepID {
			case StepDimensions:
				return validDimensions(c.WidthM, c.HeightM)
			case StepFabric:
				return c.Fabric.Selected()
			case StepOperatingSystem:
				return c.OperatingSystem.Complete()
			case StepFrame:
				return c.HardwareColor != ""
			case StepAccessories:
				return validAccessories(c.Accessories)
			}
			return true
		},
	}
}
