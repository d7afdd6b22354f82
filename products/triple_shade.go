package products

import "shadequote/configurator"

// TripleShade carries three fabrics on one headrail.
func TripleShade() configurator.ProductDefinition {
	const name = "Triple Shade"
	return configurator.ProductDefinition{
		Type: configurator.TypeTripleShade,
		Name: name,
		Steps: []configurator.Step{
			step(StepDimensions, "Dimensions", true, dimensionFields()...),
			step(StepFrontFabric, "Front fabric", true, fabricFields("frontFabric", "Front fabric")...),
			step(StepMiddleFabric, "Middle fabric", true, fabricFields("middleFabric", "Middle fabric")...),
			step(StepBackFabric, "Back fabric", true, fabricFields("backFabric", "Back fabric")...),
			step(StepOperatingSystem, "Operating system", true, operatingSystemFields()...),
			step(StepHardware, "Hardware", true, hardwareFields()...),
			step(StepAccessories, "Accessories", false),
			reviewStep(name),
		},
		ValidateStep: func(stepID string, cfg configurator.ProductConfig) bool {
			c, ok := cfg.(*configurator.TripleShade)
			if !ok {
				return false
			}
			switch stepID {
			case StepDimensions:
				return validDimensions(c.WidthM, c.HeightM)
			case StepFrontFabric:
				return c.FrontFabric.Selected()
			case StepMiddleFabric:
				return c.MiddleFabric.Selected()
			case StepBackFabric:
				return c.BackFabric.Selected()
			case StepOperatingSystem:
				return validTubeDrive(c.OperatingSystem, c.Hardware)
			case StepHardware:
				return validHardware(c.Hardware, c.OperatingSystem)
			case StepAccessories:
				return validAccessories(c.Accessories)
			}
			return true
		},
	}
}
