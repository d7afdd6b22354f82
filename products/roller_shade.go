package products

import "shadequote/configurator"

// RollerShade is the single-fabric roller shade.
func RollerShade() configurator.ProductDefinition {
	const name = "Roller Shade"
	return configurator.ProductDefinition{
		Type: configurator.TypeRollerShade,
		Name: name,
		Steps: []configurator.Step{
			step(StepDimensions, "Dimensions", true, dimensionFields()...),
			step(StepFabric, "Fabric", true, fabricFields("fabric", "Fabric")...),
			step(StepOperatingSystem, "Operating system", true, operatingSystemFields()...),
			step(StepHardware, "Hardware", true, hardwareFields()...),
			step(StepAccessories, "Accessories", false),
			reviewStep(name),
		},
		ValidateStep: func(stepID string, cfg configurator.ProductConfig) bool {
			c, ok := cfg.(*configurator.RollerShade)
			if !ok {
				return false
			}
			switch stepID {
			case StepDimensions:
				return validDimensions(c.WidthM, c.HeightM)
			case StepFabric:
				return c.Fabric.Selected()
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
