// Package products defines the wizard steps and step rules of every
// supported window-covering product.
package products

import (
	"fmt"
	"slices"

	"shadequote/configurator"
	"shadequote/views"
)

// Definitions returns every product definition in registration order.
func Definitions() []configurator.ProductDefinition {
	return []configurator.ProductDefinition{
		RollerShade(),
		DualShade(),
		TripleShade(),
		Drapery(),
		Awning(),
		WindowFilm(),
	}
}

// NewRegistry registers every product module into a new registry. Call it
// once at startup before any session is created.
func NewRegistry() *configurator.Registry {
	r := configurator.NewRegistry()
	for _, def := range Definitions() {
		r.Register(def)
	}
	return r
}

// Shared step ids.
const (
	StepDimensions      = "dimensions"
	StepPanels          = "panels"
	StepFabric          = "fabric"
	StepOperatingSystem = "operating-system"
	StepHardware        = "hardware"
	StepAccessories     = "accessories"
	StepReview          = "review"
)

var (
	driveTypes     = []string{string(configurator.DriveManual), string(configurator.DriveMotor)}
	cassetteShapes = []string{"open", "round", "square", "fascia"}
	tubeTypes      = []string{"38mm", "45mm", "55mm", "70mm"}
	controlSides   = []string{"left", "right"}
)

// compatibleTubes limits the roll tubes that fit inside each cassette
// profile. An open (cassette-less) mount takes every tube.
var compatibleTubes = map[string][]string{
	"round":  {"38mm", "45mm"},
	"square": {"38mm", "45mm", "55mm"},
	"fascia": {"45mm", "55mm", "70mm"},
}

func step(id, label string, required bool, fields ...views.Field) configurator.Step {
	return configurator.Step{
		ID:       id,
		Label:    label,
		Required: required,
		Render:   views.StepPanel(id, label, fields...),
	}
}

func reviewStep(productName string) configurator.Step {
	return configurator.Step{
		ID:       StepReview,
		Label:    "Review",
		Required: false,
		Render:   views.ReviewPanel(productName),
	}
}

func dimensionFields() []views.Field {
	return []views.Field{
		{Name: "widthM", Label: "Width (m)", Kind: "number"},
		{Name: "heightM", Label: "Height (m)", Kind: "number"},
	}
}

func operatingSystemFields() []views.Field {
	return []views.Field{
		{Name: "driveType", Label: "Drive", Kind: "select", Opts: driveTypes},
		{Name: "motorFamily", Label: "Motor family", Kind: "text"},
		{Name: "tubeType", Label: "Tube", Kind: "select", Opts: tubeTypes},
		{Name: "controlSide", Label: "Control side", Kind: "select", Opts: controlSides},
	}
}

func hardwareFields() []views.Field {
	return []views.Field{
		{Name: "hardwareColor", Label: "Hardware colour", Kind: "text"},
		{Name: "cassetteShape", Label: "Cassette", Kind: "select", Opts: cassetteShapes},
		{Name: "sideChannel", Label: "Side channel", Kind: "checkbox"},
		{Name: "sideChannelType", Label: "Side channel type", Kind: "text"},
	}
}

func fabricFields(key, label string) []views.Field {
	return []views.Field{
		{Name: key + ".collectionId", Label: label + " collection", Kind: "text"},
		{Name: key + ".variantId", Label: label + " colour", Kind: "text"},
	}
}

// panelSlots is the number of panel width inputs a panel step renders.
const panelSlots = 4

// panelFields renders one width input per panel slot, named by the panel's
// position in the panels list.
func panelFields(label string, heightLabel string) []views.Field {
	fields := make([]views.Field, 0, panelSlots+1)
	for i := range panelSlots {
		fields = append(fields, views.Field{
			Name:  fmt.Sprintf("panels.%d.widthM", i),
			Label: fmt.Sprintf("%s %d width (m)", label, i+1),
			Kind:  "number",
		})
	}
	return append(fields, views.Field{Name: "heightM", Label: heightLabel, Kind: "number"})
}

func validDimensions(widthM, heightM float64) bool {
	return widthM > 0 && heightM > 0
}

func validPanels(panels []configurator.Panel, heightM float64) bool {
	if len(panels) == 0 || heightM <= 0 {
		return false
	}
	for _, p := range panels {
		if p.WidthM <= 0 {
			return false
		}
	}
	return true
}

// validTubeDrive checks a roller-type drive: the drive is complete, a tube
// is chosen and it fits the cassette.
func validTubeDrive(os configurator.OperatingSystem, hw configurator.Hardware) bool {
	if !os.Complete() || os.TubeType == "" {
		return false
	}
	return tubeFitsCassette(os.TubeType, hw.CassetteShape)
}

func tubeFitsCassette(tube, cassette string) bool {
	allowed, ok := compatibleTubes[cassette]
	if !ok {
		return true
	}
	return slices.Contains(allowed, tube)
}

func validHardware(hw configurator.Hardware, os configurator.OperatingSystem) bool {
	if hw.HardwareColor == "" {
		return false
	}
	if hw.SideChannel && hw.SideChannelType == "" {
		return false
	}
	return tubeFitsCassette(os.TubeType, hw.CassetteShape)
}

func validAccessories(lines []configurator.AccessoryLine) bool {
	for _, l := range lines {
		if l.Qty < 1 || l.CatalogItemID == "" {
			return false
		}
	}
	return true
}
