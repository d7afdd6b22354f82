package adapters

import (
	"fmt"

	"github.com/go-playground/validator/v10"

	"shadequote/configurator"
	"shadequote/services"
)

var validate = validator.New()

// LineMetadata holds what the flat quote line columns cannot. Fabrics lists
// the layers after the primary one in build order: back for dual shades,
// middle then back for triple shades, lining for drapery.
type LineMetadata struct {
	Panels      []configurator.Panel       `json:"panels,omitempty" validate:"dive"`
	PanelIndex  int                        `json:"panelIndex,omitempty" validate:"gte=0"`
	TotalPanels int                        `json:"totalPanels,omitempty" validate:"gte=0"`
	Fabrics     []configurator.FabricLayer `json:"fabrics,omitempty"`
}

// PersistedLine is the flat record shape of a quote line.
type PersistedLine struct {
	ID                         string                       `json:"id,omitempty"`
	QuoteID                    string                       `json:"quoteId,omitempty"`
	Position                   int                          `json:"position" validate:"gte=0"`
	ProductType                string                       `json:"productType" validate:"required"`
	ProductTypeID              string                       `json:"productTypeId,omitempty"`
	Area                       string                       `json:"area,omitempty"`
	WidthM                     *float64                     `json:"widthM,omitempty" validate:"omitempty,gt=0"`
	HeightM                    *float64                     `json:"heightM,omitempty" validate:"omitempty,gt=0"`
	Qty                        int                          `json:"qty,omitempty" validate:"gte=0"`
	CollectionID               string                       `json:"collectionId,omitempty"`
	VariantID                  string                       `json:"variantId,omitempty"`
	OperatingSystemDriveType   string                       `json:"operatingSystemDriveType,omitempty"`
	OperatingSystemMotorFamily string                       `json:"operatingSystemMotorFamily,omitempty"`
	OperatingSystemTubeType    string                       `json:"operatingSystemTubeType,omitempty"`
	OperatingSystemControlSide string                       `json:"operatingSystemControlSide,omitempty"`
	HardwareColor              string                       `json:"hardwareColor,omitempty"`
	CassetteShape              string                       `json:"cassetteShape,omitempty"`
	SideChannel                bool                         `json:"sideChannel,omitempty"`
	SideChannelType            string                       `json:"sideChannelType,omitempty"`
	Accessories                []configurator.AccessoryLine `json:"accessories,omitempty" validate:"dive"`
	Metadata                   *LineMetadata                `json:"metadata,omitempty"`
}

// ValidateLine checks a persisted line before it is written.
func ValidateLine(line PersistedLine) error {
	if err := validate.Struct(line); err != nil {
		return fmt.Errorf("invalid quote line: %w", err)
	}
	if !configurator.ProductType(line.ProductType).Valid() {
		return &configurator.UnknownProductTypeError{Type: line.ProductType}
	}
	return nil
}

// ConfigFromLine rebuilds the configuration stored in a quote line. Legacy
// multi-panel lines that carry only the panel count get a single panel
// sized to the record width.
func ConfigFromLine(line PersistedLine) (configurator.ProductConfig, error) {
	t := configurator.ProductType(line.ProductType)
	cfg := configurator.NewConfig(t)
	if cfg == nil {
		return nil, &configurator.UnknownProductTypeError{Type: line.ProductType}
	}
	common := cfg.Base()
	common.ProductTypeID = line.ProductTypeID
	common.Area = line.Area
	common.Position = line.Position
	common.Quantity = line.Qty

	width := deref(line.WidthM)
	height := deref(line.HeightM)
	primary := configurator.FabricLayer{CollectionID: line.CollectionID, VariantID: line.VariantID}
	extra := func(i int) configurator.FabricLayer {
		if line.Metadata == nil || i >= len(line.Metadata.Fabrics) {
			return configurator.FabricLayer{}
		}
		return line.Metadata.Fabrics[i]
	}

	switch c := cfg.(type) {
	case *configurator.RollerShade:
		c.WidthM, c.HeightM = width, height
		c.Fabric = primary
		c.OperatingSystem = operatingSystemOf(line)
		c.Hardware = hardwareOf(line)
		c.Accessories = line.Accessories
	case *configurator.DualShade:
		c.WidthM, c.HeightM = width, height
		c.FrontFabric = primary
		c.BackFabric = extra(0)
		c.OperatingSystem = operatingSystemOf(line)
		c.Hardware = hardwareOf(line)
		c.Accessories = line.Accessories
	case *configurator.TripleShade:
		c.WidthM, c.HeightM = width, height
		c.FrontFabric = primary
		c.MiddleFabric = extra(0)
		c.BackFabric = extra(1)
		c.OperatingSystem = operatingSystemOf(line)
		c.Hardware = hardwareOf(line)
		c.Accessories = line.Accessories
	case *configurator.Drapery:
		c.Panels = panelsOf(line)
		c.HeightM = height
		c.Fabric = primary
		if line.Metadata != nil && len(line.Metadata.Fabrics) > 0 {
			lining := line.Metadata.Fabrics[0]
			c.Lining = &lining
		}
		c.OperatingSystem = operatingSystemOf(line)
		c.HardwareColor = line.HardwareColor
		c.Accessories = line.Accessories
	case *configurator.Awning:
		c.WidthM, c.HeightM = width, height
		c.Fabric = primary
		c.OperatingSystem = operatingSystemOf(line)
		c.HardwareColor = line.HardwareColor
		c.Accessories = line.Accessories
	case *configurator.WindowFilm:
		c.Panels = panelsOf(line)
		c.HeightM = height
		c.Film = primary
		c.Accessories = line.Accessories
	}
	return cfg, nil
}

// LineFromConfig flattens a configuration into the quote line shape.
// Multi-panel products store the summed width and keep every panel in the
// metadata.
func LineFromConfig(cfg configurator.ProductConfig) (PersistedLine, error) {
	if cfg == nil {
		return PersistedLine{}, &configurator.UnknownProductTypeError{}
	}
	common := cfg.Base()
	line := PersistedLine{
		Position:      common.Position,
		ProductType:   string(common.ProductType),
		ProductTypeID: common.ProductTypeID,
		Area:          common.Area,
		Qty:           common.Quantity,
	}

	switch c := cfg.(type) {
	case *configurator.RollerShade:
		setDims(&line, c.WidthM, c.HeightM)
		setPrimary(&line, c.Fabric)
		setOperatingSystem(&line, c.OperatingSystem)
		setHardware(&line, c.Hardware)
		line.Accessories = c.Accessories
	case *configurator.DualShade:
		setDims(&line, c.WidthM, c.HeightM)
		setPrimary(&line, c.FrontFabric)
		line.Metadata = &LineMetadata{Fabrics: []configurator.FabricLayer{c.BackFabric}}
		setOperatingSystem(&line, c.OperatingSystem)
		setHardware(&line, c.Hardware)
		line.Accessories = c.Accessories
	case *configurator.TripleShade:
		setDims(&line, c.WidthM, c.HeightM)
		setPrimary(&line, c.FrontFabric)
		line.Metadata = &LineMetadata{Fabrics: []configurator.FabricLayer{c.MiddleFabric, c.BackFabric}}
		setOperatingSystem(&line, c.OperatingSystem)
		setHardware(&line, c.Hardware)
		line.Accessories = c.Accessories
	case *configurator.Drapery:
		setDims(&line, configurator.TotalWidth(c.Panels), c.HeightM)
		setPrimary(&line, c.Fabric)
		line.Metadata = panelMetadata(c.Panels)
		if c.Lining != nil {
			line.Metadata.Fabrics = []configurator.FabricLayer{*c.Lining}
		}
		setOperatingSystem(&line, c.OperatingSystem)
		line.HardwareColor = c.HardwareColor
		line.Accessories = c.Accessories
	case *configurator.Awning:
		setDims(&line, c.WidthM, c.HeightM)
		setPrimary(&line, c.Fabric)
		setOperatingSystem(&line, c.OperatingSystem)
		line.HardwareColor = c.HardwareColor
		line.Accessories = c.Accessories
	case *configurator.WindowFilm:
		setDims(&line, configurator.TotalWidth(c.Panels), c.HeightM)
		setPrimary(&line, c.Film)
		line.Metadata = panelMetadata(c.Panels)
		line.Accessories = c.Accessories
	default:
		return PersistedLine{}, &configurator.UnknownProductTypeError{Type: string(common.ProductType)}
	}
	return line, nil
}

// PrimaryFabric returns the fabric layer whose catalog item prices a line.
func PrimaryFabric(cfg configurator.ProductConfig) (configurator.FabricLayer, bool) {
	switch c := cfg.(type) {
	case *configurator.RollerShade:
		return c.Fabric, true
	case *configurator.DualShade:
		return c.FrontFabric, true
	case *configurator.TripleShade:
		return c.FrontFabric, true
	case *configurator.Drapery:
		return c.Fabric, true
	case *configurator.Awning:
		return c.Fabric, true
	case *configurator.WindowFilm:
		return c.Film, true
	}
	return configurator.FabricLayer{}, false
}

func panelsOf(line PersistedLine) []configurator.Panel {
	if line.Metadata != nil && len(line.Metadata.Panels) > 0 {
		return append([]configurator.Panel(nil), line.Metadata.Panels...)
	}
	if line.WidthM == nil {
		return nil
	}
	return []configurator.Panel{{WidthM: *line.WidthM}}
}

func panelMetadata(panels []configurator.Panel) *LineMetadata {
	if len(panels) == 0 {
		return &LineMetadata{}
	}
	return &LineMetadata{
		Panels:      append([]configurator.Panel(nil), panels...),
		TotalPanels: len(panels),
	}
}

func operatingSystemOf(line PersistedLine) configurator.OperatingSystem {
	return configurator.OperatingSystem{
		DriveType:   configurator.DriveType(line.OperatingSystemDriveType),
		MotorFamily: line.OperatingSystemMotorFamily,
		TubeType:    line.OperatingSystemTubeType,
		ControlSide: line.OperatingSystemControlSide,
	}
}

func hardwareOf(line PersistedLine) configurator.Hardware {
	return configurator.Hardware{
		HardwareColor:   line.HardwareColor,
		CassetteShape:   line.CassetteShape,
		SideChannel:     line.SideChannel,
		SideChannelType: line.SideChannelType,
	}
}

func setDims(line *PersistedLine, widthM, heightM float64) {
	line.WidthM = services.Dim(widthM)
	line.HeightM = services.Dim(heightM)
}

func setPrimary(line *PersistedLine, layer configurator.FabricLayer) {
	line.CollectionID = layer.CollectionID
	line.VariantID = layer.VariantID
}

func setOperatingSystem(line *PersistedLine, os configurator.OperatingSystem) {
	line.OperatingSystemDriveType = string(os.DriveType)
	line.OperatingSystemMotorFamily = os.MotorFamily
	line.OperatingSystemTubeType = os.TubeType
	line.OperatingSystemControlSide = os.ControlSide
}

func setHardware(line *PersistedLine, hw configurator.Hardware) {
	line.HardwareColor = hw.HardwareColor
	line.CassetteShape = hw.CassetteShape
	line.SideChannel = hw.SideChannel
	line.SideChannelType = hw.SideChannelType
}

func deref(v *float64) float64 {
	if v == nil {
		return 0
	}
	return *v
}
