package configurator

// ProductConfig is a finished or in-progress configuration of one product.
// The concrete value is always one of the pointer variants below; the set is
// closed because the marker method is unexported.
type ProductConfig interface {
	Base() *Common
	isProductConfig()
}

// Common holds the fields shared by every product type.
type Common struct {
	ProductType   ProductType `json:"productType"`
	ProductTypeID string      `json:"productTypeId,omitempty"`
	Area          string      `json:"area,omitempty"`
	Position      int         `json:"position"`
	Quantity      int         `json:"quantity,omitempty"`
}

func (c *Common) Base() *Common { return c }

func (c *Common) isProductConfig() {}

// Type returns the discriminator.
func (c *Common) Type() ProductType { return c.ProductType }

// Units returns the ordered quantity, defaulting to one.
func (c *Common) Units() int {
	if c.Quantity < 1 {
		return 1
	}
	return c.Quantity
}

// FabricLayer is one fabric selection. VariantID is the catalog item id of
// the chosen colour/variant inside the collection.
type FabricLayer struct {
	CollectionID string `json:"collectionId,omitempty"`
	VariantID    string `json:"variantId,omitempty"`
}

// Selected reports whether a concrete variant has been chosen.
func (f FabricLayer) Selected() bool {
	return f.VariantID != ""
}

// OperatingSystem describes how the covering is driven.
type OperatingSystem struct {
	DriveType   DriveType `json:"driveType,omitempty"`
	MotorFamily string    `json:"motorFamily,omitempty"`
	TubeType    string    `json:"tubeType,omitempty"`
	ControlSide string    `json:"controlSide,omitempty"`
}

// Complete reports whether the drive selection is usable: a drive type is
// chosen and motorised drives name a motor family.
func (o OperatingSystem) Complete() bool {
	switch o.DriveType {
	case DriveManual:
		return true
	case DriveMotor:
		return o.MotorFamily != ""
	}
	return false
}

// Hardware holds the finish options. HardwareColor is the one canonical
// field for the hardware/operating-system colour.
type Hardware struct {
	HardwareColor   string `json:"hardwareColor,omitempty"`
	CassetteShape   string `json:"cassetteShape,omitempty"`
	SideChannel     bool   `json:"sideChannel,omitempty"`
	SideChannelType string `json:"sideChannelType,omitempty"`
}

// Panel is one hanging section of a multi-panel assembly. Panels never carry
// their own height; the parent configuration's HeightM applies to all.
type Panel struct {
	WidthM float64 `json:"widthM"`
}

// TotalWidth sums the widths of all panels.
func TotalWidth(panels []Panel) float64 {
	var sum float64
	for _, p := range panels {
		sum += p.WidthM
	}
	return sum
}

type RollerShade struct {
	Common
	WidthM  float64     `json:"widthM,omitempty"`
	HeightM float64     `json:"heightM,omitempty"`
	Fabric  FabricLayer `json:"fabric"`
	OperatingSystem
	Hardware
	Accessories []AccessoryLine `json:"accessories,omitempty"`
}

type DualShade struct {
	Common
	WidthM      float64     `json:"widthM,omitempty"`
	HeightM     float64     `json:"heightM,omitempty"`
	FrontFabric FabricLayer `json:"frontFabric"`
	BackFabric  FabricLayer `json:"backFabric"`
	OperatingSystem
	Hardware
	Accessories []AccessoryLine `json:"accessories,omitempty"`
}

type TripleShade struct {
	Common
	WidthM       float64     `json:"widthM,omitempty"`
	HeightM      float64     `json:"heightM,omitempty"`
	FrontFabric  FabricLayer `json:"frontFabric"`
	MiddleFabric FabricLayer `json:"middleFabric"`
	BackFabric   FabricLayer `json:"backFabric"`
	OperatingSystem
	Hardware
	Accessories []AccessoryLine `json:"accessories,omitempty"`
}

// Drapery is a multi-panel curtain on a track. Lining is an optional second
// fabric layer.
type Drapery struct {
	Common
	Panels  []Panel      `json:"panels,omitempty"`
	HeightM float64      `json:"heightM,omitempty"`
	Fabric  FabricLayer  `json:"fabric"`
	Lining  *FabricLayer `json:"lining,omitempty"`
	OperatingSystem
	HardwareColor string          `json:"hardwareColor,omitempty"`
	Accessories   []AccessoryLine `json:"accessories,omitempty"`
}

// Awning uses WidthM for the frame width and HeightM for the projection.
type Awning struct {
	Common
	WidthM  float64     `json:"widthM,omitempty"`
	HeightM float64     `json:"heightM,omitempty"`
	Fabric  FabricLayer `json:"fabric"`
	OperatingSystem
	HardwareColor string          `json:"hardwareColor,omitempty"`
	Accessories   []AccessoryLine `json:"accessories,omitempty"`
}

// WindowFilm covers one or more panes sharing one height.
type WindowFilm struct {
	Common
	Panels      []Panel         `json:"panels,omitempty"`
	HeightM     float64         `json:"heightM,omitempty"`
	Film        FabricLayer     `json:"film"`
	Accessories []AccessoryLine `json:"accessories,omitempty"`
}

// NewConfig returns an empty configuration of the given type, or nil if the
// type is not supported.
func NewConfig(t ProductType) ProductConfig {
	var cfg ProductConfig
	switch t {
	case TypeRollerShade:
		cfg = &RollerShade{}
	case TypeDualShade:
		cfg = &DualShade{}
	case TypeTripleShade:
		cfg = &TripleShade{}
	case TypeDrapery:
		cfg = &Drapery{}
	case TypeAwning:
		cfg = &Awning{}
	case TypeWindowFilm:
		cfg = &WindowFilm{}
	default:
		return nil
	}
	cfg.Base().ProductType = t
	return cfg
}

// AccessoriesOf returns the accessory lines of any configuration.
func AccessoriesOf(cfg ProductConfig) []AccessoryLine {
	switch c := cfg.(type) {
	case *RollerShade:
		return c.Accessories
	case *DualShade:
		return c.Accessories
	case *TripleShade:
		return c.Accessories
	case *Drapery:
		return c.Accessories
	case *Awning:
		return c.Accessories
	case *WindowFilm:
		return c.Accessories
	}
	return nil
}

// SetAccessories replaces the accessory lines of any configuration.
func SetAccessories(cfg ProductConfig, lines []AccessoryLine) {
	switch c := cfg.(type) {
	case *RollerShade:
		c.Accessories = lines
	case *DualShade:
		c.Accessories = lines
	case *TripleShade:
		c.Accessories = lines
	case *Drapery:
		c.Accessories = lines
	case *Awning:
		c.Accessories = lines
	case *WindowFilm:
		c.Accessories = lines
	}
}
