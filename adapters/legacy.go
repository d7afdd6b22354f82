// Package adapters maps configurations to and from older and persisted
// shapes.
package adapters

import (
	"encoding/json"

	"shadequote/configurator"
)

// LegacyRollerShade is the flat configuration shape stored before product
// types were introduced. Only roller shades existed then.
type LegacyRollerShade struct {
	ProductTypeID   string                       `json:"productTypeId,omitempty"`
	Area            string                       `json:"area,omitempty"`
	Position        int                          `json:"position"`
	Quantity        int                          `json:"quantity,omitempty"`
	Width           float64                      `json:"width,omitempty"`
	Height          float64                      `json:"height,omitempty"`
	CollectionID    string                       `json:"collectionId,omitempty"`
	VariantID       string                       `json:"variantId,omitempty"`
	DriveType       string                       `json:"driveType,omitempty"`
	MotorFamily     string                       `json:"motorFamily,omitempty"`
	TubeType        string                       `json:"tubeType,omitempty"`
	ControlSide     string                       `json:"controlSide,omitempty"`
	HardwareColor   string                       `json:"hardwareColor,omitempty"`
	CassetteShape   string                       `json:"cassetteShape,omitempty"`
	SideChannel     bool                         `json:"sideChannel,omitempty"`
	SideChannelType string                       `json:"sideChannelType,omitempty"`
	Accessories     []configurator.AccessoryLine `json:"accessories,omitempty"`
}

// UnmarshalJSON accepts the historical aliases of the hardware colour
// (hardware_color, operatingSystemColor). hardwareColor wins when several
// are present.
func (l *LegacyRollerShade) UnmarshalJSON(data []byte) error {
	type plain LegacyRollerShade
	var aux struct {
		plain
		HardwareColorSnake   string `json:"hardware_color"`
		OperatingSystemColor string `json:"operatingSystemColor"`
	}
	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}
	*l = LegacyRollerShade(aux.plain)
	if l.HardwareColor == "" {
		l.HardwareColor = firstNonEmpty(aux.HardwareColorSnake, aux.OperatingSystemColor)
	}
	return nil
}

// FromLegacy converts the legacy shape into a roller shade configuration.
func FromLegacy(l LegacyRollerShade) *configurator.RollerShade {
	return &configurator.RollerShade{
		Common: configurator.Common{
			ProductType:   configurator.TypeRollerShade,
			ProductTypeID: l.ProductTypeID,
			Area:          l.Area,
			Position:      l.Position,
			Quantity:      l.Quantity,
		},
		WidthM:  l.Width,
		HeightM: l.Height,
		Fabric: configurator.FabricLayer{
			CollectionID: l.CollectionID,
			VariantID:    l.VariantID,
		},
		OperatingSystem: configurator.OperatingSystem{
			DriveType:   configurator.DriveType(l.DriveType),
			MotorFamily: l.MotorFamily,
			TubeType:    l.TubeType,
			ControlSide: l.ControlSide,
		},
		Hardware: configurator.Hardware{
			HardwareColor:   l.HardwareColor,
			CassetteShape:   l.CassetteShape,
			SideChannel:     l.SideChannel,
			SideChannelType: l.SideChannelType,
		},
		Accessories: l.Accessories,
	}
}

// ToLegacy converts a roller shade configuration into the legacy shape.
func ToLegacy(c *configurator.RollerShade) LegacyRollerShade {
	return LegacyRollerShade{
		ProductTypeID:   c.ProductTypeID,
		Area:            c.Area,
		Position:        c.Position,
		Quantity:        c.Quantity,
		Width:           c.WidthM,
		Height:          c.HeightM,
		CollectionID:    c.Fabric.CollectionID,
		VariantID:       c.Fabric.VariantID,
		DriveType:       string(c.DriveType),
		MotorFamily:     c.MotorFamily,
		TubeType:        c.TubeType,
		ControlSide:     c.ControlSide,
		HardwareColor:   c.HardwareColor,
		CassetteShape:   c.CassetteShape,
		SideChannel:     c.SideChannel,
		SideChannelType: c.SideChannelType,
		Accessories:     c.Accessories,
	}
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
