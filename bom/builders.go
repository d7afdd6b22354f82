package bom

import (
	"context"

	"shadequote/configurator"
)

func buildRollerShade(ctx context.Context, p CatalogProvider, c *configurator.RollerShade) (*BOMResult, error) {
	b := newLineBuilder(ctx, p, &c.Common)
	units := c.Units()
	if err := b.fabric(c.Fabric, SourceFabric, c.WidthM, c.HeightM, float64(units)); err != nil {
		return nil, err
	}
	if err := b.rollerHardware(c.OperatingSystem, c.Hardware, c.WidthM, c.HeightM, units, 1); err != nil {
		return nil, err
	}
	b.accessories(c.Accessories)
	return b.result(), nil
}

func buildDualShade(ctx context.Context, p CatalogProvider, c *configurator.DualShade) (*BOMResult, error) {
	b := newLineBuilder(ctx, p, &c.Common)
	units := c.Units()
	if err := b.fabric(c.FrontFabric, SourceFrontFabric, c.WidthM, c.HeightM, float64(units)); err != nil {
		return nil, err
	}
	if err := b.fabric(c.BackFabric, SourceBackFabric, c.WidthM, c.HeightM, float64(units)); err != nil {
		return nil, err
	}
	if err := b.rollerHardware(c.OperatingSystem, c.Hardware, c.WidthM, c.HeightM, units, 2); err != nil {
		return nil, err
	}
	b.accessories(c.Accessories)
	return b.result(), nil
}

func buildTripleShade(ctx context.Context, p CatalogProvider, c *configurator.TripleShade) (*BOMResult, error) {
	b := newLineBuilder(ctx, p, &c.Common)
	units := c.Units()
	layers := []struct {
		layer  configurator.FabricLayer
		source Source
	}{
		{c.FrontFabric, SourceFrontFabric},
		{c.MiddleFabric, SourceMidFabric},
		{c.BackFabric, SourceBackFabric},
	}
	for _, l := range layers {
		if err := b.fabric(l.layer, l.source, c.WidthM, c.HeightM, float64(units)); err != nil {
			return nil, err
		}
	}
	if err := b.rollerHardware(c.OperatingSystem, c.Hardware, c.WidthM, c.HeightM, units, 3); err != nil {
		return nil, err
	}
	b.accessories(c.Accessories)
	return b.result(), nil
}

// buildDrapery prices one fabric drop per panel, an optional lining, and a
// track running the full width of all panels.
func buildDrapery(ctx context.Context, p CatalogProvider, c *configurator.Drapery) (*BOMResult, error) {
	b := newLineBuilder(ctx, p, &c.Common)
	units := c.Units()
	width := configurator.TotalWidth(c.Panels)
	drops := float64(units * len(c.Panels))
	if drops == 0 {
		drops = float64(units)
	}
	if err := b.fabric(c.Fabric, SourceFabric, width, c.HeightM, drops); err != nil {
		return nil, err
	}
	if c.Lining != nil && c.Lining.Selected() {
		if err := b.fabric(*c.Lining, SourceLining, width, c.HeightM, drops); err != nil {
			return nil, err
		}
	}
	if err := b.component(CategoryTrack, "", true, SourceTrack, float64(units), width, 0); err != nil {
		return nil, err
	}
	switch c.DriveType {
	case configurator.DriveMotor:
		if err := b.component(CategoryMotor, c.MotorFamily, true, SourceMotor, float64(units), 0, 0); err != nil {
			return nil, err
		}
	default:
		// Hand-drawn drapery needs no control; a wand is added when stocked.
		if err := b.component(CategoryControl, "", false, SourceControl, float64(units), 0, 0); err != nil {
			return nil, err
		}
	}
	b.accessories(c.Accessories)
	return b.result(), nil
}

func buildAwning(ctx context.Context, p CatalogProvider, c *configurator.Awning) (*BOMResult, error) {
	b := newLineBuilder(ctx, p, &c.Common)
	units := c.Units()
	if err := b.fabric(c.Fabric, SourceFabric, c.WidthM, c.HeightM, float64(units)); err != nil {
		return nil, err
	}
	if err := b.component(CategoryFrame, "", true, SourceFrame, float64(units), c.WidthM, c.HeightM); err != nil {
		return nil, err
	}
	if err := b.drive(c.OperatingSystem, float64(units)); err != nil {
		return nil, err
	}
	b.accessories(c.Accessories)
	return b.result(), nil
}

// buildWindowFilm prices one film drop per pane.
func buildWindowFilm(ctx context.Context, p CatalogProvider, c *configurator.WindowFilm) (*BOMResult, error) {
	b := newLineBuilder(ctx, p, &c.Common)
	units := c.Units()
	drops := float64(units * len(c.Panels))
	if drops == 0 {
		drops = float64(units)
	}
	if err := b.fabric(c.Film, SourceFilm, configurator.TotalWidth(c.Panels), c.HeightM, drops); err != nil {
		return nil, err
	}
	b.accessories(c.Accessories)
	return b.result(), nil
}
