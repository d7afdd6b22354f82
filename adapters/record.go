package adapters

import (
	"encoding/json"
	"fmt"

	"github.com/pocketbase/pocketbase/core"

	"shadequote/configurator"
	"shadequote/services"
)

// LineFromRecord reads a quote_lines record into the persisted line shape.
func LineFromRecord(record *core.Record) (PersistedLine, error) {
	line := PersistedLine{
		ID:                         record.Id,
		QuoteID:                    record.GetString("quote"),
		Position:                   record.GetInt("position"),
		ProductType:                record.GetString("product_type"),
		ProductTypeID:              record.GetString("product_type_id"),
		Area:                       record.GetString("area"),
		WidthM:                     services.Dim(record.GetFloat("width_m")),
		HeightM:                    services.Dim(record.GetFloat("height_m")),
		Qty:                        record.GetInt("qty"),
		CollectionID:               record.GetString("collection_id"),
		VariantID:                  record.GetString("variant_id"),
		OperatingSystemDriveType:   record.GetString("operating_system_drive_type"),
		OperatingSystemMotorFamily: record.GetString("operating_system_motor_family"),
		OperatingSystemTubeType:    record.GetString("operating_system_tube_type"),
		OperatingSystemControlSide: record.GetString("operating_system_control_side"),
		HardwareColor:              record.GetString("hardware_color"),
		CassetteShape:              record.GetString("cassette_shape"),
		SideChannel:                record.GetBool("side_channel"),
		SideChannelType:            record.GetString("side_channel_type"),
	}

	var accessories []configurator.AccessoryLine
	if err := unmarshalJSONField(record, "accessories", &accessories); err != nil {
		return PersistedLine{}, err
	}
	line.Accessories = accessories

	var meta *LineMetadata
	if err := unmarshalJSONField(record, "metadata", &meta); err != nil {
		return PersistedLine{}, err
	}
	line.Metadata = meta
	return line, nil
}

// ApplyLine writes the persisted line columns onto a quote_lines record.
// Pricing columns are left to the caller.
func ApplyLine(record *core.Record, line PersistedLine) {
	if line.QuoteID != "" {
		record.Set("quote", line.QuoteID)
	}
	record.Set("position", line.Position)
	record.Set("product_type", line.ProductType)
	record.Set("product_type_id", line.ProductTypeID)
	record.Set("area", line.Area)
	record.Set("width_m", deref(line.WidthM))
	record.Set("height_m", deref(line.HeightM))
	record.Set("qty", line.Qty)
	record.Set("collection_id", line.CollectionID)
	record.Set("variant_id", line.VariantID)
	record.Set("operating_system_drive_type", line.OperatingSystemDriveType)
	record.Set("operating_system_motor_family", line.OperatingSystemMotorFamily)
	record.Set("operating_system_tube_type", line.OperatingSystemTubeType)
	record.Set("operating_system_control_side", line.OperatingSystemControlSide)
	record.Set("hardware_color", line.HardwareColor)
	record.Set("cassette_shape", line.CassetteShape)
	record.Set("side_channel", line.SideChannel)
	record.Set("side_channel_type", line.SideChannelType)
	record.Set("accessories", line.Accessories)
	record.Set("metadata", line.Metadata)
}

func unmarshalJSONField(record *core.Record, key string, dst any) error {
	raw := record.GetString(key)
	if raw == "" || raw == "null" {
		return nil
	}
	if err := json.Unmarshal([]byte(raw), dst); err != nil {
		return fmt.Errorf("quote line %s: %s: %w", record.Id, key, err)
	}
	return nil
}
