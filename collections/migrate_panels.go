package collections

import (
	"fmt"
	"log"

	"github.com/pocketbase/pocketbase/core"

	"shadequote/adapters"
)

// MigrateMultiPanelMetadata rewrites drapery and window film lines saved
// before panels were stored in metadata. Each line is rebuilt through the
// reconstruction adapter and written back with its panel array.
// Safe to call on every startup -- lines that already carry panels are skipped.
func MigrateMultiPanelMetadata(app core.App) error {
	linesCol, err := app.FindCollectionByNameOrId(QuoteLines)
	if err != nil {
		return fmt.Errorf("migrate: could not find quote_lines collection: %w", err)
	}

	lines, err := app.FindRecordsByFilter(
		linesCol,
		"product_type = 'drapery' || product_type = 'window-film'",
		"",
		0,
		0,
		nil,
	)
	if err != nil {
		return fmt.Errorf("migrate: could not query multi-panel lines: %w", err)
	}

	migrated := 0
	for _, record := range lines {
		line, err := adapters.LineFromRecord(record)
		if err != nil {
			log.Printf("migrate: skipping quote line %s: %v\n", record.Id, err)
			continue
		}
		if line.Metadata != nil && len(line.Metadata.Panels) > 0 {
			continue
		}

		cfg, err := adapters.ConfigFromLine(line)
		if err != nil {
			log.Printf("migrate: skipping quote line %s: %v\n", record.Id, err)
			continue
		}
		rebuilt, err := adapters.LineFromConfig(cfg)
		if err != nil {
			log.Printf("migrate: skipping quote line %s: %v\n", record.Id, err)
			continue
		}
		if rebuilt.Metadata == nil || len(rebuilt.Metadata.Panels) == 0 {
			continue
		}
		if line.Metadata != nil {
			rebuilt.Metadata.Fabrics = line.Metadata.Fabrics
		}

		record.Set("metadata", rebuilt.Metadata)
		if err := app.Save(record); err != nil {
			log.Printf("migrate: failed to save quote line %s: %v\n", record.Id, err)
			continue
		}
		migrated++
	}

	if migrated > 0 {
		log.Printf("migrate: filled panel metadata on %d quote line(s).\n", migrated)
	}
	return nil
}
