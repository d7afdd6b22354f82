package services

// BOMExportRow is a single bill of materials line in the export.
type BOMExportRow struct {
	Index         string
	SKU           string
	Description   string
	Source        string
	Qty           float64
	UOM           string
	UnitPrice     float64
	ExtendedPrice float64
}

// BOMExport holds all data needed to export one configured line.
type BOMExport struct {
	Title           string
	ReferenceNumber string
	CreatedDate     string
	ProductType     string
	Area            string
	Currency        string
	Rows            []BOMExportRow
	Subtotal        float64
	Total           float64
}
