package configurator

// AccessoryLine is one accessory added to a configuration. Qty is always at
// least one; a line whose quantity would drop to zero is removed instead.
type AccessoryLine struct {
	CatalogItemID string  `json:"catalogItemId" validate:"required"`
	Name          string  `json:"name"`
	Qty           int     `json:"qty" validate:"gte=1"`
	UnitPrice     float64 `json:"unitPrice" validate:"gte=0"`
}

// ExtendedPrice returns UnitPrice * Qty.
func (a AccessoryLine) ExtendedPrice() float64 {
	return a.UnitPrice * float64(a.Qty)
}

// AddAccessory adds qty units of an item. If the item is already present its
// quantity is increased instead of adding a second line.
func AddAccessory(lines []AccessoryLine, line AccessoryLine) []AccessoryLine {
	if line.Qty < 1 {
		line.Qty = 1
	}
	out := make([]AccessoryLine, 0, len(lines)+1)
	merged := false
	for _, l := range lines {
		if l.CatalogItemID == line.CatalogItemID {
			l.Qty += line.Qty
			merged = true
		}
		out = append(out, l)
	}
	if !merged {
		out = append(out, line)
	}
	return out
}

// SetAccessoryQty sets the quantity of an item, removing the line entirely
// when qty < 1. Unknown items are left untouched.
func SetAccessoryQty(lines []AccessoryLine, catalogItemID string, qty int) []AccessoryLine {
	out := make([]AccessoryLine, 0, len(lines))
	for _, l := range lines {
		if l.CatalogItemID == catalogItemID {
			if qty < 1 {
				continue
			}
			l.Qty = qty
		}
		out = append(out, l)
	}
	return out
}

// AccessoriesTotal sums the extended price of every line.
func AccessoriesTotal(lines []AccessoryLine) float64 {
	var sum float64
	for _, l := range lines {
		sum += l.ExtendedPrice()
	}
	return sum
}
