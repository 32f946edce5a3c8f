package ordercsv

// Column names of the order CSV, in schema order. The first nine are the
// columns the operator sees in the table; OrderLinesJSON carries the
// machine-readable line items and is what makes a re-import lossless.
const (
	colClientName  = "Client Name"
	colPhone       = "Phone"
	colAddress     = "Address"
	colDeliveryFee = "Delivery Fee"
	colProducts    = "Product(s)"
	colTotalPrice  = "Total Price"
	colStatus      = "Status"
	colAgent       = "Agent"
	colNotes       = "Notes"
	colOrderLines  = "OrderLinesJSON"
)

// Columns returns the full header row in schema order.
func Columns() []string {
	return []string{
		colClientName,
		colPhone,
		colAddress,
		colDeliveryFee,
		colProducts,
		colTotalPrice,
		colStatus,
		colAgent,
		colNotes,
		colOrderLines,
	}
}

// requiredColumns are the columns an importable file must carry.
// OrderLinesJSON is optional: files written by hand or by older tools fall
// back to parsing the Product(s) text.
func requiredColumns() []string {
	return []string{
		colClientName,
		colPhone,
		colAddress,
		colDeliveryFee,
		colProducts,
		colTotalPrice,
		colStatus,
		colAgent,
		colNotes,
	}
}

// lineDTO is the JSON shape of one order line inside the OrderLinesJSON
// column. Code and quantity round-trip exactly; prices do not belong here,
// they are the catalog's.
type lineDTO struct {
	ProductCode string `json:"product_code"`
	Quantity    int    `json:"quantity"`
}
