package ordercsv

import (
	"encoding/csv"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"

	"deliverymanager/internal/core/domain/model/kernel"
	"deliverymanager/internal/core/domain/model/order"
	"deliverymanager/internal/core/domain/model/product"
	"deliverymanager/internal/core/domain/services"

	"go.uber.org/zap"
)

// ImportError indicates a structural problem with the file as a whole: it is
// missing, unreadable, corrupt, or lacks required columns. Data-quality
// problems in individual rows are never an ImportError; those rows import
// flagged invalid.
type ImportError struct {
	Path  string
	Cause error
}

func (e *ImportError) Error() string {
	return fmt.Sprintf("cannot import orders from %q: %s", e.Path, e.Cause)
}

func (e *ImportError) Unwrap() error {
	return e.Cause
}

// ImportedOrder is one parsed row: the reconstructed order plus the validity
// flags the table uses to highlight rows needing correction.
type ImportedOrder struct {
	Order *order.Order

	// Row is the 1-based line number in the file, header included.
	Row int

	// Invalid marks rows failing any field check; the row is imported anyway.
	Invalid  bool
	Messages []string
}

// Importer reads order CSV files back into orders.
type Importer struct {
	log    *zap.Logger
	bounds services.PhoneBounds
}

// NewImporter creates an order CSV importer validating phones against the
// given bounds.
func NewImporter(log *zap.Logger, bounds services.PhoneBounds) *Importer {
	return &Importer{log: log, bounds: bounds}
}

// Import parses every row of the file into an order.
//
// When the OrderLinesJSON column is present and well-formed it is the
// authoritative source for the order lines, since the human-readable
// Product(s) text is lossy for ambiguous codes. A malformed or absent
// OrderLinesJSON falls back to parsing the Product(s) text.
//
// Every row is validated independently; rows failing a check come back
// flagged invalid but are never dropped, and one bad row never aborts the
// rest of the file. Only structural problems return an *ImportError.
func (im *Importer) Import(path string, catalog product.Catalog) ([]ImportedOrder, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, &ImportError{Path: path, Cause: err}
	}
	defer f.Close()

	reader := csv.NewReader(f)
	reader.FieldsPerRecord = -1
	rows, err := reader.ReadAll()
	if err != nil {
		return nil, &ImportError{Path: path, Cause: err}
	}
	if len(rows) == 0 {
		return nil, &ImportError{Path: path, Cause: errors.New("file has no header row")}
	}

	index, err := headerIndex(rows[0])
	if err != nil {
		return nil, &ImportError{Path: path, Cause: err}
	}

	imported := make([]ImportedOrder, 0, len(rows)-1)
	for i := 1; i < len(rows); i++ {
		row := importRow(rows[i], index, i+1, catalog, im.bounds)
		if row.Invalid {
			im.log.Warn("imported row flagged invalid",
				zap.String("path", path),
				zap.Int("row", row.Row),
				zap.Strings("messages", row.Messages))
		}
		imported = append(imported, row)
	}
	return imported, nil
}

// headerIndex maps column names to positions and checks that every required
// column is present.
func headerIndex(header []string) (map[string]int, error) {
	index := make(map[string]int, len(header))
	for i, name := range header {
		index[strings.TrimSpace(name)] = i
	}

	for _, required := range requiredColumns() {
		if _, ok := index[required]; !ok {
			return nil, fmt.Errorf("missing required column %q", required)
		}
	}
	return index, nil
}

// importRow reconstructs one order from one data row. It never fails: every
// problem becomes a flag on the returned ImportedOrder.
func importRow(row []string, index map[string]int, rowNumber int, catalog product.Catalog, bounds services.PhoneBounds) ImportedOrder {
	cell := func(column string) string {
		i, ok := index[column]
		if !ok || i >= len(row) {
			return ""
		}
		return row[i]
	}

	// id validity is guaranteed by NewUUID, so NewOrder cannot fail here
	o, _ := order.NewOrder(kernel.NewUUID())
	o.SetClientName(cell(colClientName))
	o.SetPhone(cell(colPhone))
	o.SetAddress(cell(colAddress))
	o.SetAgent(cell(colAgent))
	o.SetNotes(cell(colNotes))

	var messages []string

	feeText := cell(colDeliveryFee)
	if ok, msg := services.ValidateDeliveryFee(feeText); ok {
		fee, _ := kernel.ParseMoney(feeText)
		_ = o.SetDeliveryFee(fee)
	} else {
		messages = append(messages, msg)
	}

	statusText := cell(colStatus)
	if status, err := order.ParseStatus(statusText); err == nil {
		_ = o.SetStatus(status)
	} else {
		messages = append(messages, fmt.Sprintf("status %q is not recognized; defaulting to Pending", strings.TrimSpace(statusText)))
	}

	lines, ok := unmarshalLines(cell(colOrderLines))
	if !ok {
		lines = services.ParseProductField(cell(colProducts))
	}
	_ = o.SetLines(lines)

	report := services.CheckOrderFields(o, bounds)
	messages = append(messages, report.Messages...)

	if unresolved := o.UnresolvedCodes(catalog); len(unresolved) > 0 {
		messages = append(messages, fmt.Sprintf("unknown product code(s): %s", strings.Join(unresolved, ", ")))
	}

	return ImportedOrder{
		Order:    o,
		Row:      rowNumber,
		Invalid:  len(messages) > 0,
		Messages: messages,
	}
}

// unmarshalLines decodes the OrderLinesJSON column. Reports false for empty
// or malformed content, telling the caller to fall back to the Product(s)
// text.
func unmarshalLines(text string) ([]order.Line, bool) {
	if strings.TrimSpace(text) == "" {
		return nil, false
	}

	var dtos []lineDTO
	if err := json.Unmarshal([]byte(text), &dtos); err != nil {
		return nil, false
	}

	lines := make([]order.Line, 0, len(dtos))
	for _, dto := range dtos {
		l, err := order.NewLine(dto.ProductCode, dto.Quantity)
		if err != nil {
			return nil, false
		}
		lines = append(lines, l)
	}
	return lines, true
}
