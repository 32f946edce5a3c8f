package ordercsv

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"

	"deliverymanager/internal/core/domain/model/order"
	"deliverymanager/internal/core/domain/model/product"

	"go.uber.org/zap"
)

// ExportError indicates the destination could not be written. There is no
// partial-write rollback: on failure the file is in an unknown state and the
// caller should treat the export as not done and re-export.
type ExportError struct {
	Path  string
	Cause error
}

func (e *ExportError) Error() string {
	return fmt.Sprintf("cannot export orders to %q: %s", e.Path, e.Cause)
}

func (e *ExportError) Unwrap() error {
	return e.Cause
}

// Exporter writes orders to the fixed 10-column CSV schema.
type Exporter struct {
	log *zap.Logger
}

// NewExporter creates an order CSV exporter.
func NewExporter(log *zap.Logger) *Exporter {
	return &Exporter{log: log}
}

// Export writes one row per order, in the given order, to path.
//
// Numeric columns use the display formatting convention (thousands
// separators). Total Price is an informational snapshot computed against the
// given catalog; on import it is recomputed, never trusted. OrderLinesJSON
// carries the lossless encoding of the line items and is left empty for
// orders without lines.
func (e *Exporter) Export(path string, orders []*order.Order, catalog product.Catalog) error {
	f, err := os.Create(path)
	if err != nil {
		return &ExportError{Path: path, Cause: err}
	}
	defer f.Close()

	writer := csv.NewWriter(f)
	if err := writer.Write(Columns()); err != nil {
		return &ExportError{Path: path, Cause: err}
	}

	for _, o := range orders {
		if err := o.Validate(); err != nil {
			return &ExportError{Path: path, Cause: err}
		}

		linesJSON, err := marshalLines(o.Lines())
		if err != nil {
			return &ExportError{Path: path, Cause: err}
		}

		row := []string{
			o.ClientName(),
			o.Phone(),
			o.Address(),
			o.DeliveryFee().Format(),
			o.ProductsText(),
			o.Total(catalog).Format(),
			o.Status().String(),
			o.Agent(),
			o.Notes(),
			linesJSON,
		}
		if err := writer.Write(row); err != nil {
			return &ExportError{Path: path, Cause: err}
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return &ExportError{Path: path, Cause: err}
	}

	e.log.Info("exported orders", zap.String("path", path), zap.Int("count", len(orders)))
	return nil
}

func marshalLines(lines []order.Line) (string, error) {
	if len(lines) == 0 {
		return "", nil
	}

	dtos := make([]lineDTO, 0, len(lines))
	for _, l := range lines {
		dtos = append(dtos, lineDTO{ProductCode: l.ProductCode(), Quantity: l.Quantity()})
	}

	encoded, err := json.Marshal(dtos)
	if err != nil {
		return "", err
	}
	return string(encoded), nil
}
