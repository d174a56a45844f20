package raster

import (
	"os"

	"github.com/gisforge/terracell/pkg/cell"
	"github.com/gisforge/terracell/pkg/errors"
)

// ReadFile loads a raw cell file as one row buffer of the given
// encoding. The file must hold a whole number of cells.
func ReadFile(path string, t cell.Type) (cell.Buf, error) {
	data, err := os.ReadFile(path) //nolint:gosec // G304: path is caller-controlled by design
	if err != nil {
		return cell.Buf{}, errors.Wrap(err, errors.ErrorTypeFile, "failed to read cell file").
			WithDetail("path", path)
	}

	buf, err := cell.Wrap(t, data)
	if err != nil {
		return cell.Buf{}, errors.Wrap(err, errors.ErrorTypeFormat, "cell file is ragged").
			WithDetail("path", path).
			WithDetail("type", t.String())
	}
	return buf, nil
}

// WriteFile stores a row buffer as a raw cell file.
func WriteFile(path string, b cell.Buf) error {
	if err := os.WriteFile(path, b.Bytes(), 0o644); err != nil { //nolint:gosec
		return errors.Wrap(err, errors.ErrorTypeFile, "failed to write cell file").
			WithDetail("path", path)
	}
	return nil
}
