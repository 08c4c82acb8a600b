// Package render holds the one-shot output consumers of validated gasket
// geometry: DXF file export and raster previews. Both consume immutable
// values produced by the generators and own all the I/O the engine core
// avoids.
package render

import (
	"fmt"
	"os"

	"github.com/gasketforge/gasket/dxf"
)

// CreateDXF serializes the drawing to a .dxf file.
func CreateDXF(filename string, d *dxf.Drawing) error {
	f, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("create dxf: %w", err)
	}
	if _, err := d.WriteTo(f); err != nil {
		f.Close()
		return fmt.Errorf("write dxf: %w", err)
	}
	return f.Close()
}
