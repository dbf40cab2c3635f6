// SPDX-License-Identifier: MIT
// Package: geodome/export
//
// dxf.go — CAD drawing with one layer per element kind.

package export

import (
	"github.com/pkg/errors"
	"github.com/yofu/dxf"
	"github.com/yofu/dxf/color"

	"github.com/katalvlaran/geodome/dome"
)

// DXF layer names.
const (
	LayerHubs   = "HUBS"
	LayerStruts = "STRUTS"
	LayerPanels = "PANELS"
)

// WriteDXF writes hubs as POINTs, struts as LINEs and panels as 3DFACEs.
func WriteDXF(path string, res *dome.Result) error {
	d := dxf.NewDrawing()
	d.Header().LtScale = 1.0

	layers := []struct {
		name  string
		color color.ColorNumber
	}{
		{LayerHubs, color.Red},
		{LayerStruts, color.White},
		{LayerPanels, color.Cyan},
	}
	for _, l := range layers {
		if _, err := d.AddLayer(l.name, l.color, dxf.DefaultLineType, false); err != nil {
			return errors.Wrapf(err, "dxf layer %s", l.name)
		}
	}

	at := func(id int) []float64 {
		x, y, z := res.Points[id-1].XYZ()
		return []float64{x, y, z}
	}

	if err := d.ChangeLayer(LayerHubs); err != nil {
		return errors.Wrap(err, "dxf")
	}
	for _, p := range res.Points {
		x, y, z := p.XYZ()
		if _, err := d.Point(x, y, z); err != nil {
			return errors.Wrapf(err, "dxf hub %d", p.ID)
		}
	}

	if err := d.ChangeLayer(LayerStruts); err != nil {
		return errors.Wrap(err, "dxf")
	}
	for _, e := range res.Edges {
		a, b := at(int(e.A)), at(int(e.B))
		if _, err := d.Line(a[0], a[1], a[2], b[0], b[1], b[2]); err != nil {
			return errors.Wrapf(err, "dxf strut %d", e.ID)
		}
	}

	if err := d.ChangeLayer(LayerPanels); err != nil {
		return errors.Wrap(err, "dxf")
	}
	for _, t := range res.Triangles {
		// a 3DFACE takes four corners; a triangle repeats the last one
		c := at(int(t[2]))
		if _, err := d.ThreeDFace([][]float64{at(int(t[0])), at(int(t[1])), c, c}); err != nil {
			return errors.Wrapf(err, "dxf panel %v", t)
		}
	}

	return saveAtomic(path, d.SaveAs)
}
