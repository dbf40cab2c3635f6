// SPDX-License-Identifier: MIT
// Package: geodome/export
//
// geojson.go — hub map in longitude/latitude degrees.
//
// Every hub becomes a Point feature {kind: "hub", id, valence, radius};
// every strut a LineString feature {kind: "strut", id, from, to, length}.
// Elevation and azimuth are the spherical angles of the hub position.

package export

import (
	"io"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"
	"github.com/pkg/errors"

	"github.com/katalvlaran/geodome/coords"
	"github.com/katalvlaran/geodome/dome"
	"github.com/katalvlaran/geodome/geom"
)

// FeatureCollection builds the hub map of res.
func FeatureCollection(res *dome.Result) *geojson.FeatureCollection {
	fc := geojson.NewFeatureCollection()

	lonLat := make([]orb.Point, len(res.Points))
	for k, p := range res.Points {
		s := coords.Cart2Sp(p.Pos)
		lat, lon := s.Degrees()
		lonLat[k] = orb.Point{lon, lat}

		f := geojson.NewFeature(lonLat[k])
		f.Properties["kind"] = "hub"
		f.Properties["id"] = int(p.ID)
		f.Properties["radius"] = s.R
		if res.Index != nil {
			f.Properties["valence"] = res.Index.Degree(p.ID)
		}
		fc.Append(f)
	}

	for _, e := range res.Edges {
		f := geojson.NewFeature(orb.LineString{lonLat[e.A-1], lonLat[e.B-1]})
		f.Properties["kind"] = "strut"
		f.Properties["id"] = e.ID
		f.Properties["from"] = int(e.A)
		f.Properties["to"] = int(e.B)
		f.Properties["length"] = geom.Distance(res.Points[e.A-1], res.Points[e.B-1])
		fc.Append(f)
	}

	return fc
}

// WriteGeoJSON writes the hub map of res.
func WriteGeoJSON(path string, res *dome.Result) error {
	data, err := FeatureCollection(res).MarshalJSON()
	if err != nil {
		return errors.Wrap(err, "marshal geojson")
	}
	return writeAtomic(path, func(w io.Writer) error {
		_, err := w.Write(data)
		return errors.Wrap(err, "write geojson")
	})
}
