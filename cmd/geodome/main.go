// Command geodome generates a geodesic dome and writes its node, edge and
// triangle files for CAD import.
//
//	geodome -r 3 -f 4 -out build
//	geodome -config dome.yaml -dxf dome.dxf -v
//
// Flags given on the command line override the configuration file.
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"sort"

	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/geodome/config"
	"github.com/katalvlaran/geodome/dome"
	"github.com/katalvlaran/geodome/export"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	log := logrus.New()
	log.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})

	if err := run(ctx, os.Args[1:], os.Stdout, log); err != nil {
		if err == flag.ErrHelp {
			os.Exit(2)
		}
		log.WithError(err).Fatal("geodome failed")
	}
}

func run(ctx context.Context, args []string, stdout io.Writer, log *logrus.Logger) error {
	fs := flag.NewFlagSet("geodome", flag.ContinueOnError)
	var (
		cfgPath     = fs.String("config", "", "YAML configuration file")
		radius      = fs.Float64("r", 0, "circumradius R")
		frequency   = fs.Int("f", 0, "subdivision frequency")
		icosahedral = fs.Bool("icosahedral", false, "emit flat-faceted coordinates instead of projecting onto R")
		tolerance   = fs.Float64("eps", 0, "dedup tolerance")
		triangles   = fs.String("triangles", "", "triangle method: exhaustive or lattice")
		parallel    = fs.Int("parallel", 0, "subdivision workers")
		outDir      = fs.String("out", "", "output directory")
		dxfPath     = fs.String("dxf", "", "also write a DXF drawing")
		gltfPath    = fs.String("gltf", "", "also write a binary glTF mesh")
		geoPath     = fs.String("geojson", "", "also write a GeoJSON hub map")
		verbose     = fs.Bool("v", false, "debug logging")
		dump        = fs.Bool("dump-config", false, "print the effective configuration and exit")
		skipCheck   = fs.Bool("no-validate", false, "write output even if the topology check fails")
	)
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *verbose {
		log.SetLevel(logrus.DebugLevel)
	}

	file := config.Default()
	if *cfgPath != "" {
		var err error
		if file, err = config.Load(*cfgPath); err != nil {
			return err
		}
	}

	// Only flags present on the command line override the file.
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "r":
			file.Radius = *radius
		case "f":
			file.Frequency = *frequency
		case "icosahedral":
			file.Icosahedral = *icosahedral
		case "eps":
			file.Tolerance = *tolerance
		case "triangles":
			file.Triangles = *triangles
		case "parallel":
			file.Parallel = *parallel
		case "out":
			file.Output.Dir = *outDir
		case "dxf":
			file.Output.DXF = *dxfPath
		case "gltf":
			file.Output.GLTF = *gltfPath
		case "geojson":
			file.Output.GeoJSON = *geoPath
		}
	})
	if err := file.Validate(); err != nil {
		return err
	}

	if *dump {
		data, err := file.Marshal()
		if err != nil {
			return err
		}
		_, err = stdout.Write(data)
		return err
	}

	b, err := dome.New(append(file.DomeOptions(), dome.WithLogger(log))...)
	if err != nil {
		return err
	}
	res, err := b.Build(ctx)
	if err != nil {
		return err
	}
	if err := res.Validate(); err != nil {
		if !*skipCheck {
			return err
		}
		log.WithError(err).Warn("topology check failed")
	}

	if err := export.WriteFiles(file.Output.Dir, res, file.Names()); err != nil {
		return err
	}
	companions := []struct {
		path  string
		write func(string, *dome.Result) error
	}{
		{file.Output.DXF, export.WriteDXF},
		{file.Output.GLTF, export.WriteGLTF},
		{file.Output.GeoJSON, export.WriteGeoJSON},
	}
	for _, c := range companions {
		if c.path == "" {
			continue
		}
		if err := c.write(resolve(file.Output.Dir, c.path), res); err != nil {
			return err
		}
	}

	log.WithFields(logrus.Fields{
		"points":    len(res.Points),
		"edges":     len(res.Edges),
		"triangles": len(res.Triangles),
		"merged":    res.Stats.Merged,
		"dropped":   res.Stats.DroppedEdges,
		"strut_min": res.Stats.MinStrut,
		"strut_max": res.Stats.MaxStrut,
		"valence":   valence(res.Stats.Valence),
		"elapsed":   res.Stats.Elapsed,
		"dir":       file.Output.Dir,
	}).Info("dome written")

	return nil
}

// resolve places relative companion paths inside the output directory.
func resolve(dir, path string) string {
	if filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(dir, path)
}

// valence renders a degree histogram as "5:12 6:30".
func valence(h map[int]int) string {
	degrees := make([]int, 0, len(h))
	for d := range h {
		degrees = append(degrees, d)
	}
	sort.Ints(degrees)

	out := ""
	for k, d := range degrees {
		if k > 0 {
			out += " "
		}
		out += fmt.Sprintf("%d:%d", d, h[d])
	}
	return out
}
