// SPDX-License-Identifier: MIT
// Package: geodome/export
//
// files.go — atomic artifact files.

package export

import (
	"io"
	"os"
	"path/filepath"

	"github.com/pkg/errors"

	"github.com/katalvlaran/geodome/dome"
)

// Names are the artifact file names inside the output directory.
type Names struct {
	Nodes     string
	Edges     string
	Triangles string
}

// DefaultNames returns Nodes.txt, Edges.txt and Triangles.txt.
func DefaultNames() Names {
	return Names{Nodes: "Nodes.txt", Edges: "Edges.txt", Triangles: "Triangles.txt"}
}

// withDefaults fills empty names from DefaultNames.
func (n Names) withDefaults() Names {
	d := DefaultNames()
	if n.Nodes == "" {
		n.Nodes = d.Nodes
	}
	if n.Edges == "" {
		n.Edges = d.Edges
	}
	if n.Triangles == "" {
		n.Triangles = d.Triangles
	}
	return n
}

// WriteFiles writes the three text artifacts of res into dir, creating dir
// if needed. Empty names fall back to DefaultNames.
func WriteFiles(dir string, res *dome.Result, names Names) error {
	names = names.withDefaults()
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return errors.Wrapf(err, "create output dir %s", dir)
	}

	nodes := len(res.Points)
	steps := []struct {
		name  string
		write func(io.Writer) error
	}{
		{names.Nodes, func(w io.Writer) error { return WriteNodes(w, res.Points) }},
		{names.Edges, func(w io.Writer) error { return WriteEdges(w, res.Edges, nodes) }},
		{names.Triangles, func(w io.Writer) error { return WriteTriangles(w, res.Triangles, nodes) }},
	}
	for _, s := range steps {
		if err := writeAtomic(filepath.Join(dir, s.name), s.write); err != nil {
			return err
		}
	}
	return nil
}

// writeAtomic streams write into a temporary sibling of path and renames it
// over path once everything is flushed to disk.
func writeAtomic(path string, write func(io.Writer) error) (err error) {
	tmp, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".*.tmp")
	if err != nil {
		return errors.Wrapf(err, "create temp for %s", path)
	}
	defer func() {
		if err != nil {
			tmp.Close()
			os.Remove(tmp.Name())
		}
	}()

	if err = write(tmp); err != nil {
		return errors.Wrapf(err, "write %s", path)
	}
	if err = tmp.Sync(); err != nil {
		return errors.Wrapf(err, "sync %s", path)
	}
	if err = tmp.Close(); err != nil {
		return errors.Wrapf(err, "close %s", path)
	}
	if err = os.Rename(tmp.Name(), path); err != nil {
		return errors.Wrapf(err, "rename into %s", path)
	}
	return nil
}

// saveAtomic is writeAtomic for libraries that only save by file name.
func saveAtomic(path string, save func(tmpPath string) error) (err error) {
	tmp, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".*.tmp")
	if err != nil {
		return errors.Wrapf(err, "create temp for %s", path)
	}
	name := tmp.Name()
	if err = tmp.Close(); err != nil {
		os.Remove(name)
		return errors.Wrapf(err, "close temp for %s", path)
	}
	defer func() {
		if err != nil {
			os.Remove(name)
		}
	}()

	if err = save(name); err != nil {
		return errors.Wrapf(err, "save %s", path)
	}
	if err = os.Rename(name, path); err != nil {
		return errors.Wrapf(err, "rename into %s", path)
	}
	return nil
}
