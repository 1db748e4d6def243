package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/corymhall/lstypes/debug"
	"github.com/corymhall/lstypes/lsif"
)

type verifyStats struct {
	Vertices int
	Edges    int
}

// verifier checks the graph of a dump one entry at a time.
type verifier struct {
	stats    verifyStats
	ids      map[string]bool
	vertices map[string]lsif.VertexLabel
	// open counts projects begun and not yet ended.
	open      int
	sawBegin  bool
	sawHeader bool
}

func newVerifier() *verifier {
	return &verifier{
		ids:      map[string]bool{},
		vertices: map[string]lsif.VertexLabel{},
	}
}

func (vf *verifier) add(ctx context.Context, e lsif.Entry) error {
	id := e.ID.String()
	if vf.ids[id] {
		return fmt.Errorf("duplicate id %s", id)
	}
	vf.ids[id] = true

	if !vf.sawHeader {
		if v, ok := e.Vertex(); !ok || v.VertexLabel() != lsif.VertexLabelMetaData {
			return errors.New("dump does not start with a metaData vertex")
		}
		vf.sawHeader = true
	}

	if v, ok := e.Vertex(); ok {
		vf.stats.Vertices++
		vf.vertices[id] = v.VertexLabel()
		if ev, ok := v.(*lsif.Event); ok && ev.Scope == lsif.EventScopeProject {
			switch ev.Kind {
			case lsif.EventKindBegin:
				vf.open++
				vf.sawBegin = true
			case lsif.EventKindEnd:
				vf.open--
			}
		}
		debug.Trace.Log(ctx, "vertex", slog.String("id", id), slog.String("label", string(v.VertexLabel())))
		return nil
	}

	edge, _ := e.Edge()
	vf.stats.Edges++
	debug.Trace.Log(ctx, "edge", slog.String("id", id), slog.String("label", string(edge.EdgeLabel())))
	if err := vf.known(edge.OutVertex()); err != nil {
		return fmt.Errorf("edge %s: %w", id, err)
	}
	for _, in := range edge.InVertices() {
		if err := vf.known(in); err != nil {
			return fmt.Errorf("edge %s: %w", id, err)
		}
	}
	if item, ok := edge.(*lsif.Item); ok {
		if label, ok := vf.vertices[item.Document.String()]; !ok || label != lsif.VertexLabelDocument {
			return fmt.Errorf("edge %s: document %s is not a document vertex", id, item.Document)
		}
	}
	return nil
}

func (vf *verifier) known(id lsif.ID) error {
	if _, ok := vf.vertices[id.String()]; !ok {
		return fmt.Errorf("vertex %s is not defined before it is used", id)
	}
	return nil
}

// complete reports whether every project that was begun has ended.
func (vf *verifier) complete() bool {
	return vf.sawBegin && vf.open == 0
}

func (vf *verifier) finish() error {
	if !vf.sawHeader {
		return errors.New("empty dump")
	}
	if vf.open > 0 {
		return fmt.Errorf("%d project(s) begun but not ended", vf.open)
	}
	return nil
}
