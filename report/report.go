// Package report renders a static HTML page describing an export and,
// optionally, the CSS of one of its nodes.
//
// The markup lives in report.qtpl; run `qtc -dir=report` after editing it.
package report

import (
	"errors"
	"fmt"
	"time"

	"github.com/delaneyj/figspec/cssgen"
	"github.com/delaneyj/figspec/figma"
	"github.com/delaneyj/figspec/preferences"
	"github.com/dustin/go-humanize"
)

var ErrNodeNotFound = errors.New("node not found")

type Page struct {
	Name         string
	LastModified string
	Canvases     []Canvas
	// nil when no node was asked for
	Node *Node
}

type Canvas struct {
	ID       string
	Name     string
	Children int
}

type Node struct {
	ID           string
	Name         string
	Type         string
	Declarations []Declaration
}

// Declaration is one CSS property with its serialized value and the colors
// to preview next to it.
type Declaration struct {
	Property string
	Value    string
	Swatches []string
}

// Build collects what the report shows. The modification time is given
// relative to now. An empty nodeID leaves the CSS out.
func Build(src *figma.Source, nodeID string, p preferences.Preferences, now time.Time) (*Page, error) {
	var lastModified time.Time
	if src.File != nil {
		lastModified = src.File.LastModified
	} else {
		lastModified = src.Nodes.LastModified
	}
	page := &Page{
		Name: src.Name(),
		LastModified: fmt.Sprintf("%s (%s)",
			lastModified.UTC().Format(time.DateTime), humanize.RelTime(lastModified, now, "ago", "from now")),
	}

	if src.File != nil {
		for c := range figma.Canvases(src.File.Document) {
			page.Canvases = append(page.Canvases, Canvas{ID: c.ID, Name: c.Name, Children: len(c.Children)})
		}
	}

	if nodeID == "" {
		return page, nil
	}
	n := src.FindByID(nodeID)
	if n == nil {
		return nil, fmt.Errorf("%w: %s", ErrNodeNotFound, nodeID)
	}

	page.Node = &Node{ID: n.ID, Name: n.Name, Type: n.Type}
	for _, s := range cssgen.FromNode(n, p) {
		page.Node.Declarations = append(page.Node.Declarations, Declaration{
			Property: s.Property,
			Value:    cssgen.SerializeValue(s.Value, p),
			Swatches: cssgen.Swatches(s.Value),
		})
	}
	tracer().Debugf("report for %s with %d declarations", n, len(page.Node.Declarations))
	return page, nil
}
