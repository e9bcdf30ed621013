// SPDX-License-Identifier: MIT

// Package render draws a solved tour as a Graphviz DOT document.
//
// Every city becomes a node pinned at its coordinates (pos="x,y!", for
// neato -n) and every leg of the closed tour becomes an undirected edge, so a
// tour over n cities yields n nodes and n edges.
package render

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/awalterschulze/gographviz"

	"github.com/katalvlaran/tspsearch/cities"
	"github.com/katalvlaran/tspsearch/tsp"
)

// ErrNoCities signals an empty city list.
var ErrNoCities = errors.New("render: no cities")

// DefaultTitle names the graph when the caller passes an empty title.
const DefaultTitle = "tour"

// DOT returns the DOT source of tour drawn over cs. tour must be a
// permutation of the indices of cs.
func DOT(cs []cities.City, tour []int, title string) (string, error) {
	if len(cs) == 0 {
		return "", ErrNoCities
	}
	if err := tsp.ValidatePermutation(tour, len(cs)); err != nil {
		return "", fmt.Errorf("render: %w", err)
	}
	if title == "" {
		title = DefaultTitle
	}

	graph := gographviz.NewGraph()
	if err := graph.SetName(strconv.Quote(title)); err != nil {
		return "", err
	}
	if err := graph.SetDir(false); err != nil {
		return "", err
	}
	graph.AddAttr(strconv.Quote(title), "splines", "line")
	graph.AddAttr(strconv.Quote(title), "overlap", "true")

	var (
		i   int
		err error
	)
	for i = range cs {
		err = graph.AddNode(strconv.Quote(title), nodeID(i), map[string]string{
			"label":    strconv.Quote(cs[i].Name),
			"pos":      strconv.Quote(fmt.Sprintf("%g,%g!", cs[i].Pos.X(), cs[i].Pos.Y())),
			"shape":    "circle",
			"fontsize": "10",
		})
		if err != nil {
			return "", err
		}
	}

	var from, to string
	for i = range tour {
		from = nodeID(tour[i])
		to = nodeID(tour[(i+1)%len(tour)])
		if err = graph.AddEdge(from, to, false, nil); err != nil {
			return "", err
		}
	}

	return graph.String(), nil
}

func nodeID(i int) string { return "c" + strconv.Itoa(i) }
