package sieview

import "github.com/go-gl/mathgl/mgl64"

// Graph is a set of nodes in space connected by edges.
type Graph struct {
	Nodes []mgl64.Vec3
	Edges []Edge
}

func NewGraph() *Graph {
	return &Graph{}
}

func (g *Graph) AddNode(p mgl64.Vec3) int {
	g.Nodes = append(g.Nodes, p)
	return len(g.Nodes) - 1
}

func (g *Graph) AddEdge(u, v int) {
	g.Edges = append(g.Edges, Edge{u, v})
}

func (g *Graph) AABB() BBox {
	return BBoxOf(g.Nodes)
}

// NodesAndEdgesToIndexed builds a line buffer over the graph's nodes.
func NodesAndEdgesToIndexed(g *Graph) (IndexedBuffer, error) {
	return VerticesAndEdgesToIndexed(g.Nodes, g.Edges)
}

func NodesToPoints(g *Graph) IndexedBuffer {
	return VerticesToPoints(g.Nodes)
}
