package network

import (
	"container/heap"
	"encoding/json"
	"fmt"
	"math"
	"sort"
)

// Graph is the weighted landmark network.
type Graph struct {
	nodes []string
	edges []WeightedEdge
	adj   map[string][]WeightedEdge
}

// NewGraph builds a Graph. Edge endpoints missing from nodes are added.
func NewGraph(nodes []string, edges []WeightedEdge) *Graph {
	g := &Graph{adj: make(map[string][]WeightedEdge, len(nodes))}
	for _, n := range nodes {
		g.addNode(n)
	}
	for _, e := range edges {
		g.addNode(e.A)
		g.addNode(e.B)
		g.edges = append(g.edges, e)
		g.adj[e.A] = append(g.adj[e.A], e)
		g.adj[e.B] = append(g.adj[e.B], e)
	}
	sort.Strings(g.nodes)
	sort.SliceStable(g.edges, func(i, j int) bool {
		return g.edges[i].Key() < g.edges[j].Key()
	})
	return g
}

func (g *Graph) addNode(id string) {
	if _, ok := g.adj[id]; ok {
		return
	}
	g.adj[id] = nil
	g.nodes = append(g.nodes, id)
}

// Nodes returns landmark ids in sorted order.
func (g *Graph) Nodes() []string {
	out := make([]string, len(g.nodes))
	copy(out, g.nodes)
	return out
}

// Edges returns all edges sorted by key, unreachable ones included.
func (g *Graph) Edges() []WeightedEdge {
	out := make([]WeightedEdge, len(g.edges))
	copy(out, g.edges)
	return out
}

// HasNode reports whether id is a node of g.
func (g *Graph) HasNode(id string) bool {
	_, ok := g.adj[id]
	return ok
}

// Neighbors returns the edges incident to id.
func (g *Graph) Neighbors(id string) ([]WeightedEdge, error) {
	es, ok := g.adj[id]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrNodeNotFound, id)
	}
	out := make([]WeightedEdge, len(es))
	copy(out, es)
	return out, nil
}

// Route returns the cheapest landmark path from -> to and its total
// walking distance. Unreachable edges are skipped.
func (g *Graph) Route(from, to string) ([]string, int, error) {
	for _, id := range []string{from, to} {
		if !g.HasNode(id) {
			return nil, 0, fmt.Errorf("%w: %q", ErrNodeNotFound, id)
		}
	}

	dist := make(map[string]int, len(g.nodes))
	prev := make(map[string]string, len(g.nodes))
	visited := make(map[string]bool, len(g.nodes))
	for _, n := range g.nodes {
		dist[n] = math.MaxInt
	}
	dist[from] = 0
	pq := &routePQ{{id: from}}
	for pq.Len() > 0 {
		item := heap.Pop(pq).(routeItem)
		u := item.id
		if visited[u] {
			continue
		}
		visited[u] = true
		if u == to {
			break
		}
		for _, e := range g.adj[u] {
			if !e.Reachable() {
				continue
			}
			v := e.B
			if v == u {
				v = e.A
			}
			if nd := dist[u] + e.Distance; nd < dist[v] {
				dist[v] = nd
				prev[v] = u
				heap.Push(pq, routeItem{id: v, dist: nd})
			}
		}
	}
	if !visited[to] {
		return nil, 0, fmt.Errorf("%w: %s -> %s", ErrNoRoute, from, to)
	}

	path := []string{to}
	for cur := to; cur != from; {
		cur = prev[cur]
		path = append(path, cur)
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path, dist[to], nil
}

// MarshalJSON encodes the graph as {"nodes": [...], "edges": [...]}.
func (g *Graph) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Nodes []string       `json:"nodes"`
		Edges []WeightedEdge `json:"edges"`
	}{g.Nodes(), g.Edges()})
}

type routeItem struct {
	id   string
	dist int
}

// routePQ is a min-heap on dist, ties broken by id for stable routes.
type routePQ []routeItem

func (pq routePQ) Len() int { return len(pq) }
func (pq routePQ) Less(i, j int) bool {
	if pq[i].dist != pq[j].dist {
		return pq[i].dist < pq[j].dist
	}
	return pq[i].id < pq[j].id
}
func (pq routePQ) Swap(i, j int)       { pq[i], pq[j] = pq[j], pq[i] }
func (pq *routePQ) Push(x interface{}) { *pq = append(*pq, x.(routeItem)) }
func (pq *routePQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]
	return item
}
