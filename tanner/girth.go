// SPDX-License-Identifier: MIT
// Package tanner: girth via breadth-first search.
//
// Short cycles are what break the tree assumption behind belief propagation;
// girth 4 (two checks sharing two bits) is the classic warning sign for a
// poorly conditioned code.
//
// Algorithm: BFS from every node, remembering the edge each node was reached
// by. A non-tree edge (u,v) closes a cycle of length dist[u]+dist[v]+1; the
// minimum over all roots is the girth. A root stops early once its frontier
// can no longer beat the best cycle found so far.
//
// Complexity: O(V·(V+E)) time, O(V) space, V = checks+bits.

package tanner

// noEdge marks a root or an unvisited node in the BFS parent table.
const noEdge = -1

// Girth returns the length of the shortest cycle in the graph, or 0 if the
// graph is a forest.
func (g *Graph) Girth() int {
	m := g.CheckCount()
	v := m + g.BitCount()
	if v == 0 {
		return 0
	}

	var (
		dist   = make([]int, v)
		via    = make([]int, v) // edge id used to reach each node
		queue  = make([]int, 0, v)
		best   = 0
		root   int
		u, w   int
		id     int
		cycle  int
		linked []int
	)

	for root = 0; root < v; root++ {
		for i := range dist {
			dist[i] = -1
			via[i] = noEdge
		}
		dist[root] = 0
		queue = append(queue[:0], root)

		for head := 0; head < len(queue); head++ {
			u = queue[head]
			if best > 0 && 2*dist[u]+1 >= best {
				break // nothing shorter can close from this depth on
			}

			if u < m {
				linked = g.CheckEdges(u)
			} else {
				linked = g.BitEdges(u - m)
			}
			for _, id = range linked {
				if id == via[u] {
					continue
				}
				if u < m {
					w = m + g.edges[id].Bit
				} else {
					w = g.edges[id].Check
				}
				if dist[w] < 0 {
					dist[w] = dist[u] + 1
					via[w] = id
					queue = append(queue, w)
					continue
				}
				cycle = dist[u] + dist[w] + 1
				if best == 0 || cycle < best {
					best = cycle
				}
			}
		}
	}

	return best
}
