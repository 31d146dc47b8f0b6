package board

import "math/rand/v2"

// placeMines distributes mineCount mines uniformly over the grid and
// computes every safe cell's adjacency. There is no first-move
// guarantee: mines are placed once per build and never relocated.
func (g *grid) placeMines(mineCount int, r *rand.Rand) {
	candidates := make([]int, len(g.cells))
	for i := range candidates {
		candidates[i] = i
	}

	/*
	 * Pick mineCount cells off the candidate list at random, swapping
	 * the tail element into each taken slot.
	 */
	picked := make([]int, 0, mineCount)
	k := len(candidates)
	for range mineCount {
		i := r.IntN(k)
		picked = append(picked, candidates[i])
		k--
		candidates[i] = candidates[k]
	}

	g.plant(picked)
}

// plant marks the given flat indices as mines and recomputes every
// cell's adjacency from scratch.
func (g *grid) plant(mines []int) {
	for _, i := range mines {
		g.cells[i].mine = true
	}
	for p := range g.points() {
		c := g.at(p)
		if c.mine {
			continue
		}
		n := uint8(0)
		for q := range g.neighbors(p) {
			if g.at(q).mine {
				n++
			}
		}
		c.adjacency = n
	}
}
