package resource

import "math"

// ancestors returns every hypernym ancestor of s with its shortest distance; s itself is at 0.
func (l *Lexicon) ancestors(s *Synset) map[string]int {
	dist := map[string]int{s.ID: 0}
	queue := []*Synset{s}
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		for _, rel := range []Relation{Hypernym, InstanceHypernym} {
			for _, up := range l.Related(cur, rel) {
				if _, ok := dist[up.ID]; ok {
					continue
				}
				dist[up.ID] = dist[cur.ID] + 1
				queue = append(queue, up)
			}
		}
	}
	return dist
}

// depth is the length of the shortest hypernym path from s to a root.
func (l *Lexicon) depth(s *Synset) int {
	best := -1
	for id, d := range l.ancestors(s) {
		t := l.synsets[id]
		if len(t.relations[Hypernym]) == 0 && len(t.relations[InstanceHypernym]) == 0 {
			if best < 0 || d < best {
				best = d
			}
		}
	}
	if best < 0 {
		return 0
	}
	return best
}

// shortestPath returns the shortest hypernym-mediated distance between a and b.
func (l *Lexicon) shortestPath(a, b *Synset) (int, bool) {
	da, db := l.ancestors(a), l.ancestors(b)
	best := -1
	for id, x := range da {
		if y, ok := db[id]; ok && (best < 0 || x+y < best) {
			best = x + y
		}
	}
	return best, best >= 0
}

// PathSimilarity scores 1/(d+1) for the shortest hypernym path length d.
// The second result is false when a and b share no ancestor.
func (l *Lexicon) PathSimilarity(a, b *Synset) (float64, bool) {
	d, ok := l.shortestPath(a, b)
	if !ok {
		return 0, false
	}
	return 1 / float64(d+1), true
}

// LCHSimilarity is the Leacock-Chodorow score -log((d+1) / 2D), D the taxonomy depth.
// Only defined for synsets of the same part of speech.
func (l *Lexicon) LCHSimilarity(a, b *Synset) (float64, bool) {
	if a.POS() != b.POS() {
		return 0, false
	}
	d, ok := l.shortestPath(a, b)
	if !ok {
		return 0, false
	}
	maxDepth := l.taxonomyDepth(a.POS())
	return -math.Log(float64(d+1) / (2 * float64(maxDepth))), true
}

// WUPSimilarity is the Wu-Palmer score 2*depth(lcs) / (depth(a)+depth(b)),
// depths counted through the deepest common ancestor.
func (l *Lexicon) WUPSimilarity(a, b *Synset) (float64, bool) {
	da, db := l.ancestors(a), l.ancestors(b)
	lcsDepth, sum := -1, 0
	for id, x := range da {
		y, ok := db[id]
		if !ok {
			continue
		}
		dep := l.depth(l.synsets[id]) + 1
		if dep > lcsDepth || (dep == lcsDepth && x+y < sum) {
			lcsDepth, sum = dep, x+y
		}
	}
	if lcsDepth < 0 {
		return 0, false
	}
	return 2 * float64(lcsDepth) / float64(sum+2*lcsDepth), true
}

func (l *Lexicon) taxonomyDepth(pos string) int {
	l.depthMu.Lock()
	defer l.depthMu.Unlock()
	if d, ok := l.maxDepth[pos]; ok {
		return d
	}
	maxDepth := 1
	for _, id := range l.order {
		s := l.synsets[id]
		if s.POS() != pos {
			continue
		}
		if d := l.depth(s) + 1; d > maxDepth {
			maxDepth = d
		}
	}
	l.maxDepth[pos] = maxDepth
	return maxDepth
}
