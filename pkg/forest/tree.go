package forest

import (
	"cmp"
	"errors"
	"math/rand/v2"
	"slices"
)

// Node is one entry of a tree's flat node table. Left and Right index into the same table.
type Node struct {
	Leaf      bool    `json:"leaf,omitempty"`
	Value     float64 `json:"value"`
	Feature   int     `json:"feature,omitempty"`
	Threshold float64 `json:"threshold,omitempty"`
	Left      int     `json:"left,omitempty"`
	Right     int     `json:"right,omitempty"`
}

type Tree struct {
	Nodes []Node `json:"nodes"`
}

func (t *Tree) predict(row []float64) float64 {
	i := 0
	for {
		n := &t.Nodes[i]
		if n.Leaf {
			return n.Value
		}
		if row[n.Feature] <= n.Threshold {
			i = n.Left
		} else {
			i = n.Right
		}
	}
}

func (t *Tree) validate(nFeatures int) error {
	if len(t.Nodes) == 0 {
		return errors.New("empty node table")
	}
	for i, n := range t.Nodes {
		if n.Leaf {
			continue
		}
		if n.Feature < 0 || n.Feature >= nFeatures {
			return errors.New("split feature out of range")
		}
		// children are always appended after their parent
		if n.Left <= i || n.Right <= i || n.Left >= len(t.Nodes) || n.Right >= len(t.Nodes) {
			return errors.New("child index out of range")
		}
	}
	return nil
}

type builder struct {
	x     [][]float64
	y     []float64
	cfg   Config
	rng   *rand.Rand
	nodes []Node
}

type split struct {
	feature   int
	threshold float64
	sse       float64
	left      []int
	right     []int
}

func (b *builder) grow(idx []int, depth int) int {
	pos := len(b.nodes)
	b.nodes = append(b.nodes, Node{})

	mean, sse := b.stats(idx)
	if depth >= b.cfg.MaxDepth || len(idx) < b.cfg.MinSamplesSplit || sse == 0 {
		b.nodes[pos] = Node{Leaf: true, Value: mean}
		return pos
	}

	best, ok := b.bestSplit(idx, sse)
	if !ok {
		b.nodes[pos] = Node{Leaf: true, Value: mean}
		return pos
	}

	left := b.grow(best.left, depth+1)
	right := b.grow(best.right, depth+1)
	b.nodes[pos] = Node{
		Value:     mean,
		Feature:   best.feature,
		Threshold: best.threshold,
		Left:      left,
		Right:     right,
	}
	return pos
}

func (b *builder) stats(idx []int) (mean, sse float64) {
	var sum, sumSq float64
	for _, i := range idx {
		sum += b.y[i]
		sumSq += b.y[i] * b.y[i]
	}
	n := float64(len(idx))
	mean = sum / n
	sse = sumSq - sum*sum/n
	if sse < 1e-12 {
		sse = 0
	}
	return mean, sse
}

func (b *builder) candidateFeatures() []int {
	nFeatures := len(b.x[0])
	features := make([]int, nFeatures)
	for i := range features {
		features[i] = i
	}
	if b.cfg.MaxFeatures >= nFeatures {
		return features
	}
	b.rng.Shuffle(nFeatures, func(i, j int) { features[i], features[j] = features[j], features[i] })
	features = features[:b.cfg.MaxFeatures]
	slices.Sort(features)
	return features
}

// bestSplit sweeps every candidate feature in sorted order, keeping running sums so that
// each threshold is scored in constant time.
func (b *builder) bestSplit(idx []int, parentSSE float64) (split, bool) {
	best := split{sse: parentSSE}
	found := false
	n := len(idx)
	sorted := make([]int, n)

	for _, f := range b.candidateFeatures() {
		copy(sorted, idx)
		slices.SortStableFunc(sorted, func(a, c int) int {
			return cmp.Compare(b.x[a][f], b.x[c][f])
		})

		var totalSum, totalSq float64
		for _, i := range sorted {
			totalSum += b.y[i]
			totalSq += b.y[i] * b.y[i]
		}

		var leftSum, leftSq float64
		for k := 0; k < n-1; k++ {
			yi := b.y[sorted[k]]
			leftSum += yi
			leftSq += yi * yi

			lo, hi := b.x[sorted[k]][f], b.x[sorted[k+1]][f]
			if lo == hi {
				continue
			}
			nl := float64(k + 1)
			nr := float64(n - k - 1)
			rightSum := totalSum - leftSum
			rightSq := totalSq - leftSq
			sse := (leftSq - leftSum*leftSum/nl) + (rightSq - rightSum*rightSum/nr)
			if sse < best.sse-1e-12 {
				best.sse = sse
				best.feature = f
				best.threshold = lo + (hi-lo)/2
				best.left = append([]int(nil), sorted[:k+1]...)
				best.right = append([]int(nil), sorted[k+1:]...)
				found = true
			}
		}
	}
	return best, found
}
