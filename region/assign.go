package region

import (
	"github.com/ndonyapour/wexplore-go/metric"
	"github.com/ndonyapour/wexplore-go/walker"
)

// Assign performs an L-ary nearest-child search for state. Starting at
// the root, at each level it computes the distance from state's
// image to every child's image, descends into the nearest child (ties
// broken by lowest child index), and records that distance.
//
// Distances to each child's image are cached per image_idx for the
// duration of this call. The nodes of a single-child spine (the one seeded
// by NewTree, or one created by a branch) share one image index, so the
// distance to that image is computed once while descending the spine.
//
// Returns the resulting leaf/interior NodeID reached after L descents and
// the per-level distance to the chosen child. Any error from the distance
// metric is propagated unchanged.
func (t *Tree) Assign(state walker.State) (NodeID, []float64, error) {
	img, err := t.distanceMetric.Image(state)
	if err != nil {
		return nil, nil, err
	}
	return t.assignImage(img)
}

// assignImage descends the tree for an already-projected image, reusing it
// across the whole PlaceWalkers placement (including post-branch descent).
func (t *Tree) assignImage(img metric.Image) (NodeID, []float64, error) {
	cache := make(map[int]float64)
	cur := RootID()
	distances := make([]float64, 0, t.L())

	for level := 0; level < t.L(); level++ {
		children := t.children[cur.Key()]
		bestIdx := -1
		bestDist := 0.0
		for ci, childID := range children {
			childNode, err := t.Node(childID)
			if err != nil {
				return nil, nil, err
			}
			d, ok := cache[childNode.ImageIdx]
			if !ok {
				d, err = t.distanceMetric.Distance(img, t.images[childNode.ImageIdx])
				if err != nil {
					return nil, nil, err
				}
				cache[childNode.ImageIdx] = d
			}
			if bestIdx == -1 || d < bestDist {
				bestIdx, bestDist = ci, d
			}
		}
		cur = children[bestIdx]
		distances = append(distances, bestDist)
	}

	return cur, distances, nil
}
