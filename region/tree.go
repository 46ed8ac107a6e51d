package region

import (
	"github.com/ndonyapour/wexplore-go/metric"
	"github.com/ndonyapour/wexplore-go/walker"
)

// NewTree builds a region tree of depth len(maxNRegions), seeding the
// initial root-to-leaf spine from initState's image (one child per level,
// index 0).
//
// maxNRegions and maxRegionSizes must have equal, positive length. metric
// must be non-nil; it is used once here to project initState and is kept
// for every later Assign/PlaceWalkers call.
func NewTree(maxNRegions []int, maxRegionSizes []float64, pmin, pmax float64, maxNumWalkers int, distanceMetric metric.Metric, initState walker.State) (*Tree, error) {
	if distanceMetric == nil {
		return nil, ErrMissingDistanceMetric
	}
	if len(maxNRegions) == 0 {
		return nil, ErrEmptyLevels
	}
	if len(maxNRegions) != len(maxRegionSizes) {
		return nil, ErrLengthMismatch
	}
	for _, n := range maxNRegions {
		if n <= 0 {
			return nil, ErrInvalidMaxNRegions
		}
	}
	for _, s := range maxRegionSizes {
		if s < 0 {
			return nil, ErrInvalidMaxRegionSize
		}
	}

	t := &Tree{
		maxNRegions:    append([]int(nil), maxNRegions...),
		maxRegionSizes: append([]float64(nil), maxRegionSizes...),
		pmin:           pmin,
		pmax:           pmax,
		maxNumWalkers:  maxNumWalkers,
		distanceMetric: distanceMetric,
		images:         make([]metric.Image, 0, len(maxNRegions)),
		nodes:          make(map[string]*Node),
		children:       make(map[string][]NodeID),
	}

	root := &Node{ID: RootID(), ImageIdx: -1}
	t.nodes[root.ID.Key()] = root

	img, err := distanceMetric.Image(initState)
	if err != nil {
		return nil, err
	}

	imgIdx := len(t.images)
	t.images = append(t.images, img)

	cur := RootID()
	for level := 0; level < len(maxNRegions); level++ {
		child := cur.Child(0)
		node := &Node{ID: child, ImageIdx: imgIdx}
		t.nodes[child.Key()] = node
		t.children[cur.Key()] = []NodeID{child}
		cur = child
	}

	return t, nil
}
