package metric

import (
	"errors"

	"github.com/ndonyapour/wexplore-go/walker"
)

// ErrNilMetric indicates a nil Metric was supplied where one is required.
var ErrNilMetric = errors.New("metric: nil Metric")

// Image is the projection of a walker.State under a Metric. Its concrete
// type is opaque to this package: whatever a Metric.Image returns, the same
// Metric's Distance must be able to consume as both arguments. Callers are
// expected to keep the shape/dtype fixed after the first call.
type Image interface{}

// Metric is the polymorphic capability set {image, image_distance} that the
// region tree is built against. Implementations must be pure and safe for
// concurrent use: Image and Distance are called synchronously from the core
// with no side effects expected back.
type Metric interface {
	// Image projects a walker state to an Image.
	Image(state walker.State) (Image, error)

	// Distance returns a non-negative scalar distance between two images
	// produced by Image. It must be deterministic for identical inputs.
	Distance(a, b Image) (float64, error)
}
