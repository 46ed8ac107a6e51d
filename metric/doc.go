// Package metric declares the distance-metric contract that the region
// tree is built against. No concrete metric ships in this package; callers
// supply their own (see package dtw for an adapter used in tests).
package metric
