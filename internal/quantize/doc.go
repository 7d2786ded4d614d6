// Package quantize reduces the colors of a sampled pixel grid to a bounded
// palette and builds the matching index grid.
//
// The clustering itself is delegated to a Quantizer. MedianCut (the default)
// wraps github.com/ericpauley/go-quantize; KMeans wraps
// github.com/muesli/kmeans. Whatever the backend, Reduce assigns every cell
// the index of the closest palette entry under plain squared Euclidean RGB
// distance, ties going to the lower index. The weighted thread distance is
// only used when matching against the catalog.
package quantize
