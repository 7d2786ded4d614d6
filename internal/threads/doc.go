// Package threads holds the embroidery thread catalog and maps arbitrary
// colors onto catalog threads.
//
// A Catalog is an immutable, ordered table of ThreadColor entries built once
// by Load (or Default for the embedded DMC table) and passed explicitly to
// every lookup. There is no process-wide catalog.
//
// # Distance
//
// Colors are compared with a perceptually weighted RGB distance:
//
//	distance(c1, c2) = sqrt(2*(r1-r2)^2 + 4*(g1-g2)^2 + 3*(b1-b2)^2)
//
// Green differences weigh the most. This is the only metric offered for
// thread matching.
//
// # Ties
//
// When several threads are equally close, Nearest returns the one that comes
// first in load order, so lookups are reproducible across runs.
//
// # Thread Safety
//
// A Catalog is read-only after construction and safe for concurrent use.
// Resolve exploits this to match palette entries in parallel.
package threads
