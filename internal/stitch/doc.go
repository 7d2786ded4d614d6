// Package stitch runs the one canonical pattern pipeline:
//
//	crop (optional) -> normalize -> sample -> pre-match (optional)
//	  -> reduce -> resolve palette + clean index grid
//
// Generate either returns a complete, internally consistent Chart or fails
// with a *StageError naming the stage that failed. There is no partial
// result and nothing is retried.
package stitch
