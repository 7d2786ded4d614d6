package stitch

import "fmt"

// Pipeline stage names used in StageError.
const (
	StageCrop      = "crop"
	StageNormalize = "normalize"
	StageSample    = "sample"
	StageReduce    = "reduce"
	StageResolve   = "resolve"
	StageClean     = "clean"
)

// StageError tags a pipeline failure with the stage it happened in.
type StageError struct {
	Stage string
	Err   error
}

func (e *StageError) Error() string {
	return fmt.Sprintf("%s stage failed: %v", e.Stage, e.Err)
}

func (e *StageError) Unwrap() error {
	return e.Err
}
