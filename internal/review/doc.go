// Package review contains the deterministic feedback transformation
// pipeline: severity classification of raw review comments, shallow
// lexical pattern detection over the code snippet, tone selection,
// encouragement-level bucketing, and prompt/report composition.
//
// Every function in this package is pure: output depends only on the
// inputs and the [Tables] value passed in, so concurrent requests need
// no coordination. The only non-deterministic step in a full run is
// the completion call, which lives behind the single-method
// [Completer] interface and can be replaced with a stub in tests.
//
// A request flows one direction: classify and detect, build a
// [RenderPlan], hand the composed instructions to the completer, then
// stitch the returned text into the final report. A completion failure
// does not abort the run; the report is still rendered with a visible
// placeholder in place of the generated body.
package review
