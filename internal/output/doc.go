// Package output writes review results in the supported formats:
// markdown (the report document verbatim) and json (the structured
// result for machine consumption).
package output
