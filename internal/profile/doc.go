// Package profile loads an optional HCL run profile that supplies defaults
// for the command-line flags. Benchmark operators keep one profile per
// submission campaign instead of repeating the same flag set on every
// invocation; explicit flags always win over profile values.
package profile
