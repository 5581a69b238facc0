// Package quality declares the shared data contract between the harness and
// vendor quality-assessment providers: return codes, images, bounding boxes,
// and the fixed set of quality measures. It contains no behavior beyond
// parsing and formatting of its own values.
package quality
