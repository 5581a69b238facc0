// Package imgio decodes image files from disk into the in-memory raster
// form consumed by providers.
package imgio
