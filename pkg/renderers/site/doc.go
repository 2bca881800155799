// Package site renders pages into the public HTML presentation. Each
// template identifier gets its own strategy backed by an embedded pongo2
// template; rich markup fields are sanitized at this boundary before they
// reach the markup stream.
package site
