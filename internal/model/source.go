// Package model defines the data structures shared by the reporting pipeline.
package model

// Path represents a file system path.
type Path string

// Module is one node of a build hierarchy. Parent is nil for the top-level
// project.
type Module struct {
	Name   string
	Parent *Module
}
