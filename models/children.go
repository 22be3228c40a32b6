package models

// Child is one direct descendant of a queried value path.
type Child struct {
	ID       int
	Name     string
	Path     string
	Value    string
	Protect  bool
	Override string
}

// Children lists the direct descendants of a path, together with the
// server's canonical form of the queried path itself.
type Children struct {
	Path     string
	Children []Child
}
