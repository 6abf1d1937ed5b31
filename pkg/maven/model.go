package maven

// Model is a build document: the project's own coordinates, an optional
// parent, and the dependency section provided by the embedded [Registry].
//
// Callbacks passed to [Registry.Dependencies] receive the embedded registry,
// not the Model. A callback that needs the host captures it:
//
//	m.Dependencies(func(r *maven.Registry) {
//	    r.Pom(m.GroupID+":platform-bom", m.Version)
//	})
type Model struct {
	Coordinate
	Packaging   string
	Name        string
	Description string
	Parent      *Parent

	Registry
}

// NewModel creates a Model for the project coordinates in args (parsed like
// [ParseCoordinate]).
func NewModel(args ...any) (*Model, error) {
	c, err := ParseCoordinate(args...)
	if err != nil {
		return nil, err
	}
	return &Model{Coordinate: c}, nil
}
