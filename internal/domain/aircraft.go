package domain

// Aircraft is an immutable seating-capacity record. It is owned by the
// airline and referenced by the flights it is assigned to.
type Aircraft struct {
	Name     string `json:"name" yaml:"name"`
	Capacity int    `json:"capacity" yaml:"capacity"`
}
