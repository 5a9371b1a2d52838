package shape

// Object is a decoded record that has no Go struct to live in.
// Members keep the declaration order of the record's fields.
type Object struct {
	Record  string
	Members []Member
}

// Member is one decoded field of an Object.
type Member struct {
	Name  string
	Value any
}

// Get returns the value of the named member.
func (o Object) Get(name string) (any, bool) {
	for _, m := range o.Members {
		if m.Name == name {
			return m.Value, true
		}
	}

	return nil, false
}

// Enum is implemented by Go types restricted to a fixed set of values.
// Descriptors derived from such types are literals over EnumValues.
type Enum interface {
	EnumValues() []any
}
