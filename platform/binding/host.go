package binding

// Host is an environment that can make a Func callable under a global name.
type Host interface {
	Register(name string, fn Func) error
}

// Register makes c callable in h under Symbol. Registering again replaces the
// previous function.
func Register(h Host, c Compiler) error {
	return RegisterAs(h, Symbol, c)
}

// RegisterAs makes c callable in h under name.
func RegisterAs(h Host, name string, c Compiler) error {
	if name == "" {
		return ErrEmptySymbol
	}
	return h.Register(name, Bind(c))
}
