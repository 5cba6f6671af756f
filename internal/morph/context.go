package morph

// Mode is the execution mode of a Context.
type Mode int

const (
	// Normal means operations execute with full effect: registry mutation,
	// founder invocation.
	Normal Mode = iota
	// ErrorCheckOnly means operations validate structure and report defects
	// but perform no side effects. Entered on the first recorded error and
	// never left for the remainder of the pass.
	ErrorCheckOnly
)

// Context accumulates defects for one registration or resolution pass.
//
// The zero value is not usable; construct with NewContext. A Context must
// not be shared across concurrent passes.
type Context struct {
	errs []*Error
	mode Mode
	path []string
}

// NewContext returns a fresh Context in Normal mode with no recorded errors.
func NewContext() *Context {
	return &Context{}
}

// Record appends the defect to the ordered error list, stamps it with the
// current role path, and degrades the context to ErrorCheckOnly.
func (c *Context) Record(e *Error) {
	if len(c.path) > 0 && e.Path == nil {
		e.Path = append([]string(nil), c.path...)
	}
	c.errs = append(c.errs, e)
	c.mode = ErrorCheckOnly
}

// Mode returns the context's current mode.
func (c *Context) Mode() Mode {
	return c.mode
}

// Degraded reports whether the context has entered ErrorCheckOnly mode.
func (c *Context) Degraded() bool {
	return c.mode == ErrorCheckOnly
}

// OK reports whether no defect has been recorded.
func (c *Context) OK() bool {
	return len(c.errs) == 0
}

// Errors returns the recorded defects in the order they were discovered.
func (c *Context) Errors() []*Error {
	return c.errs
}

// Len returns the number of recorded defects. Resolution uses it to decide
// whether new defects appeared while processing one node.
func (c *Context) Len() int {
	return len(c.errs)
}

// PushRole extends the role path that subsequently recorded errors are
// stamped with. Each PushRole must be paired with a PopRole.
func (c *Context) PushRole(label string) {
	c.path = append(c.path, label)
}

// PopRole removes the most recently pushed role label.
func (c *Context) PopRole() {
	c.path = c.path[:len(c.path)-1]
}

// Path returns the current role path from the charter root.
func (c *Context) Path() []string {
	return append([]string(nil), c.path...)
}
