package schema

// Clan is a fully resolved component: the instance a founder produced for
// some face, together with the tree of septs that went into constructing it.
// A clan has no open roles; each sept is owned exclusively by its parent.
type Clan struct {
	// Face is the label of the face this clan satisfies.
	Face string

	// Imp is the label of the imp that founded the instance.
	Imp string

	// Value is the component instance produced by the imp's founder.
	Value any

	// Septs maps role labels to the resolved subordinate clans. Roles that
	// were declared optional and left unfilled have no entry.
	Septs map[string]*Clan
}

// Sept returns the clan filling the named role, or nil.
func (c *Clan) Sept(role string) *Clan {
	if c == nil {
		return nil
	}
	return c.Septs[role]
}
