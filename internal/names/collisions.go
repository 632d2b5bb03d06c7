package names

import "github.com/koskimas/openapi2beans/internal/model"

// Collisions tracks derived identifiers within one scope and reports the
// first identifier derived from two different sources.
type Collisions struct {
	scope   string
	sources map[string]string
}

func NewCollisions(scope string) *Collisions {
	return &Collisions{
		scope:   scope,
		sources: make(map[string]string),
	}
}

func (c *Collisions) Add(identifier string, source string) error {
	if first, ok := c.sources[identifier]; ok {
		return &model.NameCollisionError{
			Scope:      c.scope,
			Identifier: identifier,
			First:      first,
			Second:     source,
		}
	}

	c.sources[identifier] = source
	return nil
}
