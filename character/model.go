package character

type Model struct {
	id     uint32
	name   string
	groups map[string]byte
}

func (m Model) Id() uint32 {
	return m.id
}

func (m Model) Name() string {
	return m.name
}

// Groups are the access groups the character holds, keyed to rank.
func (m Model) Groups() map[string]byte {
	return m.groups
}
