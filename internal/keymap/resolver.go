package keymap

// Resolver maps a key, spelled as tea.KeyMsg.String spells it, to the
// action bound to it in a set of contexts.
type Resolver struct {
	actions map[string]Action
}

// Resolve returns the action for key, or "" when the key is unbound.
func (r *Resolver) Resolve(key string) Action {
	return r.actions[key]
}
