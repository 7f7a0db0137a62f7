package entity

import (
	"encoding/json"
	"sort"
)

// PermissionSet maps a module name to the set of allowed actions, e.g.
// {"inventory": {"read", "update"}}. This is the single internal representation
// of permissions; the legacy dual wire shape (actions as a string list or as an
// action->bool map) is resolved here, in UnmarshalJSON, and nowhere else.
type PermissionSet map[string]map[string]bool

// Allows reports whether the set grants (module, action).
func (p PermissionSet) Allows(module, action string) bool {
	actions, ok := p[module]
	if !ok {
		return false
	}
	return actions[action]
}

// Grant adds (module, action) to the set.
func (p PermissionSet) Grant(module, action string) {
	if p[module] == nil {
		p[module] = make(map[string]bool)
	}
	p[module][action] = true
}

// permissionGrant is the wire form of one module grant.
type permissionGrant struct {
	Module  string          `json:"module"`
	Actions json.RawMessage `json:"actions"`
}

// UnmarshalJSON accepts a list of {module, actions} grants where actions is
// either ["create","read"] or {"create":true,"read":false}, and normalizes to
// the module->action-set form.
func (p *PermissionSet) UnmarshalJSON(data []byte) error {
	var grants []permissionGrant
	if err := json.Unmarshal(data, &grants); err != nil {
		// Also accept the already-normalized object form, for round-trips
		// of our own storage format.
		var direct map[string]map[string]bool
		if err2 := json.Unmarshal(data, &direct); err2 == nil {
			*p = direct
			return nil
		}
		return err
	}
	out := make(PermissionSet, len(grants))
	for _, g := range grants {
		if g.Module == "" || len(g.Actions) == 0 {
			continue
		}
		var list []string
		if err := json.Unmarshal(g.Actions, &list); err == nil {
			for _, a := range list {
				out.Grant(g.Module, a)
			}
			continue
		}
		var flags map[string]bool
		if err := json.Unmarshal(g.Actions, &flags); err != nil {
			return err
		}
		for a, allowed := range flags {
			if allowed {
				out.Grant(g.Module, a)
			}
		}
	}
	*p = out
	return nil
}

// MarshalJSON emits the normalized grant list with sorted, deterministic order.
func (p PermissionSet) MarshalJSON() ([]byte, error) {
	type grantOut struct {
		Module  string   `json:"module"`
		Actions []string `json:"actions"`
	}
	modules := make([]string, 0, len(p))
	for m := range p {
		modules = append(modules, m)
	}
	sort.Strings(modules)
	grants := make([]grantOut, 0, len(modules))
	for _, m := range modules {
		actions := make([]string, 0, len(p[m]))
		for a, allowed := range p[m] {
			if allowed {
				actions = append(actions, a)
			}
		}
		sort.Strings(actions)
		grants = append(grants, grantOut{Module: m, Actions: actions})
	}
	return json.Marshal(grants)
}
