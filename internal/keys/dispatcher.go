package keys

import (
	"fmt"
	"sort"

	"github.com/gdamore/tcell/v2"
)

// Dispatcher resolves decoded keys to editor actions via the binding
// table built at startup, per spec §4.8.
type Dispatcher struct {
	bindings map[Key]Action
}

// NewDispatcher decodes every binding spec in cfg into the canonical Key
// form and builds the lookup table. Specs that fail to decode (unknown
// modifier, unrecognized key name) are skipped individually; their errors
// are returned alongside the dispatcher so the caller can log them without
// aborting startup. Actions are bound in sorted name order, and a key
// already bound to an earlier action keeps that binding, so a key listed
// under several actions always goes to the action whose name sorts first.
func NewDispatcher(cfg map[Action][]string) (*Dispatcher, []error) {
	d := &Dispatcher{bindings: make(map[Key]Action)}
	var errs []error

	actions := make([]Action, 0, len(cfg))
	for action := range cfg {
		actions = append(actions, action)
	}
	sort.Slice(actions, func(i, j int) bool { return actions[i] < actions[j] })

	for _, action := range actions {
		specs := cfg[action]
		seen := make(map[Key]bool)
		for _, spec := range specs {
			decoded, err := ParseSpec(spec)
			if err != nil {
				errs = append(errs, err)
				continue
			}
			for _, k := range decoded {
				if seen[k] {
					continue
				}
				seen[k] = true
				if _, exists := d.bindings[k]; exists {
					continue
				}
				d.bindings[k] = action
			}
		}
	}
	return d, errs
}

// Resolve returns the action bound to k, if any.
func (d *Dispatcher) Resolve(k Key) (Action, bool) {
	a, ok := d.bindings[k]
	return a, ok
}

// DispatchResult is what Resolve's caller needs to decide whether to
// invoke a bound action or fall through to plain-text insertion.
type DispatchResult struct {
	Action    Action
	HasAction bool
	Resize    bool
	Key       Key
}

// HandleEvent implements the routing order of spec §4.8 step 1/3/4 for a
// raw tcell event: resize is reported first (step 1 is the caller's job
// to intercept before reaching the panel/editor, but the shape is
// reported here too since both editor and any active panel need it), then
// the decoded key is resolved against the binding table.
func HandleEvent(d *Dispatcher, ev tcell.Event) DispatchResult {
	if _, ok := ev.(*tcell.EventResize); ok {
		return DispatchResult{Resize: true}
	}
	key, ok := ev.(*tcell.EventKey)
	if !ok {
		return DispatchResult{}
	}
	k := Decode(key)
	action, hasAction := d.Resolve(k)
	return DispatchResult{Action: action, HasAction: hasAction, Key: k}
}

func (k Key) String() string {
	s := ""
	if k.Mods&ModCtrl != 0 {
		s += "ctrl+"
	}
	if k.Mods&ModAlt != 0 {
		s += "alt+"
	}
	if k.Mods&ModShift != 0 {
		s += "shift+"
	}
	if k.Name != "" {
		return s + k.Name
	}
	return s + fmt.Sprintf("%c", k.Rune)
}
