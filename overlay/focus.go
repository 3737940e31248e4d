package overlay

// Ring is the ordered set of focusable controls and the one that currently
// holds input focus. While a trap is active, keyboard traversal stays
// inside the trapped controls.
type Ring struct {
	order   []string
	current string
	trap    []string
}

func NewRing(ids ...string) *Ring {
	r := &Ring{}
	for _, id := range ids {
		r.Add(id)
	}
	return r
}

// Add registers id at the end of the traversal order. Duplicates are ignored.
func (r *Ring) Add(id string) {
	if id == "" || r.Has(id) {
		return
	}
	r.order = append(r.order, id)
}

// Remove drops id. If it held focus, nothing is focused afterwards.
func (r *Ring) Remove(id string) {
	r.order = without(r.order, id)
	r.trap = without(r.trap, id)
	if r.current == id {
		r.current = ""
	}
}

func (r *Ring) Has(id string) bool {
	return indexOf(r.order, id) >= 0
}

func (r *Ring) Current() string { return r.current }

// Focus moves focus to id. Unknown ids, and ids outside an active trap,
// are refused.
func (r *Ring) Focus(id string) bool {
	if !r.Has(id) {
		return false
	}
	if r.Trapped() && indexOf(r.trap, id) < 0 {
		return false
	}
	r.current = id
	return true
}

// Blur clears focus.
func (r *Ring) Blur() {
	r.current = ""
}

// Trap confines traversal to ids until Release.
func (r *Ring) Trap(ids ...string) {
	r.trap = r.trap[:0]
	for _, id := range ids {
		if r.Has(id) {
			r.trap = append(r.trap, id)
		}
	}
}

func (r *Ring) Release() {
	r.trap = nil
}

func (r *Ring) Trapped() bool {
	return len(r.trap) > 0
}

// Next advances focus and returns the newly focused id.
func (r *Ring) Next() string { return r.step(1) }

// Prev moves focus backwards and returns the newly focused id.
func (r *Ring) Prev() string { return r.step(-1) }

func (r *Ring) step(dir int) string {
	scope := r.order
	if r.Trapped() {
		scope = r.trap
	}
	if len(scope) == 0 {
		return ""
	}

	i := indexOf(scope, r.current)
	switch {
	case i < 0 && dir > 0:
		i = 0
	case i < 0:
		i = len(scope) - 1
	default:
		i = (i + dir + len(scope)) % len(scope)
	}
	r.current = scope[i]
	return r.current
}

func indexOf(ids []string, id string) int {
	for i, v := range ids {
		if v == id {
			return i
		}
	}
	return -1
}

func without(ids []string, id string) []string {
	i := indexOf(ids, id)
	if i < 0 {
		return ids
	}
	return append(ids[:i:i], ids[i+1:]...)
}
