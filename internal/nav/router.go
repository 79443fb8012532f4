package nav

// Session is the read side of the session store.
type Session interface {
	IsAuthenticated() bool
}

// Surface is the presentation area a router scrolls.
type Surface interface {
	ScrollToOrigin()
}

// NopSurface ignores scroll requests; used where there is nothing to scroll.
type NopSurface struct{}

func (NopSurface) ScrollToOrigin() {}

// Router holds the current page. It keeps no history: a new Router always
// starts at Default.
type Router struct {
	gate    Gate
	session Session
	surface Surface
	current Page
}

// NewRouter returns a router positioned on Default.
func NewRouter(gate Gate, session Session, surface Surface) *Router {
	if surface == nil {
		surface = NopSurface{}
	}
	return &Router{gate: gate, session: session, surface: surface, current: Default}
}

// Navigate moves to the requested page, scrolls the surface to its origin
// and returns the gate's decision for the new page.
func (r *Router) Navigate(raw string) Decision {
	r.current, _ = Parse(raw)
	r.surface.ScrollToOrigin()
	return r.Active()
}

// Current returns the page last navigated to. It can be a protected page
// while the login view is showing.
func (r *Router) Current() Page {
	return r.current
}

// Active re-evaluates the gate for the current page against the live
// session flag.
func (r *Router) Active() Decision {
	return r.gate.Decide(r.current, r.session.IsAuthenticated())
}

// Gate returns the router's gate.
func (r *Router) Gate() Gate {
	return r.gate
}
