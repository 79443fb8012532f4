package nav

// Decision is the outcome of one navigation request.
type Decision struct {
	// Requested is the page the user asked for (after Parse).
	Requested Page
	// View is the page that is actually activated.
	View Page
	// Gated is true when View is the login page standing in for a
	// protected Requested page.
	Gated bool
}

type gateKey struct {
	protected     bool
	authenticated bool
}

type gateOutcome int

const (
	activateRequested gateOutcome = iota
	activateLogin
)

// transitions is the complete (protected, authenticated) -> outcome table.
var transitions = map[gateKey]gateOutcome{
	{protected: true, authenticated: false}:  activateLogin,
	{protected: true, authenticated: true}:   activateRequested,
	{protected: false, authenticated: false}: activateRequested,
	{protected: false, authenticated: true}:  activateRequested,
}

// DefaultProtected is the set of pages that require a session.
var DefaultProtected = []Page{Detection, Diet, Wellness, Tracking}

// Gate decides which view a navigation request activates.
type Gate struct {
	protected map[Page]struct{}
	// returnToRequested carries the gated page through the login detour
	// instead of landing on Default.
	returnToRequested bool
}

// GateOption configures a Gate.
type GateOption func(*Gate)

// WithReturnToRequested makes AfterLogin return the page that triggered the
// login detour.
func WithReturnToRequested(enabled bool) GateOption {
	return func(g *Gate) { g.returnToRequested = enabled }
}

// NewGate builds a gate over the DefaultProtected set.
func NewGate(opts ...GateOption) Gate {
	g := Gate{protected: make(map[Page]struct{}, len(DefaultProtected))}
	for _, p := range DefaultProtected {
		g.protected[p] = struct{}{}
	}
	for _, opt := range opts {
		opt(&g)
	}
	return g
}

// IsProtected reports whether p needs a session.
func (g Gate) IsProtected(p Page) bool {
	_, ok := g.protected[p]
	return ok
}

// Decide evaluates the transition table. It is cheap and holds no state, so
// callers evaluate it on every navigation.
func (g Gate) Decide(requested Page, authenticated bool) Decision {
	if !requested.Known() {
		requested = Default
	}

	d := Decision{Requested: requested, View: requested}
	if transitions[gateKey{protected: g.IsProtected(requested), authenticated: authenticated}] == activateLogin {
		d.View = Login
		d.Gated = true
	}
	return d
}

// AfterLogin is the page to show once a login started from d succeeds.
func (g Gate) AfterLogin(d Decision) Page {
	if g.returnToRequested && d.Gated {
		return d.Requested
	}
	return Default
}
