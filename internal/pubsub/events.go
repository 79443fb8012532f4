package pubsub

// Sources stamped on published events.
const (
	SourceWeb = "web"
	SourceCLI = "cli"
)

// SessionPayload is published when the session flag flips.
type SessionPayload struct {
	Authenticated bool `json:"authenticated"`
}

// AssessmentPayload carries the prediction result, never the inputs.
type AssessmentPayload struct {
	Risk       string  `json:"pcos_risk"`
	Confidence float64 `json:"confidence"`
}

// AccountPayload is published after the backend accepts a sign-up.
type AccountPayload struct {
	Name string `json:"name"`
}

var (
	SessionLogin        = NewEvent[SessionPayload]("session.login", "A session marker was set")
	SessionLogout       = NewEvent[SessionPayload]("session.logout", "A session marker was cleared")
	AssessmentCompleted = NewEvent[AssessmentPayload]("assessment.completed", "A risk prediction returned")
	AccountRegistered   = NewEvent[AccountPayload]("account.registered", "A new account was created")
)

// Topics lists every topic the application publishes.
func Topics() []string {
	return []string{
		SessionLogin.Name(),
		SessionLogout.Name(),
		AssessmentCompleted.Name(),
		AccountRegistered.Name(),
	}
}
