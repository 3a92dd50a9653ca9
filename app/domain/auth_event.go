package domain

// AuthEventType enumerates the two valid authentication-state
// transitions. Emitting any other shape is a contract violation.
type AuthEventType string

const (
	AuthEventSignedIn  AuthEventType = "SIGNED_IN"
	AuthEventSignedOut AuthEventType = "SIGNED_OUT"
)

// AuthChange carries one authentication-state transition. Identity is
// set only for signed-in events.
type AuthChange struct {
	Event    AuthEventType
	Identity *Identity
}

// SignedIn builds a signed-in transition for the given identity
func SignedIn(identity *Identity) AuthChange {
	return AuthChange{Event: AuthEventSignedIn, Identity: identity}
}

// SignedOut builds a signed-out transition
func SignedOut() AuthChange {
	return AuthChange{Event: AuthEventSignedOut}
}
