// Package guard decides whether a resolved identity may enter a
// protected section, and where to send it when it may not.
package guard

import "store-rating-service/app/domain"

// State is the guard's evaluation state for a section
type State string

const (
	StateLoading         State = "LOADING"
	StateUnauthenticated State = "UNAUTHENTICATED"
	StateWrongRole       State = "WRONG_ROLE"
	StateAuthorized      State = "AUTHORIZED"
)

// Outcome is what the caller should do with the request
type Outcome int

const (
	// OutcomePending means resolution has not completed; render nothing
	// but a neutral pending indicator.
	OutcomePending Outcome = iota
	// OutcomeAllow renders the protected content.
	OutcomeAllow
	// OutcomeRedirect sends the caller to Decision.Target.
	OutcomeRedirect
)

// Decision is the result of one guard evaluation. None of the states
// are terminal: a later identity change re-evaluates from scratch.
type Decision struct {
	State   State
	Outcome Outcome
	Target  string
}

// Evaluate gates a section behind an optional role requirement.
//
// Unauthenticated callers go to the login page. Authenticated callers
// with a mismatched role go to their own role's home section, never to
// login and never to the requested content. An identity carrying an
// unknown role is treated as unauthenticated.
func Evaluate(loading bool, identity *domain.Identity, requirement domain.RoleRequirement) Decision {
	if loading {
		return Decision{State: StateLoading, Outcome: OutcomePending}
	}

	if identity == nil || !identity.Role.IsValid() {
		return Decision{
			State:   StateUnauthenticated,
			Outcome: OutcomeRedirect,
			Target:  domain.LoginPath,
		}
	}

	if requirement.SatisfiedBy(identity) {
		return Decision{State: StateAuthorized, Outcome: OutcomeAllow}
	}

	return Decision{
		State:   StateWrongRole,
		Outcome: OutcomeRedirect,
		Target:  identity.Role.HomePath(),
	}
}
