package domain

// SessionStore holds client state scoped to one session.
// The only entry today is the group mapping under a fixed key.
type SessionStore interface {
	GetGroups() (Groups, bool)
	SaveGroups(groups Groups) error

	// Info reports the current session
	Info() SessionInfo

	// End terminates the session and clears everything it holds
	End() error

	Close() error
}
