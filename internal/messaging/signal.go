package messaging

// Command names a session signal.
type Command string

const (
	CommandLoggedIn  Command = "loggedIn"
	CommandLocked    Command = "locked"
	CommandLoggedOut Command = "loggedOut"
	CommandUnlocked  Command = "unlocked"
)

// Signal is a session lifecycle event for one account.
type Signal struct {
	Command Command
	UserID  string
	// Expired is set when a logout was triggered by the vault timeout.
	Expired bool
}
