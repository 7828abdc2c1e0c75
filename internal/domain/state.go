package domain

// StateData holds per-user chat state between updates
type StateData struct {
	// LastWord is the most recent word that was found, saved when the
	// save button carries no payload
	LastWord string
}
