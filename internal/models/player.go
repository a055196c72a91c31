package models

// Player represents a bowler in a match
type Player struct {
	// Number is the one-indexed position of the player in turn order
	Number int

	// Name is the display name of the player
	Name string
}
