package dto

// PatchVotesDTO is the body of a vote update. IncVotes is a pointer so
// a missing field is distinguishable from zero, and an int so fractional
// or non-numeric JSON values fail at decode time.
type PatchVotesDTO struct {
	IncVotes *int `json:"inc_votes"`
}
