package meta

// Card is a term/definition pair with the number of quiz rounds answered
// wrong since the last reset.
type Card struct {
	Term       string
	Definition string
	Mistakes   int
}
