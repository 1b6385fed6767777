package models

// User is the caller identity supplied in request bodies. There is no
// session system: the identity is trusted as provided, and ownership checks
// compare User.ID against a report's SubmitterID with exact string equality.
type User struct {
	ID string `json:"id"`
}
