package table

// UserError is an error that is safe to return in a response
type UserError string

func (u UserError) Error() string {
	return string(u)
}

// validation errors surfaced verbatim to the caller
const (
	ErrTableFull      = UserError("table is full")
	ErrPlayerNotFound = UserError("player is not seated at the table")
)
