package models

// Registration carries the caller's input for the three-step registration
// flow. It is not a wire type: the client assembles the actual request
// bodies itself, duplicating Password into the password_confirm field the
// API insists on.
type Registration struct {
	// Nickname is the desired unique display name.
	Nickname string

	// Email is the address the account will be bound to.
	Email string

	// Password is sent as-is; the API performs its own hashing.
	Password string

	// Phone is the number the verification call is placed to,
	// in +7XXXXXXXXXX form.
	Phone string
}
