package service

// PasswordPolicy validates a candidate password before it is hashed.
type PasswordPolicy interface {
	Validate(password string) error
}
