package auth

import "regexp"

// MinPasswordLength is the shortest password accepted at registration
const MinPasswordLength = 6

// MaxPasswordBytes is bcrypt's input limit
const MaxPasswordBytes = 72

// emailPattern is deliberately loose: something, an at sign, something, a dot, something
var emailPattern = regexp.MustCompile(`\S+@\S+\.\S+`)

// Form field names used as keys of domain.FormError
const (
	FieldName            = "name"
	FieldEmail           = "email"
	FieldPassword        = "password"
	FieldConfirmPassword = "confirmPassword"
	FieldLocation        = "location"
	FieldRole            = "role"
)

// User-facing field messages
const (
	MsgNameRequired     = "Name is required"
	MsgEmailRequired    = "Email is required"
	MsgEmailInvalid     = "Please enter a valid email"
	MsgPasswordRequired = "Password is required"
	MsgPasswordTooShort = "Password must be at least 6 characters"
	MsgPasswordTooLong  = "Password must be at most 72 bytes"
	MsgPasswordMismatch = "Passwords do not match"
	MsgLocationRequired = "Location is required"
)

// Log messages
const (
	LogMsgLoginSucceeded    = "Member logged in"
	LogMsgLoginFailed       = "Login rejected"
	LogMsgAccountRegistered = "Account registered"
	LogMsgPublishFailed     = "Failed to publish account event"
)
