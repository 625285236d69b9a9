package common

// AppName is shown in greetings and in the command help.
const AppName = "Tasklists"

// Keys of a single record in the users file.
const (
	FieldName     = "name"
	FieldUsername = "username"
	FieldPassword = "password"
	FieldKey      = "key"
)
