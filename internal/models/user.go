package models

// UserAccount is a known user, as returned by the user search endpoint.
// Authors on entries are stored as plain names; accounts are only used
// for suggestions while typing.
type UserAccount struct {
	Login string `json:"login"`
	Name  string `json:"name"`
}
