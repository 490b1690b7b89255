package entity

type Guest struct {
	Base
	Name    string `db:"name"` // unique, matches the login username
	Email   string `db:"email"`
	Contact int64  `db:"contact"`
}
