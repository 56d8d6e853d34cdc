package entity

type User struct {
	BaseNoDelete
	Username     string `db:"username"`
	Email        string `db:"email"`
	PasswordHash string `db:"password"`
	IsActive     bool   `db:"is_active"`
}
