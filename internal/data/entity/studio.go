package entity

type Studio struct {
	BaseNoDelete
	Name     string `db:"name"`
	Capacity int    `db:"capacity"`
}
