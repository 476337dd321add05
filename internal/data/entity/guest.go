package entity

type Guest struct {
	Base
	FirstName   string  `db:"first_name"`
	LastName    string  `db:"last_name"`
	Email       *string `db:"email"`
	Phone       *string `db:"phone"`
	Nationality *string `db:"nationality"`
	IDNumber    *string `db:"id_number"`
	Notes       *string `db:"notes"`
}
