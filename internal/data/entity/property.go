package entity

type Property struct {
	Base
	Name     string  `db:"name"`
	Address  *string `db:"address"`
	City     *string `db:"city"`
	Country  *string `db:"country"`
	Phone    *string `db:"phone"`
	Email    *string `db:"email"`
	Currency string  `db:"currency"`
	IsActive bool    `db:"is_active"`
}
