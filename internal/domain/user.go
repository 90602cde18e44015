package domain

import "time"

type Users struct {
	ID           int64     `db:"id"`
	Email        string    `db:"email"`
	PasswordHash *string   `db:"pwd_hash"`
	Name         *string   `db:"name"`
	Picture      *string   `db:"picture"`
	Provider     *string   `db:"provider"`
	CreatedAt    time.Time `db:"created_at"`
	UpdatedAt    time.Time `db:"updated_at"`
}

type UsersTable struct {
	ID           string
	Email        string
	PasswordHash string
	Name         string
	Picture      string
	Provider     string
	CreatedAt    string
	UpdatedAt    string
}

func GetUserTable() UsersTable {
	return UsersTable{
		ID:           "id",
		Email:        "email",
		PasswordHash: "pwd_hash",
		Name:         "name",
		Picture:      "picture",
		Provider:     "provider",
		CreatedAt:    "created_at",
		UpdatedAt:    "updated_at",
	}
}

func (t UsersTable) GetTableName() string {
	return "users"
}
