package models

import "time"

type Department struct {
	Id            int64     `json:"id" db:"id"`
	InstitutionId *int64    `json:"institution_id" db:"institution_id"`
	Name          string    `json:"name" db:"name"`
	Code          string    `json:"code" db:"code"`
	Faculty       *string   `json:"faculty" db:"faculty"`
	Description   *string   `json:"description" db:"description"`
	Status        string    `json:"status" db:"status"`
	CreatedAt     time.Time `json:"created_at" db:"created_at"`
	UpdatedAt     time.Time `json:"updated_at" db:"updated_at"`
}
