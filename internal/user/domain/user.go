package domain

import (
	"time"

	"gorm.io/datatypes"
)

// User represents the user entity (domain model). Favourites is the
// single authoritative owner of the user-to-blog favourite relationship;
// blogs never store a reverse list.
type User struct {
	ID         uint                      `json:"id" gorm:"primaryKey"`
	Email      string                    `json:"email" gorm:"uniqueIndex;not null"`
	FirstName  string                    `json:"firstName" gorm:"not null"`
	LastName   string                    `json:"lastName" gorm:"not null"`
	Avatar     string                    `json:"avatar"`
	Bio        string                    `json:"bio"`
	Password   string                    `json:"-" gorm:"not null"` // Never expose password in JSON
	Favourites datatypes.JSONSlice[uint] `json:"favourites"`
	CreatedAt  time.Time                 `json:"createdAt"`
	UpdatedAt  time.Time                 `json:"updatedAt"`
}

// TableName specifies the table name
func (User) TableName() string {
	return "users"
}

// FavouriteIndex returns the position of blogID in favourites, -1 when absent
func (u *User) FavouriteIndex(blogID uint) int {
	for i, id := range u.Favourites {
		if id == blogID {
			return i
		}
	}
	return -1
}

// UserRepository defines the contract for user data access
type UserRepository interface {
	Create(user *User) error
	FindByID(id uint) (*User, error)
	FindByEmail(email string) (*User, error)
	Update(user *User) error
	Delete(id uint) error
	Count() (int64, error)
}
