package account

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/enneatest/api/internal/policy"
)

// Account is a registered user of any role. DealerID is set only on
// students created by a dealer; it is cleared (not cascaded) when that
// dealer is deleted. Role never changes after creation.
type Account struct {
	ID        string      `json:"id" gorm:"primaryKey;size:36"`
	Name      string      `json:"name"`
	Email     string      `json:"email" gorm:"uniqueIndex;not null"`
	Password  string      `json:"-" gorm:"not null"`
	Role      policy.Role `json:"role" gorm:"size:16;not null"`
	DealerID  *string     `json:"dealerId,omitempty" gorm:"size:36;index"`
	CreatedAt time.Time   `json:"createdAt"`
}

func (a *Account) BeforeCreate(tx *gorm.DB) error {
	if a.ID == "" {
		a.ID = uuid.NewString()
	}
	return nil
}
