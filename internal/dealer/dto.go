package dealer

import (
	"time"

	"github.com/enneatest/api/internal/account"
	"github.com/enneatest/api/internal/policy"
)

type typeCount struct {
	Type  int `json:"type"`
	Count int `json:"count"`
}

type statsResponse struct {
	TotalStudents    int64       `json:"totalStudents"`
	CompletedTests   int64       `json:"completedTests"`
	PersonalityTypes []typeCount `json:"personalityTypes"`
}

type studentResponse struct {
	ID               string      `json:"id"`
	Name             string      `json:"name"`
	Email            string      `json:"email"`
	Role             policy.Role `json:"role"`
	DealerID         *string     `json:"dealerId,omitempty"`
	CreatedAt        time.Time   `json:"createdAt"`
	HasCompletedTest bool        `json:"hasCompletedTest"`
	PersonalityType  *int        `json:"personalityType,omitempty"`
}

func studentView(a *account.Account, personalityType *int) studentResponse {
	return studentResponse{
		ID:               a.ID,
		Name:             a.Name,
		Email:            a.Email,
		Role:             a.Role,
		DealerID:         a.DealerID,
		CreatedAt:        a.CreatedAt,
		HasCompletedTest: personalityType != nil,
		PersonalityType:  personalityType,
	}
}

type upsertStudentRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}
