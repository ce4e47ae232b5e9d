package admin

import (
	"time"

	"github.com/enneatest/api/internal/account"
	"github.com/enneatest/api/internal/policy"
)

type statsResponse struct {
	TotalDealers   int64 `json:"totalDealers"`
	TotalStudents  int64 `json:"totalStudents"`
	CompletedTests int64 `json:"completedTests"`
}

type dealerResponse struct {
	ID           string      `json:"id"`
	Name         string      `json:"name"`
	Email        string      `json:"email"`
	Role         policy.Role `json:"role"`
	CreatedAt    time.Time   `json:"createdAt"`
	StudentCount int64       `json:"studentCount"`
}

func dealerView(a *account.Account, studentCount int64) dealerResponse {
	return dealerResponse{
		ID:           a.ID,
		Name:         a.Name,
		Email:        a.Email,
		Role:         a.Role,
		CreatedAt:    a.CreatedAt,
		StudentCount: studentCount,
	}
}

type upsertDealerRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}
