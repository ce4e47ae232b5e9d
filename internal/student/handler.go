package student

import (
	"net/http"

	"gorm.io/gorm"

	"github.com/enneatest/api/internal/auth"
	"github.com/enneatest/api/internal/policy"
	"github.com/enneatest/api/internal/profile"
	"github.com/enneatest/api/internal/submission"
	"github.com/enneatest/api/internal/utils"
)

type infoResponse struct {
	HasCompletedTest bool `json:"hasCompletedTest"`
	PersonalityType  *int `json:"personalityType,omitempty"`
}

// resultResponse flattens the resolved profile next to the type number.
type resultResponse struct {
	PersonalityType int `json:"personalityType"`
	*profile.TypeProfile
}

type Handler struct {
	DB          *gorm.DB
	Submissions submission.Repository
}

func NewHandler(db *gorm.DB) *Handler {
	return &Handler{DB: db, Submissions: submission.NewRepository()}
}

// Info reports whether the caller has taken the test yet.
func (h *Handler) Info(w http.ResponseWriter, r *http.Request) {
	actor := auth.ActorFrom(r.Context())
	if err := policy.Authorize(actor, policy.OpViewOwnInfo, policy.Target{AccountID: actor.ID}); err != nil {
		utils.RespondError(w, http.StatusForbidden, "You are not allowed to perform this action.")
		return
	}

	sub, err := h.Submissions.FindByAccount(h.DB, actor.ID)
	if err != nil {
		utils.RespondJSON(w, http.StatusOK, infoResponse{HasCompletedTest: false})
		return
	}
	utils.RespondJSON(w, http.StatusOK, infoResponse{
		HasCompletedTest: true,
		PersonalityType:  &sub.PersonalityType,
	})
}

// Results expands the caller's stored personality type into the full
// report payload.
func (h *Handler) Results(w http.ResponseWriter, r *http.Request) {
	actor := auth.ActorFrom(r.Context())
	if err := policy.Authorize(actor, policy.OpViewOwnResults, policy.Target{AccountID: actor.ID}); err != nil {
		utils.RespondError(w, http.StatusForbidden, "You are not allowed to perform this action.")
		return
	}

	sub, err := h.Submissions.FindByAccount(h.DB, actor.ID)
	if err != nil {
		utils.RespondError(w, http.StatusNotFound, "Test result not found.")
		return
	}

	prof, err := profile.Resolve(sub.PersonalityType)
	if err != nil {
		utils.RespondError(w, http.StatusNotFound, "Personality type information not found.")
		return
	}

	utils.RespondJSON(w, http.StatusOK, resultResponse{
		PersonalityType: sub.PersonalityType,
		TypeProfile:     prof,
	})
}
