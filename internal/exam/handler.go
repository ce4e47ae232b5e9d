package exam

import (
	"encoding/json"
	"net/http"

	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/enneatest/api/internal/auth"
	"github.com/enneatest/api/internal/policy"
	"github.com/enneatest/api/internal/question"
	"github.com/enneatest/api/internal/scoring"
	"github.com/enneatest/api/internal/submission"
	"github.com/enneatest/api/internal/utils"
)

type submitRequest struct {
	Answers map[int]int `json:"answers"`
}

type Handler struct {
	DB          *gorm.DB
	Submissions submission.Repository
}

func NewHandler(db *gorm.DB) *Handler {
	return &Handler{DB: db, Submissions: submission.NewRepository()}
}

// Questions returns the static questionnaire.
func (h *Handler) Questions(w http.ResponseWriter, r *http.Request) {
	utils.RespondJSON(w, http.StatusOK, question.All())
}

// Submit scores the caller's answers and stores the submission, replacing
// any earlier one for the same account.
func (h *Handler) Submit(w http.ResponseWriter, r *http.Request) {
	actor := auth.ActorFrom(r.Context())

	var req submitRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondError(w, http.StatusBadRequest, "Invalid request body.")
		return
	}
	for _, v := range req.Answers {
		if v < 1 || v > 5 {
			utils.RespondError(w, http.StatusBadRequest, "Answer values must be between 1 and 5.")
			return
		}
	}

	if err := policy.Authorize(actor, policy.OpSubmitTest, policy.Target{AccountID: actor.ID}); err != nil {
		utils.RespondError(w, http.StatusForbidden, "You are not allowed to perform this action.")
		return
	}

	personalityType := scoring.Score(req.Answers)

	raw, err := json.Marshal(req.Answers)
	if err != nil {
		utils.RespondError(w, http.StatusInternalServerError, "Server error.")
		return
	}
	sub := submission.TestSubmission{
		AccountID:       actor.ID,
		PersonalityType: personalityType,
		Answers:         datatypes.JSON(raw),
	}
	if err := h.Submissions.Upsert(h.DB, &sub); err != nil {
		utils.RespondError(w, http.StatusInternalServerError, "Server error.")
		return
	}

	utils.RespondJSON(w, http.StatusOK, map[string]int{"personalityType": personalityType})
}
