package admin

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gorilla/mux"
	"gorm.io/gorm"

	"github.com/enneatest/api/internal/account"
	"github.com/enneatest/api/internal/policy"
	"github.com/enneatest/api/internal/submission"
	"github.com/enneatest/api/internal/utils"
)

type Handler struct {
	DB          *gorm.DB
	Accounts    account.Repository
	Submissions submission.Repository
}

func NewHandler(db *gorm.DB) *Handler {
	return &Handler{
		DB:          db,
		Accounts:    account.NewRepository(),
		Submissions: submission.NewRepository(),
	}
}

// Stats returns platform-wide totals.
func (h *Handler) Stats(w http.ResponseWriter, r *http.Request) {
	totalDealers, err := h.Accounts.CountByRole(h.DB, policy.RoleDealer)
	if err != nil {
		utils.RespondError(w, http.StatusInternalServerError, "Server error.")
		return
	}
	totalStudents, err := h.Accounts.CountByRole(h.DB, policy.RoleStudent)
	if err != nil {
		utils.RespondError(w, http.StatusInternalServerError, "Server error.")
		return
	}
	completedTests, err := h.Submissions.Count(h.DB)
	if err != nil {
		utils.RespondError(w, http.StatusInternalServerError, "Server error.")
		return
	}
	utils.RespondJSON(w, http.StatusOK, statsResponse{
		TotalDealers:   totalDealers,
		TotalStudents:  totalStudents,
		CompletedTests: completedTests,
	})
}

// ListDealers returns every dealer with its student count.
func (h *Handler) ListDealers(w http.ResponseWriter, r *http.Request) {
	dealers, err := h.Accounts.ListByRole(h.DB, policy.RoleDealer)
	if err != nil {
		utils.RespondError(w, http.StatusInternalServerError, "Server error.")
		return
	}
	out := make([]dealerResponse, 0, len(dealers))
	for i := range dealers {
		count, err := h.Accounts.CountStudentsByDealer(h.DB, dealers[i].ID)
		if err != nil {
			utils.RespondError(w, http.StatusInternalServerError, "Server error.")
			return
		}
		out = append(out, dealerView(&dealers[i], count))
	}
	utils.RespondJSON(w, http.StatusOK, out)
}

// CreateDealer registers a dealer account on behalf of the admin.
func (h *Handler) CreateDealer(w http.ResponseWriter, r *http.Request) {
	var req upsertDealerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondError(w, http.StatusBadRequest, "Invalid request body.")
		return
	}
	if req.Name == "" || req.Email == "" || req.Password == "" {
		utils.RespondError(w, http.StatusBadRequest, "Name, email and password are required.")
		return
	}

	hash, err := utils.HashPassword(req.Password)
	if err != nil {
		utils.RespondError(w, http.StatusInternalServerError, "Server error.")
		return
	}

	dealer := account.Account{
		Name:     req.Name,
		Email:    req.Email,
		Password: hash,
		Role:     policy.RoleDealer,
	}
	if err := h.Accounts.Create(h.DB, &dealer); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			utils.RespondError(w, http.StatusBadRequest, "Email is already in use.")
			return
		}
		utils.RespondError(w, http.StatusInternalServerError, "Server error.")
		return
	}

	utils.RespondJSON(w, http.StatusCreated, dealerView(&dealer, 0))
}

// UpdateDealer applies a partial update; omitted fields keep their value
// and an empty password keeps the stored hash. The role is never touched.
func (h *Handler) UpdateDealer(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	dealer, err := h.Accounts.FindByIDAndRole(h.DB, id, policy.RoleDealer)
	if err != nil {
		utils.RespondError(w, http.StatusNotFound, "Dealer not found.")
		return
	}

	var req upsertDealerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondError(w, http.StatusBadRequest, "Invalid request body.")
		return
	}

	if req.Name != "" {
		dealer.Name = req.Name
	}
	if req.Email != "" {
		dealer.Email = req.Email
	}
	if req.Password != "" {
		hash, err := utils.HashPassword(req.Password)
		if err != nil {
			utils.RespondError(w, http.StatusInternalServerError, "Server error.")
			return
		}
		dealer.Password = hash
	}

	if err := h.Accounts.Save(h.DB, dealer); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			utils.RespondError(w, http.StatusBadRequest, "Email is already in use.")
			return
		}
		utils.RespondError(w, http.StatusInternalServerError, "Server error.")
		return
	}

	count, _ := h.Accounts.CountStudentsByDealer(h.DB, dealer.ID)
	utils.RespondJSON(w, http.StatusOK, dealerView(dealer, count))
}

// DeleteDealer removes a dealer and detaches its students in one
// transaction; the students themselves are kept.
func (h *Handler) DeleteDealer(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	dealer, err := h.Accounts.FindByIDAndRole(h.DB, id, policy.RoleDealer)
	if err != nil {
		utils.RespondError(w, http.StatusNotFound, "Dealer not found.")
		return
	}

	err = h.DB.Transaction(func(tx *gorm.DB) error {
		if err := h.Accounts.ClearDealer(tx, dealer.ID); err != nil {
			return err
		}
		return h.Accounts.Delete(tx, dealer)
	})
	if err != nil {
		utils.RespondError(w, http.StatusInternalServerError, "Server error.")
		return
	}

	utils.RespondJSON(w, http.StatusOK, map[string]string{"message": "Dealer deleted successfully."})
}
