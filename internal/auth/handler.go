package auth

import (
	"encoding/json"
	"errors"
	"net/http"

	"gorm.io/gorm"

	"github.com/enneatest/api/internal/account"
	"github.com/enneatest/api/internal/policy"
	"github.com/enneatest/api/internal/utils"
)

type registerRequest struct {
	Name     string      `json:"name"`
	Email    string      `json:"email"`
	Password string      `json:"password"`
	Role     policy.Role `json:"role"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// userResponse is the account view returned by the auth endpoints,
// without the password hash or dealer linkage.
type userResponse struct {
	ID    string      `json:"id"`
	Name  string      `json:"name"`
	Email string      `json:"email"`
	Role  policy.Role `json:"role"`
}

func userView(a *account.Account) userResponse {
	return userResponse{ID: a.ID, Name: a.Name, Email: a.Email, Role: a.Role}
}

type Handler struct {
	DB       *gorm.DB
	Accounts account.Repository
}

func NewHandler(db *gorm.DB) *Handler {
	return &Handler{DB: db, Accounts: account.NewRepository()}
}

// Register creates an account with a caller-supplied role and logs it in.
func (h *Handler) Register(w http.ResponseWriter, r *http.Request) {
	var req registerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondError(w, http.StatusBadRequest, "Invalid request body.")
		return
	}
	if req.Name == "" || req.Email == "" || req.Password == "" {
		utils.RespondError(w, http.StatusBadRequest, "Name, email and password are required.")
		return
	}
	if !policy.ValidRole(req.Role) {
		utils.RespondError(w, http.StatusBadRequest, "Invalid role.")
		return
	}

	hash, err := utils.HashPassword(req.Password)
	if err != nil {
		utils.RespondError(w, http.StatusInternalServerError, "Server error.")
		return
	}

	acc := account.Account{
		Name:     req.Name,
		Email:    req.Email,
		Password: hash,
		Role:     req.Role,
	}
	if err := h.Accounts.Create(h.DB, &acc); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			utils.RespondError(w, http.StatusBadRequest, "Email is already in use.")
			return
		}
		utils.RespondError(w, http.StatusInternalServerError, "Server error.")
		return
	}

	token, err := GenerateToken(acc.ID, acc.Role)
	if err != nil {
		utils.RespondError(w, http.StatusInternalServerError, "Server error.")
		return
	}

	utils.RespondJSON(w, http.StatusCreated, map[string]interface{}{
		"token": token,
		"user":  userView(&acc),
	})
}

// Login checks credentials and issues a token. The response for an
// unknown email and for a wrong password is identical.
func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondError(w, http.StatusBadRequest, "Invalid request body.")
		return
	}

	acc, err := h.Accounts.FindByEmail(h.DB, req.Email)
	if err != nil {
		utils.RespondError(w, http.StatusBadRequest, "Invalid email or password.")
		return
	}
	if !utils.CheckPassword(acc.Password, req.Password) {
		utils.RespondError(w, http.StatusBadRequest, "Invalid email or password.")
		return
	}

	token, err := GenerateToken(acc.ID, acc.Role)
	if err != nil {
		utils.RespondError(w, http.StatusInternalServerError, "Server error.")
		return
	}

	utils.RespondJSON(w, http.StatusOK, map[string]interface{}{
		"token": token,
		"user":  userView(acc),
	})
}

// Me returns the caller's own profile.
func (h *Handler) Me(w http.ResponseWriter, r *http.Request) {
	actor := ActorFrom(r.Context())
	acc, err := h.Accounts.FindByID(h.DB, actor.ID)
	if err != nil {
		utils.RespondError(w, http.StatusNotFound, "Account not found.")
		return
	}
	utils.RespondJSON(w, http.StatusOK, userView(acc))
}
