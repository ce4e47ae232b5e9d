package dealer

import (
	"encoding/json"
	"errors"
	"net/http"
	"sort"

	"github.com/gorilla/mux"
	"gorm.io/gorm"

	"github.com/enneatest/api/internal/account"
	"github.com/enneatest/api/internal/auth"
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

// Stats returns the caller's roster totals and the personality-type
// distribution over its students' completed tests.
func (h *Handler) Stats(w http.ResponseWriter, r *http.Request) {
	actor := auth.ActorFrom(r.Context())

	students, err := h.Accounts.ListStudentsByDealer(h.DB, actor.ID)
	if err != nil {
		utils.RespondError(w, http.StatusInternalServerError, "Server error.")
		return
	}
	ids := make([]string, len(students))
	for i := range students {
		ids[i] = students[i].ID
	}

	subs, err := h.Submissions.ListByAccounts(h.DB, ids)
	if err != nil {
		utils.RespondError(w, http.StatusInternalServerError, "Server error.")
		return
	}

	counts := make(map[int]int)
	for _, s := range subs {
		counts[s.PersonalityType]++
	}
	distribution := make([]typeCount, 0, len(counts))
	for t, n := range counts {
		distribution = append(distribution, typeCount{Type: t, Count: n})
	}
	sort.Slice(distribution, func(i, j int) bool { return distribution[i].Type < distribution[j].Type })

	utils.RespondJSON(w, http.StatusOK, statsResponse{
		TotalStudents:    int64(len(students)),
		CompletedTests:   int64(len(subs)),
		PersonalityTypes: distribution,
	})
}

// ListStudents returns the caller's students, each annotated with its
// test status.
func (h *Handler) ListStudents(w http.ResponseWriter, r *http.Request) {
	actor := auth.ActorFrom(r.Context())

	students, err := h.Accounts.ListStudentsByDealer(h.DB, actor.ID)
	if err != nil {
		utils.RespondError(w, http.StatusInternalServerError, "Server error.")
		return
	}
	ids := make([]string, len(students))
	for i := range students {
		ids[i] = students[i].ID
	}
	subs, err := h.Submissions.ListByAccounts(h.DB, ids)
	if err != nil {
		utils.RespondError(w, http.StatusInternalServerError, "Server error.")
		return
	}
	typeByAccount := make(map[string]int, len(subs))
	for _, s := range subs {
		typeByAccount[s.AccountID] = s.PersonalityType
	}

	out := make([]studentResponse, 0, len(students))
	for i := range students {
		var pt *int
		if t, ok := typeByAccount[students[i].ID]; ok {
			pt = &t
		}
		out = append(out, studentView(&students[i], pt))
	}
	utils.RespondJSON(w, http.StatusOK, out)
}

// CreateStudent registers a student owned by the calling dealer.
func (h *Handler) CreateStudent(w http.ResponseWriter, r *http.Request) {
	actor := auth.ActorFrom(r.Context())

	var req upsertStudentRequest
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

	dealerID := actor.ID
	student := account.Account{
		Name:     req.Name,
		Email:    req.Email,
		Password: hash,
		Role:     policy.RoleStudent,
		DealerID: &dealerID,
	}
	if err := h.Accounts.Create(h.DB, &student); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			utils.RespondError(w, http.StatusBadRequest, "Email is already in use.")
			return
		}
		utils.RespondError(w, http.StatusInternalServerError, "Server error.")
		return
	}

	utils.RespondJSON(w, http.StatusCreated, studentView(&student, nil))
}

// loadOwnedStudent fetches the addressed student and runs it through the
// access policy. A student owned by another dealer comes back as the same
// not-found error as a missing id.
func (h *Handler) loadOwnedStudent(r *http.Request, op policy.Operation) (*account.Account, error) {
	actor := auth.ActorFrom(r.Context())
	id := mux.Vars(r)["id"]

	student, err := h.Accounts.FindByIDAndRole(h.DB, id, policy.RoleStudent)
	if err != nil {
		return nil, policy.ErrNotFound
	}

	target := policy.Target{AccountID: student.ID}
	if student.DealerID != nil {
		target.OwningDealerID = *student.DealerID
	}
	if err := policy.Authorize(actor, op, target); err != nil {
		return nil, err
	}
	return student, nil
}

// UpdateStudent applies a partial update to an owned student; an empty
// password keeps the stored hash and the role is never touched.
func (h *Handler) UpdateStudent(w http.ResponseWriter, r *http.Request) {
	student, err := h.loadOwnedStudent(r, policy.OpUpdateStudent)
	if err != nil {
		respondPolicyError(w, err)
		return
	}

	var req upsertStudentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondError(w, http.StatusBadRequest, "Invalid request body.")
		return
	}

	if req.Name != "" {
		student.Name = req.Name
	}
	if req.Email != "" {
		student.Email = req.Email
	}
	if req.Password != "" {
		hash, err := utils.HashPassword(req.Password)
		if err != nil {
			utils.RespondError(w, http.StatusInternalServerError, "Server error.")
			return
		}
		student.Password = hash
	}

	if err := h.Accounts.Save(h.DB, student); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			utils.RespondError(w, http.StatusBadRequest, "Email is already in use.")
			return
		}
		utils.RespondError(w, http.StatusInternalServerError, "Server error.")
		return
	}

	sub, err := h.Submissions.FindByAccount(h.DB, student.ID)
	var pt *int
	if err == nil {
		pt = &sub.PersonalityType
	}
	utils.RespondJSON(w, http.StatusOK, studentView(student, pt))
}

// DeleteStudent removes an owned student together with its submission.
func (h *Handler) DeleteStudent(w http.ResponseWriter, r *http.Request) {
	student, err := h.loadOwnedStudent(r, policy.OpDeleteStudent)
	if err != nil {
		respondPolicyError(w, err)
		return
	}

	err = h.DB.Transaction(func(tx *gorm.DB) error {
		if err := h.Submissions.DeleteByAccount(tx, student.ID); err != nil {
			return err
		}
		return h.Accounts.Delete(tx, student)
	})
	if err != nil {
		utils.RespondError(w, http.StatusInternalServerError, "Server error.")
		return
	}

	utils.RespondJSON(w, http.StatusOK, map[string]string{"message": "Student deleted successfully."})
}

func respondPolicyError(w http.ResponseWriter, err error) {
	if errors.Is(err, policy.ErrForbidden) {
		utils.RespondError(w, http.StatusForbidden, "You are not allowed to perform this action.")
		return
	}
	utils.RespondError(w, http.StatusNotFound, "Student not found.")
}
