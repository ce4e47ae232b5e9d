package dealer

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"gorm.io/gorm"

	"github.com/enneatest/api/internal/account"
	"github.com/enneatest/api/internal/auth"
	"github.com/enneatest/api/internal/policy"
	"github.com/enneatest/api/internal/submission"
)

type stubAccounts struct {
	account.Repository
	accounts map[string]*account.Account
	created  []*account.Account
}

func (s *stubAccounts) Create(db *gorm.DB, a *account.Account) error {
	if a.ID == "" {
		a.ID = "created-" + a.Email
	}
	copy := *a
	s.accounts[a.ID] = &copy
	s.created = append(s.created, &copy)
	return nil
}

func (s *stubAccounts) Save(db *gorm.DB, a *account.Account) error {
	copy := *a
	s.accounts[a.ID] = &copy
	return nil
}

func (s *stubAccounts) FindByIDAndRole(db *gorm.DB, id string, role policy.Role) (*account.Account, error) {
	a, ok := s.accounts[id]
	if !ok || a.Role != role {
		return nil, gorm.ErrRecordNotFound
	}
	copy := *a
	return &copy, nil
}

func (s *stubAccounts) ListStudentsByDealer(db *gorm.DB, dealerID string) ([]account.Account, error) {
	var out []account.Account
	for _, a := range s.accounts {
		if a.Role == policy.RoleStudent && a.DealerID != nil && *a.DealerID == dealerID {
			out = append(out, *a)
		}
	}
	return out, nil
}

type stubSubmissions struct {
	submission.Repository
	byAccount map[string]*submission.TestSubmission
}

func (s *stubSubmissions) FindByAccount(db *gorm.DB, accountID string) (*submission.TestSubmission, error) {
	sub, ok := s.byAccount[accountID]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	copy := *sub
	return &copy, nil
}

func (s *stubSubmissions) ListByAccounts(db *gorm.DB, accountIDs []string) ([]submission.TestSubmission, error) {
	var out []submission.TestSubmission
	for _, id := range accountIDs {
		if sub, ok := s.byAccount[id]; ok {
			out = append(out, *sub)
		}
	}
	return out, nil
}

func newTestHandler() (*Handler, *stubAccounts, *stubSubmissions) {
	accounts := &stubAccounts{accounts: map[string]*account.Account{}}
	subs := &stubSubmissions{byAccount: map[string]*submission.TestSubmission{}}
	return &Handler{Accounts: accounts, Submissions: subs}, accounts, subs
}

func addStudent(store *stubAccounts, id, dealerID string) {
	d := dealerID
	store.accounts[id] = &account.Account{
		ID:       id,
		Name:     "Student " + id,
		Email:    id + "@example.com",
		Role:     policy.RoleStudent,
		DealerID: &d,
	}
}

func asDealer(req *http.Request, dealerID string) *http.Request {
	actor := policy.Actor{ID: dealerID, Role: policy.RoleDealer}
	return req.WithContext(auth.WithActor(req.Context(), actor))
}

func TestUpdateStudentCrossTenantMasked(t *testing.T) {
	h, store, _ := newTestHandler()
	addStudent(store, "stu-1", "dealer-b")

	body, _ := json.Marshal(map[string]string{"name": "New Name"})

	// Someone else's student...
	req := httptest.NewRequest(http.MethodPut, "/api/dealer/students/stu-1", bytes.NewReader(body))
	req = asDealer(mux.SetURLVars(req, map[string]string{"id": "stu-1"}), "dealer-a")
	foreign := httptest.NewRecorder()
	h.UpdateStudent(foreign, req)

	// ...and a student that does not exist at all.
	req = httptest.NewRequest(http.MethodPut, "/api/dealer/students/ghost", bytes.NewReader(body))
	req = asDealer(mux.SetURLVars(req, map[string]string{"id": "ghost"}), "dealer-a")
	missing := httptest.NewRecorder()
	h.UpdateStudent(missing, req)

	if foreign.Code != http.StatusNotFound || missing.Code != http.StatusNotFound {
		t.Fatalf("expected 404/404, got %d/%d", foreign.Code, missing.Code)
	}
	if foreign.Body.String() != missing.Body.String() {
		t.Fatalf("cross-tenant response must match not-found: %q vs %q",
			foreign.Body.String(), missing.Body.String())
	}
	if got := store.accounts["stu-1"].Name; got != "Student stu-1" {
		t.Fatalf("foreign student was modified: %q", got)
	}
}

func TestUpdateOwnStudentPartial(t *testing.T) {
	h, store, _ := newTestHandler()
	addStudent(store, "stu-1", "dealer-a")
	store.accounts["stu-1"].Password = "old-hash"

	body, _ := json.Marshal(map[string]string{"name": "Renamed"})
	req := httptest.NewRequest(http.MethodPut, "/api/dealer/students/stu-1", bytes.NewReader(body))
	req = asDealer(mux.SetURLVars(req, map[string]string{"id": "stu-1"}), "dealer-a")
	rec := httptest.NewRecorder()
	h.UpdateStudent(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status %d, body %s", rec.Code, rec.Body.String())
	}
	updated := store.accounts["stu-1"]
	if updated.Name != "Renamed" {
		t.Fatalf("name not updated: %q", updated.Name)
	}
	if updated.Email != "stu-1@example.com" {
		t.Fatalf("omitted email was changed: %q", updated.Email)
	}
	if updated.Password != "old-hash" {
		t.Fatal("empty password must keep the stored hash")
	}
	if updated.Role != policy.RoleStudent {
		t.Fatalf("role changed to %q", updated.Role)
	}
}

func TestCreateStudentAutoScoped(t *testing.T) {
	h, store, _ := newTestHandler()

	body, _ := json.Marshal(map[string]string{
		"name": "New Student", "email": "new@example.com", "password": "secret",
	})
	req := asDealer(httptest.NewRequest(http.MethodPost, "/api/dealer/students", bytes.NewReader(body)), "dealer-a")
	rec := httptest.NewRecorder()
	h.CreateStudent(rec, req)

	if rec.Code != http.StatusCreated {
		t.Fatalf("status %d, body %s", rec.Code, rec.Body.String())
	}
	if len(store.created) != 1 {
		t.Fatalf("expected one created account, got %d", len(store.created))
	}
	created := store.created[0]
	if created.Role != policy.RoleStudent {
		t.Fatalf("created role %q", created.Role)
	}
	if created.DealerID == nil || *created.DealerID != "dealer-a" {
		t.Fatalf("student not scoped to creating dealer: %v", created.DealerID)
	}
	if created.Password == "secret" {
		t.Fatal("password stored in plaintext")
	}
}

func TestStatsDistribution(t *testing.T) {
	h, store, subs := newTestHandler()
	addStudent(store, "stu-1", "dealer-a")
	addStudent(store, "stu-2", "dealer-a")
	addStudent(store, "stu-3", "dealer-a")
	addStudent(store, "other", "dealer-b")
	subs.byAccount["stu-1"] = &submission.TestSubmission{AccountID: "stu-1", PersonalityType: 3}
	subs.byAccount["stu-2"] = &submission.TestSubmission{AccountID: "stu-2", PersonalityType: 3}
	subs.byAccount["other"] = &submission.TestSubmission{AccountID: "other", PersonalityType: 7}

	req := asDealer(httptest.NewRequest(http.MethodGet, "/api/dealer/stats", nil), "dealer-a")
	rec := httptest.NewRecorder()
	h.Stats(rec, req)

	var stats struct {
		TotalStudents    int64 `json:"totalStudents"`
		CompletedTests   int64 `json:"completedTests"`
		PersonalityTypes []struct {
			Type  int `json:"type"`
			Count int `json:"count"`
		} `json:"personalityTypes"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &stats); err != nil {
		t.Fatalf("decode stats: %v", err)
	}
	if stats.TotalStudents != 3 || stats.CompletedTests != 2 {
		t.Fatalf("unexpected totals: %+v", stats)
	}
	if len(stats.PersonalityTypes) != 1 || stats.PersonalityTypes[0].Type != 3 || stats.PersonalityTypes[0].Count != 2 {
		t.Fatalf("unexpected distribution: %+v", stats.PersonalityTypes)
	}
}
