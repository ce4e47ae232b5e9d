package policy

import (
	"errors"
	"testing"
)

func TestCheckRole(t *testing.T) {
	cases := []struct {
		role Role
		op   Operation
		want error
	}{
		{RoleAdmin, OpListDealers, nil},
		{RoleDealer, OpListDealers, ErrForbidden},
		{RoleStudent, OpListDealers, ErrForbidden},
		{RoleDealer, OpListStudents, nil},
		{RoleAdmin, OpListStudents, ErrForbidden},
		{RoleStudent, OpSubmitTest, nil},
		{RoleDealer, OpSubmitTest, ErrForbidden},
		{RoleAdmin, OpViewQuestions, nil},
		{RoleDealer, OpViewQuestions, nil},
		{RoleStudent, OpViewQuestions, nil},
		{RoleAdmin, Operation("unknown"), ErrForbidden},
	}
	for _, c := range cases {
		if got := CheckRole(c.role, c.op); !errors.Is(got, c.want) && got != c.want {
			t.Fatalf("CheckRole(%s, %s)=%v, want %v", c.role, c.op, got, c.want)
		}
	}
}

func TestAuthorizeScope(t *testing.T) {
	dealerA := Actor{ID: "dealer-a", Role: RoleDealer}
	studentX := Actor{ID: "student-x", Role: RoleStudent}

	ownStudent := Target{AccountID: "student-x", OwningDealerID: "dealer-a"}
	otherStudent := Target{AccountID: "student-y", OwningDealerID: "dealer-b"}
	orphanStudent := Target{AccountID: "student-z"}

	if err := Authorize(dealerA, OpUpdateStudent, ownStudent); err != nil {
		t.Fatalf("dealer on own student: %v", err)
	}
	// Another dealer's student must look exactly like a missing record,
	// never like a permission problem.
	if err := Authorize(dealerA, OpUpdateStudent, otherStudent); !errors.Is(err, ErrNotFound) {
		t.Fatalf("dealer on foreign student: got %v, want ErrNotFound", err)
	}
	if err := Authorize(dealerA, OpDeleteStudent, orphanStudent); !errors.Is(err, ErrNotFound) {
		t.Fatalf("dealer on detached student: got %v, want ErrNotFound", err)
	}

	if err := Authorize(studentX, OpViewOwnResults, Target{AccountID: "student-x"}); err != nil {
		t.Fatalf("student on own results: %v", err)
	}
	if err := Authorize(studentX, OpViewOwnResults, Target{AccountID: "student-y"}); !errors.Is(err, ErrNotFound) {
		t.Fatalf("student on foreign results: got %v, want ErrNotFound", err)
	}

	// Role mismatch is a plain forbidden, not the masked not-found.
	if err := Authorize(studentX, OpUpdateStudent, ownStudent); !errors.Is(err, ErrForbidden) {
		t.Fatalf("student on dealer op: got %v, want ErrForbidden", err)
	}
	if err := Authorize(Actor{ID: "adm", Role: RoleAdmin}, OpSubmitTest, Target{AccountID: "adm"}); !errors.Is(err, ErrForbidden) {
		t.Fatalf("admin submitting test: got %v, want ErrForbidden", err)
	}
}

func TestValidRole(t *testing.T) {
	for _, r := range []Role{RoleAdmin, RoleDealer, RoleStudent} {
		if !ValidRole(r) {
			t.Fatalf("ValidRole(%s)=false", r)
		}
	}
	if ValidRole(Role("superuser")) {
		t.Fatal("ValidRole accepted unknown role")
	}
}
