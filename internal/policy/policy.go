package policy

import "errors"

// Role is the access level carried by an account and its tokens.
type Role string

const (
	RoleAdmin   Role = "admin"
	RoleDealer  Role = "dealer"
	RoleStudent Role = "student"
)

// ValidRole reports whether r is one of the known roles.
func ValidRole(r Role) bool {
	switch r {
	case RoleAdmin, RoleDealer, RoleStudent:
		return true
	}
	return false
}

// Actor is the authenticated identity making a request.
type Actor struct {
	ID   string
	Role Role
}

// Operation names every action the API exposes.
type Operation string

const (
	OpViewAdminStats Operation = "admin.stats"
	OpListDealers    Operation = "admin.dealers.list"
	OpCreateDealer   Operation = "admin.dealers.create"
	OpUpdateDealer   Operation = "admin.dealers.update"
	OpDeleteDealer   Operation = "admin.dealers.delete"

	OpViewDealerStats Operation = "dealer.stats"
	OpListStudents    Operation = "dealer.students.list"
	OpCreateStudent   Operation = "dealer.students.create"
	OpUpdateStudent   Operation = "dealer.students.update"
	OpDeleteStudent   Operation = "dealer.students.delete"

	OpViewOwnInfo    Operation = "student.info"
	OpViewOwnResults Operation = "student.results"
	OpSubmitTest     Operation = "test.submit"

	OpViewQuestions Operation = "test.questions"
)

// Target identifies the record an operation acts on.
type Target struct {
	AccountID      string
	OwningDealerID string
}

var (
	// ErrForbidden means the actor's role may never perform the operation.
	ErrForbidden = errors.New("operation not permitted for role")
	// ErrNotFound means the target is outside the actor's scope. It is
	// deliberately indistinguishable from a missing record so that a
	// dealer cannot probe for students owned by someone else.
	ErrNotFound = errors.New("record not in actor scope")
)

type rule struct {
	roles []Role // empty: any authenticated actor
	scope func(Actor, Target) bool
}

func ownedByActor(a Actor, t Target) bool { return t.OwningDealerID == a.ID }
func ownRecord(a Actor, t Target) bool    { return t.AccountID == a.ID }

var table = map[Operation]rule{
	OpViewAdminStats: {roles: []Role{RoleAdmin}},
	OpListDealers:    {roles: []Role{RoleAdmin}},
	OpCreateDealer:   {roles: []Role{RoleAdmin}},
	OpUpdateDealer:   {roles: []Role{RoleAdmin}},
	OpDeleteDealer:   {roles: []Role{RoleAdmin}},

	OpViewDealerStats: {roles: []Role{RoleDealer}},
	OpListStudents:    {roles: []Role{RoleDealer}},
	OpCreateStudent:   {roles: []Role{RoleDealer}},
	OpUpdateStudent:   {roles: []Role{RoleDealer}, scope: ownedByActor},
	OpDeleteStudent:   {roles: []Role{RoleDealer}, scope: ownedByActor},

	OpViewOwnInfo:    {roles: []Role{RoleStudent}, scope: ownRecord},
	OpViewOwnResults: {roles: []Role{RoleStudent}, scope: ownRecord},
	OpSubmitTest:     {roles: []Role{RoleStudent}, scope: ownRecord},

	OpViewQuestions: {},
}

// CheckRole is the role half of the decision table, used by route
// middleware before a concrete target is known.
func CheckRole(r Role, op Operation) error {
	rl, ok := table[op]
	if !ok {
		return ErrForbidden
	}
	if len(rl.roles) == 0 {
		return nil
	}
	for _, allowed := range rl.roles {
		if r == allowed {
			return nil
		}
	}
	return ErrForbidden
}

// Authorize evaluates the full decision table entry for op: role first,
// then the scope predicate if the entry has one. A role mismatch is
// ErrForbidden; a scope miss is ErrNotFound.
func Authorize(a Actor, op Operation, t Target) error {
	if err := CheckRole(a.Role, op); err != nil {
		return err
	}
	rl := table[op]
	if rl.scope != nil && !rl.scope(a, t) {
		return ErrNotFound
	}
	return nil
}
