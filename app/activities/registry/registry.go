// Package registry owns the in-memory activity store. It is the sole owner
// of mutable state: the HTTP layer never touches activity data except
// through List, Signup and Unregister.
package registry

import (
	"fmt"
	"strings"
	"sync"

	"mergington-hub/common/errorx"
	"mergington-hub/common/validate"
)

// Activity is one extracurricular offering. Name is the map key in the
// Registry; MaxParticipants is fixed once the activity is created.
type Activity struct {
	Description     string
	Schedule        string
	MaxParticipants int
	Participants    []string
}

// Registry maps activity name to activity. Populated once at process start;
// mutated only through Signup/Unregister. Invariant: for every activity,
// len(Participants) <= MaxParticipants and Participants holds no duplicates.
type Registry struct {
	mu         sync.RWMutex
	activities map[string]*Activity
}

// New creates a registry from a seed set. The seed is deep-copied so the
// caller cannot alias internal state.
func New(seed map[string]Activity) *Registry {
	activities := make(map[string]*Activity, len(seed))
	for name, act := range seed {
		copied := act
		copied.Participants = append([]string(nil), act.Participants...)
		activities[name] = &copied
	}
	return &Registry{activities: activities}
}

// List returns a read-only snapshot of all activities keyed by name.
// Participant slices are copied, so a reader never observes a partially
// mutated sequence.
func (r *Registry) List() map[string]Activity {
	r.mu.RLock()
	defer r.mu.RUnlock()

	snapshot := make(map[string]Activity, len(r.activities))
	for name, act := range r.activities {
		copied := *act
		copied.Participants = append([]string(nil), act.Participants...)
		snapshot[name] = copied
	}
	return snapshot
}

// ParticipantCount returns the current enrollment of an activity, or 0 when
// the activity does not exist.
func (r *Registry) ParticipantCount(name string) int {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if act, ok := r.activities[name]; ok {
		return len(act.Participants)
	}
	return 0
}

// Signup enrolls email in the named activity. Preconditions are checked in
// order, first failure wins; the check and the append happen inside one
// critical section so the capacity invariant cannot be raced.
func (r *Registry) Signup(activityName, email string) (string, error) {
	// 1. Syntactic email checks.
	email = strings.TrimSpace(email)
	if email == "" {
		return "", errorx.ErrInvalidInput("Email cannot be empty")
	}
	if !validate.IsValidEmail(email) {
		return "", errorx.ErrInvalidInput("Invalid email format")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	// 2. Activity existence.
	act, ok := r.activities[activityName]
	if !ok {
		return "", errorx.ErrNotFound("Activity not found")
	}

	// 3. Duplicate signup before capacity: a student already enrolled in a
	// full activity is told about the duplicate, not the capacity.
	if containsEmail(act.Participants, email) {
		return "", errorx.ErrConflict("Student already signed up for this activity")
	}
	if len(act.Participants) >= act.MaxParticipants {
		return "", errorx.ErrConflict("Activity is full")
	}

	act.Participants = append(act.Participants, email)
	return fmt.Sprintf("Signed up %s for %s", email, activityName), nil
}

// Unregister removes email from the named activity. Same precondition order
// as Signup for the email and existence checks.
func (r *Registry) Unregister(activityName, email string) (string, error) {
	email = strings.TrimSpace(email)
	if email == "" {
		return "", errorx.ErrInvalidInput("Email cannot be empty")
	}
	if !validate.IsValidEmail(email) {
		return "", errorx.ErrInvalidInput("Invalid email format")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	act, ok := r.activities[activityName]
	if !ok {
		return "", errorx.ErrNotFound("Activity not found")
	}

	idx := indexOfEmail(act.Participants, email)
	if idx < 0 {
		return "", errorx.ErrConflict("Student is not signed up for this activity")
	}

	act.Participants = append(act.Participants[:idx], act.Participants[idx+1:]...)
	return fmt.Sprintf("Unregistered %s from %s", email, activityName), nil
}

func containsEmail(participants []string, email string) bool {
	return indexOfEmail(participants, email) >= 0
}

func indexOfEmail(participants []string, email string) int {
	for i, p := range participants {
		if p == email {
			return i
		}
	}
	return -1
}
