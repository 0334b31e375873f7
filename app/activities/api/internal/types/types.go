// Code scaffolded by goctl. Safe to edit.
// goctl 1.9.2

package types

// ActivityInfo mirrors one activity in the list response.
type ActivityInfo struct {
	Description     string   `json:"description"`
	Schedule        string   `json:"schedule"`
	MaxParticipants int      `json:"max_participants"`
	Participants    []string `json:"participants"`
}

// ListActivitiesResponse maps activity name to its details.
type ListActivitiesResponse map[string]ActivityInfo

// SignupRequest enrolls a student (by email) in the named activity. Email
// is optional at the parsing layer: its absence is a 422 detected by the
// handler, its emptiness a 400 detected by the registry.
type SignupRequest struct {
	Name  string `path:"name"`
	Email string `form:"email,optional"`
}

// UnregisterRequest removes a student from the named activity.
type UnregisterRequest struct {
	Name  string `path:"name"`
	Email string `form:"email,optional"`
}

// MessageResponse carries a confirmation message.
type MessageResponse struct {
	Message string `json:"message"`
}
