// Code scaffolded by goctl. Safe to edit.
// goctl 1.9.2

package activities

import (
	"net/http"

	"mergington-hub/app/activities/api/internal/logic/activities"
	"mergington-hub/app/activities/api/internal/svc"
	"mergington-hub/common/response"
)

// List all activities
func ListActivitiesHandler(svcCtx *svc.ServiceContext) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		l := activities.NewListActivitiesLogic(r.Context(), svcCtx)
		resp, err := l.ListActivities()
		if err != nil {
			response.Fail(w, err)
			return
		}
		response.OkJson(w, resp)
	}
}
