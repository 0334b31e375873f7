// Code scaffolded by goctl. Safe to edit.
// goctl 1.9.2

package activities

import (
	"net/http"

	"mergington-hub/app/activities/api/internal/logic/activities"
	"mergington-hub/app/activities/api/internal/svc"
	"mergington-hub/app/activities/api/internal/types"
	"mergington-hub/common/response"

	"github.com/zeromicro/go-zero/rest/httpx"
)

// Unregister a student from an activity
func UnregisterActivityHandler(svcCtx *svc.ServiceContext) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if !r.URL.Query().Has("email") {
			response.FailValidation(w, "query parameter email is required")
			return
		}

		var req types.UnregisterRequest
		if err := httpx.Parse(r, &req); err != nil {
			response.FailValidation(w, err.Error())
			return
		}

		l := activities.NewUnregisterActivityLogic(r.Context(), svcCtx)
		resp, err := l.UnregisterActivity(&req)
		if err != nil {
			response.Fail(w, err)
			return
		}
		response.OkJson(w, resp)
	}
}
