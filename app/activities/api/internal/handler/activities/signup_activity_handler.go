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

// Sign up a student for an activity
func SignupActivityHandler(svcCtx *svc.ServiceContext) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		// A missing email parameter is a request-shape error (422),
		// distinct from an empty email (400, decided by the registry).
		if !r.URL.Query().Has("email") {
			response.FailValidation(w, "query parameter email is required")
			return
		}

		var req types.SignupRequest
		if err := httpx.Parse(r, &req); err != nil {
			response.FailValidation(w, err.Error())
			return
		}

		l := activities.NewSignupActivityLogic(r.Context(), svcCtx)
		resp, err := l.SignupActivity(&req)
		if err != nil {
			response.Fail(w, err)
			return
		}
		response.OkJson(w, resp)
	}
}
