// ============================================================================
// Root redirect and static assets
// ============================================================================

package handler

import (
	"net/http"
	"path"
	"path/filepath"

	"mergington-hub/app/activities/api/internal/svc"

	"github.com/zeromicro/go-zero/rest/pathvar"
)

const indexPage = "/static/index.html"

// HomeHandler redirects the root path to the static index page.
// GET /
func HomeHandler(svcCtx *svc.ServiceContext) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, indexPage, http.StatusTemporaryRedirect)
	}
}

// StaticHandler serves the bundled frontend assets.
// GET /static/:file
func StaticHandler(svcCtx *svc.ServiceContext) http.HandlerFunc {
	dir := svcCtx.Config.Static.Dir
	return func(w http.ResponseWriter, r *http.Request) {
		file := pathvar.Vars(r)["file"]
		if file == "" {
			http.NotFound(w, r)
			return
		}
		// path.Base strips any traversal the route value could carry.
		http.ServeFile(w, r, filepath.Join(dir, path.Base(file)))
	}
}
