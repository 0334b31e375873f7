package handler

import (
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/zeromicro/go-zero/rest/pathvar"

	"mergington-hub/app/activities/api/internal/config"
	"mergington-hub/app/activities/api/internal/svc"
)

func TestHomeRedirectsToStaticIndex(t *testing.T) {
	ctx := &svc.ServiceContext{}

	r := httptest.NewRequest(http.MethodGet, "/", nil)
	w := httptest.NewRecorder()
	HomeHandler(ctx)(w, r)

	assert.Equal(t, http.StatusTemporaryRedirect, w.Code)
	assert.Equal(t, "/static/index.html", w.Header().Get("Location"))
}

func TestStaticHandlerServesFiles(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "index.html"), []byte("<html>hi</html>"), 0o644))

	var c config.Config
	c.Static.Dir = dir
	ctx := &svc.ServiceContext{Config: c}

	r := httptest.NewRequest(http.MethodGet, "/static/index.html", nil)
	r = pathvar.WithVars(r, map[string]string{"file": "index.html"})
	w := httptest.NewRecorder()
	StaticHandler(ctx)(w, r)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "<html>hi</html>", w.Body.String())
}

func TestStaticHandlerRejectsMissingFile(t *testing.T) {
	var c config.Config
	c.Static.Dir = t.TempDir()
	ctx := &svc.ServiceContext{Config: c}

	r := httptest.NewRequest(http.MethodGet, "/static/nope.js", nil)
	r = pathvar.WithVars(r, map[string]string{"file": "nope.js"})
	w := httptest.NewRecorder()
	StaticHandler(ctx)(w, r)

	assert.Equal(t, http.StatusNotFound, w.Code)
}
