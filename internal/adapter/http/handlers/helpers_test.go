package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	request "interlab/internal/adapter/http/dto/request"
	"interlab/internal/adapter/http/middleware"
	"interlab/internal/domain/entities"
	"interlab/pkg"

	"github.com/gin-gonic/gin"
)

var (
	colaborador = entities.Principal{Registration: "1001", Name: "Ana Souza", Role: entities.RoleColaborador}
	comite      = entities.Principal{Registration: "3003", Name: "Carla Dias", Role: entities.RoleComite, IsManager: true}
	admin       = entities.Principal{Registration: "9009", Name: "Admin", Role: entities.RoleAdmin}
)

func init() {
	if err := request.RegisterBindings(); err != nil {
		panic(err)
	}
}

// newRouter returns a router that authenticates every request as p.
func newRouter(p entities.Principal) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(func(c *gin.Context) {
		middleware.SetPrincipal(c, p)
		c.Next()
	})
	return r
}

func doJSON(r *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func errorCode(t *testing.T, w *httptest.ResponseRecorder) string {
	t.Helper()
	var body pkg.HTTPError
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode error body: %v (%s)", err, w.Body.String())
	}
	return body.Code
}
