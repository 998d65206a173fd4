package controllers_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"

	"github.com/etudeproject/etude/internal/app/controllers"
	"github.com/etudeproject/etude/internal/app/routes"
	"github.com/etudeproject/etude/internal/app/services"
	"github.com/etudeproject/etude/internal/middleware"
	"github.com/etudeproject/etude/internal/pkg/auth"
	"github.com/etudeproject/etude/internal/testutil"
)

// newTestRouter wires the full HTTP stack over in-memory repositories.
func newTestRouter(t *testing.T) (*gin.Engine, *auth.JWTService) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	jwtService := auth.NewJWTService(auth.JWTConfig{
		SecretKey:      "test-secret",
		AccessTokenExp: time.Hour,
		TokenIssuer:    "etude.test",
	})

	studentService := services.NewStudentService(testutil.NewMemStudentRepo())
	projectService := services.NewProjectService(testutil.NewMemProjectRepo())
	authService := services.NewAuthService(testutil.NewMemUserRepo(), jwtService, zerolog.Nop())

	router := gin.New()
	routes.SetupRouter(
		router,
		controllers.NewStudentController(studentService),
		controllers.NewProjectController(projectService),
		controllers.NewAuthController(authService),
		controllers.NewUserController(authService),
		middleware.NewAuthMiddleware(jwtService),
	)
	return router, jwtService
}

func issueToken(t *testing.T, jwtService *auth.JWTService) string {
	t.Helper()
	token, _, err := jwtService.GenerateToken("tester@x.com")
	require.NoError(t, err)
	return token
}

// doRequest performs a request against the test router. A non-empty
// token is sent as a bearer Authorization header.
func doRequest(t *testing.T, router *gin.Engine, method, path, token string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(payload)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, req)
	return recorder
}

func decodeBody(t *testing.T, recorder *httptest.ResponseRecorder, out interface{}) {
	t.Helper()
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), out))
}

func createStudentViaAPI(t *testing.T, router *gin.Engine, token string, body gin.H) map[string]interface{} {
	t.Helper()
	recorder := doRequest(t, router, http.MethodPost, "/students", token, body)
	require.Equal(t, http.StatusCreated, recorder.Code, recorder.Body.String())

	var created map[string]interface{}
	decodeBody(t, recorder, &created)
	return created
}
