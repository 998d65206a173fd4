package controllers_test

import (
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func createProjectViaAPI(t *testing.T, router *gin.Engine, token string, body gin.H) map[string]interface{} {
	t.Helper()
	recorder := doRequest(t, router, http.MethodPost, "/projects", token, body)
	require.Equal(t, http.StatusCreated, recorder.Code, recorder.Body.String())

	var created map[string]interface{}
	decodeBody(t, recorder, &created)
	return created
}

func TestCreateProject(t *testing.T) {
	router, jwtService := newTestRouter(t)
	token := issueToken(t, jwtService)

	created := createProjectViaAPI(t, router, token, gin.H{
		"name":        "Compiler",
		"head":        "Grace Hopper",
		"description": "A-0 system",
	})

	assert.NotEmpty(t, created["id"])
	assert.Equal(t, "Compiler", created["name"])
	assert.Equal(t, "Grace Hopper", created["head"])
	assert.Equal(t, []interface{}{}, created["student_ids"])
}

func TestCreateProjectRequiresToken(t *testing.T) {
	router, _ := newTestRouter(t)

	recorder := doRequest(t, router, http.MethodPost, "/projects", "", gin.H{
		"name": "Compiler",
		"head": "Grace Hopper",
	})
	assert.Equal(t, http.StatusUnauthorized, recorder.Code)
}

func TestCreateProjectValidation(t *testing.T) {
	router, jwtService := newTestRouter(t)
	token := issueToken(t, jwtService)

	// Description is optional, name and head are not
	recorder := doRequest(t, router, http.MethodPost, "/projects", token, gin.H{"name": "Compiler"})
	assert.Equal(t, http.StatusUnprocessableEntity, recorder.Code)

	recorder = doRequest(t, router, http.MethodPost, "/projects", token, gin.H{"head": "Grace Hopper"})
	assert.Equal(t, http.StatusUnprocessableEntity, recorder.Code)

	created := createProjectViaAPI(t, router, token, gin.H{"name": "Compiler", "head": "Grace Hopper"})
	assert.Equal(t, "", created["description"])
}

func TestGetProjectByID(t *testing.T) {
	router, jwtService := newTestRouter(t)
	token := issueToken(t, jwtService)
	created := createProjectViaAPI(t, router, token, gin.H{"name": "Compiler", "head": "Grace Hopper"})

	recorder := doRequest(t, router, http.MethodGet, "/projects/"+created["id"].(string), "", nil)
	require.Equal(t, http.StatusOK, recorder.Code)

	var fetched map[string]interface{}
	decodeBody(t, recorder, &fetched)
	assert.Equal(t, created, fetched)

	recorder = doRequest(t, router, http.MethodGet, "/projects/65f000000000000000000000", "", nil)
	assert.Equal(t, http.StatusNotFound, recorder.Code)

	recorder = doRequest(t, router, http.MethodGet, "/projects/not-hex", "", nil)
	assert.Equal(t, http.StatusBadRequest, recorder.Code)
}

func TestListProjects(t *testing.T) {
	router, jwtService := newTestRouter(t)
	token := issueToken(t, jwtService)

	recorder := doRequest(t, router, http.MethodGet, "/projects", "", nil)
	require.Equal(t, http.StatusOK, recorder.Code)
	assert.JSONEq(t, "[]", recorder.Body.String())

	compiler := createProjectViaAPI(t, router, token, gin.H{"name": "Compiler", "head": "Grace Hopper"})
	createProjectViaAPI(t, router, token, gin.H{"name": "Bombe", "head": "Alan Turing"})

	var page []map[string]interface{}
	recorder = doRequest(t, router, http.MethodGet, "/projects?name=comp", "", nil)
	require.Equal(t, http.StatusOK, recorder.Code)
	decodeBody(t, recorder, &page)
	require.Len(t, page, 1)
	assert.Equal(t, "Compiler", page[0]["name"])

	recorder = doRequest(t, router, http.MethodGet, "/projects?p_id="+compiler["id"].(string), "", nil)
	require.Equal(t, http.StatusOK, recorder.Code)
	decodeBody(t, recorder, &page)
	require.Len(t, page, 1)
	assert.Equal(t, compiler["id"], page[0]["id"])
}

func TestUpdateProjectViaAPI(t *testing.T) {
	router, jwtService := newTestRouter(t)
	token := issueToken(t, jwtService)
	created := createProjectViaAPI(t, router, token, gin.H{
		"name": "Compiler", "head": "Grace Hopper", "description": "A-0 system",
	})
	id := created["id"].(string)

	recorder := doRequest(t, router, http.MethodPut, "/projects/"+id, "", gin.H{"description": "FLOW-MATIC"})
	assert.Equal(t, http.StatusUnauthorized, recorder.Code)

	recorder = doRequest(t, router, http.MethodPut, "/projects/"+id, token, gin.H{"description": "FLOW-MATIC"})
	require.Equal(t, http.StatusOK, recorder.Code)

	var updated map[string]interface{}
	decodeBody(t, recorder, &updated)
	assert.Equal(t, "FLOW-MATIC", updated["description"])
	assert.Equal(t, "Compiler", updated["name"])

	recorder = doRequest(t, router, http.MethodPut, "/projects/65f000000000000000000000", token, gin.H{"name": "Renamed"})
	assert.Equal(t, http.StatusNotFound, recorder.Code)
}

func TestDeleteProjectViaAPI(t *testing.T) {
	router, jwtService := newTestRouter(t)
	token := issueToken(t, jwtService)
	created := createProjectViaAPI(t, router, token, gin.H{"name": "Compiler", "head": "Grace Hopper"})
	id := created["id"].(string)

	recorder := doRequest(t, router, http.MethodDelete, "/projects/"+id, "", nil)
	assert.Equal(t, http.StatusUnauthorized, recorder.Code)

	recorder = doRequest(t, router, http.MethodDelete, "/projects/"+id, token, nil)
	require.Equal(t, http.StatusOK, recorder.Code)

	var response map[string]interface{}
	decodeBody(t, recorder, &response)
	assert.Equal(t, "Project deleted successfully", response["message"])

	recorder = doRequest(t, router, http.MethodDelete, "/projects/"+id, token, nil)
	assert.Equal(t, http.StatusNotFound, recorder.Code)
}
