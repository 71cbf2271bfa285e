package handlers

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/omarabdhkem/CarXpert/internal/models"
)

func TestUpdateUserProfile(t *testing.T) {
	server, _ := newTestServer(t)
	client := newClient(t)
	register(t, client, server.URL, "alice")

	fullName := "Alice Example"
	phone := "555-000-1111"
	resp := do(t, client, http.MethodPut, server.URL+"/api/user", models.UpdateUser{
		FullName: &fullName,
		Phone:    &phone,
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var user models.User
	decodeInto(t, resp, &user)
	assert.Equal(t, "Alice Example", user.FullName)
	assert.Equal(t, "555-000-1111", user.Phone)
	assert.Equal(t, "alice", user.Username)

	resp = do(t, &http.Client{}, http.MethodPut, server.URL+"/api/user", models.UpdateUser{FullName: &fullName})
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	resp.Body.Close()
}
