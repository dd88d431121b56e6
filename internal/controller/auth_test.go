package controller_test

import (
	"encoding/base64"
	"encoding/json"
	"net/http"
	"sync/atomic"
	"testing"

	"meetapp/internal/controller"
	"meetapp/internal/model"
	"meetapp/internal/validator"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLogin_EndToEnd(t *testing.T) {
	department := "IT-отдел"
	wantAuth := "Basic " + base64.StdEncoding.EncodeToString([]byte("bob:secret123"))

	facade, store := newStack(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/person/login", r.URL.Path)
		require.Equal(t, wantAuth, r.Header.Get("Authorization"))
		json.NewEncoder(w).Encode(model.Person{ID: 42, Name: "Bob", Login: "bob", Department: &department})
	}))

	auth := controller.NewAuth(discardLogger(), facade, store, validator.New())
	auth.Login(t.Context(), "bob", "secret123")

	state := auth.State().Get()
	require.Equal(t, controller.PhaseSuccess, state.Phase)
	assert.Equal(t, int64(42), state.Data.UserID)
	assert.Equal(t, "Bob", state.Data.UserName)

	assert.Equal(t, int64(42), store.UserID())
	assert.Equal(t, "Bob", store.UserName())
	assert.Equal(t, department, store.UserDepartment())
	assert.Equal(t, int64(42), facade.CurrentUserID())
	assert.True(t, auth.IsAuthenticated())
}

func TestLogin_FailureClearsCredentials(t *testing.T) {
	facade, store := newStack(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "bad credentials", http.StatusUnauthorized)
	}))

	auth := controller.NewAuth(discardLogger(), facade, store, validator.New())
	auth.Login(t.Context(), "bob", "wrong")

	state := auth.State().Get()
	require.Equal(t, controller.PhaseError, state.Phase)
	assert.NotEmpty(t, state.Message)
	assert.False(t, auth.IsAuthenticated())
	assert.Equal(t, "", store.Login())
}

func TestLogout(t *testing.T) {
	facade, store := newStack(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(model.Person{ID: 42, Name: "Bob", Login: "bob"})
	}))

	auth := controller.NewAuth(discardLogger(), facade, store, validator.New())
	auth.Login(t.Context(), "bob", "secret123")
	require.True(t, auth.IsAuthenticated())

	auth.Logout()

	assert.False(t, auth.IsAuthenticated())
	assert.Equal(t, int64(0), facade.CurrentUserID())
	assert.Equal(t, controller.PhaseIdle, auth.State().Get().Phase)
}

func TestRegister_LocalValidationIssuesNoNetworkCall(t *testing.T) {
	var calls atomic.Int64
	facade, store := newStack(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
	}))

	auth := controller.NewAuth(discardLogger(), facade, store, validator.New())

	tests := []struct {
		name         string
		registration model.PersonRegistration
	}{
		{
			name:         "login_too_short",
			registration: model.PersonRegistration{Name: "Bob", Login: "ab", Password: "secret123", Department: "IT"},
		},
		{
			name:         "login_bad_chars",
			registration: model.PersonRegistration{Name: "Bob", Login: "bob the builder", Password: "secret123", Department: "IT"},
		},
		{
			name:         "password_too_short",
			registration: model.PersonRegistration{Name: "Bob", Login: "bob", Password: "12345", Department: "IT"},
		},
		{
			name:         "missing_department",
			registration: model.PersonRegistration{Name: "Bob", Login: "bob", Password: "secret123"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			auth.Register(t.Context(), tt.registration)
			assert.Equal(t, controller.PhaseError, auth.RegisterState().Get().Phase)
			assert.Equal(t, int64(0), calls.Load())
		})
	}
}

func TestRegister_Success(t *testing.T) {
	facade, store := newStack(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/person/register", r.URL.Path)

		var payload map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&payload))
		require.Equal(t, "IT-отдел", payload["departmentName"])

		json.NewEncoder(w).Encode(model.PersonShort{ID: 7, Name: "Bob", Login: "bob"})
	}))

	auth := controller.NewAuth(discardLogger(), facade, store, validator.New())
	auth.Register(t.Context(), model.PersonRegistration{
		Name:       "Bob",
		Login:      "bob",
		Password:   "secret123",
		Department: "IT-отдел",
	})

	state := auth.RegisterState().Get()
	require.Equal(t, controller.PhaseSuccess, state.Phase)
	assert.Equal(t, int64(7), state.Data.ID)
}

func TestRestore(t *testing.T) {
	facade, store := newStack(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	require.NoError(t, store.SaveUserID(13))

	auth := controller.NewAuth(discardLogger(), facade, store, validator.New())
	auth.Restore()

	assert.Equal(t, int64(13), facade.CurrentUserID())
}
