package gateway_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"meetapp/internal/gateway"
	"meetapp/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newClient(t *testing.T, handler http.Handler) (*gateway.Client, *httptest.Server) {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	client, err := gateway.New(gateway.Config{BaseURL: server.URL})
	require.NoError(t, err)
	return client, server
}

func TestNew_ValidatesBaseURL(t *testing.T) {
	tests := []struct {
		name    string
		baseURL string
		wantErr bool
	}{
		{name: "empty", baseURL: "", wantErr: true},
		{name: "no_scheme", baseURL: "localhost:8080", wantErr: true},
		{name: "bad_scheme", baseURL: "ftp://host", wantErr: true},
		{name: "http", baseURL: "http://localhost:8080", wantErr: false},
		{name: "trailing_slash_trimmed", baseURL: "http://localhost:8080/", wantErr: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := gateway.New(gateway.Config{BaseURL: tt.baseURL})
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestUpdatePerson_WireRemappingRoundTrip(t *testing.T) {
	department := "IT-отдел"
	photo := "http://img/1.png"

	client, _ := newClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPut, r.Method)
		require.Equal(t, "/api/person/42", r.URL.Path)

		var payload map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&payload))
		assert.Equal(t, "Alice", payload["name"])
		assert.Equal(t, department, payload["departmentName"])
		assert.Equal(t, photo, payload["photoUrl"])
		assert.NotContains(t, payload, "department")
		assert.NotContains(t, payload, "photo")

		json.NewEncoder(w).Encode(model.Person{
			ID:         42,
			Name:       payload["name"].(string),
			Login:      "alice",
			Photo:      &photo,
			Department: &department,
		})
	}))

	updated, err := client.UpdatePerson(t.Context(), 42, model.PersonShort{
		ID:         42,
		Name:       "Alice",
		Login:      "alice",
		Photo:      &photo,
		Department: &department,
	})
	require.NoError(t, err)
	assert.Equal(t, "Alice", updated.Name)
	require.NotNil(t, updated.Department)
	assert.Equal(t, department, *updated.Department)
}

func TestCreateMeetup_PlannerTravelsAsWireID(t *testing.T) {
	client, _ := newClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/meetup", r.URL.Path)

		var payload map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&payload))
		assert.Equal(t, float64(9), payload["planner_id"])
		assert.NotContains(t, payload, "plannerId")

		json.NewEncoder(w).Encode(model.Meetup{
			ID:      1,
			Date:    payload["date"].(string),
			Time:    payload["time"].(string),
			Planner: model.PersonShort{ID: 9, Name: "Bob", Login: "bob"},
		})
	}))

	meetup, err := client.CreateMeetup(t.Context(), model.MeetupCreation{
		Date:      "2026-09-01",
		Time:      "15:00",
		PlannerID: 9,
	})
	require.NoError(t, err)
	assert.Equal(t, int64(1), meetup.ID)
	assert.Equal(t, int64(9), meetup.Planner.ID)
}

func TestCreateInvite_WireIDs(t *testing.T) {
	client, _ := newClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/invites", r.URL.Path)

		var payload map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&payload))
		assert.Equal(t, float64(3), payload["meetup_id"])
		assert.Equal(t, float64(5), payload["participant_id"])
		assert.Equal(t, false, payload["agree"])

		json.NewEncoder(w).Encode(model.Invite{ID: 11})
	}))

	agree := false
	invite, err := client.CreateInvite(t.Context(), model.InviteCreation{
		Agree:         &agree,
		MeetupID:      3,
		ParticipantID: 5,
	})
	require.NoError(t, err)
	assert.Equal(t, int64(11), invite.ID)
}

func TestListPersonsPaginated_ParsesEnvelope(t *testing.T) {
	client, _ := newClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/person/paginated", r.URL.Path)
		assert.Equal(t, "2", r.URL.Query().Get("page"))
		assert.Equal(t, "10", r.URL.Query().Get("size"))

		json.NewEncoder(w).Encode(model.PersonPage{
			Content: []model.Person{{ID: 1, Name: "Bob", Login: "bob"}},
			Page:    model.PageMetadata{Size: 10, Number: 2, TotalElements: 21, TotalPages: 3},
		})
	}))

	page, err := client.ListPersonsPaginated(t.Context(), 2, 10)
	require.NoError(t, err)
	require.Len(t, page.Content, 1)
	assert.Equal(t, int64(21), page.Page.TotalElements)
	assert.Equal(t, int64(3), page.Page.TotalPages)
}

func TestNonSuccessStatusBecomesAPIError(t *testing.T) {
	client, _ := newClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "person not found", http.StatusNotFound)
	}))

	_, err := client.GetPerson(t.Context(), 999)
	require.Error(t, err)

	var apiErr *gateway.APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusNotFound, apiErr.Status)
	assert.Equal(t, "person not found", apiErr.Message)
}

func TestDecodeFailurePropagates(t *testing.T) {
	client, _ := newClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("not json"))
	}))

	_, err := client.GetPerson(t.Context(), 1)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "decode response")
}

func TestLookupByLogin_ReturnsRawText(t *testing.T) {
	client, _ := newClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/person/login/bob", r.URL.Path)
		w.Write([]byte("bob\n"))
	}))

	got, err := client.LookupByLogin(t.Context(), "bob")
	require.NoError(t, err)
	assert.Equal(t, "bob", got)
}

func TestInviteAgreeTriState(t *testing.T) {
	client, _ := newClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`[{"id":1,"agree":null,"meetup":{"id":2,"date":"2026-09-01","time":"15:00:00","planner":{"id":3,"name":"Bob","login":"bob"}},"participant":{"id":4,"name":"Eve","login":"eve"}},
			{"id":2,"agree":true,"meetup":{"id":2,"date":"2026-09-01","time":"15:00:00","planner":{"id":3,"name":"Bob","login":"bob"}},"participant":{"id":5,"name":"Kim","login":"kim"}}]`))
	}))

	invites, err := client.ListInvites(t.Context())
	require.NoError(t, err)
	require.Len(t, invites, 2)
	assert.Nil(t, invites[0].Agree)
	require.NotNil(t, invites[1].Agree)
	assert.True(t, *invites[1].Agree)
}
