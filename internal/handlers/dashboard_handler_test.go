package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stylohub/stylohub-api/internal/store"
)

func newDashboardRouter(st *store.Store) *gin.Engine {
	gin.SetMode(gin.TestMode)

	h := NewDashboardHandler(st)

	r := gin.New()
	r.GET("/api/app/appointments", fakeAuth("user_abc"), h.ListAppointments)
	r.GET("/api/app/clients", fakeAuth("user_abc"), h.ListClients)
	return r
}

func TestListAppointmentsShape(t *testing.T) {
	st := store.New()
	r := newDashboardRouter(st)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/app/appointments", nil)
	r.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var body struct {
		Data  []json.RawMessage `json:"data"`
		Total int               `json:"total"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))

	want := len(st.Snapshot().Appointments)
	assert.Equal(t, want, body.Total)
	assert.Len(t, body.Data, want)
}

func TestListClientsShape(t *testing.T) {
	st := store.New()
	r := newDashboardRouter(st)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/app/clients", nil)
	r.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var body struct {
		Data  []json.RawMessage `json:"data"`
		Total int               `json:"total"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))

	assert.Equal(t, len(st.Snapshot().Clients), body.Total)
}
