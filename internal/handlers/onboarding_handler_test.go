package handlers

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stylohub/stylohub-api/internal/config"
	"github.com/stylohub/stylohub-api/internal/httperr"
	ucOnboarding "github.com/stylohub/stylohub-api/internal/usecase/onboarding"
)

func testConfig() *config.Config {
	return &config.Config{JWTSecret: "test-secret"}
}

func newOnboardingRouter(repo *stubProfileRepo) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.HandleMethodNotAllowed = true
	r.NoMethod(func(c *gin.Context) {
		httperr.MethodNotAllowed(c, "method_not_allowed", "Método não permitido para esta rota.")
	})

	h := NewOnboardingHandler(ucOnboarding.NewSubmit(repo, nil))
	r.POST("/api/onboarding", fakeAuth("user_abc"), h.Submit)
	return r
}

func postJSON(r *gin.Engine, path, body string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)
	return w
}

func TestOnboardingHappyPath(t *testing.T) {
	repo := &stubProfileRepo{}
	r := newOnboardingRouter(repo)

	w := postJSON(r, "/api/onboarding", `{
		"avgPrice": 45,
		"clientsPerDay": 8,
		"daysPerWeek": 6,
		"firstName": "Lucas",
		"email": "lucas@exemplo.com.br"
	}`)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"success":true`)

	require.Len(t, repo.upserts, 1)
	row := repo.upserts[0]
	assert.Equal(t, "user_abc", row.ClerkUserID)
	assert.InDelta(t, 45.0, row.AvgPrice, 0.001)
	assert.Equal(t, 8, row.ClientsPerDay)
	assert.Equal(t, 6, row.DaysPerWeek)
	require.NotNil(t, row.FirstName)
	assert.Equal(t, "Lucas", *row.FirstName)
}

func TestOnboardingRejectsStringNumber(t *testing.T) {
	repo := &stubProfileRepo{}
	r := newOnboardingRouter(repo)

	w := postJSON(r, "/api/onboarding", `{
		"avgPrice": "forty",
		"clientsPerDay": 8,
		"daysPerWeek": 6
	}`)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Empty(t, repo.upserts, "payload inválido não escreve linha")
}

func TestOnboardingRejectsMissingField(t *testing.T) {
	repo := &stubProfileRepo{}
	r := newOnboardingRouter(repo)

	w := postJSON(r, "/api/onboarding", `{
		"avgPrice": 45,
		"daysPerWeek": 6
	}`)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Empty(t, repo.upserts)
}

func TestOnboardingLastWriteWins(t *testing.T) {
	repo := &stubProfileRepo{}
	r := newOnboardingRouter(repo)

	w1 := postJSON(r, "/api/onboarding", `{"avgPrice": 40, "clientsPerDay": 8, "daysPerWeek": 6}`)
	require.Equal(t, http.StatusOK, w1.Code)

	w2 := postJSON(r, "/api/onboarding", `{"avgPrice": 55, "clientsPerDay": 10, "daysPerWeek": 5}`)
	require.Equal(t, http.StatusOK, w2.Code)

	// Mesma identidade, uma linha lógica: o estado final reflete a
	// segunda chamada.
	require.NotNil(t, repo.row)
	assert.InDelta(t, 55.0, repo.row.AvgPrice, 0.001)
	assert.Equal(t, 10, repo.row.ClientsPerDay)
}

func TestOnboardingWrongVerbIs405(t *testing.T) {
	r := newOnboardingRouter(&stubProfileRepo{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/onboarding", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusMethodNotAllowed, w.Code)
	assert.Contains(t, w.Body.String(), "method_not_allowed")
}
