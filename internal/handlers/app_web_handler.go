package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/stylohub/stylohub-api/internal/config"
	"github.com/stylohub/stylohub-api/internal/gate"
	"github.com/stylohub/stylohub-api/internal/middleware"
)

// AppWebHandler serve as páginas de entrada do app. O conteúdo real é
// o bundle do front; aqui importa o gate nas rotas, não o HTML.
type AppWebHandler struct {
	guard *gate.Guard
	cfg   *config.Config
}

func NewAppWebHandler(guard *gate.Guard, cfg *config.Config) *AppWebHandler {
	return &AppWebHandler{guard: guard, cfg: cfg}
}

// ======================================================
// PAGES
// ======================================================

// Home decide a rota inicial: com sessão vai pro app, sem sessão pro
// login.
func (h *AppWebHandler) Home(c *gin.Context) {
	if middleware.SubjectFromRequest(c, h.cfg) != "" {
		c.Redirect(http.StatusFound, "/web/app/dashboard")
		return
	}
	c.Redirect(http.StatusFound, "/web/app/login")
}

func (h *AppWebHandler) LoginPage(c *gin.Context) {
	c.String(http.StatusOK, "StyloHub — login")
}

func (h *AppWebHandler) SignupPage(c *gin.Context) {
	c.String(http.StatusOK, "StyloHub — cadastro")
}

func (h *AppWebHandler) OnboardingPage(c *gin.Context) {
	c.String(http.StatusOK, "StyloHub — onboarding")
}

func (h *AppWebHandler) Dashboard(c *gin.Context) {
	c.String(http.StatusOK, "StyloHub — dashboard")
}

func (h *AppWebHandler) NotFound(c *gin.Context) {
	c.String(http.StatusNotFound, "Página não encontrada.")
}

// ======================================================
// GUARDS
// ======================================================

// Guard aplica autenticação e a decisão do gate como middleware. Sem
// sessão, a rota guardada redireciona pro login antes do gate rodar; o
// gate (fail-open) só decide entre onboarding e dashboard para quem já
// está autenticado.
func (h *AppWebHandler) Guard(purpose gate.Purpose) gin.HandlerFunc {
	return func(c *gin.Context) {
		sub := middleware.SubjectFromRequest(c, h.cfg)
		if sub == "" {
			c.Redirect(http.StatusFound, "/web/app/login")
			c.Abort()
			return
		}

		switch h.guard.Resolve(c.Request.Context(), purpose, sub) {
		case gate.RedirectToOnboarding:
			c.Redirect(http.StatusFound, "/web/app/onboarding")
			c.Abort()
		case gate.RedirectToDashboard:
			c.Redirect(http.StatusFound, "/web/app/dashboard")
			c.Abort()
		default:
			c.Next()
		}
	}
}
