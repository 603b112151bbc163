package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/stylohub/stylohub-api/internal/cache"
	"github.com/stylohub/stylohub-api/internal/domain/profile"
	"github.com/stylohub/stylohub-api/internal/httperr"
	"github.com/stylohub/stylohub-api/internal/httpresp"
	"github.com/stylohub/stylohub-api/internal/middleware"
)

type MeHandler struct {
	repo  profile.Repository
	cache *cache.ProfileCache
}

func NewMeHandler(repo profile.Repository, cache *cache.ProfileCache) *MeHandler {
	return &MeHandler{repo: repo, cache: cache}
}

// GetMe resolve a identidade do token e devolve no máximo uma linha de
// perfil — ou null, que é resposta válida ("sem perfil ainda"), não
// erro.
func (h *MeHandler) GetMe(c *gin.Context) {
	clerkUserID := c.MustGet(middleware.ContextClerkUserID).(string)

	if row, ok := h.cache.Get(c.Request.Context(), clerkUserID); ok {
		httpresp.OK(c, gin.H{"barber": row})
		return
	}

	row, err := h.repo.GetByClerkUserID(c.Request.Context(), clerkUserID)
	if err != nil {
		httperr.Internal(c, "profile_lookup_failed", "Erro ao buscar perfil.")
		return
	}

	h.cache.Set(c.Request.Context(), clerkUserID, row)

	// row nil serializa como {"barber": null}: "sem perfil ainda".
	httpresp.OK(c, gin.H{"barber": row})
}
