package middleware

import (
	"net/http"
	"strings"

	"github.com/Malvezin/miglesMakeStore/internal/api/dto"
	"github.com/Malvezin/miglesMakeStore/internal/domain/model"
	"github.com/Malvezin/miglesMakeStore/internal/service"
	"github.com/gin-gonic/gin"
)

const IdentityKey = "identity"

// SessionMiddleware resolve o Bearer token em identidade quando presente.
// Não bloqueia nada sozinho; rotas protegidas usam RequireAuth/RequireAdmin.
func SessionMiddleware(userSvc *service.UserService) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		fields := strings.Fields(header)
		if len(fields) != 2 || !strings.EqualFold(fields[0], "bearer") {
			c.Next()
			return
		}

		identity, err := userSvc.ResolveSession(c.Request.Context(), fields[1])
		if err == nil && identity != nil {
			c.Set(IdentityKey, *identity)
		}
		c.Next()
	}
}

// RequireAuth exige sessão resolvida; sem identidade é 401 (login).
func RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		if _, ok := CurrentIdentity(c); !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, dto.ErrorResponse{Error: "login necessário"})
			return
		}
		c.Next()
	}
}

// RequireAdmin exige identidade E papel admin; a checagem vale no servidor
// em toda rota administrativa, o gate do cliente é só conveniência.
func RequireAdmin(userSvc *service.UserService) gin.HandlerFunc {
	return func(c *gin.Context) {
		identity, ok := CurrentIdentity(c)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, dto.ErrorResponse{Error: "login necessário"})
			return
		}

		isAdmin, err := userSvc.IsAdmin(c.Request.Context(), identity.UserID)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusInternalServerError, dto.ErrorResponse{Error: err.Error()})
			return
		}
		if !isAdmin {
			c.AbortWithStatusJSON(http.StatusForbidden, dto.ErrorResponse{Error: "acesso restrito à equipe"})
			return
		}
		c.Next()
	}
}

func CurrentIdentity(c *gin.Context) (model.UserIdentity, bool) {
	value, exists := c.Get(IdentityKey)
	if !exists {
		return model.UserIdentity{}, false
	}
	identity, ok := value.(model.UserIdentity)
	return identity, ok
}
