package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/hanksha/turf-booking-backend/discord"
)

type DiscordHandler struct {
	client discord.DiscordClient
	roles  discord.RoleIDs
}

func NewDiscordHandler(client discord.DiscordClient, roles discord.RoleIDs) *DiscordHandler {
	return &DiscordHandler{client: client, roles: roles}
}

func (h *DiscordHandler) Register(rg *gin.RouterGroup) {
	rg.GET("/user/info", DiscordAuth(h.client, h.roles), h.GetUserInfo)
	rg.GET("/oauth/callback", h.OAuthCallback)
}

// GetUserInfo returns the caller with the booking role their guild roles grant.
func (h *DiscordHandler) GetUserInfo(c *gin.Context) {
	c.IndentedJSON(http.StatusOK, actorFrom(c))
}

func (h *DiscordHandler) OAuthCallback(c *gin.Context) {
	code := c.Query("code")

	if len(code) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing code"})
		return
	}

	token, err := h.client.GetOAuth2Token(c.Request.Context(), code)

	if err != nil {
		c.Error(err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to get oauth2 token"})
		return
	}

	c.IndentedJSON(http.StatusOK, token)
}
