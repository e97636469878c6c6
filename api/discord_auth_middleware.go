package api

import (
	"net/http"
	"slices"

	"github.com/gin-gonic/gin"
	"github.com/hanksha/turf-booking-backend/discord"
	"github.com/hanksha/turf-booking-backend/identity"
)

const userKey = "user"

// DiscordAuth resolves the caller from the accesstoken header and stores the resulting
// identity.Actor under "user".
func DiscordAuth(discordClient discord.DiscordClient, roles discord.RoleIDs) gin.HandlerFunc {
	return func(c *gin.Context) {
		accessToken := c.GetHeader("accesstoken")

		if len(accessToken) == 0 {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "missing authentication"})
			c.Abort()
			return
		}

		member, err := discordClient.GetGuildMember(c.Request.Context(), accessToken)

		if err != nil {
			c.Error(err)
			c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid authentication"})
			c.Abort()
			return
		}

		c.Set(userKey, roles.Actor(member))
		c.Set("accessToken", accessToken)
	}
}

// RequireRole rejects callers whose role is not listed.
func RequireRole(allowed ...identity.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		actor := actorFrom(c)

		if !slices.Contains(allowed, actor.Role) {
			c.JSON(http.StatusForbidden, gin.H{"error": "not allowed"})
			c.Abort()
			return
		}
	}
}

func actorFrom(c *gin.Context) identity.Actor {
	return c.MustGet(userKey).(identity.Actor)
}
