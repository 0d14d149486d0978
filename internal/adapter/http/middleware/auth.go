package middleware

import (
	"errors"
	"net/http"
	"os"
	"strings"

	"tradeportal/internal/domain/entities"
	"tradeportal/internal/usecase"
	"tradeportal/internal/usecase/interfaces"
	"tradeportal/pkg"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

// ActorKey is the gin context key the identity middleware stores the
// authenticated actor under.
const ActorKey = "actor"

var errUnauthorized = pkg.NewDomainErrorSimple("UNAUTHORIZED", "Missing or invalid credentials", http.StatusUnauthorized)

// Identity verifies the bearer JWT issued by the external auth service and
// places the resulting actor in the request context. Session issuance and
// refresh are not this service's concern; only claim extraction happens
// here.
//
// When AUTH_TEST_TOKENS is enabled, an X-Auth-Token header carrying a
// one-time token from the injected TokenStore is accepted instead; the
// token's subject encodes the actor as "userID|role|tier|businessID".
// Production deployments leave the flag off and tokens is typically nil.
func Identity(tokens interfaces.ITokenStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		if actor, ok := testTokenActor(c, tokens); ok {
			c.Set(ActorKey, actor)
			c.Next()
			return
		}

		header := c.GetHeader("Authorization")
		if header == "" || !strings.HasPrefix(strings.ToUpper(header), "BEARER ") {
			c.AbortWithStatusJSON(errUnauthorized.HTTPStatus, errUnauthorized.ToHTTPError())
			return
		}

		actor, err := parseActorToken(header[7:])
		if err != nil {
			c.AbortWithStatusJSON(errUnauthorized.HTTPStatus, errUnauthorized.ToHTTPError())
			return
		}
		c.Set(ActorKey, actor)
		c.Next()
	}
}

// CurrentActor extracts the actor placed by Identity. The bool is false only
// on routes that skipped the middleware.
func CurrentActor(c *gin.Context) (usecase.Actor, bool) {
	v, ok := c.Get(ActorKey)
	if !ok {
		return usecase.Actor{}, false
	}
	actor, ok := v.(usecase.Actor)
	return actor, ok
}

func parseActorToken(tokenString string) (usecase.Actor, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		secret := os.Getenv("JWT_SECRET")
		if secret == "" {
			return nil, errors.New("JWT_SECRET not set")
		}
		return []byte(secret), nil
	})
	if err != nil || !token.Valid {
		return usecase.Actor{}, errors.New("invalid token")
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return usecase.Actor{}, errors.New("invalid claims")
	}

	actor := usecase.Actor{
		UserID:     claimString(claims, "sub"),
		Role:       entities.Role(claimString(claims, "role")),
		Tier:       entities.SubscriptionTier(claimString(claims, "tier")),
		BusinessID: claimString(claims, "business_id"),
	}
	if actor.UserID == "" || actor.Role == "" {
		return usecase.Actor{}, errors.New("missing identity claims")
	}
	return actor, nil
}

func claimString(claims jwt.MapClaims, key string) string {
	if v, ok := claims[key].(string); ok {
		return v
	}
	return ""
}

func testTokenActor(c *gin.Context, tokens interfaces.ITokenStore) (usecase.Actor, bool) {
	if tokens == nil || !testTokensEnabled() {
		return usecase.Actor{}, false
	}
	raw := strings.TrimSpace(c.GetHeader("X-Auth-Token"))
	if raw == "" {
		return usecase.Actor{}, false
	}

	subject, err := tokens.Consume(c.Request.Context(), raw)
	if err != nil || subject == "" {
		return usecase.Actor{}, false
	}

	parts := strings.Split(subject, "|")
	if len(parts) < 2 {
		return usecase.Actor{}, false
	}
	actor := usecase.Actor{UserID: parts[0], Role: entities.Role(parts[1])}
	if len(parts) > 2 {
		actor.Tier = entities.SubscriptionTier(parts[2])
	}
	if len(parts) > 3 {
		actor.BusinessID = parts[3]
	}
	return actor, true
}

func testTokensEnabled() bool {
	v := strings.ToLower(strings.TrimSpace(os.Getenv("AUTH_TEST_TOKENS")))
	switch v {
	case "1", "true", "yes", "on":
		return true
	}
	return false
}
