package middleware

import (
	"crypto/subtle"
	"encoding/base64"
	"net/http"
	"strings"

	"app/internal/config"

	"github.com/labstack/echo/v4"
)

func errorJSON(msg string) map[string]string {
	return map[string]string{"error": msg}
}

// スタッフAPI用のBasic認証。認証情報は1組だけ（configから）。
func BasicAuth(cfg config.Config) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			//Authorizationヘッダを取得
			authz := c.Request().Header.Get("Authorization")

			parts := strings.SplitN(authz, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "Basic") {
				return challenge(c)
			}

			decoded, err := base64.StdEncoding.DecodeString(strings.TrimSpace(parts[1]))
			if err != nil {
				return challenge(c)
			}

			username, password, ok := strings.Cut(string(decoded), ":")
			if !ok {
				return challenge(c)
			}

			//タイミング差を作らないよう定数時間で比較
			userOK := subtle.ConstantTimeCompare([]byte(username), []byte(cfg.BasicUser)) == 1
			passOK := subtle.ConstantTimeCompare([]byte(password), []byte(cfg.BasicPass)) == 1
			if !userOK || !passOK {
				return challenge(c)
			}

			return next(c)
		}
	}
}

func challenge(c echo.Context) error {
	c.Response().Header().Set("WWW-Authenticate", `Basic realm="BCL API"`)
	return c.JSON(http.StatusUnauthorized, errorJSON("unauthorized"))
}
