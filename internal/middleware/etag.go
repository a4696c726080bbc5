package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

// ETag — весь контент вшит в бинарник, поэтому один отпечаток на все страницы.
// Совпал If-None-Match — отвечаем 304 без рендера.
// Если хоть один found вернул false (например, нет такого паттерна),
// ответ не кэшируется и 304 не отдаётся: пусть хендлер вернёт свой 404.
func ETag(fingerprint string, found ...func(*gin.Context) bool) gin.HandlerFunc {
	tag := `"` + fingerprint + `"`

	return func(c *gin.Context) {
		if c.Request.Method != http.MethodGet && c.Request.Method != http.MethodHead {
			c.Next()
			return
		}
		for _, ok := range found {
			if !ok(c) {
				c.Next()
				return
			}
		}

		if match := c.GetHeader("If-None-Match"); match != "" && etagMatches(match, tag) {
			c.Header("ETag", tag)
			c.AbortWithStatus(http.StatusNotModified)
			return
		}

		c.Header("ETag", tag)
		c.Header("Cache-Control", "public, max-age=300")
		c.Next()
	}
}

func etagMatches(header, tag string) bool {
	for _, part := range strings.Split(header, ",") {
		part = strings.TrimSpace(part)
		part = strings.TrimPrefix(part, "W/")
		if part == "*" || part == tag {
			return true
		}
	}
	return false
}
