package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/microcosm-cc/bluemonday"
)

// SanitizeFormInputMiddleware cleans all string form values on mutating
// requests using bluemonday. Mutations here arrive as multipart or
// urlencoded forms, not JSON.
func SanitizeFormInputMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.Request.Method != http.MethodPost &&
			c.Request.Method != http.MethodPut &&
			c.Request.Method != http.MethodPatch {
			c.Next()
			return
		}

		if err := c.Request.ParseMultipartForm(32 << 20); err != nil && err != http.ErrNotMultipart {
			c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "Invalid form body"})
			return
		}

		// Form, PostForm and MultipartForm.Value hold independent slices,
		// and the binder reads Form, so all three need cleaning.
		policy := bluemonday.StrictPolicy()
		for key, values := range c.Request.Form {
			for i, v := range values {
				c.Request.Form[key][i] = policy.Sanitize(v)
			}
		}
		for key, values := range c.Request.PostForm {
			for i, v := range values {
				c.Request.PostForm[key][i] = policy.Sanitize(v)
			}
		}
		if c.Request.MultipartForm != nil {
			for key, values := range c.Request.MultipartForm.Value {
				for i, v := range values {
					c.Request.MultipartForm.Value[key][i] = policy.Sanitize(v)
				}
			}
		}

		c.Next()
	}
}
