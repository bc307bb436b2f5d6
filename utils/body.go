package utils

import (
	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
)

// BindBody decodes the request body as an untyped JSON object. The raw bytes
// are cached on the context so later handlers in the chain can decode again.
// A missing or non-object body yields an empty map together with the decode
// error.
func BindBody(c *gin.Context) (map[string]interface{}, error) {
	body := map[string]interface{}{}
	if err := c.ShouldBindBodyWith(&body, binding.JSON); err != nil {
		return map[string]interface{}{}, err
	}
	return body, nil
}
