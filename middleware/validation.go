package middleware

import (
	"fmt"
	"net/http"

	"postapi/utils"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/spf13/cast"
)

// Rule describes the checks run against one body field. Every rule requires
// the field to be present and non-empty.
type Rule struct {
	Field   string
	Numeric bool
}

type ValidationError struct {
	Value    interface{} `json:"value,omitempty"`
	Msg      string      `json:"msg"`
	Param    string      `json:"param"`
	Location string      `json:"location"`
}

var (
	CreatePostRules = []Rule{
		{Field: "title"},
		{Field: "content"},
		{Field: "tags"},
		{Field: "ispublished"},
	}
	UpdatePostRules = []Rule{{Field: "id", Numeric: true}}
	DeletePostRules = []Rule{{Field: "id", Numeric: true}}
)

var validate = validator.New()

// Check runs rules against body and returns every violation in rule order.
func Check(body map[string]interface{}, rules []Rule) []ValidationError {
	var violations []ValidationError

	for _, rule := range rules {
		value, present := body[rule.Field]

		// false and 0 stringify to non-empty values.
		text, err := cast.ToStringE(value)
		if err != nil {
			text = fmt.Sprint(value)
		}

		if !present || validate.Var(text, "required") != nil {
			violations = append(violations, ValidationError{
				Value:    value,
				Msg:      rule.Field + " is required",
				Param:    rule.Field,
				Location: "body",
			})
		}

		if rule.Numeric && validate.Var(text, "numeric") != nil {
			violations = append(violations, ValidationError{
				Value:    value,
				Msg:      rule.Field + " must be numeric",
				Param:    rule.Field,
				Location: "body",
			})
		}
	}

	return violations
}

// Validate rejects the request with 422 and the full list of violations
// before the route handler runs.
func Validate(rules []Rule) gin.HandlerFunc {
	return func(c *gin.Context) {
		body, _ := utils.BindBody(c)

		if violations := Check(body, rules); len(violations) > 0 {
			c.AbortWithStatusJSON(http.StatusUnprocessableEntity, gin.H{"errors": violations})
			return
		}

		c.Next()
	}
}
