package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"postapi/utils"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func params(violations []ValidationError) []string {
	var out []string
	for _, v := range violations {
		out = append(out, v.Param+": "+v.Msg)
	}
	return out
}

func TestCheck_CreateRules(t *testing.T) {
	tests := []struct {
		name string
		body map[string]interface{}
		want []string
	}{
		{
			name: "all present",
			body: map[string]interface{}{"title": "t", "content": "c", "tags": "a,b", "ispublished": false},
		},
		{
			name: "empty title",
			body: map[string]interface{}{"title": "", "content": "c", "tags": "a", "ispublished": true},
			want: []string{"title: title is required"},
		},
		{
			name: "empty body reports every field",
			body: map[string]interface{}{},
			want: []string{
				"title: title is required",
				"content: content is required",
				"tags: tags is required",
				"ispublished: ispublished is required",
			},
		},
		{
			name: "null counts as missing",
			body: map[string]interface{}{"title": "t", "content": nil, "tags": "a", "ispublished": 0.0},
			want: []string{"content: content is required"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, params(Check(tt.body, CreatePostRules)))
		})
	}
}

func TestCheck_IDRules(t *testing.T) {
	tests := []struct {
		name string
		body map[string]interface{}
		want []string
	}{
		{name: "json number", body: map[string]interface{}{"id": 3.0}},
		{name: "numeric string", body: map[string]interface{}{"id": "12"}},
		{
			name: "non numeric",
			body: map[string]interface{}{"id": "abc"},
			want: []string{"id: id must be numeric"},
		},
		{
			name: "missing",
			body: map[string]interface{}{},
			want: []string{"id: id is required", "id: id must be numeric"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, params(Check(tt.body, UpdatePostRules)))
			assert.Equal(t, tt.want, params(Check(tt.body, DeletePostRules)))
		})
	}
}

func TestValidate_ShortCircuits(t *testing.T) {
	reached := false
	r := gin.New()
	r.PUT("/update", Validate(UpdatePostRules), func(c *gin.Context) {
		reached = true
		c.Status(http.StatusOK)
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPut, "/update", strings.NewReader(`{"id":"x1"}`))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	assert.False(t, reached)

	var resp struct {
		Errors []ValidationError `json:"errors"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp.Errors, 1)
	assert.Equal(t, "id", resp.Errors[0].Param)
	assert.Equal(t, "body", resp.Errors[0].Location)
	assert.Equal(t, "x1", resp.Errors[0].Value)
}

func TestValidate_PassesBodyThrough(t *testing.T) {
	var seen map[string]interface{}
	r := gin.New()
	r.DELETE("/delete", Validate(DeletePostRules), func(c *gin.Context) {
		seen, _ = utils.BindBody(c)
		c.Status(http.StatusOK)
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodDelete, "/delete", strings.NewReader(`{"id":7}`))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 7.0, seen["id"])
}

func TestValidate_MalformedBody(t *testing.T) {
	r := gin.New()
	r.POST("/add", Validate(CreatePostRules), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/add", strings.NewReader(`not json`))
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	assert.Contains(t, w.Body.String(), "ispublished is required")
}
