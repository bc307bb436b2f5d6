package controllers

import (
	"net/http"

	"postapi/models"
	"postapi/services"
	"postapi/utils"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cast"
	"gorm.io/gorm"
)

type PostController struct {
	db          *gorm.DB
	postService *services.PostService
}

func NewPostController(db *gorm.DB) *PostController {
	return &PostController{
		db:          db,
		postService: services.NewPostService(db),
	}
}

// GetAll lists every post
// @Summary List posts
// @Tags posts
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Failure 500 {object} map[string]interface{}
// @Router /getall [get]
func (pc *PostController) GetAll(c *gin.Context) {
	posts, err := pc.postService.FindAll(c.Request.Context())
	if err != nil {
		failure(c, err)
		return
	}

	if len(posts) == 0 {
		c.JSON(http.StatusOK, gin.H{
			"status":  http.StatusOK,
			"message": "empty data",
			"data":    gin.H{},
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  http.StatusOK,
		"message": "success get data post",
		"data":    posts,
	})
}

// GetByID fetches one post by primary key
// @Summary Get a post
// @Tags posts
// @Produce json
// @Param id path string true "Post ID"
// @Success 200 {object} map[string]interface{}
// @Failure 404 {object} map[string]interface{}
// @Failure 500 {object} map[string]interface{}
// @Router /getpostbyid/{id} [get]
func (pc *PostController) GetByID(c *gin.Context) {
	post, found, err := pc.postService.FindByPk(c.Request.Context(), c.Param("id"))
	if err != nil {
		failure(c, err)
		return
	}

	if !found {
		c.JSON(http.StatusNotFound, gin.H{
			"status":   http.StatusNotFound,
			"messages": "Data not found",
			"data":     nil,
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":   http.StatusOK,
		"messages": "success get data post",
		"data":     post,
	})
}

// Create adds a post
// @Summary Create a post
// @Tags posts
// @Accept json
// @Produce json
// @Param post body object true "title, content, tags, ispublished"
// @Success 200 {object} map[string]interface{}
// @Failure 422 {object} map[string]interface{}
// @Failure 500 {object} map[string]interface{}
// @Router /add [post]
func (pc *PostController) Create(c *gin.Context) {
	body, _ := utils.BindBody(c)

	fields, err := models.PostFieldsFromBody(body)
	if err != nil {
		failure(c, err)
		return
	}

	post, err := pc.postService.Create(c.Request.Context(), fields)
	if err != nil {
		failure(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  http.StatusOK,
		"message": "success add post",
		"data":    post,
	})
}

// Update overwrites the fields of an existing post
// @Summary Update a post
// @Tags posts
// @Accept json
// @Produce json
// @Param post body object true "id, title, content, tags, ispublished"
// @Success 200 {object} map[string]interface{}
// @Failure 422 {object} map[string]interface{}
// @Failure 500 {object} map[string]interface{}
// @Router /update [put]
func (pc *PostController) Update(c *gin.Context) {
	body, _ := utils.BindBody(c)

	fields, err := models.PostFieldsFromBody(body)
	if err != nil {
		failure(c, err)
		return
	}

	post, err := pc.postService.Update(c.Request.Context(), cast.ToString(body["id"]), fields)
	if err != nil {
		failure(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  http.StatusOK,
		"message": "success update post",
		"data":    post,
	})
}

// Delete removes an existing post
// @Summary Delete a post
// @Tags posts
// @Accept json
// @Produce json
// @Param post body object true "id"
// @Success 200 {object} map[string]interface{}
// @Failure 422 {object} map[string]interface{}
// @Failure 500 {object} map[string]interface{}
// @Router /delete [delete]
func (pc *PostController) Delete(c *gin.Context) {
	body, _ := utils.BindBody(c)

	if err := pc.postService.Destroy(c.Request.Context(), cast.ToString(body["id"])); err != nil {
		failure(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  http.StatusOK,
		"message": "success delete post",
	})
}
