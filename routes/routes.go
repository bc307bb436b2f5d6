package routes

import (
	"net/http"

	"postapi/controllers"
	"postapi/middleware"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "postapi/docs"
)

type Options struct {
	Logger           *zap.Logger
	AllowedOrigins   []string
	ValidateOnCreate bool
}

// SetupRoutes builds the engine serving the posts resource.
func SetupRoutes(postController *controllers.PostController, opts Options) *gin.Engine {
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	r := gin.New()
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger(logger))
	r.Use(middleware.CORS(opts.AllowedOrigins))
	r.Use(middleware.ErrorHandler(logger))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	create := []gin.HandlerFunc{postController.Create}
	if opts.ValidateOnCreate {
		create = append([]gin.HandlerFunc{middleware.Validate(middleware.CreatePostRules)}, create...)
	}

	r.GET("/getall", postController.GetAll)
	r.GET("/getpostbyid/:id", postController.GetByID)
	r.POST("/add", create...)
	r.PUT("/update", middleware.Validate(middleware.UpdatePostRules), postController.Update)
	r.DELETE("/delete", middleware.Validate(middleware.DeletePostRules), postController.Delete)

	return r
}
