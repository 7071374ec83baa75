package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/seojun/meeplehub/internal/app/controllers"
	"github.com/seojun/meeplehub/internal/app/models/dto"
	"github.com/seojun/meeplehub/internal/middleware"
)

// SetupRouter configures all application routes
func SetupRouter(
	router *gin.Engine,
	authController *controllers.AuthController,
	postController *controllers.PostController,
	boardGameController *controllers.BoardGameController,
	meetingController *controllers.MeetingController,
	authMiddleware *middleware.AuthMiddleware,
) {
	// API version group
	v1 := router.Group("/api/v1")

	// --- Public Auth routes ---
	auth := v1.Group("/auth")
	{
		auth.POST("/check-username", authController.CheckUsername)
		auth.POST("/check-nickname", authController.CheckNickname)
		auth.POST("/register", authController.Register)
		auth.POST("/login", authController.Login)
		auth.POST("/refresh-token", authController.RefreshToken)
		auth.POST("/send-reset-code", authController.SendResetCode)
		auth.POST("/verify-code", authController.VerifyResetCode)
		auth.POST("/reset-password-final", authController.ResetPassword)
	}

	// --- Public catalog and board reads ---
	v1.GET("/posts", postController.GetPosts)
	v1.GET("/posts/:postId", postController.GetPostDetail)
	v1.GET("/posts/:postId/comments", postController.GetComments)

	games := v1.Group("/boardgames")
	{
		games.GET("", boardGameController.GetGames)
		games.GET("/search", boardGameController.SearchGames)
		games.GET("/:gameId", boardGameController.GetGameDetail)
	}

	v1.GET("/meetings", meetingController.GetMeetings)

	// --- Authenticated routes ---
	authenticated := v1.Group("")
	authenticated.Use(authMiddleware.JWTAuth())
	{
		authenticated.GET("/auth/profile", authController.GetProfile)
		authenticated.PUT("/auth/profile", authController.UpdateProfile)

		authenticated.POST("/posts", postController.CreatePost)
		authenticated.PUT("/posts/:postId", postController.UpdatePost)
		authenticated.DELETE("/posts/:postId", postController.DeletePost)
		authenticated.POST("/posts/:postId/comments", postController.CreateComment)

		authenticated.POST("/boardgames/:gameId/reviews", boardGameController.AddReview)

		authenticated.POST("/meetings", meetingController.CreateMeeting)
		authenticated.POST("/meetings/:meetingId/join", meetingController.JoinMeeting)
		authenticated.DELETE("/meetings/:meetingId", meetingController.DeleteMeeting)
	}

	// Health check endpoint (public)
	v1.GET("/health", func(c *gin.Context) {
		c.JSON(200, dto.APIResponse{
			Data: gin.H{"status": "ok"},
		})
	})

	// Swagger routes are set up in bootstrap.go already
}
