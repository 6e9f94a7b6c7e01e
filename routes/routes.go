package routes

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/abdulrahman-nisar/UpliftAI/controllers"
	"github.com/abdulrahman-nisar/UpliftAI/middleware"
	"github.com/abdulrahman-nisar/UpliftAI/services"
)

// Services bundles everything the route table needs. Coach is nil when
// no LLM key is configured; the chat route is skipped in that case.
type Services struct {
	Users      *services.UserService
	Moods      *services.MoodService
	Journals   *services.JournalService
	Activities *services.ActivityService
	Content    *services.ContentService
	Coach      *services.CoachService
}

func RegisterRoutes(r *gin.Engine, svc Services) {
	authController := controllers.NewAuthController(svc.Users)
	userController := controllers.NewUserController(svc.Users)
	moodController := controllers.NewMoodController(svc.Moods)
	journalController := controllers.NewJournalController(svc.Journals)
	activityController := controllers.NewActivityController(svc.Activities)
	contentController := controllers.NewContentController(svc.Content)

	// Public routes: signup follows external auth, so profile creation
	// and token issuance cannot require a token themselves.
	public := r.Group("/api/v1")
	{
		public.POST("/auth/token", authController.Token)
		public.POST("/users/profile", userController.CreateProfile)
		public.GET("/health", func(c *gin.Context) {
			c.JSON(200, gin.H{
				"success":   true,
				"message":   "API is running",
				"timestamp": time.Now().UTC().Format(time.RFC3339),
			})
		})
	}

	private := r.Group("/api/v1")
	private.Use(middleware.AuthMiddleware())
	{
		private.GET("/users/:user_id", userController.GetProfile)
		private.PUT("/users/:user_id", userController.UpdateProfile)
		private.DELETE("/users/:user_id", userController.DeleteProfile)
		private.GET("/users/:user_id/goals", userController.GetGoals)
		private.PUT("/users/:user_id/goals", userController.UpdateGoals)

		private.POST("/moods", moodController.Create)
		private.GET("/moods/:user_id", moodController.List)
		private.GET("/moods/:user_id/stats", moodController.Statistics)
		private.GET("/moods/:user_id/range", moodController.ByDateRange)
		private.GET("/moods/:user_id/:entry_id", moodController.Get)
		private.PUT("/moods/:user_id/:entry_id", moodController.Update)
		private.DELETE("/moods/:user_id/:entry_id", moodController.Delete)

		private.POST("/journals", journalController.Create)
		private.GET("/journals/:user_id", journalController.List)
		private.GET("/journals/:user_id/search", journalController.Search)
		private.GET("/journals/:user_id/range", journalController.ByDateRange)
		private.GET("/journals/:user_id/:journal_id", journalController.Get)
		private.PUT("/journals/:user_id/:journal_id", journalController.Update)
		private.DELETE("/journals/:user_id/:journal_id", journalController.Delete)

		private.POST("/activities", activityController.Create)
		private.GET("/activities", activityController.GetAll)
		private.GET("/activities/recommendations", activityController.Recommendations)
		private.POST("/activities/log", activityController.Log)
		private.GET("/activities/type/:activity_type", activityController.ByType)
		private.GET("/activities/user/:user_id", activityController.UserLogs)
		private.GET("/activities/:activity_id", activityController.Get)
		private.PUT("/activities/:activity_id", activityController.Update)
		private.DELETE("/activities/:activity_id", activityController.Delete)

		private.POST("/content", contentController.Create)
		private.GET("/content", contentController.GetAll)
		private.GET("/content/retrieve", contentController.Retrieve)
		private.GET("/content/prompt", contentController.Prompt)
		private.GET("/content/quote", contentController.Quote)
		private.GET("/content/tips", contentController.Tips)
		private.GET("/content/tags", contentController.ByTags)
		private.GET("/content/category/:category", contentController.ByCategory)
		private.GET("/content/type/:content_type", contentController.ByType)
		private.GET("/content/:content_id", contentController.Get)

		if svc.Coach != nil {
			chatController := controllers.NewChatController(svc.Coach)
			private.POST("/chat", chatController.SendMessage)
		}
	}

	r.GET("/ping", func(c *gin.Context) {
		c.JSON(200, gin.H{"message": "pong"})
	})
}
