package api

import (
	"alcyxob/fittrack/internal/domain"
	"alcyxob/fittrack/internal/service"
	"net/http"

	"github.com/gin-gonic/gin"
)

// Services bundles what the HTTP layer needs.
type Services struct {
	Auth      service.AuthService
	Profile   service.ProfileService
	Exercise  service.ExerciseService
	Workout   service.WorkoutService
	Meal      service.MealService
	Progress  service.ProgressService
	Photo     service.PhotoService
	Dashboard service.DashboardService
}

func SetupRoutes(router *gin.Engine, jwtSecret string, svc Services) {
	authHandler := NewAuthHandler(svc.Auth)
	profileHandler := NewProfileHandler(svc.Profile)
	exerciseHandler := NewExerciseHandler(svc.Exercise)
	workoutHandler := NewWorkoutHandler(svc.Workout)
	mealHandler := NewMealHandler(svc.Meal)
	progressHandler := NewProgressHandler(svc.Progress, svc.Photo)
	dashboardHandler := NewDashboardHandler(svc.Dashboard)

	authMiddleware := AuthMiddleware(jwtSecret)

	router.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong"})
	})

	apiV1 := router.Group("/api/v1")
	{
		authGroup := apiV1.Group("/auth")
		{
			authGroup.POST("/register", authHandler.Register)
			authGroup.POST("/login", authHandler.Login)
		}
	}

	protected := apiV1.Group("")
	protected.Use(authMiddleware)
	{
		protected.GET("/me", func(c *gin.Context) {
			userIDStr, err := getUserIDFromContext(c)
			if err != nil {
				abortWithError(c, http.StatusInternalServerError, "Failed to get user ID from token")
				return
			}
			role, _ := getUserRoleFromContext(c)
			c.JSON(http.StatusOK, gin.H{"userId": userIDStr, "role": role})
		})
		protected.GET("/me/profile", profileHandler.GetProfile)
		protected.PUT("/me/profile", profileHandler.UpdateProfile)

		// --- Exercise Library ---
		// Everyone can browse; only admins curate.
		exerciseGroup := protected.Group("/exercises")
		{
			exerciseGroup.GET("", exerciseHandler.ListExercises)
			exerciseGroup.GET("/:exerciseId", exerciseHandler.GetExercise)
			exerciseGroup.POST("", RoleMiddleware(domain.RoleAdmin), exerciseHandler.CreateExercise)
			exerciseGroup.PUT("/:exerciseId", RoleMiddleware(domain.RoleAdmin), exerciseHandler.UpdateExercise)
			exerciseGroup.DELETE("/:exerciseId", RoleMiddleware(domain.RoleAdmin), exerciseHandler.DeleteExercise)
		}

		// --- Workouts ---
		workoutGroup := protected.Group("/workouts")
		{
			workoutGroup.POST("", workoutHandler.ScheduleWorkout)
			workoutGroup.GET("", workoutHandler.ListWorkouts)
			workoutGroup.GET("/:workoutId", workoutHandler.GetWorkout)
			workoutGroup.PUT("/:workoutId", workoutHandler.UpdateWorkout)
			workoutGroup.DELETE("/:workoutId", workoutHandler.DeleteWorkout)
			workoutGroup.POST("/:workoutId/start", workoutHandler.StartWorkout)
			workoutGroup.POST("/:workoutId/complete", workoutHandler.CompleteWorkout)
			workoutGroup.POST("/:workoutId/miss", workoutHandler.MissWorkout)
		}

		// --- Meals ---
		mealGroup := protected.Group("/meals")
		{
			mealGroup.POST("", mealHandler.CreateMeal)
			mealGroup.GET("", mealHandler.ListMeals)
			mealGroup.GET("/:mealId", mealHandler.GetMeal)
			mealGroup.PUT("/:mealId", mealHandler.UpdateMeal)
			mealGroup.DELETE("/:mealId", mealHandler.DeleteMeal)
			mealGroup.POST("/:mealId/toggle", mealHandler.ToggleMeal)
		}

		// --- Progress ---
		progressGroup := protected.Group("/progress")
		{
			progressGroup.GET("", progressHandler.ListEntries)
			progressGroup.GET("/series", progressHandler.MetricSeries)
			progressGroup.GET("/trend", progressHandler.MetricTrend)
			progressGroup.POST("/weigh-in", progressHandler.LogWeighIn)
			progressGroup.POST("/sleep", progressHandler.LogSleep)
			progressGroup.POST("/steps", progressHandler.LogSteps)
			progressGroup.POST("/water", progressHandler.LogWater)
			progressGroup.POST("/measurements", progressHandler.LogMeasurements)

			progressGroup.POST("/photos/upload-url", progressHandler.RequestPhotoUploadURL)
			progressGroup.POST("/photos", progressHandler.ConfirmPhotoUpload)
			progressGroup.GET("/photos", progressHandler.ListPhotos)
			progressGroup.DELETE("/photos/:photoId", progressHandler.DeletePhoto)
		}

		protected.GET("/dashboard", dashboardHandler.GetDashboard)
		protected.GET("/reports/weekly", dashboardHandler.GetWeeklyReport)
	}
}
