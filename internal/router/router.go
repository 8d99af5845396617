package router

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/wellnest-dev/wellnest/internal/handlers"
	"github.com/wellnest-dev/wellnest/internal/middleware"
)

// NewRouter wires the route table. Paths match the original client
// contract, so the naming is uneven on purpose (/getappointments vs
// /journals serving both verbs).
func NewRouter() *gin.Engine {
	r := gin.Default()

	// Any origin may call the API.
	r.Use(cors.New(cors.Config{
		AllowAllOrigins: true,
		AllowMethods:    []string{"GET", "POST", "HEAD", "OPTIONS"},
		AllowHeaders:    []string{"Origin", "Content-Length", "Content-Type", "Authorization", "Accept", "X-Requested-With"},
		ExposeHeaders:   []string{"Content-Length"},
		MaxAge:          12 * time.Hour,
	}))

	r.GET("/status", handlers.StatusCheck)

	r.POST("/signup", handlers.Signup)
	r.POST("/login", handlers.Login)
	r.GET("/me", middleware.AuthMiddleware(), handlers.Me)
	r.GET("/users", handlers.ListUsers)

	r.POST("/daily_health_data", handlers.SubmitDailyHealthData)
	r.GET("/get_daily_health_data", handlers.GetDailyHealthData)

	r.POST("/appointments", handlers.CreateAppointment)
	r.GET("/getappointments", handlers.GetAppointments)

	r.POST("/journals", handlers.CreateJournal)
	r.GET("/journals", handlers.GetJournals)

	r.POST("/meals", handlers.CreateMeal)
	r.GET("/getmeals", handlers.GetMeals)

	return r
}
