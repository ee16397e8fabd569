package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/registrar/academics/internal/app/controllers"
	"github.com/registrar/academics/internal/middleware"
)

type entityRoute struct {
	path     string
	aliases  []string
	handlers controllers.Handlers
}

func entityRoutes(ctrls *controllers.Controllers) []entityRoute {
	return []entityRoute{
		{path: "/students", handlers: ctrls.Students},
		{path: "/instructors", handlers: ctrls.Instructors},
		{path: "/departments", handlers: ctrls.Departments},
		{path: "/programs", handlers: ctrls.Programs},
		{path: "/courses", handlers: ctrls.Courses},
		{path: "/terms", handlers: ctrls.Terms},
		{path: "/enrollments", handlers: ctrls.Enrollments},
		{path: "/assignments", handlers: ctrls.Assignments},
		{path: "/course_schedules", aliases: []string{"/course_schedule"}, handlers: ctrls.CourseSchedules},
	}
}

// SetupRouter configures all application routes
func SetupRouter(router *gin.Engine, ctrls *controllers.Controllers, db controllers.Pinger) {
	entities := entityRoutes(ctrls)

	available := make([]string, 0, len(entities))
	for _, e := range entities {
		available = append(available, e.path)
	}
	health := controllers.NewHealthController(db, available)

	router.GET("/", health.Root)
	router.GET("/health", health.Health)
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// every entity is served at the root and under /api
	for _, base := range []*gin.RouterGroup{&router.RouterGroup, router.Group("/api")} {
		for _, e := range entities {
			for _, path := range append([]string{e.path}, e.aliases...) {
				registerEntity(base.Group(path), e.handlers)
			}
		}
	}

	router.NoRoute(middleware.NoRoute)
}

func registerEntity(group *gin.RouterGroup, h controllers.Handlers) {
	group.GET("", h.List)
	group.GET("/:id", h.Get)
	group.POST("", h.Create)
	group.PUT("", h.Update)
	group.PATCH("", h.Archive)
}
