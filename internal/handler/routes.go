package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/deptsite/cms-api/internal/middleware"
	"github.com/deptsite/cms-api/internal/models"
	"github.com/deptsite/cms-api/internal/service"
)

// Handlers bundles every HTTP handler wired into the router.
type Handlers struct {
	Auth    *AuthHandler
	Faculty *FacultyHandler
	News    *NewsHandler
	Event   *EventHandler
	Note    *NoteHandler
	Media   *MediaHandler
	Contact *ContactHandler
	Metrics *MetricsHandler
}

// RegisterRoutes mounts the API under prefix (normally /api).
// Reads are public, writes require an admin token, and the contact
// form stays open to anonymous callers.
func RegisterRoutes(r *gin.Engine, prefix string, authService *service.AuthService, h Handlers) {
	requireAdmin := []gin.HandlerFunc{
		middleware.JWT(authService),
		middleware.RequireRoles(models.RoleAdmin),
	}

	api := r.Group(prefix)

	auth := api.Group("/auth")
	auth.POST("/login", h.Auth.Login)
	auth.POST("/register", h.Auth.Register)
	auth.GET("/me", middleware.JWT(authService), h.Auth.Me)

	faculty := api.Group("/faculty")
	faculty.GET("", h.Faculty.List)
	faculty.GET("/:id", h.Faculty.Get)
	faculty.POST("", append(requireAdmin, h.Faculty.Create)...)
	faculty.PUT("/:id", append(requireAdmin, h.Faculty.Update)...)
	faculty.DELETE("/:id", append(requireAdmin, h.Faculty.Delete)...)

	news := api.Group("/news")
	news.GET("", middleware.OptionalJWT(authService), h.News.List)
	news.GET("/:id", h.News.Get)
	news.POST("", append(requireAdmin, h.News.Create)...)
	news.PUT("/:id", append(requireAdmin, h.News.Update)...)
	news.DELETE("/:id", append(requireAdmin, h.News.Delete)...)

	events := api.Group("/events")
	events.GET("", middleware.OptionalJWT(authService), h.Event.List)
	events.GET("/:id", h.Event.Get)
	events.POST("", append(requireAdmin, h.Event.Create)...)
	events.PUT("/:id", append(requireAdmin, h.Event.Update)...)
	events.DELETE("/:id", append(requireAdmin, h.Event.Delete)...)

	notes := api.Group("/notes")
	notes.GET("", middleware.OptionalJWT(authService), h.Note.List)
	notes.GET("/:id", h.Note.Get)
	notes.POST("", append(requireAdmin, h.Note.Create)...)
	notes.PUT("/:id", append(requireAdmin, h.Note.Update)...)
	notes.DELETE("/:id", append(requireAdmin, h.Note.Delete)...)

	media := api.Group("/media")
	media.GET("", middleware.OptionalJWT(authService), h.Media.List)
	media.GET("/:id", h.Media.Get)
	media.POST("", append(requireAdmin, h.Media.Create)...)
	media.PUT("/:id", append(requireAdmin, h.Media.Update)...)
	media.DELETE("/:id", append(requireAdmin, h.Media.Delete)...)

	contacts := api.Group("/contacts")
	contacts.POST("", h.Contact.Create)
	contacts.GET("", append(requireAdmin, h.Contact.List)...)
	contacts.GET("/export", append(requireAdmin, h.Contact.Export)...)
	contacts.PUT("/:id/status", append(requireAdmin, h.Contact.UpdateStatus)...)
	contacts.DELETE("/:id", append(requireAdmin, h.Contact.Delete)...)

	if h.Metrics != nil {
		r.GET("/metrics", h.Metrics.Prometheus)
	}
}
