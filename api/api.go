package api

import (
	"rmu/credit_bank_service/api/handlers"
	"rmu/credit_bank_service/api/middleware"
	"rmu/credit_bank_service/config"
	"rmu/credit_bank_service/pkg/metrics"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// SetUpRouter registers every route under /api. Reads are public, writes
// need a bearer token.
func SetUpRouter(h *handlers.Handler, cfg config.Config) *gin.Engine {
	r := gin.New()

	r.Use(
		gin.Recovery(),
		middleware.RequestID(),
		middleware.CORS(cfg.CORSOrigin),
		metrics.Middleware(),
		middleware.RateLimit(cfg.RateLimitPerMinute, cfg.RateLimitBurst),
	)
	if cfg.Environment != config.ReleaseMode {
		r.Use(gin.Logger())
	}

	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	auth := middleware.Auth(cfg.JWTSecret)
	admin := middleware.RequireRole(config.ADMIN_ROLES...)

	v1 := r.Group("/api")
	v1.GET("/health", h.Health)
	v1.POST("/auth/sign-in", h.SignIn)

	subjects := v1.Group("/subjects")
	{
		subjects.GET("", h.GetSubjectList)
		subjects.GET("/:id", h.GetSubjectByID)
		subjects.POST("", auth, h.CreateSubject)
		subjects.PUT("/:id", auth, h.UpdateSubject)
		subjects.PATCH("/:id/activate", auth, h.ActivateSubject)
		subjects.PATCH("/:id/deactivate", auth, h.DeactivateSubject)
		subjects.DELETE("/:id", auth, h.DeleteSubject)
	}

	majors := v1.Group("/majors")
	{
		majors.GET("", h.GetMajorList)
		majors.GET("/:id", h.GetMajorByID)
		majors.POST("", auth, h.CreateMajor)
		majors.PUT("/:id", auth, h.UpdateMajor)
		majors.DELETE("/:id", auth, h.DeleteMajor)
	}

	curriculums := v1.Group("/curriculums")
	{
		curriculums.GET("", h.GetCurriculumList)
		curriculums.GET("/:id", h.GetCurriculumByID)
		curriculums.POST("", auth, h.CreateCurriculum)
		curriculums.PUT("/:id", auth, h.UpdateCurriculum)
		curriculums.POST("/:id/cover", auth, h.UploadCurriculumCover)
		curriculums.DELETE("/:id", auth, h.DeleteCurriculum)
	}

	instructors := v1.Group("/instructors")
	{
		instructors.GET("", h.GetInstructorList)
		instructors.GET("/:id", h.GetInstructorByID)
		instructors.POST("", auth, h.CreateInstructor)
		instructors.PUT("/:id", auth, h.UpdateInstructor)
		instructors.DELETE("/:id", auth, h.DeleteInstructor)
	}

	departments := v1.Group("/departments")
	{
		departments.GET("", h.GetDepartmentList)
		departments.GET("/:id", h.GetDepartmentByID)
	}

	enrollments := v1.Group("/enrollments")
	{
		enrollments.GET("", h.GetEnrollmentList)
		enrollments.GET("/:id", h.GetEnrollmentByID)
		enrollments.POST("", auth, h.CreateEnrollment)
		enrollments.PATCH("/:id/progress", auth, h.UpdateEnrollmentProgress)
		enrollments.PATCH("/:id/grade", auth, h.UpdateEnrollmentGrade)
	}

	certificates := v1.Group("/certificates")
	{
		certificates.GET("", h.GetCertificateList)
		certificates.GET("/verify/:number", h.VerifyCertificate)
		certificates.GET("/:id", h.GetCertificateByID)
		certificates.POST("", auth, h.CreateCertificate)
	}

	sale := v1.Group("/sale")
	{
		sale.GET("/list", h.GetSaleList)
		sale.POST("/list", h.PostSaleList)
		sale.GET("/export", h.ExportSales)
	}

	users := v1.Group("/users")
	{
		users.GET("", h.GetUserList)
		users.GET("/:id", h.GetUserByID)
		users.POST("", auth, admin, h.CreateUser)
		users.POST("/batch", auth, admin, h.CreateUsersBatch)
		users.PUT("/:id", auth, h.UpdateUser)
		users.DELETE("/:id", auth, admin, h.DeleteUser)
	}

	return r
}
