package api

import (
	"time"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	echoswagger "github.com/swaggo/echo-swagger"
	"go.mongodb.org/mongo-driver/mongo"

	_ "github.com/jtcsoft/ems-backend/docs"
	"github.com/jtcsoft/ems-backend/internal/api/handler"
	"github.com/jtcsoft/ems-backend/internal/api/middleware"
	"github.com/jtcsoft/ems-backend/internal/core/domain"
	"github.com/jtcsoft/ems-backend/internal/core/idgen"
	"github.com/jtcsoft/ems-backend/internal/core/service"
	mongodb "github.com/jtcsoft/ems-backend/internal/infrastructure/db/mongo"
	redisdb "github.com/jtcsoft/ems-backend/internal/infrastructure/db/redis"
)

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(db *mongo.Database, rdb *redis.Client, jwtSecret string, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("ems"))

	// --- Repositories ---
	employeeRepo := mongodb.NewEmployeeRepository(db)
	clientRepo := mongodb.NewClientRepository(db)
	contactRepo := mongodb.NewContactRepository(db)
	projectRepo := mongodb.NewProjectRepository(db)
	userRepo := mongodb.NewUserRepository(db)
	ids := idgen.New(redisdb.NewSequence(rdb))

	// --- Services ---
	employeeService := service.NewEmployeeService(employeeRepo, projectRepo, userRepo, ids, log)
	clientService := service.NewClientService(clientRepo, contactRepo, projectRepo, userRepo, ids, log)
	projectService := service.NewProjectService(projectRepo, clientRepo, ids, log)
	authService := service.NewAuthService(userRepo, jwtSecret, 24*time.Hour)

	// --- Handlers ---
	employeeHandler := handler.NewEmployeeHandler(employeeService)
	clientHandler := handler.NewClientHandler(clientService)
	projectHandler := handler.NewProjectHandler(projectService)
	authHandler := handler.NewAuthHandler(authService)
	healthHandler := handler.NewHealthHandler()
	readinessHandler := handler.NewReadinessHandler(db, rdb)

	authMiddleware := middleware.Auth(jwtSecret)

	// --- Auth ---
	e.POST("/auth/login", authHandler.Login)

	// --- Admin surface ---
	admin := e.Group("/admin", authMiddleware, middleware.RBAC(domain.RoleAdmin))

	admin.POST("/saveEmployee", employeeHandler.Save)
	admin.GET("/getEmployeeById/:id", employeeHandler.GetByID)
	admin.GET("/getEmployeeByEmail/:email", employeeHandler.GetByEmail)
	admin.PUT("/updateEmployee/:id", employeeHandler.Update)
	admin.DELETE("/deleteEmployee/:id", employeeHandler.Delete)
	admin.GET("/getAllEmployees", employeeHandler.List)

	admin.POST("/saveClient", clientHandler.Save)
	admin.GET("/getClientById/:id", clientHandler.GetByID)
	admin.DELETE("/deleteClient/:id", clientHandler.Delete)
	admin.GET("/getAllClients", clientHandler.List)
	admin.POST("/addContact/:clientId", clientHandler.AddContact)

	admin.POST("/saveProject/:clientId", projectHandler.Save)
	admin.GET("/getProjectById/:id", projectHandler.GetByID)
	admin.PUT("/updateProject/:id", projectHandler.Update)
	admin.DELETE("/deleteProject/:id", projectHandler.Delete)
	admin.GET("/getAllProjects", projectHandler.List)

	admin.PUT("/assignProject/employee/:employeeId/project/:projectId", employeeHandler.AssignProject)
	admin.PUT("/unassignProject/employee/:employeeId", employeeHandler.Unassign)
	admin.GET("/getProjectsByClient/:clientId", projectHandler.ListByClient)
	admin.GET("/getEmployeesByProject/:projectId", employeeHandler.ListByProject)
	admin.GET("/getClientByProject/:projectId", projectHandler.ClientByProject)
	admin.GET("/getProjectByEmployee/:employeeId", employeeHandler.ProjectByEmployee)

	admin.PUT("/setEmployeePassword", employeeHandler.SetPassword)
	admin.PUT("/setClientPassword", clientHandler.SetPassword)

	// --- Self-service surfaces ---
	employee := e.Group("/employee", authMiddleware, middleware.RBAC(domain.RoleEmployee))
	employee.GET("/myDetails", employeeHandler.MyDetails)
	employee.GET("/myProject", employeeHandler.MyProject)

	client := e.Group("/client", authMiddleware, middleware.RBAC(domain.RoleClient))
	client.GET("/details", clientHandler.Details)
	client.GET("/projects", clientHandler.Projects)

	// --- Ops endpoints (no auth required) ---
	e.GET("/health", healthHandler.Liveness)
	e.GET("/health/ready", readinessHandler.Readiness)
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoswagger.WrapHandler)

	return e
}
