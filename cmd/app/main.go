package main

import (
	"context"
	"log"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/fx"

	"alphagym/cmd/fx/account_fx"
	"alphagym/cmd/fx/controllers_fx"
	"alphagym/cmd/fx/dashboard_fx"
	"alphagym/cmd/fx/db_fx"
	"alphagym/cmd/fx/membership_fx"
	"alphagym/cmd/fx/memcache_fx"
	"alphagym/cmd/fx/provisioning_fx"
	"alphagym/internal/api/controllers"
	"alphagym/internal/models/db_models"
	"alphagym/pkg/memcache"
	"alphagym/pkg/middleware"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, relying on environment")
	}

	app := fx.New(
		db_fx.Module,
		memcache_fx.Module,
		account_fx.Module,
		provisioning_fx.Module,
		membership_fx.Module,
		dashboard_fx.Module,
		controllers_fx.Module,

		fx.Provide(ProvideRouter),
		fx.Invoke(StartServer),
	)

	app.Run()
}

func StartServer(lc fx.Lifecycle, engine *gin.Engine) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				port := os.Getenv("PORT")
				if port == "" {
					port = "8080"
				}
				log.Printf("Starting HTTP server at :%s", port)
				if err := engine.Run(":" + port); err != nil {
					log.Fatalf("Failed to start server: %v", err)
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Println("Stopping HTTP server")
			return nil
		},
	})
}

func ProvideRouter(
	accountController *controllers.AccountController,
	adminController *controllers.AdminController,
	coachController *controllers.CoachController,
	membershipController *controllers.MembershipController,
	dashboardController *controllers.DashboardController,
	revoked memcache.RevokedTokenStore,
) *gin.Engine {

	r := gin.Default()
	r.Use(middleware.TraceIDMiddleware())
	r.Use(middleware.CORSMiddleware())

	RegisterRoutes(r,
		accountController,
		adminController,
		coachController,
		membershipController,
		dashboardController,
		revoked)

	return r
}

func RegisterRoutes(r *gin.Engine,
	accountController *controllers.AccountController,
	adminController *controllers.AdminController,
	coachController *controllers.CoachController,
	membershipController *controllers.MembershipController,
	dashboardController *controllers.DashboardController,
	revoked memcache.RevokedTokenStore) {

	admin := string(db_models.RoleAdmin)
	owner := string(db_models.RoleOwner)
	coach := string(db_models.RoleCoach)
	member := string(db_models.RoleMember)

	auth := r.Group("/api/auth")
	auth.POST("/login", accountController.Login)

	authed := auth.Group("")
	authed.Use(middleware.JWTAuthMiddleware(revoked))
	authed.POST("/password", accountController.SetPassword)
	authed.POST("/logout", accountController.Logout)

	api := r.Group("/api")
	api.Use(middleware.JWTAuthMiddleware(revoked))

	api.GET("/me", accountController.GetMe)
	api.PUT("/me", accountController.UpdateMe)

	adminGroup := api.Group("")
	adminGroup.Use(middleware.RoleMiddleware(admin))
	adminGroup.POST("/owners", adminController.CreateOwner)
	adminGroup.GET("/owners", adminController.ListOwners)
	adminGroup.GET("/analytics", adminController.GetAnalytics)

	ownerGroup := api.Group("")
	ownerGroup.Use(middleware.RoleMiddleware(owner))
	ownerGroup.POST("/coaches", coachController.CreateCoach)
	ownerGroup.GET("/coaches", coachController.ListGymCoaches)
	ownerGroup.DELETE("/coaches/:id", coachController.DeleteCoach)
	ownerGroup.POST("/members", membershipController.CreateMember)
	ownerGroup.PUT("/memberships/:id", membershipController.UpdateMembership)
	ownerGroup.DELETE("/memberships/:id", membershipController.DeleteMembership)
	ownerGroup.GET("/dashboard", dashboardController.OwnerDashboard)

	listGroup := api.Group("")
	listGroup.Use(middleware.RoleMiddleware(owner, coach))
	listGroup.GET("/memberships", membershipController.ListMemberships)

	memberGroup := api.Group("")
	memberGroup.Use(middleware.RoleMiddleware(member))
	memberGroup.GET("/coaches/all", coachController.ListAllCoaches)
	memberGroup.GET("/memberships/me", membershipController.GetMyMembership)

	reassign := api.Group("")
	reassign.Use(middleware.RoleMiddleware(member, owner))
	reassign.PUT("/memberships/:id/coach", membershipController.ReassignCoach)
}
