package main

import (
	"context"
	"log"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/fx"

	"github.com/julfkar-mu/khidmat/cmd/fx/account_fx"
	"github.com/julfkar-mu/khidmat/cmd/fx/controllers_fx"
	"github.com/julfkar-mu/khidmat/cmd/fx/db_fx"
	"github.com/julfkar-mu/khidmat/cmd/fx/ledger_fx"
	"github.com/julfkar-mu/khidmat/cmd/fx/member_fx"
	"github.com/julfkar-mu/khidmat/cmd/fx/report_fx"
	"github.com/julfkar-mu/khidmat/internal/api/controllers"
	"github.com/julfkar-mu/khidmat/pkg/middleware"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found")
	}

	app := fx.New(
		db_fx.Module,
		account_fx.Module,
		member_fx.Module,
		ledger_fx.Module,
		report_fx.Module,
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
				log.Printf("Starting HTTP server on port %s", port)
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
	memberController *controllers.MemberController,
	ledgerController *controllers.LedgerController,
	reportController *controllers.ReportController) *gin.Engine {

	r := gin.Default()
	r.Use(gin.Recovery())
	r.Use(middleware.TraceIDMiddleware())
	r.Use(middleware.CORSMiddleware())

	RegisterRoutes(r, accountController, memberController, ledgerController, reportController)

	return r
}

func RegisterRoutes(r *gin.Engine,
	accountController *controllers.AccountController,
	memberController *controllers.MemberController,
	ledgerController *controllers.LedgerController,
	reportController *controllers.ReportController) {

	auth := r.Group("/api/auth")
	auth.POST("/signup", accountController.Signup)
	auth.POST("/login", accountController.Login)

	api := r.Group("/api")
	api.Use(middleware.JWTAuthMiddleware())

	api.POST("/members", memberController.Register)
	api.GET("/members", memberController.List)
	api.PUT("/members/:id/toggle-status", memberController.ToggleStatus)

	api.POST("/payments", ledgerController.RecordPayment)
	api.GET("/payments", ledgerController.ListPayments)
	api.POST("/donations", ledgerController.RecordDonation)
	api.GET("/donations", ledgerController.ListDonations)

	reports := api.Group("/reports")
	reports.GET("/monthly-collection", reportController.MonthlyCollection)
	reports.GET("/monthly-collection-details", reportController.CollectionDetails)
	reports.GET("/monthly-donations", reportController.MonthlyDonations)
	reports.GET("/monthly-donation-details", reportController.DonationDetails)
	reports.GET("/admin-payments", reportController.AdminPayments)
	reports.GET("/paid-members", reportController.PaidMembers)
	reports.GET("/unpaid-members", reportController.UnpaidMembers)
	reports.GET("/pool-balance", reportController.PoolBalance)
}
