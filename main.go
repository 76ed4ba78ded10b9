package main

import (
	"log"
	"net/http"
	"os"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/apis"
	"github.com/pocketbase/pocketbase/core"

	"choicedge/commands"
	"choicedge/handlers"
	"choicedge/services"
)

func main() {
	app := pocketbase.New()
	estimator := services.NewEstimator()

	app.RootCmd.AddCommand(commands.NewEstimateCommand(estimator))

	app.OnServe().BindFunc(func(se *core.ServeEvent) error {
		se.Router.GET("/static/{path...}", apis.Static(os.DirFS("./static"), false))

		se.Router.GET("/", handlers.HandleHome())

		// ── Estimate ─────────────────────────────────────────────
		loadEstimate := handlers.EstimateMiddleware(estimator)
		se.Router.POST("/estimate", handlers.HandleEstimateSummary()).BindFunc(loadEstimate)
		se.Router.POST("/estimate/print", handlers.HandleEstimatePrint()).BindFunc(loadEstimate)
		se.Router.POST("/estimate/export/pdf", handlers.HandleEstimateExportPDF()).BindFunc(loadEstimate)
		se.Router.POST("/estimate/export/excel", handlers.HandleEstimateExportExcel()).BindFunc(loadEstimate)

		// Room schedule upload feeding the wizard's per-room step
		se.Router.POST("/estimate/rooms/import", handlers.HandleRoomScheduleImport())

		// Summary page without wizard state goes back to the start
		se.Router.GET("/estimate", func(e *core.RequestEvent) error {
			return e.Redirect(http.StatusFound, "/")
		})

		return se.Next()
	})

	if err := app.Start(); err != nil {
		log.Fatal(err)
	}
}
