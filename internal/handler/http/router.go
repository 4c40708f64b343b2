package http

import (
	"log/slog"
	"os"

	"github.com/fieldpay/fieldpay-backend-go/internal/config"
	"github.com/fieldpay/fieldpay-backend-go/internal/handler/http/middleware"
	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
)

func NewRouter(
	cfg *config.Config,
	workerHandler WorkerHandler,
	attendanceHandler AttendanceHandler,
	payrollHandler PayrollHandler,
	receiptHandler ReceiptHandler,
	reportHandler ReportHandler,
) *chi.Mux {
	r := chi.NewRouter()
	logFormat := httplog.SchemaECS.Concise(false)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "fieldpay"),
		slog.String("version", "v1.0.0"),
		slog.String("env", cfg.App.Env),
	)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{cfg.CORS.AllowedOrigin},
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-Account-ID"},
		ExposedHeaders:   []string{"Link"},
		MaxAge:           300,
	}))

	r.Use(httplog.RequestLogger(logger, &httplog.Options{
		Level:  slog.LevelDebug,
		Schema: httplog.SchemaECS,
	}))

	r.Use(chiMiddleware.AllowContentEncoding("application/json"))
	r.Use(chiMiddleware.CleanPath)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.Heartbeat("/"))
	r.Use(middleware.WithAccountID)

	r.Route("/api/v1", func(r chi.Router) {

		r.Get("/workers", workerHandler.List)

		r.Route("/attendance", func(r chi.Router) {
			r.Put("/{workerId}", attendanceHandler.Mark)
			r.Get("/{workerId}", attendanceHandler.Get)
			r.Delete("/{workerId}", attendanceHandler.Delete)
		})

		r.Route("/payroll", func(r chi.Router) {
			r.Get("/{workerId}/current", payrollHandler.Figures)
		})

		r.Route("/receipts", func(r chi.Router) {
			r.Post("/", receiptHandler.Create)
			r.Get("/", receiptHandler.List)
			r.Post("/export/{workerId}", receiptHandler.Export)
			r.Get("/worker/{workerId}", receiptHandler.ForWorker)
			r.Patch("/{id}/paid", receiptHandler.SetPaid)
		})

		r.Route("/reports", func(r chi.Router) {
			r.Get("/monthly", reportHandler.Monthly)
			r.Get("/stats", reportHandler.Stats)
			r.Get("/overview", reportHandler.Overview)
		})
	})
	return r
}
