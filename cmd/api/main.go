package main

import (
	"fmt"
	"net/http"
	"path/filepath"

	"github.com/fieldpay/fieldpay-backend-go/internal/config"
	domainPayroll "github.com/fieldpay/fieldpay-backend-go/internal/domain/payroll"
	appHTTP "github.com/fieldpay/fieldpay-backend-go/internal/handler/http"
	"github.com/fieldpay/fieldpay-backend-go/internal/pkg/cron"
	"github.com/fieldpay/fieldpay-backend-go/internal/pkg/roster"
	"github.com/fieldpay/fieldpay-backend-go/internal/repository/jsondoc"
	attendanceService "github.com/fieldpay/fieldpay-backend-go/internal/service/attendance"
	payrollService "github.com/fieldpay/fieldpay-backend-go/internal/service/payroll"
	receiptService "github.com/fieldpay/fieldpay-backend-go/internal/service/receipt"
	"github.com/fieldpay/fieldpay-backend-go/internal/service/reconcile"
	reportService "github.com/fieldpay/fieldpay-backend-go/internal/service/report"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		return
	}

	attendanceStore, err := jsondoc.NewAttendanceStore(filepath.Join(cfg.Storage.DataDir, "attendance.json"))
	if err != nil {
		fmt.Println("Error opening attendance store:", err)
		return
	}
	receiptStore, err := jsondoc.NewReceiptStore(filepath.Join(cfg.Storage.DataDir, "receipts.json"))
	if err != nil {
		fmt.Println("Error opening receipt store:", err)
		return
	}

	rosterClient := roster.NewClient(cfg.Roster)

	attendanceSvc := attendanceService.NewAttendanceService(attendanceStore, rosterClient)
	payrollSvc := payrollService.NewPayrollService(attendanceSvc, domainPayroll.WeekdayCalendar{})
	reconciler := reconcile.NewReconciler()
	receiptSvc := receiptService.NewReceiptService(receiptStore, rosterClient, payrollSvc, reconciler)
	reportSvc := reportService.NewReportService(rosterClient, receiptStore, attendanceStore, payrollSvc)

	workerHandler := appHTTP.NewWorkerHandler(rosterClient)
	attendanceHandler := appHTTP.NewAttendanceHandler(attendanceSvc)
	payrollHandler := appHTTP.NewPayrollHandler(payrollSvc, rosterClient)
	receiptHandler := appHTTP.NewReceiptHandler(receiptSvc)
	reportHandler := appHTTP.NewReportHandler(reportSvc)

	router := appHTTP.NewRouter(
		cfg,
		workerHandler,
		attendanceHandler,
		payrollHandler,
		receiptHandler,
		reportHandler,
	)

	scheduler := cron.NewScheduler()
	scheduler.AddJob("roster-refresh", cfg.Roster.RefreshInterval, rosterClient.Refresh)
	scheduler.Start()
	defer scheduler.Stop()

	port := fmt.Sprintf(":%d", cfg.App.Port)
	fmt.Printf("Server running at http://localhost%s\n", port)
	if err := http.ListenAndServe(port, router); err != nil {
		fmt.Println("Server error:", err)
	}
}
