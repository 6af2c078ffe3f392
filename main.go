package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/dwnGnL/paymentService/db"
	"github.com/dwnGnL/paymentService/pkg/logging"
	"github.com/dwnGnL/paymentService/pkg/pretty"
	"github.com/dwnGnL/paymentService/pkg/setting"
	"github.com/dwnGnL/paymentService/pkg/worker"
	"github.com/dwnGnL/paymentService/routes"
	"github.com/getsentry/sentry-go"
	"github.com/gin-gonic/gin"
)

var wg sync.WaitGroup

func init() {
	setting.Setup("config/config.json")
	logging.Setup(setting.Config.Log.Level)
	setupSentry()
	db.Setup()
	if !setting.Config.AppConf.Debug {
		gin.SetMode(gin.ReleaseMode)
	}
}

func setupSentry() {
	if setting.Config.Sentry.DSN == "" {
		return
	}
	err := sentry.Init(sentry.ClientOptions{
		Dsn:         setting.Config.Sentry.DSN,
		Environment: setting.Config.Sentry.Environment,
		ServerName:  setting.Config.AppConf.ServerName,
	})
	if err != nil {
		pretty.LoglnWarn("sentry.Init:", err)
	}
}

func startJobs(ctx context.Context) {
	interval := setting.Config.AppConf.StatsInterval
	if interval <= 0 {
		return
	}
	wg.Add(1)
	go func() {
		defer wg.Done()
		worker.Start(ctx, "payment-stats", routes.StatsJob(db.GetDB()), time.Duration(interval)*time.Second)
	}()
}

func main() {
	pretty.Logln("[MAIN] Work has started!")
	defer deferFunc()
	routers := routes.Init()
	endPoint := fmt.Sprintf(":%d", setting.Config.AppConf.Port)
	maxHeaderBytes := 1 << 20

	server := &http.Server{
		Addr:           endPoint,
		Handler:        routers,
		ReadTimeout:    time.Duration(setting.Config.AppConf.ReadTimeout) * time.Second,
		WriteTimeout:   time.Duration(setting.Config.AppConf.WriteTimeout) * time.Second,
		MaxHeaderBytes: maxHeaderBytes,
	}

	jobsCtx, stopJobs := context.WithCancel(context.Background())
	startJobs(jobsCtx)

	pretty.Logf("start http -%s- server listening %s", setting.Config.AppConf.ServerName, endPoint)

	go func() {
		// service connections
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			pretty.LoglnFatal("listen:", err)
		}
	}()

	quit := make(chan os.Signal, 1)

	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	pretty.Logln("Shutdown Server ...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		pretty.LoglnWarn("Server Shutdown:", err)
	}

	stopJobs()
	wg.Wait()
}

func deferFunc() {
	sentry.Flush(2 * time.Second)
	pretty.Logln("[MAIN] Work has stopped!")
	db.CloseDB()
}
