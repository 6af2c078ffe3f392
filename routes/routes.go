package routes

import (
	"context"
	"net/http"

	"github.com/dwnGnL/paymentService/db"
	"github.com/dwnGnL/paymentService/models"
	"github.com/dwnGnL/paymentService/pkg/e"
	log "github.com/dwnGnL/paymentService/pkg/logging"
	"github.com/dwnGnL/paymentService/pkg/metrics"
	"github.com/dwnGnL/paymentService/pkg/service"
	"github.com/dwnGnL/paymentService/pkg/setting"
	"github.com/dwnGnL/paymentService/pkg/worker"
	"github.com/dwnGnL/paymentService/routes/middleware"
	sentrygin "github.com/getsentry/sentry-go/gin"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	logrus "github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

type handler struct {
	payments *service.PaymentService
	users    *service.UserService
}

func Init() *gin.Engine {
	return Router(db.GetDB(), setting.Config, service.WithLocation(setting.Location()))
}

// Router wires stores, services and middleware over gdb.
func Router(gdb *gorm.DB, conf models.Config, opts ...service.Option) *gin.Engine {
	paymentStore := db.NewPaymentStore(gdb)
	userStore := db.NewUserStore(gdb)
	h := &handler{
		payments: service.NewPaymentService(paymentStore, userStore, opts...),
		users:    service.NewUserService(userStore),
	}

	defaultRouter := gin.New()
	defaultRouter.Use(middleware.RequestID(), log.Logger(logrus.StandardLogger()), middleware.Recovery())
	if conf.Sentry.DSN != "" {
		defaultRouter.Use(sentrygin.New(sentrygin.Options{Repanic: true}))
	}
	defaultRouter.Use(middleware.CORSMiddleware(conf.AppConf.CORSOrigins), middleware.Metrics())

	defaultRouter.GET("/health", health(gdb))
	defaultRouter.GET("/metrics", gin.WrapH(promhttp.Handler()))

	api := defaultRouter.Group("/api", middleware.NewThrottle(conf.Cache).Middleware())
	{
		api.POST("/payments", h.createPayment)
		api.POST("/payments/:id/cancel", h.cancelPayment)
		api.GET("/payments", h.nonCanceledPayments)
		api.GET("/payments/:id", h.cancellationInfo)

		api.POST("/users", h.createUser)
		api.GET("/users/:id/payments", h.userPayments)
		api.DELETE("/users/:id", h.deleteUser)
		api.DELETE("/users/:id/payments/:paymentId", h.removeUserPayment)
	}

	defaultRouter.NoRoute(func(c *gin.Context) {
		e.With(e.NotFound("Page not found")).Write(c)
	})
	return defaultRouter
}

func health(gdb *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		sqlDB, err := gdb.DB()
		if err == nil {
			err = sqlDB.PingContext(c.Request.Context())
		}
		if err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "down"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "up"})
	}
}

// StatsJob refreshes the active payments gauge.
func StatsJob(gdb *gorm.DB) worker.Job {
	store := db.NewPaymentStore(gdb)
	return func(ctx context.Context) error {
		n, err := store.CountActive(ctx)
		if err != nil {
			return err
		}
		metrics.SetActivePayments(n)
		return nil
	}
}
