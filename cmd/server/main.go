package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/cobra"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/propagation"

	_ "github.com/go-sql-driver/mysql"

	"github.com/campushub/eventcore/config"
	"github.com/campushub/eventcore/handler"
	"github.com/campushub/eventcore/pkg/htmlcert"
	"github.com/campushub/eventcore/pkg/otellib"
	"github.com/campushub/eventcore/repository"
	"github.com/campushub/eventcore/service/certificate"
	"github.com/campushub/eventcore/service/ledger"
)

func startServer() {
	conf := config.Load()
	logger := config.NewLogger(conf.Log)

	tracerProvider, shutdown := otellib.InitOtel("eventcore-api", "local", conf.Jaeger)
	defer shutdown()

	otel.SetTracerProvider(tracerProvider)
	otel.SetTextMapPropagator(propagation.TraceContext{})
	tracer := tracerProvider.Tracer("eventcore")

	db := conf.MySQL.MustConnect()

	provider := repository.NewProvider(db)
	eventRepo := repository.NewEvent()
	userRepo := repository.NewUser()
	regRepo := repository.NewRegistration()
	certRepo := repository.NewCertificate()
	templateRepo := repository.NewTemplate()

	renderer, err := htmlcert.NewRenderer(conf.Certificate)
	if err != nil {
		panic(err)
	}

	ledgerService := ledger.NewIServiceWrapper(
		ledger.NewService(provider, eventRepo, userRepo, regRepo, certRepo),
		tracer, "ledger.",
	)
	certService := certificate.NewIServiceWrapper(
		certificate.NewService(
			provider, eventRepo, userRepo, regRepo,
			certRepo, templateRepo, renderer,
		),
		tracer, "certificate.",
	)

	apiHandler := handler.New(ledgerService, certService)
	router := apiHandler.Router(otellib.Middleware(logger))
	router.Handle("/metrics", promhttp.Handler())

	startHTTPServer(conf, router)
}

func startHTTPServer(conf config.Config, router http.Handler) {
	fmt.Println("HTTP:", conf.Server.HTTP.ListenString())

	httpServer := &http.Server{
		Addr:    conf.Server.HTTP.ListenString(),
		Handler: router,
	}

	done := make(chan struct{})
	go func() {
		defer close(done)

		err := httpServer.ListenAndServe()
		if err != nil && err != http.ErrServerClosed {
			panic(err)
		}
		fmt.Println("Shutdown HTTP server successfully")
	}()

	//--------------------------------
	// Graceful Shutdown
	//--------------------------------
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, os.Kill)
	<-stop

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	err := httpServer.Shutdown(ctx)
	if err != nil {
		panic(err)
	}

	<-done
}

func main() {
	rootCmd := cobra.Command{
		Use: "server",
	}
	rootCmd.AddCommand(
		startServerCommand(),
	)

	err := rootCmd.Execute()
	if err != nil {
		fmt.Println(err)
	}
}

func startServerCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "start",
		Short: "start the server",
		Run: func(cmd *cobra.Command, args []string) {
			startServer()
		},
	}
}
