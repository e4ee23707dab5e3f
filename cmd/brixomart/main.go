package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
	log "github.com/sirupsen/logrus"
	"github.com/urfave/cli/v2"

	appservice "github.com/Brixomart/Brixo-mart/pkg/store/application/service"
	"github.com/Brixomart/Brixo-mart/pkg/store/catalog"
	"github.com/Brixomart/Brixo-mart/pkg/store/domain/model"
	"github.com/Brixomart/Brixo-mart/pkg/store/domain/service"
	"github.com/Brixomart/Brixo-mart/pkg/store/infrastructure/eventlog"
	"github.com/Brixomart/Brixo-mart/pkg/store/infrastructure/geo"
	"github.com/Brixomart/Brixo-mart/pkg/store/infrastructure/inmemory"
	"github.com/Brixomart/Brixo-mart/pkg/store/infrastructure/mysql"
	"github.com/Brixomart/Brixo-mart/pkg/store/transport"
)

const appName = "brixomart"

type config struct {
	ServeAddr string `envconfig:"serve_addr" default:":8080"`
	// DatabaseDSN enables the durable session store and order archive.
	// Left empty, everything runs in memory.
	DatabaseDSN       string        `envconfig:"database_dsn"`
	NominatimBaseURL  string        `envconfig:"nominatim_base_url"`
	PincodeBaseURL    string        `envconfig:"pincode_base_url"`
	LookupTimeout     time.Duration `envconfig:"lookup_timeout" default:"10s"`
	LookupDebounce    time.Duration `envconfig:"lookup_debounce" default:"250ms"`
	StoreLatitude     float64       `envconfig:"store_latitude"`
	StoreLongitude    float64       `envconfig:"store_longitude"`
	HasStorePosition  bool          `envconfig:"has_store_position"`
}

func main() {
	log.SetFormatter(&log.JSONFormatter{})

	app := &cli.App{
		Name:  appName,
		Usage: "Brixo Mart storefront service",
		Commands: []*cli.Command{
			{
				Name:   "serve",
				Usage:  "run the storefront HTTP service",
				Action: runServe,
			},
			{
				Name:   "migrate",
				Usage:  "apply database migrations",
				Action: runMigrate,
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.WithError(err).Fatal("application failed")
	}
}

func loadConfig() (*config, error) {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		log.WithError(err).Warn("could not load .env file")
	}
	var cfg config
	if err := envconfig.Process(appName, &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func runMigrate(_ *cli.Context) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if cfg.DatabaseDSN == "" {
		log.Warn("no database configured, nothing to migrate")
		return nil
	}
	if err := mysql.Migrate(cfg.DatabaseDSN); err != nil {
		return err
	}
	log.Info("migrations applied")
	return nil
}

func runServe(_ *cli.Context) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	var (
		sessions model.SessionRepository
		orders   model.OrderRepository
	)
	if cfg.DatabaseDSN != "" {
		db, err := mysql.Connect(cfg.DatabaseDSN)
		if err != nil {
			return err
		}
		defer db.Close()
		sessions = mysql.NewSessionRepository(db)
		orders = mysql.NewOrderRepository(db)
		log.Info("using mysql session store and order archive")
	} else {
		sessions = inmemory.NewSessionRepository()
		orders = inmemory.NewOrderRepository()
		log.Info("no database configured, running fully in memory")
	}

	dispatcher := eventlog.NewDispatcher(log.StandardLogger())
	cat := catalog.Default()

	cartSvc := service.NewCartService(cat, dispatcher)
	wishlistSvc := service.NewWishlistService(cat, dispatcher)
	orderSvc := service.NewOrderService(orders, cartSvc, dispatcher)
	authSvc := service.NewAuthService(sessions, dispatcher)
	viewRouter := service.NewViewRouter(cat, dispatcher)
	storefront := appservice.NewStorefront(cartSvc, orderSvc, authSvc, dispatcher)

	geoClient := geo.NewClient(cfg.NominatimBaseURL, cfg.PincodeBaseURL, cfg.LookupTimeout)
	var locator geo.Locator = geo.UnavailableLocator{}
	if cfg.HasStorePosition {
		locator = geo.StaticLocator{Coord: geo.Coord{Lat: cfg.StoreLatitude, Lng: cfg.StoreLongitude}}
	}
	homePicker := geo.NewAddressPicker(geoClient, locator, cfg.LookupDebounce, log.StandardLogger())
	paymentPicker := geo.NewAddressPicker(geoClient, locator, cfg.LookupDebounce, log.StandardLogger())

	handler := transport.Router(
		cat, viewRouter, cartSvc, wishlistSvc, orderSvc, authSvc,
		storefront, homePicker, paymentPicker,
	)

	log.WithField("addr", cfg.ServeAddr).Info("starting server")
	srv := startServer(cfg.ServeAddr, handler)
	waitForKillSignal(getKillSignalChan())
	return srv.Shutdown(context.Background())
}

func startServer(addr string, handler http.Handler) *http.Server {
	srv := &http.Server{Addr: addr, Handler: handler}
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.WithError(err).Fatal("failed to start server")
		}
	}()
	return srv
}

func getKillSignalChan() chan os.Signal {
	killSignalChan := make(chan os.Signal, 1)
	signal.Notify(killSignalChan, os.Interrupt, syscall.SIGTERM)
	return killSignalChan
}

func waitForKillSignal(killSignalChan <-chan os.Signal) {
	killSignal := <-killSignalChan
	switch killSignal {
	case os.Interrupt:
		log.Info("Got SIGINT...")
	case syscall.SIGTERM:
		log.Info("Got SIGTERM...")
	}
}
