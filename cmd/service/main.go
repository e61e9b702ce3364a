package main

import (
	"os"
	"os/signal"
	"syscall"

	flag "github.com/spf13/pflag"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/auriaahmad/civil-defence/api"
	"github.com/auriaahmad/civil-defence/db"
)

func main() {
	// define flags
	flag.StringP("host", "h", "0.0.0.0", "listen address")
	flag.IntP("port", "p", 8080, "listen port")
	flag.StringP("secret", "s", "", "API secret")
	flag.String("mongo-url", "", "The URL of the MongoDB server (empty runs the in-memory store)")
	flag.String("mongo-db", "civil-defence", "The name of the MongoDB database")
	flag.String("admin-user", "admin", "bootstrap admin username")
	flag.String("admin-pass", "", "bootstrap admin password (min 8 characters)")
	flag.String("log-level", "debug", "log level (debug, info, warn, error)")
	// parse flags
	flag.Parse()
	// initialize Viper
	viper.SetEnvPrefix("CIVILDEFENCE")
	if err := viper.BindPFlags(flag.CommandLine); err != nil {
		panic(err)
	}
	viper.AutomaticEnv()
	// initialize the logger
	initLogger(viper.GetString("log-level"))
	// read the configuration
	host := viper.GetString("host")
	port := viper.GetInt("port")
	secret := viper.GetString("secret")
	if secret == "" {
		zap.S().Fatal("secret is required")
	}
	mongoURL := viper.GetString("mongo-url")
	mongoDB := viper.GetString("mongo-db")
	// initialize the volunteer store
	var store db.Store
	if mongoURL != "" {
		mongoStore, err := db.NewMongoStorage(mongoURL, mongoDB)
		if err != nil {
			zap.S().Fatalf("could not create the MongoDB database: %v", err)
		}
		store = mongoStore
	} else {
		zap.S().Warn("no mongo-url provided, running with the in-memory store")
		store = db.NewMemStorage()
	}
	defer store.Close()
	// seed the bootstrap admin account if configured
	if adminPass := viper.GetString("admin-pass"); adminPass != "" {
		if len(adminPass) < 8 {
			zap.S().Fatal("admin-pass must be at least 8 characters")
		}
		adminUser := viper.GetString("admin-user")
		if err := api.SeedAdmin(store, adminUser, adminPass); err != nil {
			zap.S().Fatalf("could not create the bootstrap admin: %v", err)
		}
		zap.S().Infow("bootstrap admin ready", "username", adminUser)
	}
	// create the local API server
	api.New(&api.Config{
		Host:   host,
		Port:   port,
		Secret: secret,
		DB:     store,
	}).Start()
	// wait forever, as the server is running in a goroutine
	zap.S().Infow("server started", "host", host, "port", port)
	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)
	<-c
}

// initLogger configures the global zap logger at the given level.
func initLogger(level string) {
	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		lvl = zapcore.DebugLevel
	}
	cfg := zap.NewDevelopmentConfig()
	cfg.Level = zap.NewAtomicLevelAt(lvl)
	logger, err := cfg.Build()
	if err != nil {
		panic(err)
	}
	zap.ReplaceGlobals(logger)
}
