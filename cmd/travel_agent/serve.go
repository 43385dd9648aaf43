package main

import (
	"context"
	"fmt"
	"log"

	"github.com/spf13/cobra"

	"github.com/jonathan/travel-planner/internal/config"
	"github.com/jonathan/travel-planner/internal/profilestore"
	"github.com/jonathan/travel-planner/internal/server"
)

var (
	servePort       int
	serveConfigPath string
	serveDBURL      string
	serveOrigins    []string
	serveVerbose    bool
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the REST API server",
	Long:  `Start an HTTP server that exposes REST endpoints for trip planning, cost estimation, input analysis and travel profiles.`,
	RunE:  runServe,
}

func init() {
	serveCmd.Flags().IntVar(&servePort, "port", 8080, "Port to listen on")
	serveCmd.Flags().StringVar(&serveConfigPath, "config", "", "Path to a JSON config file")
	serveCmd.Flags().StringVar(&serveDBURL, "db-url", "", "PostgreSQL URL for the profile store (default: in-memory)")
	serveCmd.Flags().StringSliceVar(&serveOrigins, "origin", nil, "Allowed CORS origin (repeatable)")
	serveCmd.Flags().BoolVarP(&serveVerbose, "verbose", "v", false, "Log each request")
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, _ []string) error {
	cfg := &config.Config{}
	if serveConfigPath != "" {
		loaded, err := config.Load(serveConfigPath)
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		cfg = loaded
	}

	// Flags win over the config file, the config file over the environment.
	if cmd.Flags().Changed("port") || cfg.Port == 0 {
		cfg.Port = servePort
	}
	if cmd.Flags().Changed("db-url") {
		cfg.DatabaseURL = serveDBURL
	}
	if cmd.Flags().Changed("origin") {
		cfg.AllowedOrigins = serveOrigins
	}
	if cmd.Flags().Changed("verbose") {
		cfg.Verbose = serveVerbose
	}
	cfg.ApplyEnv()

	if err := cfg.Validate(); err != nil {
		return err
	}

	var profiles profilestore.Store
	if cfg.DatabaseURL != "" {
		pg, err := profilestore.ConnectPostgres(context.Background(), cfg.DatabaseURL)
		if err != nil {
			return fmt.Errorf("failed to connect to database: %w", err)
		}
		defer pg.Close()
		profiles = pg
		log.Printf("using postgres profile store")
	} else {
		profiles = profilestore.NewMemory()
		log.Printf("using in-memory profile store")
	}

	srv := server.New(server.Config{
		Port:           cfg.Port,
		AllowedOrigins: cfg.AllowedOrigins,
		Profiles:       profiles,
		Verbose:        cfg.Verbose,
	})

	return srv.Start()
}
