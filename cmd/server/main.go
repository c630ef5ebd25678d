package main

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/Field-devs/CentralDeAuto-sub000/internal/address"
	"github.com/Field-devs/CentralDeAuto-sub000/internal/cep"
	"github.com/Field-devs/CentralDeAuto-sub000/internal/config"
	"github.com/Field-devs/CentralDeAuto-sub000/internal/db"
	"github.com/Field-devs/CentralDeAuto-sub000/internal/domain"
	"github.com/Field-devs/CentralDeAuto-sub000/internal/export"
	"github.com/Field-devs/CentralDeAuto-sub000/internal/importer"
	"github.com/Field-devs/CentralDeAuto-sub000/internal/middleware"
	"github.com/Field-devs/CentralDeAuto-sub000/internal/repository"

	"github.com/google/uuid"
	"github.com/rs/cors"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func main() {
	logger, err := zap.NewProduction()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer func() { _ = logger.Sync() }()

	root := &cobra.Command{
		Use:           "centraldeauto",
		Short:         "Fleet back-office bulk import service",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	var configPath string
	root.PersistentFlags().StringVar(&configPath, "config", ".", "directory holding config.yaml")

	root.AddCommand(serveCmd(logger, &configPath))
	root.AddCommand(migrateCmd(logger, &configPath))
	root.AddCommand(importCmd(logger, &configPath))
	root.AddCommand(orgCmd(&configPath))

	if err := root.Execute(); err != nil {
		logger.Fatal("command failed", zap.Error(err))
	}
}

func serveCmd(logger *zap.Logger, configPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP server",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(*configPath)
			if err != nil {
				return err
			}

			ctx, cancel := context.WithCancel(cmd.Context())
			defer cancel()

			conn, err := db.NewConnection(ctx, cfg.Database)
			if err != nil {
				return fmt.Errorf("failed to connect to database: %w", err)
			}
			defer conn.Close()

			if err := db.RunMigrations(cfg.Database); err != nil {
				return fmt.Errorf("failed to run migrations: %w", err)
			}

			importService, logRepo := buildImportService(conn, logger)

			exportService := export.NewService()
			exportHandler := export.NewHTTPHandler(exportService, logRepo, importer.TemplateColumns)
			cepHandler := cep.NewHTTPHandler(cep.NewClient(cfg.CEP.BaseURL))

			mux := http.NewServeMux()
			mux.Handle("/imports", importer.NewHTTPHandler(importService))
			mux.HandleFunc("/imports/template", exportHandler.Template)
			mux.HandleFunc("/imports/errors", exportHandler.ErrorLog)
			mux.HandleFunc("/addresses/lookup", cepHandler.Lookup)
			mux.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusOK)
			})

			corsHandler := cors.New(cors.Options{
				AllowedOrigins:   cfg.Server.AllowedOrigins,
				AllowCredentials: true,
				AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
				AllowedHeaders:   []string{"*"},
			})

			server := &http.Server{
				Addr:         cfg.Server.Addr,
				Handler:      corsHandler.Handler(middleware.Logging(logger)(mux)),
				ReadTimeout:  15 * time.Second,
				WriteTimeout: 60 * time.Second,
				IdleTimeout:  60 * time.Second,
			}

			go func() {
				logger.Info("starting server", zap.String("addr", cfg.Server.Addr))
				if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
					logger.Fatal("failed to start server", zap.Error(err))
				}
			}()

			quit := make(chan os.Signal, 1)
			signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
			<-quit
			logger.Info("shutting down server")

			shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
			defer shutdownCancel()

			if err := server.Shutdown(shutdownCtx); err != nil {
				return fmt.Errorf("server forced to shutdown: %w", err)
			}

			logger.Info("server exited")
			return nil
		},
	}
}

func migrateCmd(logger *zap.Logger, configPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Apply database migrations and exit",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(*configPath)
			if err != nil {
				return err
			}
			if err := db.RunMigrations(cfg.Database); err != nil {
				return err
			}
			logger.Info("migrations applied")
			return nil
		},
	}
}

func importCmd(logger *zap.Logger, configPath *string) *cobra.Command {
	var (
		filePath string
		orgID    string
		kind     string
	)

	cmd := &cobra.Command{
		Use:   "import",
		Short: "Import a spreadsheet from the local filesystem",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(*configPath)
			if err != nil {
				return err
			}

			organizationID, err := uuid.Parse(orgID)
			if err != nil {
				return fmt.Errorf("invalid organization id: %w", err)
			}

			importKind := domain.ImportKind(kind)
			if !importKind.Valid() {
				return fmt.Errorf("invalid kind %q", kind)
			}

			file, err := os.Open(filePath)
			if err != nil {
				return fmt.Errorf("failed to open %s: %w", filePath, err)
			}
			defer file.Close()

			ctx := cmd.Context()
			conn, err := db.NewConnection(ctx, cfg.Database)
			if err != nil {
				return fmt.Errorf("failed to connect to database: %w", err)
			}
			defer conn.Close()

			importService, _ := buildImportService(conn, logger)

			summary, err := importService.Import(ctx, importer.Request{
				OrganizationID: organizationID,
				Kind:           importKind,
				FileName:       filepath.Base(filePath),
				Data:           file,
			})
			if err != nil {
				return err
			}

			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			return enc.Encode(summary)
		},
	}

	cmd.Flags().StringVar(&filePath, "file", "", "spreadsheet to import (.csv or .xlsx)")
	cmd.Flags().StringVar(&orgID, "org", "", "organization id")
	cmd.Flags().StringVar(&kind, "kind", "", "entity kind: driver, customer or vehicle")
	_ = cmd.MarkFlagRequired("file")
	_ = cmd.MarkFlagRequired("org")
	_ = cmd.MarkFlagRequired("kind")

	return cmd
}

func orgCmd(configPath *string) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "org",
		Short: "Manage organizations",
	}

	var name string
	create := &cobra.Command{
		Use:   "create",
		Short: "Create an organization and print its id",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withOrganizationRepo(cmd.Context(), *configPath, func(ctx context.Context, repo repository.OrganizationRepository) error {
				org, err := repo.Create(ctx, domain.NewOrganization(name))
				if err != nil {
					return err
				}
				_, err = fmt.Fprintln(cmd.OutOrStdout(), org.ID)
				return err
			})
		},
	}
	create.Flags().StringVar(&name, "name", "", "organization name")
	_ = create.MarkFlagRequired("name")

	list := &cobra.Command{
		Use:   "list",
		Short: "List organizations",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withOrganizationRepo(cmd.Context(), *configPath, func(ctx context.Context, repo repository.OrganizationRepository) error {
				organizations, err := repo.List(ctx)
				if err != nil {
					return err
				}
				for _, org := range organizations {
					if _, err := fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\n", org.ID, org.Name); err != nil {
						return err
					}
				}
				return nil
			})
		},
	}

	cmd.AddCommand(create, list)
	return cmd
}

func withOrganizationRepo(ctx context.Context, configPath string, fn func(context.Context, repository.OrganizationRepository) error) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}

	conn, err := db.NewConnection(ctx, cfg.Database)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	defer conn.Close()

	return fn(ctx, repository.NewOrganizationRepository(conn.Pool))
}

func buildImportService(conn *db.Connection, logger *zap.Logger) (*importer.Service, repository.ImportLogRepository) {
	organizationRepo := repository.NewOrganizationRepository(conn.Pool)
	stateRepo := repository.NewStateRepository(conn.Pool)
	cityRepo := repository.NewCityRepository(conn.Pool)
	neighborhoodRepo := repository.NewNeighborhoodRepository(conn.Pool)
	streetRepo := repository.NewStreetRepository(conn.Pool)
	driverRepo := repository.NewDriverRepository(conn.Pool)
	customerRepo := repository.NewCustomerRepository(conn.Pool)
	vehicleRepo := repository.NewVehicleRepository(conn.Pool)
	driverAddressRepo := repository.NewDriverAddressRepository(conn.Pool)
	logRepo := repository.NewImportLogRepository(conn.Pool)

	resolver := address.NewResolver(stateRepo, cityRepo, neighborhoodRepo, streetRepo)

	service := importer.NewService(
		organizationRepo,
		driverRepo,
		customerRepo,
		vehicleRepo,
		driverAddressRepo,
		resolver,
		logRepo,
		logger,
	)
	return service, logRepo
}
