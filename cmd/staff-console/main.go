package main

import (
	"fmt"
	"os"

	"go-clinic-staff/internal/console"
	"go-clinic-staff/internal/model"
	"go-clinic-staff/internal/repository"
	"go-clinic-staff/internal/service"
	"go-clinic-staff/pkg/database"
	"go-clinic-staff/pkg/logger"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

func main() {
	if err := newRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	var (
		demo  bool
		actor string
	)

	cmd := &cobra.Command{
		Use:   "staff-console",
		Short: "Browse and edit clinic staff from the terminal",
		RunE: func(cmd *cobra.Command, args []string) error {
			envErr := godotenv.Load()
			// stdout is reserved for the TUI.
			level := os.Getenv("LOG_LEVEL")
			if level == "" {
				level = "warn"
			}
			log := logger.NewWithOutput(level, os.Stderr)
			if envErr != nil {
				log.Debug(".env file not found, relying on system env")
			}

			var (
				staffRepo   repository.StaffRepository
				patientRepo repository.PatientRepository
			)
			if demo {
				staffRepo = repository.NewMemoryStaffRepo()
				patientRepo = repository.NewMemoryPatientRepo(model.DemoPatients()...)
			} else {
				db, err := database.ConnectDB(log)
				if err != nil {
					return fmt.Errorf("connect database: %w", err)
				}
				staffRepo = repository.NewStaffRepo(db)
				patientRepo = repository.NewPatientRepo(db)
			}

			svc := service.NewStaffService(staffRepo, patientRepo, nil, log)
			_, err := tea.NewProgram(console.NewApp(svc, actor), tea.WithAltScreen()).Run()
			return err
		},
	}

	cmd.Flags().BoolVar(&demo, "demo", false, "use an in-memory store seeded with demo patients")
	cmd.Flags().StringVar(&actor, "actor", "console", "name recorded as creator/updater of changes")

	return cmd
}
