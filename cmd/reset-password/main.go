package main

import (
	"errors"
	"fmt"
	"os"

	"go-clinic-staff/internal/model"
	"go-clinic-staff/internal/repository"
	"go-clinic-staff/pkg/database"
	"go-clinic-staff/pkg/logger"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

func main() {
	if err := newRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	var login, password string

	cmd := &cobra.Command{
		Use:   "reset-password",
		Short: "Reset a staff member's login password",
		RunE: func(cmd *cobra.Command, args []string) error {
			envErr := godotenv.Load()
			log := logger.New(os.Getenv("LOG_LEVEL"))
			if envErr != nil {
				log.Warn(".env file not found, relying on system env")
			}

			if len(password) < 6 {
				return errors.New("password must be at least 6 characters")
			}

			db, err := database.ConnectDB(log)
			if err != nil {
				return err
			}
			repo := repository.NewStaffRepo(db)

			staff, err := repo.FindByLoginEmail(login)
			if err != nil {
				return fmt.Errorf("staff login %q: %w", login, err)
			}

			var hashed model.Staff
			if err := hashed.SetPassword(password); err != nil {
				return fmt.Errorf("hash password: %w", err)
			}
			if err := repo.UpdatePassword(staff.ID, *hashed.Password); err != nil {
				return fmt.Errorf("update password: %w", err)
			}

			log.WithStaff(staff.ID.String(), "reset-password").Info("password reset")
			fmt.Fprintf(cmd.OutOrStdout(), "Password for %s (%s) has been reset\n", login, staff.FullName())
			return nil
		},
	}

	cmd.Flags().StringVar(&login, "login", "", "staff login email or username")
	cmd.Flags().StringVar(&password, "password", "", "new password (min 6 characters)")
	_ = cmd.MarkFlagRequired("login")
	_ = cmd.MarkFlagRequired("password")

	return cmd
}
