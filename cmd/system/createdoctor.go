package system

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/telecare/telecare_backend/config"
	entuser "github.com/telecare/telecare_backend/internal/repo/user"
	"github.com/telecare/telecare_backend/pkg/database"
	"github.com/telecare/telecare_backend/pkg/util/password"
)

// NewCreateDoctorCommand provisions a doctor account. Doctors cannot sign up
// through the API; they are created by operators.
func NewCreateDoctorCommand() *cobra.Command {
	var (
		email           string
		firstName       string
		lastName        string
		specialty       string
		bio             string
		yearsExperience int
	)

	cmd := &cobra.Command{
		Use:   "create-doctor",
		Short: "Provision a doctor account",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfgPath, err := cmd.Root().PersistentFlags().GetString("config")
			if err != nil {
				return fmt.Errorf("failed to get config flag: %w", err)
			}
			cfg, err := config.ReadConfig(filepath.Dir(cfgPath))
			if err != nil {
				return fmt.Errorf("failed to read config: %w", err)
			}

			email = strings.ToLower(strings.TrimSpace(email))
			if email == "" || firstName == "" || lastName == "" || specialty == "" {
				return fmt.Errorf("email, first-name, last-name, and specialty are required")
			}

			client, err := database.NewEntClient(cfg.Database)
			if err != nil {
				return fmt.Errorf("failed to create ent client: %w", err)
			}
			defer client.Close()

			plain := password.Generate(16)
			passHash, err := password.Hash(plain)
			if err != nil {
				return fmt.Errorf("failed to hash password: %w", err)
			}

			timeout := time.Duration(cfg.Server.TimeoutSeconds) * time.Second
			ctx, cancel := context.WithTimeout(context.Background(), timeout)
			defer cancel()

			tx, err := client.Tx(ctx)
			if err != nil {
				return fmt.Errorf("begin tx: %w", err)
			}

			u, err := tx.User.Create().
				SetEmail(email).
				SetPasswordHash(passHash).
				SetRole(entuser.RoleDoctor).
				SetFirstName(firstName).
				SetLastName(lastName).
				Save(ctx)
			if err != nil {
				_ = tx.Rollback()
				return fmt.Errorf("create user: %w", err)
			}

			create := tx.Doctor.Create().
				SetUserID(u.ID).
				SetSpecialty(specialty).
				SetYearsExperience(yearsExperience)
			if bio != "" {
				create = create.SetBio(bio)
			}
			d, err := create.Save(ctx)
			if err != nil {
				_ = tx.Rollback()
				return fmt.Errorf("create doctor: %w", err)
			}

			if err := tx.Commit(); err != nil {
				return fmt.Errorf("commit tx: %w", err)
			}

			fmt.Printf("Doctor created.\n  user_id:   %s\n  doctor_id: %s\n  email:     %s\n  password:  %s\n", u.ID, d.ID, email, plain)
			fmt.Println("Share the password over a secure channel; it is not stored in plain text.")
			return nil
		},
	}

	cmd.Flags().StringVar(&email, "email", "", "doctor login email (required)")
	cmd.Flags().StringVar(&firstName, "first-name", "", "first name (required)")
	cmd.Flags().StringVar(&lastName, "last-name", "", "last name (required)")
	cmd.Flags().StringVar(&specialty, "specialty", "", "medical specialty (required)")
	cmd.Flags().StringVar(&bio, "bio", "", "short biography")
	cmd.Flags().IntVar(&yearsExperience, "years-experience", 0, "years of experience")

	return cmd
}
