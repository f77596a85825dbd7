package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	authservice "github.com/AlibekovAA/caption-studio/backend/internal/auth/service"
	"github.com/AlibekovAA/caption-studio/backend/internal/common/bootstrap"
	"github.com/AlibekovAA/caption-studio/backend/internal/common/clock"
	"github.com/AlibekovAA/caption-studio/backend/internal/common/config"
	commoncrypto "github.com/AlibekovAA/caption-studio/backend/internal/common/crypto"
	"github.com/AlibekovAA/caption-studio/backend/internal/common/logger"
	userrepo "github.com/AlibekovAA/caption-studio/backend/internal/user/repository"
)

// Test seams.
var (
	readPassword       = term.ReadPassword
	openUserRepository = func(ctx context.Context, log *logger.Logger) (userrepo.Repository, func(), error) {
		cfg, err := config.LoadDatabaseConfig()
		if err != nil {
			return nil, nil, err
		}
		repo, pool, err := bootstrap.OpenUserRepository(ctx, cfg, log)
		if err != nil {
			return nil, nil, err
		}
		return repo, pool.Close, nil
	}
)

func newUsersCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "users",
		Short: "Manage users",
	}
	cmd.AddCommand(newUsersCreateCmd())
	cmd.AddCommand(newUsersListCmd())
	return cmd
}

func newUsersCreateCmd() *cobra.Command {
	var email, password string

	c := &cobra.Command{
		Use:   "create",
		Short: "Create a user (prompts for the password when --password is omitted)",
		RunE: func(cmd *cobra.Command, args []string) error {
			if password == "" {
				pw, err := promptPassword(cmd.ErrOrStderr())
				if err != nil {
					return err
				}
				password = pw
			}

			hashing, err := config.LoadHashingConfig()
			if err != nil {
				return err
			}

			log := logger.NewNop()
			repo, closeRepo, err := openUserRepository(cmd.Context(), log)
			if err != nil {
				return err
			}
			defer closeRepo()

			svc := authservice.NewAuthService(
				repo,
				commoncrypto.NewBcryptHasher(hashing.BcryptCost),
				commoncrypto.NewUUIDGenerator(),
				nil,
				clock.NewRealClock(),
				log,
			)
			user, err := svc.Register(cmd.Context(), authservice.Credentials{Email: email, Password: password})
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "created user %s (%s)\n", user.Email, user.ID)
			return nil
		},
	}

	c.Flags().StringVar(&email, "email", "", "email address")
	c.Flags().StringVar(&password, "password", "", "password")
	_ = c.MarkFlagRequired("email")
	return c
}

func newUsersListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List users",
		RunE: func(cmd *cobra.Command, args []string) error {
			repo, closeRepo, err := openUserRepository(cmd.Context(), logger.NewNop())
			if err != nil {
				return err
			}
			defer closeRepo()

			users, err := repo.List(cmd.Context())
			if err != nil {
				return err
			}

			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
			fmt.Fprintln(tw, "ID\tEMAIL\tCREATED\tLAST LOGIN")
			for _, u := range users {
				lastLogin := "-"
				if u.LastLogin != nil {
					lastLogin = u.LastLogin.UTC().Format(time.RFC3339)
				}
				fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", u.ID, u.Email, u.CreatedAt.UTC().Format(time.RFC3339), lastLogin)
			}
			return tw.Flush()
		},
	}
}

func promptPassword(w io.Writer) (string, error) {
	fmt.Fprint(w, "Enter password: ")
	pw, err := readPassword(int(os.Stdin.Fd()))
	fmt.Fprintln(w)
	if err != nil {
		return "", fmt.Errorf("read password: %w", err)
	}
	password := strings.TrimRight(string(pw), "\r\n")
	if password == "" {
		return "", errors.New("password must not be empty")
	}
	return password, nil
}
