package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/pavannsshetty7022/abbrevify/internal/auth"
	"github.com/pavannsshetty7022/abbrevify/internal/store"
)

var (
	loginEmail    string
	loginPassword string
)

var loginCmd = &cobra.Command{
	Use:   "login",
	Short: "Log in and remember the account locally",
	RunE:  runLogin,
}

var logoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "Forget the locally remembered account",
	RunE:  runLogout,
}

func init() {
	loginCmd.Flags().StringVar(&loginEmail, "email", "", "email address")
	loginCmd.Flags().StringVar(&loginPassword, "password", "", "password")
	_ = loginCmd.MarkFlagRequired("email")
	_ = loginCmd.MarkFlagRequired("password")
	rootCmd.AddCommand(loginCmd)
	rootCmd.AddCommand(logoutCmd)
}

func runLogin(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	client := auth.NewClient(cfg.AuthURL)
	user, message, err := client.Login(cmd.Context(), loginEmail, loginPassword)
	if err != nil {
		return err
	}
	if user == nil {
		return fmt.Errorf("login succeeded but the server returned no account")
	}

	if err := store.Save(cfg.UserPath(), user); err != nil {
		return fmt.Errorf("saving account: %w", err)
	}
	if message == "" {
		message = fmt.Sprintf("Logged in as %s.", user.FullName)
	}
	fmt.Println(message)
	return nil
}

func runLogout(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if err := os.Remove(cfg.UserPath()); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("forgetting account: %w", err)
	}
	fmt.Println("Logged out.")
	return nil
}
