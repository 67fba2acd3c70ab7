package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pavannsshetty7022/abbrevify/internal/auth"
)

var (
	registerName     string
	registerEmail    string
	registerPassword string
)

var registerCmd = &cobra.Command{
	Use:   "register",
	Short: "Create an account on the auth server",
	RunE:  runRegister,
}

func init() {
	registerCmd.Flags().StringVar(&registerName, "name", "", "full name")
	registerCmd.Flags().StringVar(&registerEmail, "email", "", "email address")
	registerCmd.Flags().StringVar(&registerPassword, "password", "", "password")
	_ = registerCmd.MarkFlagRequired("name")
	_ = registerCmd.MarkFlagRequired("email")
	_ = registerCmd.MarkFlagRequired("password")
	rootCmd.AddCommand(registerCmd)
}

func runRegister(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	client := auth.NewClient(cfg.AuthURL)
	message, err := client.Register(cmd.Context(), registerName, registerEmail, registerPassword)
	if err != nil {
		return err
	}
	if message == "" {
		message = "Account created. You can now log in."
	}
	fmt.Println(message)
	return nil
}
