package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/photodeck/photodeck-go/api"
)

var (
	registerTenantID  int64
	registerEmail     string
	registerFullName  string
	registerSuperuser bool
)

var registerCmd = &cobra.Command{
	Use:   "register",
	Short: "Create a user within an existing tenant",
	RunE: func(cmd *cobra.Command, args []string) error {
		password, err := readPassword()
		if err != nil {
			return err
		}

		user, err := conn.Register(cmd.Context(), api.RegisterRequest{
			TenantID:    registerTenantID,
			Email:       registerEmail,
			Password:    password,
			FullName:    registerFullName,
			IsSuperuser: registerSuperuser,
		})
		if err != nil {
			return err
		}
		fmt.Printf("registered %s (user %d, tenant %d)\n", user.Email, user.ID, user.TenantID)
		return nil
	},
}

func init() {
	registerCmd.Flags().Int64Var(&registerTenantID, "tenant-id", 0, "tenant the user belongs to")
	registerCmd.Flags().StringVarP(&registerEmail, "email", "e", "", "email address")
	registerCmd.Flags().StringVar(&registerFullName, "full-name", "", "display name")
	registerCmd.Flags().BoolVar(&registerSuperuser, "superuser", false, "grant superuser rights")
	registerCmd.MarkFlagRequired("tenant-id")
	registerCmd.MarkFlagRequired("email")
	rootCmd.AddCommand(registerCmd)
}
