package cmd

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"
)

var (
	loginUsername string
	loginTenant   string
)

var loginCmd = &cobra.Command{
	Use:   "login",
	Short: "Sign in and store the session credential",
	RunE: func(cmd *cobra.Command, args []string) error {
		username := loginUsername
		if username == "" {
			fmt.Print("Email: ")
			line, err := bufio.NewReader(os.Stdin).ReadString('\n')
			if err != nil {
				return err
			}
			username = strings.TrimSpace(line)
		}
		password, err := readPassword()
		if err != nil {
			return err
		}

		tok, err := conn.Login(cmd.Context(), username, password, loginTenant)
		if err != nil {
			return err
		}
		session.Login(tok.AccessToken)

		s := session.Current()
		switch {
		case s.Email != "" && s.TenantID != nil:
			fmt.Printf("signed in as %s (tenant %d)\n", s.Email, *s.TenantID)
		case s.Email != "":
			fmt.Printf("signed in as %s; no tenant selected yet\n", s.Email)
		default:
			fmt.Println("signed in")
		}
		return nil
	},
}

var logoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "Clear the stored session",
	RunE: func(cmd *cobra.Command, args []string) error {
		session.Logout()
		fmt.Println("signed out")
		return nil
	},
}

var whoamiCmd = &cobra.Command{
	Use:   "whoami",
	Short: "Show the signed-in user and active tenant",
	RunE: func(cmd *cobra.Command, args []string) error {
		s := session.Current()
		if s.AccessToken == "" {
			return errors.New("not signed in; run `photodeck login`")
		}
		if s.Email != "" {
			fmt.Printf("email:\t%s\n", s.Email)
		}
		if s.TenantID != nil {
			fmt.Printf("tenant:\t%d\n", *s.TenantID)
		} else {
			fmt.Println("tenant:\tnone selected")
		}
		return nil
	},
}

func readPassword() (string, error) {
	fmt.Print("Password: ")
	fd := int(os.Stdin.Fd())
	if term.IsTerminal(fd) {
		raw, err := term.ReadPassword(fd)
		fmt.Println()
		if err != nil {
			return "", err
		}
		return string(raw), nil
	}
	// piped input
	line, err := bufio.NewReader(os.Stdin).ReadString('\n')
	if err != nil && line == "" {
		return "", err
	}
	return strings.TrimRight(line, "\r\n"), nil
}

func init() {
	loginCmd.Flags().StringVarP(&loginUsername, "username", "u", "", "username (email)")
	loginCmd.Flags().StringVarP(&loginTenant, "tenant", "t", "", "tenant slug, when it cannot be derived from the hostname")
	rootCmd.AddCommand(loginCmd)
	rootCmd.AddCommand(logoutCmd)
	rootCmd.AddCommand(whoamiCmd)
}
