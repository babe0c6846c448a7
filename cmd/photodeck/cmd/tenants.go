package cmd

import (
	"fmt"
	"os"
	"strconv"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/photodeck/photodeck-go/api"
)

// tenantsCmd lists tenants and applies the dashboard's fallback policy: a
// persisted selection pointing at a tenant the user can no longer see falls
// back to the first available one.
var tenantsCmd = &cobra.Command{
	Use:   "tenants",
	Short: "List available tenants",
	RunE: func(cmd *cobra.Command, args []string) error {
		list, err := conn.Tenants(cmd.Context())
		if err != nil {
			return err
		}

		current := session.Current().TenantID
		if current != nil && len(list) > 0 && !containsTenant(list, *current) {
			session.SelectTenant(&list[0].ID)
			fmt.Fprintf(os.Stderr, "tenant %d is no longer available; switched to %q\n", *current, list[0].Slug)
			current = session.Current().TenantID
		}

		w := tabwriter.NewWriter(os.Stdout, 0, 8, 2, ' ', 0)
		fmt.Fprintln(w, "  \tID\tSLUG\tNAME\tACTIVE")
		for _, tenant := range list {
			marker := " "
			if current != nil && tenant.ID == *current {
				marker = "*"
			}
			fmt.Fprintf(w, "%s\t%d\t%s\t%s\t%t\n", marker, tenant.ID, tenant.Slug, tenant.Name, tenant.IsActive)
		}
		return w.Flush()
	},
}

func containsTenant(list []api.Tenant, id int64) bool {
	for _, t := range list {
		if t.ID == id {
			return true
		}
	}
	return false
}

var useCmd = &cobra.Command{
	Use:   "use <tenant-id|->",
	Short: "Select the active tenant (\"use -\" clears it)",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if args[0] == "-" {
			session.SelectTenant(nil)
			fmt.Println("tenant selection cleared")
			return nil
		}
		id, err := strconv.ParseInt(args[0], 10, 64)
		if err != nil {
			return fmt.Errorf("invalid tenant id %q", args[0])
		}
		session.SelectTenant(&id)
		fmt.Printf("active tenant is now %d\n", id)
		return nil
	},
}

var (
	createTenantName    string
	createTenantSlug    string
	createTenantDomain  string
	createTenantContact string
)

var createTenantCmd = &cobra.Command{
	Use:   "create-tenant",
	Short: "Provision a new tenant (superusers only)",
	RunE: func(cmd *cobra.Command, args []string) error {
		req := api.TenantCreateRequest{
			Name: createTenantName,
			Slug: createTenantSlug,
		}
		if createTenantDomain != "" {
			req.CustomDomain = &createTenantDomain
		}
		if createTenantContact != "" {
			req.ContactEmail = &createTenantContact
		}

		tenant, err := conn.CreateTenant(cmd.Context(), req)
		if err != nil {
			return err
		}
		fmt.Printf("created tenant %d (%s)\n", tenant.ID, tenant.Slug)
		return nil
	},
}

func init() {
	createTenantCmd.Flags().StringVar(&createTenantName, "name", "", "tenant display name")
	createTenantCmd.Flags().StringVar(&createTenantSlug, "slug", "", "URL-safe tenant slug")
	createTenantCmd.Flags().StringVar(&createTenantDomain, "domain", "", "custom domain")
	createTenantCmd.Flags().StringVar(&createTenantContact, "contact-email", "", "contact email")
	createTenantCmd.MarkFlagRequired("name")
	createTenantCmd.MarkFlagRequired("slug")
	rootCmd.AddCommand(tenantsCmd)
	rootCmd.AddCommand(useCmd)
	rootCmd.AddCommand(createTenantCmd)
}
