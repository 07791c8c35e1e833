package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/bobmcallan/insurancebuddy/internal/app"
	"github.com/bobmcallan/insurancebuddy/internal/catalog"
	"github.com/bobmcallan/insurancebuddy/internal/common"
)

var superuserFlags app.SuperuserRequest

var createSuperuserCmd = &cobra.Command{
	Use:   "create-superuser",
	Short: "Create the admin account if it does not exist",
	Long: `Creates an admin account for the JSON API. Flags override the
BUDDY_SUPERUSER_USERNAME, BUDDY_SUPERUSER_PASSWORD and BUDDY_SUPERUSER_EMAIL
environment variables. An existing account is left unchanged.`,
	RunE: runCreateSuperuser,
}

var checkCatalogCmd = &cobra.Command{
	Use:   "check-catalog [path]",
	Short: "Parse the plan catalog and print a summary",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runCheckCatalog,
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		common.LoadVersionFromFile()
		fmt.Fprintln(cmd.OutOrStdout(), common.GetFullVersion())
	},
}

func init() {
	f := createSuperuserCmd.Flags()
	f.StringVar(&superuserFlags.Username, "username", "", "admin username")
	f.StringVar(&superuserFlags.Password, "password", "", "admin password")
	f.StringVar(&superuserFlags.Email, "email", "", "admin email")
}

// mergeSuperuserRequest fills unset flag values from the environment.
func mergeSuperuserRequest(flags, env app.SuperuserRequest) app.SuperuserRequest {
	req := app.SuperuserRequest{
		Username: strings.TrimSpace(flags.Username),
		Password: flags.Password,
		Email:    strings.TrimSpace(flags.Email),
	}
	if req.Username == "" {
		req.Username = env.Username
	}
	if req.Password == "" {
		req.Password = env.Password
	}
	if req.Email == "" {
		req.Email = env.Email
	}
	return req
}

func runCreateSuperuser(cmd *cobra.Command, args []string) error {
	req := mergeSuperuserRequest(superuserFlags, app.SuperuserRequestFromEnv())
	if req.Username == "" || req.Password == "" {
		return fmt.Errorf("username and password are required (flags or BUDDY_SUPERUSER_* env)")
	}

	a, err := app.NewApp(configPath)
	if err != nil {
		return fmt.Errorf("failed to initialize app: %w", err)
	}
	defer a.Close()

	result, err := app.EnsureSuperuser(cmd.Context(), a.Storage.InternalStore(), a.Logger, req)
	if err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "superuser %q: %s\n", req.Username, result)
	return nil
}

func runCheckCatalog(cmd *cobra.Command, args []string) error {
	path := ""
	if len(args) == 1 {
		path = args[0]
	} else {
		config, err := app.LoadConfig(configPath)
		if err != nil {
			return err
		}
		path = config.Catalog.Path
	}

	plans, err := catalog.LoadFile(path)
	if err != nil {
		return err
	}

	summary := catalog.SummarizePlans(plans)
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "catalog:     %s\n", path)
	fmt.Fprintf(out, "plans:       %d\n", summary.PlanCount)
	fmt.Fprintf(out, "providers:   %d\n", summary.ProviderCount)
	fmt.Fprintf(out, "cities:      %d\n", summary.CityCount)
	fmt.Fprintf(out, "child-ready: %d\n", summary.ChildReady)
	fmt.Fprintf(out, "adult-ready: %d\n", summary.AdultReady)
	fmt.Fprintf(out, "city list:   %s\n", strings.Join(catalog.UniqueCities(plans), ", "))
	return nil
}
