// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package cmd

import (
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"
)

// checkCmd groups the client-side entitlement lookups. Each subcommand
// calls the HTTP API acting as the principal given by the global flags.
var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Query entitlements for a tenant",
	Long:  `Resolve the effective plan, feature flags, permissions and resource limits for a tenant.`,
}

var checkPlanCmd = &cobra.Command{
	Use:   "plan",
	Short: "Show the tenant's effective plan",
	Run: func(cmd *cobra.Command, args []string) {
		runCheckRequest(cmd, http.MethodGet, "/api/v0/entitlements/plan")
	},
}

var checkFeaturesCmd = &cobra.Command{
	Use:   "features [code]",
	Short: "Resolve feature flags for the tenant",
	Args:  cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		path := "/api/v0/entitlements/features"
		if len(args) == 1 {
			path += "/" + args[0]
		}
		runCheckRequest(cmd, http.MethodGet, path)
	},
}

var checkPermissionCmd = &cobra.Command{
	Use:   "permission <code>",
	Short: "Resolve a permission for the tenant role",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		runCheckRequest(cmd, http.MethodGet, "/api/v0/entitlements/permissions/"+args[0])
	},
}

var checkLimitCmd = &cobra.Command{
	Use:   "limit <resource>",
	Short: "Check whether the tenant may create one more resource",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		runCheckRequest(cmd, http.MethodPost, "/api/v0/entitlements/limits/"+args[0]+"/check")
	},
}

var checkUsageCmd = &cobra.Command{
	Use:   "usage",
	Short: "Show resource usage against the plan limits",
	Run: func(cmd *cobra.Command, args []string) {
		runCheckRequest(cmd, http.MethodGet, "/api/v0/entitlements/usage")
	},
}

func init() {
	checkCmd.AddCommand(checkPlanCmd)
	checkCmd.AddCommand(checkFeaturesCmd)
	checkCmd.AddCommand(checkPermissionCmd)
	checkCmd.AddCommand(checkLimitCmd)
	checkCmd.AddCommand(checkUsageCmd)

	rootCmd.AddCommand(checkCmd)
}

func runCheckRequest(cmd *cobra.Command, method, path string) {
	if tenantID == "" {
		cmd.PrintErr("--tenant-id is required\n")
		os.Exit(1)
	}

	endpoint := httpEndpoint
	if !strings.HasPrefix(endpoint, "http") {
		endpoint = "http://" + endpoint
	}
	endpoint = strings.TrimSuffix(endpoint, "/")

	req, err := http.NewRequestWithContext(cmd.Context(), method, endpoint+path, nil)
	if err != nil {
		cmd.PrintErr(fmt.Sprintf("failed to build request: %v\n", err))
		os.Exit(1)
	}

	req.Header.Set("X-Tenant-Id", tenantID)
	if tenantRole != "" {
		req.Header.Set("X-Tenant-Role", tenantRole)
	}
	if userID != "" {
		req.Header.Set("X-User-Id", userID)
	}

	client := &http.Client{Timeout: 30 * time.Second}
	resp, err := client.Do(req)
	if err != nil {
		cmd.PrintErr(fmt.Sprintf("request failed: %v\n", err))
		os.Exit(1)
	}
	defer resp.Body.Close()

	body, _ := io.ReadAll(resp.Body)

	if resp.StatusCode == http.StatusNoContent {
		cmd.Println("allowed")
		return
	}

	if resp.StatusCode >= 400 {
		cmd.PrintErr(fmt.Sprintf("api error (status %d): %s\n", resp.StatusCode, string(body)))
		os.Exit(1)
	}

	cmd.Println(string(body))
}
