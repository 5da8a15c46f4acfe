// Package client provides commands that call a running rpg-campaigns server
package client

import (
	"encoding/json"
	"fmt"
	"maps"
	"slices"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/spf13/cobra"

	"github.com/KirkDiggler/rpg-campaigns/internal/errors"
	"github.com/KirkDiggler/rpg-campaigns/internal/handlers/rest/v1alpha1"
)

var (
	// Connection flags
	serverAddr string
	timeout    time.Duration
)

// ClientCmd is the root command for all client commands
var ClientCmd = &cobra.Command{
	Use:   "client",
	Short: "Client commands for the rpg-campaigns API",
	Long:  `Client commands call a running rpg-campaigns server over HTTP.`,
}

func init() {
	ClientCmd.PersistentFlags().StringVar(&serverAddr, "server", "http://localhost:8080", "rpg-campaigns server address")
	ClientCmd.PersistentFlags().DurationVar(&timeout, "timeout", 30*time.Second, "Request timeout")

	// Player commands
	ClientCmd.AddCommand(listPlayersCmd)
	ClientCmd.AddCommand(createPlayerCmd)
	ClientCmd.AddCommand(deletePlayerCmd)

	ClientCmd.AddCommand(listCampaignsCmd)

	// Character commands
	ClientCmd.AddCommand(listCharactersCmd)
	ClientCmd.AddCommand(createCharacterCmd)
	ClientCmd.AddCommand(deleteCharacterCmd)
	ClientCmd.AddCommand(rollAbilitiesCmd)

	// Catalog commands
	ClientCmd.AddCommand(listClassesCmd)
	ClientCmd.AddCommand(listSpeciesCmd)
	ClientCmd.AddCommand(listBackgroundsCmd)

	// Report commands
	ClientCmd.AddCommand(listReportsCmd)
	ClientCmd.AddCommand(reportCmd)
}

// apiURL joins the server address, the API prefix and path
func apiURL(path string) string {
	base := strings.TrimRight(serverAddr, "/")
	if !strings.Contains(base, "://") {
		base = "http://" + base
	}
	return base + v1alpha1.Prefix + path
}

// call sends one request with the fiber client agent. A non-nil in is sent
// as JSON, a non-nil out receives the decoded response. Error envelopes
// are returned as coded errors.
func call(method, path string, in, out any) error {
	agent := fiber.AcquireAgent()
	req := agent.Request()
	req.Header.SetMethod(method)
	req.SetRequestURI(apiURL(path))
	agent.Timeout(timeout)

	if in != nil {
		agent.JSON(in)
	}

	if err := agent.Parse(); err != nil {
		fiber.ReleaseAgent(agent)
		return fmt.Errorf("failed to build request: %w", err)
	}

	// Bytes releases the agent
	status, body, errs := agent.Bytes()
	if len(errs) > 0 {
		return fmt.Errorf("failed to call %s %s: %w", method, path, errs[0])
	}

	if status >= fiber.StatusBadRequest {
		var envelope errors.ResponseBody
		if err := json.Unmarshal(body, &envelope); err != nil || envelope.Code == "" {
			return fmt.Errorf("server returned %d: %s", status, strings.TrimSpace(string(body)))
		}
		message := envelope.Error
		for _, field := range slices.Sorted(maps.Keys(envelope.Fields)) {
			message += fmt.Sprintf("; %s: %s", field, strings.Join(envelope.Fields[field], ", "))
		}
		return errors.New(envelope.Code, message)
	}

	if out == nil || len(body) == 0 {
		return nil
	}
	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}

// printJSON writes v indented, used where a table would lose detail
func printJSON(cmd *cobra.Command, v any) error {
	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
