package cmd

import (
	"bytes"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"os"
	"time"

	"github.com/damage-control/damage-service/internal/config"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var (
	importFile string
	importKind string
	importURL  string
)

var importCmd = &cobra.Command{
	Use:   "import",
	Short: "Bulk-import tickets or orders from a JSON file into a running instance",
	RunE:  runImport,
}

func init() {
	importCmd.Flags().StringVar(&importFile, "file", "", "JSON file holding an array of candidate records (required)")
	importCmd.Flags().StringVar(&importKind, "kind", "tickets", "What to import: tickets or orders")
	importCmd.Flags().StringVar(&importURL, "url", "", "Base URL of the running instance (default http://localhost:$APP_PORT)")
	_ = importCmd.MarkFlagRequired("file")
}

func runImport(cmd *cobra.Command, args []string) error {
	_ = godotenv.Load(".env")
	_ = godotenv.Load("../.env")
	if importKind != "tickets" && importKind != "orders" {
		return fmt.Errorf("import: kind must be tickets or orders, got %q", importKind)
	}
	if importURL == "" {
		cfg, err := config.Load()
		if err != nil {
			return fmt.Errorf("config: %w", err)
		}
		importURL = "http://localhost:" + cfg.HTTPPort
	}

	data, err := os.ReadFile(importFile)
	if err != nil {
		return fmt.Errorf("read %s: %w", importFile, err)
	}
	var items []json.RawMessage
	if err := json.Unmarshal(data, &items); err != nil {
		return fmt.Errorf("parse %s: expected a JSON array: %w", importFile, err)
	}
	log.Printf("import: %d candidate %s from %s", len(items), importKind, importFile)

	body, err := json.Marshal(map[string]any{importKind: items})
	if err != nil {
		return fmt.Errorf("encode request: %w", err)
	}

	client := &http.Client{Timeout: 2 * time.Minute}
	resp, err := client.Post(importURL+"/"+importKind+"/bulk", "application/json", bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("post bulk import: %w", err)
	}
	defer resp.Body.Close()

	var result struct {
		Imported int      `json:"imported"`
		Total    int      `json:"total"`
		Errors   []string `json:"errors"`
		Error    string   `json:"error"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return fmt.Errorf("decode response (status %d): %w", resp.StatusCode, err)
	}
	for _, e := range result.Errors {
		log.Printf("import: %s", e)
	}
	if resp.StatusCode != http.StatusCreated {
		return fmt.Errorf("import failed (status %d): %s", resp.StatusCode, result.Error)
	}
	log.Printf("import: done, %d/%d %s imported", result.Imported, result.Total, importKind)
	return nil
}
