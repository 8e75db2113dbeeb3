package config

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"time"
)

type rawConfig struct {
	Server *struct {
		Address string `json:"address"`
	} `json:"server"`
	Database *struct {
		Path string `json:"path"`
	} `json:"database"`
	// Session token lifetime in minutes. Defaults to one week, matching
	// the original deployment.
	TokenTTLMinutes int `json:"token_ttl_minutes"`
	// Comma-separated or listed CORS origins for the frontend dev server.
	CORSOrigins []string `json:"cors_origins"`
	// Prefix used when generating invoice numbers (default "INV").
	InvoiceNumberPrefix string `json:"invoice_number_prefix"`
}

// LoadedConfig contains the validated runtime configuration.
type LoadedConfig struct {
	ServerAddress       string
	DBPath              string
	TokenTTL            time.Duration
	CORSOrigins         []string
	InvoiceNumberPrefix string
}

const (
	defaultAddress         = ":8080"
	defaultDBPath          = "./data/locksum.db"
	defaultTokenTTLMinutes = 10080
	defaultInvoicePrefix   = "INV"
)

// LoadConfig reads the configuration file at path. All keys are optional;
// a missing file is an error so deployments never run on silent defaults.
func LoadConfig(path string) (*LoadedConfig, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}
	var rc rawConfig
	if err := json.Unmarshal(b, &rc); err != nil {
		return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
	}

	out := &LoadedConfig{
		ServerAddress:       defaultAddress,
		DBPath:              defaultDBPath,
		TokenTTL:            defaultTokenTTLMinutes * time.Minute,
		InvoiceNumberPrefix: defaultInvoicePrefix,
	}

	if rc.Server != nil && rc.Server.Address != "" {
		out.ServerAddress = rc.Server.Address
	}
	if rc.Database != nil && rc.Database.Path != "" {
		out.DBPath = rc.Database.Path
	}
	if rc.TokenTTLMinutes < 0 {
		return nil, fmt.Errorf("config file %s: token_ttl_minutes must not be negative", path)
	}
	if rc.TokenTTLMinutes > 0 {
		out.TokenTTL = time.Duration(rc.TokenTTLMinutes) * time.Minute
	}
	for _, o := range rc.CORSOrigins {
		o = strings.TrimSpace(o)
		if o != "" {
			out.CORSOrigins = append(out.CORSOrigins, o)
		}
	}
	if p := strings.TrimSpace(rc.InvoiceNumberPrefix); p != "" {
		out.InvoiceNumberPrefix = p
	}

	return out, nil
}
