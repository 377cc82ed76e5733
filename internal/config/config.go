package config

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
)

// RequiredKeys are the invoice fields the template cannot render without.
// Every one must be present and non-empty in the .env file.
var RequiredKeys = []string{
	"COMPANY_NAME",
	"COMPANY_ID",
	"BILL_FROM",
	"BILL_TO",
	"SERVICE_TITLE",
	"SERVICE_DESC",
	"CURRENCY",
	"AMOUNT",
	"BENEFICIARY_NAME",
	"IBAN",
	"SWIFT",
	"BANK_NAME",
	"BANK_ADDRESS",
	"INTERMEDIARY_BANK_NAME",
	"INTERMEDIARY_BANK_SWIFT",
	"SUPPORT_EMAIL",
}

type Config struct {
	// Values holds every key from the .env file, normalized, keyed by its
	// .env name. The template is executed against this map plus the
	// computed invoice fields.
	Values map[string]string

	// Paths and tool settings, overridable from the same .env file.
	TemplatePath string
	InvoicesDir  string
	CounterFile  string
	LedgerDBPath string
	LogLevel     string
}

// Load reads the .env file at path. Only the file is consulted, never the
// process environment: the invoice data is a document, not deployment
// config. A missing file is an error.
func Load(path string) (*Config, error) {
	raw, err := godotenv.Read(path)
	if err != nil {
		return nil, fmt.Errorf("read env file %s: %w", path, err)
	}

	values := make(map[string]string, len(raw))
	for k, v := range raw {
		values[k] = normalizeValue(v)
	}

	cfg := &Config{
		Values:       values,
		TemplatePath: valueOr(values, "TEMPLATE_PATH", "invoice_template.html"),
		InvoicesDir:  valueOr(values, "INVOICES_DIR", "invoices"),
		CounterFile:  valueOr(values, "COUNTER_FILE", "invoice_number.txt"),
		LogLevel:     valueOr(values, "LOG_LEVEL", "info"),
	}

	// LEDGER_DB_PATH set to an empty string disables the ledger, so absence
	// and emptiness must be told apart.
	if v, ok := values["LEDGER_DB_PATH"]; ok {
		cfg.LedgerDBPath = v
	} else {
		cfg.LedgerDBPath = filepath.Join(cfg.InvoicesDir, "ledger.db")
	}

	return cfg, nil
}

// Validate reports every missing or empty required key in a single error so
// the operator can fix the .env file in one pass.
func (c *Config) Validate() error {
	var missing []string
	for _, key := range RequiredKeys {
		if strings.TrimSpace(c.Values[key]) == "" {
			missing = append(missing, key)
		}
	}
	if len(missing) > 0 {
		return fmt.Errorf("missing required keys in .env: %s", strings.Join(missing, ", "))
	}
	return nil
}

// TemplateData returns the map the invoice template is executed against:
// the .env values plus the computed fields supplied by the caller.
func (c *Config) TemplateData(computed map[string]string) map[string]string {
	data := make(map[string]string, len(c.Values)+len(computed))
	for k, v := range c.Values {
		data[k] = v
	}
	for k, v := range computed {
		data[k] = v
	}
	return data
}

// normalizeValue converts the literal two-character \n escape into a real
// line break so multi-line addresses survive the .env round trip.
func normalizeValue(v string) string {
	return strings.ReplaceAll(v, `\n`, "\n")
}

func valueOr(values map[string]string, key, fallback string) string {
	if v := values[key]; v != "" {
		return v
	}
	return fallback
}
