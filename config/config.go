package config

import (
	"fmt"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"

	"github.com/Toufiq-trt/toufiqsBALANCING/inventory"
)

type Config struct {
	App struct {
		Name string `envconfig:"APP_NAME" default:"toufiqsBALANCING"`
	}

	Sheets struct {
		MasterID     string        `envconfig:"MASTER_SHEET_ID"`
		DebitCardID  string        `envconfig:"DEBIT_CARD_SHEET_ID"`
		ChequeBookID string        `envconfig:"CHEQUE_BOOK_SHEET_ID"`
		DPSSlipID    string        `envconfig:"DPS_SLIP_SHEET_ID"`
		PINID        string        `envconfig:"PIN_SHEET_ID"`
		FetchTimeout time.Duration `envconfig:"SHEET_FETCH_TIMEOUT" default:"15s"`
	}

	// Retention is safety-relevant (it decides destruction eligibility), so
	// the offset is explicit configuration rather than a buried constant.
	Retention struct {
		Years  int `envconfig:"RETENTION_YEARS" default:"0"`
		Months int `envconfig:"RETENTION_MONTHS" default:"3"`
	}

	Sync struct {
		// "or" keeps local delivery wins; "overwrite" trusts the sheet.
		DeliveredMerge string `envconfig:"DELIVERED_MERGE" default:"or"`
	}

	Storage struct {
		SnapshotPath string `envconfig:"SNAPSHOT_PATH" default:"balancing_snapshot.json"`
	}
}

func Load() (*Config, error) {
	_ = godotenv.Load()

	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to process config: %w", err)
	}

	return &cfg, nil
}

// RetentionOffset returns the configured retention policy value.
func (c *Config) RetentionOffset() inventory.Retention {
	return inventory.Retention{Years: c.Retention.Years, Months: c.Retention.Months}
}

// CategorySheetIDs maps each category to its configured spreadsheet id,
// ready for wiring the sheet reader.
func (c *Config) CategorySheetIDs() map[inventory.Category]string {
	return map[inventory.Category]string{
		inventory.CategoryDebitCard:  c.Sheets.DebitCardID,
		inventory.CategoryChequeBook: c.Sheets.ChequeBookID,
		inventory.CategoryDPSSlip:    c.Sheets.DPSSlipID,
		inventory.CategoryPIN:        c.Sheets.PINID,
	}
}
