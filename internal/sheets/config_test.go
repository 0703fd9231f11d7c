package sheets

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConfig_Validate(t *testing.T) {
	valid := Config{
		ServiceAccountPath: "/path/to/key.json",
		SpreadsheetID:      "abc123",
		SheetName:          "Transactions",
		RetryAttempts:      3,
	}

	tests := []struct {
		mutate  func(*Config)
		name    string
		wantErr bool
	}{
		{
			name:    "valid service account config",
			mutate:  func(*Config) {},
			wantErr: false,
		},
		{
			name: "valid oauth config",
			mutate: func(c *Config) {
				c.ServiceAccountPath = ""
				c.ClientID = "id"
				c.ClientSecret = "secret"
				c.RefreshToken = "token"
			},
			wantErr: false,
		},
		{
			name: "no auth method",
			mutate: func(c *Config) {
				c.ServiceAccountPath = ""
			},
			wantErr: true,
		},
		{
			name: "both auth methods",
			mutate: func(c *Config) {
				c.ClientID = "id"
				c.ClientSecret = "secret"
				c.RefreshToken = "token"
			},
			wantErr: true,
		},
		{
			name: "missing spreadsheet id",
			mutate: func(c *Config) {
				c.SpreadsheetID = ""
			},
			wantErr: true,
		},
		{
			name: "missing sheet name",
			mutate: func(c *Config) {
				c.SheetName = ""
			},
			wantErr: true,
		},
		{
			name: "negative retry attempts",
			mutate: func(c *Config) {
				c.RetryAttempts = -1
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			config := valid
			tt.mutate(&config)

			err := config.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
