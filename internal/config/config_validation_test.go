package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/consent-bridge/models"
)

func validConfig() *StructuredConfig {
	cfg := defaultConfig()
	cfg.App.Platform = "ios"
	cfg.App.PlatformVersion = "17.0"
	cfg.App.TokenSignKey = "sign"
	return cfg
}

func TestStructuredConfig_Validate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*StructuredConfig)
		want   error
	}{
		{"valid", func(*StructuredConfig) {}, nil},
		{"unknown platform", func(c *StructuredConfig) { c.App.Platform = "windows" }, ErrInvalidAppConfigs},
		{"missing platform", func(c *StructuredConfig) { c.App.Platform = "" }, ErrInvalidAppConfigs},
		{"negative threshold", func(c *StructuredConfig) { c.App.IsolationMajorVersion = -1 }, ErrInvalidAppConfigs},
		{"missing sign key", func(c *StructuredConfig) { c.App.TokenSignKey = "" }, ErrInvalidAppConfigs},
		{"missing http address", func(c *StructuredConfig) { c.Server.HTTPAddress = "" }, ErrInvalidServerConfigs},
		{"unknown driver", func(c *StructuredConfig) { c.Storage.DB.Driver = "mysql" }, ErrInvalidStorageConfigs},
		{"missing dsn", func(c *StructuredConfig) { c.Storage.DB.DSN = "" }, ErrInvalidStorageConfigs},
		{"relative native address", func(c *StructuredConfig) { c.Adapter.NativeAddress = "localhost:8765" }, ErrInvalidAdapterConfigs},
		{"zero adapter timeout", func(c *StructuredConfig) { c.Adapter.RequestTimeout = 0 }, ErrInvalidAdapterConfigs},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			tt.mutate(cfg)

			err := cfg.validate()
			if tt.want == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestStructuredConfig_ValidateJoinsErrors(t *testing.T) {
	cfg := validConfig()
	cfg.App.Platform = ""
	cfg.Storage.DB.DSN = ""

	err := cfg.validate()
	assert.ErrorIs(t, err, ErrInvalidAppConfigs)
	assert.ErrorIs(t, err, ErrInvalidStorageConfigs)
}

func TestApp_PlatformInfo(t *testing.T) {
	info, err := App{Platform: "IOS", PlatformVersion: "15.2"}.PlatformInfo()
	require.NoError(t, err)
	assert.Equal(t, models.PlatformInfo{Platform: models.PlatformIOS, Version: "15.2"}, info)

	_, err = App{Platform: "symbian"}.PlatformInfo()
	assert.ErrorIs(t, err, ErrInvalidAppConfigs)
	assert.ErrorIs(t, err, models.ErrUnknownPlatform)
}

func TestClientConfig_Validate(t *testing.T) {
	valid := func() *ClientConfig {
		return &ClientConfig{
			App: ClientApp{
				TokenSignKey:  "sign",
				TokenIssuer:   "consent-bridge",
				TokenDuration: time.Hour,
				Operator:      "support",
			},
			Adapter: ClientAdapter{
				HTTPAddress:    "http://localhost:8080",
				RequestTimeout: time.Second,
			},
		}
	}

	assert.NoError(t, valid().validate())

	cfg := valid()
	cfg.Adapter.HTTPAddress = ""
	assert.ErrorIs(t, cfg.validate(), ErrInvalidAdapterConfigs)

	cfg = valid()
	cfg.Adapter.RequestTimeout = 0
	assert.ErrorIs(t, cfg.validate(), ErrInvalidAdapterConfigs)

	cfg = valid()
	cfg.App.TokenSignKey = ""
	assert.ErrorIs(t, cfg.validate(), ErrInvalidAppConfigs)
}

func TestNewClientConfig_MapsFields(t *testing.T) {
	cfg := validConfig()
	cfg.Adapter.HTTPAddress = "http://bridge:8080"

	got := newClientConfig(cfg)

	assert.Equal(t, "sign", got.App.TokenSignKey)
	assert.Equal(t, "consent-bridge", got.App.TokenIssuer)
	assert.Equal(t, "support", got.App.Operator)
	assert.Equal(t, "http://bridge:8080", got.Adapter.HTTPAddress)
	assert.Equal(t, 10*time.Second, got.Adapter.RequestTimeout)
}
