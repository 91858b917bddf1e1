// Package vault exports issued CA certificates to a HashiCorp Vault KV v2
// secrets engine, so that trust anchors can be distributed outside the
// cluster the Secret lives in.
package vault

import (
	"context"
	"fmt"
	"time"

	"github.com/go-logr/logr"
	vaultapi "github.com/hashicorp/vault/api"
)

// DefaultTimeout bounds individual Vault requests.
const DefaultTimeout = 30 * time.Second

// CAExportKey is the field name the CA certificate is stored under.
const CAExportKey = "ca.pem"

// Config configures the Vault client.
type Config struct {
	// Enabled toggles the export path. When false, New returns a client
	// whose writes report ErrDisabled.
	Enabled bool

	// Address is the Vault server URL. Required when enabled.
	Address string

	// Token authenticates the client. When empty, the token is taken from
	// the standard VAULT_TOKEN environment handling of the Vault SDK.
	Token string

	// Timeout bounds individual requests. Defaults to DefaultTimeout.
	Timeout time.Duration
}

// Validate checks the configuration for an enabled client.
func (c *Config) Validate() error {
	if !c.Enabled {
		return nil
	}
	if c.Address == "" {
		return fmt.Errorf("vault address is required when vault export is enabled")
	}
	return nil
}

// Client writes CA certificates to Vault.
type Client interface {
	// IsEnabled reports whether exports will actually reach a server.
	IsEnabled() bool

	// WriteCACertificate stores a PEM-encoded CA certificate under
	// <mount>/data/<path> in a KV v2 engine.
	WriteCACertificate(ctx context.Context, mount, path string, caPEM []byte) error
}

// New creates a Vault client. A disabled configuration yields a client whose
// writes fail with ErrDisabled, letting callers wire the export path
// unconditionally.
func New(cfg *Config, logger logr.Logger) (Client, error) {
	if cfg == nil || !cfg.Enabled {
		return &disabledClient{}, nil
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	apiCfg := vaultapi.DefaultConfig()
	apiCfg.Address = cfg.Address
	timeout := cfg.Timeout
	if timeout == 0 {
		timeout = DefaultTimeout
	}
	apiCfg.Timeout = timeout

	api, err := vaultapi.NewClient(apiCfg)
	if err != nil {
		return nil, fmt.Errorf("failed to create vault client: %w", err)
	}
	if cfg.Token != "" {
		api.SetToken(cfg.Token)
	}

	return &client{api: api, logger: logger}, nil
}

type client struct {
	api    *vaultapi.Client
	logger logr.Logger
}

func (c *client) IsEnabled() bool { return true }

func (c *client) WriteCACertificate(ctx context.Context, mount, path string, caPEM []byte) error {
	if mount == "" {
		return newOpError("kv_write", path, "mount is required", nil)
	}
	if path == "" {
		return newOpError("kv_write", path, "path is required", nil)
	}
	if len(caPEM) == 0 {
		return newOpError("kv_write", path, "CA certificate is empty", nil)
	}

	fullPath := kvDataPath(mount, path)

	// KV v2 wraps the payload in a "data" key.
	payload := map[string]interface{}{
		"data": map[string]interface{}{
			CAExportKey: string(caPEM),
		},
	}

	if _, err := c.api.Logical().WriteWithContext(ctx, fullPath, payload); err != nil {
		return newOpError("kv_write", fullPath, "failed to write CA certificate", err)
	}

	c.logger.V(1).Info("exported CA certificate to vault", "path", fullPath)
	return nil
}

// kvDataPath builds the KV v2 data path for a mount and secret path.
func kvDataPath(mount, path string) string {
	return fmt.Sprintf("%s/data/%s", mount, path)
}

type disabledClient struct{}

func (d *disabledClient) IsEnabled() bool { return false }

func (d *disabledClient) WriteCACertificate(context.Context, string, string, []byte) error {
	return ErrDisabled
}
