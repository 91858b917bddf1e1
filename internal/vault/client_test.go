package vault

import (
	"errors"
	"testing"

	"github.com/go-logr/logr"
)

func TestConfig_Validate(t *testing.T) {
	t.Parallel()

	tests := map[string]struct {
		cfg     Config
		wantErr bool
	}{
		"disabled needs nothing": {
			cfg: Config{Enabled: false},
		},
		"enabled with address": {
			cfg: Config{Enabled: true, Address: "https://vault.internal:8200"},
		},
		"enabled without address": {
			cfg:     Config{Enabled: true},
			wantErr: true,
		},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			err := tc.cfg.Validate()
			if (err != nil) != tc.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tc.wantErr)
			}
		})
	}
}

func TestNew_Disabled(t *testing.T) {
	t.Parallel()

	for name, cfg := range map[string]*Config{
		"nil config":      nil,
		"disabled config": {Enabled: false, Address: "https://vault.internal:8200"},
	} {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			c, err := New(cfg, logr.Discard())
			if err != nil {
				t.Fatalf("New() error = %v", err)
			}
			if c.IsEnabled() {
				t.Error("disabled client reports enabled")
			}
			err = c.WriteCACertificate(t.Context(), "secret", "pki/ca", []byte("pem"))
			if !errors.Is(err, ErrDisabled) {
				t.Errorf("WriteCACertificate() error = %v, want ErrDisabled", err)
			}
		})
	}
}

func TestNew_InvalidConfig(t *testing.T) {
	t.Parallel()

	if _, err := New(&Config{Enabled: true}, logr.Discard()); err == nil {
		t.Error("New() with enabled config and no address should error")
	}
}

func TestKVDataPath(t *testing.T) {
	t.Parallel()

	if got := kvDataPath("secret", "pki/prod/ca"); got != "secret/data/pki/prod/ca" {
		t.Errorf("kvDataPath() = %q, want %q", got, "secret/data/pki/prod/ca")
	}
}

func TestWriteCACertificate_InputValidation(t *testing.T) {
	t.Parallel()

	c := &client{logger: logr.Discard()}

	tests := map[string]struct {
		mount string
		path  string
		pem   []byte
	}{
		"empty mount": {mount: "", path: "pki/ca", pem: []byte("pem")},
		"empty path":  {mount: "secret", path: "", pem: []byte("pem")},
		"empty pem":   {mount: "secret", path: "pki/ca", pem: nil},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			err := c.WriteCACertificate(t.Context(), tc.mount, tc.path, tc.pem)
			var opErr *OperationError
			if !errors.As(err, &opErr) {
				t.Fatalf("WriteCACertificate() error = %v, want OperationError", err)
			}
		})
	}
}
