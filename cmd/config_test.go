package cmd

import "testing"

func TestConfigNormalizeDefaults(t *testing.T) {
	cfg := &Config{}
	cfg.Normalize()

	if cfg.Output != "generated" {
		t.Errorf("expected default output %q, got %q", "generated", cfg.Output)
	}
	if cfg.OutputFileExtension != ".rl" {
		t.Errorf("expected default extension %q, got %q", ".rl", cfg.OutputFileExtension)
	}
	if cfg.KeepSectionPlacement != "end" {
		t.Errorf("expected default placement %q, got %q", "end", cfg.KeepSectionPlacement)
	}
	if cfg.Watch.DebounceMs != 500 {
		t.Errorf("expected default debounce 500, got %d", cfg.Watch.DebounceMs)
	}
}

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     *Config
		wantErr bool
	}{
		{
			name:    "missing packages",
			cfg:     &Config{KeepSectionPlacement: "end"},
			wantErr: true,
		},
		{
			name:    "invalid placement",
			cfg:     &Config{Packages: []string{"./models"}, KeepSectionPlacement: "middle"},
			wantErr: true,
		},
		{
			name:    "valid",
			cfg:     &Config{Packages: []string{"./models"}, KeepSectionPlacement: "end"},
			wantErr: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}
