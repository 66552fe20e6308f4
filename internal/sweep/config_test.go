package sweep

import (
	"errors"
	"reflect"
	"testing"
)

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantErr bool
	}{
		{"empty", Config{}, false},
		{"valid patterns", Config{Include: []string{"*.go", "src/**"}, Exclude: []string{"vendor/*"}}, false},
		{"malformed include", Config{Include: []string{"["}}, true},
		{"malformed exclude", Config{Exclude: []string{"[a-"}}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if tt.wantErr {
				if !errors.Is(err, ErrInvalidPattern) {
					t.Errorf("expected ErrInvalidPattern, got %v", err)
				}
			} else if err != nil {
				t.Errorf("unexpected error: %v", err)
			}
		})
	}
}

func TestConfigClone(t *testing.T) {
	cfg := Config{Include: []string{"*.go"}, Exclude: []string{"x/*"}}
	clone := cfg.Clone()

	clone.Include[0] = "mutated"
	if cfg.Include[0] != "*.go" {
		t.Error("clone must not share backing storage with the original")
	}
}

func TestConfigMerge(t *testing.T) {
	defaults := Config{Include: []string{"*.rs"}, Exclude: []string{"target/*"}}

	tests := []struct {
		name  string
		other Config
		want  Config
	}{
		{"empty overlay keeps defaults", Config{}, defaults},
		{
			"include overrides",
			Config{Include: []string{"*.go"}},
			Config{Include: []string{"*.go"}, Exclude: []string{"target/*"}},
		},
		{
			"full overlay",
			Config{Include: []string{"*.go"}, Exclude: []string{"vendor/*"}},
			Config{Include: []string{"*.go"}, Exclude: []string{"vendor/*"}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := defaults.Merge(tt.other)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("expected %+v, got %+v", tt.want, got)
			}
		})
	}
}
