package sweep

import (
	"reflect"
	"testing"
)

func TestNewInvocation(t *testing.T) {
	exe := ResolvedExecutable{Path: "/plugin/target/release/emoji-clean"}

	tests := []struct {
		name string
		cfg  Config
		want []string
	}{
		{
			name: "no filters",
			cfg:  Config{},
			want: []string{"/plugin/target/release/emoji-clean"},
		},
		{
			name: "include only",
			cfg:  Config{Include: []string{"*.go", "*.rs"}},
			want: []string{"/plugin/target/release/emoji-clean", "--include", "*.go", "*.rs"},
		},
		{
			name: "exclude only",
			cfg:  Config{Exclude: []string{"vendor/*"}},
			want: []string{"/plugin/target/release/emoji-clean", "--exclude", "vendor/*"},
		},
		{
			name: "include and exclude",
			cfg: Config{
				Include: []string{"*.go", "src/**"},
				Exclude: []string{"vendor/*", "*.log"},
			},
			want: []string{
				"/plugin/target/release/emoji-clean",
				"--include", "*.go", "src/**",
				"--exclude", "vendor/*", "*.log",
			},
		},
		{
			name: "pattern order preserved",
			cfg:  Config{Include: []string{"b", "a", "c"}},
			want: []string{"/plugin/target/release/emoji-clean", "--include", "b", "a", "c"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			inv := NewInvocation(exe, tt.cfg)
			if !reflect.DeepEqual(inv.Args, tt.want) {
				t.Errorf("expected args %v, got %v", tt.want, inv.Args)
			}
		})
	}
}

func TestInvocationAccessors(t *testing.T) {
	exe := ResolvedExecutable{Path: "/tool"}
	inv := NewInvocation(exe, Config{Include: []string{"*.go"}})

	if inv.Path() != "/tool" {
		t.Errorf("expected path /tool, got %q", inv.Path())
	}

	want := []string{"--include", "*.go"}
	if !reflect.DeepEqual(inv.Argv(), want) {
		t.Errorf("expected argv %v, got %v", want, inv.Argv())
	}
}

func TestNewInvocationDeterministic(t *testing.T) {
	exe := ResolvedExecutable{Path: "/tool"}
	cfg := Config{Include: []string{"*.go"}, Exclude: []string{"x/*"}}

	first := NewInvocation(exe, cfg)
	second := NewInvocation(exe, cfg)

	if !reflect.DeepEqual(first.Args, second.Args) {
		t.Errorf("expected identical argument vectors, got %v and %v", first.Args, second.Args)
	}
}
