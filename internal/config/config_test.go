package config

import (
	"os"
	"testing"
	"time"
)

func TestRequireEnv(t *testing.T) {
	tests := []struct {
		name      string
		key       string
		value     string
		shouldSet bool
		wantPanic bool
	}{
		{
			name:      "variable set",
			key:       "TEST_VAR",
			value:     "test_value",
			shouldSet: true,
			wantPanic: false,
		},
		{
			name:      "variable not set",
			key:       "TEST_VAR_MISSING",
			shouldSet: false,
			wantPanic: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.shouldSet {
				t.Setenv(tt.key, tt.value)
			}

			if tt.wantPanic {
				defer func() {
					if r := recover(); r == nil {
						t.Errorf("requireEnv() should have panicked")
					}
				}()
			}

			result := requireEnv(tt.key)
			if !tt.wantPanic && result != tt.value {
				t.Errorf("requireEnv() = %v, want %v", result, tt.value)
			}
		})
	}
}

func TestMustDuration(t *testing.T) {
	tests := []struct {
		name  string
		value string
		def   time.Duration
		want  time.Duration
	}{
		{"valid duration", "10s", time.Second, 10 * time.Second},
		{"invalid duration falls back", "not-a-duration", 5 * time.Second, 5 * time.Second},
		{"empty falls back", "", 3 * time.Second, 3 * time.Second},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.value != "" {
				t.Setenv("TEST_DURATION", tt.value)
			} else {
				if err := os.Unsetenv("TEST_DURATION"); err != nil {
					t.Fatalf("failed to unset env var: %v", err)
				}
			}

			if got := mustDuration("TEST_DURATION", tt.def); got != tt.want {
				t.Errorf("mustDuration() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestMustBool(t *testing.T) {
	tests := []struct {
		name  string
		value string
		def   bool
		want  bool
	}{
		{"true value", "true", false, true},
		{"false value", "false", true, false},
		{"garbage falls back", "maybe", true, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("TEST_BOOL", tt.value)
			if got := mustBool("TEST_BOOL", tt.def); got != tt.want {
				t.Errorf("mustBool() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestGetenvSlice(t *testing.T) {
	t.Setenv("TEST_SLICE", `http://localhost:5173, "http://127.0.0.1:5173" `)

	got := getenvSlice("TEST_SLICE", nil)
	want := []string{"http://localhost:5173", "http://127.0.0.1:5173"}

	if len(got) != len(want) {
		t.Fatalf("getenvSlice() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("getenvSlice()[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}
