package raw

import (
	"testing"
)

func TestConfGet(t *testing.T) {
	t.Setenv("APP_NAME", " c4ctexts ")
	t.Setenv("LOG_LEVEL", " debug ")

	root := New()
	log := root.Prefix("LOG_")

	tests := []struct {
		name string
		conf Conf
		key  string
		def  string
		want string
	}{
		{name: "root no default used", conf: root, key: "APP_NAME", def: "x", want: "c4ctexts"},
		{name: "prefixed hit", conf: log, key: "LEVEL", def: "x", want: "debug"},
		{name: "missing returns default", conf: log, key: "MISSING", def: "defv", want: "defv"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.conf.Get(tt.key, tt.def); got != tt.want {
				t.Fatalf("Get(%q) = %q, want %q", tt.key, got, tt.want)
			}
		})
	}
}

func TestConfLookupWhitespace(t *testing.T) {
	t.Setenv("LOG_BLANK", "   ")
	if _, ok := New().Prefix("LOG_").Lookup("BLANK"); ok {
		t.Fatalf("whitespace-only value should not count as present")
	}
}

func TestConfGetBool(t *testing.T) {
	log := New().Prefix("LOG_")

	t.Setenv("LOG_T1", "true")
	t.Setenv("LOG_T2", "1")
	t.Setenv("LOG_T3", "YES")
	t.Setenv("LOG_T4", "on")
	t.Setenv("LOG_F1", "false")
	t.Setenv("LOG_F2", "0")
	t.Setenv("LOG_WS", "   true   ")

	tests := []struct {
		key  string
		def  bool
		want bool
	}{
		{key: "T1", def: false, want: true},
		{key: "T2", def: false, want: true},
		{key: "T3", def: false, want: true},
		{key: "T4", def: false, want: true},
		{key: "F1", def: true, want: false},
		{key: "F2", def: true, want: false},
		{key: "WS", def: false, want: true},
		{key: "MISSING", def: true, want: true},
	}

	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			if got := log.GetBool(tt.key, tt.def); got != tt.want {
				t.Fatalf("GetBool(%q) = %v, want %v", tt.key, got, tt.want)
			}
		})
	}
}

func TestConfGetInt(t *testing.T) {
	log := New().Prefix("LOG_")

	t.Setenv("LOG_OK", "42")
	t.Setenv("LOG_NONNUM", "12x")
	t.Setenv("LOG_NEG", "-5") // the simple parser has no sign support

	tests := []struct {
		key  string
		def  int
		want int
	}{
		{key: "OK", def: 0, want: 42},
		{key: "NONNUM", def: 9, want: 9},
		{key: "NEG", def: 3, want: 3},
		{key: "MISSING", def: 11, want: 11},
	}

	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			if got := log.GetInt(tt.key, tt.def); got != tt.want {
				t.Fatalf("GetInt(%q) = %d, want %d", tt.key, got, tt.want)
			}
		})
	}
}
