package rules

import (
	"errors"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/erraggy/oaslint/oaserrors"
)

func TestNewRegistry(t *testing.T) {
	r := NewRegistry()
	assert.Equal(t, []string{TypeMismatch, ValidateOneOfDiscriminator, ValidateAnyOfDiscriminator}, r.Names())

	rule, ok := r.Lookup(ValidateAnyOfDiscriminator)
	require.True(t, ok)
	assert.Equal(t, KindSchema, rule.Kind)

	_, ok = r.Lookup("Nope")
	assert.False(t, ok)
}

func TestRegistry_Register(t *testing.T) {
	r := NewRegistry()
	require.NoError(t, r.Register(schemaRule("Custom")))
	assert.Equal(t, "Custom", r.Names()[3])
	assert.Equal(t, 4, r.All().Len())

	err := r.Register(schemaRule("Custom"))
	assert.True(t, errors.Is(err, oaserrors.ErrConfig))

	err = r.Register(Rule{Name: "Broken", Kind: KindValue})
	assert.True(t, errors.Is(err, oaserrors.ErrConfig))
}

func TestRegistry_ConcurrentRegister(t *testing.T) {
	r := NewRegistry()
	var wg sync.WaitGroup
	for _, name := range []string{"A", "B", "C", "D"} {
		wg.Add(1)
		go func() {
			defer wg.Done()
			assert.NoError(t, r.Register(schemaRule(name)))
			_, _ = r.Lookup(name)
		}()
	}
	wg.Wait()
	assert.Len(t, r.Names(), 7)
}

func TestRegistry_Select(t *testing.T) {
	r := NewRegistry()
	rs, err := r.Select(ValidateAnyOfDiscriminator, TypeMismatch)
	require.NoError(t, err)
	assert.Equal(t, []string{ValidateAnyOfDiscriminator, TypeMismatch}, rs.Names())

	_, err = r.Select("TypeMismatc")
	require.Error(t, err)
	var cfgErr *oaserrors.ConfigError
	require.True(t, errors.As(err, &cfgErr))
	assert.Equal(t, "TypeMismatc", cfgErr.Value)

	_, err = r.Select(TypeMismatch, TypeMismatch)
	assert.Error(t, err)
}

func TestRegistry_FromConfig(t *testing.T) {
	r := NewRegistry()

	rs, err := r.FromConfig(nil)
	require.NoError(t, err)
	assert.Equal(t, 3, rs.Len())

	cfg, err := ParseConfig([]byte(`
rules:
  - ValidateOneOfDiscriminator
  - name: TypeMismatch
    severity: warning
`))
	require.NoError(t, err)
	rs, err = r.FromConfig(cfg)
	require.NoError(t, err)
	assert.Equal(t, []string{ValidateOneOfDiscriminator, TypeMismatch}, rs.Names())

	tm, _ := rs.Get(TypeMismatch)
	assert.Equal(t, SeverityWarning, tm.Severity)
	// registry copy is untouched
	orig, _ := r.Lookup(TypeMismatch)
	assert.Equal(t, SeverityError, orig.Severity)

	_, err = r.FromConfig(&Config{Rules: []RuleConfig{{Name: "Unknown"}}})
	assert.True(t, errors.Is(err, oaserrors.ErrConfig))
}

func TestParseConfig(t *testing.T) {
	t.Run("json", func(t *testing.T) {
		cfg, err := ParseConfig([]byte(`{"rules": ["TypeMismatch", {"name": "ValidateAnyOfDiscriminator", "severity": "info"}]}`))
		require.NoError(t, err)
		assert.Equal(t, []string{TypeMismatch, ValidateAnyOfDiscriminator}, cfg.Names())
		assert.Nil(t, cfg.Rules[0].Severity)
		require.NotNil(t, cfg.Rules[1].Severity)
		assert.Equal(t, SeverityInfo, *cfg.Rules[1].Severity)
	})

	tests := []struct {
		name string
		data string
	}{
		{"bad severity", "rules:\n  - name: TypeMismatch\n    severity: fatal\n"},
		{"empty name", "rules:\n  - severity: warning\n"},
		{"sequence entry", "rules:\n  - [TypeMismatch]\n"},
		{"not yaml", "rules: [unclosed"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseConfig([]byte(tt.data))
			require.Error(t, err)
			assert.True(t, errors.Is(err, oaserrors.ErrConfig), "got %v", err)
		})
	}
}

func TestLoadConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "rules.yaml")
	require.NoError(t, os.WriteFile(path, []byte("rules: [TypeMismatch]\n"), 0o600))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, []string{TypeMismatch}, cfg.Names())

	_, err = LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.True(t, errors.Is(err, oaserrors.ErrConfig))
}
