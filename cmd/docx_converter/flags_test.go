package main

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/urfave/cli/v3"
)

func TestValidateAPIURL(t *testing.T) {
	t.Parallel()

	tests := []struct {
		url     string
		wantErr bool
	}{
		{"http://localhost:5000/api", false},
		{"https://converter.example.com", false},
		{"localhost:5000", true},
		{"ftp://converter.example.com", true},
		{"http://", true},
		{"://bad", true},
	}

	for _, tt := range tests {
		t.Run(tt.url, func(t *testing.T) {
			t.Parallel()

			err := validateAPIURL(tt.url)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestValidateConfig(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()

	yml := filepath.Join(dir, "config.yml")
	require.NoError(t, os.WriteFile(yml, []byte("converter:\n  api_url: http://localhost:5000/api\n"), 0o600))

	txt := filepath.Join(dir, "config.txt")
	require.NoError(t, os.WriteFile(txt, nil, 0o600))

	assert.NoError(t, validateConfig(yml))
	assert.Error(t, validateConfig(txt))
	assert.Error(t, validateConfig(dir))
	assert.Error(t, validateConfig(filepath.Join(dir, "missing.yaml")))
}

func TestValidatePositiveDuration(t *testing.T) {
	t.Parallel()

	assert.NoError(t, validatePositiveDuration(time.Second))
	assert.Error(t, validatePositiveDuration(0))
	assert.Error(t, validatePositiveDuration(-time.Minute))
}

func TestFlags_DownloadDurationsMustBePositive(t *testing.T) {
	t.Parallel()

	for _, name := range []string{"download-ttl", "download-sweep-interval"} {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			var flag *cli.DurationFlag
			for _, f := range flags() {
				if df, ok := f.(*cli.DurationFlag); ok && df.Name == name {
					flag = df
				}
			}
			require.NotNil(t, flag)
			require.NotNil(t, flag.Validator)

			assert.NoError(t, flag.Validator(flag.Value))
			assert.Error(t, flag.Validator(0))
			assert.Error(t, flag.Validator(-time.Second))
		})
	}
}
