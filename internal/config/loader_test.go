package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"swatchctl/internal/color"
	"swatchctl/pkg/logging"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

// Helper function to create a temporary config file
func createTempConfigFile(t *testing.T, dir string, content SwatchConfig) string {
	t.Helper()
	require.NoError(t, os.MkdirAll(dir, 0755))
	tempFilePath := filepath.Join(dir, configFileName)
	data, err := yaml.Marshal(&content)
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(tempFilePath, data, 0644))
	return tempFilePath
}

// mockPaths points both config layers into tempDir for the duration of the test.
func mockPaths(t *testing.T, tempDir string) (userDir, projectDir string) {
	t.Helper()
	originalGetUserConfigPath := getUserConfigPath
	originalGetProjectConfigPath := getProjectConfigPath
	t.Cleanup(func() {
		getUserConfigPath = originalGetUserConfigPath
		getProjectConfigPath = originalGetProjectConfigPath
	})

	userDir = filepath.Join(tempDir, userConfigDir)
	projectDir = filepath.Join(tempDir, "project", projectConfigDir)
	getUserConfigPath = func() (string, error) {
		return filepath.Join(userDir, configFileName), nil
	}
	getProjectConfigPath = func() (string, error) {
		return filepath.Join(projectDir, configFileName), nil
	}
	return userDir, projectDir
}

func TestLoadConfig_DefaultOnly(t *testing.T) {
	mockPaths(t, t.TempDir())

	loadedConfig, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, GetDefaultConfig(), loadedConfig)
	start, err := loadedConfig.InitialRGB()
	require.NoError(t, err)
	assert.Equal(t, color.Color{R: 128, G: 128, B: 128}, start)
}

func TestLoadConfig_UserOverride(t *testing.T) {
	userDir, _ := mockPaths(t, t.TempDir())
	createTempConfigFile(t, userDir, SwatchConfig{
		InitialColor: "#ff7f00",
		Theme:        ThemeDark,
	})

	loadedConfig, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "#ff7f00", loadedConfig.InitialColor)
	assert.Equal(t, ThemeDark, loadedConfig.Theme)
	assert.Equal(t, defaultAdjustStep, loadedConfig.AdjustStep, "unset fields keep defaults")
	assert.Equal(t, "info", loadedConfig.LogLevel)
}

func TestLoadConfig_ProjectOverridesUser(t *testing.T) {
	userDir, projectDir := mockPaths(t, t.TempDir())
	createTempConfigFile(t, userDir, SwatchConfig{
		InitialColor: "#ff7f00",
		AdjustStep:   8,
		LogLevel:     "debug",
	})
	createTempConfigFile(t, projectDir, SwatchConfig{
		AdjustStep: 32,
	})

	loadedConfig, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "#ff7f00", loadedConfig.InitialColor)
	assert.Equal(t, 32, loadedConfig.AdjustStep)
	level, err := loadedConfig.Level()
	require.NoError(t, err)
	assert.Equal(t, logging.LevelDebug, level)
}

func TestLoadConfig_MalformedYAML(t *testing.T) {
	userDir, _ := mockPaths(t, t.TempDir())
	require.NoError(t, os.MkdirAll(userDir, 0755))
	require.NoError(t, os.WriteFile(filepath.Join(userDir, configFileName), []byte("adjustStep: [oops"), 0644))

	_, err := LoadConfig()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "error loading config from")
}

func TestLoadConfig_InvalidValues(t *testing.T) {
	tests := []struct {
		name    string
		overlay SwatchConfig
		want    string
	}{
		{"bad hex", SwatchConfig{InitialColor: "#zzz"}, "initialColor"},
		{"step too large", SwatchConfig{AdjustStep: 300}, "adjustStep"},
		{"negative step", SwatchConfig{AdjustStep: -1}, "adjustStep"},
		{"unknown theme", SwatchConfig{Theme: "neon"}, "theme"},
		{"unknown level", SwatchConfig{LogLevel: "loud"}, "logLevel"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, projectDir := mockPaths(t, t.TempDir())
			createTempConfigFile(t, projectDir, tt.overlay)

			_, err := LoadConfig()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestLoadConfig_UnresolvablePathsFallBackToDefaults(t *testing.T) {
	originalGetUserConfigPath := getUserConfigPath
	originalGetProjectConfigPath := getProjectConfigPath
	defer func() {
		getUserConfigPath = originalGetUserConfigPath
		getProjectConfigPath = originalGetProjectConfigPath
	}()
	getUserConfigPath = func() (string, error) { return "", errors.New("no home") }
	getProjectConfigPath = func() (string, error) { return "", errors.New("no cwd") }

	loadedConfig, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, GetDefaultConfig(), loadedConfig)
}

func TestValidate_InvalidHexWrapsInvalidInput(t *testing.T) {
	cfg := GetDefaultConfig()
	cfg.InitialColor = "nope"

	err := cfg.Validate()
	assert.ErrorIs(t, err, color.ErrInvalidInput)
}

func TestGetUserConfigDir(t *testing.T) {
	original := osUserHomeDir
	defer func() { osUserHomeDir = original }()
	osUserHomeDir = func() (string, error) { return "/home/tester", nil }

	dir, err := GetUserConfigDir()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join("/home/tester", ".config", "swatchctl"), dir)
}

func TestLoadConfigFromPath(t *testing.T) {
	dir := t.TempDir()
	path := createTempConfigFile(t, dir, SwatchConfig{InitialColor: "#ff0000", Theme: ThemeLight})

	loadedConfig, err := LoadConfigFromPath(path)
	require.NoError(t, err)

	assert.Equal(t, "#ff0000", loadedConfig.InitialColor)
	assert.Equal(t, ThemeLight, loadedConfig.Theme)
	assert.Equal(t, GetDefaultConfig().AdjustStep, loadedConfig.AdjustStep)

	_, err = LoadConfigFromPath(filepath.Join(dir, "missing.yaml"))
	assert.Error(t, err)

	badPath := createTempConfigFile(t, filepath.Join(dir, "bad"), SwatchConfig{AdjustStep: 999})
	_, err = LoadConfigFromPath(badPath)
	assert.ErrorContains(t, err, "adjustStep")
}
