package cli

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/ja-he/valueview/internal/config"
	"github.com/ja-he/valueview/internal/control"
	"github.com/ja-he/valueview/internal/i18n"
)

// themeFromString maps the theme flag to a colorscheme, defaulting to dark.
func themeFromString(theme string) config.ColorschemeType {
	switch theme {
	case "light":
		return config.Light
	default:
		return config.Dark
	}
}

// getEnvData determines the base directory, which is '$VALUEVIEW_HOME' if set
// and '$HOME/.config/valueview' otherwise.
func getEnvData() control.EnvData {
	var envData control.EnvData
	valueviewHome := os.Getenv("VALUEVIEW_HOME")
	if valueviewHome == "" {
		envData.BaseDirPath = os.Getenv("HOME") + "/.config/valueview"
	} else {
		envData.BaseDirPath = strings.TrimRight(valueviewHome, "/")
	}
	return envData
}

// loadConfig reads the config file from the base directory, falling back to
// the defaults if there is none.
func loadConfig(envData control.EnvData, theme config.ColorschemeType) (config.Config, error) {
	configPath := path.Join(envData.BaseDirPath, "config.yaml")
	yamlData, err := os.ReadFile(configPath)
	if err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			return config.Config{}, fmt.Errorf("can't read config file '%s': %w", configPath, err)
		}
		log.Debug().Str("file", configPath).Msg("no config file, using defaults")
		yamlData = make([]byte, 0)
	}
	configData, err := config.ParseConfigAugmentDefaults(theme, yamlData)
	if err != nil {
		return config.Config{}, fmt.Errorf("can't parse config file '%s': %w", configPath, err)
	}
	return configData, nil
}

// loadLabels returns a label provider for the given locale, with the message
// files in the base directory's 'messages' subdirectory loaded in addition to
// the embedded ones.
func loadLabels(envData control.EnvData, locale string) (*i18n.Provider, error) {
	matches, err := filepath.Glob(path.Join(envData.BaseDirPath, "messages", "*.toml"))
	if err != nil {
		return nil, fmt.Errorf("could not list message files: %w", err)
	}
	files := make([]i18n.MessageFile, 0, len(matches))
	for _, match := range matches {
		content, err := os.ReadFile(match)
		if err != nil {
			return nil, fmt.Errorf("could not read message file '%s': %w", match, err)
		}
		files = append(files, i18n.MessageFile{Name: filepath.Base(match), Content: content})
	}
	return i18n.NewProvider(locale, files...)
}
