package cli

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/ja-he/valueview/internal/control"
	"github.com/ja-he/valueview/internal/model"
	"github.com/ja-he/valueview/internal/potatolog"
	"github.com/ja-he/valueview/internal/styling"
	"github.com/ja-he/valueview/internal/tui"
)

type TuiCommand struct {
	Theme         string            `short:"t" long:"theme" choice:"light" choice:"dark" description:"Select a 'dark' or a 'light' default theme (note: only sets defaults, which are individually overridden by settings in config.yaml"`
	LogOutputFile string            `short:"l" long:"log-output-file" description:"specify a log output file (otherwise logs dropped)"`
	LogPretty     bool              `short:"p" long:"log-pretty" description:"prettify logs to file"`
	Locale        string            `long:"locale" description:"Language to show the labels in (a BCP 47 tag, overrides the configured locale)"`
	Rtl           string            `long:"rtl" choice:"on" choice:"off" description:"Force the right-to-left layout on or off (otherwise derived from config and locale)"`
	Value         string            `long:"value" description:"The time value to edit, as YYYY[-MM[-DD[THH[:MM[:SS]]]]] (defaults to now)" value-name:"<time>"`
	Calendar      string            `long:"calendar" choice:"gregorian" choice:"julian" description:"The calendar the value is given in (otherwise chosen automatically)"`
	Set           map[string]string `long:"set" description:"Preset the value of a configured list, e.g. 'priority:high' (may be given multiple times)" value-name:"<list>:<value>"`
}

func (command *TuiCommand) Execute(args []string) error {
	// set up stderr logger until TUI set up
	stderrLogger := log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	// create TUI logger
	var logWriter io.Writer
	if command.LogOutputFile != "" {
		var fileLogger io.Writer
		file, err := os.OpenFile(command.LogOutputFile, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
		if err != nil {
			return fmt.Errorf("could not open file '%s' for logging: %w", command.LogOutputFile, err)
		}
		defer file.Close()
		if command.LogPretty {
			fileLogger = zerolog.ConsoleWriter{Out: file}
		} else {
			fileLogger = file
		}
		logWriter = zerolog.MultiLevelWriter(fileLogger, potatolog.GlobalMemoryLogReaderWriter)
	} else {
		logWriter = potatolog.GlobalMemoryLogReaderWriter
	}
	tuiLogger := zerolog.New(logWriter).With().Timestamp().Caller().Logger()

	// temporarily log to both (in case the TUI doesn't get set we want the info
	// on the stderr logger, otherwise the TUI logger is relevant)
	log.Logger = log.Output(zerolog.MultiLevelWriter(stderrLogger, tuiLogger))

	envData := getEnvData()
	configData, err := loadConfig(envData, themeFromString(command.Theme))
	if err != nil {
		return err
	}

	locale := configData.Rotator.Locale
	if command.Locale != "" {
		locale = command.Locale
	}
	labels, err := loadLabels(envData, locale)
	if err != nil {
		return err
	}

	// right-to-left: the flag overrides the config, which overrides the locale
	rtl := labels.IsRtl()
	if configData.Rotator.Rtl != nil {
		rtl = *configData.Rotator.Rtl
	}
	switch command.Rtl {
	case "on":
		rtl = true
	case "off":
		rtl = false
	}

	var calendar *model.Calendar
	if command.Calendar != "" {
		c, err := model.CalendarFromString(command.Calendar)
		if err != nil {
			return err
		}
		calendar = &c
	}
	valueString := command.Value
	if valueString == "" {
		valueString = time.Now().Format("2006-01-02T15:04")
	}
	value, err := model.ParseTimeValue(valueString, calendar)
	if err != nil {
		return fmt.Errorf("could not parse given value: %w", err)
	}

	for name := range command.Set {
		if !hasList(configData.Lists, name) {
			return fmt.Errorf("no list '%s' configured", name)
		}
	}

	stylesheet, err := styling.NewStylesheetFromConfig(configData.Stylesheet)
	if err != nil {
		return fmt.Errorf("can't build stylesheet: %w", err)
	}

	renderer, err := tui.NewTUIScreenHandler()
	if err != nil {
		return fmt.Errorf("could not initialize screen: %w", err)
	}

	controller, err := NewController(ControllerOptions{
		Config:     configData,
		Stylesheet: *stylesheet,
		Labels:     labels,
		Rtl:        rtl,
		Data:       control.NewControlData(envData, value, command.Set),
		Renderer:   renderer,
	})
	if err != nil {
		renderer.Fini()
		return err
	}

	// now that the screen is initialized, we'll always want the TUI logger, so
	// we're making it the global logger
	log.Logger = tuiLogger

	controller.Run()
	return nil
}
