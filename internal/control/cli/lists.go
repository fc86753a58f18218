package cli

import (
	"fmt"
	"strings"

	"github.com/ja-he/valueview/internal/config"
)

// ListsCommand prints the configured value lists.
type ListsCommand struct {
	Theme  string `short:"t" long:"theme" choice:"light" choice:"dark" description:"Select a 'dark' or a 'light' default theme"`
	Locale string `long:"locale" description:"Language to show the labels in (a BCP 47 tag, overrides the configured locale)"`
}

// Execute executes the lists command.
func (command *ListsCommand) Execute(args []string) error {
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

	for _, list := range configData.Lists {
		items := list.Items(labels)
		entries := make([]string, 0, len(items))
		for _, item := range items {
			if item.Label == item.Value {
				entries = append(entries, item.Value)
			} else {
				entries = append(entries, fmt.Sprintf("%s (%s)", item.Value, item.Label))
			}
		}
		fmt.Printf("%s: %s\n", list.Name, strings.Join(entries, ", "))
	}
	return nil
}

// hasList reports whether a list of the given name is configured.
func hasList(lists []config.ValueList, name string) bool {
	for _, list := range lists {
		if list.Name == name {
			return true
		}
	}
	return false
}
