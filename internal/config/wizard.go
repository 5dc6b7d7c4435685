package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/manifoldco/promptui"
)

// detectDecksDir checks the working directory for a conventional decks
// folder so the wizard can suggest it.
func detectDecksDir() string {
	for _, candidate := range []string{"decks", "presentations", "slides"} {
		if info, err := os.Stat(candidate); err == nil && info.IsDir() {
			return candidate
		}
	}
	return "decks"
}

// RunWizard runs an interactive configuration wizard and returns the
// resulting Config. It also saves the config to .deckview.yml.
func RunWizard() (*Config, error) {
	fmt.Println("Welcome to deckview! Let's configure your project.")
	fmt.Println()

	cfg := DefaultConfig()

	// 1. Theme selection.
	themePrompt := promptui.Select{
		Label: "Select presentation theme",
		Items: []string{"light", "dark", "midnight"},
	}
	_, themeStr, err := themePrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("theme selection: %w", err)
	}
	cfg.Theme = Theme(themeStr)

	// 2. Decks directory.
	decksPrompt := promptui.Prompt{
		Label:   "Directory containing deck documents",
		Default: detectDecksDir(),
	}
	decksDir, err := decksPrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("decks directory: %w", err)
	}
	cfg.DecksDir = decksDir

	// 3. Output directory.
	outputPrompt := promptui.Prompt{
		Label:   "Output directory for the static site",
		Default: cfg.OutputDir,
	}
	outputDir, err := outputPrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("output directory: %w", err)
	}
	cfg.OutputDir = outputDir

	// 4. Server port.
	portPrompt := promptui.Prompt{
		Label:   "Port for the live server",
		Default: strconv.Itoa(cfg.Port),
		Validate: func(s string) error {
			p, err := strconv.Atoi(s)
			if err != nil || p < 1 || p > 65535 {
				return fmt.Errorf("enter a port between 1 and 65535")
			}
			return nil
		},
	}
	portStr, err := portPrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("port: %w", err)
	}
	cfg.Port, _ = strconv.Atoi(portStr)

	// 5. Edit mode default.
	editPrompt := promptui.Select{
		Label: "Enable live editing by default when serving",
		Items: []string{"no", "yes"},
	}
	editIdx, _, err := editPrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("edit mode: %w", err)
	}
	cfg.Edit = editIdx == 1

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	if err := cfg.Save(".deckview.yml"); err != nil {
		return nil, err
	}

	fmt.Println()
	fmt.Println("Configuration saved to .deckview.yml")
	return cfg, nil
}
