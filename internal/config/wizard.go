package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/manifoldco/promptui"
)

// DefaultPath is where `profiler init` writes its configuration.
const DefaultPath = "profiler.yml"

// RunWizard runs an interactive configuration wizard and returns the
// resulting Config. It also saves the config to path.
func RunWizard(path string) (*Config, error) {
	fmt.Println("Welcome to profiler! Let's set up your page.")
	fmt.Println()

	cfg := DefaultConfig()

	// 1. Who the page is about.
	name, err := ask("Your full name", cfg.Profile.Name)
	if err != nil {
		return nil, fmt.Errorf("name: %w", err)
	}
	cfg.Profile.Name = name

	if cfg.Profile.Field, err = ask("Field of study", cfg.Profile.Field); err != nil {
		return nil, fmt.Errorf("field: %w", err)
	}
	if cfg.Profile.Institution, err = ask("Institution", cfg.Profile.Institution); err != nil {
		return nil, fmt.Errorf("institution: %w", err)
	}
	if cfg.Profile.Degrees, err = ask("Degrees", cfg.Profile.Degrees); err != nil {
		return nil, fmt.Errorf("degrees: %w", err)
	}

	// 2. Page title, defaulting to a greeting built from the given name.
	parts := strings.Fields(name)
	greeting := cfg.Page.Title
	if len(parts) > 0 && name != DefaultProfile().Name {
		greeting = fmt.Sprintf("Hello, I’m %s %s", parts[len(parts)-1], cfg.Page.Icon)
	}
	if cfg.Page.Title, err = ask("Page title", greeting); err != nil {
		return nil, fmt.Errorf("page title: %w", err)
	}
	cfg.Profile.Greeting = cfg.Page.Title

	// 3. Layout.
	layoutPrompt := promptui.Select{
		Label: "Select page layout",
		Items: []string{
			"wide     — content uses the full window",
			"centered — narrow reading column",
		},
	}
	layoutIdx, _, err := layoutPrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("layout selection: %w", err)
	}
	cfg.Page.Layout = []Layout{LayoutWide, LayoutCentered}[layoutIdx]

	// 4. Files.
	if cfg.Photo, err = ask("Profile photo file", cfg.Photo); err != nil {
		return nil, fmt.Errorf("photo: %w", err)
	}
	if cfg.Publications.File, err = ask("Publications CSV file", cfg.Publications.File); err != nil {
		return nil, fmt.Errorf("publications file: %w", err)
	}
	if cfg.Publications.Encoding, err = ask("Publications CSV encoding", cfg.Publications.Encoding); err != nil {
		return nil, fmt.Errorf("publications encoding: %w", err)
	}

	// 5. Contact.
	if cfg.Profile.Contact.Email, err = ask("Contact email", cfg.Profile.Contact.Email); err != nil {
		return nil, fmt.Errorf("contact email: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	for _, f := range []string{cfg.Photo, cfg.Publications.File} {
		if _, err := os.Stat(f); os.IsNotExist(err) {
			fmt.Printf("\nNote: %s does not exist yet; the page shows a placeholder until it does.\n", f)
		}
	}

	if err := cfg.Save(path); err != nil {
		return nil, fmt.Errorf("saving config: %w", err)
	}

	fmt.Printf("\nConfiguration saved to %s\n", path)
	return cfg, nil
}

func ask(label, def string) (string, error) {
	p := promptui.Prompt{
		Label:   label,
		Default: def,
	}
	v, err := p.Run()
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(v), nil
}
