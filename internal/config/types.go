package config

// Layout controls how wide the page content is allowed to grow.
type Layout string

const (
	LayoutWide     Layout = "wide"
	LayoutCentered Layout = "centered"
)

// Config is the top-level profiler configuration, corresponding to profiler.yml.
type Config struct {
	Page         PageConfig         `yaml:"page" koanf:"page"`
	Server       ServerConfig       `yaml:"server" koanf:"server"`
	Photo        string             `yaml:"photo" koanf:"photo"`
	Publications PublicationsConfig `yaml:"publications" koanf:"publications"`
	Profile      Profile            `yaml:"profile" koanf:"profile"`
}

// PageConfig holds the browser chrome: tab title, icon and layout.
type PageConfig struct {
	Title  string `yaml:"title" koanf:"title" validate:"required"`
	Icon   string `yaml:"icon" koanf:"icon"`
	Layout Layout `yaml:"layout" koanf:"layout"`
}

// ServerConfig holds settings for `profiler serve`.
type ServerConfig struct {
	Port     int  `yaml:"port" koanf:"port" validate:"gte=0,lte=65535"`
	AllowAll bool `yaml:"allow_all" koanf:"allow_all"`
}

// PublicationsConfig points at the publications CSV and how to read it.
type PublicationsConfig struct {
	File       string `yaml:"file" koanf:"file" validate:"required"`
	Encoding   string `yaml:"encoding" koanf:"encoding"`
	YearColumn string `yaml:"year_column" koanf:"year_column" validate:"required"`
}

// Profile is the copy rendered on the page.
type Profile struct {
	Name             string `yaml:"name" koanf:"name" validate:"required"`
	Field            string `yaml:"field" koanf:"field"`
	Institution      string `yaml:"institution" koanf:"institution"`
	Degrees          string `yaml:"degrees" koanf:"degrees"`
	Greeting         string `yaml:"greeting" koanf:"greeting"`
	PhotoPlaceholder string `yaml:"photo_placeholder" koanf:"photo_placeholder"`

	// Bio paragraphs are markdown.
	Bio []string `yaml:"bio" koanf:"bio"`

	Curiosities  CardSection         `yaml:"curiosities" koanf:"curiosities"`
	Journey      JourneySection      `yaml:"journey" koanf:"journey"`
	Research     ResearchSection     `yaml:"research" koanf:"research"`
	Publications PublicationsSection `yaml:"publications" koanf:"publications"`
	Hobbies      CardSection         `yaml:"hobbies" koanf:"hobbies"`
	Contact      ContactSection      `yaml:"contact" koanf:"contact"`
}

// CardSection is a heading followed by a row of gradient cards.
type CardSection struct {
	Title string   `yaml:"title" koanf:"title"`
	Items []string `yaml:"items" koanf:"items"`
}

// JourneySection lists research stages in order; the last one is current.
type JourneySection struct {
	Title  string   `yaml:"title" koanf:"title"`
	Stages []string `yaml:"stages" koanf:"stages"`
}

// ResearchSection is the research-focus bar chart.
type ResearchSection struct {
	Title   string       `yaml:"title" koanf:"title"`
	Stages  []FocusStage `yaml:"stages" koanf:"stages" validate:"dive"`
	Caption string       `yaml:"caption" koanf:"caption"`
}

// FocusStage is one bar of the research-focus chart, in percent.
type FocusStage struct {
	Stage string  `yaml:"stage" koanf:"stage" validate:"required"`
	Focus float64 `yaml:"focus" koanf:"focus" validate:"gte=0"`
}

// PublicationsSection holds the labels around the publications table.
type PublicationsSection struct {
	Title            string `yaml:"title" koanf:"title"`
	SearchLabel      string `yaml:"search_label" koanf:"search_label"`
	ExpanderLabel    string `yaml:"expander_label" koanf:"expander_label"`
	HistogramCaption string `yaml:"histogram_caption" koanf:"histogram_caption"`
	EmptyMessage     string `yaml:"empty_message" koanf:"empty_message"`
}

// ContactSection is the closing block of the page.
type ContactSection struct {
	Title string `yaml:"title" koanf:"title"`
	Note  string `yaml:"note" koanf:"note"`
	Email string `yaml:"email" koanf:"email" validate:"omitempty,email"`
}
