package config

// DefaultPort matches the port the page has historically been served on.
const DefaultPort = 8501

// DefaultProfile returns the page copy used when profiler.yml does not
// override it.
func DefaultProfile() Profile {
	return Profile{
		Name:             "Adegbola Aanuoluwa Eunice",
		Field:            "Electrochemistry & Nanosensing",
		Institution:      "North-West University, Mahikeng",
		Degrees:          "B.Tech, M.Tech, Ph.D in view",
		Greeting:         "Hello, I’m Eunice 🌷",
		PhotoPlaceholder: "No profile image 🌷",
		Bio: []string{
			"A small girl, greatly motivated by others’ successes, while observing the world with curiosity and wonder. " +
				"Over time, this curiosity grew into careful exploration of **chemistry, materials, and nanosensing**, " +
				"learning how tiny bits and small designs can make meaningful change.",
			"I am particularly drawn to **sustainable nanomaterials** and **electrochemical sensing**, " +
				"integrating green synthesis and thoughtful design to build stable, sensitive and selective detection systems.",
			"I enjoy a quiet, visual, and meaningful work : where progress unfolds steadily, thoughtfully, and deliberately.",
		},
		Curiosities: CardSection{
			Title: "What I’m becoming curious about lately",
			Items: []string{
				"🌱 Sustainable nanomaterials",
				"🔬 Electrochemical sensors",
				"🌍 Environmentally responsible chemistry",
				"✨ Turning data into understanding",
			},
		},
		Journey: JourneySection{
			Title: "My Research Journey So Far",
			Stages: []string{
				"📘 Foundations — Learning chemistry’s language",
				"📗 Application — Connecting chemistry to real world",
				"📙 Focus — Nanosensing, sustainability, and meaningful impact",
			},
		},
		Research: ResearchSection{
			Title: "Research evolution (a moment in motion)",
			Stages: []FocusStage{
				{Stage: "Computational Chemistry", Focus: 30},
				{Stage: "Applied / Food Chemistry", Focus: 30},
				{Stage: "Nanoscience & Nanosensing", Focus: 40},
			},
			Caption: "**Not an endpoint, but a milestone in a path of continuous growth.**",
		},
		Publications: PublicationsSection{
			Title:            "Things I’ve put into the world 🌱",
			SearchLabel:      "Search gently by keyword",
			ExpanderLabel:    "Open my publications",
			HistogramCaption: "How this space has grown over time",
			EmptyMessage:     "Publications will appear here soon 🌱",
		},
		Hobbies: CardSection{
			Title: "Beyond results: What keeps me inspired",
			Items: []string{
				"🎨 Visual patterns & designs",
				"📚 Reading & writing",
				"📝 Quiet reflection",
				"💻 Surfing the internet & exploring ideas",
				"🍰 Baking & cooking",
				"📊 Exploring data & patterns",
			},
		},
		Contact: ContactSection{
			Title: "Contact Me ✉️",
			Note:  "This page will keep changing , just like my work.",
			Email: "adegokeaanuoluwapo5@gmail.com",
		},
	}
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		Page: PageConfig{
			Title:  "Hello, I’m Eunice 🌷",
			Icon:   "🌷",
			Layout: LayoutWide,
		},
		Server: ServerConfig{
			Port: DefaultPort,
		},
		Photo: "my_photo.jpg.jpeg",
		Publications: PublicationsConfig{
			File:       "PUBLICATIONS.csv",
			Encoding:   "latin1",
			YearColumn: "YEAR",
		},
		Profile: DefaultProfile(),
	}
}
