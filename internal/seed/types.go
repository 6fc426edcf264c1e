package seed

// Fixture is a YAML workspace snapshot for one user.
//
// Dates accept an absolute YYYY-MM-DD, a day offset from today such as "+3"
// or "-2", or a phrase like "tomorrow", "in 2 weeks" or "next friday", so
// fixtures stay useful as time passes.
type Fixture struct {
	UserID   string    `yaml:"user_id"`
	Projects []Project `yaml:"projects"`
	Tasks    []Task    `yaml:"tasks"`
	Events   []Event   `yaml:"events"`
	Notes    []Note    `yaml:"notes"`
	Files    []File    `yaml:"files"`
}

// Project nests the items that belong to it.
type Project struct {
	Name        string  `yaml:"name"`
	Description string  `yaml:"description"`
	Status      string  `yaml:"status"`
	Due         string  `yaml:"due"`
	Progress    int     `yaml:"progress"`
	Tasks       []Task  `yaml:"tasks"`
	Events      []Event `yaml:"events"`
	Notes       []Note  `yaml:"notes"`
	Files       []File  `yaml:"files"`
}

type Task struct {
	Title       string   `yaml:"title"`
	Description string   `yaml:"description"`
	Status      string   `yaml:"status"`
	Priority    string   `yaml:"priority"`
	Due         string   `yaml:"due"`
	Labels      []string `yaml:"labels"`
}

// Event starts on Date at At ("15:04"); all-day events ignore At.
type Event struct {
	Title       string `yaml:"title"`
	Description string `yaml:"description"`
	Location    string `yaml:"location"`
	Date        string `yaml:"date"`
	At          string `yaml:"at"`
	Duration    string `yaml:"duration"`
	AllDay      bool   `yaml:"all_day"`
}

type Note struct {
	Title   string `yaml:"title"`
	Content string `yaml:"content"`
	Pinned  bool   `yaml:"pinned"`
}

// File may point at a task or event of the same project by title.
type File struct {
	Name     string `yaml:"name"`
	Type     string `yaml:"type"`
	MimeType string `yaml:"mime_type"`
	Size     int64  `yaml:"size"`
	Task     string `yaml:"task"`
	Event    string `yaml:"event"`
}

// Summary counts what Apply inserted.
type Summary struct {
	Projects int
	Tasks    int
	Events   int
	Notes    int
	Files    int
}
