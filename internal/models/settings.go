package models

// ServerConfig holds connection settings for the logbook server.
type ServerConfig struct {
	URL string `yaml:"url"`
}

// EditorConfig holds defaults applied when an editor opens.
type EditorConfig struct {
	DefaultAuthors []string `yaml:"default_authors"`
}

// AttachmentsConfig holds settings for the attachment drop directory.
type AttachmentsConfig struct {
	DropDir string `yaml:"drop_dir"`
}

// Settings represents global application settings.
// This corresponds to ~/.lablog/settings.yaml.
type Settings struct {
	Version     int               `yaml:"version"`
	Server      ServerConfig      `yaml:"server"`
	Editor      EditorConfig      `yaml:"editor"`
	Attachments AttachmentsConfig `yaml:"attachments"`
	Debug       bool              `yaml:"debug"`
}

// NewSettings creates settings with default values.
func NewSettings() *Settings {
	return &Settings{
		Version: 1,
		Server: ServerConfig{
			URL: "http://localhost:8000",
		},
		Editor: EditorConfig{
			DefaultAuthors: nil,
		},
		Attachments: AttachmentsConfig{
			DropDir: "", // empty means the default ~/.lablog/attachments
		},
		Debug: false,
	}
}
