package entities

// SourceType identifies what kind of content a script is generated from.
type SourceType string

const (
	SourceTopic  SourceType = "topic"
	SourceGitHub SourceType = "github"
	SourceScript SourceType = "script"
	SourceFile   SourceType = "file"
)

// Script is a generated narration script together with the presentation
// metadata shown alongside it. Description and Tags are optional; the
// file source produces neither.
type Script struct {
	Body        string
	Title       string
	Description string
	Tags        []string
}
