package usecase

import (
	"context"
	"fmt"
	"regexp"
	"strings"

	"go.uber.org/zap"

	"github.com/castwave/castwave/domain/entities"
	"github.com/castwave/castwave/domain/repositories"
)

// repoURLPattern extracts owner and repository from a github.com URL.
// Query strings, fragments, and trailing path segments beyond the
// repository name are ignored.
var repoURLPattern = regexp.MustCompile(`github\.com/([\w.-]+)/([\w.-]+)`)

// codeMarkers classify uploaded file content as source code rather
// than prose when any of them appears.
var codeMarkers = []string{"def ", "function", "import", "class", "const"}

// ScriptService turns source material into a narration script plus
// presentation metadata, choosing the prompt by source type.
type ScriptService struct {
	llm      repositories.LargeLanguageModel
	metadata repositories.RepositoryMetadata
	logger   *zap.Logger
}

// NewScriptService creates a new script service
func NewScriptService(
	llm repositories.LargeLanguageModel,
	metadata repositories.RepositoryMetadata,
	logger *zap.Logger,
) *ScriptService {
	return &ScriptService{
		llm:      llm,
		metadata: metadata,
		logger:   logger,
	}
}

// Generate dispatches on sourceType and returns the resulting script.
// A script source passes the content through untouched; the other
// sources run a model call.
func (s *ScriptService) Generate(ctx context.Context, sourceType entities.SourceType, content string) (*entities.Script, error) {
	if strings.TrimSpace(content) == "" {
		return nil, ErrEmptyContent
	}

	s.logger.Info("Generating script",
		zap.String("source_type", string(sourceType)),
		zap.Int("content_length", len(content)))

	switch sourceType {
	case entities.SourceTopic:
		return s.fromTopic(ctx, content)
	case entities.SourceGitHub:
		return s.fromGitHub(ctx, content)
	case entities.SourceScript:
		return s.fromUserScript(content), nil
	case entities.SourceFile:
		return s.fromFile(ctx, content)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownSourceType, string(sourceType))
	}
}

func (s *ScriptService) fromTopic(ctx context.Context, topic string) (*entities.Script, error) {
	prompt := fmt.Sprintf(
		"Write a detailed YouTube video script for the topic: %s.\n\n"+
			"**IMPORTANT INSTRUCTION:** The script must be highly practical and application-focused. "+
			"Avoid theoretical explanations. Instead, focus on real-world examples, practical use cases, step-by-step walkthroughs, and how this topic is applied in the industry. "+
			"If the topic involves code, provide conceptual code snippets and explain them.\n\n"+
			"Script Requirements:\n"+
			"- Minimum 1500 words\n- Engaging intro hook\n- 4 to 5 sections focused on practical applications\n"+
			"- A summary + call to action outro\n- Conversational tone\n- Output only the script.",
		topic)

	body, err := s.llm.Generate(ctx, prompt)
	if err != nil {
		return nil, fmt.Errorf("generating topic script: %w", err)
	}

	return &entities.Script{
		Body:        body,
		Title:       fmt.Sprintf("Practical Applications of %s", topic),
		Description: fmt.Sprintf("A hands-on guide to %s, focusing on real-world applications.", topic),
		Tags:        []string{topic, "Practical", "HowTo", "Tutorial", "Technology"},
	}, nil
}

func (s *ScriptService) fromGitHub(ctx context.Context, url string) (*entities.Script, error) {
	match := repoURLPattern.FindStringSubmatch(url)
	if match == nil {
		return nil, fmt.Errorf("%w: %q", ErrInvalidRepoURL, url)
	}
	owner, repo := match[1], match[2]

	readme, err := s.metadata.FetchReadme(ctx, owner, repo)
	if err != nil {
		return nil, fmt.Errorf("fetching readme for %s/%s: %w", owner, repo, err)
	}

	prompt := fmt.Sprintf(
		"You are a tech presenter. Based on the following README for the '%s' project, create a practical, engaging YouTube script. "+
			"Cover what problem it solves, its main features, how to get started, and potential use cases. "+
			"Make it conversational for developers. Output only the script.\n\n--- README ---\n%s",
		repo, readme)

	body, err := s.llm.Generate(ctx, prompt)
	if err != nil {
		return nil, fmt.Errorf("generating github script: %w", err)
	}

	return &entities.Script{
		Body:        body,
		Title:       fmt.Sprintf("Project Spotlight: A Deep Dive into %s", repo),
		Description: fmt.Sprintf("An exploration of the '%s' GitHub project. Learn what it does and how to use it.", repo),
		Tags:        []string{repo, "GitHub", "Open Source", "Programming", "Tutorial"},
	}, nil
}

func (s *ScriptService) fromUserScript(raw string) *entities.Script {
	return &entities.Script{
		Body:        raw,
		Title:       "User-Provided Script",
		Description: "Audio generated from a user-provided script.",
		Tags:        []string{"custom script", "tts"},
	}
}

// fromFile narrates an uploaded file. Content carrying code markers
// gets a tutorial prompt, anything else a summary prompt. The file
// path yields no description or tags.
func (s *ScriptService) fromFile(ctx context.Context, content string) (*entities.Script, error) {
	isCode := false
	for _, marker := range codeMarkers {
		if strings.Contains(content, marker) {
			isCode = true
			break
		}
	}

	var prompt, title string
	if isCode {
		prompt = "You are a coding instructor. Based on the provided code, generate a detailed, step-by-step YouTube tutorial script. " +
			"Explain how to build the project, the logic of the code, how to run it, and deployment considerations. " +
			"Make it clear and practical. Output only the script.\n\n--- CODE ---\n" + content
		title = "Step-by-Step Coding Tutorial"
	} else {
		prompt = "You are a presenter. Based on the provided text, create an engaging and explanatory YouTube script that " +
			"summarizes and explains the key points. Output only the script.\n\n--- TEXT ---\n" + content
		title = "Content Explained"
	}

	body, err := s.llm.Generate(ctx, prompt)
	if err != nil {
		return nil, fmt.Errorf("generating file script: %w", err)
	}

	return &entities.Script{Body: body, Title: title}, nil
}
