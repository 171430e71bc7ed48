package pipeline

import (
	"context"
	"errors"
	"fmt"

	"versesmith/internal/analysis"
	"versesmith/internal/config"
	"versesmith/internal/llm"
	"versesmith/internal/prompt"
	"versesmith/internal/response"
	"versesmith/internal/suggest"
)

// Stage represents a pipeline stage
type Stage int

const (
	StageAnalyzing Stage = iota
	StagePrompting
	StageInvoking
	StageParsing
	StageMerging
	StageDone
)

func (s Stage) String() string {
	switch s {
	case StageAnalyzing:
		return "Analyzing"
	case StagePrompting:
		return "Prompting"
	case StageInvoking:
		return "Invoking model"
	case StageParsing:
		return "Parsing"
	case StageMerging:
		return "Merging"
	case StageDone:
		return "Done"
	default:
		return "Unknown"
	}
}

// Progress represents pipeline progress
type Progress struct {
	Stage       Stage
	StageIndex  int
	TotalStages int
	Message     string
}

// Result contains everything one pass over a poem produced
type Result struct {
	Analysis    *analysis.PoemAnalysis
	Prompt      string
	RawResponse string
	Suggestions []suggest.Suggestion
	Heuristic   *suggest.Result
	Metadata    response.Metadata
	UsedModel   bool
	Truncated   bool
}

// Pipeline turns a poem into suggestions, via the model when one is
// configured and via the heuristic tables always
type Pipeline struct {
	runner     llm.Runner // nil means heuristic-only
	cfg        *config.Config
	tables     *suggest.Tables
	onProgress func(Progress)
}

// New creates a pipeline. A nil runner is fine; the heuristic path needs
// no model.
func New(runner llm.Runner, cfg *config.Config) (*Pipeline, error) {
	if cfg == nil {
		cfg = config.DefaultConfig()
	}

	tables := suggest.DefaultTables()
	if cfg.TablesPath != "" {
		loaded, err := suggest.LoadTables(cfg.TablesPath)
		if err != nil {
			return nil, fmt.Errorf("loading substitution tables: %w", err)
		}
		tables = loaded
	}

	return &Pipeline{
		runner: runner,
		cfg:    cfg,
		tables: tables,
	}, nil
}

// SetProgressCallback sets the progress callback
func (p *Pipeline) SetProgressCallback(fn func(Progress)) {
	p.onProgress = fn
}

const totalStages = 5

func (p *Pipeline) progress(stage Stage, msg string) {
	if p.onProgress != nil {
		p.onProgress(Progress{
			Stage:       stage,
			StageIndex:  int(stage),
			TotalStages: totalStages,
			Message:     msg,
		})
	}
}

// Process runs the full suggestion flow over one poem
func (p *Pipeline) Process(ctx context.Context, poemText string) (*Result, error) {
	p.progress(StageAnalyzing, "Scoring lines for singability...")

	a := analysis.Analyze(poemText)
	if a.LineCount() == 0 {
		return nil, fmt.Errorf("no lines to analyze")
	}

	result := &Result{
		Analysis: a,
		Metadata: response.Metadata{Success: true},
	}

	result.Heuristic = suggest.GenerateFromAnalysis(a, suggest.Options{
		MinSeverity:    analysis.Severity(p.cfg.MinSeverity),
		MaxSuggestions: p.cfg.MaxSuggestions,
		Tables:         p.tables,
	})

	p.progress(StagePrompting, "Building the suggestion prompt...")

	promptText, err := prompt.CreateSuggestionPrompt(a, p.cfg.MaxSuggestions)
	if err != nil {
		return nil, fmt.Errorf("building prompt: %w", err)
	}
	truncation := prompt.TruncatePromptIfNeeded(promptText, p.cfg.PromptTokenBudget)
	result.Prompt = truncation.Text
	result.Truncated = truncation.WasTruncated
	if truncation.WasTruncated {
		result.Metadata.Warnings = append(result.Metadata.Warnings, truncation.Message)
	}

	if p.runner == nil {
		result.Suggestions = result.Heuristic.Suggestions
		p.progress(StageDone, "Heuristic suggestions ready")
		return result, nil
	}

	p.progress(StageInvoking, fmt.Sprintf("Asking %s...", p.runner.Name()))

	raw, err := p.runner.Invoke(ctx, result.Prompt)
	if errors.Is(err, llm.ErrNotConfigured) {
		result.Suggestions = result.Heuristic.Suggestions
		p.progress(StageDone, "Heuristic suggestions ready")
		return result, nil
	}
	if err != nil {
		return nil, err
	}
	result.RawResponse = raw
	result.UsedModel = true

	p.progress(StageParsing, "Reading the model's reply...")

	parsed, meta := response.ParseSuggestionResponse(raw)
	result.Metadata = response.Combine(result.Metadata, meta)
	// An unusable model reply is not fatal when the heuristic path still
	// delivers; the metadata keeps the errors for the caller to surface
	if !result.Metadata.Success && len(result.Heuristic.Suggestions) > 0 {
		result.Metadata.Success = true
		result.Metadata.Warnings = append(result.Metadata.Warnings,
			"Model reply was unusable; showing heuristic suggestions only")
	}

	p.progress(StageMerging, "Merging model and heuristic suggestions...")

	result.Suggestions = merge(parsed, result.Heuristic.Suggestions, p.cfg.MaxSuggestions)

	p.progress(StageDone, fmt.Sprintf("%d suggestions ready", len(result.Suggestions)))

	return result, nil
}

// merge prefers model suggestions, fills remaining room with heuristic
// ones, and drops anything sharing a (line, position, word) key with an
// earlier entry
func merge(model, heuristic []suggest.Suggestion, limit int) []suggest.Suggestion {
	combined := make([]suggest.Suggestion, 0, len(model)+len(heuristic))
	combined = append(combined, model...)
	combined = append(combined, heuristic...)

	deduped, _ := suggest.Dedupe(combined)
	if limit > 0 && len(deduped) > limit {
		deduped = deduped[:limit]
	}
	return deduped
}
