package pipeline

import (
	"context"
	"errors"
	"strings"
	"testing"

	"versesmith/internal/config"
	"versesmith/internal/suggest"
)

type fakeRunner struct {
	reply string
	err   error
	// saw captures the prompt the pipeline sent
	saw string
}

func (f *fakeRunner) Name() string { return "fake" }

func (f *fakeRunner) Ping(context.Context) error { return nil }

func (f *fakeRunner) Invoke(_ context.Context, promptText string) (string, error) {
	f.saw = promptText
	return f.reply, f.err
}

const poem = "The strength of morning light\nIs softer than the night"

func TestProcessWithModel(t *testing.T) {
	runner := &fakeRunner{
		reply: `[{"originalWord":"softer","suggestedWord":"gentler","lineNumber":2,"position":1,"reason":"r","preservesMeaning":"yes"}]`,
	}

	p, err := New(runner, nil)
	if err != nil {
		t.Fatal(err)
	}

	result, err := p.Process(context.Background(), poem)
	if err != nil {
		t.Fatalf("Process: %v", err)
	}

	if !result.UsedModel {
		t.Error("UsedModel = false")
	}
	if !result.Metadata.Success {
		t.Errorf("Success = false, errors: %v", result.Metadata.Errors)
	}
	if !strings.Contains(runner.saw, "The strength of morning light") {
		t.Error("prompt sent to the runner should contain the poem")
	}

	// Model suggestion first, heuristic "strength" fill-in behind it
	if len(result.Suggestions) < 2 {
		t.Fatalf("got %d suggestions, want model + heuristic", len(result.Suggestions))
	}
	if result.Suggestions[0].SuggestedWord != "gentler" {
		t.Errorf("first suggestion = %+v, want the model's", result.Suggestions[0])
	}

	found := false
	for _, s := range result.Suggestions {
		if s.OriginalWord == "strength" && s.SuggestedWord == "power" {
			found = true
		}
	}
	if !found {
		t.Errorf("heuristic suggestion missing from %+v", result.Suggestions)
	}
}

func TestProcessHeuristicOnlyWithoutRunner(t *testing.T) {
	p, err := New(nil, nil)
	if err != nil {
		t.Fatal(err)
	}

	result, err := p.Process(context.Background(), poem)
	if err != nil {
		t.Fatalf("Process: %v", err)
	}

	if result.UsedModel {
		t.Error("UsedModel = true without a runner")
	}
	if !result.Metadata.Success {
		t.Error("heuristic-only run should succeed")
	}
	if len(result.Suggestions) == 0 {
		t.Error("expected heuristic suggestions")
	}
	if result.Prompt == "" {
		t.Error("prompt should still be built for manual use")
	}
}

func TestProcessUnusableReplyFallsBack(t *testing.T) {
	runner := &fakeRunner{reply: "I cannot help with that."}

	p, err := New(runner, nil)
	if err != nil {
		t.Fatal(err)
	}

	result, err := p.Process(context.Background(), poem)
	if err != nil {
		t.Fatalf("Process: %v", err)
	}

	if !result.Metadata.Success {
		t.Error("fallback to heuristics should still report success")
	}
	if len(result.Metadata.Errors) == 0 {
		t.Error("parse errors should be preserved in metadata")
	}
	if len(result.Suggestions) == 0 {
		t.Error("heuristic suggestions should fill in")
	}
}

func TestProcessRunnerError(t *testing.T) {
	runner := &fakeRunner{err: errors.New("boom")}

	p, err := New(runner, nil)
	if err != nil {
		t.Fatal(err)
	}

	if _, err := p.Process(context.Background(), poem); err == nil {
		t.Error("runner failure should surface as an error")
	}
}

func TestProcessEmptyPoem(t *testing.T) {
	p, err := New(nil, nil)
	if err != nil {
		t.Fatal(err)
	}

	if _, err := p.Process(context.Background(), "   \n\n  "); err == nil {
		t.Error("expected error for an empty poem")
	}
}

func TestProcessHonorsMaxSuggestions(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.MaxSuggestions = 1

	p, err := New(nil, cfg)
	if err != nil {
		t.Fatal(err)
	}

	result, err := p.Process(context.Background(), poem)
	if err != nil {
		t.Fatalf("Process: %v", err)
	}

	if len(result.Suggestions) != 1 {
		t.Errorf("got %d suggestions, want the configured cap of 1", len(result.Suggestions))
	}
}

func TestProcessReportsProgress(t *testing.T) {
	p, err := New(nil, nil)
	if err != nil {
		t.Fatal(err)
	}

	var stages []Stage
	p.SetProgressCallback(func(pr Progress) {
		stages = append(stages, pr.Stage)
	})

	if _, err := p.Process(context.Background(), poem); err != nil {
		t.Fatal(err)
	}

	if len(stages) == 0 || stages[0] != StageAnalyzing {
		t.Errorf("stages = %v, want to start with Analyzing", stages)
	}
	if stages[len(stages)-1] != StageDone {
		t.Errorf("stages = %v, want to end with Done", stages)
	}
}

func TestMerge(t *testing.T) {
	model := []suggest.Suggestion{
		{OriginalWord: "a", LineNumber: 1, Position: 0, SuggestedWord: "m1"},
	}
	heuristic := []suggest.Suggestion{
		{OriginalWord: "a", LineNumber: 1, Position: 0, SuggestedWord: "h1"}, // same key, dropped
		{OriginalWord: "b", LineNumber: 2, Position: 1, SuggestedWord: "h2"},
		{OriginalWord: "c", LineNumber: 3, Position: 0, SuggestedWord: "h3"},
	}

	merged := merge(model, heuristic, 2)

	if len(merged) != 2 {
		t.Fatalf("got %d merged, want 2", len(merged))
	}
	if merged[0].SuggestedWord != "m1" {
		t.Errorf("model suggestion should win the shared key, got %+v", merged[0])
	}
	if merged[1].SuggestedWord != "h2" {
		t.Errorf("merged[1] = %+v", merged[1])
	}
}
