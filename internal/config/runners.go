package config

// RunnerInfo describes a known model CLI the setup flow can offer
type RunnerInfo struct {
	ID          string
	Name        string
	Description string
	Command     string
	Args        []string
}

var Runners = []RunnerInfo{
	{
		ID:          "ollama",
		Name:        "Ollama",
		Description: "Local, free, private",
		Command:     "ollama",
		Args:        []string{"run", "llama3.1:8b"},
	},
	{
		ID:          "llm",
		Name:        "llm CLI",
		Description: "Simon Willison's llm tool, any backend",
		Command:     "llm",
	},
	{
		ID:          "aichat",
		Name:        "AIChat",
		Description: "All-in-one chat CLI",
		Command:     "aichat",
	},
	{
		ID:          "none",
		Name:        "No model",
		Description: "Heuristic suggestions only, or paste replies by hand",
		Command:     "",
	},
}

func GetRunner(id string) *RunnerInfo {
	for _, r := range Runners {
		if r.ID == id {
			return &r
		}
	}
	return nil
}
