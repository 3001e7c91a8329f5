package model

// Prompt is a rendered test-writing instruction for one survived mutant.
type Prompt struct {
	File     string `json:"file" yaml:"file"`
	Line     int    `json:"line" yaml:"line"`
	Mutator  string `json:"mutator" yaml:"mutator"`
	Original string `json:"original" yaml:"original"`
	Mutated  string `json:"mutated" yaml:"mutated"`
	Text     string `json:"text" yaml:"text"`
}

// PromptGroup holds the prompts produced for a single mutator.
type PromptGroup struct {
	Mutator string   `json:"mutator" yaml:"mutator"`
	Prompts []Prompt `json:"prompts" yaml:"prompts"`
}

// PromptGroups maps mutator names to their prompts. Groups keep the order in
// which their mutator was first seen, prompts keep encounter order.
type PromptGroups struct {
	groups []PromptGroup
	index  map[string]int
}

// NewPromptGroups returns an empty grouping.
func NewPromptGroups() *PromptGroups {
	return &PromptGroups{index: make(map[string]int)}
}

// Add appends the prompt to the group keyed by its mutator.
func (pg *PromptGroups) Add(prompt Prompt) {
	if pg.index == nil {
		pg.index = make(map[string]int)
	}

	i, ok := pg.index[prompt.Mutator]
	if !ok {
		i = len(pg.groups)
		pg.index[prompt.Mutator] = i
		pg.groups = append(pg.groups, PromptGroup{Mutator: prompt.Mutator})
	}

	pg.groups[i].Prompts = append(pg.groups[i].Prompts, prompt)
}

// Len returns the number of distinct mutators.
func (pg *PromptGroups) Len() int {
	if pg == nil {
		return 0
	}

	return len(pg.groups)
}

// Total returns the number of prompts across all groups.
func (pg *PromptGroups) Total() int {
	if pg == nil {
		return 0
	}

	total := 0
	for _, group := range pg.groups {
		total += len(group.Prompts)
	}

	return total
}

// Get returns the group for mutator.
func (pg *PromptGroups) Get(mutator string) (PromptGroup, bool) {
	if pg == nil {
		return PromptGroup{}, false
	}

	i, ok := pg.index[mutator]
	if !ok {
		return PromptGroup{}, false
	}

	return pg.groups[i], true
}

// Groups returns the groups in first-encounter order.
func (pg *PromptGroups) Groups() []PromptGroup {
	if pg == nil {
		return nil
	}

	out := make([]PromptGroup, len(pg.groups))
	copy(out, pg.groups)

	return out
}

// Texts returns the rendered prompt texts of the group.
func (g PromptGroup) Texts() []string {
	texts := make([]string, 0, len(g.Prompts))
	for _, p := range g.Prompts {
		texts = append(texts, p.Text)
	}

	return texts
}
