package domain

import (
	"fmt"

	m "gooze.dev/pkg/survivors/internal/model"
)

// promptFormat is consumed by downstream tooling; keep it byte-for-byte.
const promptFormat = "Write a unit test to detect a survived mutation\n" +
	"\n" +
	"- File: `%s`\n" +
	"- Line: %d\n" +
	"- Mutator: `%s`\n" +
	"- Original Code: `%s`\n" +
	"- Mutated Code: `%s`\n" +
	"\n" +
	"The test should fail if the mutation is present and pass otherwise."

// FormatPrompt renders the instruction for a single survived mutant.
func FormatPrompt(localPath string, line int, mutator, original, mutated string) string {
	return fmt.Sprintf(promptFormat, localPath, line, mutator, original, mutated)
}

// NewPrompt renders the prompt text and keeps the values it was built from.
func NewPrompt(localPath string, line int, mutator, original, mutated string) m.Prompt {
	return m.Prompt{
		File:     localPath,
		Line:     line,
		Mutator:  mutator,
		Original: original,
		Mutated:  mutated,
		Text:     FormatPrompt(localPath, line, mutator, original, mutated),
	}
}
