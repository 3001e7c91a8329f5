package domain

import (
	"regexp"
	"strings"
)

// PromptFileSuffix is appended to every sanitized mutator name.
const PromptFileSuffix = "_prompts.txt"

var nonWordRun = regexp.MustCompile(`[^A-Za-z0-9_]+`)

// MutatorFileName maps a mutator name to its prompt file name, e.g.
// "Block Statement/Removal" becomes "block_statement_removal_prompts.txt".
func MutatorFileName(mutator string) string {
	return nonWordRun.ReplaceAllString(strings.ToLower(mutator), "_") + PromptFileSuffix
}
