package shell

import (
	"sort"
	"strings"

	"github.com/kballard/go-shellquote"
	"github.com/samber/lo"

	"github.com/domino14/boggler/config"
)

// ShellCompleter provides context-aware autocomplete for shell commands
type ShellCompleter struct {
	sc *ShellController
}

func NewShellCompleter(sc *ShellController) *ShellCompleter {
	return &ShellCompleter{sc: sc}
}

// CommandMetadata holds autocomplete information for a command
type CommandMetadata struct {
	Options []string
	Args    []string
}

var commandMetadata = map[string]CommandMetadata{
	"solve": {
		Options: []string{"-grid", "-prune", "-dedupe", "-threads", "-paths", "-quiet"},
	},
	"random": {
		Options: []string{"-size"},
	},
	"load": {
		Options: []string{"-file", "-kind", "-encoding", "-save"},
	},
	"hist": {
		Options: []string{"-bins"},
	},
	"export": {
		Options: []string{"-file"},
	},
	"show": {
		Args: []string{"settings"},
	},
	"help": {
		Args: []string{"grid", "solve", "load", "set"},
	},
}

var commandNames = []string{
	"help", "grid", "board", "random", "lexicon", "load", "solve", "show",
	"stats", "hist", "export", "set", "exit",
}

var boolValues = []string{"true", "false"}

// Do implements the readline.AutoCompleter interface.
func (c *ShellCompleter) Do(line []rune, pos int) ([][]rune, int) {
	text := string(line[:pos])

	fields, err := shellquote.Split(text)
	if err != nil {
		fields = strings.Fields(text)
	}
	endsWithSpace := len(text) > 0 && text[len(text)-1] == ' '

	var prefix string
	var completions []string

	if len(fields) == 0 || (len(fields) == 1 && !endsWithSpace) {
		if len(fields) == 1 {
			prefix = fields[0]
		}
		completions = commandNames
	} else {
		cmdName := fields[0]
		if !endsWithSpace {
			prefix = fields[len(fields)-1]
		}

		var lastCompleteField string
		if endsWithSpace {
			lastCompleteField = fields[len(fields)-1]
		} else if len(fields) > 1 {
			lastCompleteField = fields[len(fields)-2]
		}

		switch {
		case strings.HasPrefix(lastCompleteField, "-"):
			switch strings.TrimPrefix(lastCompleteField, "-") {
			case "prune", "dedupe", "paths", "quiet":
				completions = boolValues
			case "kind":
				completions = []string{config.KindTrie, config.KindHash}
			case "encoding":
				completions = []string{"utf8", "latin1"}
			case "size":
				completions = []string{"4", "5"}
			}
		case cmdName == "set" && lastCompleteField == "set":
			completions = lo.Keys(settable)
			sort.Strings(completions)
		case cmdName == "set" && len(fields) >= 2:
			switch fields[1] {
			case config.ConfigPrune, config.ConfigDedupe:
				completions = boolValues
			case config.ConfigDictionaryKind:
				completions = []string{config.KindTrie, config.KindHash}
			}
		}

		if completions == nil {
			if metadata, exists := commandMetadata[cmdName]; exists {
				if strings.HasPrefix(prefix, "-") || len(metadata.Args) == 0 {
					completions = metadata.Options
				} else {
					completions = metadata.Args
				}
			}
		}
	}

	var matches [][]rune
	for _, completion := range completions {
		if strings.HasPrefix(completion, prefix) {
			matches = append(matches, []rune(completion[len(prefix):]))
		}
	}
	return matches, len(prefix)
}
