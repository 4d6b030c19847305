package shell

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"syscall"

	"github.com/chzyer/readline"
	"github.com/kballard/go-shellquote"
	"github.com/rs/zerolog/log"

	"github.com/domino14/boggler/config"
	"github.com/domino14/boggler/dictionary"
	"github.com/domino14/boggler/grid"
	"github.com/domino14/boggler/stats"
)

// DefaultBoard is the board the shell starts with.
const DefaultBoard = "mlia/nuit/lenp/usee"

var (
	errNoData            = errors.New("no data in this line")
	errWrongOptionSyntax = errors.New("wrong format; all options need arguments")
	errQuit              = errors.New("quit")
)

type ShellController struct {
	l        *readline.Instance
	out      io.Writer
	config   *config.Config
	execPath string

	curGrid  *grid.Grid
	lexicon  dictionary.Lexicon
	lastRun  *solveResult
	lastSumm *stats.Summary
}

type shellcmd struct {
	cmd     string
	args    []string
	options CmdOptions
}

func filterInput(r rune) (rune, bool) {
	switch r {
	// block CtrlZ feature
	case readline.CharCtrlZ:
		return r, false
	}
	return r, true
}

func writeln(msg string, w io.Writer) {
	io.WriteString(w, msg)
	io.WriteString(w, "\n")
}

func (sc *ShellController) showMessage(msg string) {
	writeln(msg, sc.out)
}

func (sc *ShellController) showError(err error) {
	sc.showMessage("Error: " + err.Error())
}

// NewShellController makes an interactive shell on the terminal.
func NewShellController(cfg *config.Config, execPath string) *ShellController {
	sc := newController(cfg, execPath, nil)
	l, err := readline.NewEx(&readline.Config{
		Prompt:          "\033[32mboggler>\033[0m ",
		HistoryFile:     "/tmp/boggler-readline.tmp",
		AutoComplete:    NewShellCompleter(sc),
		EOFPrompt:       "exit",
		InterruptPrompt: "^C",

		HistorySearchFold:   true,
		FuncFilterInputRune: filterInput,
	})
	if err != nil {
		panic(err)
	}
	sc.l = l
	sc.out = l.Stderr()
	return sc
}

// NewBatchController makes a shell without a terminal, writing to out. It
// is used to run single commands from the command line.
func NewBatchController(cfg *config.Config, execPath string, out io.Writer) *ShellController {
	return newController(cfg, execPath, out)
}

func newController(cfg *config.Config, execPath string, out io.Writer) *ShellController {
	g, err := grid.Parse(DefaultBoard)
	if err != nil {
		panic(err)
	}
	return &ShellController{out: out, config: cfg, execPath: execPath, curGrid: g}
}

// LoadDefaultLexicon loads the configured default lexicon.
func (sc *ShellController) LoadDefaultLexicon() error {
	lex, err := dictionary.Get(sc.config, sc.config.GetString(config.ConfigDefaultLexicon))
	if err != nil {
		return err
	}
	sc.lexicon = lex
	return nil
}

func extractFields(line string) (*shellcmd, error) {
	fields, err := shellquote.Split(line)
	if err != nil {
		return nil, err
	}
	if len(fields) == 0 {
		return nil, errNoData
	}
	cmd := fields[0]
	var args []string
	options := CmdOptions{}
	// handle options
	for idx := 1; idx < len(fields); idx++ {
		if strings.HasPrefix(fields[idx], "-") {
			// option
			if idx == len(fields)-1 {
				return nil, errWrongOptionSyntax
			}
			key := fields[idx][1:]
			options[key] = append(options[key], fields[idx+1])
			idx++
			continue
		}
		args = append(args, fields[idx])
	}
	log.Debug().Msgf("cmd: %v, args: %v, options: %v", cmd, args, options)
	return &shellcmd{cmd: cmd, args: args, options: options}, nil
}

func (sc *ShellController) standardModeSwitch(line string) (*Response, error) {
	cmd, err := extractFields(line)
	if err != nil {
		return nil, err
	}
	switch cmd.cmd {
	case "exit", "bye":
		return nil, errQuit
	case "help":
		return sc.help(cmd)
	case "grid", "board":
		return sc.setGrid(cmd)
	case "random":
		return sc.random(cmd)
	case "lexicon":
		return sc.useLexicon(cmd)
	case "load":
		return sc.load(cmd)
	case "solve":
		return sc.solve(cmd)
	case "show":
		return sc.show(cmd)
	case "stats":
		return sc.stats(cmd)
	case "hist":
		return sc.hist(cmd)
	case "export":
		return sc.export(cmd)
	case "set":
		return sc.set(cmd)
	default:
		msg := fmt.Sprintf("command %v not found", strconv.Quote(cmd.cmd))
		log.Info().Msg(msg)
		return nil, errors.New(msg)
	}
}

// Execute runs one shell command line. It returns an error if the command
// failed; the response, if any, has already been written out.
func (sc *ShellController) Execute(line string) error {
	resp, err := sc.standardModeSwitch(line)
	if errors.Is(err, errQuit) {
		return nil
	}
	if err != nil {
		return err
	}
	if resp != nil && resp.message != "" {
		sc.showMessage(resp.message)
	}
	return nil
}

func (sc *ShellController) Loop(sig chan os.Signal) {

	defer sc.l.Close()

	for {

		line, err := sc.l.Readline()
		if err == readline.ErrInterrupt {
			if len(line) == 0 {
				sig <- syscall.SIGINT
				break
			} else {
				continue
			}
		} else if err == io.EOF {
			sig <- syscall.SIGINT
			break
		}
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		resp, err := sc.standardModeSwitch(line)
		if errors.Is(err, errQuit) {
			sig <- syscall.SIGINT
			break
		} else if err != nil {
			sc.showError(err)
		} else if resp != nil && resp.message != "" {
			sc.showMessage(resp.message)
		}
	}
	log.Debug().Msgf("Exiting readline loop...")
}
