package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/alecthomas/kong"

	"m6502/internal/cliutil"
	"m6502/internal/corelog"
)

type CLI struct {
	Run     RunCmd     `cmd:"" help:"Load a flat binary image and run it to BRK." default:"1"`
	Version VersionCmd `cmd:"" help:"Print the interpreter version."`
}

type RunCmd struct {
	Image string `arg:"" name:"image" help:"Path to a flat binary program image." type:"existingfile"`

	LoadAddr uint16           `name:"addr" help:"Address to load the image at." default:"0x0600"`
	Trace    *cliutil.Outfile `name:"trace" help:"Write a disassembly trace log." placeholder:"FILE|stdout|stderr"`
	Log      logModMask       `name:"log" help:"${log_help}" placeholder:"mod0,mod1,..."`
}

type VersionCmd struct{}

const version = "m6502 0.1.0"

func (cmd *VersionCmd) Run() error {
	fmt.Println(version)
	return nil
}

var vars = kong.Vars{
	"log_help": "Enable debug logging for the named modules (comma-separated), or \"all\"/\"no\".",
}

func parseArgs(args []string) (*kong.Context, *CLI) {
	var cli CLI
	parser, err := kong.New(&cli,
		kong.Name("m6502run"),
		kong.Description("Load and interpret a 6502 machine-code image."),
		kong.UsageOnError(),
		vars)
	if err != nil {
		panic(err)
	}

	ctx, err := parser.Parse(args)
	checkf(err, "failed to parse command line")
	return ctx, &cli
}

// logModMask decodes the --log flag's comma-separated module list into a
// bitmask of modules to enable Debugf output for.
type logModMask uint64

// Decode implements kong.MapperValue.
func (lm *logModMask) Decode(ctx *kong.DecodeContext) error {
	tok := ctx.Scan.Pop()
	all, none := false, false

	for _, name := range strings.Split(tok.Value.(string), ",") {
		switch name {
		case "all":
			all = true
		case "no":
			none = true
		default:
			mod, ok := corelog.ModuleByName(name)
			if !ok {
				return fmt.Errorf("unknown log module %q (known: %s)", name, strings.Join(corelog.ModuleNames(), ", "))
			}
			*lm |= logModMask(1) << uint(mod)
		}
	}
	if none && all {
		return fmt.Errorf("cannot combine \"all\" and \"no\"")
	}
	if all {
		*lm = ^logModMask(0)
	}
	return nil
}

// enable turns on debug logging for every module named in the mask.
func (lm logModMask) enable() {
	for _, name := range corelog.ModuleNames() {
		mod, ok := corelog.ModuleByName(name)
		if ok && lm&(logModMask(1)<<uint(mod)) != 0 {
			corelog.EnableDebug(mod)
		}
	}
}

func checkf(err error, format string, args ...any) {
	if err == nil {
		return
	}
	fatalf(format+": %s", append(args, err)...)
}

func fatalf(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "m6502run: fatal: %s\n", fmt.Sprintf(format, args...))
	os.Exit(1)
}
