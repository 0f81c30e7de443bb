// Command m6502run is the reference driver: it loads a flat binary image
// into memory at a load address (--addr, default $0600), sets the program
// counter to that address, runs the
// interpreter to BRK, and prints the final machine state and cycle count.
package main

import (
	"fmt"
	"os"

	"github.com/go-faster/errors"

	"m6502/cpu"
	"m6502/internal/corelog"
	"m6502/mem"
)

func main() {
	ctx, _ := parseArgs(os.Args[1:])
	checkf(ctx.Run(), "%s", ctx.Command())
}

func (cmd *RunCmd) Run() error {
	cmd.Log.enable()

	image, err := os.ReadFile(cmd.Image)
	if err != nil {
		return errors.Wrapf(err, "read image %s", cmd.Image)
	}

	bus := mem.New()
	bus.Load(cmd.LoadAddr, image)

	c := cpu.NewCPU(bus)
	c.PC = cmd.LoadAddr

	if cmd.Trace != nil {
		c.SetTrace(cpu.NewTracer(cmd.Trace))
		defer cmd.Trace.Close()
	}

	corelog.ModCore.Debugf("loaded %d bytes at $%04X", len(image), cmd.LoadAddr)
	cycles := c.Run()

	fmt.Printf("A=$%02X X=$%02X Y=$%02X SP=$%02X PC=$%04X P=%s\n", c.A, c.X, c.Y, c.SP, c.PC, c.P)
	fmt.Printf("cycles: %d\n", cycles)
	return nil
}
