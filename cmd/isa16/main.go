// Command isa16 loads a v2.0 raw program image and runs it on the
// interpreter, attaching a console sink and, optionally, a telnet terminal.
package main

import (
	"flag"
	"log"

	"isa16/cpu"
	"isa16/mem"
	"isa16/term"
)

func main() {
	log.SetFlags(0)
	filename := flag.String("f", "program.hex", "program image to load")
	verbose := flag.Bool("v", false, "trace each instruction")
	debug := flag.Bool("d", false, "enable the interactive step debugger")
	limit := flag.Int("n", 0, "stop after this many instructions (0 = unbounded)")
	tty := flag.Bool("tty", false, "enable the telnet terminal on 127.0.0.1:23")
	flag.Parse()

	memory := mem.NewMemory()
	top, err := mem.LoadImage(*filename, memory)
	if err != nil {
		log.Fatal(err)
	}
	log.Printf("isa16: loaded %s, top word %#04x", *filename, top)

	console := term.NewConsole()

	var terminal *term.Terminal
	if *tty {
		terminal = term.NewTerminal("127.0.0.1:23")
	}

	machine := cpu.NewCPUState(memory, mem.NewIOBus(console, terminal))

	if *debug {
		cpu.Debug(machine)
		return
	}

	for steps := 0; *limit == 0 || steps < *limit; steps++ {
		if *verbose {
			log.Printf("isa16: %s", machine)
		}
		if err := machine.Step(); err != nil {
			log.Fatal(err)
		}
		if machine.Halted() {
			break
		}
	}
}
