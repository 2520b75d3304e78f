package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/wishingwell/ls8/clue"
	"github.com/wishingwell/ls8/console"
	"github.com/wishingwell/ls8/cpu"
)

func main() {
	var compile string
	var save string
	var keyboard bool
	var verbose bool

	flag.StringVar(&compile, "c", "", ".asm file to assemble")
	flag.StringVar(&save, "s", "", "Save assembled payload text to file, do not execute")
	flag.BoolVar(&keyboard, "k", false, "Attach the raw console keyboard (ESC cancels)")
	flag.BoolVar(&verbose, "v", false, "Verbose mode")

	flag.Parse()

	if flag.NArg() > 1 {
		log.Fatalf("%v: Unknown arguments: %v", os.Args[0], flag.Args()[1:])
	}

	if err := run(compile, save, keyboard, verbose); err != nil {
		log.Fatal(err)
	}
}

func run(compile, save string, keyboard, verbose bool) (err error) {
	m := cpu.New()
	m.Verbose = verbose

	if len(compile) != 0 {
		inf, err := os.Open(compile)
		if err != nil {
			return err
		}
		defer inf.Close()

		asm := &cpu.Assembler{Verbose: verbose}
		image, err := asm.Parse(inf)
		if err != nil {
			return err
		}

		if len(save) != 0 {
			return os.WriteFile(save, []byte(cpu.Listing(image)), 0o644)
		}
		if err = m.LoadBytes(image); err != nil {
			return err
		}
	} else {
		file := "clue.ls8"
		if flag.NArg() == 1 {
			file = flag.Arg(0)
		}
		inf, err := os.Open(file)
		if err != nil {
			return err
		}
		defer inf.Close()

		if err = m.Load(inf); err != nil {
			return err
		}
	}

	if keyboard {
		raw, err := console.Open()
		if err != nil {
			return err
		}
		defer raw.Close()
		m.Keyboard = raw
	}

	output, err := m.Run()
	if err != nil {
		if verbose {
			log.Printf("machine state:\n%v", m)
		}
		return
	}

	fmt.Printf("%v\n", output)
	if room, rerr := clue.Extract(output); rerr == nil {
		fmt.Printf("room: %d\n", room)
	}

	return
}
