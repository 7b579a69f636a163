// Copyright (c) 2018 Timo Savola. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Program aout2elf converts Plan 9 a.out executables to ELF.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"path"

	"github.com/tsavola/aout2elf"
	"github.com/tsavola/aout2elf/aout"
	"github.com/tsavola/aout2elf/internal/input"
	"github.com/tsavola/aout2elf/layout"
	"github.com/tsavola/aout2elf/object/debug/dump"
	"github.com/xyproto/env/v2"
	"golang.org/x/xerrors"
)

const (
	outputSuffix = ".elf"
	outputMode   = 0755

	disasmCount  = 16
	dataDumpSize = 256
)

var errUsage = errors.New("usage error")

func main() {
	log.SetFlags(0)
	log.SetPrefix(path.Base(os.Args[0]) + ": ")

	err := run(os.Args[1:], os.Stdout)
	switch {
	case err == nil:

	case err == flag.ErrHelp:
		os.Exit(0)

	case err == errUsage:
		os.Exit(2)

	default:
		log.Fatal(err)
	}
}

func usage(w io.Writer) {
	fmt.Fprintf(w, "Usage: %s convert [options] file\n", path.Base(os.Args[0]))
	fmt.Fprintf(w, "       %s parse [options] file\n", path.Base(os.Args[0]))
}

func run(args []string, stdout io.Writer) error {
	if len(args) == 0 {
		usage(os.Stderr)
		return errUsage
	}

	switch cmd := args[0]; cmd {
	case "convert":
		return convert(args[1:], stdout)

	case "parse":
		return parse(args[1:], stdout)

	case "help", "-h", "-help", "--help":
		usage(stdout)
		return flag.ErrHelp

	default:
		fmt.Fprintf(os.Stderr, "unknown command: %s\n", cmd)
		usage(os.Stderr)
		return errUsage
	}
}

func newFlagSet(name, args string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.Usage = func() {
		fmt.Fprintf(fs.Output(), "Usage: %s %s [options] %s\n\nOptions:\n", path.Base(os.Args[0]), name, args)
		fs.PrintDefaults()
	}
	return fs
}

// parseArgs accepts flags also after the positional argument.
func parseArgs(fs *flag.FlagSet, args []string) (filename string, err error) {
	var files []string

	for {
		if err = fs.Parse(args); err != nil {
			if err != flag.ErrHelp {
				err = errUsage
			}
			return
		}

		if fs.NArg() == 0 {
			break
		}

		files = append(files, fs.Arg(0))
		args = fs.Args()[1:]
	}

	if len(files) != 1 {
		fs.Usage()
		err = errUsage
		return
	}

	filename = files[0]
	return
}

func convert(args []string, stdout io.Writer) error {
	var (
		output         = ""
		sizeLastSymbol = env.Bool("AOUT2ELF_SIZE_LAST_SYMBOL")
		maxSize        = env.Int("AOUT2ELF_MAX_SIZE", 0)
		verbose        = env.Bool("AOUT2ELF_VERBOSE")
	)

	fs := newFlagSet("convert", "file")
	fs.StringVar(&output, "o", output, "output filename (default: input filename with "+outputSuffix+" suffix)")
	fs.BoolVar(&sizeLastSymbol, "size-last-symbol", sizeLastSymbol, "size the highest text symbol up to the end of text instead of omitting it")
	fs.IntVar(&maxSize, "max-size", maxSize, "maximum output image size in bytes (0 is unlimited)")
	fs.BoolVar(&verbose, "v", verbose, "verbose logging")

	filename, err := parseArgs(fs, args)
	if err != nil {
		return err
	}

	if output == "" {
		output = filename + outputSuffix
	}

	fmt.Fprintf(stdout, "File: %s\n", filename)

	in, err := input.Open(filename)
	if err != nil {
		return err
	}
	defer in.Close()

	config := &aout2elf.Config{
		SizeLastSymbol: sizeLastSymbol,
		MaxImageSize:   maxSize,
	}

	obj, err := aout2elf.Convert(config, in.Data)
	if err != nil {
		return xerrors.Errorf("%s: %w", filename, err)
	}

	if verbose {
		l := &obj.Layout
		log.Printf("architecture %v, %v", l.Machine, l.Class)
		log.Printf("entry point %#x", l.Entry)
		log.Printf("text %#x bytes at %#x, vaddr %#x", l.TextSize, l.TextOffset, l.TextAddr)
		log.Printf("data %#x bytes at %#x, vaddr %#x", l.DataSize, l.DataOffset, l.DataAddr)
		log.Printf("%d of %d symbols translated", len(obj.Symtab.Symbols)-1, len(obj.Symbols))
		log.Printf("writing %d bytes to %s", len(obj.Image), output)
	}

	return os.WriteFile(output, obj.Image, outputMode)
}

func parse(args []string, stdout io.Writer) error {
	var (
		debug   = false
		verbose = env.Bool("AOUT2ELF_VERBOSE")
	)

	fs := newFlagSet("parse", "file")
	fs.BoolVar(&debug, "debug", debug, "print section previews, header dump and disassembly")
	fs.BoolVar(&debug, "d", debug, "shorthand for -debug")
	fs.BoolVar(&verbose, "verbose", verbose, "dump symbol table entries")
	fs.BoolVar(&verbose, "v", verbose, "shorthand for -verbose")

	filename, err := parseArgs(fs, args)
	if err != nil {
		return err
	}

	fmt.Fprintf(stdout, "File: %s\n", filename)

	in, err := input.Open(filename)
	if err != nil {
		return err
	}
	defer in.Close()

	if dump.IsELF(in.Data) {
		return dump.ELF(stdout, in.Data)
	}

	f, err := aout.Parse(in.Data)
	if err != nil {
		return xerrors.Errorf("%s: %w", filename, err)
	}

	if err := dump.Summary(stdout, f, debug); err != nil {
		return err
	}

	if debug {
		width := dump.Width(int(os.Stdout.Fd()))
		l := layout.Plan(f.Machine, f.TextSize, f.DataSize, f.SymbolTableSize, f.EntryPoint)

		dump.Header(stdout, &f.Header)
		fmt.Fprintln(stdout)

		fmt.Fprintln(stdout, "text:")
		if err := dump.Text(stdout, f.Text, l.TextPaddr, f.Machine, disasmCount); err != nil {
			return err
		}
		fmt.Fprintln(stdout)

		data := f.Data
		if len(data) > dataDumpSize {
			data = data[:dataDumpSize]
		}
		if err := dump.Data(stdout, "data", data, l.DataPaddr, width); err != nil {
			return err
		}
	}

	syms, err := f.Symbols()

	if verbose {
		if err := dump.Symbols(stdout, syms); err != nil {
			return err
		}
	}

	fmt.Fprintf(stdout, "%d symbols read\n", len(syms))

	if err != nil {
		return xerrors.Errorf("%s: %w", filename, err)
	}
	return nil
}
