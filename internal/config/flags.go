package config

import (
	"flag"
	"os"

	"github.com/dmitrijs2005/jrn/internal/flagx"
)

// parseFlags populates selected Config fields from command-line flags.
//
// Supported flags (short forms):
//
//	-f string   path of the journal file
//	-p string   journal password (insecure, prefer -P or the prompt)
//	-P string   file to read the journal password from
//	-F string   extension hint for entry content
//	-D          exit after the first executed command
//
// The function filters os.Args to only include the flags it knows about,
// using flagx.FilterArgs, to avoid interference with other components.
func parseFlags(cfg *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-f", "-p", "-P", "-F", "-D"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&cfg.JournalPath, "f", cfg.JournalPath, "path of the journal file")
	fs.StringVar(&cfg.Password, "p", cfg.Password, "journal password (insecure)")
	fs.StringVar(&cfg.PasswordFile, "P", cfg.PasswordFile, "file to read the journal password from")
	fs.StringVar(&cfg.FileType, "F", cfg.FileType, "extension hint for entry content")
	fs.BoolVar(&cfg.DontLoop, "D", cfg.DontLoop, "exit after the first executed command")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}
}
