// Command levelcheck validates a level table and lints it for layouts that
// load fine but do not play. With no arguments it checks the embedded table.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/milk9111/voicejumper/levels"
)

func main() {
	strict := flag.Bool("strict", false, "exit non-zero when any finding is reported")
	flag.Parse()

	paths := flag.Args()
	if len(paths) == 0 {
		paths = []string{""}
	}

	failed := false
	for _, path := range paths {
		name, table, err := loadTable(path)
		if err != nil {
			log.Printf("%s: %v", name, err)
			failed = true
			continue
		}

		findings := Check(table)
		for i, lvl := range table.Levels {
			x, y := lvl.Spawn()
			fmt.Printf("%s: level %d %q: %d platforms, spawn (%.0f, %.0f), goal x %.0f\n",
				name, i+1, lvl.Name, len(lvl.Platforms), x, y, lvl.GoalX())
		}
		for _, f := range findings {
			fmt.Printf("%s: %s\n", name, f)
		}
		if *strict && len(findings) > 0 {
			failed = true
		}
	}

	if failed {
		os.Exit(1)
	}
}

// loadTable reads the table at path, or the embedded one when path is empty.
func loadTable(path string) (string, levels.Table, error) {
	if path == "" {
		table, err := levels.Load()
		return "embedded levels.yaml", table, err
	}
	table, err := levels.LoadFile(path)
	return path, table, err
}
