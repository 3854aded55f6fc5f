// Command featuretable looks up rows, columns and cells of a CSV table keyed
// by its first column and header row, such as a feature matrix.
package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/kerem-kaynak/feature-collisions/pkg/table"
)

func main() {
	if len(os.Args) < 3 {
		printUsage()
		os.Exit(1)
	}

	tablePath := os.Args[1]
	command := os.Args[2]

	t, err := table.Load(tablePath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading table: %v\n", err)
		os.Exit(1)
	}

	switch command {
	case "row", "column", "get":
		if len(os.Args) < 4 {
			fmt.Printf("Error: %s requires a key\n", command)
			os.Exit(1)
		}
		key := os.Args[3]

		var values []string
		switch command {
		case "row":
			values, err = t.Row(key)
		case "column":
			values, err = t.Column(key)
		default:
			values, err = t.Get(key)
		}
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		fmt.Println(strings.Join(values, "\t"))

	case "cell":
		if len(os.Args) < 5 {
			fmt.Println("Error: cell requires a row key and a column key")
			os.Exit(1)
		}
		value, err := t.Cell(os.Args[3], os.Args[4])
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		fmt.Println(value)

	case "stats":
		header := t.Header()
		fmt.Printf("Table: %s\n", tablePath)
		fmt.Printf("Rows: %d\n", t.Len())
		fmt.Printf("Columns: %d\n", len(header))
		if len(header) > 0 {
			fmt.Printf("Header: %s\n", strings.Join(header, ", "))
		}

	default:
		fmt.Printf("Unknown command: %s\n", command)
		printUsage()
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Println("Usage: featuretable <table.csv> <command> [args...]")
	fmt.Println()
	fmt.Println("Commands:")
	fmt.Println("  row <key>               Print the row labelled key")
	fmt.Println("  column <key>            Print the column labelled key")
	fmt.Println("  get <key>               Print the row, or else the column, labelled key")
	fmt.Println("  cell <row> <column>     Print a single cell")
	fmt.Println("  stats                   Show table statistics")
}
