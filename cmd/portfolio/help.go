package main

import (
	"fmt"
	"io"
)

// printUsage prints the main usage message.
func printUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: portfolio <command> [flags] [args]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Commands:")
	fmt.Fprintln(w, "  routes     List every page route")
	fmt.Fprintln(w, "  list       Show a section listing (or all sections)")
	fmt.Fprintln(w, "  show       Render one page with its next link")
	fmt.Fprintln(w, "  css        Print the code highlight stylesheet")
	fmt.Fprintln(w, "  version    Show version information")
	fmt.Fprintln(w, "  help       Show help for a command")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Run 'portfolio help <command>' for details on a specific command.")
}

// printCommonFlags prints the flags every content command accepts.
func printCommonFlags(w io.Writer) {
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Flags:")
	fmt.Fprintln(w, "  -s, --settings <name>     Settings file name or path (default \"settings\")")
	fmt.Fprintln(w, "  -r, --root <dir>          Content root; section paths resolve here")
	fmt.Fprintln(w, "      --static <dir>        Image store directory (default <root>/static)")
	fmt.Fprintln(w, "  -f, --format <s>          Output format: json, yaml")
	fmt.Fprintln(w, "  -w, --workers <n>         Sections loaded in parallel (0 = auto)")
	fmt.Fprintln(w, "  -q, --quiet               Only log errors")
	fmt.Fprintln(w, "  -v, --verbose             Log debug details")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Environment:")
	fmt.Fprintln(w, "  PORTFOLIO_SETTINGS, PORTFOLIO_ROOT, PORTFOLIO_STATIC, PORTFOLIO_WORKERS")
}

func printRoutesUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: portfolio routes [flags]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "List one {type, slug} route per markdown document of every section.")
	printCommonFlags(w)
}

func printListUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: portfolio list [route-type] [flags]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Render a section's documents in display order, with tags by frequency.")
	fmt.Fprintln(w, "Without a route type, every section is loaded, keyed by lowercased title.")
	printCommonFlags(w)
}

func printShowUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: portfolio show <route-type> <slug> [flags]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Render one document and attach the next item of its section.")
	printCommonFlags(w)
}

func printCSSUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: portfolio css [theme|style] [flags]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Print chroma class CSS. Themes: light, dark; or any chroma style name.")
	fmt.Fprintln(w, "Without an argument the theme from settings is used.")
	printCommonFlags(w)
}

// runHelp prints help for a specific command.
func runHelp(args []string, env *Environment) {
	if len(args) == 0 {
		printUsage(env.Stdout)
		return
	}

	switch args[0] {
	case "routes":
		printRoutesUsage(env.Stdout)
	case "list":
		printListUsage(env.Stdout)
	case "show":
		printShowUsage(env.Stdout)
	case "css":
		printCSSUsage(env.Stdout)
	case "version":
		fmt.Fprintln(env.Stdout, "Usage: portfolio version")
		fmt.Fprintln(env.Stdout)
		fmt.Fprintln(env.Stdout, "Show version information.")
	case "help":
		fmt.Fprintln(env.Stdout, "Usage: portfolio help [command]")
		fmt.Fprintln(env.Stdout)
		fmt.Fprintln(env.Stdout, "Show help for a command.")
	default:
		fmt.Fprintf(env.Stderr, "Unknown command: %s\n", args[0])
		printUsage(env.Stderr)
	}
}
