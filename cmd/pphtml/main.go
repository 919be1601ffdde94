package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	pphtml "github.com/7696122/pp-html"
	"github.com/7696122/pp-html/lib/encoding"
	"github.com/7696122/pp-html/lib/sexp"
)

const version = "0.1.0"

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	cmd := os.Args[1]
	args := os.Args[2:]

	switch cmd {
	case "render":
		if err := runRender(args); err != nil {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
			os.Exit(1)
		}
	case "preview":
		if err := runPreview(args); err != nil {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
			os.Exit(1)
		}
	case "reformat":
		if err := runReformat(args); err != nil {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
			os.Exit(1)
		}
	case "pack":
		if err := runPack(args); err != nil {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
			os.Exit(1)
		}
	case "version":
		fmt.Printf("pphtml version %s\n", version)
	case "help", "-h", "--help":
		printUsage()
	default:
		fmt.Fprintf(os.Stderr, "unknown command: %s\n", cmd)
		printUsage()
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Println(`pphtml - compile symbolic trees to HTML/XML

Usage:
  pphtml <command> [flags] [file]

Commands:
  render     Compile a tree literal to markup
  preview    Compile and print with indentation
  reformat   Insert line breaks into existing flat markup
  pack       Encode a tree literal as a binary tree file
  version    Print version
  help       Show this help

Input is read from the named file, or stdin when the file is "-" or
omitted. Tree literals look like:

  (div @main .card :href "/home" "hello" (span 42))

Flags for render and preview:
  -xml             XML mode (fixed declaration header, paired elements)
  -packed          Input is a binary tree from 'pack', not a literal
  -o file          Write output to file instead of stdout
  -doctype words   DOCTYPE words, comma-separated (default "html")
  -tags names      Extra allowed tags, comma-separated

Examples:
  pphtml render page.sexp
  pphtml render -xml -o feed.xml feed.sexp
  pphtml preview page.sexp
  pphtml reformat -xml feed.xml
  pphtml pack -o page.tree page.sexp`)
}

func runRender(args []string) error {
	fs := flag.NewFlagSet("render", flag.ExitOnError)
	xml := fs.Bool("xml", false, "XML mode")
	packed := fs.Bool("packed", false, "input is a packed binary tree")
	out := fs.String("o", "", "output file (default stdout)")
	doctype := fs.String("doctype", "", "comma-separated DOCTYPE words")
	tags := fs.String("tags", "", "comma-separated extension tags")
	if err := fs.Parse(args); err != nil {
		return err
	}

	tree, err := readTree(fs.Arg(0), *packed)
	if err != nil {
		return err
	}

	markup, err := pphtml.Render(tree, renderOptions(*xml, *doctype, *tags)...)
	if err != nil {
		return err
	}
	return writeOutput(*out, markup+"\n")
}

func runPreview(args []string) error {
	fs := flag.NewFlagSet("preview", flag.ExitOnError)
	xml := fs.Bool("xml", false, "XML mode")
	packed := fs.Bool("packed", false, "input is a packed binary tree")
	indent := fs.Int("indent", 2, "spaces per nesting level")
	doctype := fs.String("doctype", "", "comma-separated DOCTYPE words")
	tags := fs.String("tags", "", "comma-separated extension tags")
	if err := fs.Parse(args); err != nil {
		return err
	}

	tree, err := readTree(fs.Arg(0), *packed)
	if err != nil {
		return err
	}

	opts := renderOptions(*xml, *doctype, *tags)
	opts = append(opts, pphtml.WithIndenter(pphtml.NewIndenter(*indent)))
	return pphtml.Preview(os.Stdout, tree, opts...)
}

func runReformat(args []string) error {
	fs := flag.NewFlagSet("reformat", flag.ExitOnError)
	xml := fs.Bool("xml", false, "XML mode")
	out := fs.String("o", "", "output file (default stdout)")
	if err := fs.Parse(args); err != nil {
		return err
	}

	src, err := readInput(fs.Arg(0))
	if err != nil {
		return err
	}

	var markup string
	if *xml {
		markup = pphtml.ReformatXML(string(src))
	} else {
		markup = pphtml.ReformatHTML(string(src))
	}
	return writeOutput(*out, markup)
}

func runPack(args []string) error {
	fs := flag.NewFlagSet("pack", flag.ExitOnError)
	out := fs.String("o", "", "output file (default stdout)")
	if err := fs.Parse(args); err != nil {
		return err
	}

	tree, err := readTree(fs.Arg(0), false)
	if err != nil {
		return err
	}

	data, err := encoding.Marshal(tree)
	if err != nil {
		return err
	}
	return writeOutput(*out, string(data))
}

func readTree(path string, packed bool) (pphtml.Node, error) {
	src, err := readInput(path)
	if err != nil {
		return nil, err
	}
	if packed {
		return encoding.Unmarshal(src)
	}
	return sexp.Parse(string(src))
}

func readInput(path string) ([]byte, error) {
	if path == "" || path == "-" {
		return io.ReadAll(os.Stdin)
	}
	return os.ReadFile(path)
}

func renderOptions(xml bool, doctype, tags string) []pphtml.Option {
	var opts []pphtml.Option
	if xml {
		opts = append(opts, pphtml.XML())
	}
	if doctype != "" {
		opts = append(opts, pphtml.WithDoctype(splitList(doctype)...))
	}
	if tags != "" {
		opts = append(opts, pphtml.WithTags(splitList(tags)...))
	}
	return opts
}

func splitList(s string) []string {
	parts := strings.Split(s, ",")
	out := parts[:0]
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

func writeOutput(path, content string) error {
	if path == "" {
		_, err := os.Stdout.WriteString(content)
		return err
	}
	return os.WriteFile(path, []byte(content), 0o644)
}
