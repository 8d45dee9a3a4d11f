// Command xonshlexdump drives the external scanner stand-alone, with no
// grammar behind it, and prints the special-purpose token stream it would
// hand to a GLR parser. Plain Python/shell text the scanner has no opinion
// about is skipped silently, one codepoint at a time.
package main

import (
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	xonshlex "github.com/oscarvarto/xonsh-tree-sitter"
)

func main() {
	var verbose bool

	cmd := &cobra.Command{
		Use:   "xonshlexdump <file>",
		Short: "Dump the external scanner's token stream for a xonsh-dialect source file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return dump(args[0], verbose)
		},
	}
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "attach a debug logger to the scanner")

	if err := cmd.Execute(); err != nil {
		logrus.Fatal(err)
	}
}

var (
	outsideStringValid = xonshlex.ValidSymbols(0).With(
		xonshlex.NEWLINE, xonshlex.INDENT, xonshlex.DEDENT,
		xonshlex.SUBPROCESS_START, xonshlex.SUBPROCESS_MACRO_START,
		xonshlex.BLOCK_MACRO_START, xonshlex.PATH_PREFIX, xonshlex.STRING_START,
		xonshlex.LOGICAL_AND, xonshlex.LOGICAL_OR, xonshlex.BACKGROUND_AMP,
		xonshlex.KEYWORD_AND, xonshlex.KEYWORD_OR,
	)
	insideStringValid = xonshlex.ValidSymbols(0).With(
		xonshlex.STRING_CONTENT, xonshlex.ESCAPE_INTERPOLATION,
	)
)

func dump(path string, verbose bool) error {
	raw, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	src := string(raw)

	var opts []xonshlex.Option
	if verbose {
		logger := logrus.New()
		logger.SetLevel(logrus.DebugLevel)
		opts = append(opts, xonshlex.WithLogger(logger))
	}
	scanner, err := xonshlex.NewScanner(opts...)
	if err != nil {
		return err
	}

	lx := xonshlex.NewRuneLexer(src)

	for {
		insideString := scanner.InsideString()
		valid := outsideStringValid
		if insideString {
			valid = insideStringValid
		}

		lx.BeginToken()
		tt, ok := scanner.Scan(lx, valid)
		if ok {
			line, col := lineCol(src, lx.Offset())
			fmt.Printf("%4d:%-3d %-24s %q\n", line, col, tt, lx.TokenText())
			continue
		}

		// Drop whatever the failed Scan peeked, so the EOF check and the
		// skip below start from the committed boundary.
		lx.BeginToken()
		if lx.IsEOF() {
			if insideString {
				delim, _ := scanner.TopDelimiter()
				line, col := lineCol(src, lx.Offset())
				return xonshlex.WrapWithSource(
					&xonshlex.UnterminatedStringError{Line: line, Col: col, Delim: delim},
					path, src,
				)
			}
			return nil
		}

		lx.Skip()
	}
}

// lineCol walks src up to offset (a rune index) to compute 1-based line and
// column numbers for diagnostics. The scanner itself never needs this: it
// works purely in codepoint offsets, leaving position tracking to whatever
// token-span bookkeeping the real grammar host already does.
func lineCol(src string, offset int) (line, col int) {
	line, col = 1, 1
	for i, r := range []rune(src) {
		if i >= offset {
			break
		}
		if r == '\n' {
			line++
			col = 1
		} else {
			col++
		}
	}
	return line, col
}
