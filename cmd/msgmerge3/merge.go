package main

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/potools/msgmerge3/internal/catalog"
	"github.com/potools/msgmerge3/internal/catalogio"
	"github.com/potools/msgmerge3/internal/charset"
	"github.com/potools/msgmerge3/internal/debug"
	"github.com/potools/msgmerge3/internal/diagnostics"
	"github.com/potools/msgmerge3/internal/merge3"
)

var outputPath string

var mergeCmd = &cobra.Command{
	Use:   "merge A_FILE B_FILE ORIGIN_FILE",
	Short: "Three-way merge catalog A against B using ORIGIN as common ancestor",
	Args:  cobra.ExactArgs(3),
	RunE:  runMerge,
}

func init() {
	mergeCmd.Flags().StringVarP(&outputPath, "output", "o", "", "Write the merged catalog here (default: A_FILE with a .merged suffix)")
}

func runMerge(cmd *cobra.Command, args []string) error {
	runID := uuid.New().String()

	logWriter, logger := setupDiagnosticLogger(logFile)
	if logWriter != nil {
		defer logWriter.Close()
	}
	logger.log("run %s: merging %s, %s, %s", runID, args[0], args[1], args[2])

	colorEnabled := !noColor && !jsonOut
	warn := func(w diagnostics.Warning) {
		logger.log("run %s: %s%s", runID, w.Prefix, w.Body)
		if colorEnabled {
			fmt.Fprint(os.Stderr, color.YellowString(w.Prefix)+w.Body)
		} else {
			fmt.Fprint(os.Stderr, w.Prefix+w.Body)
		}
	}

	result, err := merge(args[0], args[1], args[2], diagnostics.FuncSink(warn))
	if err != nil {
		logger.log("run %s: failed: %v", runID, err)
		if colorEnabled {
			fmt.Fprintln(os.Stderr, color.RedString("error:"), err)
		} else {
			fmt.Fprintln(os.Stderr, "error:", err)
		}
		return err
	}

	if result.HasMerges {
		msg := "some messages were fuzzily merged and need review"
		logger.log("run %s: %s", runID, msg)
		if colorEnabled {
			fmt.Fprintln(os.Stderr, color.YellowString("warning:"), msg)
		} else {
			fmt.Fprintln(os.Stderr, "warning:", msg)
		}
	}

	out := outputPath
	if out == "" {
		out = args[0] + ".merged"
	}
	if err := catalogio.WriteCatalogFile(out, result.Catalog); err != nil {
		return fmt.Errorf("writing merged catalog: %w", err)
	}

	if colorEnabled {
		fmt.Println(color.GreenString("merged"), out)
	} else {
		fmt.Println("merged", out)
	}
	logger.log("run %s: wrote %s", runID, out)
	return nil
}

// merge loads the three input catalogs, runs the charset normalization
// pipeline, and then the three-way merge.
func merge(aPath, bPath, originPath string, sink diagnostics.Sink) (*merge3.Result, error) {
	a, err := catalogio.ReadCatalogFile(aPath)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", aPath, err)
	}
	b, err := catalogio.ReadCatalogFile(bPath)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", bPath, err)
	}
	origin, err := catalogio.ReadCatalogFile(originPath)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", originPath, err)
	}

	target, err := normalizeCharsets(a, b, origin, aPath, bPath, originPath, toCode, sink)
	if err != nil {
		return nil, err
	}
	debug.Logf("cmd: normalized all catalogs to %s\n", target)

	return merge3.Merge(a, b, origin, aPath, bPath)
}

// normalizeCharsets detects each catalog's per-domain charsets, picks the
// merge's target encoding from A, then re-encodes A, B, and ORIGIN to
// that target so every subsequent byte comparison in internal/merge3 is
// apples-to-apples.
func normalizeCharsets(a, b, origin *catalog.Catalog, aPath, bPath, originPath, userTarget string, sink diagnostics.Sink) (string, error) {
	aCharsets, err := charset.DetectCatalogCharsets(a, aPath)
	if err != nil {
		return "", err
	}
	bCharsets, err := charset.DetectCatalogCharsets(b, bPath)
	if err != nil {
		return "", err
	}
	originCharsets, err := charset.DetectCatalogCharsets(origin, originPath)
	if err != nil {
		return "", err
	}

	target, err := charset.SelectTarget(aCharsets, userTarget, sink)
	if err != nil {
		return "", err
	}
	if target == "" {
		return "", nil
	}

	if err := charset.ReencodeCatalog(a, aCharsets, target, aPath, userTarget != ""); err != nil {
		return "", err
	}
	if err := charset.ReencodeCatalog(b, bCharsets, target, bPath, userTarget != ""); err != nil {
		return "", err
	}
	if err := charset.ReencodeCatalog(origin, originCharsets, target, originPath, userTarget != ""); err != nil {
		return "", err
	}

	a.Encoding = target
	b.Encoding = target
	origin.Encoding = target
	return target, nil
}
