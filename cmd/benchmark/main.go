package main

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/kerem-kaynak/feature-collisions/pkg/phonology"
)

const (
	iterations = 10000
	warmup     = 100
	boxWidth   = 62

	// ANSI color codes
	colorReset  = "\033[0m"
	colorCyan   = "\033[36m"
	colorGreen  = "\033[32m"
	colorYellow = "\033[33m"
	colorDim    = "\033[2m"
)

var line = strings.Repeat("─", boxWidth)

func main() {
	matrixPath := "data/features.csv"
	catalogPath := "data/diacritics.yaml"
	if len(os.Args) > 2 {
		matrixPath = os.Args[1]
		catalogPath = os.Args[2]
	}

	fmt.Print("Loading feature matrix and diacritic catalog... ")
	start := time.Now()
	analyzer, err := phonology.NewAnalyzer(matrixPath, catalogPath, phonology.DefaultConfig())
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer analyzer.Close()
	fmt.Printf("done (%d segments, %d diacritics in %v)\n",
		len(analyzer.Matrix().Rows), len(analyzer.Catalog()), time.Since(start).Round(time.Millisecond))
	fmt.Printf("Iterations: %d (warmup: %d)\n", iterations, warmup)
	fmt.Println("Reference: 1 second = 1,000,000,000 ns")
	fmt.Println()

	result, err := analyzer.Analyze()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	// Full pipeline benchmarks
	printHeader("FULL PIPELINE THROUGHPUT")
	bench("Base pass", func() { analyzer.BasePass() })
	bench("Diacritic pass", func() { analyzer.DiacriticPass() })
	bench("Analyze (both passes)", func() { analyzer.Analyze() })
	printFooter()
	fmt.Println()

	// Component breakdown
	printHeader("COMPONENT BREAKDOWN")

	tokens := phonology.DefaultTokens()
	row := analyzer.Matrix().Rows[0]
	bench("Segment from row", func() {
		phonology.FromFeatureRow(row, tokens)
	})

	base, _ := phonology.FromFeatureRow(row, tokens)
	changes, _ := phonology.NewSegment([]string{"nasal"}, []string{"voice"})
	bench("Combine", func() {
		base.Combine(changes)
	})

	conditions := phonology.FeatureSpec{Positive: []string{"syllabic"}, Negative: []string{"long"}}
	bench("MeetsConditions", func() {
		base.MeetsConditions(conditions)
	})

	plain := phonology.NewVocabularyFingerprinter(analyzer.Vocabulary())
	bench("Fingerprint (uncached)", func() {
		plain.Fingerprint(base)
	})

	cached := phonology.NewCachedFingerprinter(plain, phonology.DefaultCacheSize)
	cached.Fingerprint(base)
	bench("Fingerprint (cache hit)", func() {
		cached.Fingerprint(base)
	})

	bench("Find collisions", func() {
		phonology.FindCollisions(result.Pairs)
	})
	printFooter()
	fmt.Println()

	// Normalizer steps
	printHeader("SYMBOL NORMALIZER STEPS")
	bench("NFC compose", func() {
		phonology.NFCCompose("a\u0303\u02d0")
	})
	bench("Remove control chars", func() {
		phonology.RemoveControlChars("a\u0303\u02d0")
	})
	norm := phonology.NewNormalizer()
	bench("Normalizer (full)", func() {
		norm.Normalize("a\u0303\u02d0")
	})
	printFooter()
}

func bench(name string, fn func()) {
	for i := 0; i < warmup; i++ {
		fn()
	}

	start := time.Now()
	for i := 0; i < iterations; i++ {
		fn()
	}
	elapsed := time.Since(start)

	opsPerSec := float64(iterations) / elapsed.Seconds()
	nsPerOp := float64(elapsed.Nanoseconds()) / float64(iterations)

	// Truncate name if too long
	displayName := name
	if len(displayName) > 26 {
		displayName = displayName[:26]
	}

	// Format with colors - build plain string for padding, colored for display
	plain := fmt.Sprintf("  %-26s %10.0f ops/sec %8.0f ns", displayName, opsPerSec, nsPerOp)
	padded := padLine(plain)

	// Now colorize the padded string
	colored := fmt.Sprintf("  %-26s %s%10.0f%s ops/sec %s%8.0f%s ns",
		displayName,
		colorGreen, opsPerSec, colorReset,
		colorYellow, nsPerOp, colorReset)

	// Calculate how much padding we added
	extraPad := len(padded) - len(plain)
	if extraPad > 0 {
		colored += strings.Repeat(" ", extraPad)
	}

	fmt.Println(colorDim + "│" + colorReset + colored + colorDim + "│" + colorReset)
}

func padLine(content string) string {
	if len(content) >= boxWidth {
		return content[:boxWidth]
	}
	return content + strings.Repeat(" ", boxWidth-len(content))
}

func printHeader(title string) {
	fmt.Println(colorDim + "┌" + line + "┐" + colorReset)
	printTitleRow("  " + title)
	fmt.Println(colorDim + "├" + line + "┤" + colorReset)
}

func printFooter() {
	fmt.Println(colorDim + "└" + line + "┘" + colorReset)
}

func printTitleRow(content string) {
	fmt.Println(colorDim + "│" + colorReset + colorCyan + padLine(content) + colorReset + colorDim + "│" + colorReset)
}
