// Command import_gcms turns a GC-MS chromatography report (PDF) into an
// essential oil description ready to post to /api/calculate. Lines of the
// form "constituent ... 12.3 %" become constituents with their mass
// fraction; known constituents are enriched with the bundled NOAEL, IFRA
// and CIR reference values.
package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"regexp"
	"sort"
	"strconv"
	"strings"

	"github.com/ledongthuc/pdf"

	"aromadose/internal/dosage"
	"aromadose/models"
)

var (
	constituentLinePattern = regexp.MustCompile(`(?i)^([a-zà-ÿ][a-zà-ÿ0-9' \-]+?)[\s.]{2,}([0-9]+(?:[.,][0-9]+)?)\s*%?\s*$`)
	cleanWhitespace        = regexp.MustCompile(`\s+`)
)

func main() {
	if len(os.Args) < 3 {
		fmt.Fprintln(os.Stderr, "usage: import_gcms <rapport.pdf> <nom de l'huile>")
		os.Exit(2)
	}

	if err := run(os.Args[1], strings.Join(os.Args[2:], " "), os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "import failed: %v\n", err)
		os.Exit(1)
	}
}

func run(pdfPath, oilName string, out io.Writer) error {
	data, err := os.ReadFile(pdfPath)
	if err != nil {
		return fmt.Errorf("read report: %w", err)
	}

	text, err := extractTextFromPDF(data)
	if err != nil {
		return fmt.Errorf("extract text: %w", err)
	}

	oil, err := buildOil(text, oilName)
	if err != nil {
		return err
	}

	encoder := json.NewEncoder(out)
	encoder.SetIndent("", "  ")
	return encoder.Encode(oil)
}

func extractTextFromPDF(data []byte) (string, error) {
	reader, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", err
	}
	var builder strings.Builder
	numPages := reader.NumPage()
	for i := 1; i <= numPages; i++ {
		page := reader.Page(i)
		if page.V.IsNull() {
			continue
		}
		text, err := page.GetPlainText(nil)
		if err != nil {
			return "", err
		}
		builder.WriteString(text)
		builder.WriteString("\n")
	}
	return builder.String(), nil
}

// buildOil parses the report text into an essential oil. Constituents below
// 0.1% are noise in most chromatograms and are dropped; the remainder is
// renormalized so fractions sum to one.
func buildOil(text, oilName string) (models.EssentialOil, error) {
	percentages := parseComposition(text)
	if len(percentages) == 0 {
		return models.EssentialOil{}, fmt.Errorf("no composition lines recognized in report")
	}

	names := make([]string, 0, len(percentages))
	total := 0.0
	for name, pct := range percentages {
		if pct < 0.1 {
			continue
		}
		names = append(names, name)
		total += pct
	}
	if total <= 0 {
		return models.EssentialOil{}, fmt.Errorf("composition percentages sum to zero")
	}
	sort.Strings(names)

	reference := dosage.ReferenceData()
	constituents := make([]models.Constituent, 0, len(names))
	for _, name := range names {
		constituent := models.Constituent{
			Name:     name,
			Fraction: percentages[name] / total,
		}
		if noael, ok := reference.NOAEL[name]; ok {
			constituent.NOAEL = &noael
		}
		if ifra, ok := reference.IFRALimits[name]; ok {
			constituent.IFRALimit = &ifra
		}
		if cir, ok := reference.CIRLimits[name]; ok {
			constituent.CIRLimit = &cir
		}
		constituents = append(constituents, constituent)
	}

	oil := models.EssentialOil{
		Name:         oilName,
		Constituents: constituents,
		GCMSData:     percentages,
	}
	oil.Normalize()
	return oil, nil
}

// parseComposition scans report lines for "name .... percent" pairs. The
// last occurrence of a constituent wins, matching how reports repeat a
// summary table after the per-peak listing.
func parseComposition(text string) map[string]float64 {
	percentages := make(map[string]float64)
	for _, line := range strings.Split(text, "\n") {
		match := constituentLinePattern.FindStringSubmatch(strings.TrimSpace(line))
		if match == nil {
			continue
		}
		name := strings.ToLower(cleanWhitespace.ReplaceAllString(strings.TrimSpace(match[1]), " "))
		value, err := strconv.ParseFloat(strings.ReplaceAll(match[2], ",", "."), 64)
		if err != nil || value <= 0 || value > 100 {
			continue
		}
		percentages[name] = value
	}
	return percentages
}
