package plots

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/components"
	"github.com/go-echarts/go-echarts/v2/opts"
	"github.com/go-echarts/go-echarts/v2/types"
	"github.com/go-gota/gota/dataframe"
	"golang.org/x/exp/maps"
)

// Gene types as annotated in the site tables, collapsed to RNA classes.
var geneTypeToRNA = map[string]string{
	"protein_coding": "mRNA",
	"intergenic":     "ncRNA",
	"pseudogene":     "unaligned",
	"tRNA":           "ncRNA",
	"rRNA_gene":      "rRNA",
}

var rnaClassOrder = []string{"mRNA", "rRNA", "ncRNA", "unaligned"}

var rnaClassColors = map[string]string{
	"mRNA":      "#E41A1C",
	"rRNA":      "#377EB8",
	"ncRNA":     "#FFD92F",
	"unaligned": "#999999",
}

// LoadGroupSites reads every tab separated site table in folder and counts the
// RNA classes per sample. Sample names are prefixed with the group name.
// Sites with gene types outside the mapping are dropped.
func LoadGroupSites(folder, groupName string) (map[string]map[string]int, error) {
	files, err := filepath.Glob(filepath.Join(folder, "*.csv"))
	if err != nil {
		return nil, err
	}
	if len(files) == 0 {
		return nil, fmt.Errorf("no .csv files found in %s", folder)
	}
	sort.Strings(files)
	fmt.Printf("Found %d site files in %s group folder %s\n", len(files), groupName, folder)

	counts := make(map[string]map[string]int)
	for _, file := range files {
		f, oErr := os.Open(file)
		if oErr != nil {
			return nil, fmt.Errorf("opening %s: %w", file, oErr)
		}
		df := dataframe.ReadCSV(f, dataframe.WithDelimiter('\t'))
		f.Close()
		if df.Error() != nil {
			return nil, fmt.Errorf("reading %s: %w", file, df.Error())
		}

		hasType := false
		for _, name := range df.Names() {
			if name == "Gene_Type" {
				hasType = true
			}
		}
		if !hasType {
			return nil, fmt.Errorf("%s has no Gene_Type column", file)
		}

		sample := groupName + "_" + strings.TrimSuffix(filepath.Base(file), ".csv")
		perClass := make(map[string]int)
		dropped := 0
		for _, gt := range df.Col("Gene_Type").Records() {
			class, ok := geneTypeToRNA[gt]
			if !ok {
				dropped++
				continue
			}
			perClass[class]++
		}
		if dropped > 0 {
			fmt.Printf("  %s: dropped %d sites with unmapped gene types\n", filepath.Base(file), dropped)
		}
		counts[sample] = perClass
	}
	return counts, nil
}

// RNATypeChart renders the rRNA depletion effect across two condition groups
// as stacked percentage bars, one bar per sample, and writes the chart HTML.
func RNATypeChart(controlDir, treatedDir, controlName, treatedName, outputHTML string) error {
	controlCounts, err := LoadGroupSites(controlDir, controlName)
	if err != nil {
		return err
	}
	treatedCounts, err := LoadGroupSites(treatedDir, treatedName)
	if err != nil {
		return err
	}

	counts := make(map[string]map[string]int)
	for s, c := range controlCounts {
		counts[s] = c
	}
	for s, c := range treatedCounts {
		counts[s] = c
	}

	samples := maps.Keys(counts)
	sort.Strings(samples)

	fmt.Printf("Computing RNA class percentages for %d samples ...\n\n", len(samples))

	bar := charts.NewBar()
	bar.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{Theme: types.ThemeWesteros}),
		charts.WithTitleOpts(opts.Title{Title: "rRNA depletion effect"}),
		charts.WithYAxisOpts(opts.YAxis{Name: "Percentage of sites (%)"}),
		charts.WithXAxisOpts(opts.XAxis{Name: "Sample"}),
		charts.WithColorsOpts(opts.Colors{
			rnaClassColors["mRNA"], rnaClassColors["rRNA"],
			rnaClassColors["ncRNA"], rnaClassColors["unaligned"],
		}),
	)

	bar.SetXAxis(samples)
	for _, class := range rnaClassOrder {
		var data []opts.BarData
		for _, sample := range samples {
			total := 0
			for _, n := range counts[sample] {
				total += n
			}
			pct := 0.0
			if total > 0 {
				pct = float64(counts[sample][class]) / float64(total) * 100.0
			}
			data = append(data, opts.BarData{Value: pct})
		}
		bar.AddSeries(class, data)
	}
	bar.SetSeriesOptions(charts.WithBarChartOpts(opts.BarChart{Stack: "rna"}))

	page := components.NewPage()
	page.SetLayout(components.PageFlexLayout)
	page.AddCharts(bar)

	f, err := os.Create(outputHTML)
	if err != nil {
		return err
	}
	defer f.Close()
	return page.Render(f)
}
