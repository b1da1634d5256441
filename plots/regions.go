package plots

import (
	"fmt"
	"os"
	"strings"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/components"
	"github.com/go-echarts/go-echarts/v2/opts"
	"github.com/go-echarts/go-echarts/v2/types"
	"github.com/go-gota/gota/dataframe"
)

// Region order on the chart x axis.
var regionOrder = []string{"ncRNA", "3' UTR", "Intergenic", "5' UTR", "CDS"}

// ParseRegion assigns a transcript region to one modification site from its
// gene type and gene name annotation. Upstream/downstream annotations win
// over the gene type.
func ParseRegion(geneType, geneName string) string {
	geneType = strings.ToLower(geneType)
	geneName = strings.ToLower(geneName)

	if strings.Contains(geneName, "upstream") {
		return "5' UTR"
	}
	if strings.Contains(geneName, "downstream") {
		return "3' UTR"
	}

	switch geneType {
	case "trna", "rrna", "ncrna", "non-coding", "pseudogene":
		return "ncRNA"
	case "protein_coding":
		return "CDS"
	case "intergenic":
		return "Intergenic"
	default:
		return "Other"
	}
}

// LoadSiteRegions reads a comma separated site table and maps each site
// (keyed Chr:Pos) to its region. Gene type and name are taken from the first
// *_Gene_Type / *_Gene_Name column pair, or the bare Gene_Type / Gene_Name
// columns.
func LoadSiteRegions(file string) (map[string]string, error) {
	f, err := os.Open(file)
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", file, err)
	}
	defer f.Close()

	df := dataframe.ReadCSV(f)
	if df.Error() != nil {
		return nil, fmt.Errorf("reading %s: %w", file, df.Error())
	}

	typeCol, nameCol := "", ""
	hasChr, hasSites := false, false
	for _, col := range df.Names() {
		switch {
		case col == "Chr":
			hasChr = true
		case col == "Sites":
			hasSites = true
		case strings.HasSuffix(col, "Gene_Type") && typeCol == "":
			typeCol = col
		case strings.HasSuffix(col, "Gene_Name") && nameCol == "":
			nameCol = col
		}
	}
	if !hasChr || !hasSites || typeCol == "" || nameCol == "" {
		return nil, fmt.Errorf("%s is missing Chr/Sites/Gene_Type/Gene_Name columns", file)
	}

	chrs := df.Col("Chr").Records()
	sites := df.Col("Sites").Records()
	geneTypes := df.Col(typeCol).Records()
	geneNames := df.Col(nameCol).Records()

	regions := make(map[string]string, len(chrs))
	for i := range chrs {
		siteID := chrs[i] + ":" + sites[i]
		regions[siteID] = ParseRegion(geneTypes[i], geneNames[i])
	}
	return regions, nil
}

// RegionChart compares the modification site region distribution between two
// conditions. Per region, sites are layered into condition-A-only, shared and
// condition-B-only, normalised to 100, and drawn as stacked bars.
func RegionChart(fileA, fileB, labelA, labelB, outputHTML string) error {
	sitesA, err := LoadSiteRegions(fileA)
	if err != nil {
		return err
	}
	sitesB, err := LoadSiteRegions(fileB)
	if err != nil {
		return err
	}
	fmt.Printf("%s: %d sites, %s: %d sites\n\n", labelA, len(sitesA), labelB, len(sitesB))

	uniqueA := make(map[string]int)
	shared := make(map[string]int)
	uniqueB := make(map[string]int)

	for site, region := range sitesA {
		if _, ok := sitesB[site]; ok {
			shared[region]++
		} else {
			uniqueA[region]++
		}
	}
	for site, region := range sitesB {
		if _, ok := sitesA[site]; !ok {
			uniqueB[region]++
		}
	}

	// Normalise each region column to 100 so the bars compare proportions,
	// not absolute site counts.
	layerPcts := func(layer map[string]int) []opts.BarData {
		var data []opts.BarData
		for _, region := range regionOrder {
			total := uniqueA[region] + shared[region] + uniqueB[region]
			pct := 0.0
			if total > 0 {
				pct = float64(layer[region]) / float64(total) * 100.0
			}
			data = append(data, opts.BarData{Value: pct})
		}
		return data
	}

	bar := charts.NewBar()
	bar.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{Theme: types.ThemeWesteros}),
		charts.WithTitleOpts(opts.Title{Title: "Modification site region distribution"}),
		charts.WithYAxisOpts(opts.YAxis{Name: "Proportion of sites (%)"}),
		charts.WithXAxisOpts(opts.XAxis{Name: "Region"}),
		charts.WithColorsOpts(opts.Colors{"#aec7e8", "#c7c7c7", "#ffbb78"}),
	)

	bar.SetXAxis(regionOrder)
	bar.AddSeries("Unique modification ("+labelA+")", layerPcts(uniqueA))
	bar.AddSeries("Shared modification", layerPcts(shared))
	bar.AddSeries("Unique modification ("+labelB+")", layerPcts(uniqueB))
	bar.SetSeriesOptions(charts.WithBarChartOpts(opts.BarChart{Stack: "region"}))

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
