package plots

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestParseRegion(t *testing.T) {
	cases := []struct {
		geneType string
		geneName string
		want     string
	}{
		{"protein_coding", "dnaA", "CDS"},
		{"protein_coding", "dnaA_upstream", "5' UTR"},
		{"protein_coding", "dnaA_downstream", "3' UTR"},
		{"tRNA", "tRNA-Gly", "ncRNA"},
		{"rRNA", "16S", "ncRNA"},
		{"ncRNA", "ssrA", "ncRNA"},
		{"pseudogene", "psiX", "ncRNA"},
		{"intergenic", "ig_1", "Intergenic"},
		{"something_else", "x", "Other"},
		{"Protein_Coding", "DnaA", "CDS"},
	}

	for _, c := range cases {
		if got := ParseRegion(c.geneType, c.geneName); got != c.want {
			t.Errorf("ParseRegion(%q, %q) = %q, want %q", c.geneType, c.geneName, got, c.want)
		}
	}
}

const sitesCSVA = `Chr,Sites,Sample_Gene_Type,Sample_Gene_Name
chr1,100,protein_coding,dnaA
chr1,250,tRNA,tRNA-Gly
chr2,40,protein_coding,recA_upstream
chr2,900,intergenic,ig_1
`

const sitesCSVB = `Chr,Sites,Sample_Gene_Type,Sample_Gene_Name
chr1,100,protein_coding,dnaA
chr1,777,rRNA,16S
chr2,900,intergenic,ig_1
`

func writeSites(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("writing %s: %v", name, err)
	}
	return path
}

func TestLoadSiteRegions(t *testing.T) {
	path := writeSites(t, "sites37.csv", sitesCSVA)

	regions, err := LoadSiteRegions(path)
	if err != nil {
		t.Fatalf("LoadSiteRegions failed: %v", err)
	}

	if len(regions) != 4 {
		t.Fatalf("got %d sites, want 4", len(regions))
	}
	if regions["chr1:100"] != "CDS" {
		t.Errorf("chr1:100 region = %s, want CDS", regions["chr1:100"])
	}
	if regions["chr1:250"] != "ncRNA" {
		t.Errorf("chr1:250 region = %s, want ncRNA", regions["chr1:250"])
	}
	if regions["chr2:40"] != "5' UTR" {
		t.Errorf("chr2:40 region = %s, want 5' UTR", regions["chr2:40"])
	}
	if regions["chr2:900"] != "Intergenic" {
		t.Errorf("chr2:900 region = %s, want Intergenic", regions["chr2:900"])
	}
}

func TestLoadSiteRegionsMissingColumns(t *testing.T) {
	path := writeSites(t, "bad.csv", "A,B\n1,2\n")
	if _, err := LoadSiteRegions(path); err == nil {
		t.Error("expected an error for a table without site columns")
	}
}

func TestRegionChartWritesHTML(t *testing.T) {
	fileA := writeSites(t, "a.csv", sitesCSVA)
	fileB := writeSites(t, "b.csv", sitesCSVB)
	out := filepath.Join(t.TempDir(), "regions.html")

	if err := RegionChart(fileA, fileB, "OD1", "OD0.3", out); err != nil {
		t.Fatalf("RegionChart failed: %v", err)
	}

	data, err := os.ReadFile(out)
	if err != nil {
		t.Fatalf("reading chart output: %v", err)
	}
	html := string(data)
	if !strings.Contains(html, "Shared modification") {
		t.Error("chart HTML missing the shared series")
	}
	if !strings.Contains(html, "OD1") || !strings.Contains(html, "OD0.3") {
		t.Error("chart HTML missing the condition labels")
	}
}
