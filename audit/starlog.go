package audit

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"
)

// StarLogSummary holds the headline numbers from a STAR Log.final.out file.
type StarLogSummary struct {
	InputReads        int
	UniquelyMapped    int
	UniquelyMappedPct float64
	MultiMappedPct    float64
	MismatchRatePct   float64
}

// ParseStarLogFile reads a STAR Log.final.out file. The format is
// "<description> |\t<value>" with percentages suffixed by '%'.
func ParseStarLogFile(path string) (*StarLogSummary, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	sl := &StarLogSummary{}
	seen := 0

	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := scanner.Text()
		parts := strings.SplitN(line, "|", 2)
		if len(parts) != 2 {
			continue
		}
		key := strings.TrimSpace(parts[0])
		value := strings.TrimSpace(parts[1])

		switch key {
		case "Number of input reads":
			if v, err := strconv.Atoi(value); err == nil {
				sl.InputReads = v
				seen++
			}
		case "Uniquely mapped reads number":
			if v, err := strconv.Atoi(value); err == nil {
				sl.UniquelyMapped = v
				seen++
			}
		case "Uniquely mapped reads %":
			if v, err := parsePct(value); err == nil {
				sl.UniquelyMappedPct = v
				seen++
			}
		case "% of reads mapped to multiple loci":
			if v, err := parsePct(value); err == nil {
				sl.MultiMappedPct = v
			}
		case "Mismatch rate per base, %":
			if v, err := parsePct(value); err == nil {
				sl.MismatchRatePct = v
			}
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}

	if seen == 0 {
		return nil, fmt.Errorf("%s does not look like a STAR final log", path)
	}
	return sl, nil
}

func parsePct(s string) (float64, error) {
	return strconv.ParseFloat(strings.TrimSuffix(s, "%"), 64)
}
