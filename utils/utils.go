package utils

import (
	"bufio"
	"fmt"
	"os"
	"os/exec"
	"strconv"
	"strings"
)

type Config struct {
	WorkspaceRoot string
	Samples       []string
	Samtools      string
	MinMappedPct  float64
	WarnFloorPct  float64
	Threads       int
}

func ReadConfig(configPath string) (Config, error) {
	configFile, err := os.Open(configPath)
	if err != nil {
		return Config{}, err
	}
	defer configFile.Close()

	cfg := Config{
		Samtools:     "samtools",
		MinMappedPct: 80.0,
		WarnFloorPct: 1.0,
		Threads:      4,
	}

	scanner := bufio.NewScanner(configFile)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())

		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		parts := strings.SplitN(line, ":", 2)
		if len(parts) != 2 {
			continue
		}

		key := strings.TrimSpace(parts[0])
		value := strings.TrimSpace(parts[1])

		switch key {
		case "WorkspaceRoot":
			cfg.WorkspaceRoot = value
		case "sample":
			cfg.Samples = append(cfg.Samples, value)
		case "samtools":
			cfg.Samtools = value
		case "min_mapped_pct":
			v, pErr := strconv.ParseFloat(value, 64)
			if pErr != nil {
				return cfg, fmt.Errorf("bad min_mapped_pct value %q: %w", value, pErr)
			}
			cfg.MinMappedPct = v
		case "warn_floor_pct":
			v, pErr := strconv.ParseFloat(value, 64)
			if pErr != nil {
				return cfg, fmt.Errorf("bad warn_floor_pct value %q: %w", value, pErr)
			}
			cfg.WarnFloorPct = v
		case "threads":
			v, pErr := strconv.Atoi(value)
			if pErr != nil {
				return cfg, fmt.Errorf("bad threads value %q: %w", value, pErr)
			}
			cfg.Threads = v
		}
	}

	if err := scanner.Err(); err != nil {
		return cfg, err
	}

	return cfg, nil
}

// CheckDeps verifies the external tools the audit commands shell out to.
func CheckDeps(samtools string) error {
	if samtools == "" {
		samtools = "samtools"
	}
	if _, err := exec.LookPath(samtools); err != nil {
		return fmt.Errorf("samtools not found in PATH: %w", err)
	}
	return nil
}
