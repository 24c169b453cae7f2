package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/sthiel/mentiq/internal/llm"
	"github.com/sthiel/mentiq/internal/question"
	"github.com/sthiel/mentiq/internal/setgen"
	"github.com/sthiel/mentiq/internal/store"
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate a question set with an LLM",
	Long: `Generate a new question set and write it as JSON, ready for
mentiq play --set. Requires an LLM provider configured via environment
variables (MENTIQ_LLM_PROVIDER or a standard provider API key).`,
	RunE: runGenerate,
}

func init() {
	generateCmd.Flags().String("name", "", "Set name (default: derived from theme or kinds)")
	generateCmd.Flags().Int("count", 20, "Number of questions")
	generateCmd.Flags().Int("minutes", 10, "Time budget in minutes")
	generateCmd.Flags().String("kinds", "", "Comma-separated kinds (logic,math,verbal,spatial,pattern); empty = all")
	generateCmd.Flags().String("difficulty", "", "Difficulty: easy, medium, hard, expert; empty = mixed")
	generateCmd.Flags().String("theme", "", "Optional theme woven into the prompts")
	generateCmd.Flags().StringP("output", "o", "set.json", "Output file")
}

func runGenerate(cmd *cobra.Command, args []string) error {
	name, _ := cmd.Flags().GetString("name")
	count, _ := cmd.Flags().GetInt("count")
	minutes, _ := cmd.Flags().GetInt("minutes")
	kindsVal, _ := cmd.Flags().GetString("kinds")
	difficulty, _ := cmd.Flags().GetString("difficulty")
	theme, _ := cmd.Flags().GetString("theme")
	output, _ := cmd.Flags().GetString("output")

	kinds, err := parseKinds(kindsVal)
	if err != nil {
		return err
	}

	if name == "" {
		switch {
		case theme != "":
			name = theme
		case len(kinds) == 1:
			name = fmt.Sprintf("%s %d", strings.ToUpper(string(kinds[0])[:1])+string(kinds[0])[1:], count)
		default:
			name = fmt.Sprintf("Generated %d", count)
		}
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	// The store records each LLM request for the usage report.
	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		return fmt.Errorf("resolve database path: %w", err)
	}
	st, err := store.Open(dbPath)
	if err != nil {
		return fmt.Errorf("open database: %w", err)
	}
	defer st.Close()

	logger, closeLog := openLogger()
	defer func() { _ = closeLog() }()

	cfg := llm.ConfigFromEnv()
	if cfgErr := cfg.Validate(); cfgErr != nil {
		discovered, ok := llm.DiscoverConfig()
		if !ok {
			return fmt.Errorf("no LLM provider configured: %w", cfgErr)
		}
		cfg = discovered
	}

	provider, err := llm.NewProvider(ctx, cfg, st.Events(), logger)
	if err != nil {
		return fmt.Errorf("create provider: %w", err)
	}

	fmt.Printf("Generating %d questions (%s)...\n", count, describeSpec(kinds, difficulty, theme))

	gen := setgen.New(provider, setgen.DefaultConfig())
	set, err := gen.Generate(ctx, setgen.Spec{
		Name:          name,
		Count:         count,
		TotalTimeSecs: minutes * 60,
		Kinds:         kinds,
		Difficulty:    difficulty,
		Theme:         theme,
	})
	if err != nil {
		return fmt.Errorf("generate set: %w", err)
	}

	data, err := json.MarshalIndent(set, "", "  ")
	if err != nil {
		return fmt.Errorf("encode set: %w", err)
	}
	if err := os.WriteFile(output, append(data, '\n'), 0o644); err != nil {
		return fmt.Errorf("write set: %w", err)
	}

	fmt.Printf("Wrote %s: %q, %d questions, %d minutes\n", output, set.Name, set.Len(), minutes)
	fmt.Printf("Take it with: mentiq play --set %s\n", output)
	return nil
}

func parseKinds(val string) ([]question.Kind, error) {
	if val == "" {
		return nil, nil
	}
	var kinds []question.Kind
	for _, part := range strings.Split(val, ",") {
		k := question.Kind(strings.TrimSpace(strings.ToLower(part)))
		valid := false
		for _, known := range question.Kinds {
			if k == known {
				valid = true
				break
			}
		}
		if !valid {
			return nil, fmt.Errorf("unknown kind %q (valid: logic, math, verbal, spatial, pattern)", part)
		}
		kinds = append(kinds, k)
	}
	return kinds, nil
}

func describeSpec(kinds []question.Kind, difficulty, theme string) string {
	parts := []string{}
	if len(kinds) > 0 {
		strs := make([]string, len(kinds))
		for i, k := range kinds {
			strs[i] = string(k)
		}
		parts = append(parts, strings.Join(strs, "+"))
	} else {
		parts = append(parts, "all kinds")
	}
	if difficulty != "" {
		parts = append(parts, difficulty)
	} else {
		parts = append(parts, "mixed difficulty")
	}
	if theme != "" {
		parts = append(parts, "theme: "+theme)
	}
	return strings.Join(parts, ", ")
}
