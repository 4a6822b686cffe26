/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: main.go
Description: Main command-line interface for Akaylee WordGen. Provides comprehensive
command-line options, configuration management, and beautiful user interface for
corpus analysis, wordlist generation, regex inference, scoring, and mutation.
*/

package main

import (
	"fmt"
	"os"

	"github.com/kleascm/akaylee-wordgen/cmd/wordgen/commands"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	// Configuration
	configFile string
	logLevel   string
	jsonLogs   bool

	// Corpus configuration
	corpusPaths []string
	corpusDir   string
	corpusGlob  string
	minLength   int
	maxLength   int

	// Generation configuration
	mode            string
	count           int
	length          int
	typePattern     string
	expression      string
	seed            int64
	allowDuplicates bool
	maxAttempts     int
	maxRepeat       int
	markovOrder     int
	hybridPreset    string

	// Output configuration
	outputPath   string
	outputFormat string
	hashAlg      string

	// Filter configuration
	filterPreset string
	minScore     float64

	// Logging configuration
	logDir      string
	logFormat   string
	logMaxFiles int
	logMaxSize  int64
)

func main() {
	// Create root command
	rootCmd := &cobra.Command{
		Use:   "akaylee-wordgen",
		Short: "Akaylee WordGen - Statistical wordlist analysis and generation engine",
		Long: `Akaylee WordGen learns the structure of an example corpus - per-position character
frequencies, adjacent-character transitions, and character type skeletons - and
synthesizes new strings that share that structure. Includes regex-constrained
generation, markov chains, strength scoring, rule-based mutation, and best-effort
regex inference over the trained model.`,
		Version: commands.Version,
	}

	// Add persistent flags
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "Configuration file path")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "info", "Logging level (debug, info, warn, error)")
	rootCmd.PersistentFlags().BoolVar(&jsonLogs, "json-logs", false, "Use JSON log format")

	// Add logging-specific flags
	rootCmd.PersistentFlags().StringVar(&logDir, "log-dir", "./logs", "Log output directory")
	rootCmd.PersistentFlags().StringVar(&logFormat, "log-format", "custom", "Log format (text, json, custom)")
	rootCmd.PersistentFlags().IntVar(&logMaxFiles, "log-max-files", 10, "Maximum number of log files to keep")
	rootCmd.PersistentFlags().Int64Var(&logMaxSize, "log-max-size", 100*1024*1024, "Maximum log file size in bytes")

	// Add corpus flags shared by every model-driven command
	rootCmd.PersistentFlags().StringSliceVar(&corpusPaths, "corpus", nil, "Path to a training corpus, one word per line (repeatable; analyses are merged)")
	rootCmd.PersistentFlags().StringVar(&corpusDir, "corpus-dir", "", "Train from every matching file in this directory instead of --corpus")
	rootCmd.PersistentFlags().StringVar(&corpusGlob, "corpus-glob", "*.txt", "Glob pattern for --corpus-dir files")
	rootCmd.PersistentFlags().IntVar(&minLength, "min-length", 0, "Discard corpus words shorter than this (0 = unbounded)")
	rootCmd.PersistentFlags().IntVar(&maxLength, "max-length", 0, "Discard corpus words longer than this (0 = unbounded)")

	// Bind flags to viper
	viper.BindPFlag("config", rootCmd.PersistentFlags().Lookup("config"))
	viper.BindPFlag("log_level", rootCmd.PersistentFlags().Lookup("log-level"))
	viper.BindPFlag("json_logs", rootCmd.PersistentFlags().Lookup("json-logs"))
	viper.BindPFlag("log_dir", rootCmd.PersistentFlags().Lookup("log-dir"))
	viper.BindPFlag("log_format", rootCmd.PersistentFlags().Lookup("log-format"))
	viper.BindPFlag("log_max_files", rootCmd.PersistentFlags().Lookup("log-max-files"))
	viper.BindPFlag("log_max_size", rootCmd.PersistentFlags().Lookup("log-max-size"))
	viper.BindPFlag("corpus_path", rootCmd.PersistentFlags().Lookup("corpus"))
	viper.BindPFlag("corpus_dir", rootCmd.PersistentFlags().Lookup("corpus-dir"))
	viper.BindPFlag("corpus_glob", rootCmd.PersistentFlags().Lookup("corpus-glob"))
	viper.BindPFlag("min_length", rootCmd.PersistentFlags().Lookup("min-length"))
	viper.BindPFlag("max_length", rootCmd.PersistentFlags().Lookup("max-length"))

	// Add analyze command
	analyzeCmd := &cobra.Command{
		Use:   "analyze",
		Short: "Analyze a corpus and print its statistical model",
		Long: `Train the statistical model from a corpus file and print a summary of what was
learned: length histogram, charset, type frequencies, and per-length skeletons.
Optionally export the full statistics as JSON or CSV.`,
		RunE: commands.RunAnalyze,
	}
	analyzeCmd.Flags().String("stats-output", "", "Write full statistics to this file")
	analyzeCmd.Flags().String("stats-format", "json", "Statistics format (json, csv, text)")
	viper.BindPFlag("stats_output", analyzeCmd.Flags().Lookup("stats-output"))
	viper.BindPFlag("stats_format", analyzeCmd.Flags().Lookup("stats-format"))
	rootCmd.AddCommand(analyzeCmd)

	// Add generate command
	generateCmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate words from a trained model or expression",
		Long: `Synthesize new strings with one of the generation strategies: random (uniform
positional draws), smart (frequency and co-occurrence weighted), pattern (type
skeleton anchored), regex (expression constrained, no corpus needed), markov
(n-gram chain), or hybrid (weighted strategy mix).`,
		RunE: commands.RunGenerate,
	}
	generateCmd.Flags().StringVar(&mode, "mode", "smart", "Generation mode (random, smart, pattern, regex, markov, hybrid)")
	generateCmd.Flags().IntVar(&count, "count", 10, "Number of words to generate")
	generateCmd.Flags().IntVar(&length, "length", 0, "Fixed word length (0 = sample from the histogram)")
	generateCmd.Flags().StringVar(&typePattern, "pattern", "", "Explicit type pattern for pattern mode (U/l/n/@)")
	generateCmd.Flags().StringVar(&expression, "expression", "", "Regular expression for regex mode")
	generateCmd.Flags().Int64Var(&seed, "seed", 0, "Random seed for reproducible output")
	generateCmd.Flags().BoolVar(&allowDuplicates, "allow-duplicates", false, "Permit training words and repeats in the output")
	generateCmd.Flags().IntVar(&maxAttempts, "max-attempts", 0, "Duplicate-avoidance retries per word (0 = default)")
	generateCmd.Flags().IntVar(&maxRepeat, "max-repeat", 0, "Cap for unbounded regex quantifiers (0 = default)")
	generateCmd.Flags().IntVar(&markovOrder, "markov-order", 0, "N-gram order for markov mode (0 = default)")
	generateCmd.Flags().StringVar(&hybridPreset, "hybrid-preset", "balanced", "Hybrid mix preset (balanced, strict, creative)")
	generateCmd.Flags().StringVar(&outputPath, "output", "", "Write the wordlist to this file instead of stdout")
	generateCmd.Flags().StringVar(&outputFormat, "format", "text", "Output format (text, json, csv, jsonl)")
	generateCmd.Flags().StringVar(&hashAlg, "hash", "", "Hash each word before export (md5, sha1, sha256, sha512, sha3-256, blake2b, base64, ...)")
	generateCmd.Flags().StringVar(&filterPreset, "filter", "", "Post-generation filter preset (strong, complex, ...)")
	generateCmd.Flags().Float64Var(&minScore, "min-score", 0, "Drop words scoring below this strength (0 = no filter)")
	generateCmd.Flags().Bool("show-weights", false, "Print model weights next to generated words")
	generateCmd.Flags().String("report-dir", "", "Write a JSON run report under this directory")

	viper.BindPFlag("mode", generateCmd.Flags().Lookup("mode"))
	viper.BindPFlag("count", generateCmd.Flags().Lookup("count"))
	viper.BindPFlag("length", generateCmd.Flags().Lookup("length"))
	viper.BindPFlag("pattern", generateCmd.Flags().Lookup("pattern"))
	viper.BindPFlag("expression", generateCmd.Flags().Lookup("expression"))
	viper.BindPFlag("seed", generateCmd.Flags().Lookup("seed"))
	viper.BindPFlag("allow_duplicates", generateCmd.Flags().Lookup("allow-duplicates"))
	viper.BindPFlag("max_attempts", generateCmd.Flags().Lookup("max-attempts"))
	viper.BindPFlag("max_repeat", generateCmd.Flags().Lookup("max-repeat"))
	viper.BindPFlag("markov_order", generateCmd.Flags().Lookup("markov-order"))
	viper.BindPFlag("hybrid_preset", generateCmd.Flags().Lookup("hybrid-preset"))
	viper.BindPFlag("output", generateCmd.Flags().Lookup("output"))
	viper.BindPFlag("format", generateCmd.Flags().Lookup("format"))
	viper.BindPFlag("hash", generateCmd.Flags().Lookup("hash"))
	viper.BindPFlag("filter", generateCmd.Flags().Lookup("filter"))
	viper.BindPFlag("min_score", generateCmd.Flags().Lookup("min-score"))
	viper.BindPFlag("show_weights", generateCmd.Flags().Lookup("show-weights"))
	viper.BindPFlag("report_dir", generateCmd.Flags().Lookup("report-dir"))
	rootCmd.AddCommand(generateCmd)

	// Add infer command
	inferCmd := &cobra.Command{
		Use:   "infer",
		Short: "Infer a regular expression from a corpus",
		Long: `Collapse the trained model's per-position observations into the narrowest
supported regular expression per length bucket, plus one overall alternation
ordered by observed frequency. Inference is lossy by design.`,
		RunE: commands.RunInfer,
	}
	inferCmd.Flags().Int("min-char-count", 1, "Drop characters observed fewer times than this from inferred classes")
	inferCmd.Flags().Bool("per-length", false, "Print each length bucket's expression")
	viper.BindPFlag("min_char_count", inferCmd.Flags().Lookup("min-char-count"))
	viper.BindPFlag("per_length", inferCmd.Flags().Lookup("per-length"))
	rootCmd.AddCommand(inferCmd)

	// Add score command
	scoreCmd := &cobra.Command{
		Use:   "score [words...]",
		Short: "Score string strength",
		Long: `Rate strings on a 0-100 strength scale from length, character diversity,
Shannon entropy, repeated and sequential runs, and common weak patterns.
Reads words from arguments or from a file.`,
		RunE: commands.RunScore,
	}
	scoreCmd.Flags().String("input", "", "Read words to score from this file (one per line)")
	scoreCmd.Flags().Bool("verbose", false, "Print full analysis and feedback per word")
	viper.BindPFlag("score_input", scoreCmd.Flags().Lookup("input"))
	viper.BindPFlag("score_verbose", scoreCmd.Flags().Lookup("verbose"))
	rootCmd.AddCommand(scoreCmd)

	// Add mutate command
	mutateCmd := &cobra.Command{
		Use:   "mutate [words...]",
		Short: "Apply rule-based mutations to words",
		Long: `Transform words with rule-based mutators: case rules, reversal, rotation,
duplication, leet substitution, and digit affixing. Rules chain in order;
a seeded source keeps random rules reproducible.`,
		RunE: commands.RunMutate,
	}
	mutateCmd.Flags().StringSlice("rules", []string{}, "Mutation rules to chain (capitalize, leet, reverse, append-digits, ...)")
	mutateCmd.Flags().String("input", "", "Read words to mutate from this file (one per line)")
	mutateCmd.Flags().Bool("random-order", false, "Apply the rule chain in seeded random order")
	mutateCmd.Flags().Int64("seed", 0, "Random seed for reproducible mutation")
	viper.BindPFlag("mutate_rules", mutateCmd.Flags().Lookup("rules"))
	viper.BindPFlag("mutate_input", mutateCmd.Flags().Lookup("input"))
	viper.BindPFlag("mutate_random_order", mutateCmd.Flags().Lookup("random-order"))
	viper.BindPFlag("mutate_seed", mutateCmd.Flags().Lookup("seed"))
	rootCmd.AddCommand(mutateCmd)

	// Add list-mutators command
	rootCmd.AddCommand(&cobra.Command{
		Use:   "list-mutators",
		Short: "List available mutation rules and their capabilities",
		Long: `List all available word mutators in Akaylee WordGen with detailed descriptions
of their transformations and use cases.`,
		Run: func(cmd *cobra.Command, args []string) {
			commands.ListMutators(cmd, args)
		},
	})

	// Add logs command
	logsCmd := &cobra.Command{
		Use:   "logs",
		Short: "Rotate, clean, and summarize the log directory",
		Long: `Apply the retention policy to the log directory: rotate files over the size
limit, remove files beyond the keep count, and print file statistics plus a
summary of logged events.`,
		RunE: commands.RunLogs,
	}
	logsCmd.Flags().Bool("log-compress", false, "Compress rotated log files")
	viper.BindPFlag("log_compress", logsCmd.Flags().Lookup("log-compress"))
	rootCmd.AddCommand(logsCmd)

	// Add ui command
	uiCmd := &cobra.Command{
		Use:   "ui",
		Short: "Launch the interactive terminal UI",
		Long: `Launch the Bubble Tea terminal interface: pick a strategy, set parameters,
and browse generated words with their model weights interactively.`,
		RunE: commands.RunUI,
	}
	uiCmd.Flags().Int64Var(&seed, "seed", 0, "Random seed for reproducible output")
	viper.BindPFlag("ui_seed", uiCmd.Flags().Lookup("seed"))
	rootCmd.AddCommand(uiCmd)

	// Execute root command
	err := rootCmd.Execute()
	commands.CloseLogging()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
