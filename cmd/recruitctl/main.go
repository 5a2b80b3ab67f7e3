// Command recruitctl calls a running analysis API from the terminal.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	serverURL string
	language  string
)

var rootCmd = &cobra.Command{
	Use:   "recruitctl",
	Short: "Evaluate candidates against job descriptions through the analysis API",
	Long: `recruitctl sends resumes, job descriptions and interview transcripts to the
analysis API and prints the structured results as JSON.`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&serverURL, "server", envOr("RECRUITER_API_URL", "http://localhost:3000"), "Base URL of the analysis API")
	rootCmd.PersistentFlags().StringVar(&language, "language", "English", "Language of the generated analysis")

	rootCmd.AddCommand(analyzeCmd, decideCmd, consistencyCmd, rewriteCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func envOr(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
