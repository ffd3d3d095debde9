package cmd

import (
	"fmt"

	"github.com/lahari/mcqgen/internal/app"
	"github.com/lahari/mcqgen/internal/llm"
	"github.com/lahari/mcqgen/internal/mcq"
	"github.com/lahari/mcqgen/internal/store"
	"github.com/spf13/cobra"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Generate questions and take the quiz interactively",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		numQuestions, _ := cmd.Flags().GetInt("questions")
		strict, _ := cmd.Flags().GetBool("strict")

		dbPath, err := resolveDBPath(cmd)
		if err != nil {
			return fmt.Errorf("resolve database path: %w", err)
		}
		st, err := store.Open(dbPath)
		if err != nil {
			return fmt.Errorf("open database: %w", err)
		}
		defer st.Close()

		text, err := sourceText(ctx, cmd)
		if err != nil {
			return err
		}

		provider, err := llm.NewProviderFromEnv(ctx, st.EventRepo())
		if err != nil {
			return fmt.Errorf("configure LLM provider: %w", err)
		}

		cfg := mcq.DefaultConfig()
		cfg.StrictSchema = strict

		return app.Run(app.Options{
			Generator:    mcq.NewGenerator(provider, cfg),
			Text:         text,
			NumQuestions: numQuestions,
		})
	},
}

func init() {
	playCmd.Flags().StringP("text", "t", "", "Raw text to generate questions from")
	playCmd.Flags().StringP("file", "f", "", "Path to a text, document, image, audio, or video file")
	playCmd.Flags().StringP("url", "u", "", "Web page to generate questions from")
	playCmd.Flags().IntP("questions", "n", 5, "Number of questions to generate")
	playCmd.Flags().Bool("strict", false, "Validate LLM responses against a JSON schema")
}
