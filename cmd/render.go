package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/eadegbola/profiler/internal/site"
)

var renderCmd = &cobra.Command{
	Use:   "render",
	Short: "Export the profile page as a static site",
	Long:  `Renders the profile page once and writes index.html with its stylesheet and script. The exported page filters the publications table in the browser.`,
	RunE:  runRender,
}

func init() {
	renderCmd.Flags().String("output", "site", "output directory")
	renderCmd.Flags().String("keyword", "", "pre-filter the publications table")
	renderCmd.Flags().Bool("serve", false, "start a local HTTP server after rendering")
	renderCmd.Flags().Int("port", 8080, "port for the local preview server")
	renderCmd.Flags().Bool("open", false, "open browser automatically when serving")
	rootCmd.AddCommand(renderCmd)
}

func runRender(cmd *cobra.Command, args []string) error {
	_, renderer, err := newRenderer()
	if err != nil {
		return err
	}

	outputDir, _ := cmd.Flags().GetString("output")
	generator := site.NewGenerator(renderer, outputDir)
	generator.Keyword, _ = cmd.Flags().GetString("keyword")

	n, err := generator.Generate()
	if err != nil {
		return fmt.Errorf("generating site: %w", err)
	}
	fmt.Printf("Static site generated: %s (%d files)\n", outputDir, n)

	serve, _ := cmd.Flags().GetBool("serve")
	if serve {
		port, _ := cmd.Flags().GetInt("port")
		open, _ := cmd.Flags().GetBool("open")

		fmt.Printf("Serving at http://localhost:%d (Ctrl+C to stop)\n", port)
		if err := site.Serve(outputDir, port, open, logger); err != nil {
			return fmt.Errorf("serving site: %w", err)
		}
	}
	return nil
}
