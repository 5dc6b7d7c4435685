package cmd

import (
	"fmt"
	"log"

	"github.com/spf13/cobra"

	"github.com/ziadkadry99/deckview/internal/deck"
	"github.com/ziadkadry99/deckview/internal/server"
)

var serveCmd = &cobra.Command{
	Use:   "serve <deck-file>",
	Short: "Serve one deck live, optionally with in-place editing",
	Long: `Starts a local server presenting the given deck document. With --edit,
rendered text becomes directly editable and commits mutate the live
document; the edited deck can be exported from /deck.json at any time.
If the document cannot be loaded the server stays up and shows a single
error slide.`,
	Args: cobra.ExactArgs(1),
	RunE: runServe,
}

func init() {
	serveCmd.Flags().Int("port", 0, "override server port")
	serveCmd.Flags().Bool("edit", false, "enable live editing")
	serveCmd.Flags().Bool("open", false, "open browser automatically")
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	port := cfg.Port
	if v, _ := cmd.Flags().GetInt("port"); v != 0 {
		port = v
	}
	edit := cfg.Edit
	if cmd.Flags().Changed("edit") {
		edit, _ = cmd.Flags().GetBool("edit")
	}
	open := cfg.Open
	if cmd.Flags().Changed("open") {
		open, _ = cmd.Flags().GetBool("open")
	}

	// A load failure is not fatal to the server: it serves a terminal
	// error slide instead, with no navigation or edit wiring.
	var store *deck.Store
	title := args[0]
	d, loadErr := deck.LoadFile(args[0])
	if loadErr != nil {
		log.Printf("deckview: %v", loadErr)
		store = deck.NewStore(&deck.Deck{})
	} else {
		store = deck.NewStore(d)
		if t, ok := d.Meta["title"].(string); ok && t != "" {
			title = t
		}
	}

	srv := server.New(server.Config{
		Port:  port,
		Theme: string(cfg.Theme),
		Edit:  edit,
	}, store, title, loadErr)

	url := fmt.Sprintf("http://localhost:%d", port)
	if open {
		go server.OpenBrowser(url)
	}

	fmt.Printf("Serving %s at %s (edit=%v), press Ctrl+C to stop\n", title, url, edit)
	return srv.Start()
}
