package cli

import (
	"io"
	"os"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/spf13/cobra"

	"github.com/llehouerou/cassette/internal/catalog"
	"github.com/llehouerou/cassette/internal/player"
	"github.com/llehouerou/cassette/internal/ui/render"
)

type probeFunc func(path string) (time.Duration, error)

func newListCmd(opts *rootOptions) *cobra.Command {
	var noProbe bool

	cmd := &cobra.Command{
		Use:   "list [music-dir]",
		Short: "Print the playlist and exit",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(opts, args)
			if err != nil {
				return err
			}
			tracks, err := loadCatalog(cfg)
			if err != nil {
				return err
			}
			var probe probeFunc
			if !noProbe {
				probe = player.ProbeDuration
			}
			writeTrackTable(cmd.OutOrStdout(), tracks.All(), probe)
			return nil
		},
	}
	cmd.Flags().BoolVar(&noProbe, "no-probe", false, "skip reading track durations")
	return cmd
}

// writeTrackTable renders tracks with their length and file size. A nil
// probe leaves every length unknown.
func writeTrackTable(w io.Writer, tracks []catalog.Track, probe probeFunc) {
	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetStyle(table.StyleLight)
	t.AppendHeader(table.Row{"#", "Title", "Artist", "Length", "Size"})
	t.SetColumnConfigs([]table.ColumnConfig{
		{Number: 1, Align: text.AlignRight},
		{Number: 4, Align: text.AlignRight},
		{Number: 5, Align: text.AlignRight},
	})

	var (
		total     time.Duration
		totalSize uint64
	)
	for i, tr := range tracks {
		length := render.DurationPlaceholder
		if probe != nil {
			if d, err := probe(tr.Source); err == nil {
				length = render.FormatClock(d)
				total += d
			}
		}

		size := "-"
		if info, err := os.Stat(tr.Source); err == nil {
			size = humanize.Bytes(uint64(info.Size()))
			totalSize += uint64(info.Size())
		}

		t.AppendRow(table.Row{i + 1, tr.Title, tr.Artist, length, size})
	}

	t.AppendFooter(table.Row{"", humanize.Comma(int64(len(tracks))) + " tracks", "", render.FormatClock(total), humanize.Bytes(totalSize)})
	t.Render()
}
