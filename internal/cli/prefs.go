package cli

import (
	"fmt"
	"io"
	"math"
	"slices"
	"strconv"

	"github.com/samber/lo"
	"github.com/spf13/cobra"

	"github.com/llehouerou/cassette/internal/prefs"
)

func newPrefsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "prefs",
		Short: "Show the stored preferences",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			store, err := prefs.Open()
			if err != nil {
				return fmt.Errorf("open preferences: %w", err)
			}
			defer store.Close()

			all, err := store.All()
			if err != nil {
				return err
			}
			writePrefs(cmd.OutOrStdout(), all)
			return nil
		},
	}

	cmd.AddCommand(&cobra.Command{
		Use:       "set KEY VALUE",
		Short:     "Store a preference",
		Long:      "Store a preference. Keys: vol (0 to 1), autoplay (true or false).",
		Args:      cobra.ExactArgs(2),
		ValidArgs: []string{prefs.KeyVolume, prefs.KeyAutoplay},
		RunE: func(_ *cobra.Command, args []string) error {
			store, err := prefs.Open()
			if err != nil {
				return fmt.Errorf("open preferences: %w", err)
			}
			defer store.Close()
			return setPref(store, args[0], args[1])
		},
	})
	return cmd
}

func writePrefs(w io.Writer, all map[string]string) {
	keys := lo.Keys(all)
	slices.Sort(keys)
	for _, k := range keys {
		fmt.Fprintf(w, "%s = %s\n", k, all[k])
	}
}

// setPref validates value for key and writes it in the store's format.
func setPref(s prefs.Store, key, value string) error {
	switch key {
	case prefs.KeyVolume:
		v, err := strconv.ParseFloat(value, 64)
		if err != nil {
			return fmt.Errorf("invalid volume %q: %w", value, err)
		}
		if math.IsNaN(v) {
			return fmt.Errorf("invalid volume %q", value)
		}
		return prefs.SaveVolume(s, prefs.ClampVolume(v))
	case prefs.KeyAutoplay:
		on, err := strconv.ParseBool(value)
		if err != nil {
			return fmt.Errorf("invalid autoplay value %q: %w", value, err)
		}
		return prefs.SaveAutoplay(s, on)
	default:
		return fmt.Errorf("unknown preference %q", key)
	}
}
