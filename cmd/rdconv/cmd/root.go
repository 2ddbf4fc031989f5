package cmd

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"voltage-room-service/internal/adapters/csvsource"
	"voltage-room-service/internal/geo/rd"

	"github.com/spf13/cobra"
)

var (
	mode string
	xCol string
	yCol string
)

var rootCmd = &cobra.Command{
	Use:   "rdconv",
	Short: "Convert Dutch RD (Rijksdriehoek) coordinates to WGS84",
}

var pointCmd = &cobra.Command{
	Use:   "point [flags] [--] X Y",
	Short: "Convert a single RD point and print lat,lon",
	Long: `Convert a single RD point and print lat,lon.

Put -- before the coordinates when one of them is negative, otherwise it is
read as a flag.`,
	Example: `  rdconv point 122700 487525
  rdconv point --mode reference 155000 463000
  rdconv point -- -7000 289000`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		convert, err := converter()
		if err != nil {
			return err
		}

		x, err := strconv.ParseFloat(args[0], 64)
		if err != nil {
			return fmt.Errorf("invalid X %q: %w", args[0], err)
		}
		y, err := strconv.ParseFloat(args[1], 64)
		if err != nil {
			return fmt.Errorf("invalid Y %q: %w", args[1], err)
		}

		lat, lon := convert(x, y)
		fmt.Fprintf(cmd.OutOrStdout(), "%s,%s\n",
			strconv.FormatFloat(lat, 'f', -1, 64), strconv.FormatFloat(lon, 'f', -1, 64))
		if !rd.InNetherlands(lat, lon) {
			fmt.Fprintln(cmd.ErrOrStderr(), "warning: result lies outside the Netherlands")
		}
		return nil
	},
}

var csvCmd = &cobra.Command{
	Use:   "csv [FILE]",
	Short: "Append latitude/longitude columns to a CSV with RD columns (stdin when FILE is omitted)",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		convert, err := converter()
		if err != nil {
			return err
		}

		var in io.Reader = cmd.InOrStdin()
		if len(args) == 1 && args[0] != "-" {
			f, err := os.Open(args[0])
			if err != nil {
				return err
			}
			defer f.Close()
			in = f
		}

		rows, skipped, err := csvsource.ConvertTable(in, cmd.OutOrStdout(), xCol, yCol, convert)
		if err != nil {
			return err
		}
		if skipped > 0 {
			fmt.Fprintf(cmd.ErrOrStderr(), "converted %d rows, %d without usable coordinates\n", rows-skipped, skipped)
		}
		return nil
	},
}

func converter() (rd.Converter, error) {
	m, err := rd.ParseMode(mode)
	if err != nil {
		return nil, err
	}
	return m.Converter(), nil
}

func init() {
	rootCmd.PersistentFlags().StringVar(&mode, "mode", string(rd.ModeKadaster),
		"series arithmetic: kadaster (reference point + sum/3600, plottable degrees) or "+
			"reference ((reference point + sum)/3600, the exact reference converter output)")
	csvCmd.Flags().StringVar(&xCol, "x-col", "x_coordinate", "name of the RD x column")
	csvCmd.Flags().StringVar(&yCol, "y-col", "y_coordinate", "name of the RD y column")

	rootCmd.AddCommand(pointCmd)
	rootCmd.AddCommand(csvCmd)
}

func Execute() error {
	return rootCmd.Execute()
}
