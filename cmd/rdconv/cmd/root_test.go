package cmd

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func run(t *testing.T, stdin string, args ...string) (string, string, error) {
	t.Helper()

	var out, errOut bytes.Buffer
	rootCmd.SetIn(strings.NewReader(stdin))
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&errOut)
	rootCmd.SetArgs(args)
	t.Cleanup(func() { mode = "kadaster" })

	err := rootCmd.Execute()
	return out.String(), errOut.String(), err
}

func TestPoint(t *testing.T) {
	out, _, err := run(t, "", "point", "155000", "463000")
	require.NoError(t, err)
	assert.Equal(t, "52.1551744,5.38720621\n", out)

	out, stderr, err := run(t, "", "point", "--mode", "reference", "155000", "463000")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "0.0144875"), out)
	assert.Contains(t, stderr, "outside the Netherlands")

	_, _, err = run(t, "", "point", "east", "463000")
	assert.Error(t, err)
}

func TestPointNegativeCoordinate(t *testing.T) {
	out, stderr, err := run(t, "", "point", "--", "-7000", "289000")
	require.NoError(t, err)
	assert.Regexp(t, `^-?[0-9.]+,-?[0-9.]+\n$`, out)
	assert.Contains(t, stderr, "outside the Netherlands")

	ref, _, err := run(t, "", "point", "--mode", "reference", "--", "-7000", "289000")
	require.NoError(t, err)
	assert.Regexp(t, `^-?[0-9.]+,-?[0-9.]+\n$`, ref)
	assert.NotEqual(t, out, ref)
}

func TestModeFlagNamesReferenceOutput(t *testing.T) {
	f := rootCmd.PersistentFlags().Lookup("mode")
	require.NotNil(t, f)
	assert.Equal(t, "kadaster", f.DefValue)
	assert.Contains(t, f.Usage, "exact reference converter output")
}

func TestCSVFromStdin(t *testing.T) {
	out, stderr, err := run(t, "ID,x_coordinate,y_coordinate\nA,155000,463000\nB,,\n", "csv", "--mode", "kadaster")
	require.NoError(t, err)
	assert.Equal(t, "ID,x_coordinate,y_coordinate,latitude,longitude\nA,155000,463000,52.1551744,5.38720621\nB,,,,\n", out)
	assert.Contains(t, stderr, "1 without usable coordinates")
}
