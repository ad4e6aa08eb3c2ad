package cmd

import (
	"fmt"
	"github.com/arya-analytics/saki/pkg/path"
	"github.com/arya-analytics/saki/pkg/resource"
	"github.com/cockroachdb/errors"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"io"
	"strings"
)

// pathsCmd prints the conventional paths of a resource type.
var pathsCmd = &cobra.Command{
	Use:   "paths <type>",
	Short: "Print the conventional paths of a resource type",
	Long: `Print the index, new, show, edit and delete paths of a resource type.

The member paths are only printed when --key is given. For example:

	saki paths LineItem --key 3 --parent order:7 --format json`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		opts, err := pathOptions()
		if err != nil {
			return err
		}
		return printPaths(cmd.OutOrStdout(), resource.Type(args[0]), viper.GetString("key"), opts)
	},
}

func init() {
	rootCmd.AddCommand(pathsCmd)

	pathsCmd.Flags().StringP(
		"key",
		"k",
		"",
		`
			Key of a resource instance. Enables the show, edit and delete paths.
		`,
	)

	pathsCmd.Flags().StringP(
		"parent",
		"p",
		"",
		`
			Parent resource as type:key, e.g. order:7.
		`,
	)

	pathsCmd.Flags().StringP(
		"format",
		"f",
		"",
		`
			Format extension appended to every path, e.g. json.
		`,
	)

	if err := viper.BindPFlags(pathsCmd.Flags()); err != nil {
		panic(err)
	}
}

func pathOptions() (path.Options, error) {
	opts := path.Options{Format: viper.GetString("format")}
	parent := viper.GetString("parent")
	if parent == "" {
		return opts, nil
	}
	id, err := parseID(parent)
	if err != nil {
		return opts, err
	}
	return opts.WithParent(id), nil
}

func parseID(s string) (resource.ID, error) {
	split := strings.SplitN(s, ":", 2)
	if len(split) != 2 {
		return resource.ID{}, errors.Newf("[cmd] - invalid resource %q, expected type:key", s)
	}
	id := resource.ID{Type: resource.Type(split[0]), Key: split[1]}
	return id, id.Validate()
}

type namedPath struct {
	name string
	path path.Path
}

func conventionalPaths(t resource.Type, key string, opts path.Options) ([]namedPath, error) {
	index, err := path.Index(t, opts)
	if err != nil {
		return nil, err
	}
	create, err := path.Create(t, opts)
	if err != nil {
		return nil, err
	}
	paths := []namedPath{{"index", index}, {"new", create}}
	if key == "" {
		return paths, nil
	}
	m := resource.ID{Type: t, Key: key}
	show, err := path.Show(m, opts)
	if err != nil {
		return nil, err
	}
	edit, err := path.Edit(m, opts)
	if err != nil {
		return nil, err
	}
	del, err := path.Delete(m, opts)
	if err != nil {
		return nil, err
	}
	return append(paths, namedPath{"show", show}, namedPath{"edit", edit}, namedPath{"delete", del}), nil
}

func printPaths(w io.Writer, t resource.Type, key string, opts path.Options) error {
	paths, err := conventionalPaths(t, key, opts)
	if err != nil {
		return err
	}
	for _, p := range paths {
		if _, err := fmt.Fprintf(w, "%-7s %s\n", p.name, p.path); err != nil {
			return err
		}
	}
	return nil
}
