package commands

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/spf13/cobra"
	"go.trai.ch/prosa/internal/app"
	"go.trai.ch/prosa/internal/core/domain"
	"go.trai.ch/zerr"
)

var errInvalidDefine = zerr.New("invalid property definition")

func (c *CLI) newGenerateCmd() *cobra.Command {
	defaults := domain.DefaultSettings()

	cmd := &cobra.Command{
		Use:   "generate [dir]",
		Short: "Generate build.xml and build.properties for a module and its descendants",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir := "."
			if len(args) == 1 {
				dir = args[0]
			}

			settings, err := settingsFromFlags(cmd)
			if err != nil {
				return err
			}
			jobs, _ := cmd.Flags().GetInt("jobs")

			report, err := c.app.Generate(cmd.Context(), app.GenerateOptions{
				Dir:      dir,
				Settings: settings,
				Jobs:     jobs,
			})
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%d written, %d unchanged\n", len(report.Written), len(report.Unchanged))
			return nil
		},
	}

	flags := cmd.Flags()
	flags.String("root-directory", defaults.RootDirectory, "Directory, relative to the root module, receiving generated scripts")
	flags.String("lib-directory", defaults.LibDirectory, "Directory holding dependency jars, relative to the root directory")
	flags.String("webapp-directory", defaults.WebappDirectory, "Web content directory of web archives, relative to the module")
	flags.Bool("overwrite", defaults.Overwrite, "Overwrite outputs that were edited since they were generated")
	flags.Bool("offline", defaults.Offline, "Record offline mode in the generated settings")
	flags.Bool("interactive", defaults.Interactive, "Record interactive mode in the generated settings")
	flags.String("local-repository", defaultLocalRepository(), "Local artifact repository used to resolve doclets and taglets")
	flags.StringArrayP("define", "D", nil, "Execution property as key=value (repeatable)")
	flags.StringArray("mapping", nil, "Restorable file mapping as source=destination (repeatable)")
	flags.StringArray("config-mapping", nil, "Restorable configuration file mapping as source=destination (repeatable)")
	flags.IntP("jobs", "j", runtime.NumCPU(), "Number of modules generated concurrently")

	return cmd
}

func settingsFromFlags(cmd *cobra.Command) (domain.Settings, error) {
	flags := cmd.Flags()
	settings := domain.DefaultSettings()
	settings.RootDirectory, _ = flags.GetString("root-directory")
	settings.LibDirectory, _ = flags.GetString("lib-directory")
	settings.WebappDirectory, _ = flags.GetString("webapp-directory")
	settings.Overwrite, _ = flags.GetBool("overwrite")
	settings.Offline, _ = flags.GetBool("offline")
	settings.Interactive, _ = flags.GetBool("interactive")
	settings.LocalRepository, _ = flags.GetString("local-repository")

	defines, _ := flags.GetStringArray("define")
	if len(defines) > 0 {
		settings.ExecutionProperties = make(map[string]string, len(defines))
	}
	for _, d := range defines {
		key, value, ok := strings.Cut(d, "=")
		if !ok || strings.TrimSpace(key) == "" {
			return settings, zerr.With(errInvalidDefine, "define", d)
		}
		settings.ExecutionProperties[strings.TrimSpace(key)] = value
	}

	for _, f := range []struct {
		flag   string
		config bool
	}{{"mapping", false}, {"config-mapping", true}} {
		values, _ := flags.GetStringArray(f.flag)
		for _, v := range values {
			m, err := domain.ParseFileMapping(v, f.config)
			if err != nil {
				return settings, err
			}
			settings.FileMappings = append(settings.FileMappings, m)
		}
	}
	return settings, nil
}

func defaultLocalRepository() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".m2", "repository")
}
