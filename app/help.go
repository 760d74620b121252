package app

import (
	"strings"

	"github.com/pterm/pterm"

	"github.com/omahapp/mushaf/internal/pathutil"
)

// envVars lists the environment variables mushaf reads, in help order.
var envVars = []struct {
	names []string
	usage string
}{
	{
		names: []string{envMushafNoColor, envNoColor},
		usage: "set to any value to print without colors",
	},
	{
		names: []string{pathutil.EnvName},
		usage: `keep a separate config and database per value ("dev" uses config_dev.yml and mushaf_dev.db)`,
	},
	{
		names: []string{envUpdateNotifier},
		usage: "set to any value to look for a newer release when printing the version",
	},
	{
		names: []string{"VISUAL", "EDITOR"},
		usage: "editor opened by the edit-config command",
	},
}

// section renders a help heading followed by its body indented one level.
func section(title, body string) string {
	return pterm.Yellow(title) + "\n\t\t" + body + "\n\n"
}

// helpText returns the app help template with the headings colored.
func helpText() string {
	var b strings.Builder

	b.WriteString(section("DESCRIPTION", "{{.Usage}}"))
	b.WriteString(section(
		"USAGE",
		"{{.HelpName}} {{if .UsageText}}{{ .UsageText }}{{end}}",
	))
	b.WriteString("{{if .Version}}" + section("VERSION", "{{.Version}}") + "{{end}}")

	b.WriteString(pterm.Yellow("COMMANDS") + "\n")
	b.WriteString("{{range .VisibleCommands}}   " + pterm.Green("{{join .Names `, `}}") +
		"{{ `\t`}}{{.Usage}}{{ `\n` }}{{end}}\n\n")

	b.WriteString(pterm.Yellow("OPTIONS") + "\n")
	b.WriteString("{{range .VisibleFlags}}\t\t{{.}}\n{{end}}\n")

	b.WriteString(section("ENVIRONMENT", envHelp()))
	b.WriteString(section("WEBSITE", "https://github.com/omahapp/mushaf"))

	return b.String()
}

func envHelp() string {
	lines := make([]string, 0, len(envVars))

	for _, v := range envVars {
		lines = append(lines, strings.Join(v.names, ", ")+": "+v.usage)
	}

	return strings.Join(lines, "\n\t\t")
}
