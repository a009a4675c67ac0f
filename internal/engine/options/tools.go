package options

import "go.trai.ch/prosa/internal/core/domain"

// Names of the tools whose configuration drives the generated targets.
const (
	ToolCompiler = "maven-compiler-plugin"
	ToolSurefire = "maven-surefire-plugin"
	ToolJavadoc  = "maven-javadoc-plugin"
	ToolJar      = "maven-jar-plugin"
	ToolWar      = "maven-war-plugin"
	ToolEar      = "maven-ear-plugin"
)

// SelectorList flattens a list of selector records such as
// <includes><include>a</include></includes> into its values, in order.
func SelectorList(items []domain.Record) []string {
	var out []string
	for _, item := range items {
		out = append(out, item.Values()...)
	}
	return out
}
