package templater

import (
	"regexp"
	"strings"
	"text/template"

	"github.com/romnn/helm-deploy-action/internal/ports"
)

var _ ports.Templater = (*TextTemplater)(nil)

// TextTemplater renders ${{ ... }} references with text/template. The
// delimiter matches the hosting platform's own interpolation syntax so
// value-file authors deal with a single syntax.
type TextTemplater struct{}

func ProvideTextTemplater() ports.Templater {
	return &TextTemplater{}
}

// referencePattern finds ${{ name... }} references written without the
// leading dot of a template field access, e.g. ${{ secrets.KEY }}.
var referencePattern = regexp.MustCompile(`(\$\{\{\s*)([A-Za-z_])`)

func (t TextTemplater) Render(templateText string, templateName string, values map[string]interface{}) (string, error) {
	normalized := referencePattern.ReplaceAllString(templateText, "${1}.${2}")

	tmpl, err := template.New(templateName).Delims("${{", "}}").Option("missingkey=zero").Parse(normalized)
	if err != nil {
		return "", err
	}
	var result strings.Builder
	if err := tmpl.Execute(&result, values); err != nil {
		return "", err
	}

	// missingkey=zero renders untyped missing entries as "<no value>";
	// the contract is that unresolved references render empty.
	return strings.ReplaceAll(result.String(), "<no value>", ""), nil
}
