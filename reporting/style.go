package reporting

import "fmt"

// Palette holds the hex colors fed into the HTML template's stylesheet.
type Palette struct {
	PageBG       string
	Text         string
	TextLight    string
	Border       string
	HeaderBG     string
	SuccessBG    string
	SuccessLight string
	SuccessText  string
	FailureBG    string
	FailureLight string
	FailureText  string
	Accent       string
}

// Style selects a rendering variant for the HTML report. All variants share
// one template; the style only controls colors and which optional blocks
// (per-test descriptions, captured output) are emitted.
type Style struct {
	Name             string
	ShowDescriptions bool
	ShowOutput       bool
	Palette          Palette
}

// ClassicStyle is the default full report: indigo header, per-test
// descriptions and collapsible captured output.
func ClassicStyle() Style {
	return Style{
		Name:             "classic",
		ShowDescriptions: true,
		ShowOutput:       true,
		Palette: Palette{
			PageBG:       "#eef0f3",
			Text:         "#333333",
			TextLight:    "#777777",
			Border:       "#dddddd",
			HeaderBG:     "#1a237e",
			SuccessBG:    "#2e7d32",
			SuccessLight: "#eafaf1",
			SuccessText:  "#1e8449",
			FailureBG:    "#c62828",
			FailureLight: "#fdedec",
			FailureText:  "#c0392b",
			Accent:       "#1565c0",
		},
	}
}

// CompactStyle is a trimmed variant for quick scanning: no per-test
// descriptions, no captured output, muted slate palette.
func CompactStyle() Style {
	return Style{
		Name:             "compact",
		ShowDescriptions: false,
		ShowOutput:       false,
		Palette: Palette{
			PageBG:       "#f4f5f7",
			Text:         "#24292f",
			TextLight:    "#6e7781",
			Border:       "#d0d7de",
			HeaderBG:     "#37474f",
			SuccessBG:    "#2da44e",
			SuccessLight: "#eefaf2",
			SuccessText:  "#1a7f37",
			FailureBG:    "#cf222e",
			FailureLight: "#ffebe9",
			FailureText:  "#a40e26",
			Accent:       "#0969da",
		},
	}
}

// BuiltinStyles returns all known styles keyed by name.
func BuiltinStyles() map[string]Style {
	return map[string]Style{
		"classic": ClassicStyle(),
		"compact": CompactStyle(),
	}
}

// LookupStyle resolves a style by name.
func LookupStyle(name string) (Style, error) {
	style, ok := BuiltinStyles()[name]
	if !ok {
		return Style{}, fmt.Errorf("unknown report style %q (valid styles: classic, compact)", name)
	}
	return style, nil
}
