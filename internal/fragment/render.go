package fragment

import (
	"strings"

	"fragit/internal/config"
)

// Template text is byte-identical across invocations; tests and the
// unedited-fragment check both depend on that.
const (
	leadLine     = "A new fragit changelog fragment."
	guidanceLine = "Uncomment the header that is right for this change."
	bulletLine   = "- A bullet item for this fragment. EDIT ME!"
)

// NewFragmentContents renders the initial template body for a fragment.
// Pure function of the configuration: no filesystem or clock access.
func NewFragmentContents(cfg *config.Configuration) string {
	if cfg.Format == config.FormatMD {
		return renderMD(cfg)
	}
	return renderRST(cfg)
}

// renderRST renders the reStructuredText variant. Every template line is a
// ".." comment; category headings are underlined with the second configured
// header character repeated to the heading width.
func renderRST(cfg *config.Configuration) string {
	var b strings.Builder
	b.WriteString(".. " + leadLine + "\n")

	if len(cfg.Categories) == 0 {
		b.WriteString("\n" + bulletLine + "\n")
		return b.String()
	}

	underline := []rune(cfg.RSTHeaderChars)[1]
	b.WriteString("..\n")
	b.WriteString(".. " + guidanceLine + "\n")
	for _, cat := range cfg.Categories {
		b.WriteString("..\n")
		b.WriteString(".. " + cat + "\n")
		b.WriteString(".. " + strings.Repeat(string(underline), len([]rune(cat))) + "\n")
		b.WriteString("..\n")
		b.WriteString(".. " + bulletLine + "\n")
	}
	return b.String()
}

// renderMD renders the Markdown variant. The instructional block is a single
// HTML comment; each category section is its own comment block so the
// "uncomment" guidance applies the same way it does for rst.
func renderMD(cfg *config.Configuration) string {
	var b strings.Builder
	b.WriteString("<!--\n")
	b.WriteString(leadLine + "\n")

	if len(cfg.Categories) == 0 {
		b.WriteString("-->\n\n" + bulletLine + "\n")
		return b.String()
	}

	b.WriteString("\n" + guidanceLine + "\n")
	b.WriteString("-->\n")
	for _, cat := range cfg.Categories {
		b.WriteString("\n<!--\n")
		b.WriteString("### " + cat + "\n\n")
		b.WriteString(bulletLine + "\n")
		b.WriteString("-->\n")
	}
	return b.String()
}
