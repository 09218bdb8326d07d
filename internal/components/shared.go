package components

import (
	"fmt"
	"strings"

	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"
)

// Logo renders the leaf mark followed by the brand name. textClass colours
// the brand word; the accent word is always yellow.
func Logo(brand, accent, textClass string) g.Node {
	return Div(
		Class("flex items-center gap-2"),
		Div(
			Class("w-10 h-10 bg-gradient-to-br from-green-600 to-yellow-500 rounded-lg flex items-center justify-center"),
			Icon("lucide--leaf text-white w-6 h-6", ""),
		),
		Span(
			Class(strings.TrimSpace("text-2xl font-bold tracking-tight "+textClass)),
			g.Attr("data-nav-role", "brand"),
			g.Text(brand),
			g.If(accent != "", g.Group([]g.Node{
				g.Text(" "),
				Span(Class("text-yellow-500"), g.Text(accent)),
			})),
		),
	)
}

func convertIconName(iconClass string) string {
	parts := strings.Fields(iconClass)
	if len(parts) == 0 {
		return ""
	}
	return strings.Replace(parts[0], "--", ":", 1)
}

func extractSizeClasses(iconClass string) string {
	parts := strings.Fields(iconClass)
	if len(parts) > 1 {
		return strings.Join(parts[1:], " ")
	}
	return ""
}

// Icon renders an iconify placeholder. iconClass is "set--name" optionally
// followed by utility classes, e.g. "lucide--flame w-6 h-6".
func Icon(iconClass, ariaLabel string) g.Node {
	iconName := convertIconName(iconClass)
	sizeClasses := extractSizeClasses(iconClass)
	classes := "iconify inline-block"
	if sizeClasses != "" {
		classes = fmt.Sprintf("iconify inline-block %s", sizeClasses)
	}

	if ariaLabel != "" {
		return Span(
			Class(classes),
			g.Attr("data-icon", iconName),
			g.Attr("role", "img"),
			g.Attr("aria-label", ariaLabel),
		)
	}

	return Span(
		Class(classes),
		g.Attr("data-icon", iconName),
		g.Attr("aria-hidden", "true"),
	)
}

// IconBadge renders an icon inside a tinted circle, e.g. the technology
// highlights.
func IconBadge(icon, color string) g.Node {
	containerClass := fmt.Sprintf("w-12 h-12 bg-%s-100 rounded-full flex items-center justify-center flex-shrink-0", color)
	return Div(
		Class(containerClass),
		Icon(fmt.Sprintf("%s text-%s-600 w-6 h-6", icon, color), ""),
	)
}

func checkIcon(extra string) g.Node {
	return Icon("lucide--check-circle "+extra, "")
}

func sectionHeading(class, text string) g.Node {
	return H2(Class(class), g.Text(text))
}
