package main

import (
	"encoding/json"
	"fmt"
	"io"
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"
	"gopkg.in/yaml.v3"

	"travelplanner/internal/models/response_models"
)

const (
	formatText = "text"
	formatJSON = "json"
	formatYAML = "yaml"
)

type renderer func(w io.Writer, it response_models.Itinerary) error

func rendererFor(format string) (renderer, error) {
	switch strings.ToLower(format) {
	case formatText:
		return renderText, nil
	case formatJSON:
		return renderJSON, nil
	case formatYAML:
		return renderYAML, nil
	default:
		return nil, fmt.Errorf("unknown format %q (want text, json or yaml)", format)
	}
}

func renderJSON(w io.Writer, it response_models.Itinerary) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(it)
}

func renderYAML(w io.Writer, it response_models.Itinerary) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(it); err != nil {
		return err
	}
	return enc.Close()
}

var (
	titleStyle = lipgloss.NewStyle().Bold(true)
	dayStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("39"))
	noteStyle  = lipgloss.NewStyle().Faint(true)
)

func renderText(w io.Writer, it response_models.Itinerary) error {
	var b strings.Builder

	b.WriteString(titleStyle.Render(fmt.Sprintf("%s Travel Itinerary", it.City)))
	b.WriteByte('\n')
	fmt.Fprintf(&b, "%d days • Total Budget: %s\n", len(it.Days), rupees(it.EstimatedTotal))

	labels := make([]string, 0, len(it.Interests))
	for _, i := range it.Interests {
		labels = append(labels, i.Icon()+" "+i.Label())
	}
	fmt.Fprintf(&b, "Interests: %s\n", strings.Join(labels, ", "))

	for _, day := range it.Days {
		b.WriteByte('\n')
		b.WriteString(dayStyle.Render(fmt.Sprintf("Day %d", day.Day)))
		fmt.Fprintf(&b, "  %s\n", rupees(day.DayCost()))

		if len(day.Activities) == 0 {
			b.WriteString(noteStyle.Render("  Free day"))
			b.WriteByte('\n')
			continue
		}
		for _, a := range day.Activities {
			fmt.Fprintf(&b, "  %-18s %s  %s  %s\n", a.Time, a.Place, rupees(a.Cost), a.Category.Icon())
			b.WriteString(noteStyle.Render("  " + strings.Repeat(" ", 18) + " " + a.Note))
			b.WriteByte('\n')
		}
	}

	fmt.Fprintf(&b, "\nTotal: %s\n", rupees(it.EstimatedTotal))

	_, err := io.WriteString(w, b.String())
	return err
}

func rupees(v float64) string {
	return "₹" + humanize.Comma(int64(math.Round(v)))
}
