package cmd

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/urfave/cli/v3"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/geoapis/go-isogeo/pkg/isogeo"
	"github.com/geoapis/go-isogeo/pkg/models"
)

// Define styles using lipgloss
var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("86"))

	metaStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240")).
			Italic(true)

	summaryStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("32")).
			Margin(1, 0, 0, 0)

	tagStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("214"))
)

var typeCaser = cases.Title(language.English)

// SearchCommand creates the search command
func SearchCommand() *cli.Command {
	return &cli.Command{
		Name:  "search",
		Usage: "Search metadata records on the platform",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "query",
				Usage: "Search terms and tag filters (e.g. 'roads type:vector-dataset')",
			},
			&cli.StringFlag{
				Name:  "group",
				Usage: "Restrict the search to a workgroup UUID",
			},
			&cli.StringFlag{
				Name:  "share",
				Usage: "Restrict the search to a share UUID",
			},
			&cli.StringFlag{
				Name:  "bbox",
				Usage: "WGS84 bounding box filter: minx,miny,maxx,maxy",
			},
			&cli.StringFlag{
				Name:  "order-by",
				Usage: "Sort field: relevance, title, _created, _modified, created, modified",
			},
			&cli.IntFlag{
				Name:  "limit",
				Usage: "Maximum number of results",
				Value: 20,
			},
			&cli.BoolFlag{
				Name:  "all",
				Usage: "Fetch every matching record, ignoring --limit",
			},
			&cli.BoolFlag{
				Name:  "tags",
				Usage: "Show the response tags grouped by facet",
			},
		},
		Action: func(ctx context.Context, c *cli.Command) error {
			return runSearch(ctx, c)
		},
	}
}

func runSearch(ctx context.Context, c *cli.Command) error {
	_, profile, err := loadProfile(c.String("config"), c.String("profile"))
	if err != nil {
		return err
	}

	client, err := newAPIClient(ctx, profile)
	if err != nil {
		return err
	}

	opts := isogeo.SearchOptions{
		Query:    c.String("query"),
		Group:    c.String("group"),
		Share:    c.String("share"),
		OrderBy:  c.String("order-by"),
		PageSize: c.Int("limit"),
	}
	if c.Bool("all") {
		opts.WholeResults = true
		opts.PageSize = 0
	}
	if bbox := c.String("bbox"); bbox != "" {
		coords, err := parseBBox(bbox)
		if err != nil {
			return err
		}
		opts.BBox = coords
	}

	search, err := client.Search.Search(ctx, opts)
	if err != nil {
		return fmt.Errorf("searching: %w", err)
	}

	printSearch(search)

	if c.Bool("tags") {
		printTags(search.Tags)
	}
	return nil
}

func parseBBox(raw string) ([]float64, error) {
	parts := strings.Split(raw, ",")
	if len(parts) != 4 {
		return nil, fmt.Errorf("bbox must have 4 comma-separated coordinates, got %d", len(parts))
	}
	coords := make([]float64, 4)
	for i, part := range parts {
		coord, err := strconv.ParseFloat(strings.TrimSpace(part), 64)
		if err != nil {
			return nil, fmt.Errorf("parsing bbox coordinate %q: %w", part, err)
		}
		coords[i] = coord
	}
	return coords, nil
}

func printSearch(search *models.MetadataSearch) {
	for _, md := range search.Results {
		printRecord(md)
	}
	fmt.Println(summaryStyle.Render(fmt.Sprintf("%d of %d record(s)", len(search.Results), search.Total)))
}

func printRecord(md models.Metadata) {
	fmt.Println(titleStyle.Render(md.Title))
	line := []string{typeCaser.String(strings.ReplaceAll(md.Type, "-", " "))}
	if md.Format != "" {
		line = append(line, md.Format)
	}
	if md.Modified != "" {
		line = append(line, "modified "+md.Modified)
	}
	line = append(line, md.ID)
	fmt.Println(metaStyle.Render("  " + strings.Join(line, " | ")))
}

func printTags(tags map[string]string) {
	grouped := models.TagsAsDicts(tags)
	for _, family := range []string{"types", "formats", "keywords", "inspires", "owners", "catalogs", "contacts", "licenses", "shares"} {
		entries := grouped[family]
		if len(entries) == 0 {
			continue
		}
		fmt.Println(tagStyle.Render(family + ":"))
		for label, tag := range entries {
			fmt.Printf("  %s  (%s)\n", label, tag)
		}
	}
}
