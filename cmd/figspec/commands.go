package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/delaneyj/figspec/cssgen"
	"github.com/delaneyj/figspec/figma"
	"github.com/delaneyj/figspec/report"
	"github.com/dustin/go-humanize"
	"github.com/olekukonko/tablewriter"
	"github.com/urfave/cli/v3"
)

func loadSource(cmd *cli.Command) (*figma.Source, error) {
	path := cmd.Args().First()
	if path == "" {
		return nil, errMissingFile
	}
	return figma.LoadFile(path)
}

func css(ctx context.Context, cmd *cli.Command) error {
	src, err := loadSource(cmd)
	if err != nil {
		return err
	}
	p, err := loadPreferences(cmd)
	if err != nil {
		return err
	}

	id := cmd.String(nodeKey)
	n := src.FindByID(id)
	if n == nil {
		return fmt.Errorf("%w: %s", report.ErrNodeNotFound, id)
	}
	_, err = fmt.Fprintln(stdout, cssgen.Serialize(cssgen.FromNode(n, p), p))
	return err
}

func tree(ctx context.Context, cmd *cli.Command) error {
	src, err := loadSource(cmd)
	if err != nil {
		return err
	}
	_, err = fmt.Fprint(stdout, figma.Tree(src.Root()))
	return err
}

func info(ctx context.Context, cmd *cli.Command) error {
	src, err := loadSource(cmd)
	if err != nil {
		return err
	}

	kind, lastModified := "file", time.Time{}
	var nodes int
	var canvasCount string
	if src.File != nil {
		lastModified = src.File.LastModified
		nodes = figma.Count(src.File.Document)
		n := 0
		for range figma.Canvases(src.File.Document) {
			n++
		}
		canvasCount = fmt.Sprint(n)
	} else {
		kind = "file nodes"
		lastModified = src.Nodes.LastModified
		for _, e := range src.Nodes.Nodes {
			nodes += figma.Count(e.Document)
		}
		canvasCount = "-"
	}

	table := tablewriter.NewWriter(stdout)
	table.SetHeader([]string{"name", "kind", "last modified", "size", "fingerprint", "canvases", "nodes"})
	table.Append([]string{
		src.Name(),
		kind,
		humanize.Time(lastModified),
		humanize.Bytes(uint64(len(src.Data))),
		fmt.Sprintf("%016x", src.Fingerprint),
		canvasCount,
		humanize.Comma(int64(nodes)),
	})
	table.Render()
	return nil
}

func canvases(ctx context.Context, cmd *cli.Command) error {
	src, err := loadSource(cmd)
	if err != nil {
		return err
	}
	if src.File == nil {
		return fmt.Errorf("%s is not a file export", src.Path)
	}

	table := tablewriter.NewWriter(stdout)
	table.SetHeader([]string{"id", "name", "children", "nodes"})
	for c := range figma.Canvases(src.File.Document) {
		table.Append([]string{
			c.ID,
			c.Name,
			fmt.Sprint(len(c.Children)),
			humanize.Comma(int64(figma.Count(c))),
		})
	}
	table.Render()
	return nil
}

func writeReport(ctx context.Context, cmd *cli.Command) error {
	src, err := loadSource(cmd)
	if err != nil {
		return err
	}
	p, err := loadPreferences(cmd)
	if err != nil {
		return err
	}
	page, err := report.Build(src, cmd.String(nodeKey), p, time.Now())
	if err != nil {
		return err
	}

	out := cmd.String(outKey)
	if out == "" {
		report.WriteHTML(stdout, page)
		return nil
	}
	f, err := os.Create(out)
	if err != nil {
		return fmt.Errorf("failed to create report: %w", err)
	}
	defer f.Close()
	report.WriteHTML(f, page)
	return f.Close()
}
