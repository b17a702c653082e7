package dataset

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"golang.org/x/net/html"

	"tabhash/internal/table"
)

// decodeHTML extracts the first <table> element of an HTML page. The
// first table row supplies the header; every following row is data.
func decodeHTML(path string) (*table.Table, *LoadInfo, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	doc, err := html.Parse(f)
	if err != nil {
		return nil, nil, fmt.Errorf("parse HTML: %w", err)
	}

	tableNode := findTable(doc)
	if tableNode == nil {
		return nil, nil, errors.New("no <table> element found")
	}

	rows := tableRows(tableNode)
	if len(rows) == 0 {
		return nil, nil, errors.New("<table> element has no rows")
	}

	tbl, err := columnsFromRows(rows[0], rows[1:], decimalNumeric('.'))
	if err != nil {
		return nil, nil, err
	}
	return tbl, &LoadInfo{Format: FormatHTML}, nil
}

func findTable(n *html.Node) *html.Node {
	if n.Type == html.ElementNode && n.Data == "table" {
		return n
	}
	for child := n.FirstChild; child != nil; child = child.NextSibling {
		if found := findTable(child); found != nil {
			return found
		}
	}
	return nil
}

// tableRows collects the tr rows of one table. Nested tables are not
// descended into; their content belongs to their own table.
func tableRows(tableNode *html.Node) [][]string {
	var rows [][]string
	var walk func(n *html.Node)
	walk = func(n *html.Node) {
		for child := n.FirstChild; child != nil; child = child.NextSibling {
			if child.Type != html.ElementNode {
				continue
			}
			switch child.Data {
			case "table":
				continue
			case "tr":
				rows = append(rows, rowCells(child))
			default:
				walk(child)
			}
		}
	}
	walk(tableNode)
	return rows
}

func rowCells(tr *html.Node) []string {
	var cells []string
	for child := tr.FirstChild; child != nil; child = child.NextSibling {
		if child.Type != html.ElementNode {
			continue
		}
		if child.Data == "td" || child.Data == "th" {
			cells = append(cells, cellText(child))
		}
	}
	return cells
}

func cellText(n *html.Node) string {
	var sb strings.Builder
	var walk func(n *html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.TextNode {
			sb.WriteString(n.Data)
			return
		}
		if n.Type == html.ElementNode && n.Data == "table" {
			return
		}
		for child := n.FirstChild; child != nil; child = child.NextSibling {
			walk(child)
		}
	}
	walk(n)
	return strings.TrimSpace(sb.String())
}
