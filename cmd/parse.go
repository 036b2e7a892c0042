package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"kantan-bindgen/pkg/ast"
	"kantan-bindgen/pkg/config"
	"kantan-bindgen/pkg/document"
	"kantan-bindgen/pkg/fetch"
	"kantan-bindgen/pkg/whitelist"

	"github.com/itchyny/gojq"
	"github.com/spf13/cobra"
)

var parseCmd = &cobra.Command{
	Use:   "parse [source]",
	Short: "Parse a source and print its extern blocks",
	Long: `Parse a source file or URL and print the declarations found in its
extern "C" blocks. The output can be in JSON format for further processing or
human-readable format. A jq expression can be applied to the JSON form.

Examples:
  # Names of all whitelisted declarations
  kantan-bindgen parse core.rs --query '.blocks[].declarations[] | select(.whitelisted) | .name'`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		source := args[0]

		fetcher, err := fetch.NewFetcher(&fetch.Config{Timeout: config.Default().Fetch.Timeout}, 1)
		if err != nil {
			return fmt.Errorf("failed to create fetcher: %w", err)
		}
		content, err := fetcher.Fetch(context.Background(), source)
		if err != nil {
			return err
		}

		doc := document.NewFromContent(source, content)
		blocks, err := doc.Parse()
		if err != nil {
			return err
		}

		format, _ := cmd.Flags().GetString("format")
		showAll, _ := cmd.Flags().GetBool("all")
		query, _ := cmd.Flags().GetString("query")

		if query != "" {
			return outputQuery(source, blocks, showAll, query)
		}

		switch format {
		case "json":
			return outputJSON(source, blocks, showAll)
		default:
			return outputHuman(source, blocks, showAll)
		}
	},
}

func init() {
	parseCmd.Flags().StringP("format", "f", "human", "Output format (human, json)")
	parseCmd.Flags().BoolP("all", "a", false, "Include deprecated declarations")
	parseCmd.Flags().StringP("query", "q", "", "jq expression applied to the JSON output")
}

// JSONDeclaration is the JSON form of a parsed declaration
type JSONDeclaration struct {
	Name        string          `json:"name"`
	Parameters  []JSONParameter `json:"parameters"`
	ReturnType  string          `json:"returnType"`
	Doc         []string        `json:"doc,omitempty"`
	Deprecated  bool            `json:"deprecated,omitempty"`
	Whitelisted bool            `json:"whitelisted"`
	Line        int             `json:"line"`
	Column      int             `json:"column"`
}

// JSONParameter is the JSON form of a declaration parameter
type JSONParameter struct {
	Name string `json:"name"`
	Type string `json:"type"`
}

// JSONBlock is the JSON form of an extern block
type JSONBlock struct {
	Doc          string            `json:"doc,omitempty"`
	Line         int               `json:"line"`
	Declarations []JSONDeclaration `json:"declarations"`
}

func buildJSON(source string, blocks []*ast.Block, showAll bool) map[string]interface{} {
	wl := whitelist.Default()

	jsonBlocks := make([]JSONBlock, 0, len(blocks))
	for _, b := range blocks {
		jb := JSONBlock{
			Doc:          b.Doc,
			Line:         b.Pos.Line,
			Declarations: []JSONDeclaration{},
		}

		for _, d := range b.Declarations {
			if d.IsSentinel() && !showAll {
				continue
			}

			jd := JSONDeclaration{
				Name:        d.Name,
				Parameters:  []JSONParameter{},
				ReturnType:  d.ReturnType,
				Doc:         d.Doc,
				Deprecated:  d.Deprecated,
				Whitelisted: wl.Contains(d.Name),
				Line:        d.Pos.Line,
				Column:      d.Pos.Column,
			}
			for _, p := range d.Parameters {
				jd.Parameters = append(jd.Parameters, JSONParameter{Name: p.Name, Type: p.Type})
			}
			jb.Declarations = append(jb.Declarations, jd)
		}

		jsonBlocks = append(jsonBlocks, jb)
	}

	return map[string]interface{}{
		"source": source,
		"blocks": jsonBlocks,
	}
}

func outputJSON(source string, blocks []*ast.Block, showAll bool) error {
	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")
	return encoder.Encode(buildJSON(source, blocks, showAll))
}

// outputQuery runs a jq expression over the JSON form and prints each result
func outputQuery(source string, blocks []*ast.Block, showAll bool, query string) error {
	results, err := runQuery(buildJSON(source, blocks, showAll), query)
	if err != nil {
		return err
	}
	for _, r := range results {
		fmt.Println(r)
	}
	return nil
}

// runQuery evaluates query against v and renders every result: strings are
// printed bare, everything else as compact JSON
func runQuery(v interface{}, query string) ([]string, error) {
	q, err := gojq.Parse(query)
	if err != nil {
		return nil, fmt.Errorf("invalid query %q: %w", query, err)
	}

	// gojq only accepts plain maps, slices and scalars
	raw, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("failed to encode declarations: %w", err)
	}
	var input interface{}
	if err := json.Unmarshal(raw, &input); err != nil {
		return nil, fmt.Errorf("failed to decode declarations: %w", err)
	}

	var results []string
	iter := q.Run(input)
	for {
		out, ok := iter.Next()
		if !ok {
			break
		}
		if err, isErr := out.(error); isErr {
			return nil, fmt.Errorf("query failed: %w", err)
		}

		switch val := out.(type) {
		case string:
			results = append(results, val)
		default:
			encoded, err := json.Marshal(val)
			if err != nil {
				return nil, fmt.Errorf("failed to encode query result: %w", err)
			}
			results = append(results, string(encoded))
		}
	}
	return results, nil
}

func outputHuman(source string, blocks []*ast.Block, showAll bool) error {
	fmt.Printf("Parsed source: %s\n", source)
	fmt.Printf("=====================================\n\n")

	wl := whitelist.Default()
	total, deprecated, whitelisted := 0, 0, 0

	for i, b := range blocks {
		fmt.Printf("Block %d (line %d)", i+1, b.Pos.Line)
		if b.Doc != "" {
			fmt.Printf(": %s", b.Doc)
		}
		fmt.Println()

		for _, d := range b.Declarations {
			total++
			if d.Deprecated {
				deprecated++
				if showAll {
					fmt.Printf("  [deprecated]\n")
				}
				continue
			}

			marker := ""
			if wl.Contains(d.Name) {
				whitelisted++
				marker = " [whitelisted]"
			}
			fmt.Printf("  %s%s\n", d.Signature(), marker)
			if len(d.Doc) > 0 {
				fmt.Printf("    %s\n", strings.Join(d.Doc, "\n    "))
			}
		}
		fmt.Println()
	}

	fmt.Printf("Summary:\n")
	fmt.Printf("--------\n")
	fmt.Printf("Blocks: %d\n", len(blocks))
	fmt.Printf("Declarations: %d\n", total)
	fmt.Printf("Deprecated: %d\n", deprecated)
	fmt.Printf("Whitelisted: %d\n", whitelisted)

	return nil
}
