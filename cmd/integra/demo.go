package main

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/germanamz/integra/pkg/catalog"
	"github.com/germanamz/integra/pkg/generation"
)

// example is one scripted demo prompt.
type example struct {
	Title  string            // Section heading.
	Label  string            // Heading printed above the result.
	Model  string            // Catalog key of the model to use.
	Lang   string            // Code fence language; empty renders the result as prose.
	Prompt string
	Params generation.Params
}

// examples run in order, each one completing before the next starts.
var examples = []example{
	{
		Title:  "Example 1: Story Generation",
		Label:  "Generated Story:",
		Model:  "gpt2",
		Prompt: "In a world where AI and humans collaborate,",
		Params: generation.Params{MaxLength: 150, Temperature: 0.8},
	},
	{
		Title:  "Example 2: Code Generation",
		Label:  "Generated Code:",
		Model:  "codegpt",
		Lang:   "javascript",
		Prompt: "function calculateFibonacci(n) {",
		Params: generation.Params{MaxLength: 100, Temperature: 0.3},
	},
	{
		Title:  "Example 3: Question Answering",
		Label:  "Generated Answer:",
		Model:  "dialogpt",
		Prompt: "What are the benefits of using TypeScript over JavaScript?",
		Params: generation.Params{MaxLength: 120, Temperature: 0.5},
	},
}

// demo prints the welcome banner and the catalog, then runs the examples.
type demo struct {
	out      io.Writer
	catalog  *catalog.Catalog
	gen      generation.Generator
	md       markdown
	examples []example
}

// run never fails on a single generation error; those are reported inline.
// The returned error covers only writes to out.
func (d *demo) run(ctx context.Context) error {
	var sb strings.Builder

	sb.WriteString(bannerStyle.Render("Welcome to Integra!") + "\n")
	sb.WriteString(taglineStyle.Render("A Go-powered GenAI text generator") + "\n")
	sb.WriteString(rule() + "\n")
	sb.WriteString("\n" + sectionStyle.Render("Available AI Models:") + "\n")
	sb.WriteString(rule() + "\n")
	if _, err := io.WriteString(d.out, sb.String()); err != nil {
		return err
	}

	if err := d.catalog.Render(d.out); err != nil {
		return err
	}

	for _, ex := range d.examples {
		if ctx.Err() != nil {
			return nil
		}
		if err := d.runExample(ctx, ex); err != nil {
			return err
		}
	}

	_, err := fmt.Fprintf(d.out, "\n%s\n", doneStyle.Render("Integra demo completed!"))
	return err
}

func (d *demo) runExample(ctx context.Context, ex example) error {
	endpoint := ex.Model
	if m, ok := d.catalog.Get(ex.Model); ok {
		endpoint = m.Endpoint
	}

	if _, err := fmt.Fprintf(d.out, "\n%s\n%s\n",
		sectionStyle.Render(ex.Title),
		promptStyle.Render(fmt.Sprintf("Prompt: %q", preview(ex.Prompt, ruleWidth+10))),
	); err != nil {
		return err
	}

	res, err := d.gen.Generate(ctx, generation.Request{
		Prompt:   ex.Prompt,
		Endpoint: endpoint,
		Params:   ex.Params,
	})
	if err != nil {
		_, werr := fmt.Fprintln(d.out, failureStyle.Render("Generation failed: "+err.Error()))
		return werr
	}

	_, err = fmt.Fprintf(d.out, "%s\n%s\n", labelStyle.Render(ex.Label), d.format(ex, res))
	return err
}

// format renders a result for display. Raw payloads are shown as JSON.
func (d *demo) format(ex example, res generation.Result) string {
	switch {
	case res.Kind == generation.KindRaw:
		return d.md.Render(codeBlock("json", string(res.Raw)))
	case ex.Lang != "":
		return d.md.Render(codeBlock(ex.Lang, ex.Prompt+res.Text))
	default:
		return d.md.Render(res.Text)
	}
}
