// Command creatorctl runs the content generators from the terminal.
package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/chynybekuuludastan/creator_toolkit/internal/clipboard"
	"github.com/chynybekuuludastan/creator_toolkit/internal/config"
	"github.com/chynybekuuludastan/creator_toolkit/internal/logger"
	"github.com/chynybekuuludastan/creator_toolkit/internal/service/generator"
	"github.com/chynybekuuludastan/creator_toolkit/internal/validator"
)

const usageText = `Usage: creatorctl <command> [flags]

Commands:
  titles        generate ten video titles for a topic
  description   build a video description
  seo           analyze title, description and tags

Run "creatorctl <command> -h" for command flags.
`

// exit codes
const (
	exitOK    = 0
	exitError = 1
	exitUsage = 2
)

func main() {
	_ = godotenv.Load()
	cfg := config.NewConfig()
	logger.SetLogger(logger.New(os.Stderr, cfg.LogLevel, "text"))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	os.Exit(run(ctx, os.Args[1:], cli{
		stdout:       os.Stdout,
		stderr:       os.Stderr,
		clipboard:    clipboard.System{},
		defaultDelay: cfg.GenerationDelay,
	}))
}

// cli carries the process environment so run can be tested
type cli struct {
	stdout       io.Writer
	stderr       io.Writer
	clipboard    clipboard.Writer
	defaultDelay time.Duration
}

// common flags shared by every command
type commonFlags struct {
	copy   bool
	asJSON bool
	delay  time.Duration
}

func (c *commonFlags) register(fs *flag.FlagSet, defaultDelay time.Duration) {
	fs.BoolVar(&c.copy, "copy", false, "copy the output to the clipboard")
	fs.BoolVar(&c.asJSON, "json", false, "print the result as JSON")
	fs.DurationVar(&c.delay, "delay", defaultDelay, "simulated processing time")
}

func run(ctx context.Context, args []string, env cli) int {
	if len(args) == 0 {
		fmt.Fprint(env.stderr, usageText)
		return exitUsage
	}

	switch args[0] {
	case "titles":
		return runTitles(ctx, args[1:], env)
	case "description":
		return runDescription(ctx, args[1:], env)
	case "seo":
		return runSEO(ctx, args[1:], env)
	case "-h", "--help", "help":
		fmt.Fprint(env.stdout, usageText)
		return exitOK
	default:
		fmt.Fprintf(env.stderr, "unknown command %q\n\n%s", args[0], usageText)
		return exitUsage
	}
}

func newService(delay time.Duration) *generator.Service {
	if delay <= 0 {
		delay = -1
	}
	return generator.NewService(generator.ServiceOptions{Delay: delay, Logger: logger.NewKV(nil)})
}

func runTitles(ctx context.Context, args []string, env cli) int {
	fs := flag.NewFlagSet("titles", flag.ContinueOnError)
	fs.SetOutput(env.stderr)
	var common commonFlags
	common.register(fs, env.defaultDelay)
	req := generator.TitleRequest{}
	fs.StringVar(&req.Topic, "topic", "", "video topic")
	category := fs.String("category", "", "content category")
	tone := fs.String("tone", "", "title tone")
	if err := fs.Parse(args); err != nil {
		return exitUsage
	}
	req.Category = generator.Category(*category)
	req.Tone = generator.Tone(*tone)

	if err := validator.NewValidator().ValidateTitleRequest(&req); err != nil {
		return invalid(env, err)
	}

	result, err := newService(common.delay).GenerateTitles(ctx, req)
	if err != nil {
		return failed(env, err)
	}
	if result == nil {
		fmt.Fprintln(env.stderr, "Nothing to generate: topic is empty")
		return exitOK
	}

	var b strings.Builder
	for i, title := range result.Titles {
		fmt.Fprintf(&b, "%d. %s\n", i+1, title)
	}
	return emit(env, common, result, b.String(), strings.Join(result.Titles, "\n"))
}

func runDescription(ctx context.Context, args []string, env cli) int {
	fs := flag.NewFlagSet("description", flag.ContinueOnError)
	fs.SetOutput(env.stderr)
	var common commonFlags
	common.register(fs, env.defaultDelay)
	req := generator.DescriptionRequest{}
	fs.StringVar(&req.Title, "title", "", "video title")
	fs.StringVar(&req.KeyPoints, "points", "", `key points, one per line (use "\n" to separate)`)
	cta := fs.String("cta", string(generator.CTASubscribe), "call to action: subscribe, comment, follow or custom")
	fs.BoolVar(&req.IncludeHashtags, "hashtags", false, "include the hashtag block")
	fs.BoolVar(&req.IncludeTimestamps, "timestamps", false, "include the timestamp block")
	if err := fs.Parse(args); err != nil {
		return exitUsage
	}
	req.CallToAction = generator.CallToAction(*cta)
	req.KeyPoints = strings.ReplaceAll(req.KeyPoints, `\n`, "\n")

	if err := validator.NewValidator().ValidateDescriptionRequest(&req); err != nil {
		return invalid(env, err)
	}

	result, err := newService(common.delay).GenerateDescription(ctx, req)
	if err != nil {
		return failed(env, err)
	}
	if result == nil {
		fmt.Fprintln(env.stderr, "Nothing to generate: title is empty")
		return exitOK
	}

	if !result.WithinLimit {
		fmt.Fprintf(env.stderr, "Warning: description is %d characters, over the %d character limit\n",
			result.CharacterCount, result.CharacterLimit)
	}
	return emit(env, common, result, result.Description+"\n", result.Description)
}

func runSEO(ctx context.Context, args []string, env cli) int {
	fs := flag.NewFlagSet("seo", flag.ContinueOnError)
	fs.SetOutput(env.stderr)
	var common commonFlags
	common.register(fs, env.defaultDelay)
	req := generator.SEORequest{}
	fs.StringVar(&req.Title, "title", "", "video title")
	fs.StringVar(&req.Description, "description", "", "video description")
	fs.StringVar(&req.Tags, "tags", "", "comma separated tags")
	if err := fs.Parse(args); err != nil {
		return exitUsage
	}

	if err := validator.NewValidator().ValidateSEORequest(&req); err != nil {
		return invalid(env, err)
	}

	result, err := newService(common.delay).Analyze(ctx, req)
	if err != nil {
		return failed(env, err)
	}
	if result == nil {
		fmt.Fprintln(env.stderr, "Nothing to analyze: title is empty")
		return exitOK
	}

	report := formatSEO(result)
	return emit(env, common, result, report, report)
}

func formatSEO(r *generator.SEOResult) string {
	var b strings.Builder
	fmt.Fprintf(&b, "SEO score: %d (%s)\n\n", r.Score, r.ScoreBand)

	optimal := "needs work"
	if r.TitleAnalysis.Optimal {
		optimal = "optimal"
	}
	fmt.Fprintf(&b, "Title: %d characters, %s\n", r.TitleAnalysis.Length, optimal)
	fmt.Fprintf(&b, "Keywords: %s\n", strings.Join(r.TitleAnalysis.Keywords, ", "))
	fmt.Fprintf(&b, "Engagement: %s\n\n", r.TitleAnalysis.Engagement)

	b.WriteString("Suggestions:\n")
	for _, s := range r.Suggestions {
		fmt.Fprintf(&b, "- %s\n", s)
	}

	b.WriteString("\nKeyword research:\n")
	for _, k := range r.Keywords {
		fmt.Fprintf(&b, "- %-10s volume %6d  difficulty %-6s  relevance %d%%\n",
			k.Keyword, k.SearchVolume, k.Difficulty, k.Relevance)
	}

	if len(r.Tags) > 0 {
		fmt.Fprintf(&b, "\nTags: %s\n", strings.Join(r.Tags, ", "))
	}
	return b.String()
}

// emit prints the result and copies clip to the clipboard when asked. A
// clipboard failure is only a warning.
func emit(env cli, common commonFlags, result interface{}, text, clip string) int {
	if common.asJSON {
		enc := json.NewEncoder(env.stdout)
		enc.SetIndent("", "  ")
		enc.SetEscapeHTML(false)
		if err := enc.Encode(result); err != nil {
			return failed(env, err)
		}
	} else {
		fmt.Fprint(env.stdout, text)
	}

	if common.copy {
		if err := clipboard.Copy(env.clipboard, clip); err != nil {
			fmt.Fprintf(env.stderr, "Warning: %v\n", err)
		} else {
			fmt.Fprintln(env.stderr, "Copied to clipboard")
		}
	}
	return exitOK
}

func invalid(env cli, err error) int {
	for field, msg := range validator.FieldErrors(err) {
		fmt.Fprintf(env.stderr, "invalid %s: %s\n", field, msg)
	}
	return exitUsage
}

func failed(env cli, err error) int {
	if errors.Is(err, generator.ErrDelayInterrupted) {
		fmt.Fprintln(env.stderr, "Interrupted")
		return exitError
	}
	fmt.Fprintf(env.stderr, "Error: %v\n", err)
	return exitError
}
